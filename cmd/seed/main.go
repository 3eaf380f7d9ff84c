// Command main runs the database seeder for Cortado.
package main

import (
	"flag"
	"log"

	"cortado/internal/config"
	"cortado/internal/database"
	"cortado/internal/seed"
)

func main() {
	// Parse command line flags
	numUsers := flag.Int("users", 10, "Number of users to create")
	profilesEach := flag.Int("profiles", 8, "Number of profiles per user")
	blogsEach := flag.Int("blogs", 3, "Number of blog posts per user")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	demoUser := flag.String("demo-user", "demo", "Stable demo username")
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Seed(db, seed.Options{
		NumUsers:     *numUsers,
		ProfilesEach: *profilesEach,
		BlogsEach:    *blogsEach,
		ShouldClean:  *shouldClean,
		DemoPassword: "Password123!",
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	if err := seed.EnsureDemoUser(db, *demoUser, "Password123!"); err != nil {
		log.Fatalf("Demo user creation failed: %v", err)
	}

	log.Println("All done. Demo users log in with the password: Password123!")
}
