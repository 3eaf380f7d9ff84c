package validation

// BlogInput is the accepted shape for blog creation and partial update.
type BlogInput struct {
	Title     *string `json:"title"`
	Content   *string `json:"content"`
	Published *bool   `json:"published"`
}

// ValidateBlog checks the blog constraints; partial mode makes every field
// optional while keeping the non-empty checks on present fields.
func ValidateBlog(in *BlogInput, partial bool) error {
	errs := FieldErrors{}

	checkRequiredString(errs, "title", in.Title, partial)
	checkRequiredString(errs, "content", in.Content, partial)

	if len(errs) > 0 {
		return errs
	}
	return nil
}
