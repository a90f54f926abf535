package driving

import "context"

// SectionService performs the per-section mutations. Callers re-fetch the
// owning project afterwards to observe the effect.
type SectionService interface {
	// Refine asks the backend to rewrite a section following prompt.
	Refine(ctx context.Context, sectionID int64, prompt string) error

	// Feedback records a like or dislike.
	Feedback(ctx context.Context, sectionID int64, isLike bool) error

	// AddComment attaches a comment. Blank text is rejected without a request.
	AddComment(ctx context.Context, sectionID int64, text string) error
}
