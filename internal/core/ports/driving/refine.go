package driving

import "context"

// TextRefiner rewrites freeform text outside of any project.
type TextRefiner interface {
	// RefineText returns text rewritten according to instruction.
	RefineText(ctx context.Context, text, instruction string) (string, error)
}
