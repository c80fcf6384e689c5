package llm

import "context"

type purposeCtxKey struct{}

// Purpose labels attached to requests for event logging.
const (
	PurposeTutorTurn   = "tutor-turn"
	PurposeTutorRepair = "tutor-repair"
	PurposeDocChat     = "doc-chat"
	PurposeSmokeTest   = "smoke-test"
)

// WithPurpose tags the context with the reason a request is being made.
// The logging middleware stores the tag on the recorded event.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeCtxKey{}, purpose)
}

// PurposeFrom reports the purpose tag on the context, or "unknown".
func PurposeFrom(ctx context.Context) string {
	if p, ok := ctx.Value(purposeCtxKey{}).(string); ok {
		return p
	}
	return "unknown"
}
