package feed

// ValidationError reports an entry that cannot become an Item. The entry is
// dropped; the rest of the feed is unaffected.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

var (
	errMissingTitle       = &ValidationError{Reason: "missing title"}
	errMissingLink        = &ValidationError{Reason: "missing link"}
	errMissingPublishDate = &ValidationError{Reason: "missing publish date"}
	errInvalidPublishDate = &ValidationError{Reason: "invalid publish date"}
)
