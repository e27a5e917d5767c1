package types

// EventKind discriminates the two event variants the matcher accepts.
type EventKind string

const (
	EventPrompt EventKind = "prompt"
	EventFile   EventKind = "file"
)

// Event is a tagged variant: exactly one of PromptEvent or FileEvent is
// evaluated per matcher call. Events carry no cross-invocation state.
type Event interface {
	Kind() EventKind
}

// PromptEvent is a user-submitted text request.
type PromptEvent struct {
	Text string
}

// Kind returns EventPrompt.
func (PromptEvent) Kind() EventKind { return EventPrompt }

// FileEvent is a notification that a file was created or modified.
// Content is optional: path-only events (e.g. a rename) leave it nil,
// in which case content patterns are skipped during matching.
type FileEvent struct {
	Path    string
	Content *string
}

// Kind returns EventFile.
func (FileEvent) Kind() EventKind { return EventFile }

// WithContent returns a FileEvent carrying the given content.
func (e FileEvent) WithContent(content string) FileEvent {
	e.Content = &content
	return e
}
