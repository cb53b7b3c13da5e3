package driven

// Clipboard reads and writes the host clipboard.
type Clipboard interface {
	// ReadText returns the current clipboard text.
	ReadText() (string, error)

	// WriteText replaces the clipboard contents with text.
	WriteText(text string) error
}
