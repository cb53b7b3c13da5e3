package domain

// DebounceBuffer holds the most recent arguments supplied for each key since
// the last flush. Later calls for the same key overwrite earlier ones.
type DebounceBuffer map[string][]any

// Keys returns the number of distinct keys buffered.
func (b DebounceBuffer) Keys() int {
	return len(b)
}

// FileOp describes what happened to a watched file.
type FileOp string

// Supported file operations.
const (
	FileOpCreate FileOp = "create"
	FileOpWrite  FileOp = "write"
	FileOpRemove FileOp = "remove"
	FileOpRename FileOp = "rename"
	FileOpChmod  FileOp = "chmod"
)

// FileChange is a coalesced change to one path inside a watched workspace.
type FileChange struct {
	// Path is the absolute path that changed.
	Path string

	// Op is the most recent operation seen for Path during the window.
	Op FileOp
}
