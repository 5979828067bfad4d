package driven

// FileReader loads file contents for the matcher.
type FileReader interface {
	// ReadFile returns the full contents of the file at path.
	// The file handle is released before ReadFile returns.
	ReadFile(path string) (string, error)
}
