package driven

// DownloadSink materialises exported documents for the user.
type DownloadSink interface {
	// Save writes data under filename and returns the full path written.
	Save(filename string, data []byte) (string, error)

	// Dir returns the directory files are written to.
	Dir() string
}
