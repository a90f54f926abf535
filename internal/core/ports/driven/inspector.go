package driven

import "github.com/custodia-labs/aidoc-cli/internal/core/domain"

// DocumentInspector reads exported document bytes back into text.
type DocumentInspector interface {
	// Inspect extracts the text of data in the given format.
	// Returns domain.ErrInvalidInput when data is not a readable document.
	Inspect(format domain.DocumentFormat, data []byte) (*domain.DocumentPreview, error)
}
