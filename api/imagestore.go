package api

import (
	"vincit.fi/image-gallery/api/apitype"
)

// ImagePersister is the persistent store behind the gallery. All
// operations may fail independently; the gallery never retries.
type ImagePersister interface {
	// Initialize prepares the store. Must be called once before any
	// other operation.
	Initialize() error
	// GetAllImages returns every stored record. The order is stable but
	// not semantically meaningful. Display images are not populated.
	GetAllImages() ([]*apitype.ImageRecord, error)
	// UpsertImages writes the given records, inserting or replacing by
	// id.
	UpsertImages(records []*apitype.ImageRecord) error
	RemoveImage(id apitype.ImageId) error
	// Truncate removes every stored record.
	Truncate() error
}

// ImageConverter derives the display ready projection from a record's
// binary content.
type ImageConverter interface {
	ConvertToDisplay(mimeType string, content []byte) (*apitype.DisplayImage, error)
}

// ImageReader materializes a candidate's binary content from its
// source reference.
type ImageReader interface {
	ReadImage(sourcePath string) (mimeType string, content []byte, err error)
}
