package imagetools

import (
	"fmt"
	"os"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"vincit.fi/image-gallery/common/logger"
)

// Reader materializes image content from a source path: binary bytes
// plus the sniffed MIME type.
type Reader struct {
}

func NewImageReader() *Reader {
	return &Reader{}
}

func (s *Reader) ReadImage(sourcePath string) (string, []byte, error) {
	content, err := os.ReadFile(sourcePath)
	if err != nil {
		logger.Error.Printf("Could not read '%s'", sourcePath)
		return "", nil, err
	}

	detected := mimetype.Detect(content)
	if !strings.HasPrefix(detected.String(), "image/") {
		return "", nil, fmt.Errorf("'%s' is not an image: %s", sourcePath, detected.String())
	}

	logger.Debug.Printf("Read '%s' (%s, %d bytes)", sourcePath, detected.String(), len(content))
	return detected.String(), content, nil
}
