package gallery

import (
	"crypto/sha256"
	"vincit.fi/image-gallery/api"
	"vincit.fi/image-gallery/api/apitype"
	"vincit.fi/image-gallery/common/logger"
)

// DuplicateDetector decides whether a candidate collides with an
// already stored record. The policy is pluggable; the gallery ships
// with the file name policy active.
type DuplicateDetector interface {
	IsDuplicate(candidate *apitype.ImageCandidate, existing []*apitype.ImageRecord) bool
}

// FileNameDetector treats a candidate as a duplicate iff an existing
// record has exactly the same file name. Case-sensitive.
type FileNameDetector struct {
}

func NewFileNameDetector() *FileNameDetector {
	return &FileNameDetector{}
}

func (s *FileNameDetector) IsDuplicate(candidate *apitype.ImageCandidate, existing []*apitype.ImageRecord) bool {
	for _, record := range existing {
		if record.FileName() == candidate.FileName() {
			return true
		}
	}
	return false
}

// ContentHashDetector extends the file name policy with an exact
// content match: a candidate whose bytes hash to the same SHA-256 as
// an existing record's content is a duplicate regardless of its name.
// Not active by default.
type ContentHashDetector struct {
	fileNameDetector *FileNameDetector
	reader           api.ImageReader
}

func NewContentHashDetector(reader api.ImageReader) *ContentHashDetector {
	return &ContentHashDetector{
		fileNameDetector: NewFileNameDetector(),
		reader:           reader,
	}
}

func (s *ContentHashDetector) IsDuplicate(candidate *apitype.ImageCandidate, existing []*apitype.ImageRecord) bool {
	if s.fileNameDetector.IsDuplicate(candidate, existing) {
		return true
	}

	_, content, err := s.reader.ReadImage(candidate.SourcePath())
	if err != nil {
		// Cannot hash what cannot be read. The add operation will
		// surface the read error itself.
		logger.Warn.Printf("Could not read %s for hashing", candidate.String())
		return false
	}

	candidateHash := sha256.Sum256(content)
	for _, record := range existing {
		if sha256.Sum256(record.Content()) == candidateHash {
			return true
		}
	}
	return false
}
