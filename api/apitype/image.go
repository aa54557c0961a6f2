package apitype

import (
	"image"
)

type ImageId string

const NoImage = ImageId("")

// ImageRecord is one image in the gallery: identity and category
// meta data plus the stored binary payload. The display images are
// derived from the payload after every load and are never persisted.
type ImageRecord struct {
	id         ImageId
	fileName   string
	categoryId CategoryId
	mimeType   string
	content    []byte
	favorite   bool
	display    *DisplayImage
}

func NewImageRecord(id ImageId, fileName string, categoryId CategoryId, mimeType string, content []byte, favorite bool) *ImageRecord {
	return &ImageRecord{
		id:         id,
		fileName:   fileName,
		categoryId: categoryId,
		mimeType:   mimeType,
		content:    content,
		favorite:   favorite,
	}
}

func (s *ImageRecord) IsValid() bool {
	return s != nil && s.id != NoImage
}

func (s *ImageRecord) Id() ImageId {
	if s != nil {
		return s.id
	} else {
		return NoImage
	}
}

func (s *ImageRecord) FileName() string {
	if s != nil {
		return s.fileName
	} else {
		return ""
	}
}

func (s *ImageRecord) CategoryId() CategoryId {
	if s != nil {
		return s.categoryId
	} else {
		return AllCategories
	}
}

func (s *ImageRecord) MimeType() string {
	if s != nil {
		return s.mimeType
	} else {
		return ""
	}
}

func (s *ImageRecord) Content() []byte {
	if s != nil {
		return s.content
	} else {
		return nil
	}
}

func (s *ImageRecord) ByteSize() int64 {
	if s != nil {
		return int64(len(s.content))
	} else {
		return 0
	}
}

func (s *ImageRecord) IsFavorite() bool {
	return s != nil && s.favorite
}

func (s *ImageRecord) Display() *DisplayImage {
	if s != nil {
		return s.display
	} else {
		return nil
	}
}

func (s *ImageRecord) SetDisplay(display *DisplayImage) {
	s.display = display
}

// WithFavorite returns a copy of the record with the favorite flag set
// to the given value. The display image is carried over since it only
// depends on the binary content.
func (s *ImageRecord) WithFavorite(favorite bool) *ImageRecord {
	record := *s
	record.favorite = favorite
	return &record
}

func (s *ImageRecord) String() string {
	if s != nil {
		if s.IsValid() {
			return "ImageRecord{" + s.fileName + "}"
		} else {
			return "ImageRecord<invalid>"
		}
	} else {
		return "ImageRecord<nil>"
	}
}

// ImageCandidate is an image offered to the gallery but not yet
// accepted: just the identity fields and a reference to the source
// from which the binary content can be read.
type ImageCandidate struct {
	fileName   string
	categoryId CategoryId
	sourcePath string
}

func NewImageCandidate(fileName string, categoryId CategoryId, sourcePath string) *ImageCandidate {
	return &ImageCandidate{
		fileName:   fileName,
		categoryId: categoryId,
		sourcePath: sourcePath,
	}
}

func (s *ImageCandidate) FileName() string {
	if s != nil {
		return s.fileName
	} else {
		return ""
	}
}

func (s *ImageCandidate) CategoryId() CategoryId {
	if s != nil {
		return s.categoryId
	} else {
		return AllCategories
	}
}

func (s *ImageCandidate) SourcePath() string {
	if s != nil {
		return s.sourcePath
	} else {
		return ""
	}
}

func (s *ImageCandidate) String() string {
	if s != nil {
		return "ImageCandidate{" + s.fileName + "}"
	} else {
		return "ImageCandidate<nil>"
	}
}

// DisplayImage is the session local, display ready projection of a
// record's binary content: a small thumbnail and a view sized image.
type DisplayImage struct {
	thumbnail image.Image
	view      image.Image
}

func NewDisplayImage(thumbnail image.Image, view image.Image) *DisplayImage {
	return &DisplayImage{
		thumbnail: thumbnail,
		view:      view,
	}
}

func (s *DisplayImage) Thumbnail() image.Image {
	if s != nil {
		return s.thumbnail
	} else {
		return nil
	}
}

func (s *DisplayImage) View() image.Image {
	if s != nil {
		return s.view
	} else {
		return nil
	}
}
