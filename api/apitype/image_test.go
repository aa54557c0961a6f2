package apitype

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestImageRecord_String(t *testing.T) {
	a := assert.New(t)

	var nilRecord *ImageRecord
	a.Equal("ImageRecord<nil>", nilRecord.String())
	a.Equal("ImageRecord<invalid>", NewImageRecord(NoImage, "", AllCategories, "", nil, false).String())
	a.Equal("ImageRecord{cat.png}", NewImageRecord("id-1", "cat.png", "c1", "image/png", []byte{1}, false).String())
}

func TestValidImageRecord(t *testing.T) {
	a := assert.New(t)

	record := NewImageRecord("id-1", "cat.png", "c1", "image/png", []byte{1, 2, 3}, true)

	t.Run("Validity", func(t *testing.T) {
		a.True(record.IsValid())
	})
	t.Run("Properties", func(t *testing.T) {
		a.Equal(ImageId("id-1"), record.Id())
		a.Equal("cat.png", record.FileName())
		a.Equal(CategoryId("c1"), record.CategoryId())
		a.Equal("image/png", record.MimeType())
		a.Equal([]byte{1, 2, 3}, record.Content())
		a.Equal(int64(3), record.ByteSize())
		a.True(record.IsFavorite())
		a.Nil(record.Display())
	})
}

func TestNilImageRecord(t *testing.T) {
	a := assert.New(t)

	var record *ImageRecord

	t.Run("Validity", func(t *testing.T) {
		a.False(record.IsValid())
	})
	t.Run("Properties", func(t *testing.T) {
		a.Equal(NoImage, record.Id())
		a.Equal("", record.FileName())
		a.Equal(AllCategories, record.CategoryId())
		a.Equal("", record.MimeType())
		a.Nil(record.Content())
		a.Equal(int64(0), record.ByteSize())
		a.False(record.IsFavorite())
		a.Nil(record.Display())
	})
}

func TestImageRecord_WithFavorite(t *testing.T) {
	a := assert.New(t)

	record := NewImageRecord("id-1", "cat.png", "c1", "image/png", []byte{1}, false)
	favorite := record.WithFavorite(true)

	a.False(record.IsFavorite())
	a.True(favorite.IsFavorite())
	a.Equal(record.Id(), favorite.Id())
	a.Equal(record.FileName(), favorite.FileName())
	a.Equal(record.Content(), favorite.Content())
}

func TestImageCandidate(t *testing.T) {
	a := assert.New(t)

	candidate := NewImageCandidate("cat.png", "c1", "/photos/cat.png")

	a.Equal("cat.png", candidate.FileName())
	a.Equal(CategoryId("c1"), candidate.CategoryId())
	a.Equal("/photos/cat.png", candidate.SourcePath())
	a.Equal("ImageCandidate{cat.png}", candidate.String())

	var nilCandidate *ImageCandidate
	a.Equal("", nilCandidate.FileName())
	a.Equal("ImageCandidate<nil>", nilCandidate.String())
}

func TestCategoryId_IsAll(t *testing.T) {
	a := assert.New(t)

	a.True(AllCategories.IsAll())
	a.False(CategoryId("c1").IsAll())
}
