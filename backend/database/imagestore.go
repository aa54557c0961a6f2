package database

import (
	"github.com/upper/db/v4"
	"vincit.fi/image-gallery/api/apitype"
	"vincit.fi/image-gallery/common/logger"
)

// ImageStore is the persistent store for the image collection. Records
// are keyed by id; the binary content is stored as the row payload.
// Display images are never written.
type ImageStore struct {
	database   *Database
	collection db.Collection
}

func NewImageStore(database *Database) *ImageStore {
	return &ImageStore{
		database: database,
	}
}

// NewInMemoryImageStore returns a store over an in-memory SQLite
// database, already initialized.
func NewInMemoryImageStore() *ImageStore {
	return NewImageStore(NewInMemoryDatabase())
}

func (s *ImageStore) getCollection() db.Collection {
	if s.collection == nil {
		s.collection = s.database.Session().Collection("image")
	}
	return s.collection
}

func (s *ImageStore) Initialize() error {
	if err := s.database.Open(); err != nil {
		return err
	}
	if err := s.database.Migrate(); err != nil {
		return err
	}

	count, err := s.GetImageCount()
	if err != nil {
		return err
	}
	logger.Debug.Printf("Image store holds %d images", count)
	return nil
}

func (s *ImageStore) GetAllImages() ([]*apitype.ImageRecord, error) {
	var images []Image
	err := s.getCollection().
		Find().
		OrderBy("file_name").
		All(&images)
	if err != nil {
		return nil, err
	}
	return toApiImageRecords(images), nil
}

func (s *ImageStore) GetImageCount() (int, error) {
	count, err := s.getCollection().Find().Count()
	return int(count), err
}

func (s *ImageStore) UpsertImages(records []*apitype.ImageRecord) error {
	return s.database.Session().Tx(func(sess db.Session) error {
		for _, record := range records {
			if err := upsertImage(sess, toDbImage(record)); err != nil {
				logger.Error.Printf("Error while writing image '%s' to DB", record.FileName())
				return err
			}
		}
		return nil
	})
}

func upsertImage(session db.Session, image *Image) error {
	_, err := session.SQL().Exec(`
		INSERT INTO image (id, file_name, category_id, mime_type, content, favorite)
		VALUES(?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO
		UPDATE SET file_name = ?, category_id = ?, mime_type = ?, content = ?, favorite = ?
		WHERE id = ?
	`, image.Id, image.FileName, image.CategoryId, image.MimeType, image.Content, image.Favorite,
		image.FileName, image.CategoryId, image.MimeType, image.Content, image.Favorite, image.Id)
	return err
}

func (s *ImageStore) RemoveImage(id apitype.ImageId) error {
	return s.getCollection().Find(db.Cond{"id": string(id)}).Delete()
}

func (s *ImageStore) Truncate() error {
	return s.getCollection().Truncate()
}

// FindByFileName resolves a file name to its record. Returns nil
// without an error when the name is unknown or ambiguous.
func (s *ImageStore) FindByFileName(fileName string) (*apitype.ImageRecord, error) {
	var images []Image
	err := s.getCollection().
		Find(db.Cond{"file_name": fileName}).
		All(&images)
	if err != nil {
		return nil, err
	} else if len(images) == 1 {
		return toApiImageRecord(&images[0]), nil
	} else {
		return nil, nil
	}
}
