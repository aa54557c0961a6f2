package gallery

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"vincit.fi/image-gallery/api"
	"vincit.fi/image-gallery/api/apitype"
	"vincit.fi/image-gallery/backend/filter"
	"vincit.fi/image-gallery/common/logger"
)

// Gallery owns the in-memory image collection and keeps it
// synchronized with the persistent image store. The in-memory
// collection is the source of truth for all reads; the store is only
// written to mirror it and fully read only at load time.
//
// All mutating operations are serialized on a single mutex. Queries
// work on a point-in-time snapshot and only block for the duration of
// the snapshot swap, never for a whole operation. The busy flag is
// advisory state for the presentation layer, not a gate.
type Gallery struct {
	store     api.ImagePersister
	detector  DuplicateDetector
	converter api.ImageConverter
	reader    api.ImageReader
	sender    api.Sender

	mu      sync.Mutex
	stateMu sync.RWMutex

	records     []*apitype.ImageRecord
	searchQuery string
	busy        bool

	api.ImageGallery
}

func NewImageGallery(store api.ImagePersister, detector DuplicateDetector, converter api.ImageConverter, reader api.ImageReader, sender api.Sender) *Gallery {
	return &Gallery{
		store:     store,
		detector:  detector,
		converter: converter,
		reader:    reader,
		sender:    sender,
	}
}

// Load initializes the persistent store, reads the whole stored
// collection, derives a fresh display image for every record and
// replaces the in-memory collection wholesale. On failure the
// in-memory collection is left untouched. A category count refresh is
// requested after a successful load.
func (s *Gallery) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.SetBusy(true)
	defer s.SetBusy(false)

	if err := s.store.Initialize(); err != nil {
		s.sender.SendError("Could not initialize image store", err)
		return err
	}

	records, err := s.store.GetAllImages()
	if err != nil {
		s.sender.SendError("Could not load images", err)
		return err
	}

	for _, record := range records {
		record.SetDisplay(s.deriveDisplay(record.FileName(), record.MimeType(), record.Content()))
	}

	logger.Info.Printf("Loaded %d images", len(records))
	s.replaceRecords(records)
	s.sender.SendToTopic(api.CategoryCountsUpdated)
	return nil
}

// AddImages filters the candidates against the current collection,
// materializes the survivors and persists them before they become
// visible in memory. Duplicates are detected against the already
// stored records only, not against the other candidates in the same
// batch; each duplicate is dropped with one warning.
func (s *Gallery) AddImages(candidates []*apitype.ImageCandidate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.SetBusy(true)
	defer s.SetBusy(false)

	existing := s.snapshot()

	var unique []*apitype.ImageCandidate
	for _, candidate := range candidates {
		if s.detector.IsDuplicate(candidate, existing) {
			logger.Debug.Printf("Skipping duplicate %s", candidate.String())
			s.sender.SendWarning(fmt.Sprintf("Image '%s' already exists", candidate.FileName()))
		} else {
			unique = append(unique, candidate)
		}
	}

	var added []*apitype.ImageRecord
	for _, candidate := range unique {
		record, err := s.materialize(candidate)
		if err != nil {
			s.sender.SendError(fmt.Sprintf("Could not read image '%s'", candidate.FileName()), err)
			return err
		}
		added = append(added, record)
	}

	if len(added) == 0 {
		return nil
	}

	if err := s.store.UpsertImages(added); err != nil {
		s.sender.SendError("Could not save images", err)
		return err
	}

	logger.Info.Printf("Added %d of %d images", len(added), len(candidates))
	s.replaceRecords(append(existing, added...))
	return nil
}

func (s *Gallery) materialize(candidate *apitype.ImageCandidate) (*apitype.ImageRecord, error) {
	mimeType, content, err := s.reader.ReadImage(candidate.SourcePath())
	if err != nil {
		return nil, err
	}

	record := apitype.NewImageRecord(
		apitype.ImageId(uuid.New().String()),
		candidate.FileName(),
		candidate.CategoryId(),
		mimeType,
		content,
		false)
	record.SetDisplay(s.deriveDisplay(record.FileName(), mimeType, content))
	return record, nil
}

func (s *Gallery) deriveDisplay(fileName string, mimeType string, content []byte) *apitype.DisplayImage {
	display, err := s.converter.ConvertToDisplay(mimeType, content)
	if err != nil {
		// The record is still usable without a display image
		s.sender.SendWarning(fmt.Sprintf("Could not derive display image for '%s'", fileName))
		return nil
	}
	return display
}

func (s *Gallery) RemoveImage(id apitype.ImageId) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.RemoveImage(id); err != nil {
		s.sender.SendError("Could not delete image", err)
		return err
	}

	s.replaceRecords(without(s.snapshot(), id))
	return nil
}

// RemoveImages issues all persistent deletes first. If any delete
// fails, the in-memory collection is left untouched even though the
// deletes that already succeeded are not rolled back. The persistent
// store and memory can disagree after a partial failure; the next
// Load reconciles them.
func (s *Gallery) RemoveImages(ids []apitype.ImageId) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range ids {
		if err := s.store.RemoveImage(id); err != nil {
			s.sender.SendError(fmt.Sprintf("Could not delete image '%s'", id), err)
			return err
		}
	}

	s.replaceRecords(without(s.snapshot(), ids...))
	return nil
}

// Clear empties the collection. With onlyFavorites the whole
// persistent collection is truncated and the non-favorite subset is
// written back, so it must not interleave with other writers.
func (s *Gallery) Clear(onlyFavorites bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !onlyFavorites {
		if err := s.store.Truncate(); err != nil {
			s.sender.SendError("Could not clear images", err)
			return err
		}
		s.replaceRecords(nil)
		return nil
	}

	kept := filter.NonFavorites(s.snapshot())
	if err := s.store.Truncate(); err != nil {
		s.sender.SendError("Could not clear images", err)
		return err
	}
	if len(kept) > 0 {
		if err := s.store.UpsertImages(kept); err != nil {
			s.sender.SendError("Could not restore non-favorite images", err)
			return err
		}
	}
	s.replaceRecords(kept)
	return nil
}

// ToggleFavorite flips the favorite flag of one record and rewrites
// the whole collection to the persistent store. Memory is updated only
// after the write succeeded.
func (s *Gallery) ToggleFavorite(id apitype.ImageId) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.snapshot()
	next := make([]*apitype.ImageRecord, len(current))
	found := false
	for i, record := range current {
		if record.Id() == id {
			next[i] = record.WithFavorite(!record.IsFavorite())
			found = true
		} else {
			next[i] = record
		}
	}

	if !found {
		err := fmt.Errorf("no image with id '%s'", id)
		s.sender.SendError("Could not toggle favorite", err)
		return err
	}

	if err := s.store.UpsertImages(next); err != nil {
		s.sender.SendError("Could not save favorite", err)
		return err
	}

	s.replaceRecords(next)
	return nil
}

func (s *Gallery) SetSearchQuery(query string) {
	s.stateMu.Lock()
	s.searchQuery = query
	s.stateMu.Unlock()
}

func (s *Gallery) SearchQuery() string {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.searchQuery
}

func (s *Gallery) SetBusy(busy bool) {
	s.stateMu.Lock()
	s.busy = busy
	s.stateMu.Unlock()
}

func (s *Gallery) IsBusy() bool {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.busy
}

func (s *Gallery) Images() []*apitype.ImageRecord {
	return s.snapshot()
}

func (s *Gallery) ImagesInCategory(categoryId apitype.CategoryId) []*apitype.ImageRecord {
	return filter.ByCategory(s.snapshot(), categoryId)
}

func (s *Gallery) FilteredImages(categoryId apitype.CategoryId) []*apitype.ImageRecord {
	return filter.Filtered(s.snapshot(), categoryId, s.SearchQuery())
}

func (s *Gallery) Favorites() []*apitype.ImageRecord {
	return filter.Favorites(s.snapshot())
}

func (s *Gallery) replaceRecords(records []*apitype.ImageRecord) {
	s.stateMu.Lock()
	s.records = records
	s.stateMu.Unlock()
}

func (s *Gallery) snapshot() []*apitype.ImageRecord {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	records := make([]*apitype.ImageRecord, len(s.records))
	copy(records, s.records)
	return records
}

func without(records []*apitype.ImageRecord, ids ...apitype.ImageId) []*apitype.ImageRecord {
	removed := map[apitype.ImageId]bool{}
	for _, id := range ids {
		removed[id] = true
	}

	var kept []*apitype.ImageRecord
	for _, record := range records {
		if !removed[record.Id()] {
			kept = append(kept, record)
		}
	}
	return kept
}
