package gallery

import (
	"errors"
	"image"

	"vincit.fi/image-gallery/api"
	"vincit.fi/image-gallery/api/apitype"
)

type StubSender struct {
	api.Sender

	topics   []api.Topic
	commands map[api.Topic][]apitype.Command
	warnings []string
	errors   []string
}

func NewStubSender() *StubSender {
	return &StubSender{
		commands: map[api.Topic][]apitype.Command{},
	}
}

func (s *StubSender) SendToTopic(topic api.Topic) {
	s.topics = append(s.topics, topic)
}

func (s *StubSender) SendCommandToTopic(topic api.Topic, command apitype.Command) {
	s.commands[topic] = append(s.commands[topic], command)
}

func (s *StubSender) SendError(message string, err error) {
	s.errors = append(s.errors, message)
}

func (s *StubSender) SendWarning(message string) {
	s.warnings = append(s.warnings, message)
}

func (s *StubSender) TimesSentTo(topic api.Topic) int {
	count := len(s.commands[topic])
	for _, sent := range s.topics {
		if sent == topic {
			count += 1
		}
	}
	return count
}

func (s *StubSender) LastCommandTo(topic api.Topic) apitype.Command {
	sent := s.commands[topic]
	if len(sent) == 0 {
		return nil
	}
	return sent[len(sent)-1]
}

type StubImageConverter struct {
	failConversion bool
}

func (s *StubImageConverter) ConvertToDisplay(mimeType string, content []byte) (*apitype.DisplayImage, error) {
	if s.failConversion {
		return nil, errors.New("conversion failed")
	}
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	return apitype.NewDisplayImage(img, img), nil
}

type stubSource struct {
	mimeType string
	content  []byte
}

type StubImageReader struct {
	images    map[string]stubSource
	failPaths map[string]bool
}

func NewStubImageReader() *StubImageReader {
	return &StubImageReader{
		images:    map[string]stubSource{},
		failPaths: map[string]bool{},
	}
}

func (s *StubImageReader) AddImage(path string, mimeType string, content []byte) {
	s.images[path] = stubSource{mimeType: mimeType, content: content}
}

func (s *StubImageReader) FailFor(path string) {
	s.failPaths[path] = true
}

func (s *StubImageReader) ReadImage(sourcePath string) (string, []byte, error) {
	if s.failPaths[sourcePath] {
		return "", nil, errors.New("read failed")
	}
	if source, ok := s.images[sourcePath]; ok {
		return source.mimeType, source.content, nil
	}
	return "", nil, errors.New("no such file")
}

// FailingImageStore wraps a real store and fails selected operations.
type FailingImageStore struct {
	api.ImagePersister

	failInitialize bool
	failGetAll     bool
	failUpsert     bool
	failTruncate   bool
	failRemove     map[apitype.ImageId]bool
}

func NewFailingImageStore(store api.ImagePersister) *FailingImageStore {
	return &FailingImageStore{
		ImagePersister: store,
		failRemove:     map[apitype.ImageId]bool{},
	}
}

func (s *FailingImageStore) Initialize() error {
	if s.failInitialize {
		return errors.New("store unavailable")
	}
	return s.ImagePersister.Initialize()
}

func (s *FailingImageStore) GetAllImages() ([]*apitype.ImageRecord, error) {
	if s.failGetAll {
		return nil, errors.New("read failed")
	}
	return s.ImagePersister.GetAllImages()
}

func (s *FailingImageStore) UpsertImages(records []*apitype.ImageRecord) error {
	if s.failUpsert {
		return errors.New("write failed")
	}
	return s.ImagePersister.UpsertImages(records)
}

func (s *FailingImageStore) RemoveImage(id apitype.ImageId) error {
	if s.failRemove[id] {
		return errors.New("delete failed")
	}
	return s.ImagePersister.RemoveImage(id)
}

func (s *FailingImageStore) Truncate() error {
	if s.failTruncate {
		return errors.New("truncate failed")
	}
	return s.ImagePersister.Truncate()
}
