package backend

import (
	"vincit.fi/image-gallery/api"
	"vincit.fi/image-gallery/backend/database"
	"vincit.fi/image-gallery/backend/gallery"
	"vincit.fi/image-gallery/backend/imagetools"
	"vincit.fi/image-gallery/common/event"
	"vincit.fi/image-gallery/common/logger"
)

type Stores struct {
	ImageStore *database.ImageStore

	db *database.Database
}

func (s *Stores) Close() {
	if err := s.db.Close(); err != nil {
		logger.Error.Print("Error while closing database ", err)
	}
}

// InitializeStores prepares the store for the given database file. The
// database itself is opened lazily when the gallery loads.
func InitializeStores(databaseFile string) *Stores {
	logger.Debug.Printf("Initialize stores...")
	db := database.NewDatabase(databaseFile)
	return &Stores{
		ImageStore: database.NewImageStore(db),
		db:         db,
	}
}

type Brokers struct {
	Broker *event.Broker
}

func InitializeEventBrokers(eventBusQueueSize int) *Brokers {
	logger.Debug.Printf("Initialize event brokers...")
	brokers := &Brokers{
		Broker: event.InitBus(eventBusQueueSize),
	}
	logger.Debug.Printf("Event brokers initialized")
	return brokers
}

type Services struct {
	ImageGallery   api.ImageGallery
	GalleryService api.ImageGalleryService
}

func (s *Services) Close() {
	defer s.GalleryService.Close()
}

func InitializeServices(stores *Stores, brokers *Brokers) *Services {
	logger.Debug.Printf("Initialize services...")
	converter := imagetools.NewImageConverter()
	reader := imagetools.NewImageReader()
	detector := gallery.NewFileNameDetector()

	imageGallery := gallery.NewImageGallery(stores.ImageStore, detector, converter, reader, brokers.Broker)
	services := &Services{
		ImageGallery:   imageGallery,
		GalleryService: gallery.NewImageGalleryService(brokers.Broker, imageGallery),
	}
	logger.Debug.Printf("Services initialized")
	return services
}
