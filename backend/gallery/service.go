package gallery

import (
	"vincit.fi/image-gallery/api"
	"vincit.fi/image-gallery/api/apitype"
	"vincit.fi/image-gallery/common/logger"
)

// Service is the event bus facing surface of the gallery. It keeps the
// presentation layer's selected category, delegates every command to
// the gallery and publishes the resulting filtered view.
type Service struct {
	sender             api.Sender
	gallery            api.ImageGallery
	selectedCategoryId apitype.CategoryId

	api.ImageGalleryService
}

func NewImageGalleryService(sender api.Sender, gallery api.ImageGallery) *Service {
	return &Service{
		sender:             sender,
		gallery:            gallery,
		selectedCategoryId: apitype.AllCategories,
	}
}

func (s *Service) RequestLoad() {
	if err := s.gallery.Load(); err != nil {
		// Already reported by the gallery
		return
	}
	s.sendImages()
}

func (s *Service) RequestImages() {
	s.sendImages()
}

func (s *Service) AddImages(command *api.AddImagesCommand) {
	if err := s.gallery.AddImages(command.Candidates); err != nil {
		return
	}
	s.sendImages()
}

func (s *Service) RemoveImage(command *api.RemoveImageCommand) {
	if err := s.gallery.RemoveImage(command.Id); err != nil {
		return
	}
	s.sendImages()
}

func (s *Service) RemoveImages(command *api.RemoveImagesCommand) {
	if err := s.gallery.RemoveImages(command.Ids); err != nil {
		return
	}
	s.sendImages()
}

func (s *Service) ClearImages(command *api.ClearImagesCommand) {
	if err := s.gallery.Clear(command.OnlyFavorites); err != nil {
		return
	}
	s.sendImages()
}

func (s *Service) ToggleFavorite(command *api.ToggleFavoriteCommand) {
	if err := s.gallery.ToggleFavorite(command.Id); err != nil {
		return
	}
	s.sendImages()
}

func (s *Service) SetSearchQuery(command *api.SearchCommand) {
	s.gallery.SetSearchQuery(command.Query)
	s.sendImages()
}

func (s *Service) SelectCategory(command *api.SelectCategoryCommand) {
	s.selectedCategoryId = command.CategoryId
	s.sendImages()
}

func (s *Service) SetBusy(busy bool) {
	s.gallery.SetBusy(busy)
	s.sender.SendCommandToTopic(api.ProcessStatusUpdated, &api.UpdateStatusCommand{Busy: busy})
}

func (s *Service) Close() {
	logger.Info.Print("Shutting down gallery service")
}

func (s *Service) sendImages() {
	s.sender.SendCommandToTopic(api.ImageListUpdated, &api.UpdateImagesCommand{
		Images:     s.gallery.FilteredImages(s.selectedCategoryId),
		CategoryId: s.selectedCategoryId,
	})
}
