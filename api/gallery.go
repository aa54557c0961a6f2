package api

import (
	"vincit.fi/image-gallery/api/apitype"
)

type ErrorCommand struct {
	Message string
}

type WarningCommand struct {
	Message string
}

type UpdateImagesCommand struct {
	Images     []*apitype.ImageRecord
	CategoryId apitype.CategoryId
}

type UpdateStatusCommand struct {
	Busy bool
}

type AddImagesCommand struct {
	Candidates []*apitype.ImageCandidate

	apitype.Command
}

type RemoveImageCommand struct {
	Id apitype.ImageId

	apitype.Command
}

type RemoveImagesCommand struct {
	Ids []apitype.ImageId

	apitype.Command
}

type ClearImagesCommand struct {
	OnlyFavorites bool

	apitype.Command
}

type ToggleFavoriteCommand struct {
	Id apitype.ImageId

	apitype.Command
}

type SearchCommand struct {
	Query string

	apitype.Command
}

type SelectCategoryCommand struct {
	CategoryId apitype.CategoryId

	apitype.Command
}

// ImageGallery is the authoritative in-memory record of the image
// collection, kept synchronized with the persistent image store.
type ImageGallery interface {
	Load() error

	AddImages(candidates []*apitype.ImageCandidate) error
	RemoveImage(id apitype.ImageId) error
	RemoveImages(ids []apitype.ImageId) error
	Clear(onlyFavorites bool) error
	ToggleFavorite(id apitype.ImageId) error

	SetSearchQuery(query string)
	SearchQuery() string
	SetBusy(busy bool)
	IsBusy() bool

	Images() []*apitype.ImageRecord
	ImagesInCategory(categoryId apitype.CategoryId) []*apitype.ImageRecord
	FilteredImages(categoryId apitype.CategoryId) []*apitype.ImageRecord
	Favorites() []*apitype.ImageRecord
}

// ImageGalleryService is the event bus facing surface of the gallery,
// consumed by a presentation layer.
type ImageGalleryService interface {
	RequestLoad()
	RequestImages()

	AddImages(*AddImagesCommand)
	RemoveImage(*RemoveImageCommand)
	RemoveImages(*RemoveImagesCommand)
	ClearImages(*ClearImagesCommand)
	ToggleFavorite(*ToggleFavoriteCommand)

	SetSearchQuery(*SearchCommand)
	SelectCategory(*SelectCategoryCommand)
	SetBusy(busy bool)

	Close()
}
