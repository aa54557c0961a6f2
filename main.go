package main

import (
	"fmt"
	"os"
	"path/filepath"

	"vincit.fi/image-gallery/api"
	"vincit.fi/image-gallery/api/apitype"
	"vincit.fi/image-gallery/backend"
	"vincit.fi/image-gallery/backend/database"
	"vincit.fi/image-gallery/common"
	"vincit.fi/image-gallery/common/logger"
)

func main() {
	params := common.ParseParams()
	logger.Initialize(logger.StringToLogLevel(params.LogLevel()))

	brokers := backend.InitializeEventBrokers(params.EventBusQueue())
	stores := backend.InitializeStores(params.DatabaseFile())
	defer stores.Close()
	services := backend.InitializeServices(stores, brokers)
	defer services.Close()

	brokers.Broker.Subscribe(api.ShowWarning, func(command *api.WarningCommand) {
		fmt.Printf("warning: %s\n", command.Message)
	})
	brokers.Broker.Subscribe(api.ShowError, func(command *api.ErrorCommand) {
		_, _ = fmt.Fprintf(os.Stderr, "error: %s\n", command.Message)
	})

	if err := run(params, services.ImageGallery, stores.ImageStore); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(params *common.Params, gallery api.ImageGallery, store *database.ImageStore) error {
	if err := gallery.Load(); err != nil {
		return err
	}

	switch params.Command() {
	case "", "list":
		return listImages(gallery, params.CommandArgs())
	case "add":
		return addImages(gallery, params.CommandArgs())
	case "remove":
		return removeImage(gallery, store, params.CommandArgs())
	case "favorite":
		return toggleFavorite(gallery, store, params.CommandArgs())
	case "clear":
		return gallery.Clear(false)
	case "clear-favorites":
		return gallery.Clear(true)
	default:
		return fmt.Errorf("unknown command '%s'", params.Command())
	}
}

func listImages(gallery api.ImageGallery, args []string) error {
	categoryId := apitype.AllCategories
	if len(args) > 0 {
		categoryId = apitype.CategoryId(args[0])
	}

	for _, image := range gallery.ImagesInCategory(categoryId) {
		marker := " "
		if image.IsFavorite() {
			marker = "*"
		}
		fmt.Printf("%s %-30s %-10s %s (%d bytes)\n",
			marker, image.FileName(), image.CategoryId(), image.MimeType(), image.ByteSize())
	}
	return nil
}

func addImages(gallery api.ImageGallery, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: add <categoryId> <file>...")
	}

	categoryId := apitype.CategoryId(args[0])
	var candidates []*apitype.ImageCandidate
	for _, path := range args[1:] {
		candidates = append(candidates, apitype.NewImageCandidate(filepath.Base(path), categoryId, path))
	}
	return gallery.AddImages(candidates)
}

func removeImage(gallery api.ImageGallery, store *database.ImageStore, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: remove <fileName>")
	}

	image, err := store.FindByFileName(args[0])
	if err != nil {
		return err
	} else if image == nil {
		return fmt.Errorf("no image named '%s'", args[0])
	}
	return gallery.RemoveImage(image.Id())
}

func toggleFavorite(gallery api.ImageGallery, store *database.ImageStore, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: favorite <fileName>")
	}

	image, err := store.FindByFileName(args[0])
	if err != nil {
		return err
	} else if image == nil {
		return fmt.Errorf("no image named '%s'", args[0])
	}
	return gallery.ToggleFavorite(image.Id())
}
