package imagetools

import (
	"bytes"
	"image"
	"image/color"
	"time"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
	"vincit.fi/image-gallery/api/apitype"
	"vincit.fi/image-gallery/common/logger"
)

const (
	thumbnailWidth  = 100
	thumbnailHeight = thumbnailWidth

	viewWidth  = 1920
	viewHeight = 1080
)

// Converter derives display images from a record's binary content.
type Converter struct {
}

func NewImageConverter() *Converter {
	return &Converter{}
}

func (s *Converter) ConvertToDisplay(mimeType string, content []byte) (*apitype.DisplayImage, error) {
	startTime := time.Now()

	decoded, err := imaging.Decode(bytes.NewReader(content))
	if err != nil {
		logger.Error.Print("Could not decode image content ", err)
		return nil, err
	}

	oriented := applyExifOrientation(decoded, content)
	thumbnail := scaleThumbnail(oriented)
	view := scaleView(oriented)

	endTime := time.Now()
	logger.Trace.Printf("Display image (%s) derived in %s", mimeType, endTime.Sub(startTime).String())

	return apitype.NewDisplayImage(thumbnail, view), nil
}

func applyExifOrientation(img image.Image, content []byte) image.Image {
	orientation := orientationFromContent(content)
	if orientation == exifUnchangedOrientation {
		return img
	}

	angle, flip := exifOrientationToAngleAndFlip(orientation)
	if angle != 0 {
		img = imaging.Rotate(img, angle, color.Gray{})
	}
	if flip {
		img = imaging.FlipH(img)
	}
	return img
}

func scaleThumbnail(img image.Image) image.Image {
	bounds := img.Bounds()
	if bounds.Dx() <= thumbnailWidth && bounds.Dy() <= thumbnailHeight {
		return img
	}

	newWidth, newHeight := ScaleToFit(bounds.Dx(), bounds.Dy(), thumbnailWidth, thumbnailHeight)
	return imaging.Resize(img, newWidth, newHeight, imaging.Linear)
}

func scaleView(img image.Image) image.Image {
	bounds := img.Bounds()
	if bounds.Dx() <= viewWidth && bounds.Dy() <= viewHeight {
		return img
	}

	newWidth, newHeight := ScaleToFit(bounds.Dx(), bounds.Dy(), viewWidth, viewHeight)
	return resize.Resize(uint(newWidth), uint(newHeight), img, resize.Bilinear)
}

func ScaleToFit(sourceWidth int, sourceHeight int, targetWidth int, targetHeight int) (int, int) {
	ratio := float32(sourceWidth) / float32(sourceHeight)
	newWidth := int(float32(targetHeight) * ratio)
	newHeight := targetHeight

	if newWidth > targetWidth {
		newWidth = targetWidth
		newHeight = int(float32(targetWidth) / ratio)
	}
	return newWidth, newHeight
}
