package imagetools

import (
	"bytes"
	"github.com/rwcarlsen/goexif/exif"
)

const exifUnchangedOrientation = 1

// orientationFromContent resolves the EXIF orientation stored in the
// binary content. Content without EXIF data (PNG, stripped JPEG) maps
// to the unchanged orientation.
func orientationFromContent(content []byte) int {
	decoded, err := exif.Decode(bytes.NewReader(content))
	if err != nil {
		return exifUnchangedOrientation
	}

	tag, err := decoded.Get(exif.Orientation)
	if err != nil {
		return exifUnchangedOrientation
	}

	orientation, err := tag.Int(0)
	if err != nil {
		return exifUnchangedOrientation
	}
	return orientation
}

// exifOrientationToAngleAndFlip maps an EXIF orientation value to a
// counter-clockwise rotation angle and a horizontal flip.
func exifOrientationToAngleAndFlip(orientation int) (float64, bool) {
	switch orientation {
	case 1:
		return 0, false
	case 2:
		return 0, true
	case 3:
		return 180, false
	case 4:
		return 180, true
	case 5:
		return 270, true
	case 6:
		return 270, false
	case 7:
		return 90, true
	case 8:
		return 90, false
	default:
		return 0, false
	}
}
