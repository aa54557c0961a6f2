package database

import (
	"vincit.fi/image-gallery/api/apitype"
)

func toDbImage(record *apitype.ImageRecord) *Image {
	return &Image{
		Id:         string(record.Id()),
		FileName:   record.FileName(),
		CategoryId: string(record.CategoryId()),
		MimeType:   record.MimeType(),
		Content:    record.Content(),
		Favorite:   record.IsFavorite(),
	}
}

func toApiImageRecord(image *Image) *apitype.ImageRecord {
	return apitype.NewImageRecord(
		apitype.ImageId(image.Id),
		image.FileName,
		apitype.CategoryId(image.CategoryId),
		image.MimeType,
		image.Content,
		image.Favorite,
	)
}

func toApiImageRecords(images []Image) []*apitype.ImageRecord {
	records := make([]*apitype.ImageRecord, len(images))
	for i, image := range images {
		img := image
		records[i] = toApiImageRecord(&img)
	}
	return records
}
