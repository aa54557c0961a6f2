package filter

import (
	"strings"
	"vincit.fi/image-gallery/api/apitype"
)

// ByCategory returns the records belonging to the given category. The
// reserved "all" category matches every record.
func ByCategory(records []*apitype.ImageRecord, categoryId apitype.CategoryId) []*apitype.ImageRecord {
	if categoryId.IsAll() {
		return records
	}

	var matched []*apitype.ImageRecord
	for _, record := range records {
		if record.CategoryId() == categoryId {
			matched = append(matched, record)
		}
	}
	return matched
}

// BySearch returns the records whose file name contains the query,
// compared case-insensitively. A blank query matches everything.
func BySearch(records []*apitype.ImageRecord, query string) []*apitype.ImageRecord {
	query = strings.TrimSpace(query)
	if query == "" {
		return records
	}

	query = strings.ToLower(query)
	var matched []*apitype.ImageRecord
	for _, record := range records {
		if strings.Contains(strings.ToLower(record.FileName()), query) {
			matched = append(matched, record)
		}
	}
	return matched
}

// Filtered applies the category filter first and the search filter on
// top of it.
func Filtered(records []*apitype.ImageRecord, categoryId apitype.CategoryId, query string) []*apitype.ImageRecord {
	return BySearch(ByCategory(records, categoryId), query)
}

func Favorites(records []*apitype.ImageRecord) []*apitype.ImageRecord {
	var favorites []*apitype.ImageRecord
	for _, record := range records {
		if record.IsFavorite() {
			favorites = append(favorites, record)
		}
	}
	return favorites
}

// NonFavorites is the complement of Favorites. Used when clearing only
// the favorite images.
func NonFavorites(records []*apitype.ImageRecord) []*apitype.ImageRecord {
	var rest []*apitype.ImageRecord
	for _, record := range records {
		if !record.IsFavorite() {
			rest = append(rest, record)
		}
	}
	return rest
}
