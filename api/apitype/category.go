package apitype

type CategoryId string

// AllCategories is the reserved pseudo category that matches every image.
const AllCategories = CategoryId("all")

func (s CategoryId) IsAll() bool {
	return s == AllCategories
}
