package database

type Image struct {
	Id         string `db:"id"`
	FileName   string `db:"file_name"`
	CategoryId string `db:"category_id"`
	MimeType   string `db:"mime_type"`
	Content    []byte `db:"content"`
	Favorite   bool   `db:"favorite"`
}
