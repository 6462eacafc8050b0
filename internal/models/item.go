package models

// Item is a catalog product. Image holds the public reference returned by the
// file storage (a /uploads/ path for local storage, a full URL for S3) and is
// nil when no image was ever uploaded.
type Item struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       *string `json:"image"`
}
