package storage

// FileStorage persists an uploaded binary and returns the public reference
// path stored on the item record. Nothing ever deletes stored files: an item
// update or delete leaves the old image behind.
type FileStorage interface {
	Save(data []byte, filename, contentType string) (string, error)
}
