package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// LocalStorage writes uploads to a directory served by the HTTP layer under
// PublicPath.
type LocalStorage struct {
	Dir        string
	PublicPath string
}

func (s *LocalStorage) Save(data []byte, filename, contentType string) (string, error) {
	if _, err := os.Stat(s.Dir); os.IsNotExist(err) {
		if err := os.MkdirAll(s.Dir, os.ModePerm); err != nil {
			return "", err
		}
	}

	name := fmt.Sprintf("%s-%s", uuid.NewString(), filepath.Base(filename))
	if err := os.WriteFile(filepath.Join(s.Dir, name), data, 0o644); err != nil {
		return "", err
	}
	return s.PublicPath + "/" + name, nil
}
