package wishlist

import (
	"os"
	"path/filepath"
)

// FileStorage keeps one wishlist slot as a JSON file under dir, named after
// its key.
type FileStorage struct {
	dir string
	key string
}

func NewFileStorage(dir, key string) *FileStorage {
	if key == "" {
		key = DefaultKey
	}
	return &FileStorage{dir: dir, key: key}
}

func (f *FileStorage) path() string {
	return filepath.Join(f.dir, f.key+".json")
}

func (f *FileStorage) Load() ([]byte, bool, error) {
	data, err := os.ReadFile(f.path())
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (f *FileStorage) Save(data []byte) error {
	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(f.path(), data, 0o644)
}
