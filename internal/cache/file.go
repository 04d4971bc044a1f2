package cache

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/jadavison91/gametime/internal/models"
)

const cacheFileName = "games_cache.json"

// fileStore is the durable file tier. Writes go to a temp file first
// and are renamed into place so a crash mid-write never leaves a torn
// cache file.
type fileStore struct {
	dir string
}

func newFileStore(dir string) *fileStore {
	return &fileStore{dir: dir}
}

func (f *fileStore) path() string {
	return filepath.Join(f.dir, cacheFileName)
}

func (f *fileStore) save(games []models.Game) error {
	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(games, "", "  ")
	if err != nil {
		return err
	}

	target := f.path()
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, target)
}

func (f *fileStore) load() ([]models.Game, error) {
	data, err := os.ReadFile(f.path())
	if err != nil {
		return nil, err
	}

	var games []models.Game
	if err := json.Unmarshal(data, &games); err != nil {
		return nil, err
	}
	return games, nil
}

func (f *fileStore) clear() {
	_ = os.Remove(f.path())
}
