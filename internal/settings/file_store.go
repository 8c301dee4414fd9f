package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"nova-remains/internal/logging"
)

// FileStore хранит настройки JSON-файлом <dir>/novaRemainsSettings.json.
type FileStore struct {
	path string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{path: filepath.Join(dir, Key+".json")}
}

func (f *FileStore) Path() string {
	return f.path
}

func (f *FileStore) Load() (Settings, error) {
	v := viper.New()
	v.SetConfigFile(f.path)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return Defaults(), nil
		}
		return Defaults(), fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	// Поля, отсутствующие в файле, остаются значениями по умолчанию
	s := Defaults()
	if err := v.UnmarshalKey(Key, &s); err != nil {
		return Defaults(), fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return s.Normalize(), nil
}

func (f *FileStore) Save(s Settings) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
		return fmt.Errorf("error creating settings dir: %w", err)
	}
	// viper приводит ключи к нижнему регистру, поэтому пишем сами
	data, err := json.MarshalIndent(map[string]Settings{Key: s.Normalize()}, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding settings: %w", err)
	}
	if err := os.WriteFile(f.path, data, 0644); err != nil {
		return fmt.Errorf("error writing settings: %w", err)
	}
	logging.Logger.Debug().Str("path", f.path).Msg("settings saved")
	return nil
}

func (f *FileStore) Clear() error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error removing settings: %w", err)
	}
	return nil
}
