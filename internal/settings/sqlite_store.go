package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"nova-remains/internal/logging"
)

// blob строка таблицы settings: имя блоба и JSON-значение.
type blob struct {
	Name      string `gorm:"primaryKey;size:64"`
	Value     string `gorm:"type:text"`
	UpdatedAt time.Time
}

func (blob) TableName() string {
	return "settings"
}

// SQLiteStore хранит блоб настроек в таблице SQLite.
type SQLiteStore struct {
	db *gorm.DB
}

// OpenSQLite открывает базу path. Пустой path - база в памяти.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if path == "" {
		path = "file::memory:?cache=shared"
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("error opening settings db: %w", err)
	}
	if err := db.AutoMigrate(&blob{}); err != nil {
		return nil, fmt.Errorf("error migrating settings db: %w", err)
	}
	logging.Logger.Debug().Str("path", path).Msg("settings db ready")
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Load() (Settings, error) {
	var row blob
	err := s.db.First(&row, "name = ?", Key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Defaults(), nil
	}
	if err != nil {
		return Defaults(), fmt.Errorf("error reading settings: %w", err)
	}

	st := Defaults()
	if err := json.Unmarshal([]byte(row.Value), &st); err != nil {
		return Defaults(), fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return st.Normalize(), nil
}

func (s *SQLiteStore) Save(st Settings) error {
	data, err := json.Marshal(st.Normalize())
	if err != nil {
		return fmt.Errorf("error encoding settings: %w", err)
	}
	row := blob{Name: Key, Value: string(data)}
	if err := s.db.Save(&row).Error; err != nil {
		return fmt.Errorf("error writing settings: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Clear() error {
	if err := s.db.Delete(&blob{}, "name = ?", Key).Error; err != nil {
		return fmt.Errorf("error removing settings: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Open создаёт хранилище по имени из конфигурации: file или sqlite.
func Open(kind, dir string) (Store, error) {
	switch kind {
	case "", "file":
		return NewFileStore(dir), nil
	case "sqlite":
		return OpenSQLite(filepath.Join(dir, Key+".db"))
	default:
		return nil, fmt.Errorf("unknown settings store %q", kind)
	}
}
