// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// loadFile читает JSON-массив определений. Отсутствующий файл не ошибка:
// встроенные определения остаются в силе.
func loadFile[T any](path string) ([]T, bool, error) {
	file, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read definitions file %s: %w", path, err)
	}

	var out []T
	if err := json.Unmarshal(file, &out); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal definitions %s: %w", path, err)
	}
	return out, true, nil
}

// LoadCharacterDefinitions читает characters.json и дополняет/перекрывает
// CharacterLibrary. Новые персонажи добавляются в конец CharacterOrder.
func LoadCharacterDefinitions(path string) (int, error) {
	list, ok, err := loadFile[CharacterDefinition](path)
	if err != nil || !ok {
		return 0, err
	}
	for _, def := range list {
		if def.ID == "" {
			return 0, fmt.Errorf("character without id in %s", path)
		}
	}
	for _, def := range list {
		if _, exists := CharacterLibrary[def.ID]; !exists {
			CharacterOrder = append(CharacterOrder, def.ID)
		}
		CharacterLibrary[def.ID] = def
	}
	return len(list), nil
}

// LoadEnemyDefinitions читает enemies.json и дополняет/перекрывает EnemyLibrary.
func LoadEnemyDefinitions(path string) (int, error) {
	list, ok, err := loadFile[EnemyDefinition](path)
	if err != nil || !ok {
		return 0, err
	}
	for _, def := range list {
		EnemyLibrary[def.ID] = def
	}
	return len(list), nil
}

// LoadItemDefinitions читает items.json и дополняет/перекрывает ItemLibrary.
func LoadItemDefinitions(path string) (int, error) {
	list, ok, err := loadFile[ItemDefinition](path)
	if err != nil || !ok {
		return 0, err
	}
	for _, def := range list {
		if _, exists := ItemLibrary[def.ID]; !exists {
			ShopStock = append(ShopStock, def.ID)
		}
		ItemLibrary[def.ID] = def
	}
	return len(list), nil
}

// LoadMissionDefinitions читает missions.json и дополняет/перекрывает MissionLibrary.
func LoadMissionDefinitions(path string) (int, error) {
	list, ok, err := loadFile[MissionDefinition](path)
	if err != nil || !ok {
		return 0, err
	}
	for _, def := range list {
		if _, exists := MissionLibrary[def.ID]; !exists {
			MissionOrder = append(MissionOrder, def.ID)
		}
		MissionLibrary[def.ID] = def
	}
	return len(list), nil
}

// LoadAll загружает все файлы определений из каталога dir.
// Возвращает количество загруженных записей по каждому файлу.
func LoadAll(dir string) (map[string]int, error) {
	loaded := make(map[string]int)
	if dir == "" {
		return loaded, nil
	}

	loaders := []struct {
		file string
		load func(string) (int, error)
	}{
		{"characters.json", LoadCharacterDefinitions},
		{"enemies.json", LoadEnemyDefinitions},
		{"items.json", LoadItemDefinitions},
		{"missions.json", LoadMissionDefinitions},
	}
	for _, l := range loaders {
		n, err := l.load(filepath.Join(dir, l.file))
		if err != nil {
			return loaded, err
		}
		loaded[l.file] = n
	}
	return loaded, nil
}
