// Package save persists the player's economy and upgrade levels between runs.
package save

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"satoshi-defense/internal/logger"
)

// ErrCorrupt is returned by FileStore.Read when the file exists but is not
// valid save JSON.
var ErrCorrupt = errors.New("corrupt save file")

// SaveData: сохраняемое состояние экономики и улучшений.
type SaveData struct {
	Satoshis      int `json:"satoshis"`
	HighScore     int `json:"high_score"`
	DamageLevel   int `json:"damage_level"`
	FireRateLevel int `json:"fire_rate_level"`
}

// Validate rejects negative counters. Every field is a count that the game
// only ever grows from zero, so a negative value means the file was edited
// or damaged.
func (d SaveData) Validate() error {
	fields := []struct {
		name  string
		value int
	}{
		{"satoshis", d.Satoshis},
		{"high_score", d.HighScore},
		{"damage_level", d.DamageLevel},
		{"fire_rate_level", d.FireRateLevel},
	}
	for _, f := range fields {
		if f.value < 0 {
			return fmt.Errorf("%s is negative: %d", f.name, f.value)
		}
	}
	return nil
}

// Store is the persistence port the game talks to. Load never fails: a
// missing or broken record yields the zero SaveData.
type Store interface {
	Load() SaveData
	Save(SaveData) error
}

// FileStore keeps SaveData as pretty-printed JSON in a single file.
//
// Save is a plain overwrite, not an atomic rename: a crash in the middle of
// a write can leave a truncated file behind, which the next Load treats as
// corrupt and replaces with defaults.
type FileStore struct {
	Path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Read returns the stored data or a wrapped error. A missing file is
// reported as fs.ErrNotExist.
func (s *FileStore) Read() (SaveData, error) {
	var data SaveData
	raw, err := os.ReadFile(s.Path)
	if err != nil {
		return SaveData{}, fmt.Errorf("failed to read save file %s: %w", s.Path, err)
	}
	if err := json.Unmarshal(raw, &data); err != nil {
		return SaveData{}, fmt.Errorf("%w %s: %v", ErrCorrupt, s.Path, err)
	}
	if err := data.Validate(); err != nil {
		return SaveData{}, fmt.Errorf("%w %s: %v", ErrCorrupt, s.Path, err)
	}
	return data, nil
}

func (s *FileStore) Load() SaveData {
	data, err := s.Read()
	switch {
	case err == nil:
		logger.Persistence.Info("loaded %s: %+v", s.Path, data)
	case errors.Is(err, fs.ErrNotExist):
		logger.Persistence.Info("no save file at %s, starting fresh", s.Path)
	default:
		logger.Persistence.Warn("falling back to defaults: %v", err)
	}
	return data
}

func (s *FileStore) Save(data SaveData) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode save data: %w", err)
	}
	if err := os.WriteFile(s.Path, raw, 0644); err != nil {
		return fmt.Errorf("failed to write save file %s: %w", s.Path, err)
	}
	return nil
}

// MemoryStore keeps SaveData in memory. Err, when set, is returned from
// every Save.
type MemoryStore struct {
	Data  SaveData
	Saves int
	Err   error
}

func (m *MemoryStore) Load() SaveData {
	return m.Data
}

func (m *MemoryStore) Save(data SaveData) error {
	m.Saves++
	if m.Err != nil {
		return m.Err
	}
	m.Data = data
	return nil
}
