// Package progress stores the player's best score and audio settings as a
// JSON item in a key/value store such as a gdata.Manager.
package progress

import (
	"encoding/json"
	"fmt"
)

const itemKey = "progress"

// Store is the subset of gdata.Manager used here.
type Store interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// SavedProgress represents the data stored on disk
type SavedProgress struct {
	BestAcorns  int     `json:"bestAcorns"`
	MusicVolume float64 `json:"musicVolume"`
	SFXVolume   float64 `json:"sfxVolume"`
	Muted       bool    `json:"muted"`
}

// Load reads the saved progress. A missing item yields (nil, nil).
func Load(s Store) (*SavedProgress, error) {
	data, err := s.LoadItem(itemKey)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", itemKey, err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var p SavedProgress
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse %s: %w", itemKey, err)
	}
	return &p, nil
}

func Save(s Store, p *SavedProgress) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("serialize %s: %w", itemKey, err)
	}
	if err := s.SaveItem(itemKey, data); err != nil {
		return fmt.Errorf("save %s: %w", itemKey, err)
	}
	return nil
}

// RecordBest raises BestAcorns to collected and reports whether it did.
func (p *SavedProgress) RecordBest(collected int) bool {
	if collected <= p.BestAcorns {
		return false
	}
	p.BestAcorns = collected
	return true
}
