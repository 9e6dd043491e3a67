package progress

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	items   map[string][]byte
	saveErr error
}

func newMemStore() *memStore {
	return &memStore{items: map[string][]byte{}}
}

func (m *memStore) LoadItem(key string) ([]byte, error) {
	return m.items[key], nil
}

func (m *memStore) SaveItem(key string, data []byte) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.items[key] = data
	return nil
}

func TestLoad_Missing(t *testing.T) {
	p, err := Load(newMemStore())
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestSaveLoad(t *testing.T) {
	s := newMemStore()
	want := &SavedProgress{BestAcorns: 7, MusicVolume: 0.25, SFXVolume: 1, Muted: true}

	require.NoError(t, Save(s, want))
	got, err := Load(s)

	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.JSONEq(t, `{"bestAcorns":7,"musicVolume":0.25,"sfxVolume":1,"muted":true}`, string(s.items["progress"]))
}

func TestLoad_Corrupt(t *testing.T) {
	s := newMemStore()
	s.items["progress"] = []byte("{nope")

	_, err := Load(s)
	assert.Error(t, err)
}

func TestSave_Error(t *testing.T) {
	s := newMemStore()
	s.saveErr = errors.New("disk full")

	err := Save(s, &SavedProgress{})
	assert.ErrorIs(t, err, s.saveErr)
}

func TestRecordBest(t *testing.T) {
	p := &SavedProgress{BestAcorns: 3}

	assert.False(t, p.RecordBest(2))
	assert.False(t, p.RecordBest(3))
	assert.True(t, p.RecordBest(5))
	assert.Equal(t, 5, p.BestAcorns)
}
