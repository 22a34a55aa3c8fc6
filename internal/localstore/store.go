// Package localstore keeps activities in a local JSON file for the
// standalone terminal tracker. It is not safe for concurrent use.
package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/DragosAvidal/ADworktracker/internal/model"
)

type Store struct {
	path       string
	activities []model.Activity
}

// Open loads the store from path. A missing file yields an empty store.
func Open(path string) (*Store, error) {
	s := &Store{path: path, activities: []model.Activity{}}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := json.Unmarshal(data, &s.activities); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return s, nil
}

// Add assigns the next ID, appends the activity and saves the file.
func (s *Store) Add(a model.Activity) (model.Activity, error) {
	maxID := 0
	for _, existing := range s.activities {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	a.ID = maxID + 1
	s.activities = append(s.activities, a)

	if err := s.save(); err != nil {
		return model.Activity{}, err
	}
	return a, nil
}

// All returns every stored activity ordered by date descending, the same
// order the API store uses.
func (s *Store) All() []model.Activity {
	out := make([]model.Activity, len(s.activities))
	copy(out, s.activities)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID > out[j].ID
	})
	return out
}

// SearchByDate returns the activities logged on the given day.
func (s *Store) SearchByDate(d model.Date) []model.Activity {
	matched := []model.Activity{}
	for _, a := range s.All() {
		if a.Date.Equal(d) {
			matched = append(matched, a)
		}
	}
	return matched
}

// SearchByClient returns the activities logged for the given client.
func (s *Store) SearchByClient(client string) []model.Activity {
	matched := []model.Activity{}
	for _, a := range s.All() {
		if a.Client == client {
			matched = append(matched, a)
		}
	}
	return matched
}

func (s *Store) save() error {
	data, err := json.MarshalIndent(s.activities, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}
