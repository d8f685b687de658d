package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/muurk/fleetmaint/internal/vehicle"
)

var (
	// ErrNotFound is returned for an unknown vehicle id
	ErrNotFound = errors.New("vehicle not found")

	// ErrInvalidDate is returned when a patch carries a date not in vehicle.EstimateLayout
	ErrInvalidDate = errors.New("invalid estimatedDate")
)

// Store is an in-memory vehicle collection, safe for concurrent use
type Store struct {
	mu       sync.RWMutex
	vehicles []vehicle.Vehicle
	index    map[string]int
}

// NewStore creates a store holding a copy of seed. Vehicles without an id are
// given a random one.
func NewStore(seed []vehicle.Vehicle) *Store {
	s := &Store{
		vehicles: make([]vehicle.Vehicle, 0, len(seed)),
		index:    make(map[string]int, len(seed)),
	}
	for _, v := range seed {
		if v.ID == "" {
			v.ID = uuid.NewString()
		}
		if _, dup := s.index[v.ID]; dup {
			continue
		}
		s.index[v.ID] = len(s.vehicles)
		s.vehicles = append(s.vehicles, v)
	}
	return s
}

// List returns a copy of all vehicles
func (s *Store) List() []vehicle.Vehicle {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]vehicle.Vehicle, len(s.vehicles))
	copy(out, s.vehicles)
	return out
}

// Get returns a copy of one vehicle
func (s *Store) Get(id string) (vehicle.Vehicle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return vehicle.Vehicle{}, ErrNotFound
	}
	return s.vehicles[i], nil
}

// Update merges patch into the stored vehicle and returns the result
func (s *Store) Update(id string, patch vehicle.Patch) (vehicle.Vehicle, error) {
	if patch.EstimatedDate != "" {
		if _, err := vehicle.ParseEstimate(patch.EstimatedDate); err != nil {
			return vehicle.Vehicle{}, fmt.Errorf("%w: %v", ErrInvalidDate, err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return vehicle.Vehicle{}, ErrNotFound
	}
	s.vehicles[i].Apply(patch)
	return s.vehicles[i], nil
}

// Len returns the number of stored vehicles
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.vehicles)
}

// DefaultSeed returns a small demo fleet with fresh ids
func DefaultSeed() []vehicle.Vehicle {
	return []vehicle.Vehicle{
		{
			ID:            uuid.NewString(),
			DisplayID:     101,
			Make:          "Ford",
			Model:         "Transit",
			Description:   "Long wheelbase panel van",
			Km:            vehicle.Km(50000),
			EstimatedDate: "2025/15/03",
			Person:        "Alice",
		},
		{
			ID:          uuid.NewString(),
			DisplayID:   102,
			Make:        "Renault",
			Model:       "Kangoo",
			Description: "City delivery",
			Km:          vehicle.Km(12850.5),
		},
		{
			ID:        uuid.NewString(),
			DisplayID: 103,
			Make:      "Iveco",
			Model:     "Daily",
		},
		{
			ID:            uuid.NewString(),
			DisplayID:     104,
			Make:          "Mercedes-Benz",
			Model:         "Sprinter",
			Description:   "Refrigerated",
			Km:            vehicle.Km(0),
			Image:         "https://images.example/sprinter.png",
			EstimatedDate: "2025/01/06",
			Person:        "Bob",
		},
	}
}

// LoadSeed reads vehicles from a .json, .yaml or .yml file
func LoadSeed(path string) ([]vehicle.Vehicle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var vehicles []vehicle.Vehicle
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, &vehicles)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &vehicles)
	default:
		return nil, fmt.Errorf("unsupported seed file extension %q (want .json, .yaml or .yml)", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}
	return vehicles, nil
}
