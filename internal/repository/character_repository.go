package repository

import (
	"sync"

	"rpg-api/backend/internal/models"
)

type CharacterRepository interface {
	All() []models.Character
	Append(character models.Character) []models.Character
	Count() int
}

// MemoryCharacterRepository keeps the catalog in process memory for the
// lifetime of the server. Reads share the lock, appends are exclusive.
type MemoryCharacterRepository struct {
	mu         sync.RWMutex
	characters []models.Character
}

func NewMemoryCharacterRepository(seed []models.Character) *MemoryCharacterRepository {
	characters := make([]models.Character, len(seed))
	copy(characters, seed)
	return &MemoryCharacterRepository{characters: characters}
}

// All returns a snapshot in insertion order
func (r *MemoryCharacterRepository) All() []models.Character {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot()
}

// Append adds the character at the end and returns the updated snapshot
func (r *MemoryCharacterRepository) Append(character models.Character) []models.Character {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.characters = append(r.characters, character)
	return r.snapshot()
}

func (r *MemoryCharacterRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.characters)
}

func (r *MemoryCharacterRepository) snapshot() []models.Character {
	out := make([]models.Character, len(r.characters))
	copy(out, r.characters)
	return out
}

// SeedCharacters returns the fixed sample data loaded at startup
func SeedCharacters() []models.Character {
	return []models.Character{
		{ID: 1, Name: "Frodo", HitPoints: 100, Strength: 17, Defense: 23, Intelligence: 33, Class: models.ClassKnight},
		{ID: 2, Name: "Sam", HitPoints: 100, Strength: 15, Defense: 25, Intelligence: 30, Class: models.ClassKnight},
		{ID: 3, Name: "Galadriel", HitPoints: 100, Strength: 18, Defense: 21, Intelligence: 35, Class: models.ClassCleric},
		{ID: 4, Name: "Gandalf", HitPoints: 100, Strength: 18, Defense: 18, Intelligence: 37, Class: models.ClassMage},
		{ID: 5, Name: "Hobbit", HitPoints: 100, Strength: 20, Defense: 17, Intelligence: 31, Class: models.ClassKnight},
		{ID: 6, Name: "Celeborn", HitPoints: 100, Strength: 21, Defense: 13, Intelligence: 34, Class: models.ClassCleric},
		{ID: 7, Name: "Radagast", HitPoints: 100, Strength: 25, Defense: 11, Intelligence: 35, Class: models.ClassMage},
	}
}
