package gamedata

import (
	"errors"
	"math/rand"
)

// MobRegistry holds loaded creature definitions and provides weighted
// spawning.
type MobRegistry struct {
	mobs        []MobDef
	totalWeight int
}

// NewMobRegistry creates a registry from loaded definitions.
func NewMobRegistry(mobs []MobDef) *MobRegistry {
	total := 0
	for _, m := range mobs {
		total += m.SpawnWeight
	}
	return &MobRegistry{mobs: mobs, totalWeight: total}
}

// LoadMobRegistry loads a registry from the embedded mobs.json.
func LoadMobRegistry() (*MobRegistry, error) {
	mobs, err := LoadMobs()
	if err != nil {
		return nil, err
	}
	if len(mobs) == 0 {
		return nil, errors.New("no creatures defined in mobs.json")
	}
	return NewMobRegistry(mobs), nil
}

// MustLoadMobRegistry loads a registry, panicking on error.
func MustLoadMobRegistry() *MobRegistry {
	registry, err := LoadMobRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// Count returns the number of creature types.
func (r *MobRegistry) Count() int {
	return len(r.mobs)
}

// All returns every definition.
func (r *MobRegistry) All() []MobDef {
	return r.mobs
}

// GetByID returns the definition with the given ID, or nil.
func (r *MobRegistry) GetByID(id string) *MobDef {
	for i := range r.mobs {
		if r.mobs[i].ID == id {
			return &r.mobs[i]
		}
	}
	return nil
}

// SpawnRandom selects a definition with probability proportional to
// its spawn weight.
func (r *MobRegistry) SpawnRandom(rng *rand.Rand) *MobDef {
	if r.totalWeight <= 0 || len(r.mobs) == 0 {
		return nil
	}
	roll := rng.Intn(r.totalWeight)
	cumulative := 0
	for i := range r.mobs {
		cumulative += r.mobs[i].SpawnWeight
		if roll < cumulative {
			return &r.mobs[i]
		}
	}
	return &r.mobs[0]
}
