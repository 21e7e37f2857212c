// Package registry maps stable string keys to scene factories. Optional
// capabilities (tour points, disposer) are probed once at registration, so
// call sites check a flag instead of sprinkling type assertions.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"worldshop/internal/scene"
	"worldshop/internal/tour"
)

// Scene is the contract every workshop scene implements: a stable name, the
// primitives it places, and its footprint for grid spacing.
type Scene interface {
	Name() string
	Build() []scene.Object
	Bounds() scene.Bounds
}

// TourProvider is an optional capability: scenes that publish camera
// waypoints for scripted tours.
type TourProvider interface {
	TourPoints() []tour.Waypoint
}

// Disposer is an optional capability: scenes that hold resources needing
// explicit release when the viewer tears down.
type Disposer interface {
	Dispose()
}

// Registration describes one registered scene and its probed capabilities.
type Registration struct {
	Key         string
	HasTour     bool
	HasDisposer bool

	factory func() Scene
}

// New builds a fresh scene instance.
func (r *Registration) New() Scene {
	return r.factory()
}

var (
	mu            sync.RWMutex
	registrations = make(map[string]*Registration)
)

// Register adds a scene factory under key. The factory is invoked once to
// probe capabilities; duplicate keys and nil factories or scenes are errors.
func Register(key string, factory func() Scene) error {
	if factory == nil {
		return fmt.Errorf("registry: nil factory for %q", key)
	}
	probe := factory()
	if probe == nil {
		return fmt.Errorf("registry: factory for %q returned nil", key)
	}

	mu.Lock()
	defer mu.Unlock()
	if _, exists := registrations[key]; exists {
		return fmt.Errorf("registry: duplicate scene key %q", key)
	}

	_, hasTour := probe.(TourProvider)
	_, hasDisposer := probe.(Disposer)
	registrations[key] = &Registration{
		Key:         key,
		HasTour:     hasTour,
		HasDisposer: hasDisposer,
		factory:     factory,
	}
	return nil
}

// Lookup returns the registration for key.
func Lookup(key string) (*Registration, error) {
	mu.RLock()
	defer mu.RUnlock()
	reg, ok := registrations[key]
	if !ok {
		return nil, fmt.Errorf("registry: unknown scene %q", key)
	}
	return reg, nil
}

// Keys returns all registered keys in sorted order, so enumeration at
// startup is deterministic.
func Keys() []string {
	mu.RLock()
	defer mu.RUnlock()
	keys := make([]string, 0, len(registrations))
	for k := range registrations {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// BuildEntries instantiates every registered scene in key order and returns
// compositor input plus the instances (for capability use and teardown).
func BuildEntries() ([]scene.Entry, []Scene) {
	keys := Keys()
	entries := make([]scene.Entry, 0, len(keys))
	instances := make([]Scene, 0, len(keys))
	for _, key := range keys {
		reg, err := Lookup(key)
		if err != nil {
			continue
		}
		s := reg.New()
		entries = append(entries, scene.Entry{
			Name:    s.Name(),
			Objects: s.Build(),
			Bounds:  s.Bounds(),
		})
		instances = append(instances, s)
	}
	return entries, instances
}

// Reset clears all registrations. Tests only.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	registrations = make(map[string]*Registration)
}
