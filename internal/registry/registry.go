// Copyright (c) 2025-2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package registry

import (
	"fmt"
	"maps"
	"slices"
	"sort"
	"sync"

	"github.com/choria-io/upm/model"
)

type backendEntry struct {
	factory model.BackendFactory
}

var (
	backends = make(map[string]*backendEntry)
	mu       sync.Mutex
)

// Clear removes all registered backends
func Clear() {
	mu.Lock()
	defer mu.Unlock()

	backends = make(map[string]*backendEntry)
}

// Register registers a plugin
func Register(p any) error {
	switch tp := p.(type) {
	case model.BackendFactory:
		return registerBackend(tp)
	default:
		return fmt.Errorf("cannot register backend of type %T", p)
	}
}

// MustRegister registers a plugin and panics if registration fails
func MustRegister(p any) {
	err := Register(p)
	if err != nil {
		panic(err)
	}
}

// registerBackend registers a backend factory and returns an error if a backend with the same name already exists
func registerBackend(p model.BackendFactory) error {
	mu.Lock()
	defer mu.Unlock()

	bn := p.Name()

	_, ok := backends[bn]
	if ok {
		return model.ErrDuplicateBackend
	}

	backends[bn] = &backendEntry{factory: p}

	return nil
}

// selectBackends returns a list of backends that can manage the node, by priority
func selectBackends(log model.Logger) []model.BackendFactory {
	mu.Lock()
	defer mu.Unlock()

	type matched struct {
		prio int
		name string
		fact model.BackendFactory
	}

	var found []*matched

	for _, v := range backends {
		ok, priority, err := v.factory.IsManageable()
		if err != nil {
			log.Warn("Could not check if backend is manageable", "backend", v.factory.Name(), "err", err)
			continue
		}

		if ok {
			found = append(found, &matched{priority, v.factory.Name(), v.factory})
		}
	}

	sort.Slice(found, func(i, j int) bool {
		if found[i].prio == found[j].prio {
			return found[i].name < found[j].name
		}
		return found[i].prio < found[j].prio
	})

	var result []model.BackendFactory
	for _, v := range found {
		result = append(result, v.fact)
	}

	return result
}

// selectBackend finds a backend matching name and checks it's manageable before returning it
func selectBackend(name string, log model.Logger) (model.BackendFactory, error) {
	mu.Lock()
	defer mu.Unlock()

	p, ok := backends[name]
	if !ok {
		log.Debug("No backends found", "backend", name)
		return nil, model.ErrBackendNotFound
	}

	ok, _, err := p.factory.IsManageable()
	if err != nil {
		log.Debug("Backend detection failed", "backend", name, "err", err)
		return nil, fmt.Errorf("%w: %w", model.ErrBackendNotManageable, err)
	}

	if !ok {
		log.Debug("Backend cannot be used", "backend", name)
		return nil, fmt.Errorf("%w: %s", model.ErrBackendNotManageable, "not applicable to this node")
	}

	return p.factory, nil
}

// Names returns a sorted list of all registered backend names
func Names() []string {
	mu.Lock()
	defer mu.Unlock()

	return slices.Sorted(maps.Keys(backends))
}

// FindSuitableBackend creates the named backend, or the most preferred manageable one when name is empty
func FindSuitableBackend(name string, opts model.BackendOptions) (model.Backend, error) {
	var selected model.BackendFactory

	if name == "" {
		found := selectBackends(opts.Logger)
		if len(found) == 0 {
			return nil, model.ErrNoSuitableBackend
		}

		selected = found[0]
		opts.Logger.Debug("Selected backend", "backend", selected.Name())
	} else {
		fact, err := selectBackend(name, opts.Logger)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", model.ErrNoSuitableBackend, err)
		}

		selected = fact
	}

	return selected.New(opts)
}
