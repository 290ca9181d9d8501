// Package registry implements Hydrogen's subsystem registry: a thread-safe
// named-entry table tracking each subsystem's lifecycle state and declared
// dependencies. It is the single source of truth the lifecycle controller
// (internal/lifecycle) drives launch and landing decisions from.
package registry

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Subsystem is the capability trait every registered component implements.
// The registry holds Subsystems, not bare function pointers.
type Subsystem interface {
	Init() error
	Shutdown() error
}

// State is one of the five lifecycle states a SubsystemEntry can occupy.
type State int

const (
	Inactive State = iota
	Starting
	Running
	Stopping
	Error
)

// String returns the five valid labels, or "Unknown" for anything else.
func (s State) String() string {
	switch s {
	case Inactive:
		return "Inactive"
	case Starting:
		return "Starting"
	case Running:
		return "Running"
	case Stopping:
		return "Stopping"
	case Error:
		return "Error"
	default:
		return "Unknown"
	}
}

// maxDependencies bounds the dependency list length of a single entry.
const maxDependencies = 20

// entry is the registry's internal representation of a SubsystemEntry.
type entry struct {
	name           string
	subsystem      Subsystem
	state          State
	stateChangedAt time.Time
	dependencies   []string
}

// Registry is the mapping from name to SubsystemEntry, with insertion-stable
// integer ids. All mutating operations take the write lock; read-only
// predicates take the read lock.
type Registry struct {
	mu      sync.RWMutex
	entries []*entry
	byName  map[string]int
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{byName: map[string]int{}}
}

// Reset deallocates every entry and its dependency list, resetting count to
// zero. It is init_registry(): idempotent, and safe to call even if a prior
// caller's operation was interrupted, since it only ever replaces state
// under the lock rather than assuming any invariant about what came before.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = nil
	r.byName = map[string]int{}
	log.Info().Msg("subsystem registry reset")
}

// Register adds a new subsystem under name, returning its id, or -1 if name
// is empty or already registered.
func (r *Registry) Register(name string, s Subsystem) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	if name == "" {
		log.Error().Msg("refusing to register subsystem with empty name")
		return -1
	}
	if _, exists := r.byName[name]; exists {
		log.Error().Str("name", name).Msg("duplicate subsystem registration rejected")
		return -1
	}

	id := len(r.entries)
	r.entries = append(r.entries, &entry{
		name:           name,
		subsystem:      s,
		state:          Inactive,
		stateChangedAt: now(),
	})
	r.byName[name] = id
	log.Info().Str("name", name).Int("id", id).Msg("subsystem registered")
	return id
}

// AddDependency appends depName to id's dependency list. Returns false on an
// invalid id, an empty depName, or if the entry already holds 20
// dependencies. Adding the same name twice succeeds without growing the
// list.
func (r *Registry) AddDependency(id int, depName string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	e := r.entryAt(id)
	if e == nil || depName == "" {
		return false
	}
	for _, d := range e.dependencies {
		if d == depName {
			return true
		}
	}
	if len(e.dependencies) >= maxDependencies {
		log.Error().Str("name", e.name).Str("dependency", depName).Msg("dependency list full, rejecting")
		return false
	}
	e.dependencies = append(e.dependencies, depName)
	return true
}

// UpdateState sets id's state and stateChangedAt. No-op if id is invalid.
func (r *Registry) UpdateState(id int, s State) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e := r.entryAt(id)
	if e == nil {
		return
	}
	e.state = s
	e.stateChangedAt = now()
	log.Debug().Str("name", e.name).Str("state", s.String()).Msg("subsystem state changed")
}

// State returns id's current state, or Inactive for an invalid id.
func (r *Registry) State(id int) State {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e := r.entryAt(id)
	if e == nil {
		return Inactive
	}
	return e.state
}

// IsRunning reports whether id is in the Running state.
func (r *Registry) IsRunning(id int) bool {
	return r.State(id) == Running
}

// IsRunningByName reports whether name is registered and Running.
func (r *Registry) IsRunningByName(name string) bool {
	r.mu.RLock()
	id, ok := r.byName[name]
	r.mu.RUnlock()
	if !ok {
		return false
	}
	return r.IsRunning(id)
}

// IDByName returns name's id, or -1 if not registered.
func (r *Registry) IDByName(name string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byName[name]
	if !ok {
		return -1
	}
	return id
}

// NameByID returns id's name, or "" if invalid.
func (r *Registry) NameByID(id int) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e := r.entryAt(id)
	if e == nil {
		return ""
	}
	return e.name
}

// DependencyCount returns the number of declared dependencies for id, or -1
// for an invalid id.
func (r *Registry) DependencyCount(id int) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e := r.entryAt(id)
	if e == nil {
		return -1
	}
	return len(e.dependencies)
}

// Dependency returns the dependency name at index for id, or ("", false) if
// id or index is out of range.
func (r *Registry) Dependency(id, index int) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e := r.entryAt(id)
	if e == nil || index < 0 || index >= len(e.dependencies) {
		return "", false
	}
	return e.dependencies[index], true
}

// Count returns the number of registered entries.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Subsystem returns the Subsystem registered under id, or nil if invalid.
func (r *Registry) Subsystem(id int) Subsystem {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e := r.entryAt(id)
	if e == nil {
		return nil
	}
	return e.subsystem
}

// DependentsOf returns the ids, in declaration order, of every entry whose
// dependency list names depName directly.
func (r *Registry) DependentsOf(depName string) []int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []int
	for id, e := range r.entries {
		for _, d := range e.dependencies {
			if d == depName {
				out = append(out, id)
				break
			}
		}
	}
	return out
}

// IDsInDeclarationOrder returns every registered id in the order it was
// registered.
func (r *Registry) IDsInDeclarationOrder() []int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]int, len(r.entries))
	for i := range r.entries {
		out[i] = i
	}
	return out
}

// DependencyNames returns a copy of id's declared dependency list.
func (r *Registry) DependencyNames(id int) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e := r.entryAt(id)
	if e == nil {
		return nil
	}
	out := make([]string, len(e.dependencies))
	copy(out, e.dependencies)
	return out
}

// entryAt returns the entry for id, or nil if id is out of range. Callers
// must already hold r.mu.
func (r *Registry) entryAt(id int) *entry {
	if id < 0 || id >= len(r.entries) {
		return nil
	}
	return r.entries[id]
}

// now is a seam so tests can observe deterministic ordering of
// stateChangedAt without depending on wall-clock resolution.
var now = time.Now
