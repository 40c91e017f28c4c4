package oid

import (
	"iter"
	"maps"
	"slices"
	"sync"
)

// Entry holds the descriptive names of an object identifier.
type Entry struct {
	Name    string // short friendly name, e.g. "commonName"
	Comment string // longer description, e.g. "X.520 DN component"
}

// A Dictionary resolves dotted decimal object identifiers to descriptive names.
// Implementations must be safe for concurrent use.
type Dictionary interface {
	Lookup(value string) (Entry, bool)
}

// Registry is a [Dictionary] that can be extended at runtime. The zero value
// is an empty registry ready to use. A Registry is safe for concurrent use.
type Registry struct {
	once    sync.Once
	seed    map[string]Entry
	mu      sync.RWMutex
	entries map[string]Entry
}

// Default is the registry used when no other dictionary is configured. It is
// populated with well-known identifiers from X.500, PKIX, PKCS and related
// standards on first use.
var Default = &Registry{seed: wellKnown}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

func (r *Registry) init() {
	r.once.Do(func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		if r.entries == nil {
			r.entries = make(map[string]Entry, len(r.seed))
		}
		maps.Copy(r.entries, r.seed)
	})
}

// Lookup returns the entry registered for value.
func (r *Registry) Lookup(value string) (Entry, bool) {
	r.init()
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[value]
	return e, ok
}

// Register adds or replaces the entry for the dotted decimal value. value must
// be a valid object identifier as accepted by [Encode].
func (r *Registry) Register(value, name, comment string) error {
	if _, err := Encode(value); err != nil {
		return err
	}
	r.init()
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.entries == nil {
		r.entries = make(map[string]Entry)
	}
	r.entries[value] = Entry{Name: name, Comment: comment}
	return nil
}

// Len returns the number of registered identifiers.
func (r *Registry) Len() int {
	r.init()
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// All returns an iterator over a snapshot of the registered identifiers in
// lexical order of their dotted values.
func (r *Registry) All() iter.Seq2[string, Entry] {
	r.init()
	r.mu.RLock()
	snapshot := maps.Clone(r.entries)
	r.mu.RUnlock()
	return func(yield func(string, Entry) bool) {
		for _, k := range slices.Sorted(maps.Keys(snapshot)) {
			if !yield(k, snapshot[k]) {
				return
			}
		}
	}
}
