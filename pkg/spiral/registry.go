package spiral

import (
	"fmt"
	"sort"
	"sync"
)

// Walker names pre-registered by NewRegistry.
const (
	NameChebyshev            = "chebyshev"
	NameManhattan            = "manhattan"
	NameEuclidean            = "euclidean"
	NameEuclideanIncremental = "euclidean-incremental"
)

// Constructor builds a walker around (x, y) for maxDistance rings.
type Constructor[T Integer] func(x, y, maxDistance T) (Iterator[T], error)

// Registry maps walker names to constructors. It is safe for concurrent use.
type Registry[T Integer] struct {
	mu           sync.RWMutex
	constructors map[string]Constructor[T]
	metrics      map[string]Metric
}

// NewRegistry creates a Registry with the standard walkers pre-registered.
//
// Pre-registered walkers:
//   - "chebyshev": NewChebyshev
//   - "manhattan": NewManhattan
//   - "euclidean": NewEuclidean (table strategy)
//   - "euclidean-incremental": NewEuclideanIncremental
func NewRegistry[T Integer]() *Registry[T] {
	r := &Registry[T]{
		constructors: make(map[string]Constructor[T]),
		metrics:      make(map[string]Metric),
	}
	r.Register(NameChebyshev, Chebyshev, constructor(NewChebyshev[T]))
	r.Register(NameManhattan, Manhattan, constructor(NewManhattan[T]))
	r.Register(NameEuclidean, Euclidean, constructor(NewEuclidean[T]))
	r.Register(NameEuclideanIncremental, Euclidean, constructor(NewEuclideanIncremental[T]))
	return r
}

// constructor drops the concrete walker type without turning a nil walker
// into a non-nil Iterator.
func constructor[T Integer, S Iterator[T]](newWalker func(x, y, maxDistance T) (S, error)) Constructor[T] {
	return func(x, y, maxDistance T) (Iterator[T], error) {
		it, err := newWalker(x, y, maxDistance)
		if err != nil {
			return nil, err
		}
		return it, nil
	}
}

// Register adds or replaces a walker.
//
// Parameters:
//   - name: The unique identifier of the walker.
//   - metric: The metric whose rings the walker produces.
//   - c: The constructor.
func (r *Registry[T]) Register(name string, metric Metric, c Constructor[T]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.constructors[name] = c
	r.metrics[name] = metric
}

// Create builds a new walker by name.
func (r *Registry[T]) Create(name string, x, y, maxDistance T) (Iterator[T], error) {
	r.mu.RLock()
	c, ok := r.constructors[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMetric, name)
	}
	return c(x, y, maxDistance)
}

// MustCreate is like Create but panics on error. It is meant for
// initialisation code with constant arguments.
func (r *Registry[T]) MustCreate(name string, x, y, maxDistance T) Iterator[T] {
	it, err := r.Create(name, x, y, maxDistance)
	if err != nil {
		panic(fmt.Sprintf("spiral: cannot create %s walker: %v", name, err))
	}
	return it
}

// Metric returns the metric of a registered walker.
func (r *Registry[T]) Metric(name string) (Metric, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.metrics[name]
	return m, ok
}

// Has reports whether a walker with the given name is registered.
func (r *Registry[T]) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.constructors[name]
	return ok
}

// List returns the registered walker names, sorted.
func (r *Registry[T]) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.constructors))
	for name := range r.constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
