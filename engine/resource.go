package engine

import (
	"reflect"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/oakmund/tilerpg/core"
)

// ResourceStore is a container for singleton game resources, keyed by
// type. Systems fetch what they need at construction time instead of
// coupling to the composition root.
type ResourceStore struct {
	mu        sync.RWMutex
	resources map[reflect.Type]any
}

// NewResourceStore creates an empty resource store.
func NewResourceStore() *ResourceStore {
	return &ResourceStore{resources: make(map[reflect.Type]any)}
}

// AddResource registers or replaces a resource. T should be a pointer
// type so systems share one instance.
func AddResource[T any](rs *ResourceStore, resource T) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.resources[reflect.TypeOf(resource)] = resource
}

// GetResource retrieves a resource of type T.
func GetResource[T any](rs *ResourceStore) (T, bool) {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	var target T
	val, ok := rs.resources[reflect.TypeOf(target)]
	if !ok {
		return target, false
	}
	return val.(T), true
}

// MustGetResource retrieves a resource or panics. For core resources
// (time, map, index) whose absence is a wiring bug.
func MustGetResource[T any](rs *ResourceStore) T {
	res, ok := GetResource[T](rs)
	if !ok {
		var target T
		panic("required resource not found: " + reflect.TypeOf(&target).Elem().String())
	}
	return res
}

// TimeResource carries per-tick time accounting. Delta is the wall-clock
// time of the previous tick, recorded at tick end, so delay accumulation
// always works on committed values.
type TimeResource struct {
	Now   time.Time
	Delta time.Duration
}

// PlayerResource identifies the player entity for systems that treat the
// player specially (activity completion, HUD).
type PlayerResource struct {
	Entity core.Entity
}

// LogResource exposes the process logger to systems. Always non-nil;
// defaults to a nop logger in tests.
type LogResource struct {
	Logger *zap.Logger
}

// NewLogResource wraps a logger, substituting a nop logger for nil.
func NewLogResource(logger *zap.Logger) *LogResource {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogResource{Logger: logger}
}
