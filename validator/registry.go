package validator

import (
	"log/slog"
	"sync"
)

// CheckFactory builds a check from the options supplied at schema-definition
// time. Factories are registered under a name and instantiated by Custom.
type CheckFactory func(opts map[string]any) CheckFunc

// Registry maps names to check factories. It is an explicit object rather
// than package-global state: attach it to the chains that need it via
// WithRegistry. Registration is last-write-wins and there is no removal.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]CheckFactory
	log       *slog.Logger
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithRegistryLogger sets the logger used to report lookup misses.
func WithRegistryLogger(log *slog.Logger) RegistryOption {
	return func(r *Registry) {
		if log != nil {
			r.log = log
		}
	}
}

// NewRegistry returns an empty registry. Lookup misses are logged through
// slog.Default unless WithRegistryLogger overrides it.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{factories: make(map[string]CheckFactory)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register stores a factory under name, replacing any previous registration.
// Panics on a nil factory, which is a configuration error.
func (r *Registry) Register(name string, factory CheckFactory) {
	if factory == nil {
		panic("validator: Register requires a non-nil factory")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = factory
}

func (r *Registry) lookup(name string) (CheckFactory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	factory, ok := r.factories[name]
	return factory, ok
}

func (r *Registry) logger() *slog.Logger {
	if r == nil || r.log == nil {
		return slog.Default()
	}
	return r.log
}

// Custom appends the registered check named name, instantiated with opts. An
// unregistered name is deliberately non-fatal: the miss is logged once per
// invocation and the step behaves as if it were omitted, so one missing
// plugin registration does not fail unrelated fields. The registry is
// consulted at validation time, allowing registration after the schema is
// built.
func (c *Chain) Custom(name string, opts map[string]any) *Chain {
	registry := c.registry
	return c.add("custom:"+name, func(ctx *Context, value any, field string, next Next) Result {
		if registry != nil {
			if factory, ok := registry.lookup(name); ok {
				return factory(opts)(ctx, value, field, next)
			}
		}
		registry.logger().WarnContext(ctx, "custom check not registered, skipping",
			slog.String("check", name),
			slog.String("field", field),
			slog.String("path", ctx.Path),
		)
		return next()
	})
}
