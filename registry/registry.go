package registry

import (
	"errors"
	"fmt"

	"github.com/ThunderKey/sudoku-solver/logging"
	"github.com/ThunderKey/sudoku-solver/solver"
)

// ErrNotFound is returned when no solver is registered under the requested
// name.
var ErrNotFound = errors.New("solver not found")

// ErrNoExtensionSource is returned by Install when the registry was built
// without an installable source.
var ErrNoExtensionSource = errors.New("no extension source configured")

// Definition is one registrable solver: its lookup name, a description for
// listings, and a factory producing a fresh instance per solve.
type Definition struct {
	Name        string
	Description string
	New         func() solver.Solver
}

// Info is the listing entry for a registered solver.
type Info struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Source yields candidate solver definitions. Discover returns the
// definitions that conformed alongside the per-candidate errors for those
// that did not; one bad candidate must not hide the rest.
type Source interface {
	// Name identifies the source in logs and discovery errors.
	Name() string

	// Discover enumerates the source's candidate definitions.
	Discover() ([]Definition, []error)
}

// installer is the optional capability of a source that can persist new
// definitions at runtime.
type installer interface {
	Install(sourceText, name string) (Definition, error)
}

// Options configures a Registry.
type Options struct {
	// Sources to discover from, in order. Defaults to the built-in source
	// alone.
	Sources []Source

	// Logger receives discovery diagnostics. Defaults to NoOpLogger.
	Logger logging.Logger
}

// Registry holds the discovered solver definitions keyed by name, in
// insertion order. It is not safe for concurrent mutation; callers follow
// the same single-writer discipline as the rest of the engine.
type Registry struct {
	sources  []Source
	logger   logging.Logger
	defs     map[string]Definition
	order    []string
	failures []error
}

// New builds a Registry and runs an initial discovery pass over its
// sources.
func New(optFns ...func(o *Options)) *Registry {
	opts := Options{
		Sources: []Source{NewBuiltinSource()},
		Logger:  logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	r := &Registry{
		sources: opts.Sources,
		logger:  opts.Logger,
	}
	r.Reload()
	return r
}

// Register adds a definition. A later registration under an existing name
// silently replaces the earlier one, keeping its position in the listing
// order.
func (r *Registry) Register(def Definition) {
	if _, exists := r.defs[def.Name]; !exists {
		r.order = append(r.order, def.Name)
	} else {
		r.logger.Debug("replacing solver registration", "name", def.Name)
	}
	r.defs[def.Name] = def
}

// List returns the registered solvers in insertion order.
func (r *Registry) List() []Info {
	infos := make([]Info, 0, len(r.order))
	for _, name := range r.order {
		def := r.defs[name]
		infos = append(infos, Info{Name: def.Name, Description: def.Description})
	}
	return infos
}

// Get returns the definition registered under name, or ErrNotFound.
func (r *Registry) Get(name string) (Definition, error) {
	def, ok := r.defs[name]
	if !ok {
		return Definition{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return def, nil
}

// Reload clears all registrations and re-runs discovery over every source
// in order.
func (r *Registry) Reload() {
	r.defs = make(map[string]Definition)
	r.order = nil
	r.failures = nil
	for _, src := range r.sources {
		defs, errs := src.Discover()
		for _, err := range errs {
			r.failures = append(r.failures, err)
			r.logger.Warn("skipping solver definition", "source", src.Name(), "error", err)
		}
		for _, def := range defs {
			r.Register(def)
			r.logger.Debug("registered solver", "source", src.Name(), "name", def.Name)
		}
	}
	r.logger.Info("solver discovery completed",
		"registered", len(r.order), "failed", len(r.failures))
}

// Failures returns the discovery errors recorded by the last reload.
func (r *Registry) Failures() []error {
	return append([]error(nil), r.failures...)
}

// Install persists a new extension definition through the first installable
// source and registers it on success. Failure leaves every existing
// registration untouched.
func (r *Registry) Install(sourceText, name string) error {
	for _, src := range r.sources {
		in, ok := src.(installer)
		if !ok {
			continue
		}
		def, err := in.Install(sourceText, name)
		if err != nil {
			r.logger.Warn("solver install failed", "name", name, "error", err)
			return err
		}
		r.Register(def)
		r.logger.Info("installed solver", "name", def.Name)
		return nil
	}
	return ErrNoExtensionSource
}
