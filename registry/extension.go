package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/ThunderKey/sudoku-solver/solver"
)

// DiscoveryError reports one extension definition that failed to load. It
// is absorbed per candidate, logged and skipped, never aborting discovery
// of the remaining definitions.
type DiscoveryError struct {
	Source    string
	Candidate string
	Err       error
}

func (e *DiscoveryError) Error() string {
	return fmt.Sprintf("discovery failed for %s in source %s: %v", e.Candidate, e.Source, e.Err)
}

func (e *DiscoveryError) Unwrap() error { return e.Err }

// descriptor is the YAML shape of an extension definition: a display name,
// an optional description, the base algorithm to configure and its
// parameters.
type descriptor struct {
	Name        string           `yaml:"name"`
	Description string           `yaml:"description"`
	Base        string           `yaml:"base"`
	Params      descriptorParams `yaml:"params"`
}

type descriptorParams struct {
	// MaxAttempts bounds the random phase of a random_fill base.
	MaxAttempts int `yaml:"maxAttempts"`
	// Seed makes a random_fill base reproducible.
	Seed int64 `yaml:"seed"`
	// Cutoff overrides the enumeration limit of a brute_force base.
	Cutoff int `yaml:"cutoff"`
}

// build validates the descriptor and produces a Definition wrapping the
// configured base strategy under the descriptor's name.
func (d descriptor) build() (Definition, error) {
	if strings.TrimSpace(d.Name) == "" {
		return Definition{}, fmt.Errorf("descriptor missing name")
	}
	var factory func() solver.Solver
	switch d.Base {
	case "backtracking":
		factory = func() solver.Solver { return solver.NewBacktrackingSolver() }
	case "smart_backtracking":
		factory = func() solver.Solver { return solver.NewSmartBacktrackingSolver() }
	case "constraint_propagation":
		factory = func() solver.Solver { return solver.NewConstraintPropagationSolver() }
	case "logical":
		factory = func() solver.Solver { return solver.NewLogicalSolver() }
	case "brute_force":
		params := d.Params
		factory = func() solver.Solver {
			return solver.NewBruteForceSolver(func(o *solver.BruteForceOptions) {
				if params.Cutoff > 0 {
					o.Cutoff = params.Cutoff
				}
			})
		}
	case "random_fill":
		params := d.Params
		factory = func() solver.Solver {
			return solver.NewRandomFillSolver(func(o *solver.RandomFillOptions) {
				if params.MaxAttempts > 0 {
					o.MaxAttempts = params.MaxAttempts
				}
				o.Seed = params.Seed
			})
		}
	default:
		return Definition{}, fmt.Errorf("unknown base algorithm %q", d.Base)
	}
	description := d.Description
	if description == "" {
		description = factory().Description()
	}
	name := strings.TrimSpace(d.Name)
	return Definition{
		Name:        name,
		Description: description,
		New: func() solver.Solver {
			return &named{Solver: factory(), name: name, description: description}
		},
	}, nil
}

// named overrides a base strategy's identity with the descriptor's.
type named struct {
	solver.Solver
	name        string
	description string
}

func (n *named) Name() string        { return n.name }
func (n *named) Description() string { return n.description }

// ExtensionSource reads YAML solver descriptors from a directory. A missing
// directory is an empty source; it is created on first Install.
type ExtensionSource struct {
	dir string
}

// NewExtensionSource constructs an extension source rooted at dir.
func NewExtensionSource(dir string) *ExtensionSource {
	return &ExtensionSource{dir: dir}
}

// Name implements Source.
func (s *ExtensionSource) Name() string { return "extensions" }

// Discover implements Source, loading every *.yaml / *.yml descriptor in
// lexical order.
func (s *ExtensionSource) Discover() ([]Definition, []error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, []error{&DiscoveryError{Source: s.Name(), Candidate: s.dir, Err: err}}
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext == ".yaml" || ext == ".yml" {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	var defs []Definition
	var errs []error
	for _, name := range names {
		def, err := s.loadFile(filepath.Join(s.dir, name))
		if err != nil {
			errs = append(errs, &DiscoveryError{Source: s.Name(), Candidate: name, Err: err})
			continue
		}
		defs = append(defs, def)
	}
	return defs, errs
}

// Install persists sourceText as a new descriptor file and loads it
// immediately. On failure the error is reported without touching any
// existing registration; the file is kept so the author can inspect and
// fix it in place.
func (s *ExtensionSource) Install(sourceText, name string) (Definition, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return Definition{}, fmt.Errorf("create extension dir: %w", err)
	}
	path := filepath.Join(s.dir, descriptorFilename(name))
	if err := os.WriteFile(path, []byte(sourceText), 0o644); err != nil {
		return Definition{}, fmt.Errorf("write descriptor: %w", err)
	}
	def, err := s.loadFile(path)
	if err != nil {
		return Definition{}, &DiscoveryError{Source: s.Name(), Candidate: filepath.Base(path), Err: err}
	}
	return def, nil
}

func (s *ExtensionSource) loadFile(path string) (Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, err
	}
	var d descriptor
	if err := yaml.Unmarshal(data, &d); err != nil {
		return Definition{}, fmt.Errorf("parse descriptor: %w", err)
	}
	return d.build()
}

// descriptorFilename slugs the solver name into a stable filename, falling
// back to a fresh UUID when the name yields nothing usable.
func descriptorFilename(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '-', r == '_':
			b.WriteByte('_')
		}
	}
	slug := b.String()
	if slug == "" {
		slug = uuid.NewString()
	}
	return slug + ".yaml"
}
