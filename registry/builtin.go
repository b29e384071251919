package registry

import "github.com/ThunderKey/sudoku-solver/solver"

// BuiltinSource yields the six standard strategies shipped with the engine.
type BuiltinSource struct{}

// NewBuiltinSource constructs the built-in definition source.
func NewBuiltinSource() *BuiltinSource { return &BuiltinSource{} }

// Name implements Source.
func (s *BuiltinSource) Name() string { return "builtin" }

// Discover implements Source. Built-in definitions cannot fail.
func (s *BuiltinSource) Discover() ([]Definition, []error) {
	factories := []func() solver.Solver{
		func() solver.Solver { return solver.NewBacktrackingSolver() },
		func() solver.Solver { return solver.NewSmartBacktrackingSolver() },
		func() solver.Solver { return solver.NewConstraintPropagationSolver() },
		func() solver.Solver { return solver.NewLogicalSolver() },
		func() solver.Solver { return solver.NewBruteForceSolver() },
		func() solver.Solver { return solver.NewRandomFillSolver() },
	}
	defs := make([]Definition, 0, len(factories))
	for _, factory := range factories {
		probe := factory()
		defs = append(defs, Definition{
			Name:        probe.Name(),
			Description: probe.Description(),
			New:         factory,
		})
	}
	return defs, nil
}
