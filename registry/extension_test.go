package registry_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ThunderKey/sudoku-solver/internal/testutil"
	"github.com/ThunderKey/sudoku-solver/registry"
)

const goodDescriptor = `name: Careful Solver
description: Logical techniques under a custom name
base: logical
`

const seededDescriptor = `name: Seeded Random
base: random_fill
params:
  maxAttempts: 50
  seed: 11
`

const malformedDescriptor = `name: Broken
base: quantum_annealing
`

func writeDescriptor(t *testing.T, dir, filename, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, filename), []byte(content), 0o644))
}

func TestExtensionDiscovery(t *testing.T) {
	dir := t.TempDir()
	writeDescriptor(t, dir, "careful.yaml", goodDescriptor)
	writeDescriptor(t, dir, "seeded.yml", seededDescriptor)
	writeDescriptor(t, dir, "zz_broken.yaml", malformedDescriptor)
	writeDescriptor(t, dir, "notes.txt", "not a descriptor")

	src := registry.NewExtensionSource(dir)
	defs, errs := src.Discover()
	require.Len(t, defs, 2)
	require.Len(t, errs, 1)

	assert.Equal(t, "Careful Solver", defs[0].Name)
	assert.Equal(t, "Logical techniques under a custom name", defs[0].Description)
	assert.Equal(t, "Seeded Random", defs[1].Name)

	var discErr *registry.DiscoveryError
	require.ErrorAs(t, errs[0], &discErr)
	assert.Equal(t, "extensions", discErr.Source)
	assert.Equal(t, "zz_broken.yaml", discErr.Candidate)
}

func TestExtensionMissingDirIsEmpty(t *testing.T) {
	src := registry.NewExtensionSource(filepath.Join(t.TempDir(), "nope"))
	defs, errs := src.Discover()
	assert.Empty(t, defs)
	assert.Empty(t, errs)
}

func TestExtensionSolverInheritsBase(t *testing.T) {
	dir := t.TempDir()
	writeDescriptor(t, dir, "careful.yaml", goodDescriptor)

	src := registry.NewExtensionSource(dir)
	defs, errs := src.Discover()
	require.Empty(t, errs)
	require.Len(t, defs, 1)

	s := defs[0].New()
	assert.Equal(t, "Careful Solver", s.Name())
	assert.Equal(t, "Logical techniques under a custom name", s.Description())

	solution, err := s.Solve(context.Background(), testutil.SamplePuzzle())
	require.NoError(t, err)
	assert.Equal(t, testutil.SampleSolution(), solution)
}

func TestRegistryDiscoversExtensions(t *testing.T) {
	dir := t.TempDir()
	writeDescriptor(t, dir, "careful.yaml", goodDescriptor)
	writeDescriptor(t, dir, "seeded.yaml", seededDescriptor)
	writeDescriptor(t, dir, "zz_broken.yaml", malformedDescriptor)

	r := registry.New(func(o *registry.Options) {
		o.Sources = []registry.Source{
			registry.NewBuiltinSource(),
			registry.NewExtensionSource(dir),
		}
	})

	infos := r.List()
	require.Len(t, infos, 8)
	assert.Equal(t, "Careful Solver", infos[6].Name)
	assert.Equal(t, "Seeded Random", infos[7].Name)
	require.Len(t, r.Failures(), 1)
}

func TestInstall(t *testing.T) {
	dir := t.TempDir()
	r := registry.New(func(o *registry.Options) {
		o.Sources = []registry.Source{
			registry.NewBuiltinSource(),
			registry.NewExtensionSource(dir),
		}
	})

	require.NoError(t, r.Install(goodDescriptor, "Careful Solver"))

	def, err := r.Get("Careful Solver")
	require.NoError(t, err)
	assert.Equal(t, "Careful Solver", def.Name)

	// The descriptor survives as a file and a fresh registry rediscovers it.
	_, err = os.Stat(filepath.Join(dir, "careful_solver.yaml"))
	require.NoError(t, err)

	r2 := registry.New(func(o *registry.Options) {
		o.Sources = []registry.Source{
			registry.NewBuiltinSource(),
			registry.NewExtensionSource(dir),
		}
	})
	_, err = r2.Get("Careful Solver")
	assert.NoError(t, err)
}

func TestInstallMalformedKeepsFileAndRegistrations(t *testing.T) {
	dir := t.TempDir()
	r := registry.New(func(o *registry.Options) {
		o.Sources = []registry.Source{
			registry.NewBuiltinSource(),
			registry.NewExtensionSource(dir),
		}
	})

	err := r.Install(malformedDescriptor, "Broken")
	require.Error(t, err)

	var discErr *registry.DiscoveryError
	require.ErrorAs(t, err, &discErr)

	assert.Len(t, r.List(), 6)
	_, statErr := os.Stat(filepath.Join(dir, "broken.yaml"))
	assert.NoError(t, statErr, "rejected descriptor stays on disk for inspection")
}
