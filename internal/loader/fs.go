// Package loader provides the filesystem-backed resource collaborators for
// the coordinator: a ResourceLoader reading components from local files, a
// size estimator with per-role weights, and a name-affinity compatibility
// scorer.
package loader

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"suited/internal/coordinator"
	"suited/pkg/types"
)

// probeBytes is how much of a resource Load reads to verify readability.
const probeBytes = 4096

// FS loads components from local files. Validate and Load resolve the spec's
// source as a path; size is the file size on disk.
type FS struct {
	log zerolog.Logger
}

// NewFS returns a filesystem loader logging through log.
func NewFS(log zerolog.Logger) *FS {
	return &FS{log: log}
}

// Validate checks that the spec's source exists and is a regular file, and
// reports the file size as the loader's own estimate.
func (f *FS) Validate(ctx context.Context, spec types.ComponentSpec) coordinator.ValidationResult {
	if err := ctx.Err(); err != nil {
		return coordinator.ValidationResult{Errors: []string{err.Error()}}
	}
	if spec.Source == "" {
		return coordinator.ValidationResult{Errors: []string{"source reference is empty"}}
	}
	fi, err := os.Stat(spec.Source)
	if err != nil {
		return coordinator.ValidationResult{Errors: []string{fmt.Sprintf("source %q: %v", spec.Source, err)}}
	}
	if fi.IsDir() {
		return coordinator.ValidationResult{Errors: []string{fmt.Sprintf("source %q is a directory", spec.Source)}}
	}
	return coordinator.ValidationResult{Valid: true, EstimatedSize: uint64(fi.Size())}
}

// Load opens the resource, reads a probe to verify it is readable, and
// returns the actual on-disk footprint. Cancellation of ctx surfaces as a
// load failure.
func (f *FS) Load(ctx context.Context, spec types.ComponentSpec) (coordinator.LoadResult, error) {
	if err := ctx.Err(); err != nil {
		return coordinator.LoadResult{}, err
	}
	fi, err := os.Stat(spec.Source)
	if err != nil {
		return coordinator.LoadResult{}, fmt.Errorf("stat %q: %w", spec.Source, err)
	}
	file, err := os.Open(spec.Source)
	if err != nil {
		return coordinator.LoadResult{}, fmt.Errorf("open %q: %w", spec.Source, err)
	}
	defer file.Close()
	buf := make([]byte, probeBytes)
	if _, err := file.Read(buf); err != nil && err != io.EOF {
		return coordinator.LoadResult{}, fmt.Errorf("read %q: %w", spec.Source, err)
	}
	if err := ctx.Err(); err != nil {
		return coordinator.LoadResult{}, err
	}
	size := uint64(fi.Size())
	if size == 0 {
		size = 1
	}
	f.log.Debug().Str("component", spec.Name).Str("source", spec.Source).Uint64("size_bytes", size).Msg("component resource loaded")
	return coordinator.LoadResult{SizeBytes: size}, nil
}

// Unload releases the resource. File-backed resources hold no process state
// beyond the coordinator's accounting, so the recorded size is what frees.
func (f *FS) Unload(ctx context.Context, spec types.ComponentSpec, sizeBytes uint64) uint64 {
	f.log.Debug().Str("component", spec.Name).Uint64("size_bytes", sizeBytes).Msg("component resource unloaded")
	return sizeBytes
}
