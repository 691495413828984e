// Package scaffold writes a rendered campaign plan to disk. The whole tree
// is staged in a temp directory first, so a half-failed run never leaves a
// partial campaign behind, then moved into the output root in one pass.
package scaffold

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"medgen/internal/campaign"
	"medgen/internal/render"
)

// DefaultOutDir is where the campaign lands unless --out overrides it,
// matching the layout Medusa projects conventionally use.
const DefaultOutDir = "test/invariants/fuzz"

// ErrOutputExists is returned when the output root already exists and
// overwriting was not requested.
var ErrOutputExists = errors.New("campaign folder already exists, did you mean --overwrite?")

// Options control where and how the campaign tree is written.
type Options struct {
	OutDir    string
	Overwrite bool
}

// Result reports what a successful run wrote.
type Result struct {
	Root  string
	Files []string // slash-separated paths relative to Root, in plan order
}

// Write renders every unit of the plan, stages the tree plus its lock
// manifest in a temp directory and moves it into the output root.
func Write(plan *campaign.Plan, r *render.Renderer, opts Options) (*Result, error) {
	if opts.OutDir == "" {
		opts.OutDir = DefaultOutDir
	}

	stage, err := os.MkdirTemp("", "medgen-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create staging directory: %w", err)
	}
	defer func() {
		if rmErr := os.RemoveAll(stage); rmErr != nil {
			fmt.Fprintf(os.Stderr, "failed to remove staging directory: %v\n", rmErr)
		}
	}()

	lock := NewLock()
	files := make([]string, 0, len(plan.Units))
	for _, unit := range plan.Units {
		text, err := r.Render(unit)
		if err != nil {
			return nil, err
		}
		rel := unit.RelPath()
		dst := filepath.Join(stage, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory for %s: %w", unit.Name, err)
		}
		if err := os.WriteFile(dst, []byte(text), 0o600); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", unit.Name, err)
		}
		lock.Add(rel, sha256.Sum256([]byte(text)))
		files = append(files, rel)
	}

	if err := WriteLock(stage, lock); err != nil {
		return nil, err
	}

	if err := moveContents(stage, opts.OutDir, opts.Overwrite); err != nil {
		return nil, err
	}
	return &Result{Root: opts.OutDir, Files: files}, nil
}

// moveContents merges the staged tree into dst. When dst already exists the
// move only proceeds with overwrite set; otherwise the tree is created fresh.
func moveContents(stage, dst string, overwrite bool) error {
	if st, err := os.Stat(dst); err == nil {
		if !st.IsDir() {
			return fmt.Errorf("%q is not a directory", dst)
		}
		if !overwrite {
			return fmt.Errorf("%s: %w", dst, ErrOutputExists)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to stat %q: %w", dst, err)
	} else if err := os.MkdirAll(dst, 0o755); err != nil {
		return fmt.Errorf("failed to create %q: %w", dst, err)
	}

	// Copy rather than rename: the staging dir may sit on another device.
	return filepath.WalkDir(stage, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(stage, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		// #nosec G304 -- path comes from walking our own staging directory
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if err := os.WriteFile(target, data, 0o600); err != nil {
			return fmt.Errorf("failed to write %q: %w", target, err)
		}
		return nil
	})
}
