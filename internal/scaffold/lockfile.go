package scaffold

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"
)

// LockFileName is the manifest written beside the generated campaign so a
// later clean removes exactly what this tool created.
const LockFileName = "medgen.lock"

// Current schema version - increment when the Lock format changes.
const lockSchemaVersion uint16 = 1

// Lock records every generated file with a content digest.
type Lock struct {
	Schema uint16
	Files  []LockEntry
}

// LockEntry is one generated file, path relative to the campaign root.
type LockEntry struct {
	Path   string
	Digest []byte
}

// NewLock returns an empty lock at the current schema version.
func NewLock() *Lock {
	return &Lock{Schema: lockSchemaVersion}
}

// Add appends one generated file to the lock.
func (l *Lock) Add(rel string, digest [32]byte) {
	l.Files = append(l.Files, LockEntry{Path: rel, Digest: digest[:]})
}

// WriteLock serializes the lock into dir atomically: encode to a temp file
// in the same directory, then rename over the final name.
func WriteLock(dir string, lock *Lock) error {
	f, err := os.CreateTemp(dir, "tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create lock temp file: %w", err)
	}
	defer func() {
		_ = os.Remove(f.Name())
	}()

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(lock); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to encode lock: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), filepath.Join(dir, LockFileName))
}

// ReadLock loads the lock manifest from dir. A missing file is reported via
// ok=false rather than an error; a schema mismatch is an error, since
// guessing at an old layout could delete the wrong files.
func ReadLock(dir string) (lock *Lock, ok bool, err error) {
	path := filepath.Join(dir, LockFileName)
	// #nosec G304 -- path is the fixed lock name under the campaign root
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to open %q: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	var out Lock
	if err := msgpack.NewDecoder(f).Decode(&out); err != nil {
		return nil, false, fmt.Errorf("%s: failed to decode lock: %w", path, err)
	}
	if out.Schema != lockSchemaVersion {
		return nil, false, fmt.Errorf("%s: unsupported lock schema %d", path, out.Schema)
	}
	return &out, true, nil
}

// Clean removes every file listed in the campaign lock under root, then the
// lock itself and any directories left empty. It refuses to touch a tree
// without a lock, so hand-written files are never guessed at.
func Clean(root string) ([]string, error) {
	lock, ok, err := ReadLock(root)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("no %s found in %q, refusing to remove anything", LockFileName, root)
	}

	removed := make([]string, 0, len(lock.Files))
	dirs := make(map[string]struct{})
	for _, entry := range lock.Files {
		target := filepath.Join(root, filepath.FromSlash(entry.Path))
		if err := os.Remove(target); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return removed, fmt.Errorf("failed to remove %q: %w", target, err)
		}
		removed = append(removed, entry.Path)
		if dir := filepath.Dir(target); dir != root {
			dirs[dir] = struct{}{}
		}
	}

	if err := os.Remove(filepath.Join(root, LockFileName)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return removed, fmt.Errorf("failed to remove lock: %w", err)
	}
	for dir := range dirs {
		// Only empty directories go; Remove fails otherwise and that is fine.
		_ = os.Remove(dir)
	}
	_ = os.Remove(root)
	return removed, nil
}
