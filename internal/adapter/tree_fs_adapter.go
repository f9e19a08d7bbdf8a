// Package adapter contains the infrastructure adapters used by the dialect tooling.
package adapter

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	m "mlirutils.dev/pkg/mlirutils/internal/model"
)

// ErrDestinationExists is returned when a move or copy would overwrite an
// existing entry.
var ErrDestinationExists = errors.New("destination already exists")

// ErrNotDirectory is returned when a directory operation is given a file.
var ErrNotDirectory = errors.New("not a directory")

// TreeFSAdapter abstracts the filesystem operations the substitution engine
// performs. It hides direct `os` access so the traversal can be exercised
// against an in-memory filesystem.
//
//nolint:interfacebloat // The engine needs the full move/list/read/write surface.
type TreeFSAdapter interface {
	// FileInfo returns metadata for a path so callers can tell files from
	// directories. Symbolic links are described, not followed.
	FileInfo(path m.Path) (os.FileInfo, error)

	// Exists reports whether anything, including a dangling link, is
	// present at path.
	Exists(path m.Path) (bool, error)

	// ReadDir lists the names of the immediate children of a directory in
	// lexical order.
	ReadDir(path m.Path) ([]string, error)

	// ReadFile loads the contents of a file.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFileAtomic replaces the contents of an existing file through a
	// temporary sibling and a rename, keeping the original permissions.
	WriteFileAtomic(path m.Path, content []byte) error

	// Move renames an entry. It fails with ErrDestinationExists when to is
	// already taken.
	Move(from, to m.Path) error

	// CopyDir recursively copies the tree at src to dst. dst must not exist.
	CopyDir(src, dst m.Path) error

	// Snapshot copies the tree rooted at root into a fresh in-memory
	// filesystem at the same location.
	Snapshot(root m.Path) (TreeFSAdapter, error)
}

// AferoTreeFSAdapter implements TreeFSAdapter on top of an afero filesystem.
type AferoTreeFSAdapter struct {
	fs afero.Fs
}

// NewLocalTreeFSAdapter returns an adapter backed by the operating system.
func NewLocalTreeFSAdapter() *AferoTreeFSAdapter {
	return NewTreeFSAdapter(afero.NewOsFs())
}

// NewMemTreeFSAdapter returns an adapter backed by an empty in-memory filesystem.
func NewMemTreeFSAdapter() *AferoTreeFSAdapter {
	return NewTreeFSAdapter(afero.NewMemMapFs())
}

// NewTreeFSAdapter wraps an arbitrary afero filesystem.
func NewTreeFSAdapter(fs afero.Fs) *AferoTreeFSAdapter {
	return &AferoTreeFSAdapter{fs: fs}
}

// Fs exposes the underlying filesystem.
func (a *AferoTreeFSAdapter) Fs() afero.Fs {
	return a.fs
}

// FileInfo returns os.FileInfo metadata for the given path, using Lstat
// when the filesystem supports it.
func (a *AferoTreeFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return lstat(a.fs, string(path))
}

// Exists reports whether path is present.
func (a *AferoTreeFSAdapter) Exists(path m.Path) (bool, error) {
	_, err := lstat(a.fs, string(path))
	if err == nil {
		return true, nil
	}

	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}

	return false, err
}

// ReadDir lists the child names of a directory, sorted.
func (a *AferoTreeFSAdapter) ReadDir(path m.Path) ([]string, error) {
	entries, err := afero.ReadDir(a.fs, string(path))
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}

	return names, nil
}

// ReadFile loads file contents.
func (a *AferoTreeFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return afero.ReadFile(a.fs, string(path))
}

// WriteFileAtomic writes content to a temporary file next to path and renames
// it over path.
func (a *AferoTreeFSAdapter) WriteFileAtomic(path m.Path, content []byte) error {
	target := string(path)

	info, err := a.fs.Stat(target)
	if err != nil {
		return err
	}

	tmp, err := afero.TempFile(a.fs, filepath.Dir(target), "."+filepath.Base(target)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", target, err)
	}

	tmpName := tmp.Name()
	cleanup := func() { _ = a.fs.Remove(tmpName) }

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		cleanup()

		return fmt.Errorf("write temp file for %s: %w", target, err)
	}

	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		cleanup()

		return fmt.Errorf("sync temp file for %s: %w", target, err)
	}

	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("close temp file for %s: %w", target, err)
	}

	if err := a.fs.Chmod(tmpName, info.Mode().Perm()); err != nil {
		cleanup()
		return fmt.Errorf("chmod temp file for %s: %w", target, err)
	}

	if err := a.fs.Rename(tmpName, target); err != nil {
		cleanup()
		return fmt.Errorf("replace %s: %w", target, err)
	}

	return nil
}

// Move renames from to to, refusing to overwrite.
func (a *AferoTreeFSAdapter) Move(from, to m.Path) error {
	exists, err := a.Exists(to)
	if err != nil {
		return err
	}

	if exists {
		return fmt.Errorf("move %s to %s: %w", from, to, ErrDestinationExists)
	}

	return a.fs.Rename(string(from), string(to))
}

// CopyDir recursively copies a directory tree into a new location.
func (a *AferoTreeFSAdapter) CopyDir(src, dst m.Path) error {
	return copyTree(a.fs, a.fs, string(src), string(dst))
}

// Snapshot mirrors the tree at root into memory.
func (a *AferoTreeFSAdapter) Snapshot(root m.Path) (TreeFSAdapter, error) {
	mem := afero.NewMemMapFs()
	rootStr := string(root.Clean())

	if err := mem.MkdirAll(filepath.Dir(rootStr), 0o750); err != nil {
		return nil, err
	}

	err := afero.Walk(a.fs, rootStr, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			return mem.MkdirAll(path, info.Mode().Perm())
		}

		if isSymlink(info) {
			return copySymlink(a.fs, mem, path, path)
		}

		return copyFile(a.fs, mem, path, path, info.Mode())
	})
	if err != nil {
		return nil, fmt.Errorf("snapshot %s: %w", root, err)
	}

	return NewTreeFSAdapter(mem), nil
}

func copyTree(srcFS, dstFS afero.Fs, src, dst string) error {
	srcInfo, err := srcFS.Stat(src)
	if err != nil {
		return err
	}

	if !srcInfo.IsDir() {
		return fmt.Errorf("copy %s: %w", src, ErrNotDirectory)
	}

	exists, err := afero.Exists(dstFS, dst)
	if err != nil {
		return err
	}

	if exists {
		return fmt.Errorf("copy to %s: %w", dst, ErrDestinationExists)
	}

	if err := dstFS.MkdirAll(filepath.Dir(dst), 0o750); err != nil {
		return err
	}

	return afero.Walk(srcFS, src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}

		targetPath := filepath.Join(dst, relPath)

		if info.IsDir() {
			return dstFS.MkdirAll(targetPath, info.Mode().Perm())
		}

		if isSymlink(info) {
			return copySymlink(srcFS, dstFS, path, targetPath)
		}

		return copyFile(srcFS, dstFS, path, targetPath, info.Mode())
	})
}

func lstat(fsys afero.Fs, path string) (os.FileInfo, error) {
	if lstater, ok := fsys.(afero.Lstater); ok {
		info, _, err := lstater.LstatIfPossible(path)
		return info, err
	}

	return fsys.Stat(path)
}

func isSymlink(info os.FileInfo) bool {
	return info.Mode()&os.ModeSymlink != 0
}

// copySymlink recreates the link at dst with the same target. Filesystems
// without link support, such as the in-memory one, get an empty placeholder
// file so the entry can still be renamed.
func copySymlink(srcFS, dstFS afero.Fs, src, dst string) error {
	reader, canRead := srcFS.(afero.LinkReader)
	linker, canLink := dstFS.(afero.Linker)

	if canRead && canLink {
		target, err := reader.ReadlinkIfPossible(src)
		if err != nil {
			return err
		}

		return linker.SymlinkIfPossible(target, dst)
	}

	return afero.WriteFile(dstFS, dst, nil, 0o644)
}

// copyFile copies a single file.
func copyFile(srcFS, dstFS afero.Fs, src, dst string, mode os.FileMode) error {
	sourceFile, err := srcFS.Open(src)
	if err != nil {
		return err
	}

	defer func() { _ = sourceFile.Close() }()

	destFile, err := dstFS.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode.Perm())
	if err != nil {
		return err
	}

	defer func() { _ = destFile.Close() }()

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		return err
	}

	return dstFS.Chmod(dst, mode.Perm())
}
