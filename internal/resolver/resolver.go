package resolver

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/hearth-web/hearth/http/status"
	"github.com/hearth-web/hearth/internal/uridecode"
)

// Resolved is a filesystem path confirmed to name a regular file inside the
// document root.
type Resolved struct {
	Path string
	Size int64
}

// Resolver maps request targets onto the document root. The root is
// canonicalized once at construction; resolution never reads file content.
type Resolver struct {
	root  string
	index string
}

// New canonicalizes the document root, which must exist by the time the
// first request arrives.
func New(root, index string) (*Resolver, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	abs, err = filepath.EvalSymlinks(abs)
	if err != nil {
		return nil, err
	}

	return &Resolver{
		root:  abs,
		index: index,
	}, nil
}

// Root reports the canonical absolute document root.
func (r *Resolver) Root() string {
	return r.root
}

// Resolve maps the raw request target to a file inside the root.
// Classification: any decoded parent-directory segment or escape from the
// root is status.ErrForbidden; a missing target or one naming anything but
// a regular file is status.ErrNotFound. A directory target is retried as
// its index file.
func (r *Resolver) Resolve(target string) (Resolved, error) {
	path, err := r.confine(target)
	if err != nil {
		return Resolved{}, err
	}

	info, err := os.Stat(path)
	switch {
	// ENOTDIR pops up when a parent component is a regular file, e.g.
	// /index.html/extra. The target doesn't exist either way.
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, syscall.ENOTDIR):
		return Resolved{}, status.ErrNotFound
	case err != nil:
		return Resolved{}, err
	}

	if info.IsDir() {
		path = filepath.Join(path, r.index)
		info, err = os.Stat(path)
		if err != nil {
			return Resolved{}, status.ErrNotFound
		}
	}

	if !info.Mode().IsRegular() {
		return Resolved{}, status.ErrNotFound
	}

	// the file may itself be a symlink pointing anywhere, so the descendance
	// check runs against the fully resolved form
	canonical, err := filepath.EvalSymlinks(path)
	if err != nil {
		return Resolved{}, status.ErrNotFound
	}

	if !r.descendant(canonical) {
		return Resolved{}, status.ErrForbidden
	}

	return Resolved{Path: path, Size: info.Size()}, nil
}

// confine decodes the target and anchors it under the root, rejecting
// traversal before any normalization can hide it.
func (r *Resolver) confine(target string) (string, error) {
	// the query string (and a stray fragment) plays no role in file lookup
	target, _, _ = strings.Cut(target, "?")
	target, _, _ = strings.Cut(target, "#")

	decoded, err := uridecode.Decode(target)
	if err != nil {
		return "", err
	}

	if hasTraversal(decoded) {
		return "", status.ErrForbidden
	}

	if decoded == "" || decoded == "/" {
		decoded = r.index
	}

	joined := filepath.Join(r.root, filepath.FromSlash(strings.TrimPrefix(decoded, "/")))
	if !r.descendant(joined) {
		return "", status.ErrForbidden
	}

	return joined, nil
}

func (r *Resolver) descendant(path string) bool {
	return path == r.root || strings.HasPrefix(path, r.root+string(filepath.Separator))
}

// hasTraversal reports whether any slash- or backslash-separated segment of
// the decoded path is "..". It deliberately runs before normalization:
// normalize-then-check is a known bypass class.
func hasTraversal(path string) bool {
	for len(path) > 0 {
		var segment string
		segment, path = cutSegment(path)
		if segment == ".." {
			return true
		}
	}

	return false
}

func cutSegment(path string) (segment, rest string) {
	i := strings.IndexAny(path, `/\`)
	if i == -1 {
		return path, ""
	}

	return path[:i], path[i+1:]
}
