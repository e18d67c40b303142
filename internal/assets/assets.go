// Package assets locates the reference images the detection loop matches against.
//
// Two layouts are supported. A bundled build only reads the images inside
// the binary; a source build reads them from the images directory next to
// the executable and falls back to the bundled ones. Callers only ever see a
// Resolver.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

//go:embed images/*
var embedded embed.FS

// Mode selects where a Resolver looks for assets.
type Mode int

const (
	ModeSource Mode = iota
	ModeBundled
)

func (m Mode) String() string {
	switch m {
	case ModeSource:
		return "source"
	case ModeBundled:
		return "bundled"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Resolver opens named assets from one root.
type Resolver interface {
	Open(name string) (fs.File, error)
	// Locate describes where name would be read from, for log lines.
	Locate(name string) string
}

type fsResolver struct {
	fsys fs.FS
	root string
	join func(elem ...string) string
}

func (r *fsResolver) Open(name string) (fs.File, error) {
	return r.fsys.Open(name)
}

func (r *fsResolver) Locate(name string) string {
	return r.join(r.root, name)
}

// New returns the resolver for mode.
func New(mode Mode) Resolver {
	if mode == ModeBundled {
		return Bundled()
	}
	return Source()
}

// Bundled resolves assets compiled into the binary.
func Bundled() Resolver {
	sub, err := fs.Sub(embedded, "images")
	if err != nil {
		panic(err)
	}
	return &fsResolver{fsys: sub, root: "bundled:images", join: path.Join}
}

// Source resolves assets from the images directory next to the executable,
// falling back to the bundled copy for anything missing there.
func Source() Resolver {
	exe, err := os.Executable()
	if err != nil {
		return Bundled()
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return Fallback(SourceDir(filepath.Join(filepath.Dir(exe), "images")), Bundled())
}

// SourceDir resolves assets from dir on disk.
func SourceDir(dir string) Resolver {
	return &fsResolver{fsys: os.DirFS(dir), root: dir, join: filepath.Join}
}

type fallback struct {
	primary, secondary Resolver
}

// Fallback opens from primary and asks secondary only for names primary does not have.
func Fallback(primary, secondary Resolver) Resolver {
	return &fallback{primary: primary, secondary: secondary}
}

func (r *fallback) Open(name string) (fs.File, error) {
	f, err := r.primary.Open(name)
	if errors.Is(err, fs.ErrNotExist) {
		return r.secondary.Open(name)
	}
	return f, err
}

func (r *fallback) Locate(name string) string {
	f, err := r.primary.Open(name)
	if err == nil {
		f.Close()
		return r.primary.Locate(name)
	}
	if errors.Is(err, fs.ErrNotExist) {
		return r.secondary.Locate(name)
	}
	return r.primary.Locate(name)
}

// Read returns the whole content of name.
func Read(r Resolver, name string) ([]byte, error) {
	f, err := r.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", r.Locate(name), err)
	}
	return data, nil
}
