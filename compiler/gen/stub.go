package gen

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

// Logical names of the stubs a Creator reads.
const (
	// StubMain is the body of the main entity table migration.
	StubMain = "create.entity.main.stub"
	// StubEntity is the body of the attribute value tables migration.
	StubEntity = "create.entity.stub"
	// StubAttributeUp is repeated once per field type in place of UPMIGRATION.
	StubAttributeUp = "attribute.type.up.migration.stub"
	// StubAttributeDown is repeated once per field type in place of DOWNMIGRATION.
	StubAttributeDown = "attribute.type.down.migration.stub"
)

// StubNames lists every stub a Creator needs, in load order.
var StubNames = []string{StubMain, StubAttributeUp, StubAttributeDown, StubEntity}

//go:embed stubs/*.stub
var embeddedStubs embed.FS

// StubStore provides raw stub text by logical name.
type StubStore interface {
	// Read returns the content of the named stub.
	Read(name string) (string, error)
	// Path returns the location the stubs are resolved against.
	Path() string
}

// Stubs is a StubStore backed by an fs.FS.
type Stubs struct {
	fsys fs.FS
	dir  string // directory inside fsys
	path string // location reported by Path
}

// NewStubs returns a store reading stubs from dir inside fsys.
func NewStubs(fsys fs.FS, dir string) *Stubs {
	if dir == "" {
		dir = "."
	}
	return &Stubs{fsys: fsys, dir: dir, path: dir}
}

// DefaultStubs returns the stubs compiled into the binary.
func DefaultStubs() *Stubs {
	return NewStubs(embeddedStubs, "stubs")
}

// DirStubs returns a store reading stubs from a directory on disk.
func DirStubs(dir string) *Stubs {
	return &Stubs{fsys: os.DirFS(dir), dir: ".", path: dir}
}

// Read implements StubStore.
func (s *Stubs) Read(name string) (string, error) {
	data, err := fs.ReadFile(s.fsys, path.Join(s.dir, name))
	if err != nil {
		return "", NewStubError(name, filepath.Join(s.path, name), err)
	}
	return string(data), nil
}

// Path implements StubStore.
func (s *Stubs) Path() string {
	return s.path
}

// PublishStubs copies the embedded stubs into dir so they can be customized
// and later loaded with DirStubs. It returns the written paths.
func PublishStubs(store FileStore, dir string) ([]string, error) {
	src := DefaultStubs()
	written := make([]string, 0, len(StubNames))
	for _, name := range StubNames {
		content, err := src.Read(name)
		if err != nil {
			return written, err
		}
		dst := filepath.Join(dir, name)
		if err := store.WriteFile(dst, []byte(content)); err != nil {
			return written, NewWriteError(dst, err)
		}
		written = append(written, dst)
	}
	return written, nil
}

// stubSet holds the stubs loaded for a single Create call.
type stubSet struct {
	up   string
	down string
}

// loadFragments reads the up and down attribute fragments.
func loadFragments(s StubStore) (stubSet, error) {
	up, err := s.Read(StubAttributeUp)
	if err != nil {
		return stubSet{}, fmt.Errorf("load up fragment: %w", err)
	}
	down, err := s.Read(StubAttributeDown)
	if err != nil {
		return stubSet{}, fmt.Errorf("load down fragment: %w", err)
	}
	return stubSet{up: up, down: down}, nil
}
