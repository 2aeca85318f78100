// Package assets resolves map files from layered sources.
package assets

import (
	"embed"
	"errors"
	"io/fs"

	"go.uber.org/zap"

	"github.com/Faultbox/voxelwalk/internal/logger"
)

//go:embed maps/*.txt
var builtin embed.FS

// Builtin returns the maps shipped inside the binary.
func Builtin() fs.FS {
	sub, err := fs.Sub(builtin, "maps")
	if err != nil {
		// "maps" is a constant valid path
		panic(err)
	}
	return sub
}

type layer struct {
	name string
	fsys fs.FS
}

// Manager is an fs.FS over several layers.
// Layers are searched in reverse order (last added = highest priority).
type Manager struct {
	layers []layer
}

// NewManager creates an empty manager.
func NewManager() *Manager {
	return &Manager{}
}

// AddLayer adds a file system under a name used in logs.
func (m *Manager) AddLayer(name string, fsys fs.FS) {
	m.layers = append(m.layers, layer{name: name, fsys: fsys})
}

// Open opens name from the highest priority layer that has it. Only a missing file
// falls through to lower layers; any other error is returned as is.
func (m *Manager) Open(name string) (fs.File, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}

	for i := len(m.layers) - 1; i >= 0; i-- {
		l := m.layers[i]
		f, err := l.fsys.Open(name)
		if err == nil {
			logger.Debug("asset resolved",
				zap.String("path", name),
				zap.String("layer", l.name),
			)
			return f, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
}

// Source returns the name of the layer that would serve name, or "" if none has it.
func (m *Manager) Source(name string) string {
	for i := len(m.layers) - 1; i >= 0; i-- {
		if _, err := fs.Stat(m.layers[i].fsys, name); err == nil {
			return m.layers[i].name
		}
	}
	return ""
}
