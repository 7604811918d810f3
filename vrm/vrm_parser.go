package vrm

import (
	"io"
	"os"
	"path/filepath"

	"github.com/qmuntal/gltf"
)

// Parse vrm data. Relative resources are resolved against the directory
// of path.
func Parse(r io.Reader, path string) (*Document, error) {
	var doc gltf.Document
	dec := gltf.NewDecoderFS(r, os.DirFS(filepath.Dir(path)))
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	return (*Document)(&doc), nil
}

// Load reads a vrm file from disk.
func Load(path string) (*Document, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, err
	}
	return (*Document)(doc), nil
}
