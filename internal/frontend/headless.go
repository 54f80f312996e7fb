// Package frontend provides Frontend implementations for contexts that have
// no rendering or audio device attached. The real game front-end lives
// outside this repo and plugs in through the same interface.
package frontend

import (
	"fmt"
	"os"

	"assetd/internal/assets"
)

// Headless materializes path-carrying handles without decoding or uploading
// anything. The daemon and CLI tools use it: a handle is "loaded" when its
// file exists and is readable.
type Headless struct{}

// New returns a headless frontend.
func New() *Headless { return &Headless{} }

func (*Headless) NewImage(path string) assets.Image {
	return &handle{path: path, err: statErr(path)}
}

func (*Headless) NewSound(path string) assets.Sound {
	return &handle{path: path, err: statErr(path)}
}

type handle struct {
	path string
	err  error
}

func (h *handle) Path() string { return h.path }
func (h *handle) Err() error   { return h.err }

func statErr(path string) error {
	fi, err := os.Stat(path)
	if err != nil {
		return err
	}
	if fi.IsDir() {
		return fmt.Errorf("%s: is a directory", path)
	}
	return nil
}
