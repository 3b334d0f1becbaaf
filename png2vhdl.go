/*
Package png2vhdl converts raster images into VHDL packages that embed
the pixel data as a read-only constant table of packed 12-bit RGB444
values.
*/
package png2vhdl

import (
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

const defaultWorkers = 4

// Converter turns images into VHDL graphic packages.
type Converter struct {
	fs       afero.Fs
	manifest *Manifest
	logger   *zap.Logger
	workers  int
	force    bool
	progress func(Result)
}

// Option configures a Converter.
type Option func(*Converter)

// WithFs sets the filesystem the Converter reads and writes through.
func WithFs(fs afero.Fs) Option {
	return func(c *Converter) {
		c.fs = fs
	}
}

// WithManifest enables skipping of images whose recorded checksum has
// not changed since they were last converted.
func WithManifest(m *Manifest) Option {
	return func(c *Converter) {
		c.manifest = m
	}
}

// WithWorkers sets how many images are converted concurrently.
func WithWorkers(n int) Option {
	return func(c *Converter) {
		if n > 0 {
			c.workers = n
		}
	}
}

// WithForce converts every image even when the manifest says it is
// unchanged.
func WithForce(force bool) Option {
	return func(c *Converter) {
		c.force = force
	}
}

// WithProgress installs a callback invoked once per completed file.
func WithProgress(fn func(Result)) Option {
	return func(c *Converter) {
		c.progress = fn
	}
}

// New returns a Converter writing through the OS filesystem unless
// configured otherwise.
func New(logger *zap.Logger, opts ...Option) *Converter {
	if logger == nil {
		logger = zap.NewNop()
	}

	c := &Converter{
		fs:      afero.NewOsFs(),
		logger:  logger,
		workers: defaultWorkers,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}
