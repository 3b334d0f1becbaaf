package png2vhdl

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/annoyedmilk/PNG2VHDL/vhdl"
)

// OutputExt is the extension given to generated VHDL packages.
const OutputExt = ".vhd"

// Result records the outcome of converting a single source image.
type Result struct {
	Source  string
	Output  string
	Skipped bool
	Err     error
}

// Convert reads the image at src and writes its VHDL graphic package
// to dst. The output appears atomically: it is written to a temporary
// file and renamed into place, so a failed conversion leaves no
// truncated artifact behind.
func (c *Converter) Convert(src, dst string) error {
	name, err := vhdl.Identifier(src)
	if err != nil {
		return err
	}

	m, err := c.readImage(src)
	if err != nil {
		return errors.Wrapf(err, "reading %s", src)
	}

	var buf bytes.Buffer
	if err := vhdl.Encode(&buf, m, name); err != nil {
		return errors.Wrapf(err, "encoding %s", src)
	}

	if err := c.writeFile(dst, buf.Bytes()); err != nil {
		return errors.Wrapf(err, "writing %s", dst)
	}

	return nil
}

func (c *Converter) readImage(src string) (image.Image, error) {
	f, err := c.fs.Open(src)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, _, err := image.Decode(f)
	return m, err
}

func (c *Converter) writeFile(dst string, b []byte) error {
	f, err := afero.TempFile(c.fs, filepath.Dir(dst), ".png2vhdl-*")
	if err != nil {
		return err
	}

	if _, err := f.Write(b); err != nil {
		f.Close()
		c.fs.Remove(f.Name())
		return err
	}
	if err := f.Close(); err != nil {
		c.fs.Remove(f.Name())
		return err
	}

	if err := c.fs.Rename(f.Name(), dst); err != nil {
		c.fs.Remove(f.Name())
		return err
	}

	return nil
}

// convertFile converts a single source image into outputDir, consulting
// the manifest first so unchanged images are skipped.
func (c *Converter) convertFile(src, outputDir string) Result {
	res := Result{Source: src}

	name, err := vhdl.Identifier(src)
	if err != nil {
		res.Err = err
		return res
	}
	res.Output = filepath.Join(outputDir, name+OutputExt)

	var crc string
	if c.manifest != nil && !c.force {
		ok := false
		if crc, err = crcFile(c.fs, src); err != nil {
			c.logger.Debug("manifest lookup failed", zap.String("file", src), zap.Error(err))
		} else if ok, err = c.manifest.UpToDate(src, crc); err != nil {
			c.logger.Debug("manifest lookup failed", zap.String("file", src), zap.Error(err))
		}
		if ok {
			if exists, _ := afero.Exists(c.fs, res.Output); exists {
				res.Skipped = true
				return res
			}
		}
	}

	if err := c.Convert(src, res.Output); err != nil {
		res.Err = err
		return res
	}

	if c.manifest != nil {
		if crc == "" {
			crc, _ = crcFile(c.fs, src)
		}
		if crc != "" {
			if err := c.manifest.Record(src, crc, res.Output); err != nil {
				c.logger.Warn("manifest update failed", zap.String("file", src), zap.Error(err))
			}
		}
	}

	return res
}
