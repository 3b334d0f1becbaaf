package vhdl

import (
	"bufio"
	"errors"
	"image"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/annoyedmilk/PNG2VHDL/rgb444"
)

var (
	errNotGraphic   = errors.New("vhdl: not a graphic package")
	errBadDimension = errors.New("vhdl: dimensions do not match pixel data")
	errBadLiteral   = errors.New("vhdl: malformed pixel literal")
)

var (
	packageRE  = regexp.MustCompile(`^package ([a-z][a-z0-9_]*)_graphic is$`)
	widthRE    = regexp.MustCompile(`^\s+constant [a-z][a-z0-9_]*_width : integer := ([0-9]+);$`)
	heightRE   = regexp.MustCompile(`^\s+constant [a-z][a-z0-9_]*_height : integer := ([0-9]+);$`)
	constantRE = regexp.MustCompile(`^\s+constant [A-Z][A-Z0-9_]*_IMAGE : [a-z][a-z0-9_]*_array := \($`)
	rowRE      = regexp.MustCompile(`^\s+\((.+)\),?$`)
	literalRE  = regexp.MustCompile(`^X"([0-9A-F]{3})"$`)
	endTableRE = regexp.MustCompile(`^\s+\);$`)
)

type decoder struct {
	name   string
	width  int
	height int

	rows  [][]uint16
	image *image.NRGBA
}

func (d *decoder) readRow(line string) error {
	m := rowRE.FindStringSubmatch(line)
	if m == nil {
		return errBadLiteral
	}

	row := make([]uint16, 0, d.width)
	for _, lit := range strings.Split(m[1], ", ") {
		lm := literalRE.FindStringSubmatch(lit)
		if lm == nil {
			return errBadLiteral
		}
		v, err := strconv.ParseUint(lm[1], 16, 16)
		if err != nil || v > rgb444.Max {
			return errBadLiteral
		}
		row = append(row, uint16(v))
	}

	d.rows = append(d.rows, row)
	return nil
}

func (d *decoder) decode(r io.Reader, configOnly bool) error {
	s := bufio.NewScanner(r)
	// A row of MaxDim literals is well past the default token size.
	s.Buffer(make([]byte, 0, 64<<10), 1<<20)

	inTable, done := false, false

	for s.Scan() && !done {
		line := s.Text()
		switch {
		case d.name == "":
			if m := packageRE.FindStringSubmatch(line); m != nil {
				d.name = m[1]
			}
		case d.width == 0:
			if m := widthRE.FindStringSubmatch(line); m != nil {
				d.width, _ = strconv.Atoi(m[1])
			}
		case d.height == 0:
			if m := heightRE.FindStringSubmatch(line); m != nil {
				d.height, _ = strconv.Atoi(m[1])
				if configOnly {
					return nil
				}
			}
		case !inTable:
			inTable = constantRE.MatchString(line)
		case endTableRE.MatchString(line):
			done = true
		default:
			if err := d.readRow(line); err != nil {
				return err
			}
		}
	}
	if err := s.Err(); err != nil {
		return err
	}

	if d.name == "" || d.width == 0 || d.height == 0 || !done {
		return errNotGraphic
	}

	if len(d.rows) != d.height {
		return errBadDimension
	}
	for _, row := range d.rows {
		if len(row) != d.width {
			return errBadDimension
		}
	}

	d.image = image.NewNRGBA(image.Rect(0, 0, d.width, d.height))
	for y, row := range d.rows {
		for x, v := range row {
			d.image.Set(x, y, rgb444.Pixel(v))
		}
	}

	return nil
}

// Decode reads a VHDL graphic package from r and returns the embedded
// image. Each 4-bit channel is expanded back to 8 bits, so quantizing
// the returned image again reproduces the packed values exactly.
func Decode(r io.Reader) (image.Image, error) {
	var d decoder
	if err := d.decode(r, false); err != nil {
		return nil, err
	}
	return d.image, nil
}

// DecodeConfig returns the color model and dimensions of a VHDL
// graphic package without decoding the pixel table.
func DecodeConfig(r io.Reader) (image.Config, error) {
	var d decoder
	if err := d.decode(r, true); err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: rgb444.Model,
		Width:      d.width,
		Height:     d.height,
	}, nil
}
