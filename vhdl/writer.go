package vhdl

import (
	"errors"
	"fmt"
	"image"
	"io"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/annoyedmilk/PNG2VHDL/rgb444"
)

var (
	errEmptyImage = errors.New("vhdl: image has no pixels")
	errTooLarge   = errors.New("vhdl: image dimensions exceed limit")
)

type encoder struct {
	w     io.Writer
	lower string
	upper string
}

func (e *encoder) printf(format string, args ...interface{}) error {
	_, err := fmt.Fprintf(e.w, format, args...)
	return err
}

func (e *encoder) encode(m *image.NRGBA) error {
	width, height := m.Rect.Dx(), m.Rect.Dy()

	if err := e.printf("library ieee;\nuse ieee.std_logic_1164.all;\n\n"); err != nil {
		return err
	}
	if err := e.printf("package %s_graphic is\n", e.lower); err != nil {
		return err
	}
	if err := e.printf("    constant %s_width : integer := %d;\n", e.lower, width); err != nil {
		return err
	}
	if err := e.printf("    constant %s_height : integer := %d;\n", e.lower, height); err != nil {
		return err
	}
	if err := e.printf("    type %s_array is array (0 to %s_height-1, 0 to %s_width-1) of std_logic_vector(11 downto 0);\n", e.lower, e.lower, e.lower); err != nil {
		return err
	}
	if err := e.printf("    constant %s_IMAGE : %s_array := (\n", e.upper, e.lower); err != nil {
		return err
	}

	for y := 0; y < height; y++ {
		if err := e.printf("    ("); err != nil {
			return err
		}
		for x := 0; x < width; x++ {
			c := m.NRGBAAt(x, y)
			sep := ", "
			if x == 0 {
				sep = ""
			}
			if err := e.printf("%sX\"%03X\"", sep, uint16(rgb444.FromRGB(c.R, c.G, c.B))); err != nil {
				return err
			}
		}
		// Every row but the last carries a trailing comma.
		sep := ","
		if y == height-1 {
			sep = ""
		}
		if err := e.printf(")%s\n", sep); err != nil {
			return err
		}
	}

	if err := e.printf("    );\n"); err != nil {
		return err
	}
	return e.printf("end package %s_graphic;\n", e.lower)
}

// Encode writes the image m to w as a VHDL graphic package named after
// name, which must be a legal VHDL basic identifier. The name is
// lower-cased for the package, type and dimension constants and
// upper-cased for the image constant. Alpha and palette images are
// flattened to plain 8-bit RGB before quantization, with any alpha
// channel discarded.
func Encode(w io.Writer, m image.Image, name string) error {
	if !validIdentifier(name) {
		return fmt.Errorf("vhdl: %q is not a legal identifier", name)
	}

	b := m.Bounds()
	if b.Dx() < 1 || b.Dy() < 1 {
		return errEmptyImage
	}
	if b.Dx() > MaxDim || b.Dy() > MaxDim {
		return errTooLarge
	}

	nm, _ := m.(*image.NRGBA)
	if nm == nil || nm.Rect.Min != (image.Point{}) {
		nm = imaging.Clone(m)
	}

	e := encoder{
		w:     w,
		lower: strings.ToLower(name),
		upper: strings.ToUpper(name),
	}

	return e.encode(nm)
}

// Identifier derives the VHDL identifier for a source file from its
// base name: the extension is dropped, letters are lower-cased and any
// other rune becomes an underscore. The result must start with a
// letter.
func Identifier(path string) (string, error) {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	var b strings.Builder
	for _, r := range strings.ToLower(base) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}

	id := b.String()
	if !validIdentifier(id) {
		return "", fmt.Errorf("vhdl: %q does not derive a legal identifier", filepath.Base(path))
	}
	return id, nil
}

func validIdentifier(s string) bool {
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && (r >= '0' && r <= '9' || r == '_'):
		default:
			return false
		}
	}
	return s != ""
}
