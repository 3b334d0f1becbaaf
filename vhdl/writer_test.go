package vhdl

import (
	"bytes"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newImage(pixels [][]color.NRGBA) *image.NRGBA {
	h := len(pixels)
	w := len(pixels[0])
	m := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y, row := range pixels {
		for x, c := range row {
			m.SetNRGBA(x, y, c)
		}
	}
	return m
}

func TestEncodeSinglePixel(t *testing.T) {
	m := newImage([][]color.NRGBA{
		{{R: 255, G: 0, B: 0, A: 255}},
	})

	b := new(bytes.Buffer)
	require.NoError(t, Encode(b, m, "logo"))

	want := `library ieee;
use ieee.std_logic_1164.all;

package logo_graphic is
    constant logo_width : integer := 1;
    constant logo_height : integer := 1;
    type logo_array is array (0 to logo_height-1, 0 to logo_width-1) of std_logic_vector(11 downto 0);
    constant LOGO_IMAGE : logo_array := (
    (X"F00")
    );
end package logo_graphic;
`
	assert.Equal(t, want, b.String())
}

func TestEncodeRow(t *testing.T) {
	m := newImage([][]color.NRGBA{
		{{R: 0, G: 0, B: 0, A: 255}, {R: 255, G: 255, B: 255, A: 255}},
	})

	b := new(bytes.Buffer)
	require.NoError(t, Encode(b, m, "strip"))

	assert.Contains(t, b.String(), "    (X\"000\", X\"FFF\")\n")
	assert.Contains(t, b.String(), "constant strip_width : integer := 2;")
	assert.Contains(t, b.String(), "constant strip_height : integer := 1;")
}

func TestEncodeTrailingCommas(t *testing.T) {
	m := newImage([][]color.NRGBA{
		{{R: 255, A: 255}},
		{{G: 255, A: 255}},
		{{B: 255, A: 255}},
	})

	b := new(bytes.Buffer)
	require.NoError(t, Encode(b, m, "bars"))

	lines := strings.Split(b.String(), "\n")
	assert.Equal(t, "    (X\"F00\"),", lines[8])
	assert.Equal(t, "    (X\"0F0\"),", lines[9])
	assert.Equal(t, "    (X\"00F\")", lines[10])
	assert.Equal(t, "    );", lines[11])
}

func TestEncodeIdentifierCasing(t *testing.T) {
	m := newImage([][]color.NRGBA{
		{{A: 255}},
	})

	b := new(bytes.Buffer)
	require.NoError(t, Encode(b, m, "Logo"))

	s := b.String()
	assert.Contains(t, s, "package logo_graphic is")
	assert.Contains(t, s, "constant logo_width : integer := 1;")
	assert.Contains(t, s, "constant logo_height : integer := 1;")
	assert.Contains(t, s, "type logo_array is array")
	assert.Contains(t, s, "constant LOGO_IMAGE : logo_array := (")
	assert.Contains(t, s, "end package logo_graphic;")
	assert.NotContains(t, s, "Logo")
}

func TestEncodeAlphaDiscarded(t *testing.T) {
	m := newImage([][]color.NRGBA{
		{{R: 255, G: 0, B: 0, A: 0}, {R: 255, G: 0, B: 0, A: 128}},
	})

	b := new(bytes.Buffer)
	require.NoError(t, Encode(b, m, "ghost"))

	assert.Contains(t, b.String(), "(X\"F00\", X\"F00\")")
}

func TestEncodePalettedInput(t *testing.T) {
	m := image.NewPaletted(image.Rect(0, 0, 2, 1), color.Palette{
		color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		color.NRGBA{R: 0, G: 0, B: 0, A: 255},
	})
	m.SetColorIndex(0, 0, 1)
	m.SetColorIndex(1, 0, 0)

	b := new(bytes.Buffer)
	require.NoError(t, Encode(b, m, "pal"))

	assert.Contains(t, b.String(), "(X\"000\", X\"FFF\")")
}

func TestEncodeOffsetBounds(t *testing.T) {
	m := image.NewNRGBA(image.Rect(3, 7, 4, 8))
	m.SetNRGBA(3, 7, color.NRGBA{R: 255, G: 255, B: 255, A: 255})

	b := new(bytes.Buffer)
	require.NoError(t, Encode(b, m, "off"))

	assert.Contains(t, b.String(), "constant off_width : integer := 1;")
	assert.Contains(t, b.String(), "(X\"FFF\")")
}

func TestEncodeIdempotent(t *testing.T) {
	m := newImage([][]color.NRGBA{
		{{R: 1, G: 2, B: 3, A: 255}, {R: 200, G: 100, B: 50, A: 255}},
		{{R: 16, G: 32, B: 48, A: 255}, {R: 255, G: 255, B: 255, A: 255}},
	})

	first := new(bytes.Buffer)
	second := new(bytes.Buffer)
	require.NoError(t, Encode(first, m, "twice"))
	require.NoError(t, Encode(second, m, "twice"))

	assert.Equal(t, first.Bytes(), second.Bytes())
}

func TestEncodeEmptyImage(t *testing.T) {
	m := image.NewNRGBA(image.Rect(0, 0, 0, 5))
	assert.Error(t, Encode(new(bytes.Buffer), m, "empty"))

	m = image.NewNRGBA(image.Rect(0, 0, 5, 0))
	assert.Error(t, Encode(new(bytes.Buffer), m, "empty"))
}

func TestEncodeTooLarge(t *testing.T) {
	m := image.NewNRGBA(image.Rect(0, 0, MaxDim+1, 1))
	assert.Error(t, Encode(new(bytes.Buffer), m, "huge"))
}

func TestEncodeBadName(t *testing.T) {
	m := image.NewNRGBA(image.Rect(0, 0, 1, 1))

	for _, name := range []string{"", "1logo", "_logo", "lo-go", "lo go"} {
		assert.Error(t, Encode(new(bytes.Buffer), m, name), "name %q", name)
	}
}

func TestIdentifier(t *testing.T) {
	tables := []struct {
		path string
		want string
	}{
		{"Logo.png", "logo"},
		{"/tmp/images/Logo.png", "logo"},
		{"My-Image.PNG", "my_image"},
		{"splash screen.png", "splash_screen"},
		{"tile0.png", "tile0"},
	}

	for _, table := range tables {
		got, err := Identifier(table.path)
		require.NoError(t, err, table.path)
		assert.Equal(t, table.want, got)
	}

	for _, path := range []string{"123.png", "_x.png", ".png", "---.png"} {
		_, err := Identifier(path)
		assert.Error(t, err, path)
	}
}
