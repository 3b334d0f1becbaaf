/*
Package rgb444 implements the packed 12-bit pixel format used by the
generated VHDL image tables.

Each pixel is a single 12-bit value holding three 4-bit color channels:

	bit 11         0
	    RRRRGGGGBBBB

A channel is quantized from its 8-bit source value by keeping the top
four bits, so sixteen adjacent input values share one output value; 0
maps to 0x0 and 255 maps to 0xF.
*/
package rgb444

import "image/color"

// Bits is the width of a packed pixel as emitted in the generated VHDL.
const Bits = 12

// Max is the largest packed value.
const Max = 1<<Bits - 1

// Pixel is a packed RGB444 value. It implements the color.Color
// interface.
type Pixel uint16

// Model converts any color.Color to a Pixel, discarding alpha. The
// source is un-premultiplied first so a transparent color keeps its
// channel values instead of being composited against black.
var Model color.Model = color.ModelFunc(func(c color.Color) color.Color {
	if p, ok := c.(Pixel); ok {
		return p
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return FromRGB(n.R, n.G, n.B)
})

// FromRGB packs an 8-bit RGB triple into a Pixel, truncating each
// channel to its top four bits.
func FromRGB(r, g, b uint8) Pixel {
	return Pixel(r>>4)<<8 | Pixel(g>>4)<<4 | Pixel(b>>4)
}

// R returns the 4-bit red channel.
func (p Pixel) R() uint8 { return uint8(p >> 8 & 0xf) }

// G returns the 4-bit green channel.
func (p Pixel) G() uint8 { return uint8(p >> 4 & 0xf) }

// B returns the 4-bit blue channel.
func (p Pixel) B() uint8 { return uint8(p & 0xf) }

// RGBA implements the color.Color interface. Each 4-bit channel is
// expanded to 16 bits by replicating its bit pattern, so the minimum
// and maximum channel values map to the minimum and maximum 16-bit
// values. Alpha is always fully opaque as the format has no alpha
// channel.
func (p Pixel) RGBA() (r, g, b, a uint32) {
	r = uint32(p.R()) * 0x1111
	g = uint32(p.G()) * 0x1111
	b = uint32(p.B()) * 0x1111
	a = 0xffff
	return
}
