/*
Package vhdl implements an encoder and decoder for VHDL graphic
packages.

A graphic package embeds one image as a read-only constant table so the
pixel data can be baked into a hardware design. The package declares
two integer constants holding the image dimensions, a two-dimensional
array type of 12-bit std_logic_vector values, and a constant of that
type initialized with one packed RGB444 value per pixel:

	library ieee;
	use ieee.std_logic_1164.all;

	package logo_graphic is
	    constant logo_width : integer := 2;
	    constant logo_height : integer := 1;
	    type logo_array is array (0 to logo_height-1, 0 to logo_width-1) of std_logic_vector(11 downto 0);
	    constant LOGO_IMAGE : logo_array := (
	    (X"000", X"FFF")
	    );
	end package logo_graphic;

Pixels are stored in row-major order, top to bottom and left to right,
each rendered as a zero-padded three digit hexadecimal bit-string
literal. Downstream synthesis tooling parses this layout with a strict
grammar so the encoder treats the formatting as part of the contract.
*/
package vhdl

const (
	// MaxDim bounds the width and height accepted by Encode. Larger
	// images make no sense as on-chip ROMs and risk array indices the
	// declared integer constants cannot sensibly represent.
	MaxDim = 4096
)
