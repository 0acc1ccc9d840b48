package stream

import (
	"encoding/binary"

	"github.com/lucasb-eyer/go-colorful"
)

const numPixels = 500

// Frame represents a frame of RGB pixels to display on an ledrx device.
type Frame struct {
	pixels [numPixels]colorful.Color
}

// NewFrame creates a new Frame instance filled with colour.
func NewFrame(colour colorful.Color) *Frame {
	f := new(Frame)
	for i := range f.pixels {
		f.pixels[i] = colour
	}
	return f
}

// Len gets the number of pixels in the frame.
func (f *Frame) Len() int {
	return len(f.pixels)
}

// Pixel gets the colour of pixel i.
func (f *Frame) Pixel(i int) colorful.Color {
	return f.pixels[i]
}

// Blend moves pixel i towards colour by amount in [0,1].
func (f *Frame) Blend(i int, colour colorful.Color, amount float64) {
	if amount <= 0 {
		return
	}
	if amount >= 1 {
		f.pixels[i] = colour
		return
	}
	f.pixels[i] = f.pixels[i].BlendHcl(colour, amount).Clamped()
}

// MarshalBinary converts a Frame into binary data.
func (f *Frame) MarshalBinary() (data []byte, err error) {
	data = make([]byte, 2, (numPixels*3)+2)
	binary.LittleEndian.PutUint16(data, numPixels)
	for _, p := range f.pixels {
		r, g, b := p.Clamped().RGB255()
		data = append(data, r, g, b)
	}

	return data, nil
}
