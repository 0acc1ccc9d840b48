package stream

import (
	"math/rand"

	"github.com/fogleman/ease"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/ledtween/util"
)

type particle struct {
	lut     []float64
	current int
	running bool
}

func (p *particle) increment() {
	if p.running {
		p.current++
		if p.current >= len(p.lut) {
			p.current = 0
			p.running = false
		}
	}
}

func (p *particle) gain() float64 {
	if !p.running {
		return 0
	}
	return p.lut[p.current]
}

// A Twinkle is a Background that makes random pixels scintillate.
type Twinkle struct {
	backColour          colorful.Color
	foreColour          colorful.Color
	scintillationChance int32
	lut                 []float64
	pixels              []particle
}

// NewTwinkle creates an instance of a Twinkle object. Each frame, every
// pixel starts to scintillate with a chance of 1 in scintillationChance.
func NewTwinkle(scintillationChance int32, foreColour, backColour colorful.Color) *Twinkle {
	t := new(Twinkle)
	t.backColour = backColour
	t.foreColour = foreColour
	t.scintillationChance = scintillationChance
	t.lut = util.GenerateLut(24, ease.InOutQuad)
	return t
}

// Paint fills f with the back colour and the current scintillations.
func (t *Twinkle) Paint(f *Frame, runtimeMs int64) {
	if t.pixels == nil {
		t.pixels = make([]particle, f.Len())
		for i := range t.pixels {
			t.pixels[i].lut = t.lut
		}
	}

	for i := range t.pixels {
		p := &t.pixels[i]
		if t.scintillationChance > 0 && rand.Int31n(t.scintillationChance) == 0 {
			p.running = true
		}

		// Always increment, it'll only affect those pixels that are scintillating
		p.increment()

		f.pixels[i] = t.backColour.BlendHcl(t.foreColour, p.gain()).Clamped()
	}
}
