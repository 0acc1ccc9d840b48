package stream

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hex(t *testing.T, s string) colorful.Color {
	c, err := colorful.Hex(s)
	require.NoError(t, err)
	return c
}

func TestCombinedScale(t *testing.T) {
	l := NewLayer("star", colorful.Color{})

	Scale.Set(l, 0.5)
	assert.Equal(t, 0.5, l.ScaleX)
	assert.Equal(t, 0.5, l.ScaleY)

	l.ScaleY = 0.9
	assert.Equal(t, 0.5, Scale.Get(l))
}

func TestGradientPosition(t *testing.T) {
	l := NewLayer("rainbow", colorful.Hsv(0, 1, 1))
	GradientPosition.Set(l, 0.5)
	assert.Equal(t, 0.5, l.GradientPos)
	assert.Equal(t, colorful.Hsv(0, 1, 1), l.Colour)

	l.Gradient = GradientTable{{Hue: 0, Pos: 0}, {Hue: 240, Pos: 1}}
	GradientPosition.Set(l, 0.5)
	h, _, _ := l.Colour.Hsv()
	assert.InDelta(t, 120, h, 1e-6)
}

func TestGradientTableEnds(t *testing.T) {
	g := GradientTable{{Hue: 10, Pos: 0.2}, {Hue: 20, Pos: 0.8}}
	h, _, _ := g.GetColor(0, 1, 1).Hsv()
	assert.InDelta(t, 10, h, 1e-6)
	h, _, _ = g.GetColor(1, 1, 1).Hsv()
	assert.InDelta(t, 20, h, 1e-6)
}

func TestBlendColour(t *testing.T) {
	red, blue := hex(t, "#ff0000"), hex(t, "#0000ff")
	assert.Equal(t, red.Hex(), BlendColour(red, blue, 0).Clamped().Hex())
	assert.Equal(t, blue.Hex(), BlendColour(red, blue, 1).Clamped().Hex())
}

func TestLayerCovers(t *testing.T) {
	l := NewLayer("band", colorful.Color{})
	l.Width = 0.2
	assert.True(t, l.Covers(Point{0.5, 0.5}))
	assert.False(t, l.Covers(Point{0.7, 0.5}))

	l.TranslationX = 0.2
	assert.True(t, l.Covers(Point{0.7, 0.5}))

	l.ScaleX = -2
	assert.True(t, l.Covers(Point{0.55, 0.5}))
}

func TestLayerRender(t *testing.T) {
	black, white := hex(t, "#000000"), hex(t, "#ffffff")
	l := NewLayer("half", white)
	l.X = 0.25
	l.Width = 0.5

	f := NewFrame(black)
	l.Render(f, StripLocations(f.Len()))
	assert.Equal(t, "#ffffff", f.Pixel(0).Hex())
	assert.Equal(t, "#000000", f.Pixel(f.Len()-1).Hex())

	l.Alpha = 0
	f = NewFrame(black)
	l.Render(f, StripLocations(f.Len()))
	assert.Equal(t, "#000000", f.Pixel(0).Hex())
}

func TestFrameMarshalBinary(t *testing.T) {
	f := NewFrame(hex(t, "#102030"))
	b, err := f.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, b, 2+numPixels*3)
	assert.Equal(t, uint16(numPixels), binary.LittleEndian.Uint16(b))
	assert.Equal(t, []byte{0x10, 0x20, 0x30}, b[2:5])
}

func TestStripLocations(t *testing.T) {
	locations := StripLocations(3)
	assert.Equal(t, []Point{{0, 0.5}, {0.5, 0.5}, {1, 0.5}}, locations)
	assert.Equal(t, []Point{{0.5, 0.5}}, StripLocations(1))
}

func TestLoadLocations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cal.json")
	data := `{"pixels": [1], "locations": [{"x": 0.1, "y": 0.9}]}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	locations, err := LoadLocations(path, 3)
	require.NoError(t, err)
	assert.Equal(t, Point{0.1, 0.9}, locations[1])
	assert.Equal(t, Point{1, 0.5}, locations[2])

	bad := RawCalibrationData{Pixels: []int32{5}, Locations: []Point{{}}}
	_, err = bad.Resolve(3)
	assert.Error(t, err)

	_, err = LoadLocations(filepath.Join(t.TempDir(), "missing.json"), 3)
	assert.Error(t, err)
}

func TestTwinklePaints(t *testing.T) {
	back, fore := hex(t, "#000005"), hex(t, "#808080")
	tw := NewTwinkle(1, fore, back)

	f := NewFrame(colorful.Color{})
	for i := 0; i < 6; i++ {
		tw.Paint(f, int64(i)*33)
	}

	// With a chance of 1 in 1 every pixel is mid scintillation.
	assert.NotEqual(t, back.Hex(), f.Pixel(0).Hex())
}

const testConfig = `
mqtt:
  url: tcp://localhost:1883
  topics:
    stream: test/stream
frameRate: 50
animation:
  duration: 1000
  easing: linear
layers:
  - name: star
    colour: "#ffcc00"
    alpha: 1
  - name: band
    width: 0.5
scenes:
  - layer: star
    loop: true
    effects:
      - effect: fadeOut
      - effect: colour
        colours: ["#ff0000", "#0000ff"]
        during: secondHalf
  - layer: band
    effects:
      - effect: tween
        property: scaleX
        values: [1]
        from: 0.5
        duration: 200
      - effect: moveXInBy
        value: 0.25
        easing: outQuad
        segment: [0.5, 1]
`

func readTestConfig(t *testing.T) Config {
	c, err := ReadConfig(strings.NewReader(testConfig))
	require.NoError(t, err)
	return c
}

func TestReadConfig(t *testing.T) {
	c := readTestConfig(t)
	assert.Equal(t, "tcp://localhost:1883", c.Mqtt.URL)
	assert.Equal(t, "test/stream", c.Mqtt.Topics.Stream)
	assert.Equal(t, 50.0, c.FrameRate)
	assert.Equal(t, ":3000", c.Listen)
	assert.Equal(t, int64(1000), c.Animation.Duration)
	require.Len(t, c.Layers, 2)
	require.Len(t, c.Scenes, 2)
	assert.Equal(t, []string{"#ff0000", "#0000ff"}, c.Scenes[0].Effects[1].Colours)
	require.NotNil(t, c.Scenes[1].Effects[0].From)
	assert.Equal(t, 0.5, *c.Scenes[1].Effects[0].From)

	d, err := ReadConfig(strings.NewReader("mqtt:\n  url: x\n"))
	require.NoError(t, err)
	assert.Equal(t, DefaultFrameRate, d.FrameRate)
	assert.Equal(t, "home/xmastree/stream", d.Mqtt.Topics.Stream)

	_, err = ReadConfig(strings.NewReader("frameRate: [1"))
	assert.Error(t, err)
}

func TestBuildExpression(t *testing.T) {
	c := readTestConfig(t)
	lang, err := NewLanguage(c)
	require.NoError(t, err)

	expr, err := BuildExpression(lang, c.Scenes[1].Effects)
	require.NoError(t, err)

	plans := expr.Plans()
	require.Len(t, plans, 2)
	for _, p := range plans {
		assert.NoError(t, p.(interface{ Validate() error }).Validate())
	}
}

func TestBuildExpressionErrors(t *testing.T) {
	lang, err := NewLanguage(Config{})
	require.NoError(t, err)

	bad := [][]EffectConfig{
		nil,
		{{Effect: "wiggle"}},
		{{Effect: "tween", Property: "hue", Values: []float64{1}}},
		{{Effect: "tween", Property: "alpha"}},
		{{Effect: "colour"}},
		{{Effect: "colour", Colours: []string{"red"}}},
		{{Effect: "fadeIn", During: "lastBit"}},
		{{Effect: "fadeIn", Segment: []float64{0.5}}},
		{{Effect: "fadeIn", Easing: "wobbly"}},
		{{Effect: "fadeIn", KeyframeEasings: []string{"wobbly"}}},
	}
	for _, effects := range bad {
		_, err := BuildExpression(lang, effects)
		assert.Error(t, err, "%+v", effects)
	}

	c := Config{}
	c.Animation.Easing = "wobbly"
	_, err = NewLanguage(c)
	assert.Error(t, err)
}
