package animator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matt-g-everett/ledtween/tween"
)

type dot struct {
	x float64
}

var xProp = tween.FloatProperty("x",
	func(d *dot) float64 { return d.x },
	func(d *dot, v float64) { d.x = v })

type events struct {
	starts, ends int
}

func (e *events) listener() tween.Listener {
	return tween.Listener{
		OnStart: func() { e.starts++ },
		OnEnd:   func() { e.ends++ },
	}
}

func linearAnimation(d *dot, delay, duration int64, values ...float64) *tween.PropertyAnimation[*dot, float64] {
	tw := tween.NewTween(xProp, duration, values...)
	a := new(tween.PropertyAnimation[*dot, float64])
	a.Target = d
	a.Property = xProp
	a.Keyframes = tw.Keyframes()
	a.Easing = tween.Linear
	a.DelayMs = delay
	a.DurationMs = duration
	return a
}

func TestClockPlaysAnimation(t *testing.T) {
	c := NewClock(0)
	d := &dot{x: 5}
	e := new(events)

	c.Start(linearAnimation(d, 100, 200, 0, 10), e.listener())
	assert.Equal(t, 1, e.starts)
	assert.Equal(t, 1, c.Running())

	c.Tick(50)
	assert.Equal(t, 5.0, d.x)

	c.Tick(200)
	assert.InDelta(t, 5.0, d.x, 1e-9)

	c.Tick(300)
	assert.Equal(t, 10.0, d.x)
	assert.Equal(t, 1, e.ends)
	assert.Zero(t, c.Running())

	c.Tick(400)
	assert.Equal(t, 1, e.ends)
}

func TestClockZeroDuration(t *testing.T) {
	c := NewClock(1000)
	d := &dot{}
	e := new(events)

	c.Start(linearAnimation(d, 0, 0, 3.0), e.listener())
	c.Tick(1000)
	assert.Equal(t, 3.0, d.x)
	assert.Equal(t, 1, e.ends)
}

func TestClockDoesNotRewind(t *testing.T) {
	c := NewClock(500)
	c.Tick(100)
	assert.Equal(t, int64(500), c.Now())
}

func TestClockStartFromCallback(t *testing.T) {
	c := NewClock(0)
	d := &dot{}
	chained := new(events)

	first := tween.Listener{
		OnEnd: func() { c.Start(linearAnimation(d, 0, 100, 20), chained.listener()) },
	}
	c.Start(linearAnimation(d, 0, 100, 10), first)

	c.Tick(100)
	assert.Equal(t, 10.0, d.x)
	require.Equal(t, 1, chained.starts)
	assert.Equal(t, 1, c.Running())

	c.Tick(200)
	assert.Equal(t, 20.0, d.x)
	assert.Equal(t, 1, chained.ends)
}
