package stream

import (
	"fmt"
	"log"
	"sync"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/ledtween/animator"
	"github.com/matt-g-everett/ledtween/scheduler"
)

// LayerStatus reports a layer's animation state.
type LayerStatus struct {
	Name   string  `json:"name"`
	Active int     `json:"active"`
	Alpha  float64 `json:"alpha"`
	Colour string  `json:"colour"`
}

// Controller that manages layers and the scenes played on them.
type Controller struct {
	clock      *animator.Clock
	scheduler  *scheduler.Scheduler[*Layer]
	background Background
	backColour colorful.Color
	locations  []Point
	layers     []*Layer
	byName     map[string]*Layer

	// frameMu serialises ticking, rendering and status reads.
	frameMu sync.Mutex

	mu     sync.Mutex
	scenes map[*Layer][]*Scene
}

// NewController creates an instance of a Controller from config. sched must
// play its animations on clock. Scenes are submitted when Start is called.
func NewController(config Config, clock *animator.Clock, sched *scheduler.Scheduler[*Layer],
	locations []Point) (*Controller, error) {

	c := new(Controller)
	c.clock = clock
	c.scheduler = sched
	c.locations = locations
	c.byName = make(map[string]*Layer)
	c.scenes = make(map[*Layer][]*Scene)

	if err := c.configureBackground(config); err != nil {
		return nil, err
	}

	for _, lc := range config.Layers {
		l, err := newConfiguredLayer(lc)
		if err != nil {
			return nil, err
		}
		if _, dup := c.byName[l.Name]; dup {
			return nil, fmt.Errorf("layer %q defined twice", l.Name)
		}
		c.layers = append(c.layers, l)
		c.byName[l.Name] = l
	}

	lang, err := NewLanguage(config)
	if err != nil {
		return nil, err
	}
	for i, sc := range config.Scenes {
		l, ok := c.byName[sc.Layer]
		if !ok {
			return nil, fmt.Errorf("scene %d: unknown layer %q", i, sc.Layer)
		}
		expr, err := BuildExpression(lang, sc.Effects)
		if err != nil {
			return nil, fmt.Errorf("scene %d: %w", i, err)
		}
		c.scenes[l] = append(c.scenes[l], &Scene{Layer: l, Loop: sc.Loop, Expression: expr})
	}

	sched.Observe(c.handleActivity)
	return c, nil
}

func (c *Controller) configureBackground(config Config) error {
	bg := config.Background
	back, fore := "#000005", "#808080"
	if bg.BackColour != "" {
		back = bg.BackColour
	}
	if bg.ForeColour != "" {
		fore = bg.ForeColour
	}

	backColour, err := colorful.Hex(back)
	if err != nil {
		return fmt.Errorf("background: %w", err)
	}
	foreColour, err := colorful.Hex(fore)
	if err != nil {
		return fmt.Errorf("background: %w", err)
	}

	c.backColour = backColour
	if bg.ScintillationChance > 0 {
		c.background = NewTwinkle(bg.ScintillationChance, foreColour, backColour)
	}
	return nil
}

func newConfiguredLayer(lc LayerConfig) (*Layer, error) {
	if lc.Name == "" {
		return nil, fmt.Errorf("layer has no name")
	}

	colour := colorful.Color{R: 1, G: 1, B: 1}
	if lc.Colour != "" {
		var err error
		if colour, err = colorful.Hex(lc.Colour); err != nil {
			return nil, fmt.Errorf("layer %q: %w", lc.Name, err)
		}
	}

	l := NewLayer(lc.Name, colour)
	set := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	set(&l.X, lc.X)
	set(&l.Y, lc.Y)
	set(&l.Width, lc.Width)
	set(&l.Height, lc.Height)
	set(&l.Alpha, lc.Alpha)
	l.Gradient = lc.Gradient
	return l, nil
}

// Layer gets a layer by name.
func (c *Controller) Layer(name string) (*Layer, bool) {
	l, ok := c.byName[name]
	return l, ok
}

// Start submits every scene to the scheduler.
func (c *Controller) Start() error {
	c.frameMu.Lock()
	defer c.frameMu.Unlock()

	for _, l := range c.layers {
		if err := c.play(l); err != nil {
			return err
		}
	}
	return nil
}

func (c *Controller) play(l *Layer) error {
	c.mu.Lock()
	scenes := c.scenes[l]
	c.mu.Unlock()

	for _, s := range scenes {
		if err := c.scheduler.Commit(s.Expression, l); err != nil {
			return fmt.Errorf("layer %q: %w", l.Name, err)
		}
	}
	return nil
}

// handleActivity replays looping scenes once their layer goes idle.
func (c *Controller) handleActivity(l *Layer, active bool) {
	if active {
		return
	}

	c.mu.Lock()
	var loops []*Scene
	for _, s := range c.scenes[l] {
		if s.Loop {
			loops = append(loops, s)
		}
	}
	c.mu.Unlock()

	for _, s := range loops {
		if err := c.scheduler.Commit(s.Expression, l); err != nil {
			log.Printf("Replaying scene on %s: %v", l.Name, err)
		}
	}
}

// CalculateFrame advances every animation to runtimeMs and renders the
// result.
func (c *Controller) CalculateFrame(runtimeMs int64) *Frame {
	c.frameMu.Lock()
	defer c.frameMu.Unlock()

	c.clock.Tick(runtimeMs)
	return c.render(runtimeMs)
}

func (c *Controller) render(runtimeMs int64) *Frame {
	f := NewFrame(c.backColour)
	if c.background != nil {
		c.background.Paint(f, runtimeMs)
	}

	for _, l := range c.layers {
		l.Render(f, c.locations)
	}
	return f
}

// Status reports the state of every layer.
func (c *Controller) Status() []LayerStatus {
	c.frameMu.Lock()
	defer c.frameMu.Unlock()

	status := make([]LayerStatus, len(c.layers))
	for i, l := range c.layers {
		status[i] = LayerStatus{
			Name:   l.Name,
			Active: c.scheduler.ActiveCount(l),
			Alpha:  l.Alpha,
			Colour: l.Colour.Clamped().Hex(),
		}
	}
	return status
}
