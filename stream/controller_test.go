package stream

import (
	"testing"

	"github.com/eclipse/paho.mqtt.golang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matt-g-everett/ledtween/animator"
	"github.com/matt-g-everett/ledtween/scheduler"
)

func newTestController(t *testing.T, c Config) *Controller {
	clock := animator.NewClock(0)
	sched := scheduler.NewScheduler[*Layer](clock)
	controller, err := NewController(c, clock, sched, StripLocations(numPixels))
	require.NoError(t, err)
	return controller
}

func TestControllerPlaysScenes(t *testing.T) {
	controller := newTestController(t, readTestConfig(t))
	require.NoError(t, controller.Start())

	star, ok := controller.Layer("star")
	require.True(t, ok)
	band, ok := controller.Layer("band")
	require.True(t, ok)

	status := controller.Status()
	require.Len(t, status, 2)
	assert.Equal(t, 2, status[0].Active)
	assert.Equal(t, 2, status[1].Active)

	controller.CalculateFrame(200)
	assert.Equal(t, 1.0, band.ScaleX)
	assert.Equal(t, 1, controller.Status()[1].Active)

	controller.CalculateFrame(1000)
	assert.Equal(t, 0.0, band.TranslationX)
	assert.Zero(t, controller.Status()[1].Active)
	assert.Equal(t, "#0000ff", star.Colour.Clamped().Hex())

	// The star's scene loops, so it is replayed as soon as it goes idle.
	assert.Equal(t, 0.0, star.Alpha)
	assert.Equal(t, 2, controller.Status()[0].Active)

	controller.CalculateFrame(1500)
	assert.InDelta(t, 0.5, star.Alpha, 1e-9)
}

func TestControllerRendersLayers(t *testing.T) {
	c := Config{}
	c.Layers = []LayerConfig{{Name: "all", Colour: "#ffffff"}}
	controller := newTestController(t, c)

	f := controller.CalculateFrame(0)
	assert.Equal(t, "#ffffff", f.Pixel(0).Hex())
	assert.Equal(t, "#ffffff", f.Pixel(numPixels-1).Hex())
}

func TestControllerConfigErrors(t *testing.T) {
	configs := []func(c *Config){
		func(c *Config) { c.Layers = []LayerConfig{{}} },
		func(c *Config) { c.Layers = []LayerConfig{{Name: "a"}, {Name: "a"}} },
		func(c *Config) { c.Layers = []LayerConfig{{Name: "a", Colour: "nope"}} },
		func(c *Config) { c.Scenes = []SceneConfig{{Layer: "ghost", Effects: []EffectConfig{{Effect: "fadeIn"}}}} },
		func(c *Config) {
			c.Layers = []LayerConfig{{Name: "a"}}
			c.Scenes = []SceneConfig{{Layer: "a"}}
		},
		func(c *Config) { c.Background.BackColour = "nope" },
		func(c *Config) { c.Background.ForeColour = "nope" },
	}

	for i, configure := range configs {
		var c Config
		configure(&c)
		clock := animator.NewClock(0)
		_, err := NewController(c, clock, scheduler.NewScheduler[*Layer](clock), StripLocations(numPixels))
		assert.Error(t, err, "config %d", i)
	}
}

type publishedToken struct {
	mqtt.Token
}

func (publishedToken) Wait() bool   { return true }
func (publishedToken) Error() error { return nil }

type recordingClient struct {
	mqtt.Client
	topics   []string
	payloads [][]byte
}

func (r *recordingClient) Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token {
	r.topics = append(r.topics, topic)
	r.payloads = append(r.payloads, payload.([]byte))
	return publishedToken{}
}

func TestStreamerSendFrame(t *testing.T) {
	c := readTestConfig(t)
	controller := newTestController(t, c)
	client := new(recordingClient)
	s := NewStreamer(c, client, controller)

	require.NoError(t, s.SendFrame(0))
	require.Len(t, client.payloads, 1)
	assert.Equal(t, "test/stream", client.topics[0])
	assert.Len(t, client.payloads[0], 2+numPixels*3)
}
