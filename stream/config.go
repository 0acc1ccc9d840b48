package stream

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v2"
)

// Config for the streamer.
type Config struct {
	Mqtt struct {
		URL      string `yaml:"url"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		QoS      byte   `yaml:"qos"`
		Topics   struct {
			Stream string `yaml:"stream"`
		} `yaml:"topics"`
	} `yaml:"mqtt"`

	Listen    string  `yaml:"listen"`
	FrameRate float64 `yaml:"frameRate"`
	Locations string  `yaml:"locations"`

	Animation struct {
		Duration int64  `yaml:"duration"`
		Easing   string `yaml:"easing"`
	} `yaml:"animation"`

	Background struct {
		ForeColour          string `yaml:"foreColour"`
		BackColour          string `yaml:"backColour"`
		ScintillationChance int32  `yaml:"scintillationChance"`
	} `yaml:"background"`

	Layers []LayerConfig `yaml:"layers"`
	Scenes []SceneConfig `yaml:"scenes"`
}

// LayerConfig describes a Layer at rest.
type LayerConfig struct {
	Name     string        `yaml:"name"`
	X        *float64      `yaml:"x"`
	Y        *float64      `yaml:"y"`
	Width    *float64      `yaml:"width"`
	Height   *float64      `yaml:"height"`
	Alpha    *float64      `yaml:"alpha"`
	Colour   string        `yaml:"colour"`
	Gradient GradientTable `yaml:"gradient"`
}

// SceneConfig lists the effects played together on a layer.
type SceneConfig struct {
	Layer   string         `yaml:"layer"`
	Loop    bool           `yaml:"loop"`
	Effects []EffectConfig `yaml:"effects"`
}

// EffectConfig describes one term of a scene's expression.
type EffectConfig struct {
	Effect   string    `yaml:"effect"`
	Property string    `yaml:"property"`
	Value    float64   `yaml:"value"`
	Values   []float64 `yaml:"values"`
	Colours  []string  `yaml:"colours"`
	From     *float64  `yaml:"from"`
	To       *float64  `yaml:"to"`

	During          string    `yaml:"during"`
	Segment         []float64 `yaml:"segment"`
	Easing          string    `yaml:"easing"`
	KeyframeEasings []string  `yaml:"keyframeEasings"`
	Offsets         []float64 `yaml:"offsets"`
	Duration        int64     `yaml:"duration"`
	Delay           int64     `yaml:"delay"`
}

// DefaultFrameRate is used when the config leaves frameRate unset.
const DefaultFrameRate = 30.0

// ReadConfig decodes a YAML config and fills in defaults.
func ReadConfig(r io.Reader) (Config, error) {
	var c Config
	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(&c); err != nil {
		return c, fmt.Errorf("decoding config: %w", err)
	}

	if c.FrameRate <= 0 {
		c.FrameRate = DefaultFrameRate
	}
	if c.Listen == "" {
		c.Listen = ":3000"
	}
	if c.Mqtt.Topics.Stream == "" {
		c.Mqtt.Topics.Stream = "home/xmastree/stream"
	}
	return c, nil
}
