package stream

import (
	"context"
	"log"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
)

// Streamer that streams RGB data frames to an ledrx device.
type Streamer struct {
	client     mqtt.Client
	controller *Controller
	topic      string
	qos        byte
	frameRate  float64
}

// NewStreamer creates an instance of a Streamer.
func NewStreamer(config Config, client mqtt.Client, controller *Controller) *Streamer {
	s := new(Streamer)
	s.client = client
	s.controller = controller
	s.topic = config.Mqtt.Topics.Stream
	s.qos = config.Mqtt.QoS
	s.frameRate = config.FrameRate
	return s
}

// SendFrame sends a frame as binary over MQTT to an ledrx device.
func (s *Streamer) SendFrame(runtimeMs int64) error {
	f := s.controller.CalculateFrame(runtimeMs)
	b, err := f.MarshalBinary()
	if err != nil {
		return err
	}

	token := s.client.Publish(s.topic, s.qos, false, b)
	token.Wait()
	return token.Error()
}

// Run causes the Streamer to send Frames continuously until ctx is done.
func (s *Streamer) Run(ctx context.Context) error {
	start := time.Now()
	publishTimer := time.NewTicker(time.Duration(float64(time.Second) / s.frameRate))
	defer publishTimer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case t := <-publishTimer.C:
			if err := s.SendFrame(t.Sub(start).Milliseconds()); err != nil {
				log.Printf("Sending frame: %v", err)
			}
		}
	}
}
