package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/sync/errgroup"

	"github.com/matt-g-everett/ledtween/animator"
	"github.com/matt-g-everett/ledtween/api"
	"github.com/matt-g-everett/ledtween/scheduler"
	"github.com/matt-g-everett/ledtween/stream"
)

type app struct {
	Config     stream.Config
	Client     mqtt.Client
	Controller *stream.Controller
	Streamer   *stream.Streamer
	Api        *api.Api
}

func newApp() *app {
	a := new(app)
	return a
}

func (a *app) readConfig(configPath string) {
	f, err := os.Open(configPath)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	a.Config, err = stream.ReadConfig(f)
	if err != nil {
		panic(err)
	}
}

func (a *app) build() {
	locations := stream.StripLocations(stream.NewFrame(colorful.Color{}).Len())
	if a.Config.Locations != "" {
		var err error
		locations, err = stream.LoadLocations(a.Config.Locations, len(locations))
		if err != nil {
			panic(err)
		}
	}

	clock := animator.NewClock(0)
	sched := scheduler.NewScheduler[*stream.Layer](clock)
	controller, err := stream.NewController(a.Config, clock, sched, locations)
	if err != nil {
		panic(err)
	}

	a.Controller = controller
	a.Streamer = stream.NewStreamer(a.Config, a.Client, controller)
	a.Api = api.NewApi(a.Config.Listen, "client/dist", func() interface{} {
		return controller.Status()
	})
}

func (a *app) run(ctx context.Context) error {
	if token := a.Client.Connect(); token.Wait() && token.Error() != nil {
		panic(token.Error())
	}
	defer a.Client.Disconnect(250)

	if err := a.Controller.Start(); err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return a.Streamer.Run(ctx) })
	g.Go(func() error { return a.Api.Serve(ctx) })
	return g.Wait()
}

func main() {
	// mqtt.DEBUG = log.New(os.Stdout, "", 0)
	mqtt.ERROR = log.New(os.Stdout, "", 0)

	// Parse command line parameters
	configPath := flag.String("config", "config.yaml", "YAML config file.")
	flag.Parse()

	// Read the config
	a := newApp()
	a.readConfig(*configPath)
	log.Printf("Config: %+v", a.Config)

	options := mqtt.NewClientOptions().
		AddBroker(a.Config.Mqtt.URL).
		SetClientID("ledtween").
		SetUsername(a.Config.Mqtt.Username).
		SetPassword(a.Config.Mqtt.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second).
		SetOnConnectHandler(func(mqtt.Client) { log.Println("Connected") })
	a.Client = mqtt.NewClient(options)
	a.build()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := a.run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}
