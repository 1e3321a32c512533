// Package badge builds uploads for the LED name badge and sends them.
package badge

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"time"

	"go.uber.org/dig"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/neuroplastio/neio-badge/internal/protocol"
	"github.com/neuroplastio/neio-badge/internal/render"
	"github.com/neuroplastio/neio-badge/internal/transport"
	"github.com/neuroplastio/neio-badge/internal/transport/hidapi"
	"github.com/neuroplastio/neio-badge/internal/transport/libusb"
)

type Badge struct {
	log       *zap.Logger
	config    Config
	transport *transport.Service
}

type options struct {
	log      *zap.Logger
	drivers  []transport.Driver
	platform *transport.Platform
}

type Option func(*options)

func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

// WithDrivers replaces the hidapi and libusb write methods.
func WithDrivers(drivers ...transport.Driver) Option {
	return func(o *options) {
		o.drivers = append(o.drivers, drivers...)
	}
}

func WithPlatform(p transport.Platform) Option {
	return func(o *options) {
		o.platform = &p
	}
}

// NewLogger builds the console logger. Debug messages are shown only when
// verbose is set.
func NewLogger(verbose bool) (*zap.Logger, error) {
	loggerConfig := zap.NewDevelopmentConfig()
	loggerConfig.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	loggerConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	loggerConfig.DisableStacktrace = true
	if !verbose {
		loggerConfig.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}
	logger, err := loggerConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return logger, nil
}

// auto tries the write methods in this order
var methodOrder = map[string]int{
	transport.NameHIDAPI: 0,
	transport.NameLibUSB: 1,
}

func rank(name string) int {
	if r, ok := methodOrder[name]; ok {
		return r
	}
	return len(methodOrder)
}

type driverParams struct {
	dig.In

	Log      *zap.Logger
	Platform transport.Platform
	Drivers  []transport.Driver `group:"drivers"`
}

func newTransport(p driverParams) *transport.Service {
	drivers := append([]transport.Driver(nil), p.Drivers...)
	sort.SliceStable(drivers, func(i, j int) bool {
		return rank(drivers[i].Name()) < rank(drivers[j].Name())
	})
	opts := []transport.Option{transport.WithPlatform(p.Platform)}
	for _, d := range drivers {
		opts = append(opts, transport.WithDriver(d))
	}
	return transport.New(p.Log.Named("transport"), opts...)
}

func New(config Config, opts ...Option) (*Badge, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	c := dig.New()
	provide := func(constructor any, provideOpts ...dig.ProvideOption) {
		if err := c.Provide(constructor, provideOpts...); err != nil {
			panic(err)
		}
	}
	provide(func() Config { return config })
	provide(func() (*zap.Logger, error) {
		if o.log != nil {
			return o.log, nil
		}
		return NewLogger(config.Verbose)
	})
	provide(func(cfg Config) transport.Platform {
		if o.platform != nil {
			return *o.platform
		}
		return transport.Platform{OS: runtime.GOOS, Legacy: cfg.Legacy}
	})
	if len(o.drivers) > 0 {
		for _, d := range o.drivers {
			d := d
			provide(func() transport.Driver { return d }, dig.Group("drivers"))
		}
	} else {
		provide(func(log *zap.Logger) transport.Driver {
			return hidapi.New(log.Named("transport.hidapi"))
		}, dig.Group("drivers"))
		provide(func(log *zap.Logger, cfg Config) transport.Driver {
			return libusb.New(log.Named("transport.libusb"), libusb.WithChunkDelay(time.Duration(cfg.ChunkDelay)))
		}, dig.Group("drivers"))
	}
	provide(newTransport)

	b := &Badge{config: config}
	err := c.Invoke(func(log *zap.Logger, svc *transport.Service) {
		b.log = log
		b.transport = svc
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize: %w", err)
	}
	return b, nil
}

func (b *Badge) Log() *zap.Logger {
	return b.log
}

func (b *Badge) Config() Config {
	return b.config
}

func (b *Badge) Transport() *transport.Service {
	return b.transport
}

func (b *Badge) Close() error {
	_ = b.log.Sync()
	return b.transport.Close()
}

// Render draws the messages of p. A fresh renderer is used for every
// program, so preloaded slots never leak between uploads.
func (b *Badge) Render(p Program) ([]render.Bitmap, error) {
	if len(p.Messages) == 0 {
		return nil, fmt.Errorf("%w: at least one message is required", protocol.ErrInvalidInput)
	}
	r := render.New(b.log.Named("render"))
	for _, path := range p.Preload {
		if err := r.Preload(path); err != nil {
			return nil, fmt.Errorf("failed to preload %s: %w", path, err)
		}
	}
	b.log.Debug("Rendering messages", zap.Int("messages", len(p.Messages)), zap.Int("preloaded", r.Preloaded()-1))
	bitmaps := make([]render.Bitmap, 0, len(p.Messages))
	for _, msg := range p.Messages {
		bm, err := r.Bitmap(msg)
		if err != nil {
			return nil, err
		}
		bitmaps = append(bitmaps, bm)
	}
	if r.UnusedPreloads() {
		b.log.Warn("Preloaded images are not used, embed the control character ^A in a message or reference images with :file.png:")
	}
	return bitmaps, nil
}

// Build renders p and encodes it into the bytes sent to the badge.
func (b *Badge) Build(p Program) ([]byte, error) {
	bitmaps, err := b.Render(p)
	if err != nil {
		return nil, err
	}
	b.log.Info("Building upload", zap.Stringer("type", p.Type), zap.Int("messages", len(bitmaps)))

	lengths := make([]int, 0, len(bitmaps))
	data := make([][]byte, 0, len(bitmaps))
	for _, bm := range bitmaps {
		d := bm.Data
		if p.Type == protocol.Display12x48 {
			d, err = protocol.Interleave(d)
			if err != nil {
				return nil, err
			}
		}
		lengths = append(lengths, bm.Columns)
		data = append(data, d)
	}
	h, err := protocol.BuildHeader(lengths, p.options())
	if err != nil {
		return nil, err
	}
	return protocol.Assemble(h, data...), nil
}

// Upload builds p and writes it to the device at addr. Listings requested
// through addr are returned without writing.
func (b *Badge) Upload(ctx context.Context, p Program, addr transport.Address) (transport.Selection, error) {
	buf, err := b.Build(p)
	if err != nil {
		return transport.Selection{}, err
	}
	return b.transport.Write(ctx, buf, addr.Method, addr.Device)
}
