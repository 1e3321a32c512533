//go:build linux

package linux

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/psanford/uhid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/neuroplastio/neio-badge/internal/protocol"
	"github.com/neuroplastio/neio-badge/internal/transport"
)

// reportDescriptor declares one vendor defined 64-byte input and output
// report without report ids, like the badge does.
var reportDescriptor = []byte{
	0x06, 0x00, 0xff, // Usage Page (Vendor Defined 0xFF00)
	0x09, 0x01, // Usage (0x01)
	0xa1, 0x01, // Collection (Application)
	0x15, 0x00, //   Logical Minimum (0)
	0x26, 0xff, 0x00, //   Logical Maximum (255)
	0x75, 0x08, //   Report Size (8)
	0x95, 0x40, //   Report Count (64)
	0x09, 0x01, //   Usage (0x01)
	0x81, 0x02, //   Input (Data,Var,Abs)
	0x95, 0x40, //   Report Count (64)
	0x09, 0x01, //   Usage (0x01)
	0x91, 0x02, //   Output (Data,Var,Abs)
	0xc0, // End Collection
}

// uhid output events carry a 4096 byte data field followed by its size.
const (
	uhidDataMax    = 4096
	uhidSizeOffset = uhidDataMax
)

type emulatorOptions struct {
	name    string
	display protocol.DisplayType
}

type EmulatorOption func(*emulatorOptions)

func WithName(name string) EmulatorOption {
	return func(o *emulatorOptions) {
		o.name = name
	}
}

func WithDisplay(display protocol.DisplayType) EmulatorOption {
	return func(o *emulatorOptions) {
		o.display = display
	}
}

// Emulator is a virtual badge. It shows up as a HID device with the badge's
// vendor and product id and hands every received upload to a callback.
type Emulator struct {
	log     *zap.Logger
	options emulatorOptions
	stats   Stats
}

func NewEmulator(log *zap.Logger, opts ...EmulatorOption) *Emulator {
	options := emulatorOptions{name: "LED Badge Emulator"}
	for _, opt := range opts {
		opt(&options)
	}
	return &Emulator{
		log:     log,
		options: options,
	}
}

func (e *Emulator) Stats() *Stats {
	return &e.stats
}

// Run creates the device and blocks until ctx is done.
func (e *Emulator) Run(ctx context.Context, onUpload func(Upload)) error {
	dev, err := uhid.NewDevice(e.options.name, reportDescriptor)
	if err != nil {
		return fmt.Errorf("failed to create uhid device: %w", err)
	}
	dev.Data.Bus = 0x03
	dev.Data.VendorID = transport.VendorID
	dev.Data.ProductID = transport.ProductID

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	events, err := dev.Open(ctx)
	if err != nil {
		return fmt.Errorf("failed to open uhid device: %w", err)
	}
	defer dev.Close()
	e.log.Info("Virtual badge created", zap.String("name", e.options.name), zap.String("display", e.options.display.String()))

	reports := make(chan []byte, 128)
	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		defer close(reports)
		for {
			select {
			case <-ctx.Done():
				return nil
			case event, ok := <-events:
				if !ok {
					return errors.New("uhid device closed")
				}
				if event.Type != uhid.Output {
					continue
				}
				select {
				case reports <- outputReport(event.Data):
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	group.Go(func() error {
		assembler := NewAssembler(e.options.display)
		for report := range reports {
			e.stats.Reports.Inc()
			upload, done, err := assembler.Feed(report)
			if err != nil {
				e.stats.Errors.Inc()
				e.log.Warn("Dropped report", zap.Error(err))
				continue
			}
			if !done {
				continue
			}
			e.stats.Uploads.Inc()
			e.log.Info("Upload received", zap.Ints("lengths", upload.Info.Lengths), zap.Int("brightness", upload.Info.Brightness))
			onUpload(upload)
		}
		return nil
	})
	return group.Wait()
}

func outputReport(data []byte) []byte {
	if len(data) < uhidSizeOffset+2 {
		return data
	}
	size := int(binary.LittleEndian.Uint16(data[uhidSizeOffset:]))
	return data[:min(size, uhidDataMax)]
}
