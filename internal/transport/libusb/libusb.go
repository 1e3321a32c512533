// Package libusb writes to the badge with bulk transfers through libusb.
// Device ids are "bus:address:endpoint".
package libusb

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/gousb"
	"go.uber.org/zap"

	"github.com/neuroplastio/neio-badge/internal/transport"
)

const DefaultChunkDelay = 100 * time.Millisecond

type driverOptions struct {
	chunkDelay time.Duration
}

type Option func(*driverOptions)

// WithChunkDelay sets the pause before every 64-byte transfer.
func WithChunkDelay(d time.Duration) Option {
	return func(o *driverOptions) {
		o.chunkDelay = d
	}
}

type Driver struct {
	log     *zap.Logger
	options driverOptions
	ctx     *gousb.Context
}

func New(log *zap.Logger, opts ...Option) *Driver {
	options := driverOptions{chunkDelay: DefaultChunkDelay}
	for _, opt := range opts {
		opt(&options)
	}
	return &Driver{
		log:     log,
		options: options,
	}
}

func (d *Driver) Name() string {
	return transport.NameLibUSB
}

func (d *Driver) Description() string {
	return "Program a device connected via USB using libusb."
}

func (d *Driver) ChunkDelay() time.Duration {
	return d.options.chunkDelay
}

// Init creates the libusb context. gousb panics when libusb cannot be
// initialized.
func (d *Driver) Init() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("failed to initialize libusb: %v", r)
		}
	}()
	d.ctx = gousb.NewContext()
	return nil
}

func (d *Driver) Close() error {
	if d.ctx == nil {
		return nil
	}
	return d.ctx.Close()
}

func isBadge(desc *gousb.DeviceDesc) bool {
	return desc.Vendor == gousb.ID(transport.VendorID) && desc.Product == gousb.ID(transport.ProductID)
}

func (d *Driver) openDevices(match func(desc *gousb.DeviceDesc) bool) ([]*gousb.Device, error) {
	devs, err := d.ctx.OpenDevices(func(desc *gousb.DeviceDesc) bool {
		return isBadge(desc) && match(desc)
	})
	if err != nil && len(devs) == 0 {
		return nil, err
	}
	if err != nil {
		d.log.Warn("Some devices could not be opened", zap.Error(err))
	}
	return devs, nil
}

// outEndpoints lists the OUT endpoints of interface 0 in the device's
// first configuration.
func outEndpoints(desc *gousb.DeviceDesc) []gousb.EndpointDesc {
	cfg, ok := desc.Configs[1]
	if !ok {
		for _, c := range desc.Configs {
			cfg = c
			break
		}
	}
	var eps []gousb.EndpointDesc
	for _, intf := range cfg.Interfaces {
		if intf.Number != 0 || len(intf.AltSettings) == 0 {
			continue
		}
		for _, ep := range intf.AltSettings[0].Endpoints {
			if ep.Direction == gousb.EndpointDirectionOut {
				eps = append(eps, ep)
			}
		}
	}
	return eps
}

func (d *Driver) Enumerate() ([]transport.Device, error) {
	devs, err := d.openDevices(func(*gousb.DeviceDesc) bool { return true })
	if err != nil {
		return nil, err
	}
	var devices []transport.Device
	for _, dev := range devs {
		mfr, _ := dev.Manufacturer()
		product, _ := dev.Product()
		for _, ep := range outEndpoints(dev.Desc) {
			devices = append(devices, transport.Device{
				ID: ID{Bus: dev.Desc.Bus, Address: dev.Desc.Address, Endpoint: int(ep.Address)}.String(),
				Description: fmt.Sprintf("%s - %s (bus=%d dev=%d endpoint=%d)",
					mfr, product, dev.Desc.Bus, dev.Desc.Address, int(ep.Address)),
			})
		}
		dev.Close()
	}
	return devices, nil
}

func (d *Driver) Open(id string) (transport.Handle, error) {
	devID, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	devs, err := d.openDevices(func(desc *gousb.DeviceDesc) bool {
		return desc.Bus == devID.Bus && desc.Address == devID.Address
	})
	if err != nil {
		return nil, err
	}
	if len(devs) == 0 {
		return nil, fmt.Errorf("%w: %s", transport.ErrDeviceNotFound, id)
	}
	for _, extra := range devs[1:] {
		extra.Close()
	}
	dev := devs[0]

	h, err := openHandle(dev, devID.Endpoint)
	if err != nil {
		dev.Close()
		return nil, err
	}
	d.log.Debug("Opened USB device", zap.String("id", id))
	return h, nil
}

func openHandle(dev *gousb.Device, endpoint int) (*handle, error) {
	if err := dev.SetAutoDetach(true); err != nil {
		return nil, fmt.Errorf("failed to detach kernel driver: %w", err)
	}
	cfgNum, err := dev.ActiveConfigNum()
	if err != nil || cfgNum == 0 {
		cfgNum = 1
	}
	cfg, err := dev.Config(cfgNum)
	if err != nil {
		return nil, fmt.Errorf("failed to set configuration: %w", err)
	}
	intf, err := cfg.Interface(0, 0)
	if err != nil {
		cfg.Close()
		return nil, fmt.Errorf("failed to claim interface: %w", err)
	}
	ep, err := intf.OutEndpoint(endpoint & 0x0f)
	if err != nil {
		intf.Close()
		cfg.Close()
		return nil, fmt.Errorf("failed to open endpoint %d: %w", endpoint, err)
	}
	return &handle{dev: dev, cfg: cfg, intf: intf, ep: ep}, nil
}

type handle struct {
	dev  *gousb.Device
	cfg  *gousb.Config
	intf *gousb.Interface
	ep   *gousb.OutEndpoint
}

func (h *handle) WriteReport(chunk []byte) error {
	_, err := h.ep.Write(chunk)
	return err
}

// Close resets the device so it shows the new messages right away.
func (h *handle) Close() error {
	h.intf.Close()
	cfgErr := h.cfg.Close()
	resetErr := h.dev.Reset()
	return errors.Join(cfgErr, resetErr, h.dev.Close())
}
