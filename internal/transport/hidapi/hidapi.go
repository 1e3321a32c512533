// Package hidapi writes to the badge through the platform HID stack.
// Device ids are the OS device paths reported by hidapi.
package hidapi

import (
	"fmt"

	"github.com/sstallion/go-hid"
	"go.uber.org/zap"

	"github.com/neuroplastio/neio-badge/internal/protocol"
	"github.com/neuroplastio/neio-badge/internal/transport"
)

type Driver struct {
	log *zap.Logger
}

func New(log *zap.Logger) *Driver {
	return &Driver{log: log}
}

func (d *Driver) Name() string {
	return transport.NameHIDAPI
}

func (d *Driver) Description() string {
	return "Program a device connected via USB using hidapi."
}

func (d *Driver) Init() error {
	if err := hid.Init(); err != nil {
		return fmt.Errorf("failed to initialize hidapi: %w", err)
	}
	return nil
}

func (d *Driver) Close() error {
	return hid.Exit()
}

func (d *Driver) Enumerate() ([]transport.Device, error) {
	var devices []transport.Device
	err := hid.Enumerate(transport.VendorID, transport.ProductID, func(info *hid.DeviceInfo) error {
		devices = append(devices, transport.Device{
			ID:          info.Path,
			Description: fmt.Sprintf("%s - %s (if=%d)", info.MfrStr, info.ProductStr, info.InterfaceNbr),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return devices, nil
}

func (d *Driver) Open(id string) (transport.Handle, error) {
	dev, err := hid.OpenPath(id)
	if err != nil {
		return nil, err
	}
	d.log.Debug("Opened HID device", zap.String("path", id))
	return &handle{
		dev: dev,
		buf: make([]byte, protocol.BlockSize+1),
	}, nil
}

type handle struct {
	dev *hid.Device
	buf []byte
}

// WriteReport sends one chunk as an output report. The first byte is the
// report id, which is 0 for the badge.
func (h *handle) WriteReport(chunk []byte) error {
	h.buf[0] = 0
	n := copy(h.buf[1:], chunk)
	_, err := h.dev.Write(h.buf[:n+1])
	return err
}

func (h *handle) Close() error {
	return h.dev.Close()
}
