// Package transport moves an encoded upload to a badge through one of the
// registered write methods.
package transport

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/puzpuzpuz/xsync/v3"
	"go.uber.org/zap"

	"github.com/neuroplastio/neio-badge/internal/protocol"
)

// USB identity of the badge.
const (
	VendorID  = 0x0416
	ProductID = 0x5020
)

var (
	ErrBackendUnavailable    = errors.New("write method is not available")
	ErrNoBackendAvailable    = errors.New("no write method is available")
	ErrUnsupportedOnPlatform = errors.New("write method is not supported on this platform")
	ErrDeviceNotFound        = errors.New("device not found")
	ErrUnknownMethod         = errors.New("unknown write method")
	ErrNotOpen               = errors.New("no device opened")
)

type Device struct {
	ID          string `json:"id" yaml:"id"`
	Description string `json:"description" yaml:"description"`
}

// Driver is a way to reach the badge, such as a HID library or raw USB
// bulk transfers.
type Driver interface {
	Name() string
	Description() string
	// Init probes the underlying library. A driver that fails Init is never
	// asked to enumerate or open.
	Init() error
	Enumerate() ([]Device, error)
	Open(id string) (Handle, error)
	Close() error
}

// Handle is an opened device. WriteReport receives exactly one 64-byte
// chunk.
type Handle interface {
	WriteReport(chunk []byte) error
	Close() error
}

// Throttled is implemented by drivers that need a pause before every chunk.
type Throttled interface {
	ChunkDelay() time.Duration
}

// Method wraps a Driver with readiness, a cached enumeration and the
// chunked write loop.
type Method struct {
	log     *zap.Logger
	driver  Driver
	initErr error

	enumerate    sync.Once
	enumerateErr error
	devices      *xsync.MapOf[string, Device]

	handle Handle
	device Device
}

func newMethod(log *zap.Logger, driver Driver) *Method {
	m := &Method{
		log:     log.Named(driver.Name()),
		driver:  driver,
		devices: xsync.NewMapOf[string, Device](),
	}
	m.initErr = driver.Init()
	if m.initErr != nil {
		m.log.Debug("Write method not ready", zap.Error(m.initErr))
	}
	return m
}

func (m *Method) Name() string {
	return m.driver.Name()
}

func (m *Method) Description() string {
	return m.driver.Description()
}

func (m *Method) IsReady() bool {
	return m.initErr == nil
}

// InitError is the reason the method is not ready.
func (m *Method) InitError() error {
	return m.initErr
}

// Devices lists the attached badges sorted by id. The bus is enumerated
// once; later calls return the cached result.
func (m *Method) Devices() ([]Device, error) {
	if !m.IsReady() {
		return nil, nil
	}
	m.enumerate.Do(func() {
		devices, err := m.driver.Enumerate()
		if err != nil {
			m.enumerateErr = fmt.Errorf("failed to enumerate %s devices: %w", m.Name(), err)
			return
		}
		for _, dev := range devices {
			m.devices.Store(dev.ID, dev)
		}
		m.log.Debug("Enumerated devices", zap.Int("count", len(devices)))
	})
	if m.enumerateErr != nil {
		return nil, m.enumerateErr
	}
	var devices []Device
	m.devices.Range(func(_ string, dev Device) bool {
		devices = append(devices, dev)
		return true
	})
	sort.Slice(devices, func(i, j int) bool {
		return devices[i].ID < devices[j].ID
	})
	return devices, nil
}

// Open opens the device with the given id, or the first one for "auto".
// It reports false without an error when the method is not ready or the
// device is not attached.
func (m *Method) Open(id string) (bool, error) {
	if !m.IsReady() {
		return false, nil
	}
	devices, err := m.Devices()
	if err != nil {
		return false, err
	}
	if len(devices) == 0 {
		return false, nil
	}
	var dev Device
	if id == DeviceAuto {
		dev = devices[0]
	} else {
		found, ok := m.devices.Load(id)
		if !ok {
			return false, nil
		}
		dev = found
	}
	handle, err := m.driver.Open(dev.ID)
	if err != nil {
		return false, fmt.Errorf("failed to open %s: %w", dev.ID, err)
	}
	m.handle = handle
	m.device = dev
	m.log.Info("Device initialized", zap.String("device", dev.Description))
	return true, nil
}

// Device is the opened device.
func (m *Method) Device() Device {
	return m.device
}

func (m *Method) chunkDelay() time.Duration {
	if t, ok := m.driver.(Throttled); ok {
		return t.ChunkDelay()
	}
	return 0
}

// Write pads buf to whole blocks and streams it to the opened device.
// Nothing is written when the padded buffer is too large.
func (m *Method) Write(ctx context.Context, buf []byte) error {
	if m.handle == nil {
		return ErrNotOpen
	}
	buf = protocol.Pad(append([]byte(nil), buf...), protocol.BlockSize)
	if err := protocol.CheckLength(buf, protocol.MaxPayload); err != nil {
		return err
	}
	m.log.Info("Writing", zap.String("device", m.device.Description), zap.Int("bytes", len(buf)))
	delay := m.chunkDelay()
	for i := 0; i < len(buf); i += protocol.BlockSize {
		if delay > 0 {
			timer := time.NewTimer(delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			case <-timer.C:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}
		err := m.handle.WriteReport(buf[i : i+protocol.BlockSize])
		if err != nil {
			return fmt.Errorf("failed to write chunk %d: %w", i/protocol.BlockSize, err)
		}
	}
	return nil
}

// Close releases the opened device, if any.
func (m *Method) Close() error {
	if m.handle == nil {
		return nil
	}
	err := m.handle.Close()
	m.handle = nil
	m.device = Device{}
	return err
}

type MethodInfo struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Ready       bool   `json:"ready" yaml:"ready"`
}

func (m *Method) Info() MethodInfo {
	return MethodInfo{
		Name:        m.Name(),
		Description: m.Description(),
		Ready:       m.IsReady(),
	}
}
