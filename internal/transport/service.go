package transport

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"go.uber.org/zap"

	"github.com/neuroplastio/neio-badge/internal/protocol"
)

const (
	MethodAuto = "auto"
	MethodList = "list"
	DeviceAuto = "auto"
	DeviceList = "list"

	NameHIDAPI = "hidapi"
	NameLibUSB = "libusb"
)

// Platform decides the preferred write method.
type Platform struct {
	OS string `json:"os" yaml:"os"`
	// Legacy marks a host whose HID stack is known to corrupt uploads.
	Legacy bool `json:"legacy" yaml:"legacy"`
}

func CurrentPlatform() Platform {
	return Platform{OS: runtime.GOOS}
}

type serviceOptions struct {
	platform Platform
	drivers  []Driver
}

type Option func(*serviceOptions)

func WithPlatform(p Platform) Option {
	return func(o *serviceOptions) {
		o.platform = p
	}
}

// WithDriver registers a write method. Registration order is the order in
// which "auto" tries the methods.
func WithDriver(d Driver) Option {
	return func(o *serviceOptions) {
		o.drivers = append(o.drivers, d)
	}
}

type Service struct {
	log      *zap.Logger
	platform Platform
	methods  []*Method
}

// New probes every registered driver once.
func New(log *zap.Logger, opts ...Option) *Service {
	options := serviceOptions{platform: CurrentPlatform()}
	for _, opt := range opts {
		opt(&options)
	}
	s := &Service{
		log:      log,
		platform: options.platform,
	}
	for _, d := range options.drivers {
		s.methods = append(s.methods, newMethod(log, d))
	}
	return s
}

func (s *Service) Platform() Platform {
	return s.platform
}

func (s *Service) Methods() []MethodInfo {
	infos := make([]MethodInfo, 0, len(s.methods))
	for _, m := range s.methods {
		infos = append(infos, m.Info())
	}
	return infos
}

func (s *Service) Method(name string) (*Method, bool) {
	for _, m := range s.methods {
		if m.Name() == name {
			return m, true
		}
	}
	return nil, false
}

func (s *Service) isReady(name string) bool {
	m, ok := s.Method(name)
	return ok && m.IsReady()
}

type DeviceListing struct {
	Method  string   `json:"method" yaml:"method"`
	Devices []Device `json:"devices" yaml:"devices"`
}

// Selection is the outcome of Select. Exactly one of the fields is set on
// success: Method when a device was opened, Methods or Devices when an
// informational listing was requested. On ErrDeviceNotFound, Devices holds
// what the first candidate method can see.
type Selection struct {
	Method  *Method
	Methods []MethodInfo
	Devices *DeviceListing
}

func (s *Service) listing(m *Method) *DeviceListing {
	devices, err := m.Devices()
	if err != nil {
		s.log.Warn("Failed to list devices", zap.String("method", m.Name()), zap.Error(err))
	}
	return &DeviceListing{Method: m.Name(), Devices: devices}
}

// resolve turns "auto" into a concrete method where the platform demands
// it and rejects methods that cannot work here.
func (s *Service) resolve(method string) (string, error) {
	if method == MethodAuto {
		switch {
		case s.platform.Legacy:
			method = NameLibUSB
			s.log.Info("Preferring libusb over hidapi on a legacy platform")
		case s.platform.OS == "darwin":
			method = NameHIDAPI
			s.log.Info("Selected hidapi on macOS")
		case s.platform.OS == "windows":
			method = NameLibUSB
			s.log.Info("Selected libusb on Windows")
		case !s.isReady(NameLibUSB) && !s.isReady(NameHIDAPI):
			return "", ErrNoBackendAvailable
		}
	}

	switch method {
	case NameLibUSB:
		if s.platform.OS == "darwin" {
			return "", fmt.Errorf("%w: use %s or auto on macOS", ErrUnsupportedOnPlatform, NameHIDAPI)
		}
		if err := s.unavailable(method); err != nil {
			return "", err
		}
	case NameHIDAPI:
		if s.platform.Legacy {
			return "", fmt.Errorf("%w: use %s or auto on a legacy platform", ErrUnsupportedOnPlatform, NameLibUSB)
		}
		if err := s.unavailable(method); err != nil {
			return "", err
		}
		if s.platform.OS == "windows" {
			s.log.Warn("hidapi is not tested under Windows, use libusb or auto if it does not work")
		}
	}
	return method, nil
}

func (s *Service) unavailable(name string) error {
	m, ok := s.Method(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrBackendUnavailable, name)
	}
	if !m.IsReady() {
		return fmt.Errorf("%w: %s: %w", ErrBackendUnavailable, name, m.InitError())
	}
	return nil
}

// Select picks a write method and opens a device on it. method is a
// method name, "auto" or "list"; deviceID is a device id, "auto" or
// "list". The caller must Close the returned Method.
func (s *Service) Select(method, deviceID string) (Selection, error) {
	if method == MethodList {
		return Selection{Methods: s.Methods()}, nil
	}
	if _, ok := s.Method(method); !ok && method != MethodAuto {
		return Selection{Methods: s.Methods()}, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}

	resolved, err := s.resolve(method)
	if err != nil {
		return Selection{}, err
	}

	var first *Method
	var openErr error
	for _, m := range s.methods {
		if resolved != MethodAuto && resolved != m.Name() {
			continue
		}
		if first == nil {
			first = m
		}
		if deviceID == DeviceList {
			return Selection{Devices: s.listing(m)}, nil
		}
		ok, err := m.Open(deviceID)
		if err != nil {
			s.log.Warn("Failed to open device", zap.String("method", m.Name()), zap.Error(err))
			openErr = errors.Join(openErr, err)
			continue
		}
		if ok {
			return Selection{Method: m}, nil
		}
	}

	var sel Selection
	if first != nil {
		sel.Devices = s.listing(first)
	}
	err = fmt.Errorf("%w: not available with write method %q", ErrDeviceNotFound, resolved)
	if deviceID != DeviceAuto {
		err = fmt.Errorf("%w: not available with write method %q and device id %q", ErrDeviceNotFound, resolved, deviceID)
	}
	if openErr != nil {
		err = fmt.Errorf("%w: %w", err, openErr)
	}
	return sel, err
}

// Write validates buf, selects a device and uploads buf to it. The device
// is closed on every path. When method or deviceID ask for a listing,
// nothing is written and the listing is returned.
func (s *Service) Write(ctx context.Context, buf []byte, method, deviceID string) (sel Selection, err error) {
	buf = protocol.Pad(append([]byte(nil), buf...), protocol.BlockSize)
	if err := protocol.CheckLength(buf, protocol.MaxPayload); err != nil {
		return Selection{}, err
	}
	sel, err = s.Select(method, deviceID)
	if err != nil || sel.Method == nil {
		return sel, err
	}
	defer func() {
		cerr := sel.Method.Close()
		if cerr != nil && err == nil {
			err = fmt.Errorf("failed to close device: %w", cerr)
		}
	}()
	return sel, sel.Method.Write(ctx, buf)
}

// Close releases the driver libraries.
func (s *Service) Close() error {
	var errs []error
	for _, m := range s.methods {
		if err := m.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close %s device: %w", m.Name(), err))
		}
		if !m.IsReady() {
			continue
		}
		if err := m.driver.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close %s: %w", m.Name(), err))
		}
	}
	return errors.Join(errs...)
}
