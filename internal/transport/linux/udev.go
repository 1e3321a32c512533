//go:build linux

package linux

import (
	"fmt"
	"os"

	"github.com/jochenvg/go-udev"
	"go.uber.org/zap"

	"github.com/neuroplastio/neio-badge/internal/transport"
)

var (
	vendorAttr  = fmt.Sprintf("%04x", transport.VendorID)
	productAttr = fmt.Sprintf("%04x", transport.ProductID)
)

// Diagnose lists the device nodes of attached badges and whether the
// current user may write to them.
func Diagnose(log *zap.Logger) ([]Node, error) {
	u := &udev.Udev{}

	e := u.NewEnumerate()
	if err := e.AddMatchSubsystem("usb"); err != nil {
		return nil, err
	}
	if err := e.AddMatchSysattr("idVendor", vendorAttr); err != nil {
		return nil, err
	}
	if err := e.AddMatchSysattr("idProduct", productAttr); err != nil {
		return nil, err
	}
	usbDevices, err := e.Devices()
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate usb devices: %w", err)
	}
	var nodes []Node
	for _, dev := range usbDevices {
		if dev.Devnode() == "" {
			continue
		}
		nodes = append(nodes, checkNode(dev.Devnode(), "usb"))
	}

	e = u.NewEnumerate()
	if err := e.AddMatchSubsystem("hidraw"); err != nil {
		return nil, err
	}
	hidrawDevices, err := e.Devices()
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate hidraw devices: %w", err)
	}
	for _, dev := range hidrawDevices {
		parent := dev.ParentWithSubsystemDevtype("usb", "usb_device")
		if parent == nil || parent.SysattrValue("idVendor") != vendorAttr || parent.SysattrValue("idProduct") != productAttr {
			continue
		}
		if dev.Devnode() == "" {
			log.Debug("skipping hidraw device without node", zap.String("syspath", dev.Syspath()))
			continue
		}
		nodes = append(nodes, checkNode(dev.Devnode(), "hidraw"))
	}
	return nodes, nil
}

func checkNode(path, subsystem string) Node {
	node := Node{Path: path, Subsystem: subsystem}
	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		node.Err = err
		return node
	}
	f.Close()
	node.Writable = true
	return node
}
