package linux

import (
	"fmt"

	"go.uber.org/atomic"

	"github.com/neuroplastio/neio-badge/internal/transport"
)

// Node is a device node of an attached badge.
type Node struct {
	Path      string `json:"path" yaml:"path"`
	Subsystem string `json:"subsystem" yaml:"subsystem"`
	Writable  bool   `json:"writable" yaml:"writable"`
	Err       error  `json:"-" yaml:"-"`
}

// UdevRule grants every user write access to the badge.
var UdevRule = fmt.Sprintf(
	`SUBSYSTEM=="usb", ATTRS{idVendor}=="%04x", ATTRS{idProduct}=="%04x", MODE="0666"`+"\n"+
		`KERNEL=="hidraw*", ATTRS{idVendor}=="%04x", ATTRS{idProduct}=="%04x", MODE="0666"`,
	transport.VendorID, transport.ProductID, transport.VendorID, transport.ProductID,
)

const UdevRulePath = "/etc/udev/rules.d/99-led-badge-44x11.rules"

// Stats counts what the virtual badge received.
type Stats struct {
	Reports atomic.Int64
	Uploads atomic.Int64
	Errors  atomic.Int64
}
