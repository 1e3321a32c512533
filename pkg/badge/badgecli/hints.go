package badgecli

import (
	"errors"
	"fmt"
	"io"

	"github.com/neuroplastio/neio-badge/internal/transport"
	"github.com/neuroplastio/neio-badge/internal/transport/linux"
	"github.com/neuroplastio/neio-badge/pkg/badge"
)

func printMethods(w io.Writer, methods []transport.MethodInfo) {
	fmt.Fprintln(w, "Available write methods:")
	fmt.Fprintf(w, "  '%s': selects the most appropriate of the available methods (default)\n", transport.MethodAuto)
	for _, m := range methods {
		state := "ready"
		if !m.Ready {
			state = "not available"
		}
		fmt.Fprintf(w, "  '%s': %s (%s)\n", m.Name, m.Description, state)
	}
}

func printDevices(w io.Writer, listing *transport.DeviceListing) {
	if len(listing.Devices) == 0 {
		fmt.Fprintf(w, "No devices with method '%s' found.\n", listing.Method)
		return
	}
	fmt.Fprintf(w, "Known device ids with method '%s' are:\n", listing.Method)
	for _, d := range listing.Devices {
		fmt.Fprintf(w, "  '%s': %s\n", d.ID, d.Description)
	}
}

func printSelection(w io.Writer, sel transport.Selection) {
	switch {
	case sel.Method != nil:
		fmt.Fprintf(w, "Write using [%s] via %s\n", sel.Method.Device().Description, sel.Method.Name())
	case sel.Methods != nil:
		printMethods(w, sel.Methods)
	case sel.Devices != nil:
		printDevices(w, sel.Devices)
	}
}

func printInstallHints(w io.Writer, name, os string) {
	fmt.Fprintf(w, "The method %s is not possible to be used:\n", name)
	switch {
	case name == transport.NameHIDAPI && os == "darwin":
		fmt.Fprintln(w, "* Have you installed the hidapi library? Try:")
		fmt.Fprintln(w, "  $ brew install hidapi")
	case name == transport.NameHIDAPI:
		fmt.Fprintln(w, "* Is the hidapi library installed? Try the following")
		fmt.Fprintln(w, "  (or similar, suitable for your distro; the exact command and package name might be different):")
		fmt.Fprintln(w, "  $ sudo apt-get install libhidapi-hidraw0")
	case name == transport.NameLibUSB && os == "windows":
		fmt.Fprintln(w, "* Have you installed the libusb driver or libusb-filter for the device?")
	case name == transport.NameLibUSB:
		fmt.Fprintln(w, "* Is the libusb library installed? Try the following")
		fmt.Fprintln(w, "  (or similar, suitable for your distro; the exact command and package name might be different):")
		fmt.Fprintln(w, "  $ sudo apt-get install libusb-1.0-0")
	}
}

func printPermissionHints(w io.Writer, b *badge.Badge) {
	if b.Transport().Platform().OS != "linux" {
		fmt.Fprintln(w, "  Maybe, you have to run this program with administrator rights.")
		return
	}
	nodes, err := linux.Diagnose(b.Log().Named("udev"))
	if err != nil {
		fmt.Fprintln(w, "  Maybe, you have to run this program with sudo.")
		return
	}
	denied := false
	for _, n := range nodes {
		if !n.Writable {
			denied = true
			fmt.Fprintf(w, "  No write access to %s (%s).\n", n.Path, n.Subsystem)
		}
	}
	if !denied {
		fmt.Fprintln(w, "  Maybe, you have to run this program with sudo.")
		return
	}
	fmt.Fprintf(w, "  Run with sudo, or allow access for all users by adding %s:\n", linux.UdevRulePath)
	fmt.Fprintf(w, "\n%s\n\n", linux.UdevRule)
	fmt.Fprintln(w, "  and reload the rules with: sudo udevadm control --reload-rules && sudo udevadm trigger")
}

// printHints explains a failed upload.
func printHints(w io.Writer, b *badge.Badge, addr transport.Address, err error) {
	platform := b.Transport().Platform()
	switch {
	case errors.Is(err, transport.ErrUnknownMethod):
		fmt.Fprintf(w, "Unknown write method '%s'.\n", addr.Method)
		printMethods(w, b.Transport().Methods())
	case errors.Is(err, transport.ErrNoBackendAvailable):
		fmt.Fprintln(w, "One of the libraries hidapi or libusb is needed to run this program (or both).")
		printInstallHints(w, transport.NameHIDAPI, platform.OS)
		printInstallHints(w, transport.NameLibUSB, platform.OS)
	case errors.Is(err, transport.ErrBackendUnavailable) && addr.Method == transport.MethodAuto:
		printInstallHints(w, transport.NameHIDAPI, platform.OS)
		printInstallHints(w, transport.NameLibUSB, platform.OS)
	case errors.Is(err, transport.ErrBackendUnavailable):
		printInstallHints(w, addr.Method, platform.OS)
	case errors.Is(err, transport.ErrDeviceNotFound):
		fmt.Fprintf(w, "* Is a led tag device with vendorID 0x%04x and productID 0x%04x connected?\n", transport.VendorID, transport.ProductID)
		if addr.Device != transport.DeviceAuto {
			fmt.Fprintln(w, "* Have you given the right device id?")
			fmt.Fprintln(w, "  Find the available device ids with option -D list")
		}
		fmt.Fprintln(w, "* If it is connected and still does not work:")
		printPermissionHints(w, b)
	}
}
