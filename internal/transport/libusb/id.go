package libusb

import (
	"fmt"
)

// ID locates an OUT endpoint of a badge on the USB bus.
type ID struct {
	Bus      int
	Address  int
	Endpoint int
}

func (id ID) String() string {
	return fmt.Sprintf("%d:%d:%d", id.Bus, id.Address, id.Endpoint)
}

func ParseID(s string) (ID, error) {
	var id ID
	n, err := fmt.Sscanf(s, "%d:%d:%d", &id.Bus, &id.Address, &id.Endpoint)
	if err != nil || n != 3 {
		return ID{}, fmt.Errorf("invalid libusb device id %q, expected bus:address:endpoint", s)
	}
	return id, nil
}
