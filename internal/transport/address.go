package transport

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Address names a device on a write method, written as "method/device".
// Either part may be "auto". libusb ids may use dots instead of colons, so
// "libusb/1.5.1" is the same as "libusb/1:5:1".
type Address struct {
	Method string `yaml:"method" json:"method"`
	Device string `yaml:"device" json:"device"`
}

var AutoAddress = Address{Method: MethodAuto, Device: DeviceAuto}

func (a Address) String() string {
	return fmt.Sprintf("%s/%s", a.Method, a.Device)
}

func ParseAddress(s string) (Address, error) {
	method, device, ok := strings.Cut(s, "/")
	if !ok || method == "" || device == "" {
		return Address{}, fmt.Errorf("invalid address: %s", s)
	}
	if method == NameLibUSB {
		device = strings.ReplaceAll(device, ".", ":")
	}
	return Address{Method: method, Device: device}, nil
}

func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

func (a *Address) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	var addr struct {
		Method string `json:"method"`
		Device string `json:"device"`
	}
	err := json.Unmarshal(data, &addr)
	if err == nil {
		*a = Address{Method: addr.Method, Device: addr.Device}
		return nil
	}
	var s string
	err = json.Unmarshal(data, &s)
	if err != nil {
		return err
	}
	parsed, err := ParseAddress(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
