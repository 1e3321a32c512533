package badge

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/neuroplastio/neio-badge/internal/protocol"
	"github.com/neuroplastio/neio-badge/internal/transport"
	"github.com/neuroplastio/neio-badge/internal/transport/libusb"
)

// Config is loaded from badge.yml in the user config directory. Command
// line flags take precedence over it.
type Config struct {
	Method     string   `json:"method"`
	DeviceID   string   `json:"deviceId"`
	Type       string   `json:"type"`
	Brightness int      `json:"brightness"`
	Legacy     bool     `json:"legacy"`
	ChunkDelay Duration `json:"chunkDelay"`

	Verbose bool `json:"-"`
}

func DefaultConfig() Config {
	return Config{
		Method:     transport.MethodAuto,
		DeviceID:   transport.DeviceAuto,
		Type:       protocol.Display11x44.String(),
		Brightness: 100,
		ChunkDelay: Duration(libusb.DefaultChunkDelay),
	}
}

func (c Config) Address() transport.Address {
	return transport.Address{Method: c.Method, Device: c.DeviceID}
}

// Duration reads "100ms" style strings as well as plain nanoseconds.
type Duration time.Duration

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	var n int64
	if err := json.Unmarshal(data, &n); err == nil {
		*d = Duration(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	duration, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(duration)
	return nil
}
