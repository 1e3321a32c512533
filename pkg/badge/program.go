package badge

import (
	"fmt"
	"time"

	"github.com/neuroplastio/neio-badge/internal/protocol"
	"github.com/neuroplastio/neio-badge/internal/transport"
)

// Program is everything needed to build one upload.
type Program struct {
	// Messages are texts or image file paths, at most eight.
	Messages []string
	Speeds   []int
	Modes    []int
	Blinks   []int
	Ants     []int

	Brightness int
	Type       protocol.DisplayType
	// Preload images are addressed by control characters \x01, \x02, ...
	Preload   []string
	Timestamp time.Time
}

// DefaultProgram carries the command line defaults.
func DefaultProgram() Program {
	opts := protocol.DefaultOptions()
	return Program{
		Speeds:     opts.Speeds,
		Modes:      opts.Modes,
		Blinks:     opts.Blinks,
		Ants:       opts.Ants,
		Brightness: opts.Brightness,
	}
}

func (p Program) options() protocol.Options {
	return protocol.Options{
		Speeds:     p.Speeds,
		Modes:      p.Modes,
		Blinks:     p.Blinks,
		Ants:       p.Ants,
		Brightness: p.Brightness,
		Timestamp:  p.Timestamp,
	}
}

// ProgramFile is the YAML form of a program, used by --file and watch.
//
//	type: 11x44
//	brightness: 50
//	device: hidapi/auto
//	messages:
//	  - text: "Hello :heart:"
//	    speed: 6
//	    mode: scroll-up
//	  - text: logo.png
//	    mode: fixed
//	    blink: true
type ProgramFile struct {
	Type       string             `json:"type,omitempty"`
	Brightness *int               `json:"brightness,omitempty"`
	Device     *transport.Address `json:"device,omitempty"`
	Preload    []string           `json:"preload,omitempty"`
	Messages   []Message          `json:"messages"`
}

type Message struct {
	Text  string         `json:"text"`
	Speed *int           `json:"speed,omitempty"`
	Mode  *protocol.Mode `json:"mode,omitempty"`
	Blink *bool          `json:"blink,omitempty"`
	Ants  *bool          `json:"ants,omitempty"`
}

func at(values []int, i int) int {
	if len(values) == 0 {
		return 0
	}
	return values[min(i, len(values)-1)]
}

func flag(b *bool, def int) int {
	switch {
	case b == nil:
		return def
	case *b:
		return 1
	default:
		return 0
	}
}

// Program applies the file on top of base. Per message settings missing
// from the file fall back to the value base has for that slot.
func (f ProgramFile) Program(base Program) (Program, error) {
	if len(f.Messages) == 0 {
		return Program{}, fmt.Errorf("%w: program has no messages", protocol.ErrInvalidInput)
	}
	p := base
	if f.Type != "" {
		p.Type = protocol.ParseDisplayType(f.Type)
	}
	if f.Brightness != nil {
		p.Brightness = *f.Brightness
	}
	p.Preload = append(append([]string(nil), base.Preload...), f.Preload...)
	p.Messages = nil
	p.Speeds, p.Modes, p.Blinks, p.Ants = nil, nil, nil, nil
	for i, msg := range f.Messages {
		p.Messages = append(p.Messages, msg.Text)

		speed := at(base.Speeds, i)
		if msg.Speed != nil {
			speed = *msg.Speed
		}
		mode := at(base.Modes, i)
		if msg.Mode != nil {
			mode = int(*msg.Mode)
		}
		p.Speeds = append(p.Speeds, speed)
		p.Modes = append(p.Modes, mode)
		p.Blinks = append(p.Blinks, flag(msg.Blink, at(base.Blinks, i)))
		p.Ants = append(p.Ants, flag(msg.Ants, at(base.Ants, i)))
	}
	return p, nil
}
