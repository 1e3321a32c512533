// Package protocol encodes uploads for the LED name badge.
//
// An upload is a 64-byte header followed by the bitmaps of up to eight
// messages, streamed to the device in 64-byte transfers.
package protocol

import (
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/neuroplastio/neio-badge/pkg/bits"
)

const (
	HeaderSize  = 64
	BlockSize   = 64
	MaxPayload  = 8192
	MaxMessages = 8

	// MaxColumns bounds the sum of all message lengths.
	MaxColumns = (MaxPayload-HeaderSize)/11 + 1
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrPayloadTooLarge = errors.New("payload too large")
)

var magic = [4]byte{'w', 'a', 'n', 'g'}

var headerTemplate = Header{
	0x77, 0x61, 0x6e, 0x67, 0x00, 0x00, 0x00, 0x00, 0x40, 0x40, 0x40, 0x40, 0x40, 0x40, 0x40, 0x40,
}

const (
	offsetBrightness = 5
	offsetBlink      = 6
	offsetAnts       = 7
	offsetSpeedMode  = 8
	offsetLengths    = 16
	offsetTimestamp  = 38
)

type Header [HeaderSize]byte

// Options are the display parameters of one upload. The per-message slices
// take up to eight values; missing slots repeat the last given value.
type Options struct {
	Speeds []int
	Modes  []int
	Blinks []int
	Ants   []int

	// Brightness in percent, rounded up to 25, 50, 75 or 100.
	Brightness int
	// Timestamp is stored in the header but never shown. Zero means now.
	Timestamp time.Time
}

// DefaultOptions match the command line defaults.
func DefaultOptions() Options {
	return Options{
		Speeds:     []int{4},
		Modes:      []int{int(ModeScrollLeft)},
		Blinks:     []int{0},
		Ants:       []int{0},
		Brightness: 100,
	}
}

// Expand clamps every value into [lo, hi] and pads the result to eight
// slots by repeating the last value.
func Expand(values []int, lo, hi int) ([]int, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: at least one value is required", ErrInvalidInput)
	}
	result := make([]int, MaxMessages)
	for i := range result {
		v := values[min(i, len(values)-1)]
		result[i] = min(max(v, lo), hi)
	}
	return result, nil
}

// BrightnessCode maps a brightness percentage to its header value.
func BrightnessCode(percent int) byte {
	switch {
	case percent <= 25:
		return 0x40
	case percent <= 50:
		return 0x20
	case percent <= 75:
		return 0x10
	default:
		return 0x00
	}
}

func brightnessPercent(code byte) int {
	switch code {
	case 0x40:
		return 25
	case 0x20:
		return 50
	case 0x10:
		return 75
	default:
		return 100
	}
}

// BuildHeader packs the message lengths (in byte-columns) and the display
// options into a header.
func BuildHeader(lengths []int, opts Options) (Header, error) {
	if len(lengths) == 0 {
		return Header{}, fmt.Errorf("%w: at least one message length is required", ErrInvalidInput)
	}
	if len(lengths) > MaxMessages {
		return Header{}, fmt.Errorf("%w: %d messages given, at most %d are supported", ErrInvalidInput, len(lengths), MaxMessages)
	}
	sum := 0
	for _, l := range lengths {
		if l < 0 {
			return Header{}, fmt.Errorf("%w: negative length in %v", ErrInvalidInput, lengths)
		}
		sum += l
	}
	if sum > MaxColumns {
		return Header{}, fmt.Errorf("%w: the given lengths seem to be far too high: %v", ErrInvalidInput, lengths)
	}

	ants, err := Expand(opts.Ants, 0, 1)
	if err != nil {
		return Header{}, fmt.Errorf("ants: %w", err)
	}
	blinks, err := Expand(opts.Blinks, 0, 1)
	if err != nil {
		return Header{}, fmt.Errorf("blinks: %w", err)
	}
	speeds, err := Expand(opts.Speeds, 1, 8)
	if err != nil {
		return Header{}, fmt.Errorf("speeds: %w", err)
	}
	modes, err := Expand(opts.Modes, 0, 8)
	if err != nil {
		return Header{}, fmt.Errorf("modes: %w", err)
	}

	h := headerTemplate
	h[offsetBrightness] = BrightnessCode(opts.Brightness)

	blinkBits := bits.New(h[offsetBlink:offsetBlink+1], 0)
	antsBits := bits.New(h[offsetAnts:offsetAnts+1], 0)
	for i := 0; i < MaxMessages; i++ {
		if blinks[i] == 1 {
			blinkBits.Set(i)
		}
		if ants[i] == 1 {
			antsBits.Set(i)
		}
		h[offsetSpeedMode+i] = byte(16*(speeds[i]-1) + modes[i])
	}

	for i, l := range lengths {
		binary.BigEndian.PutUint16(h[offsetLengths+2*i:], uint16(l))
	}

	ts := opts.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	h[offsetTimestamp+0] = byte(ts.Year() % 100)
	h[offsetTimestamp+1] = byte(ts.Month())
	h[offsetTimestamp+2] = byte(ts.Day())
	h[offsetTimestamp+3] = byte(ts.Hour())
	h[offsetTimestamp+4] = byte(ts.Minute())
	h[offsetTimestamp+5] = byte(ts.Second())

	return h, nil
}

// HeaderInfo is a decoded header.
type HeaderInfo struct {
	Lengths    []int     `json:"lengths"`
	Speeds     []int     `json:"speeds"`
	Modes      []int     `json:"modes"`
	Blinks     []int     `json:"blinks"`
	Ants       []int     `json:"ants"`
	Brightness int       `json:"brightness"`
	Timestamp  time.Time `json:"timestamp"`
}

// Columns is the sum of all message lengths.
func (i HeaderInfo) Columns() int {
	sum := 0
	for _, l := range i.Lengths {
		sum += l
	}
	return sum
}

// DecodeHeader reads back what BuildHeader wrote. Trailing zero lengths are
// dropped, so Lengths holds one entry per message.
func DecodeHeader(b []byte) (HeaderInfo, error) {
	if len(b) < HeaderSize {
		return HeaderInfo{}, fmt.Errorf("%w: header is %d bytes, need %d", ErrInvalidInput, len(b), HeaderSize)
	}
	if [4]byte(b[:4]) != magic {
		return HeaderInfo{}, fmt.Errorf("%w: bad magic % x", ErrInvalidInput, b[:4])
	}
	info := HeaderInfo{
		Speeds:     make([]int, MaxMessages),
		Modes:      make([]int, MaxMessages),
		Blinks:     make([]int, MaxMessages),
		Ants:       make([]int, MaxMessages),
		Brightness: brightnessPercent(b[offsetBrightness]),
	}
	blinkBits := bits.New(b[offsetBlink:offsetBlink+1], 0)
	antsBits := bits.New(b[offsetAnts:offsetAnts+1], 0)
	lengths := make([]int, MaxMessages)
	last := -1
	for i := 0; i < MaxMessages; i++ {
		if blinkBits.IsSet(i) {
			info.Blinks[i] = 1
		}
		if antsBits.IsSet(i) {
			info.Ants[i] = 1
		}
		info.Speeds[i] = int(b[offsetSpeedMode+i]>>4) + 1
		info.Modes[i] = int(b[offsetSpeedMode+i] & 0x0f)
		lengths[i] = int(binary.BigEndian.Uint16(b[offsetLengths+2*i:]))
		if lengths[i] != 0 {
			last = i
		}
	}
	info.Lengths = lengths[:last+1]
	ts := b[offsetTimestamp : offsetTimestamp+6]
	info.Timestamp = time.Date(2000+int(ts[0]), time.Month(ts[1]), int(ts[2]), int(ts[3]), int(ts[4]), int(ts[5]), 0, time.Local)
	return info, nil
}
