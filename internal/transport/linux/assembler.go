// Package linux holds the Linux specific helpers of the badge transport:
// device permission diagnostics through udev and a virtual badge on uhid.
package linux

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/neuroplastio/neio-badge/internal/glyph"
	"github.com/neuroplastio/neio-badge/internal/protocol"
)

var (
	ErrUnexpectedChunk = errors.New("chunk outside of an upload")
	ErrUnsupported     = errors.New("only supported on linux")
)

var magic = []byte("wang")

// Upload is one complete transfer received by the virtual badge.
type Upload struct {
	Info protocol.HeaderInfo
	Rows int
	Data []byte
}

// Message returns the 11-row bitmap of message i.
func (u Upload) Message(i int) []byte {
	offset := 0
	for _, l := range u.Info.Lengths[:i] {
		offset += l * u.Rows
	}
	end := min(offset+u.Info.Lengths[i]*u.Rows, len(u.Data))
	data := u.Data[offset:end]
	if u.Rows == glyph.Rows {
		return data
	}
	out := make([]byte, 0, len(data)/u.Rows*glyph.Rows)
	for i := 0; i+glyph.Rows <= len(data); i += u.Rows {
		out = append(out, data[i:i+glyph.Rows]...)
	}
	return out
}

// Assembler joins 64-byte reports into uploads. Reports may carry a
// leading report id.
type Assembler struct {
	rows     int
	buf      []byte
	info     protocol.HeaderInfo
	expected int
}

func NewAssembler(display protocol.DisplayType) *Assembler {
	return &Assembler{rows: display.Rows()}
}

// Feed consumes one report and returns an upload once its last chunk has
// arrived.
func (a *Assembler) Feed(report []byte) (Upload, bool, error) {
	if len(report) == protocol.BlockSize+1 {
		report = report[1:]
	}
	if bytes.HasPrefix(report, magic) {
		info, err := protocol.DecodeHeader(report)
		if err != nil {
			a.reset()
			return Upload{}, false, err
		}
		a.reset()
		a.info = info
		a.expected = len(protocol.Pad(make([]byte, protocol.HeaderSize+info.Columns()*a.rows), protocol.BlockSize))
	} else if a.expected == 0 {
		return Upload{}, false, fmt.Errorf("%w: % x", ErrUnexpectedChunk, report[:min(len(report), 8)])
	}
	a.buf = append(a.buf, report...)
	if len(a.buf) < a.expected {
		return Upload{}, false, nil
	}
	u := Upload{
		Info: a.info,
		Rows: a.rows,
		Data: a.buf[protocol.HeaderSize : protocol.HeaderSize+a.info.Columns()*a.rows],
	}
	a.reset()
	return u, true, nil
}

// Pending reports whether an upload is partially received.
func (a *Assembler) Pending() bool {
	return a.expected > 0
}

func (a *Assembler) reset() {
	a.buf = nil
	a.info = protocol.HeaderInfo{}
	a.expected = 0
}
