package protocol

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/iancoleman/strcase"
)

// Mode is the display effect of one message.
type Mode int

const (
	ModeScrollLeft Mode = iota
	ModeScrollRight
	ModeScrollUp
	ModeScrollDown
	ModeFixed
	ModeAnimation
	ModeDropDown
	ModeCurtain
	ModeLaser
)

var modeNames = []string{
	"scroll-left",
	"scroll-right",
	"scroll-up",
	"scroll-down",
	"fixed",
	"animation",
	"drop-down",
	"curtain",
	"laser",
}

var modeAliases = map[string]Mode{
	"still":    ModeFixed,
	"centered": ModeFixed,
}

func (m Mode) String() string {
	if m >= 0 && int(m) < len(modeNames) {
		return modeNames[m]
	}
	return strconv.Itoa(int(m))
}

// ParseMode accepts a mode number or a mode name in any common spelling:
// "scroll-left", "scroll_left", "scrollLeft" and "ScrollLeft" are the same.
func ParseMode(s string) (Mode, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return Mode(n), nil
	}
	name := strcase.ToKebab(s)
	for i, n := range modeNames {
		if n == name {
			return Mode(i), nil
		}
	}
	if m, ok := modeAliases[name]; ok {
		return m, nil
	}
	return 0, fmt.Errorf("%w: unknown mode %q", ErrInvalidInput, s)
}

func (m Mode) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *Mode) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*m = Mode(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseMode(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

const ModeHelp = `
-m 5 "Animation"

 Animation frames are 6 character (or 48px) wide. Upload an animation of
 N frames as one image N*48 pixels wide, 11 pixels high.
 Frames run from left to right and repeat endless.
 Speeds [1..8] result in ca. [1.2 1.3 2.0 2.4 2.8 4.5 7.5 15] fps.

 Example of a slowly beating heart:
  %[1]s -s1 -m5 "  :heart2:    :HEART2:"

-m 9 "Smooth"
-m 10 "Rotate"

 These modes are mentioned in the BMP Badge software.
 Text is shown static, or sometimes (longer texts?) not shown at all.
 One significant difference is: The text of the first message stays visible after
 upload, even if the USB cable remains connected.
 (No "rotation" or "smoothing"(?) effect can be expected, though)
`
