package badgecli

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/neuroplastio/neio-badge/internal/protocol"
)

var listSeparator = regexp.MustCompile(`[\s,]+`)

func split(s string) []string {
	var out []string
	for _, v := range listSeparator.Split(s, -1) {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// SplitInts parses "1,2 3" into []int{1, 2, 3}.
func SplitInts(s string) ([]int, error) {
	fields := split(s)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty list", protocol.ErrInvalidInput)
	}
	values := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", protocol.ErrInvalidInput, f)
		}
		values = append(values, v)
	}
	return values, nil
}

// SplitModes is SplitInts that also accepts mode names.
func SplitModes(s string) ([]int, error) {
	fields := split(s)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty list", protocol.ErrInvalidInput)
	}
	values := make([]int, 0, len(fields))
	for _, f := range fields {
		m, err := protocol.ParseMode(f)
		if err != nil {
			return nil, err
		}
		values = append(values, int(m))
	}
	return values, nil
}
