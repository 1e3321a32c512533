package protocol

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2022, 11, 13, 17, 38, 24, 0, time.Local)

func testOptions() Options {
	return Options{
		Speeds:     []int{5, 3},
		Modes:      []int{6, 2},
		Blinks:     []int{0, 1},
		Ants:       []int{1, 0},
		Brightness: 75,
		Timestamp:  fixedTime,
	}
}

func TestExpand(t *testing.T) {
	type testCase struct {
		values   []int
		lo, hi   int
		expected []int
	}
	testCases := []testCase{
		{values: []int{1, 2, 3, 4}, lo: 1, hi: 8, expected: []int{1, 2, 3, 4, 4, 4, 4, 4}},
		{values: []int{-1, 9}, lo: 1, hi: 8, expected: []int{1, 8, 8, 8, 8, 8, 8, 8}},
		{values: []int{1}, lo: 0, hi: 1, expected: []int{1, 1, 1, 1, 1, 1, 1, 1}},
		{values: []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, lo: 0, hi: 8, expected: []int{0, 1, 2, 3, 4, 5, 6, 7}},
	}
	for i, tc := range testCases {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			actual, err := Expand(tc.values, tc.lo, tc.hi)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, actual)
		})
	}

	_, err := Expand(nil, 0, 1)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestBuildHeader(t *testing.T) {
	h, err := BuildHeader([]int{6, 7}, testOptions())
	require.NoError(t, err)

	expected := make([]byte, HeaderSize)
	copy(expected, []byte{119, 97, 110, 103, 0, 16, 254, 1, 70, 34, 34, 34, 34, 34, 34, 34, 0, 6, 0, 7})
	copy(expected[38:], []byte{22, 11, 13, 17, 38, 24})
	assert.Equal(t, expected, h[:])
}

func TestBuildHeaderBrightness(t *testing.T) {
	testCases := map[int]byte{
		0:   0x40,
		25:  0x40,
		26:  0x20,
		50:  0x20,
		60:  0x10,
		75:  0x10,
		80:  0x00,
		100: 0x00,
	}
	base, err := BuildHeader([]int{6, 7}, testOptions())
	require.NoError(t, err)
	for brightness, code := range testCases {
		opts := testOptions()
		opts.Brightness = brightness
		h, err := BuildHeader([]int{6, 7}, opts)
		require.NoError(t, err)
		assert.Equal(t, code, h[5], "brightness %d", brightness)
		h[5] = base[5]
		assert.Equal(t, base, h, "brightness %d", brightness)
	}
}

func TestBuildHeaderCurrentTime(t *testing.T) {
	opts := testOptions()
	opts.Timestamp = time.Time{}
	before := time.Now()
	h, err := BuildHeader([]int{6, 7}, opts)
	require.NoError(t, err)
	fixed, err := BuildHeader([]int{6, 7}, testOptions())
	require.NoError(t, err)

	assert.Equal(t, fixed[:38], h[:38])
	assert.Equal(t, fixed[44:], h[44:])
	assert.Equal(t, byte(before.Year()%100), h[38])
	assert.Equal(t, byte(before.Month()), h[39])
}

func TestBuildHeaderInvalid(t *testing.T) {
	type testCase struct {
		name    string
		lengths []int
		opts    func(o *Options)
	}
	testCases := []testCase{
		{name: "no lengths", lengths: nil},
		{name: "too many messages", lengths: []int{1, 1, 1, 1, 1, 1, 1, 1, 1}},
		{name: "negative", lengths: []int{3, -1}},
		{name: "too long", lengths: []int{MaxColumns, 1}},
		{name: "no speeds", lengths: []int{1}, opts: func(o *Options) { o.Speeds = nil }},
		{name: "no modes", lengths: []int{1}, opts: func(o *Options) { o.Modes = []int{} }},
		{name: "no blinks", lengths: []int{1}, opts: func(o *Options) { o.Blinks = nil }},
		{name: "no ants", lengths: []int{1}, opts: func(o *Options) { o.Ants = nil }},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			opts := testOptions()
			if tc.opts != nil {
				tc.opts(&opts)
			}
			_, err := BuildHeader(tc.lengths, opts)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	_, err := BuildHeader([]int{MaxColumns}, testOptions())
	assert.NoError(t, err)
}

func TestDecodeHeader(t *testing.T) {
	h, err := BuildHeader([]int{6, 7}, testOptions())
	require.NoError(t, err)

	info, err := DecodeHeader(h[:])
	require.NoError(t, err)
	assert.Equal(t, []int{6, 7}, info.Lengths)
	assert.Equal(t, 13, info.Columns())
	assert.Equal(t, []int{5, 3, 3, 3, 3, 3, 3, 3}, info.Speeds)
	assert.Equal(t, []int{6, 2, 2, 2, 2, 2, 2, 2}, info.Modes)
	assert.Equal(t, []int{0, 1, 1, 1, 1, 1, 1, 1}, info.Blinks)
	assert.Equal(t, []int{1, 0, 0, 0, 0, 0, 0, 0}, info.Ants)
	assert.Equal(t, 75, info.Brightness)
	assert.True(t, fixedTime.Equal(info.Timestamp))

	_, err = DecodeHeader(h[:10])
	assert.ErrorIs(t, err, ErrInvalidInput)

	h[0] = 'x'
	_, err = DecodeHeader(h[:])
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestParseMode(t *testing.T) {
	testCases := map[string]Mode{
		"0":            ModeScrollLeft,
		"5":            ModeAnimation,
		"scroll-left":  ModeScrollLeft,
		"scroll_right": ModeScrollRight,
		"ScrollUp":     ModeScrollUp,
		"dropDown":     ModeDropDown,
		"laser":        ModeLaser,
		"still":        ModeFixed,
	}
	for input, expected := range testCases {
		actual, err := ParseMode(input)
		require.NoError(t, err, input)
		assert.Equal(t, expected, actual, input)
	}
	_, err := ParseMode("sideways")
	assert.ErrorIs(t, err, ErrInvalidInput)

	var m Mode
	require.NoError(t, m.UnmarshalJSON([]byte(`"curtain"`)))
	assert.Equal(t, ModeCurtain, m)
	require.NoError(t, m.UnmarshalJSON([]byte(`3`)))
	assert.Equal(t, ModeScrollDown, m)
}
