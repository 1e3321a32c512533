package glyph

// Built-in icons. Each one is reachable in message text as :name: and as
// its private control code.
var icons = []icon{
	{
		name: "ball",
		code: '\x1e',
		columns: []byte{
			0b00000000,
			0b00000000,
			0b00111100,
			0b01111110,
			0b11111111,
			0b11111111,
			0b11111111,
			0b11111111,
			0b01111110,
			0b00111100,
			0b00000000,
		},
	},
	{
		name: "happy",
		code: '\x1d',
		columns: []byte{
			0b00000000,
			0b00000000,
			0b00111100,
			0b01000010,
			0b10100101,
			0b10000001,
			0b10100101,
			0b10011001,
			0b01000010,
			0b00111100,
			0b00000000,
		},
	},
	{
		name: "happy2",
		code: '\x1c',
		columns: []byte{
			0x00, 0x08, 0x14, 0x08, 0x01, 0x00, 0x00, 0x61, 0x30, 0x1c, 0x07,
			0x00, 0x20, 0x50, 0x20, 0x00, 0x80, 0x80, 0x86, 0x0c, 0x38, 0xe0,
		},
	},
	{
		name:    "heart",
		code:    '\x1b',
		columns: []byte{0x00, 0x00, 0x6c, 0x92, 0x82, 0x82, 0x44, 0x28, 0x10, 0x00, 0x00},
	},
	{
		name:    "HEART",
		code:    '\x1a',
		columns: []byte{0x00, 0x00, 0x6c, 0xfe, 0xfe, 0xfe, 0x7c, 0x38, 0x10, 0x00, 0x00},
	},
	{
		name: "heart2",
		code: '\x19',
		columns: []byte{
			0x00, 0x0c, 0x12, 0x21, 0x20, 0x20, 0x10, 0x08, 0x04, 0x02, 0x01,
			0x00, 0x60, 0x90, 0x08, 0x08, 0x08, 0x10, 0x20, 0x40, 0x80, 0x00,
		},
	},
	{
		name: "HEART2",
		code: '\x18',
		columns: []byte{
			0x00, 0x0c, 0x1e, 0x3f, 0x3f, 0x3f, 0x1f, 0x0f, 0x07, 0x03, 0x01,
			0x00, 0x60, 0xf0, 0xf8, 0xf8, 0xf8, 0xf0, 0xe0, 0xc0, 0x80, 0x00,
		},
	},
	{
		name: "fablab",
		code: '\x17',
		columns: []byte{
			0x07, 0x0e, 0x1b, 0x03, 0x21, 0x2c, 0x2e, 0x26, 0x14, 0x1c, 0x06,
			0x80, 0x60, 0x30, 0x80, 0x88, 0x38, 0xe8, 0xc8, 0x10, 0x30, 0xc0,
		},
	},
	{
		name: "bicycle",
		code: '\x16',
		columns: []byte{
			0x01, 0x02, 0x00, 0x01, 0x07, 0x09, 0x12, 0x12, 0x10, 0x08, 0x07,
			0x00, 0x87, 0x81, 0x5f, 0x22, 0x94, 0x49, 0x5f, 0x49, 0x80, 0x00,
			0x00, 0x80, 0x00, 0x80, 0x70, 0xc8, 0x24, 0xe4, 0x04, 0x88, 0x70,
		},
	},
	{
		name: "bicycle_r",
		code: '\x15',
		columns: []byte{
			0x00, 0x00, 0x00, 0x00, 0x07, 0x09, 0x12, 0x13, 0x10, 0x08, 0x07,
			0x00, 0xf0, 0x40, 0xfd, 0x22, 0x94, 0x49, 0xfd, 0x49, 0x80, 0x00,
			0x40, 0xa0, 0x80, 0x40, 0x70, 0xc8, 0x24, 0x24, 0x04, 0x88, 0x70,
		},
	},
	{
		name: "owncloud",
		code: '\x14',
		columns: []byte{
			0x00, 0x01, 0x02, 0x03, 0x06, 0x0c, 0x1a, 0x13, 0x11, 0x19, 0x0f,
			0x78, 0xcc, 0x87, 0xfc, 0x42, 0x81, 0x81, 0x81, 0x81, 0x43, 0xbd,
			0x00, 0x00, 0x00, 0x80, 0x80, 0xe0, 0x30, 0x10, 0x28, 0x28, 0xd0,
		},
	},
}

type icon struct {
	name    string
	code    rune
	columns []byte
}
