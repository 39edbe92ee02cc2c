package kana

// tableEntry maps a single byte half-width code point to its two byte
// full-width Shift-JIS equivalent.
type tableEntry struct {
	halfWidth byte
	fullWidth [2]byte
}

// htozTable maps the half-width katakana range (plus 0xa0 as a full-width
// space and the ASCII ! and ? punctuation) to full-width Shift-JIS pairs.
var htozTable = [64]tableEntry{
	{0xa0, [2]byte{0x81, 0x40}},
	{0x21, [2]byte{0x81, 0x49}},
	{0x3f, [2]byte{0x81, 0x48}},
	{0xa5, [2]byte{0x81, 0x63}},
	{0xa1, [2]byte{0x81, 0x42}},
	{0xa2, [2]byte{0x81, 0x75}},
	{0xa3, [2]byte{0x81, 0x76}},
	{0xa4, [2]byte{0x81, 0x41}},
	{0xa6, [2]byte{0x82, 0xf0}},
	{0xa7, [2]byte{0x82, 0x9f}},
	{0xa8, [2]byte{0x82, 0xa1}},
	{0xa9, [2]byte{0x82, 0xa3}},
	{0xaa, [2]byte{0x82, 0xa5}},
	{0xab, [2]byte{0x82, 0xa7}},
	{0xac, [2]byte{0x82, 0xe1}},
	{0xad, [2]byte{0x82, 0xe3}},
	{0xae, [2]byte{0x82, 0xe5}},
	{0xaf, [2]byte{0x82, 0xc1}},
	{0xb0, [2]byte{0x81, 0x5b}},
	{0xb1, [2]byte{0x82, 0xa0}},
	{0xb2, [2]byte{0x82, 0xa2}},
	{0xb3, [2]byte{0x82, 0xa4}},
	{0xb4, [2]byte{0x82, 0xa6}},
	{0xb5, [2]byte{0x82, 0xa8}},
	{0xb6, [2]byte{0x82, 0xa9}},
	{0xb7, [2]byte{0x82, 0xab}},
	{0xb8, [2]byte{0x82, 0xad}},
	{0xb9, [2]byte{0x82, 0xaf}},
	{0xba, [2]byte{0x82, 0xb1}},
	{0xbb, [2]byte{0x82, 0xb3}},
	{0xbc, [2]byte{0x82, 0xb5}},
	{0xbd, [2]byte{0x82, 0xb7}},
	{0xbe, [2]byte{0x82, 0xb9}},
	{0xbf, [2]byte{0x82, 0xbb}},
	{0xc0, [2]byte{0x82, 0xbd}},
	{0xc1, [2]byte{0x82, 0xbf}},
	{0xc2, [2]byte{0x82, 0xc2}},
	{0xc3, [2]byte{0x82, 0xc4}},
	{0xc4, [2]byte{0x82, 0xc6}},
	{0xc5, [2]byte{0x82, 0xc8}},
	{0xc6, [2]byte{0x82, 0xc9}},
	{0xc7, [2]byte{0x82, 0xca}},
	{0xc8, [2]byte{0x82, 0xcb}},
	{0xc9, [2]byte{0x82, 0xcc}},
	{0xca, [2]byte{0x82, 0xcd}},
	{0xcb, [2]byte{0x82, 0xd0}},
	{0xcc, [2]byte{0x82, 0xd3}},
	{0xcd, [2]byte{0x82, 0xd6}},
	{0xce, [2]byte{0x82, 0xd9}},
	{0xcf, [2]byte{0x82, 0xdc}},
	{0xd0, [2]byte{0x82, 0xdd}},
	{0xd1, [2]byte{0x82, 0xde}},
	{0xd2, [2]byte{0x82, 0xdf}},
	{0xd3, [2]byte{0x82, 0xe0}},
	{0xd4, [2]byte{0x82, 0xe2}},
	{0xd5, [2]byte{0x82, 0xe4}},
	{0xd6, [2]byte{0x82, 0xe6}},
	{0xd7, [2]byte{0x82, 0xe7}},
	{0xd8, [2]byte{0x82, 0xe8}},
	{0xd9, [2]byte{0x82, 0xe9}},
	{0xda, [2]byte{0x82, 0xea}},
	{0xdb, [2]byte{0x82, 0xeb}},
	{0xdc, [2]byte{0x82, 0xed}},
	{0xdd, [2]byte{0x82, 0xf1}},
}

// fullWidth indexes htozTable by byte value for the transcoding loop.
var fullWidth [256]*[2]byte

func init() {
	for i := range htozTable {
		entry := &htozTable[i]
		fullWidth[entry.halfWidth] = &entry.fullWidth
	}
}
