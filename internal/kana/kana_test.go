package kana

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestTranscode(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected []byte
	}{
		{"empty", nil, []byte{}},
		{"plain ascii", []byte("abc"), []byte("abc")},
		{"half-width a", []byte{0xb1}, []byte{0x82, 0xa0}},
		{"half-width space", []byte{0xa0}, []byte{0x81, 0x40}},
		{"exclamation", []byte{0x21}, []byte{0x81, 0x49}},
		{"question mark", []byte{0x3f}, []byte{0x81, 0x48}},
		{"half-width n", []byte{0xdd}, []byte{0x82, 0xf1}},
		{"escape suppresses translation", []byte{0x1b, 0xb1}, []byte{0xb1}},
		{"escaped escape", []byte{0x1b, 0x1b, 0xb1}, []byte{0x1b, 0x82, 0xa0}},
		{"full-width passthrough", []byte{0x82, 0xa0, 0x00}, []byte{0x82, 0xa0}},
		{"stops at null", []byte{0xb1, 0x00, 0xb2}, []byte{0x82, 0xa0}},
		{"lead byte hides half-width trail", []byte{0x81, 0xb1, 0xb1}, []byte{0x81, 0xb1, 0x82, 0xa0}},
		{"mixed", []byte{'a', 0xb6, 'b'}, []byte{'a', 0x82, 0xa9, 'b'}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Transcode(tt.input)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestTranscodeIdempotent(t *testing.T) {
	// a string of full-width pairs and plain ascii has no bytes left to
	// translate after one pass
	input := []byte{0x82, 0xa0, 0x82, 0xf1, 'a', 'b', 'c'}

	once, err := Transcode(input)
	assert.NoError(t, err)
	assert.Equal(t, input, once)

	twice, err := Transcode(once)
	assert.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestTranscodeTruncatedSequence(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		lead  byte
	}{
		{"lead byte at end", []byte{'a', 0x82}, 0x82},
		{"high lead byte at end", []byte{0xe0}, 0xe0},
		{"escape at end", []byte{'a', 0x1b}, 0x1b},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Transcode(tt.input)

			var truncErr TruncatedSequenceError
			assert.True(t, errors.As(err, &truncErr))
			assert.Equal(t, tt.lead, truncErr.Lead)
		})
	}
}

func TestTableCovers64Entries(t *testing.T) {
	count := 0
	for _, pair := range fullWidth {
		if pair != nil {
			count++
		}
	}
	assert.Equal(t, 64, count)

	// contiguous half-width katakana range 0xa0-0xdd is fully mapped
	for b := 0xa0; b <= 0xdd; b++ {
		assert.NotNil(t, fullWidth[b])
	}
}
