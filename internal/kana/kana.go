// Package kana expands half-width katakana code points in Shift-JIS
// encoded strings to their full-width two byte equivalents.
package kana

import "fmt"

// TruncatedSequenceError is returned when the input ends in the middle of
// a two byte sequence.
type TruncatedSequenceError struct {
	Offset int  // offset of the lead or escape byte missing its trail byte
	Lead   byte // the lead or escape byte
}

func (e TruncatedSequenceError) Error() string {
	return fmt.Sprintf("truncated sequence: lead byte %02x at offset %d has no following byte",
		e.Lead, e.Offset)
}

// isLeadByte reports whether b starts a two byte Shift-JIS sequence.
func isLeadByte(b byte) bool {
	return (b >= 0x81 && b <= 0x9f) || (b >= 0xe0 && b <= 0xef)
}

// escape prefixes a byte that is copied verbatim without half-width
// translation.
const escape = 0x1b

// Transcode returns a copy of str with all half-width katakana code points
// replaced by their full-width Shift-JIS equivalents. Existing two byte
// sequences are passed through untouched, as is any byte following an
// escape byte. Transcoding stops at the first null byte, the result is not
// null-terminated.
func Transcode(str []byte) ([]byte, error) {
	out := make([]byte, 0, len(str))

	for i := 0; i < len(str); i++ {
		b := str[i]

		switch {
		case b == 0:
			return out, nil

		case isLeadByte(b):
			if i+1 >= len(str) {
				return nil, TruncatedSequenceError{Offset: i, Lead: b}
			}
			out = append(out, b, str[i+1])
			i++

		case b == escape:
			if i+1 >= len(str) {
				return nil, TruncatedSequenceError{Offset: i, Lead: b}
			}
			out = append(out, str[i+1])
			i++

		case fullWidth[b] != nil:
			pair := fullWidth[b]
			out = append(out, pair[0], pair[1])

		default:
			out = append(out, b)
		}
	}
	return out, nil
}
