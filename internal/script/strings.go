package script

import (
	"bytes"
	"fmt"
)

// Placeholder is substituted for string ids that do not resolve to a
// non-empty string in the data section.
const Placeholder = "(missing string)"

// OffsetRangeError is returned when an index table entry points outside of
// the data section.
type OffsetRangeError struct {
	ID     uint32 // string table id that was looked up
	Offset uint32 // offending offset from the index table
	Size   int    // size of the data section
}

func (e OffsetRangeError) Error() string {
	return fmt.Sprintf("string %d offset %08x exceeds data section of %d bytes",
		e.ID, e.Offset, e.Size)
}

// StringByID resolves a string table id to the null-terminated string it
// references in the data section. The terminating null is not included.
//
// An id past the end of the index table and an id resolving to an empty
// string both return the Placeholder text and found == false. An index
// table entry pointing outside of the data section returns an
// OffsetRangeError.
func (s *Script) StringByID(id uint32) (str []byte, found bool, err error) {
	if id >= uint32(len(s.Index)) {
		return []byte(Placeholder), false, nil
	}

	offset := s.Index[id]
	if int64(offset) >= int64(len(s.Data)) {
		return nil, false, OffsetRangeError{
			ID:     id,
			Offset: offset,
			Size:   len(s.Data),
		}
	}

	str = s.Data[offset:]
	if end := bytes.IndexByte(str, 0); end >= 0 {
		str = str[:end]
	}
	if len(str) == 0 {
		return []byte(Placeholder), false, nil
	}
	return str, true, nil
}
