package writer

import (
	"bytes"
	"testing"

	"github.com/retroenv/escrgodisasm/internal/decoder"
	"github.com/retroenv/retrogolib/assert"
)

func TestWriteRecord(t *testing.T) {
	tests := []struct {
		name     string
		record   decoder.Record
		opName   string
		expected string
	}{
		{
			"without parameter",
			decoder.Record{Offset: 0x10, ID: 9},
			"ADD",
			"00000010:\tADD\n",
		},
		{
			"with parameter",
			decoder.Record{Offset: 0, ID: 5, Param: 42, HasParam: true},
			"PUSH",
			"00000000:\t                PUSH\t0000002a\n",
		},
		{
			"long name unpadded",
			decoder.Record{Offset: 0x1234, ID: 40, Param: 0xdeadbeef, HasParam: true},
			"a_very_long_user_opcode",
			"00001234:\ta_very_long_user_opcode\tdeadbeef\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			w := New(buf, Options{})

			assert.NoError(t, w.WriteRecord(tt.record, tt.opName))
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestWriteString(t *testing.T) {
	tests := []struct {
		name     string
		options  Options
		found    bool
		expected string
	}{
		{"strings disabled", Options{}, true, ""},
		{"found", Options{ShowStrings: true}, true, "\t\thello\n\n"},
		{"placeholder suppressed", Options{ShowStrings: true}, false, ""},
		{
			"placeholder printed",
			Options{ShowStrings: true, ShowPlaceholders: true},
			false,
			"\t\thello\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			w := New(buf, tt.options)

			assert.NoError(t, w.WriteString([]byte("hello"), tt.found))
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}
