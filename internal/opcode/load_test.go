package opcode

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func writeTableFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "opcodes.toml")
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefs(t *testing.T) {
	path := writeTableFile(t, `
[[opcode]]
name = "message"
args = 2

[[opcode]]
name = "select"
args = -1

[[opcode]]
name = "wait"
args = 0
`)

	defs, err := LoadDefs(path)
	assert.NoError(t, err)
	assert.Len(t, defs, 3)

	// order defines the opcode ids, starting at UserBase
	assert.Equal(t, Def{Name: "message", Args: 2}, defs[0])
	assert.Equal(t, Def{Name: "select", Args: VariableArgs}, defs[1])
	assert.Equal(t, Def{Name: "wait", Args: 0}, defs[2])
}

func TestLoadDefsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing name", "[[opcode]]\nargs = 1\n"},
		{"invalid args", "[[opcode]]\nname = \"message\"\nargs = -2\n"},
		{"invalid toml", "[[opcode]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadDefs(writeTableFile(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadDefsMissingFile(t *testing.T) {
	_, err := LoadDefs(filepath.Join(t.TempDir(), "nonexistent.toml"))
	assert.Error(t, err)
}
