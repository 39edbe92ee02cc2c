package opcode

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// tableFile represents a user opcode table TOML file:
//
//	[[opcode]]
//	name = "message"
//	args = 2
//
// Entries are ordered, the first one defines opcode id UserBase. An args
// value of -1 marks a variable argument count opcode that carries the count
// as an inline parameter.
type tableFile struct {
	Opcodes []tableEntry `toml:"opcode"`
}

type tableEntry struct {
	Name string `toml:"name"`
	Args int    `toml:"args"`
}

// LoadDefs reads user-defined opcode definitions from a TOML file.
func LoadDefs(path string) ([]Def, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading opcode table %s: %w", path, err)
	}

	var file tableFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing opcode table %s: %w", path, err)
	}

	defs := make([]Def, 0, len(file.Opcodes))
	for i, entry := range file.Opcodes {
		if entry.Name == "" {
			return nil, fmt.Errorf("opcode table %s: entry %d has no name", path, i)
		}
		if entry.Args < VariableArgs {
			return nil, fmt.Errorf("opcode table %s: opcode %s has invalid args %d",
				path, entry.Name, entry.Args)
		}
		defs = append(defs, Def{
			Name: entry.Name,
			Args: entry.Args,
		})
	}
	return defs, nil
}
