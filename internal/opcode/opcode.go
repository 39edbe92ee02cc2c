// Package opcode provides the instruction metadata tables of the ESCR1
// stack machine.
//
// The virtual machine reserves the opcode ids 0 to 32 for builtin
// instructions. The remaining ids up to 255 are left open for the client
// game code, which registers its own handlers. Their names and argument
// counts are therefore not fixed by the format and have to be supplied by
// the caller, see the Def type.
package opcode

import "fmt"

// Reserved opcode ids of the virtual machine.
const (
	Exit byte = iota
	Ret
	Jump
	Jumpz
	Call
	Push
	Pop
	Dup
	Swap
	Add
	Sub
	Mul
	Div
	Mod
	Neg
	Eq
	Ne
	Lt
	Le
	Gt
	Ge
	And
	Or
	Not
	Getvar
	Setvar
	Getflag
	Setflag
	Str
	Fileline
	Nop
	Yield
	Halt
)

// UserBase is the first opcode id available to user-defined opcodes.
const UserBase = 33

// VariableArgs marks a user-defined opcode that receives its argument count
// as an inline parameter in the bytecode stream. The count describes how
// many values the virtual machine pops off the stack for the call, the
// disassembler does not interpret it any further.
const VariableArgs = -1

// Def defines a user-defined opcode. Args is the fixed number of stack
// arguments of the opcode, or VariableArgs.
type Def struct {
	Name string
	Args int
}

type reservedDef struct {
	name     string
	hasParam bool
}

// reserved opcodes, only jump, jumpz, call, push, str and fileline carry an
// inline 4 byte parameter.
var reserved = [UserBase]reservedDef{
	Exit:     {"EXIT", false},
	Ret:      {"RET", false},
	Jump:     {"JUMP", true},
	Jumpz:    {"JUMPZ", true},
	Call:     {"CALL", true},
	Push:     {"PUSH", true},
	Pop:      {"POP", false},
	Dup:      {"DUP", false},
	Swap:     {"SWAP", false},
	Add:      {"ADD", false},
	Sub:      {"SUB", false},
	Mul:      {"MUL", false},
	Div:      {"DIV", false},
	Mod:      {"MOD", false},
	Neg:      {"NEG", false},
	Eq:       {"EQ", false},
	Ne:       {"NE", false},
	Lt:       {"LT", false},
	Le:       {"LE", false},
	Gt:       {"GT", false},
	Ge:       {"GE", false},
	And:      {"AND", false},
	Or:       {"OR", false},
	Not:      {"NOT", false},
	Getvar:   {"GETVAR", false},
	Setvar:   {"SETVAR", false},
	Getflag:  {"GETFLAG", false},
	Setflag:  {"SETFLAG", false},
	Str:      {"STR", true},
	Fileline: {"FILELINE", true},
	Nop:      {"NOP", false},
	Yield:    {"YIELD", false},
	Halt:     {"HALT", false},
}

// UnknownError is returned for opcode ids that are neither reserved nor
// covered by the user-defined opcode table.
type UnknownError struct {
	ID byte
}

func (e UnknownError) Error() string {
	return fmt.Sprintf("unknown opcode %02x", e.ID)
}

// Table answers name and parameter queries for the combined set of
// reserved and user-defined opcodes.
type Table struct {
	user []Def
}

// NewTable returns a table combining the reserved opcodes with the given
// ordered list of user-defined opcodes. The first entry of user defines
// opcode id UserBase.
func NewTable(user []Def) *Table {
	return &Table{user: user}
}

// UserDefs returns the number of user-defined opcodes in the table.
func (t *Table) UserDefs() int {
	return len(t.user)
}

// HasParam returns whether the opcode carries an inline 4 byte parameter
// in the bytecode stream. Ids past the user-defined table return an
// UnknownError.
func (t *Table) HasParam(id byte) (bool, error) {
	if id < UserBase {
		return reserved[id].hasParam, nil
	}
	user := int(id) - UserBase
	if user >= len(t.user) {
		return false, UnknownError{ID: id}
	}
	return t.user[user].Args == VariableArgs, nil
}

// Name returns the display name of the opcode.
func (t *Table) Name(id byte) string {
	if id < UserBase {
		return reserved[id].name
	}
	user := int(id) - UserBase
	if user >= len(t.user) {
		return fmt.Sprintf("USR_%02X", id)
	}
	return t.user[user].Name
}
