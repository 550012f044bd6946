package asm

import (
	"maps"
	"slices"
	"strings"
)

// Register is a general purpose register index.
type Register int

const (
	REGISTER_COUNT = 16 // Number of general purpose registers.
)

// registerMap maps register names, both generic and calling convention
// aliases, to register indexes.
var registerMap = map[string]Register{
	"r0":  0,
	"r1":  1,
	"r2":  2,
	"r3":  3,
	"r4":  4,
	"r5":  5,
	"r6":  6,
	"r7":  7,
	"r8":  8,
	"r9":  9,
	"r10": 10,
	"r11": 11,
	"r12": 12,
	"r13": 13,
	"r14": 14,
	"r15": 15,

	"t0": 0,
	"at": 1,
	"t1": 2,
	"t2": 3,
	"t3": 4,
	"t4": 5,
	"t5": 6,
	"t6": 7,
	"ra": 8,
	"sp": 9,
	"a0": 10,
	"a1": 11,
	"a2": 12,
	"a3": 13,
	"v0": 14,
	"v1": 15,
}

// LookupRegister resolves a register name, ignoring case.
func LookupRegister(name string) (reg Register, err error) {
	reg, ok := registerMap[strings.ToLower(name)]
	if !ok {
		err = &ErrToken{Token: name, Err: ErrRegisterUnknown}
		return
	}

	return
}

// RegisterNames returns all of the known register names, sorted.
func RegisterNames() []string {
	return slices.Sorted(maps.Keys(registerMap))
}
