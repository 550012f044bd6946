package asm

import (
	"fmt"
	"strings"
)

// CodeOp is a 5-bit opcode.
type CodeOp int

//go:generate go tool stringer -linecomment -type=CodeOp
const (
	OP_LD   = CodeOp(0b00000) // ld
	OP_LDI  = CodeOp(0b00001) // ldi
	OP_ST   = CodeOp(0b00010) // st
	OP_ADD  = CodeOp(0b00011) // add
	OP_SUB  = CodeOp(0b00100) // sub
	OP_AND  = CodeOp(0b00101) // and
	OP_OR   = CodeOp(0b00110) // or
	OP_ROR  = CodeOp(0b00111) // ror
	OP_ROL  = CodeOp(0b01000) // rol
	OP_SHR  = CodeOp(0b01001) // shr
	OP_SHRA = CodeOp(0b01010) // shra
	OP_SHL  = CodeOp(0b01011) // shl
	OP_ADDI = CodeOp(0b01100) // addi
	OP_ANDI = CodeOp(0b01101) // andi
	OP_ORI  = CodeOp(0b01110) // ori
	OP_DIV  = CodeOp(0b01111) // div
	OP_MUL  = CodeOp(0b10000) // mul
	OP_NEG  = CodeOp(0b10001) // neg
	OP_NOT  = CodeOp(0b10010) // not
	OP_BR   = CodeOp(0b10011) // br
	OP_JAL  = CodeOp(0b10100) // jal
	OP_JR   = CodeOp(0b10101) // jr
	OP_IN   = CodeOp(0b10110) // in
	OP_OUT  = CodeOp(0b10111) // out
	OP_MFLO = CodeOp(0b11000) // mflo
	OP_MFHI = CodeOp(0b11001) // mfhi
	OP_NOP  = CodeOp(0b11010) // nop
	OP_HALT = CodeOp(0b11011) // halt
)

// CodeCond is a branch condition code.
type CodeCond int

//go:generate go tool stringer -linecomment -type=CodeCond
const (
	COND_ZERO     = CodeCond(0b0000) // brzr
	COND_NONZERO  = CodeCond(0b0001) // brnz
	COND_POSITIVE = CodeCond(0b0010) // brpl
	COND_NEGATIVE = CodeCond(0b0011) // brmi
)

// condMap maps branch mnemonics to their condition code.
var condMap = map[string]CodeCond{
	"brzr": COND_ZERO,
	"brnz": COND_NONZERO,
	"brpl": COND_POSITIVE,
	"brmi": COND_NEGATIVE,
}

// Format is the operand format class of a mnemonic.
type Format int

//go:generate go tool stringer -linecomment -type=Format
const (
	FORMAT_REG_REG_REG   = Format(iota) // reg reg reg
	FORMAT_REG_REG_CONST                // reg reg const
	FORMAT_BRANCH                       // reg label
	FORMAT_LOAD                         // reg offset reg
	FORMAT_STORE                        // offset reg reg
	FORMAT_REG_REG                      // reg reg
	FORMAT_REG                          // reg
	FORMAT_NONE                         // no operand
)

// Instruction is the opcode and operand format of a mnemonic.
type Instruction struct {
	Op     CodeOp
	Format Format
}

// instructionMap maps mnemonics to their instruction definition.
var instructionMap = map[string]Instruction{
	"ld":   {OP_LD, FORMAT_LOAD},
	"ldi":  {OP_LDI, FORMAT_LOAD},
	"st":   {OP_ST, FORMAT_STORE},
	"add":  {OP_ADD, FORMAT_REG_REG_REG},
	"sub":  {OP_SUB, FORMAT_REG_REG_REG},
	"and":  {OP_AND, FORMAT_REG_REG_REG},
	"or":   {OP_OR, FORMAT_REG_REG_REG},
	"ror":  {OP_ROR, FORMAT_REG_REG_REG},
	"rol":  {OP_ROL, FORMAT_REG_REG_REG},
	"shr":  {OP_SHR, FORMAT_REG_REG_REG},
	"shra": {OP_SHRA, FORMAT_REG_REG_REG},
	"shl":  {OP_SHL, FORMAT_REG_REG_REG},
	"addi": {OP_ADDI, FORMAT_REG_REG_CONST},
	"andi": {OP_ANDI, FORMAT_REG_REG_CONST},
	"ori":  {OP_ORI, FORMAT_REG_REG_CONST},
	"div":  {OP_DIV, FORMAT_REG_REG},
	"mul":  {OP_MUL, FORMAT_REG_REG},
	"neg":  {OP_NEG, FORMAT_REG_REG},
	"not":  {OP_NOT, FORMAT_REG_REG},
	"brzr": {OP_BR, FORMAT_BRANCH},
	"brnz": {OP_BR, FORMAT_BRANCH},
	"brpl": {OP_BR, FORMAT_BRANCH},
	"brmi": {OP_BR, FORMAT_BRANCH},
	"jal":  {OP_JAL, FORMAT_REG},
	"jr":   {OP_JR, FORMAT_REG},
	"in":   {OP_IN, FORMAT_REG},
	"out":  {OP_OUT, FORMAT_REG},
	"mflo": {OP_MFLO, FORMAT_REG},
	"mfhi": {OP_MFHI, FORMAT_REG},
	"nop":  {OP_NOP, FORMAT_NONE},
	"halt": {OP_HALT, FORMAT_NONE},
}

// LookupInstruction returns the definition of a mnemonic, ignoring case.
func LookupInstruction(mnemonic string) (inst Instruction, ok bool) {
	inst, ok = instructionMap[strings.ToLower(mnemonic)]
	return
}

const (
	CONST_BITS = 19                    // Width of the immediate field.
	CONST_MASK = (1 << CONST_BITS) - 1 // Mask of the immediate field.
	WORD_BITS  = 32                    // Width of a memory word.
)

// Word is a 32-bit encoded instruction or data word.
type Word uint32

func makeOp(op CodeOp) Word {
	return Word(uint32(op)&0x1f) << 27
}

// MakeWordR creates an R-format word: op | ra | rb | rc | 0.
func MakeWordR(op CodeOp, ra, rb, rc Register) Word {
	return makeOp(op) | Word(ra&0xf)<<23 | Word(rb&0xf)<<19 | Word(rc&0xf)<<15
}

// MakeWordI creates an I-format word: op | ra | rb | const.
func MakeWordI(op CodeOp, ra, rb Register, value int64) Word {
	return makeOp(op) | Word(ra&0xf)<<23 | Word(rb&0xf)<<19 | Word(value&CONST_MASK)
}

// MakeWordB creates a B-format word: op | ra | cond | const.
func MakeWordB(op CodeOp, ra Register, cond CodeCond, value int64) Word {
	return makeOp(op) | Word(ra&0xf)<<23 | Word(cond&0xf)<<19 | Word(value&CONST_MASK)
}

// MakeWordJ creates a J-format word: op | ra | 0.
func MakeWordJ(op CodeOp, ra Register) Word {
	return makeOp(op) | Word(ra&0xf)<<23
}

// MakeWordM creates an M-format word: op | 0.
func MakeWordM(op CodeOp) Word {
	return makeOp(op)
}

// Op returns the opcode field.
func (word Word) Op() CodeOp {
	return CodeOp((word >> 27) & 0x1f)
}

// Ra returns the first register field.
func (word Word) Ra() Register {
	return Register((word >> 23) & 0xf)
}

// Rb returns the second register field.
func (word Word) Rb() Register {
	return Register((word >> 19) & 0xf)
}

// Rc returns the third register field of an R-format word.
func (word Word) Rc() Register {
	return Register((word >> 15) & 0xf)
}

// Cond returns the condition field of a B-format word.
func (word Word) Cond() CodeCond {
	return CodeCond((word >> 19) & 0xf)
}

// Const returns the sign extended immediate field.
func (word Word) Const() int64 {
	value := int64(word & CONST_MASK)
	if value&(1<<(CONST_BITS-1)) != 0 {
		value -= 1 << CONST_BITS
	}
	return value
}

// String returns the raw fields of the word.
func (word Word) String() string {
	return fmt.Sprintf("%08X op:%05b ra:%d rb:%d rc:%d c:%d", uint32(word), int(word.Op()), word.Ra(), word.Rb(), word.Rc(), word.Const())
}
