package asm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncode(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		text string
		word Word
	}){
		{"ldi r3, 0x65", 0x0980_0065},
		{"ld r2, 0x10(r1)", 0x0108_0010},
		{"ld r2 , 0x10 ( r1 )", 0x0108_0010},
		{"ld r2, 0x10", 0x0100_0010},
		{"st 0x20(r3), r4", 0x1218_0020},
		{"st 0x20, r4", 0x1200_0020},
		{"add r1, r2, r3", 0x1891_8000},
		{"ADD R1,R2,R3", 0x1891_8000},
		{"sub t1, t2, sp", 0x211c_8000},
		{"addi r1, r2, 5", 0x6090_0005},
		{"addi r1, r1, -1", 0x608f_ffff},
		{"ori r4, r4, 0b1010", 0x7220_000a},
		{"mul r5, r6", 0x82b0_0000},
		{"not r1, r2", 0x9090_0000},
		{"jr ra", 0xac00_0000},
		{"mfhi v1", 0xcf80_0000},
		{"nop", 0xd000_0000},
		{"  halt  ", 0xd800_0000},
		{"brnz r3, 4", 0x9988_0004},
		{"brpl r0, -2", 0x9817_fffe},
	}

	for _, entry := range table {
		word, warnings, err := Encode(0, entry.text, Labels{})
		assert.NoError(err, entry.text)
		assert.Empty(warnings, entry.text)
		assert.Equal(entry.word, word, "%v: %08x != %08x", entry.text, uint32(entry.word), uint32(word))
	}
}

func TestEncodeDecode(t *testing.T) {
	assert := assert.New(t)

	word, _, err := Encode(0, "addi r1, r2, 5", Labels{})
	assert.NoError(err)
	assert.Equal(OP_ADDI, word.Op())
	assert.Equal(Register(1), word.Ra())
	assert.Equal(Register(2), word.Rb())
	assert.Equal(int64(5), word.Const())

	word, _, err = Encode(0, "add r13, r14, r15", Labels{})
	assert.NoError(err)
	assert.Equal(OP_ADD, word.Op())
	assert.Equal(Register(13), word.Ra())
	assert.Equal(Register(14), word.Rb())
	assert.Equal(Register(15), word.Rc())

	word, _, err = Encode(0, "brmi r2, -3", Labels{})
	assert.NoError(err)
	assert.Equal(OP_BR, word.Op())
	assert.Equal(COND_NEGATIVE, word.Cond())
	assert.Equal(int64(-3), word.Const())
}

func TestEncodeBranchLabel(t *testing.T) {
	assert := assert.New(t)

	labels := Labels{"loop": 0, "done": 3}

	word, _, err := Encode(0, "brzr r1, done", labels)
	assert.NoError(err)
	assert.Equal(Word(0x9880_0002), word)
	assert.Equal(int64(2), word.Const())

	word, _, err = Encode(2, "brmi r2, loop", labels)
	assert.NoError(err)
	assert.Equal(Word(0x991f_fffd), word)
	assert.Equal(int64(-3), word.Const())
}

func TestEncodeBranchSharedOpcode(t *testing.T) {
	assert := assert.New(t)

	for mnemonic, cond := range condMap {
		word, _, err := Encode(0, mnemonic+" r1, 0", Labels{})
		assert.NoError(err, mnemonic)
		assert.Equal(OP_BR, word.Op(), mnemonic)
		assert.Equal(cond, word.Cond(), mnemonic)
	}
}

func TestEncodeWarning(t *testing.T) {
	assert := assert.New(t)

	word, warnings, err := Encode(5, "andi r1, r2, 0x7FFFF", Labels{})
	assert.NoError(err)
	assert.Equal(Word(0x6890_0000|0x7ffff), word)
	if assert.Equal(1, len(warnings)) {
		assert.Equal(uint32(5), warnings[0].Address)
		assert.Equal("0x7FFFF", warnings[0].Token)
		assert.Equal(int64(0x7ffff), warnings[0].Value)
	}
}

func TestEncodeErrors(t *testing.T) {
	assert := assert.New(t)

	labels := Labels{"here": 1}

	table := [](struct {
		text string
		err  error
	}){
		{"", ErrMnemonicUnknown},
		{"  ; ", ErrMnemonicUnknown},
		{"jump here", ErrMnemonicUnknown},
		{"add r1, r2", ErrOperandsMalformed},
		{"add r1, r2, r3, r4", ErrOperandsMalformed},
		{"add r1 r2 r3", ErrOperandsMalformed},
		{"add r1, r2, r99", ErrRegisterUnknown},
		{"addi r1, r2, 0x80000", ErrConstantRange},
		{"addi r1, r2, abc", ErrConstantMalformed},
		{"addi r1, r2, 5!", ErrOperandsMalformed},
		{"ld r1, 4(r2", ErrOperandsMalformed},
		{"ld r1, 4(r16)", ErrRegisterUnknown},
		{"st r1, 4(r2)", ErrOperandsMalformed},
		{"st 4(r2)", ErrOperandsMalformed},
		{"brzr r1", ErrOperandsMalformed},
		{"brzr r1, nowhere", ErrConstantMalformed},
		{"brzr x1, here", ErrRegisterUnknown},
		{"jr", ErrOperandsMalformed},
		{"jr r1, r2", ErrOperandsMalformed},
		{"mul r1", ErrOperandsMalformed},
		{"nop r1", ErrOperandsMalformed},
		{"halt 0", ErrOperandsMalformed},
	}

	for _, entry := range table {
		_, _, err := Encode(0, entry.text, labels)
		assert.True(errors.Is(err, entry.err), "%v: %v", entry.text, err)
	}
}

func TestEncodeBranchMisspelled(t *testing.T) {
	assert := assert.New(t)

	_, _, err := Encode(0, "brnz r1, lop", Labels{"loop": 4})

	var eb *ErrBranchTarget
	if assert.True(errors.As(err, &eb)) {
		assert.Equal("lop", eb.Token)
	}
	assert.Contains(err.Error(), "misspelled")
}

func TestEncodeBranchCondition(t *testing.T) {
	assert := assert.New(t)

	instructionMap["brxx"] = Instruction{OP_BR, FORMAT_BRANCH}
	defer delete(instructionMap, "brxx")

	_, _, err := Encode(0, "brxx r1, 0", Labels{})
	assert.True(errors.Is(err, ErrBranchConditionUnknown), err)
}

func TestWordLayouts(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(Word(0xf800_0000), MakeWordM(CodeOp(0x1f)))
	assert.Equal(Word(0x0780_0000), MakeWordJ(OP_LD, 15))
	assert.Equal(Word(0x07ff_8000), MakeWordR(OP_LD, 15, 15, 15))
	assert.Equal(Word(0x07ff_ffff), MakeWordI(OP_LD, 15, 15, -1))
	assert.Equal(Word(0x0798_0000), MakeWordB(OP_LD, 15, COND_NEGATIVE, 1<<19))
	assert.Equal(int64(-262144), MakeWordI(OP_LD, 0, 0, 1<<18).Const())
}

func TestFormatString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("reg reg reg", FORMAT_REG_REG_REG.String())
	assert.Equal("no operand", FORMAT_NONE.String())
	assert.Equal("Format(99)", Format(99).String())

	assert.Equal("ld", OP_LD.String())
	assert.Equal("br", OP_BR.String())
	assert.Equal("halt", OP_HALT.String())
	assert.Equal("CodeOp(31)", CodeOp(31).String())
	assert.Equal("brmi", COND_NEGATIVE.String())
	assert.Equal("CodeCond(-1)", CodeCond(-1).String())

	inst, ok := LookupInstruction("LDI")
	assert.True(ok)
	assert.Equal(Instruction{OP_LDI, FORMAT_LOAD}, inst)

	_, ok = LookupInstruction("word")
	assert.False(ok)
}

func TestWarningString(t *testing.T) {
	assert := assert.New(t)

	warn := Warning{LineNo: 1200, Address: 3, Token: "0x7FFFF", Value: 0x7ffff}
	assert.Equal("line 1200: unsigned constant value 0x7FFFF (decimal 524287) will be treated as negative by CPU", warn.String())
}
