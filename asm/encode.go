package asm

import (
	"regexp"
	"strings"
)

// unicodeClasses widens the ASCII \s and \w classes to their Unicode
// equivalents. Inside a constant class only the ASCII space is allowed.
var unicodeClasses = strings.NewReplacer(
	`[\w \-]`, `[\p{L}\p{N}_ \-]`,
	`\w`, `[\p{L}\p{N}_]`,
	`\s`, `[\s\p{Z}\x{85}]`,
)

func mustCompile(expr string) *regexp.Regexp {
	return regexp.MustCompile(unicodeClasses.Replace(expr))
}

var reMnemonic = mustCompile(`^\s*(\w+)`)

// Operand grammars, matched against the whole instruction text.
var (
	reRegRegReg   = mustCompile(`^\s*\w+\s+(\w+)\s*,\s*(\w+)\s*,\s*(\w+)\s*$`)
	reRegRegConst = mustCompile(`^\s*\w+\s+(\w+)\s*,\s*(\w+)\s*,\s*([\w \-]+)\s*$`)
	reRegConst    = mustCompile(`^\s*\w+\s+(\w+)\s*,\s*([\w \-]+)\s*$`)
	reRegOffReg   = mustCompile(`^\s*\w+\s+(\w+)\s*,\s*([\w \-]+)\s*\(\s*(\w+)\s*\)\s*$`)
	reOffRegReg   = mustCompile(`^\s*\w+\s+([\w \-]+)\s*\(\s*(\w+)\s*\)\s*,\s*(\w+)\s*$`)
	reConstReg    = mustCompile(`^\s*\w+\s+([\w \-]+)\s*,\s*(\w+)\s*$`)
	reRegReg      = mustCompile(`^\s*\w+\s+(\w+)\s*,\s*(\w+)\s*$`)
	reReg         = mustCompile(`^\s*\w+\s+(\w+)\s*$`)
	reNone        = mustCompile(`^\s*\w+\s*$`)
)

// Warning is a non-fatal assembly diagnostic: an unsigned literal that
// the CPU will sign extend into a negative value.
type Warning struct {
	LineNo  int    // Source line number.
	Address uint32 // Address of the word holding the value.
	Token   string // Literal as written.
	Value   int64  // Value of the literal.
}

func (warn Warning) String() string {
	return f("line %v: unsigned constant value %v (decimal %v) will be treated as negative by CPU", decimal(int64(warn.LineNo)), warn.Token, decimal(warn.Value))
}

// encoder holds the state for encoding a single instruction.
type encoder struct {
	labels   Labels
	address  uint32
	warnings []Warning
}

func (enc *encoder) register(token string) (reg Register, err error) {
	return LookupRegister(token)
}

// constant evaluates an immediate, noting sign extension warnings.
func (enc *encoder) constant(token string, bits int) (value int64, err error) {
	token = strings.TrimSpace(token)
	value, wraps, err := enc.labels.Evaluate(token, bits)
	if err != nil {
		return
	}

	if wraps {
		enc.warnings = append(enc.warnings, Warning{Address: enc.address, Token: token, Value: value})
	}

	return
}

// branchOffset resolves a branch target. Labels are relative to the
// incremented program counter, biased by one.
func (enc *encoder) branchOffset(token string) (offset int64, err error) {
	token = strings.TrimSpace(token)
	if addr, ok := enc.labels[token]; ok {
		offset = (int64(addr) - 1) - int64(enc.address)
		lo := -(int64(1) << (CONST_BITS - 1))
		hi := int64(1)<<(CONST_BITS-1) - 1
		if offset < lo || offset > hi {
			err = &ErrRange{Token: token, Value: offset, Min: lo, Max: hi, Err: ErrConstantRange}
		}
		return
	}

	offset, err = enc.constant(token, CONST_BITS)
	if err != nil {
		err = &ErrBranchTarget{Token: token, Err: err}
		return
	}

	return
}

// registers resolves a list of register tokens.
func (enc *encoder) registers(tokens ...string) (regs []Register, err error) {
	for _, token := range tokens {
		var reg Register
		reg, err = enc.register(token)
		if err != nil {
			return
		}
		regs = append(regs, reg)
	}
	return
}

// Encode encodes a single instruction at an address.
//
// Warnings are returned without line numbers.
func Encode(address uint32, text string, labels Labels) (word Word, warnings []Warning, err error) {
	enc := &encoder{labels: labels, address: address}
	word, err = enc.encode(text)
	warnings = enc.warnings
	return
}

// malformed reports the operands following the mnemonic of text.
func (enc *encoder) malformed(text string) error {
	match := reMnemonic.FindStringIndex(text)
	operands := strings.TrimSpace(text[match[1]:])
	if len(operands) == 0 {
		return ErrOperandsMalformed
	}
	return &ErrToken{Token: operands, Err: ErrOperandsMalformed}
}

func (enc *encoder) encode(text string) (word Word, err error) {
	match := reMnemonic.FindStringSubmatch(text)
	if match == nil {
		err = &ErrToken{Token: strings.TrimSpace(text), Err: ErrMnemonicUnknown}
		return
	}

	mnemonic := strings.ToLower(match[1])
	inst, ok := instructionMap[mnemonic]
	if !ok {
		err = &ErrToken{Token: match[1], Err: ErrMnemonicUnknown}
		return
	}

	op := inst.Op

	switch inst.Format {
	case FORMAT_REG_REG_REG:
		args := reRegRegReg.FindStringSubmatch(text)
		if args == nil {
			err = enc.malformed(text)
			return
		}
		var regs []Register
		regs, err = enc.registers(args[1], args[2], args[3])
		if err != nil {
			return
		}
		word = MakeWordR(op, regs[0], regs[1], regs[2])
	case FORMAT_REG_REG_CONST:
		args := reRegRegConst.FindStringSubmatch(text)
		if args == nil {
			err = enc.malformed(text)
			return
		}
		var regs []Register
		regs, err = enc.registers(args[1], args[2])
		if err != nil {
			return
		}
		var value int64
		value, err = enc.constant(args[3], CONST_BITS)
		if err != nil {
			return
		}
		word = MakeWordI(op, regs[0], regs[1], value)
	case FORMAT_BRANCH:
		args := reRegConst.FindStringSubmatch(text)
		if args == nil {
			err = enc.malformed(text)
			return
		}
		var ra Register
		ra, err = enc.register(args[1])
		if err != nil {
			return
		}
		cond, ok := condMap[mnemonic]
		if !ok {
			err = &ErrToken{Token: match[1], Err: ErrBranchConditionUnknown}
			return
		}
		var offset int64
		offset, err = enc.branchOffset(args[2])
		if err != nil {
			return
		}
		word = MakeWordB(op, ra, cond, offset)
	case FORMAT_LOAD:
		ra, rb, value := "", "r0", ""
		if args := reRegOffReg.FindStringSubmatch(text); args != nil {
			ra, value, rb = args[1], args[2], args[3]
		} else if args := reRegConst.FindStringSubmatch(text); args != nil {
			ra, value = args[1], args[2]
		} else {
			err = enc.malformed(text)
			return
		}
		word, err = enc.encodeMemory(op, ra, rb, value)
	case FORMAT_STORE:
		ra, rb, value := "", "r0", ""
		if args := reOffRegReg.FindStringSubmatch(text); args != nil {
			value, rb, ra = args[1], args[2], args[3]
		} else if args := reConstReg.FindStringSubmatch(text); args != nil {
			value, ra = args[1], args[2]
		} else {
			err = enc.malformed(text)
			return
		}
		word, err = enc.encodeMemory(op, ra, rb, value)
	case FORMAT_REG_REG:
		args := reRegReg.FindStringSubmatch(text)
		if args == nil {
			err = enc.malformed(text)
			return
		}
		var regs []Register
		regs, err = enc.registers(args[1], args[2])
		if err != nil {
			return
		}
		word = MakeWordI(op, regs[0], regs[1], 0)
	case FORMAT_REG:
		args := reReg.FindStringSubmatch(text)
		if args == nil {
			err = enc.malformed(text)
			return
		}
		var ra Register
		ra, err = enc.register(args[1])
		if err != nil {
			return
		}
		word = MakeWordJ(op, ra)
	case FORMAT_NONE:
		if !reNone.MatchString(text) {
			err = enc.malformed(text)
			return
		}
		word = MakeWordM(op)
	default:
		err = &ErrToken{Token: match[1], Err: ErrMnemonicUnknown}
	}

	return
}

// encodeMemory encodes the I-format word of a load or store.
func (enc *encoder) encodeMemory(op CodeOp, ra, rb, value string) (word Word, err error) {
	regs, err := enc.registers(ra, rb)
	if err != nil {
		return
	}

	offset, err := enc.constant(value, CONST_BITS)
	if err != nil {
		return
	}

	word = MakeWordI(op, regs[0], regs[1], offset)
	return
}
