// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"errors"
	"strconv"

	"github.com/ezrec/minisrc/translate"
)

var f = translate.From

// decimal formats a value without locale digit grouping.
func decimal(value int64) string {
	return strconv.FormatInt(value, 10)
}

var (
	// Unrecognised identifiers
	ErrMnemonicUnknown        = errors.New(f("unknown instruction name"))
	ErrRegisterUnknown        = errors.New(f("invalid register identifier"))
	ErrBranchConditionUnknown = errors.New(f("invalid branch condition"))

	// Grammar errors
	ErrOperandsMalformed = errors.New(f("malformed operands"))
	ErrConstantMalformed = errors.New(f("could not parse constant value"))

	// Numeric bounds
	ErrConstantRange   = errors.New(f("constant out of range"))
	ErrAddressRange    = errors.New(f("address out of range"))
	ErrProgramTooLarge = errors.New(f("program too long"))

	// Conflicting definitions
	ErrLabelDuplicate   = errors.New(f("duplicate label"))
	ErrAddressCollision = errors.New(f("program overwrites itself (bad org statement)"))
)

// ErrToken reports the source token that caused an error.
type ErrToken struct {
	Token string
	Err   error
}

func (err *ErrToken) Error() string {
	return f("'%v' %v", err.Token, err.Err)
}

func (err *ErrToken) Unwrap() error {
	return err.Err
}

// ErrBranchTarget is returned when a branch operand is neither a
// known label nor a valid constant.
type ErrBranchTarget struct {
	Token string
	Err   error
}

func (err *ErrBranchTarget) Error() string {
	return f("%v (maybe you misspelled a label?)", err.Err)
}

func (err *ErrBranchTarget) Unwrap() error {
	return err.Err
}

// ErrRange reports a value outside of its permitted interval.
type ErrRange struct {
	Token string
	Value int64
	Min   int64
	Max   int64
	Err   error
}

func (err *ErrRange) Error() string {
	return f("'%v' (decimal %v) %v, must be in [%v, %v]", err.Token, decimal(err.Value), err.Err, decimal(err.Min), decimal(err.Max))
}

func (err *ErrRange) Unwrap() error {
	return err.Err
}

// ErrCollision reports two source lines that target the same address.
type ErrCollision struct {
	Address    uint32
	LineNo     int
	PrevLineNo int
}

func (err *ErrCollision) Error() string {
	return f("address 0x%03x used by line %v and line %v: %v", err.Address, decimal(int64(err.PrevLineNo)), decimal(int64(err.LineNo)), ErrAddressCollision)
}

func (err *ErrCollision) Unwrap() error {
	return ErrAddressCollision
}

// ErrSyntax indicates the source line of an assembly failure.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %v '%v' %v", decimal(int64(err.LineNo)), err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}
