package asm

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// Labels maps label names to their address.
type Labels map[string]uint32

var (
	reBinary   = regexp.MustCompile(`^0b([01]+)$`)
	reHex      = regexp.MustCompile(`^0x([0-9a-f]+)$`)
	reNegative = mustCompile(`^-\s*([0-9]+)$`)
	reDecimal  = regexp.MustCompile(`^([0-9]+)$`)
)

// Evaluate resolves a constant operand of the given bit width.
//
// A token naming a label evaluates to the label address, unchecked.
// Otherwise the token must be a 0b binary or 0x hexadecimal unsigned
// literal, or a (possibly negative) decimal signed literal, within
// range for the bit width.
//
// wraps is set when an unsigned literal has its top bit set, meaning
// the CPU will treat the value as negative.
func (labels Labels) Evaluate(token string, bits int) (value int64, wraps bool, err error) {
	if addr, ok := labels[token]; ok {
		value = int64(addr)
		return
	}

	literal := strings.ToLower(token)

	var digits string
	var base int
	signed := true
	negative := false

	if match := reBinary.FindStringSubmatch(literal); match != nil {
		digits, base, signed = match[1], 2, false
	} else if match := reHex.FindStringSubmatch(literal); match != nil {
		digits, base, signed = match[1], 16, false
	} else if match := reNegative.FindStringSubmatch(literal); match != nil {
		digits, base, negative = match[1], 10, true
	} else if match := reDecimal.FindStringSubmatch(literal); match != nil {
		digits, base = match[1], 10
	} else {
		err = &ErrToken{Token: token, Err: ErrConstantMalformed}
		return
	}

	maxUnsigned := int64(1)<<bits - 1
	maxSigned := int64(1)<<(bits-1) - 1
	minSigned := -(int64(1) << (bits - 1))

	u64, err := strconv.ParseUint(digits, base, 63)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			err = &ErrToken{Token: token, Err: ErrConstantRange}
		} else {
			err = &ErrToken{Token: token, Err: ErrConstantMalformed}
		}
		return
	}
	value = int64(u64)
	if negative {
		value = -value
	}

	lo, hi := minSigned, maxSigned
	if !signed {
		lo, hi = 0, maxUnsigned
	}

	if value < lo || value > hi {
		err = &ErrRange{Token: token, Value: value, Min: lo, Max: hi, Err: ErrConstantRange}
		return
	}

	wraps = !signed && value > maxSigned

	return
}
