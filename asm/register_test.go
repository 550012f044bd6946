package asm

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupRegister(t *testing.T) {
	assert := assert.New(t)

	for name, index := range registerMap {
		for _, spelling := range []string{name, strings.ToUpper(name)} {
			reg, err := LookupRegister(spelling)
			assert.NoError(err, spelling)
			assert.Equal(index, reg, spelling)
			assert.True(reg >= 0 && reg < REGISTER_COUNT, spelling)
		}
	}

	reg, err := LookupRegister("Sp")
	assert.NoError(err)
	assert.Equal(Register(9), reg)
}

func TestLookupRegisterUnknown(t *testing.T) {
	assert := assert.New(t)

	for _, name := range []string{"", "r16", "zero", "pc", "r-1", "t7"} {
		_, err := LookupRegister(name)
		assert.True(errors.Is(err, ErrRegisterUnknown), name)

		var et *ErrToken
		if assert.True(errors.As(err, &et), name) {
			assert.Equal(name, et.Token)
		}
	}
}

func TestRegisterNames(t *testing.T) {
	assert := assert.New(t)

	names := RegisterNames()
	assert.Equal(len(registerMap), len(names))
	assert.Contains(names, "r15")
	assert.Contains(names, "at")
	assert.IsIncreasing(names)
}
