// Package asm implements the two pass assembler for the Mini SRC CPU.
//
// The Mini SRC is a teaching CPU with sixteen 32-bit registers, a 5-bit
// opcode and a 512 word memory. Instructions are encoded in one of five
// layouts (R, I, B, J and M), each with the opcode in bits 31..27.
//
// The first pass strips comments and labels, applies 'org' directives and
// assigns an address to every instruction. The second pass encodes each
// instruction, or stores the literal of a 'word' directive, and the
// resulting words are checked to fit in memory without overlap.
package asm
