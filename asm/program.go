package asm

import (
	"iter"
)

// Line is an instruction or data line placed at an address.
type Line struct {
	LineNo  int
	Address uint32
	Text    string
}

// Comment is a source comment, attached to the address active when it
// was read.
type Comment struct {
	LineNo  int
	Address uint32
	Text    string
}

// Symbol is a label definition.
type Symbol struct {
	LineNo  int
	Address uint32
	Name    string
}

// Entry is an assembled memory word.
type Entry struct {
	LineNo  int
	Address uint32
	Word    Word
}

// Program is the result of assembling a source file.
type Program struct {
	Labels   Labels    // Map of labels to addresses.
	Symbols  []Symbol  // Labels, in definition order.
	Lines    []Line    // Instruction and data lines, in source order.
	Comments []Comment // Comments, in source order.
	Entries  []Entry   // Assembled words, in source order.
	Warnings []Warning // Non-fatal diagnostics.
}

// text returns the instruction text of a source line.
func (prog *Program) text(lineno int) string {
	for _, line := range prog.Lines {
		if line.LineNo == lineno {
			return line.Text
		}
	}
	return ""
}

// Image returns the memory image of the program.
func (prog *Program) Image() (img Image) {
	img = make(Image, len(prog.Entries))
	for _, entry := range prog.Entries {
		img[entry.Address] = entry.Word
	}
	return
}

// Image is a sparse mapping of addresses to words.
type Image map[uint32]Word

// Word returns the word at an address, or zero if unused.
func (img Image) Word(addr uint32) Word {
	return img[addr]
}

// All iterates over every address of memory, in order.
func (img Image) All() iter.Seq2[uint32, Word] {
	return func(yield func(addr uint32, word Word) bool) {
		for addr := range uint32(MEMORY_DEPTH) {
			if !yield(addr, img[addr]) {
				return
			}
		}
	}
}

// LabelsAt iterates over the labels defined at an address, in definition order.
func (prog *Program) LabelsAt(addr uint32) iter.Seq[string] {
	return func(yield func(name string) bool) {
		for _, sym := range prog.Symbols {
			if sym.Address != addr {
				continue
			}
			if !yield(sym.Name) {
				return
			}
		}
	}
}
