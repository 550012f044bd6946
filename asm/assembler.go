// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"bufio"
	"io"
	"math"
	"strings"

	"github.com/golang/glog"
)

const (
	MEMORY_DEPTH = 512              // Number of words of memory.
	MEMORY_LAST  = MEMORY_DEPTH - 1 // Highest valid address.

	LINE_BUFFER = 64 * 1024 // Initial source line buffer size.
)

var (
	reLabel = mustCompile(`^\s*(\w+):(.*)$`)
	reOrg   = mustCompile(`(?i)^org\s+([\w \-]+)$`)
	reWord  = mustCompile(`(?i)^word\s+([\w \-]+)$`)
)

// Assembler is a two pass assembler for the Mini SRC CPU.
//
// An Assembler holds no state between calls to Parse, and may be
// shared between goroutines.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.
}

// firstPass carries the state of the label pass.
type firstPass struct {
	*Program
	address uint32
}

// splitLabels strips the leading 'label:' prefixes from a line.
func splitLabels(line string) (labels []string, rest string) {
	for {
		match := reLabel.FindStringSubmatch(line)
		if match == nil {
			break
		}
		labels = append(labels, match[1])
		line = match[2]
	}

	rest = strings.TrimSpace(line)
	return
}

// parseLine handles a single source line in the label pass.
func (fp *firstPass) parseLine(text string, lineno int) (err error) {
	line, comment, _ := strings.Cut(text, ";")

	labels, inst := splitLabels(line)

	is_inst := len(inst) != 0

	if match := reOrg.FindStringSubmatch(inst); match != nil {
		is_inst = false
		token := strings.TrimSpace(match[1])
		var value int64
		value, _, err = fp.Labels.Evaluate(token, CONST_BITS)
		if err != nil {
			return
		}
		if value < 0 || value > MEMORY_LAST {
			err = &ErrRange{Token: token, Value: value, Min: 0, Max: MEMORY_LAST, Err: ErrAddressRange}
			return
		}
		fp.address = uint32(value)
	}

	// Comments and labels bind to the address after any 'org'.
	if len(comment) != 0 {
		fp.Comments = append(fp.Comments, Comment{LineNo: lineno, Address: fp.address, Text: comment})
	}

	for _, label := range labels {
		_, ok := fp.Labels[label]
		if ok {
			err = &ErrToken{Token: label, Err: ErrLabelDuplicate}
			return
		}
		fp.Labels[label] = fp.address
		fp.Symbols = append(fp.Symbols, Symbol{LineNo: lineno, Address: fp.address, Name: label})
	}

	if !is_inst {
		return
	}

	fp.Lines = append(fp.Lines, Line{LineNo: lineno, Address: fp.address, Text: inst})
	fp.address++

	return
}

// labelPass builds the label table, instruction lines and comments.
func (asm *Assembler) labelPass(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)
	scanner.Buffer(make([]byte, 0, LINE_BUFFER), math.MaxInt)

	var text string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: text, Err: err}
		}
	}()

	fp := &firstPass{
		Program: &Program{Labels: Labels{}},
	}

	for scanner.Scan() {
		text = scanner.Text()
		lineno += 1

		if asm.Verbose {
			glog.Infof("%v: %v", lineno, text)
		}

		err = fp.parseLine(text, lineno)
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		// The line being read.
		lineno += 1
		text = ""
		return
	}

	prog = fp.Program
	return
}

// encodePass encodes every instruction line into the program entries.
func (asm *Assembler) encodePass(prog *Program) (err error) {
	var line Line

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: line.LineNo, Line: line.Text, Err: err}
		}
	}()

	prog.Entries = make([]Entry, 0, len(prog.Lines))

	for _, line = range prog.Lines {
		var word Word
		var warnings []Warning

		if match := reWord.FindStringSubmatch(line.Text); match != nil {
			enc := &encoder{labels: prog.Labels, address: line.Address}
			var value int64
			value, err = enc.constant(match[1], WORD_BITS)
			word = Word(uint32(value))
			warnings = enc.warnings
		} else {
			word, warnings, err = Encode(line.Address, line.Text, prog.Labels)
		}
		if err != nil {
			return
		}

		for _, warn := range warnings {
			warn.LineNo = line.LineNo
			prog.Warnings = append(prog.Warnings, warn)
		}

		if asm.Verbose {
			glog.Infof("%03x: %v ; %v", line.Address, word, line.Text)
		}

		prog.Entries = append(prog.Entries, Entry{LineNo: line.LineNo, Address: line.Address, Word: word})
	}

	return
}

// placePass verifies the entries fit in memory without overlap.
func (asm *Assembler) placePass(prog *Program) (err error) {
	for _, entry := range prog.Entries {
		if entry.Address > MEMORY_LAST {
			err = &ErrSyntax{LineNo: entry.LineNo, Line: prog.text(entry.LineNo), Err: ErrProgramTooLarge}
			return
		}
	}

	used := make(map[uint32]int, len(prog.Entries))
	for _, entry := range prog.Entries {
		prev, ok := used[entry.Address]
		if ok {
			err = &ErrCollision{Address: entry.Address, LineNo: entry.LineNo, PrevLineNo: prev}
			err = &ErrSyntax{LineNo: entry.LineNo, Line: prog.text(entry.LineNo), Err: err}
			return
		}
		used[entry.Address] = entry.LineNo
	}

	return
}

// Parse assembles an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	prog, err = asm.labelPass(input)
	if err != nil {
		return
	}

	err = asm.encodePass(prog)
	if err != nil {
		prog = nil
		return
	}

	err = asm.placePass(prog)
	if err != nil {
		prog = nil
		return
	}

	return
}

// Assemble assembles source text into a Program.
func Assemble(source string) (prog *Program, err error) {
	asm := &Assembler{}
	return asm.Parse(strings.NewReader(source))
}
