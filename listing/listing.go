// Package listing renders assembled programs as memory initialisation
// files, with the source text, labels and comments as annotations.
package listing

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ezrec/minisrc/asm"
	"github.com/ezrec/minisrc/translate"
)

var f = translate.From

// BANNER is written at the start and end of each listing.
const BANNER = "Created with minisrc, the Mini SRC assembler"

var (
	ErrDialectUnknown = errors.New(f("invalid format"))
)

// Dialect is a listing file format.
type Dialect int

//go:generate go tool stringer -linecomment -type=Dialect
const (
	DIALECT_MEM = Dialect(0) // mem
	DIALECT_MIF = Dialect(1) // mif
)

// dialects lists every known dialect.
var dialects = []Dialect{DIALECT_MEM, DIALECT_MIF}

// Extension returns the file name extension of the dialect, with the dot.
func (dialect Dialect) Extension() string {
	return "." + dialect.String()
}

// ParseDialect parses a dialect name, ignoring case.
func ParseDialect(name string) (dialect Dialect, err error) {
	for _, dialect = range dialects {
		if strings.EqualFold(name, dialect.String()) {
			return
		}
	}

	err = fmt.Errorf("%w: %v", ErrDialectUnknown, name)
	return
}

// style holds the punctuation of a dialect.
type style struct {
	header  []string
	footer  []string
	remark  string // Comment introducer.
	address string // Format of an entry address.
	word    string // Format of an entry word.
}

var styles = map[Dialect]style{
	DIALECT_MEM: {
		header:  []string{"// " + BANNER},
		footer:  []string{"// " + BANNER},
		remark:  "//",
		address: "%4s",
		word:    " %08X",
	},
	DIALECT_MIF: {
		header: []string{
			"-- " + BANNER,
			fmt.Sprintf("WIDTH=%d;", asm.WORD_BITS),
			fmt.Sprintf("DEPTH=%d;", asm.MEMORY_DEPTH),
			" ",
			"ADDRESS_RADIX=HEX;",
			"DATA_RADIX=HEX;",
			" ",
			"CONTENT BEGIN",
		},
		footer:  []string{"END;", "-- " + BANNER, ""},
		remark:  "--",
		address: "%3s:",
		word:    " %08X;",
	},
}

// annotations indexes the source text of a program by address.
type annotations struct {
	labels   map[uint32][]string
	text     map[uint32]string
	comments map[uint32][]string
}

func annotate(prog *asm.Program) (note *annotations) {
	note = &annotations{
		labels:   map[uint32][]string{},
		text:     map[uint32]string{},
		comments: map[uint32][]string{},
	}

	for _, sym := range prog.Symbols {
		note.labels[sym.Address] = append(note.labels[sym.Address], sym.Name)
	}
	for _, line := range prog.Lines {
		note.text[line.Address] = line.Text
	}
	for _, comment := range prog.Comments {
		note.comments[comment.Address] = append(note.comments[comment.Address], strings.TrimSpace(comment.Text))
	}

	return
}

// remark returns the trailing annotation of an address.
func (note *annotations) remark(addr uint32) (out string) {
	if text, ok := note.text[addr]; ok && len(text) != 0 {
		out += fmt.Sprintf("%-18s", text)
	}
	if comments, ok := note.comments[addr]; ok {
		out += "; " + strings.Join(comments, " ; ")
	}
	return
}

// Write renders the listing of a program to w.
func Write(w io.Writer, dialect Dialect, prog *asm.Program) (err error) {
	st, ok := styles[dialect]
	if !ok {
		err = fmt.Errorf("%w: %v", ErrDialectUnknown, dialect)
		return
	}

	note := annotate(prog)
	out := bufio.NewWriter(w)

	for _, line := range st.header {
		fmt.Fprintln(out, line)
	}

	prefix := ""
	if dialect == DIALECT_MEM {
		prefix = "@"
	}

	for addr, word := range prog.Image().All() {
		for _, label := range note.labels[addr] {
			fmt.Fprintf(out, "%v   %v:\n", st.remark, label)
		}

		fmt.Fprintf(out, st.address, fmt.Sprintf("%v%X", prefix, addr))
		fmt.Fprintf(out, st.word, uint32(word))

		remark := note.remark(addr)
		if len(remark) != 0 {
			fmt.Fprintf(out, " %v %v", st.remark, remark)
		}
		fmt.Fprintln(out)
	}

	fmt.Fprint(out, strings.Join(st.footer, "\n"))

	err = out.Flush()
	return
}

// Render returns the listing of a program as a string.
func Render(dialect Dialect, prog *asm.Program) (text string, err error) {
	var sb strings.Builder
	err = Write(&sb, dialect, prog)
	if err != nil {
		return
	}

	text = sb.String()
	return
}
