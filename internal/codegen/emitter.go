package codegen

import (
	"fmt"
	"io"
	"strings"
	"unicode"
)

// Emitter writes generated source one line at a time and tracks the
// indentation level from the structural tokens of each line.
//
// For every line, closing braces lower the level before the line is
// written; opening braces and case labels raise it afterwards, and
// terminating statements (return, panic) lower it afterwards. This matches
// how the case table is emitted and is not a general formatter: a switch
// arm body ends in exactly one terminating statement. The level never drops
// below zero.
//
// The first write error is kept and later lines are dropped.
type Emitter struct {
	w      io.Writer
	indent string
	level  int
	err    error
}

// NewEmitter returns an Emitter writing to w with indent repeated once per level.
func NewEmitter(w io.Writer, indent string) *Emitter {
	return &Emitter{w: w, indent: indent}
}

// Line writes s followed by a newline.
func (e *Emitter) Line(s string) {
	if e.err != nil {
		return
	}

	code := stripComment(s)
	e.setLevel(e.level - strings.Count(code, "}"))

	var sb strings.Builder
	if s != "" {
		sb.WriteString(strings.Repeat(e.indent, e.level))
	}
	sb.WriteString(s)
	sb.WriteByte('\n')
	if _, err := io.WriteString(e.w, sb.String()); err != nil {
		e.err = err
		return
	}

	opens, labels, terms := scanTokens(code)
	e.setLevel(e.level + opens + labels - terms)
}

// Linef formats according to format and writes the result as a line.
func (e *Emitter) Linef(format string, args ...interface{}) {
	e.Line(fmt.Sprintf(format, args...))
}

// Level returns the current indentation level.
func (e *Emitter) Level() int {
	return e.level
}

// Err returns the first write error, if any.
func (e *Emitter) Err() error {
	return e.err
}

func (e *Emitter) setLevel(l int) {
	if l < 0 {
		l = 0
	}
	e.level = l
}

// stripComment drops a trailing line comment. Generated lines never carry
// "//" inside string literals.
func stripComment(s string) string {
	if i := strings.Index(s, "//"); i >= 0 {
		return s[:i]
	}
	return s
}

// scanTokens counts opening braces, case labels and terminating statements.
func scanTokens(code string) (opens, labels, terms int) {
	opens = strings.Count(code, "{")
	words := strings.FieldsFunc(code, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
	})
	for _, w := range words {
		switch w {
		case "case", "default":
			labels++
		case "return", "panic":
			terms++
		}
	}
	return opens, labels, terms
}
