package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"io"
	"strings"

	errs "github.com/23skdu/colfilter/internal/errors"
	"github.com/23skdu/colfilter/internal/metrics"
)

// LiteralBase selects how case labels are written.
type LiteralBase string

const (
	BaseHex     LiteralBase = "hex"
	BaseDecimal LiteralBase = "decimal"
)

// ParseLiteralBase converts a configuration string to a LiteralBase.
func ParseLiteralBase(s string) (LiteralBase, error) {
	switch b := LiteralBase(strings.ToLower(s)); b {
	case BaseHex, BaseDecimal:
		return b, nil
	default:
		return "", errs.NewValidationError("parse_base", fmt.Sprintf("unknown literal base %q", s)).
			WithContext("base", s)
	}
}

// label renders a mask as a case label literal.
func (b LiteralBase) label(m Mask) string {
	if b == BaseDecimal {
		return fmt.Sprintf("%d", uint8(m))
	}
	return fmt.Sprintf("%#x", uint8(m))
}

// Options controls the generated file.
type Options struct {
	// Package is the package clause of the generated file.
	Package string
	// FuncName is the name of the generated generic function.
	FuncName string
	// Generator is named in the "Code generated" header.
	Generator string
	// Base is the literal form of the case labels.
	Base LiteralBase
	// Format runs the output through gofmt. Without it the emitter's own
	// indentation is kept.
	Format bool
}

// DefaultOptions returns the options used for internal/filter.
func DefaultOptions() Options {
	return Options{
		Package:   "filter",
		FuncName:  "compactUnrolled",
		Generator: "genfilter",
		Base:      BaseHex,
		Format:    true,
	}
}

// Validate checks that the options produce a compilable file.
func (o Options) Validate() error {
	if !token.IsIdentifier(o.Package) || o.Package == "_" {
		return errs.NewValidationError("options", "package must be a Go identifier").
			WithContext("package", o.Package)
	}
	if !token.IsIdentifier(o.FuncName) || o.FuncName == "_" {
		return errs.NewValidationError("options", "function name must be a Go identifier").
			WithContext("func", o.FuncName)
	}
	if o.Generator == "" || strings.ContainsAny(o.Generator, "\r\n") {
		return errs.NewValidationError("options", "generator name must be a single non-empty line").
			WithContext("generator", o.Generator)
	}
	if _, err := ParseLiteralBase(string(o.Base)); err != nil {
		return err
	}
	return nil
}

// Source returns the generated file for opts.
func Source(opts Options) ([]byte, error) {
	if err := opts.Validate(); err != nil {
		metrics.CodegenRunsTotal.WithLabelValues("invalid").Inc()
		return nil, err
	}

	var buf bytes.Buffer
	e := NewEmitter(&buf, "\t")
	emitHeader(e, opts)
	table := Table()
	for i := range table {
		emitCase(e, table[i], opts.Base)
	}
	emitFooter(e)
	if err := e.Err(); err != nil {
		metrics.CodegenRunsTotal.WithLabelValues("error").Inc()
		return nil, errs.WrapGenerationError(err, "emit", "writing case table")
	}

	out := buf.Bytes()
	if opts.Format {
		formatted, err := format.Source(out)
		if err != nil {
			metrics.CodegenRunsTotal.WithLabelValues("error").Inc()
			return nil, errs.WrapGenerationError(err, "format", "generated source does not parse")
		}
		out = formatted
	}

	metrics.CodegenRunsTotal.WithLabelValues("success").Inc()
	metrics.CodegenCasesEmittedTotal.Add(NumMasks)
	return out, nil
}

// Generate writes the generated file for opts to w.
func Generate(w io.Writer, opts Options) error {
	src, err := Source(opts)
	if err != nil {
		return err
	}
	if _, err := w.Write(src); err != nil {
		return errs.WrapGenerationError(err, "write", "writing generated source")
	}
	return nil
}

func emitHeader(e *Emitter, opts Options) {
	e.Linef("// Code generated by %s. DO NOT EDIT.", opts.Generator)
	e.Line("")
	e.Linef("package %s", opts.Package)
	e.Line("")
	e.Linef("// %s copies the elements of source selected by the set bits of", opts.FuncName)
	e.Line("// current into target, starting at target[rest] and keeping source order.")
	e.Line("// It returns the number of elements copied, the popcount of current.")
	e.Line("// source must hold at least 8 elements and target at least")
	e.Line("// rest+popcount(current).")
	e.Linef("func %s[T any](target, source []T, current uint8, rest int) int {", opts.FuncName)
	e.Linef("_ = source[%d]", MaskWidth-1)
	e.Line("switch current {")
}

func emitCase(e *Emitter, c Case, base LiteralBase) {
	e.Linef("case %s:", base.label(c.Mask))
	for _, cp := range c.Copies {
		e.Linef("target[rest+%d] = source[%d]", cp.Slot, cp.Source)
	}
	e.Linef("return %d", c.Count())
}

// emitFooter closes the switch with an unreachable default arm. Go does not
// check integer switches for exhaustiveness and requires a terminating
// statement, so the arm stands in for the missing return.
func emitFooter(e *Emitter) {
	e.Line("default:")
	e.Line(`panic("unreachable")`)
	e.Line("}")
	e.Line("}")
}
