// Package parser reads the line-oriented input grammar:
//
//	<budget>
//	<P>
//	P x <id> <category> <performance> <cost> <spec1> <spec2>
//	<K>
//	K x <kit_id> <cpu_id> <mobo_id> <gpu_id> <ram_id> <psu_id>
//
// Fields are whitespace-delimited and blank lines are ignored. A bad
// budget or P line aborts the read; every other malformed record is
// dropped with a discard marker and the read continues.
package parser

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"kitcheck/core/types"
	"kitcheck/internal/errors"
	"kitcheck/internal/logging"
)

// Section identifies which part of the input a record came from
type Section string

const (
	// SectionComponent is the component listing
	SectionComponent Section = "component"

	// SectionKit is the kit listing
	SectionKit Section = "kit"
)

// Discard records a dropped input row and why it was dropped.
// Discards are not errors; they exist so callers can account for
// rows-in versus records-out.
type Discard struct {
	// Section is the input section the row belonged to
	Section Section `json:"section"`

	// Line is the raw input line
	Line string `json:"line"`

	// Reason explains why the row was dropped
	Reason string `json:"reason"`
}

// Document is the fully materialized input: budget, inventory rows
// and candidate kits, plus the rows dropped along the way
type Document struct {
	// Budget is the spending limit applied to every kit
	Budget decimal.Decimal `json:"budget"`

	// Components are the valid inventory rows in input order
	Components []types.Component `json:"components"`

	// Kits are the valid candidate kits in input order
	Kits []types.Kit `json:"kits"`

	// Discards are the rows dropped during parsing
	Discards []Discard `json:"discards,omitempty"`
}

// ReadDocument consumes the entire input stream. It fails only when
// the budget or component-count header is missing or non-numeric;
// that failure maps to the zero/no-build result upstream. A missing
// or non-numeric kit-count header yields an empty kit list instead.
func ReadDocument(r io.Reader) (*Document, error) {
	lines := newLineReader(r)

	budget, ok := lines.nextIntField()
	if !ok {
		return nil, errors.Input("missing or non-numeric budget line")
	}

	componentCount, ok := lines.nextIntField()
	if !ok {
		return nil, errors.Input("missing or non-numeric component count")
	}

	doc := &Document{Budget: decimal.NewFromInt(budget)}

	for i := int64(0); i < componentCount; i++ {
		fields, raw, ok := lines.next()
		if !ok {
			break // stream shorter than declared, not an error
		}
		c, reason := parseComponent(fields)
		if reason != "" {
			doc.discard(SectionComponent, raw, reason)
			continue
		}
		doc.Components = append(doc.Components, c)
	}

	kitCount, ok := lines.nextIntField()
	if !ok {
		kitCount = 0
	}

	for i := int64(0); i < kitCount; i++ {
		fields, raw, ok := lines.next()
		if !ok {
			break
		}
		if len(fields) < 6 {
			doc.discard(SectionKit, raw, "fewer than six fields")
			continue
		}
		doc.Kits = append(doc.Kits, types.Kit{
			ID:            fields[0],
			CPUID:         fields[1],
			MotherboardID: fields[2],
			GPUID:         fields[3],
			RAMID:         fields[4],
			PSUID:         fields[5],
		})
	}

	return doc, nil
}

func (d *Document) discard(section Section, line, reason string) {
	d.Discards = append(d.Discards, Discard{Section: section, Line: line, Reason: reason})
	logging.Debug("dropped input row",
		zap.String("section", string(section)),
		zap.String("reason", reason),
		zap.String("line", line))
}

// parseComponent validates a component row. It returns a non-empty
// reason when the row must be dropped.
func parseComponent(fields []string) (types.Component, string) {
	if len(fields) < 6 {
		return types.Component{}, "fewer than six fields"
	}

	performance, err := strconv.Atoi(fields[2])
	if err != nil {
		return types.Component{}, "non-integer performance score"
	}

	cost, err := decimal.NewFromString(fields[3])
	if err != nil || !cost.IsInteger() {
		return types.Component{}, "non-integer cost"
	}

	return types.Component{
		ID:          fields[0],
		Category:    types.Category(fields[1]),
		Performance: performance,
		Cost:        cost,
		Spec1:       fields[4],
		Spec2:       fields[5],
	}, ""
}

// lineReader yields whitespace-split fields of non-blank lines
type lineReader struct {
	scanner *bufio.Scanner
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{scanner: bufio.NewScanner(r)}
}

// next returns the fields and raw text of the next non-blank line
func (lr *lineReader) next() ([]string, string, bool) {
	for lr.scanner.Scan() {
		raw := lr.scanner.Text()
		fields := strings.Fields(raw)
		if len(fields) == 0 {
			continue
		}
		return fields, raw, true
	}
	return nil, "", false
}

// nextIntField parses the first field of the next non-blank line as a
// base-10 integer
func (lr *lineReader) nextIntField() (int64, bool) {
	fields, _, ok := lr.next()
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
