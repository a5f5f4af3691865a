// SPDX-License-Identifier: MIT

package poly

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/polyroute/core"
)

// ErrSyntax indicates a recognised record with an unparsable number.
var ErrSyntax = errors.New("poly: syntax error")

// Dialect identifies which record syntax a document used.
type Dialect int

const (
	// DialectUnknown means no point or edge record was found.
	DialectUnknown Dialect = iota
	// DialectTabular is the whitespace-separated column form.
	DialectTabular
	// DialectLabelled is the "id: … x: … y: …" form.
	DialectLabelled
	// DialectMixed means records of both forms were found.
	DialectMixed
)

func (d Dialect) String() string {
	switch d {
	case DialectTabular:
		return "tabular"
	case DialectLabelled:
		return "labelled"
	case DialectMixed:
		return "mixed"
	default:
		return "unknown"
	}
}

// Document is the parsed content of a .poly file.
type Document struct {
	Points  []core.Point
	Edges   []core.Edge
	Dialect Dialect
}

var (
	labelledPoint = regexp.MustCompile(`^id:\s*(\S+)\s+x:\s*(\S+)\s+y:\s*(\S+)`)
	labelledEdge  = regexp.MustCompile(`^id_vertice:\s*\S+\s+de:\s*(\S+)\s+para:\s*(\S+)`)
)

type section int

const (
	sectionNone section = iota
	sectionPoints
	sectionEdges
)

// parser holds the state of one Parse call.
type parser struct {
	doc      *Document
	section  section
	line     int
	tabular  bool
	labelled bool
}

// Parse reads a .poly document from r.
func Parse(r io.Reader) (*Document, error) {
	p := &parser{doc: &Document{}}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		p.line++
		if err := p.parseLine(strings.TrimSpace(sc.Text())); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("poly: read: %w", err)
	}

	switch {
	case p.tabular && p.labelled:
		p.doc.Dialect = DialectMixed
	case p.tabular:
		p.doc.Dialect = DialectTabular
	case p.labelled:
		p.doc.Dialect = DialectLabelled
	}

	return p.doc, nil
}

// ParseFile opens and parses the file at path.
func ParseFile(path string) (*Document, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("poly: open %s: %w", path, err)
	}
	defer f.Close()

	doc, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

func (p *parser) parseLine(line string) error {
	if line == "" {
		return nil
	}

	if m := labelledEdge.FindStringSubmatch(line); m != nil {
		e, err := p.edge(m[1], m[2])
		if err != nil {
			return err
		}
		p.doc.Edges = append(p.doc.Edges, e)
		p.labelled = true
		return nil
	}
	if m := labelledPoint.FindStringSubmatch(line); m != nil {
		pt, err := p.point(m[1], m[2], m[3])
		if err != nil {
			return err
		}
		p.doc.Points = append(p.doc.Points, pt)
		p.labelled = true
		return nil
	}

	f := strings.Fields(line)
	if !isNumber(f[0]) {
		return nil
	}
	switch {
	case isPointsHeader(f) && p.section != sectionEdges:
		p.section = sectionPoints
		return nil
	case isEdgesHeader(f):
		p.section = sectionEdges
		return nil
	}

	switch {
	case p.section == sectionPoints && len(f) == 3:
		pt, err := p.point(f[0], f[1], f[2])
		if err != nil {
			return err
		}
		p.doc.Points = append(p.doc.Points, pt)
		p.tabular = true
	case p.section == sectionEdges && len(f) == 4:
		e, err := p.edge(f[1], f[2])
		if err != nil {
			return err
		}
		p.doc.Edges = append(p.doc.Edges, e)
		p.tabular = true
	}

	return nil
}

func (p *parser) point(id, x, y string) (core.Point, error) {
	pid, err := strconv.Atoi(id)
	if err != nil {
		return core.Point{}, p.syntax("point id", id)
	}
	px, err := strconv.ParseFloat(x, 64)
	if err != nil {
		return core.Point{}, p.syntax("x", x)
	}
	py, err := strconv.ParseFloat(y, 64)
	if err != nil {
		return core.Point{}, p.syntax("y", y)
	}

	return core.Point{ID: pid, X: px, Y: py}, nil
}

func (p *parser) edge(from, to string) (core.Edge, error) {
	a, err := strconv.Atoi(from)
	if err != nil {
		return core.Edge{}, p.syntax("edge from", from)
	}
	b, err := strconv.Atoi(to)
	if err != nil {
		return core.Edge{}, p.syntax("edge to", to)
	}

	return core.Edge{From: a, To: b}, nil
}

func (p *parser) syntax(field, value string) error {
	return fmt.Errorf("%w: line %d: bad %s %q", ErrSyntax, p.line, field, value)
}

// isPointsHeader matches "N 2 0 1".
func isPointsHeader(f []string) bool {
	return len(f) == 4 && isCount(f[0]) && f[1] == "2" && f[2] == "0" && f[3] == "1"
}

// isEdgesHeader matches "M 1".
func isEdgesHeader(f []string) bool {
	return len(f) == 2 && isCount(f[0]) && f[1] == "1"
}

func isNumber(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

func isCount(s string) bool {
	n, err := strconv.Atoi(s)
	return err == nil && n >= 0
}
