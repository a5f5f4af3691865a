// SPDX-License-Identifier: MIT

// Package poly reads and writes the ".poly" text format that carries a
// point list and an edge list.
//
// Two dialects exist and Parse accepts both, even mixed in one file:
//
// Tabular:
//
//	10	2	0	1          points header: count, then the constants 2 0 1
//	0	600	500          id x y
//	...
//	13	1                edges header: count, then the constant 1
//	0	0	1	0          edge-id from to flag
//
// Labelled:
//
//	id: 0 x: 600 y: 500
//	id_vertice: 0 de: 0 para: 1 ignorar: 0
//
// Header counts are informational and never checked against the records
// that follow; edge IDs and flags are read but not kept. Blank lines,
// lines not starting with a number and lines with the wrong column count
// are skipped. A recognised line whose numbers do not parse is an error
// carrying its line number (ErrSyntax).
//
// The points header "N 2 0 1" has the same shape as a tabular edge record,
// so it is only honoured before the edges section starts.
package poly
