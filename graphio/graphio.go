// Package graphio reads and writes the plain-text graph format used by the
// longest-path tooling.
//
// Input format:
//
//	n m            header: vertex and edge counts
//	u v w          one line per edge: endpoints and weight
//
// The reader is deliberately tolerant, matching the format's original
// consumers: blank lines are skipped, fewer edge lines than the header
// promises are accepted, lines with fewer than three fields are ignored, and
// extra fields beyond the third are ignored. It is NOT a validator — callers
// own the guarantee that the stream is a graph file at all.
//
// Output format mirrors the solvers' boundary contract: the path length on
// the first line, the space-joined vertex sequence on the second.
package graphio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/longpath/core"
)

// Sentinel errors for stream decoding.
var (
	// ErrEmptyInput indicates the stream held no non-blank lines.
	ErrEmptyInput = errors.New("graphio: empty input")

	// ErrBadHeader indicates the first non-blank line is not "n m".
	ErrBadHeader = errors.New("graphio: malformed header line")

	// ErrBadWeight indicates an edge line whose weight does not parse.
	ErrBadWeight = errors.New("graphio: malformed edge weight")
)

// Read decodes a graph from r.
//
// An input that parses to zero vertices surfaces core.ErrEmptyGraph from
// Build; callers should treat that as the degenerate (0, []) instance per
// the solver contract, not as a fatal condition.
func Read(r io.Reader) (*core.Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	// 1. Header: first non-blank line, "n m".
	var (
		line   string
		fields []string
		seen   bool
		m      int
	)
	for sc.Scan() {
		line = strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields = strings.Fields(line)
		if len(fields) < 2 {
			return nil, ErrBadHeader
		}
		if _, err := strconv.Atoi(fields[0]); err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadHeader, line)
		}
		var err error
		if m, err = strconv.Atoi(fields[1]); err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadHeader, line)
		}
		seen = true

		break
	}
	if !seen {
		if err := sc.Err(); err != nil {
			return nil, err
		}

		return nil, ErrEmptyInput
	}

	// 2. Edge lines: up to m well-formed lines; short lines are skipped.
	edges := make([]core.Edge, 0, m)
	var w float64
	for len(edges) < m && sc.Scan() {
		line = strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields = strings.Fields(line)
		if len(fields) < 3 {
			continue
		}
		var err error
		if w, err = strconv.ParseFloat(fields[2], 64); err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadWeight, line)
		}
		edges = append(edges, core.Edge{U: fields[0], V: fields[1], W: w})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	// The vertex set is the union of edge endpoints; the header's n is
	// advisory only, again matching the original consumers.
	return core.Build(nil, edges)
}

// Write encodes a graph to w in the same format Read accepts. Edges are
// emitted once each, in ascending (u, v) order, so output is deterministic.
func Write(w io.Writer, g *core.Graph) error {
	if g == nil {
		_, err := fmt.Fprintln(w, "0 0")

		return err
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d %d\n", g.Order(), g.Size()); err != nil {
		return err
	}

	var (
		u, v string
		wt   float64
	)
	for _, u = range g.Vertices() {
		for _, v = range g.NeighborIDs(u) {
			if u >= v {
				continue
			}
			wt, _ = g.Weight(u, v)
			if _, err := fmt.Fprintf(bw, "%s %s %s\n", u, v, formatWeight(wt)); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}

// WriteResult encodes a solve outcome: length line, then the space-joined
// path (an empty path yields an empty second line).
func WriteResult(w io.Writer, length float64, path []string) error {
	_, err := fmt.Fprintf(w, "%s\n%s\n", formatWeight(length), strings.Join(path, " "))

	return err
}

// formatWeight renders a weight with no trailing zeros ("30", "2.5").
func formatWeight(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
