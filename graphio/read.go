package graphio

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/graph/encoding/graph6"

	"github.com/katalvlaran/lvclique/adjacency"
)

// Graph6Ext is the file extension that ReadFile decodes as graph6.
const Graph6Ext = ".g6"

// ReadText parses the "n m" text format from r.
//
// Steps:
//  1. Skip blank and comment lines; the first remaining line is the header.
//     A vertex count above the limit (DefaultMaxVertices, WithMaxVertices) is
//     rejected with ErrMalformedHeader.
//  2. Every body line appends its neighbors to the list of its first field.
//  3. Lists are symmetrized and deduplicated.
//  4. Unless WithLenientEdgeCount is given, the normalized edge count must equal m.
func ReadText(r io.Reader, opts ...ReadOption) (*adjacency.Sparse, error) {
	cfg := newReadConfig(opts)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, min(4096, cfg.maxLineBytes)), cfg.maxLineBytes)

	// 1. Header
	var (
		n, m   int
		lineNo int
		header bool
	)
	for !header && sc.Scan() {
		lineNo++
		fields, skip := splitLine(sc.Text())
		if skip {
			continue
		}
		if len(fields) != 2 {
			return nil, errors.Wrapf(ErrMalformedHeader, "line %d: want 2 fields, got %d", lineNo, len(fields))
		}
		var err error
		if n, err = strconv.Atoi(fields[0]); err != nil || n < 0 {
			return nil, errors.Wrapf(ErrMalformedHeader, "line %d: vertex count %q", lineNo, fields[0])
		}
		// n sizes the list table below; reject it before allocating
		if n > cfg.maxVertices {
			return nil, errors.Wrapf(ErrMalformedHeader, "line %d: vertex count %d exceeds limit %d", lineNo, n, cfg.maxVertices)
		}
		if m, err = strconv.Atoi(fields[1]); err != nil || m < 0 {
			return nil, errors.Wrapf(ErrMalformedHeader, "line %d: edge count %q", lineNo, fields[1])
		}
		header = true
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "graphio: read header")
	}
	if !header {
		return nil, ErrMissingHeader
	}

	// 2. Body
	lists := make([][]int, n)
	for sc.Scan() {
		lineNo++
		fields, skip := splitLine(sc.Text())
		if skip {
			continue
		}
		ids := make([]int, len(fields))
		for i, f := range fields {
			id, err := strconv.Atoi(f)
			if err != nil {
				return nil, errors.Wrapf(ErrMalformedLine, "line %d: field %d %q", lineNo, i+1, f)
			}
			if id < 0 || id >= n {
				return nil, errors.Wrapf(ErrVertexOutOfRange, "line %d: id %d with n=%d", lineNo, id, n)
			}
			ids[i] = id
		}
		v := ids[0]
		lists[v] = append(lists[v], ids[1:]...)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrapf(err, "graphio: read line %d", lineNo+1)
	}

	// 3. Normalize
	g, err := adjacency.NewSparseFromLists(lists)
	if err != nil {
		return nil, errors.Wrap(err, "graphio: build adjacency")
	}

	// 4. Edge count
	if cfg.strictEdgeCount && g.EdgeCount() != m {
		return nil, errors.Wrapf(ErrEdgeCountMismatch, "header m=%d, found %d", m, g.EdgeCount())
	}

	return g, nil
}

// splitLine returns the whitespace-separated fields of line, or skip=true for
// blank and comment lines.
func splitLine(line string) (fields []string, skip bool) {
	fields = strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") || strings.HasPrefix(fields[0], "%") {
		return nil, true
	}

	return fields, false
}

// ReadGraph6 decodes a graph6 string. Vertex i of the result is node i of the
// encoding.
func ReadGraph6(s string) (*adjacency.Sparse, error) {
	enc := graph6.Graph(strings.TrimSpace(s))
	if len(enc) == 0 || !graph6.IsValid(enc) {
		return nil, errors.Wrapf(ErrMalformedGraph6, "%q", string(enc))
	}

	g, _, err := FromGonum(enc)
	if err != nil {
		return nil, err
	}

	return g, nil
}

// ReadFile loads path, decoding graph6 for the Graph6Ext extension and the
// text format otherwise.
func ReadFile(path string, opts ...ReadOption) (*adjacency.Sparse, error) {
	if strings.EqualFold(filepath.Ext(path), Graph6Ext) {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "graphio: open %s", path)
		}
		// graph6 files may hold several graphs; only the first line is read.
		line, _, _ := bytes.Cut(data, []byte("\n"))
		g, err := ReadGraph6(string(line))
		if err != nil {
			return nil, errors.Wrap(err, path)
		}

		return g, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "graphio: open %s", path)
	}
	defer f.Close()

	g, err := ReadText(f, opts...)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}

	return g, nil
}
