package graphio

import (
	"bufio"
	"io"
	"strconv"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/graph/encoding/graph6"

	"github.com/katalvlaran/lvclique/adjacency"
)

// WriteText writes g in the "n m" text format with one line per vertex,
// listing its full (symmetric) neighbor list. ReadText(WriteText(g)) equals g.
func WriteText(w io.Writer, g *adjacency.Sparse) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 64)

	buf = strconv.AppendInt(buf[:0], int64(g.Order()), 10)
	buf = append(buf, ' ')
	buf = strconv.AppendInt(buf, int64(g.EdgeCount()), 10)
	buf = append(buf, '\n')
	if _, err := bw.Write(buf); err != nil {
		return errors.Wrap(err, "graphio: write header")
	}

	for v := 0; v < g.Order(); v++ {
		buf = strconv.AppendInt(buf[:0], int64(v), 10)
		for _, u := range g.Neighbors(v) {
			buf = append(buf, ' ')
			buf = strconv.AppendInt(buf, int64(u), 10)
		}
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return errors.Wrapf(err, "graphio: write vertex %d", v)
		}
	}

	return errors.Wrap(bw.Flush(), "graphio: flush")
}

// WriteCliques writes one clique per line as space-separated vertex ids, in
// the order given.
func WriteCliques(w io.Writer, cliques [][]int) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 64)
	for i, c := range cliques {
		buf = buf[:0]
		for j, v := range c {
			if j > 0 {
				buf = append(buf, ' ')
			}
			buf = strconv.AppendInt(buf, int64(v), 10)
		}
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return errors.Wrapf(err, "graphio: write clique %d", i)
		}
	}

	return errors.Wrap(bw.Flush(), "graphio: flush")
}

// EncodeGraph6 returns the graph6 encoding of g.
func EncodeGraph6(g *adjacency.Sparse) string {
	return string(graph6.Encode(ToGonum(g)))
}
