package graphio_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvclique/adjacency"
	"github.com/katalvlaran/lvclique/builder"
	"github.com/katalvlaran/lvclique/graphio"
)

func TestReadText_Basic(t *testing.T) {
	in := `# triangle with a tail
4 4

0 1 2
1 0 2
% one-sided list is enough
2 3
3 3
`
	g, err := graphio.ReadText(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 4, g.Order())
	assert.Equal(t, 4, g.EdgeCount())
	assert.Equal(t, []int{0, 1, 3}, g.Neighbors(2))
	assert.Equal(t, []int{2}, g.Neighbors(3), "self-loop dropped")
}

func TestReadText_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
	}{
		{"empty", "", graphio.ErrMissingHeader},
		{"only comments", "# nothing\n\n", graphio.ErrMissingHeader},
		{"one field header", "3\n", graphio.ErrMalformedHeader},
		{"negative n", "-1 0\n", graphio.ErrMalformedHeader},
		{"huge n", "99999999999999 0\n", graphio.ErrMalformedHeader},
		{"n near max int", "4611686018427387903 0\n", graphio.ErrMalformedHeader},
		{"n overflows int", "99999999999999999999999 0\n", graphio.ErrMalformedHeader},
		{"text m", "3 x\n", graphio.ErrMalformedHeader},
		{"bad field", "3 1\n0 one\n", graphio.ErrMalformedLine},
		{"vertex out of range", "3 1\n3 0\n", graphio.ErrVertexOutOfRange},
		{"neighbor out of range", "3 1\n0 -1\n", graphio.ErrVertexOutOfRange},
		{"count mismatch", "3 2\n0 1\n", graphio.ErrEdgeCountMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := graphio.ReadText(strings.NewReader(tc.in))
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, graphio.ErrInput)
		})
	}
}

func TestReadText_Lenient(t *testing.T) {
	g, err := graphio.ReadText(strings.NewReader("3 7\n0 1\n"), graphio.WithLenientEdgeCount())
	require.NoError(t, err)
	assert.Equal(t, 1, g.EdgeCount())
}

func TestReadText_MaxVertices(t *testing.T) {
	_, err := graphio.ReadText(strings.NewReader("4 0\n"), graphio.WithMaxVertices(3))
	assert.ErrorIs(t, err, graphio.ErrMalformedHeader)

	g, err := graphio.ReadText(strings.NewReader("3 0\n"), graphio.WithMaxVertices(3))
	require.NoError(t, err)
	assert.Equal(t, 3, g.Order())

	assert.Panics(t, func() { graphio.WithMaxVertices(-1) })
}

func TestReadText_LineTooLong(t *testing.T) {
	_, err := graphio.ReadText(strings.NewReader("2 1\n0 1\n"), graphio.WithMaxLineBytes(2))
	require.Error(t, err)
	assert.False(t, errors.Is(err, graphio.ErrInput))
	assert.Panics(t, func() { graphio.WithMaxLineBytes(0) })
}

func TestWriteText_RoundTrip(t *testing.T) {
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(5)},
		builder.RandomSparse(40, 0.2), builder.Empty(2), builder.Wheel(6))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, graphio.WriteText(&buf, g))
	back, err := graphio.ReadText(&buf)
	require.NoError(t, err)
	assertSameGraph(t, g, back)
}

func TestGraph6(t *testing.T) {
	// HOG graph 32194, as decoded by gonum's own example.
	g, err := graphio.ReadGraph6("H@BQPS^")
	require.NoError(t, err)
	assert.Equal(t, 9, g.Order())
	assert.Equal(t, []int{3, 4, 5, 6, 7}, g.Neighbors(8))
	assert.Equal(t, []int{5}, g.Neighbors(0))

	again, err := graphio.ReadGraph6(graphio.EncodeGraph6(g))
	require.NoError(t, err)
	assertSameGraph(t, g, again)

	_, err = graphio.ReadGraph6("")
	assert.ErrorIs(t, err, graphio.ErrMalformedGraph6)
	_, err = graphio.ReadGraph6("H@B")
	assert.ErrorIs(t, err, graphio.ErrInput)
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	g, err := builder.BuildGraph(nil, builder.Cycle(5))
	require.NoError(t, err)

	txt := filepath.Join(dir, "c5.txt")
	var buf bytes.Buffer
	require.NoError(t, graphio.WriteText(&buf, g))
	require.NoError(t, os.WriteFile(txt, buf.Bytes(), 0o600))

	g6 := filepath.Join(dir, "c5.G6")
	require.NoError(t, os.WriteFile(g6, []byte(graphio.EncodeGraph6(g)+"\n"), 0o600))

	for _, path := range []string{txt, g6} {
		got, err := graphio.ReadFile(path)
		require.NoError(t, err, path)
		assertSameGraph(t, g, got)
	}

	_, err = graphio.ReadFile(filepath.Join(dir, "missing.txt"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.False(t, errors.Is(err, graphio.ErrInput))

	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("1 0\n0 5\n"), 0o600))
	_, err = graphio.ReadFile(bad)
	assert.ErrorIs(t, err, graphio.ErrVertexOutOfRange)
	assert.Contains(t, err.Error(), bad)
}

func TestWriteCliques(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, graphio.WriteCliques(&buf, [][]int{{0, 1, 2}, {2, 3}, {7}}))
	assert.Equal(t, "0 1 2\n2 3\n7\n", buf.String())

	buf.Reset()
	require.NoError(t, graphio.WriteCliques(&buf, nil))
	assert.Empty(t, buf.String())
}

func assertSameGraph(t *testing.T, want, got *adjacency.Sparse) {
	t.Helper()
	require.Equal(t, want.Order(), got.Order())
	assert.Equal(t, want.Edges(), got.Edges())
}
