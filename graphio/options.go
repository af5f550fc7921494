package graphio

// defaultMaxLineBytes bounds a single adjacency line (a vertex with ~10^6
// neighbors still fits).
const defaultMaxLineBytes = 16 << 20

// DefaultMaxVertices bounds the header's vertex count; the reader allocates one
// list header per vertex before reading the body.
const DefaultMaxVertices = 1 << 24

// ReadOption configures ReadText and ReadFile.
type ReadOption func(*readConfig)

type readConfig struct {
	strictEdgeCount bool
	maxLineBytes    int
	maxVertices     int
}

func newReadConfig(opts []ReadOption) readConfig {
	cfg := readConfig{strictEdgeCount: true, maxLineBytes: defaultMaxLineBytes, maxVertices: DefaultMaxVertices}
	for _, fn := range opts {
		fn(&cfg)
	}

	return cfg
}

// WithLenientEdgeCount accepts input whose normalized edge count differs from
// the header's m.
func WithLenientEdgeCount() ReadOption {
	return func(c *readConfig) { c.strictEdgeCount = false }
}

// WithMaxLineBytes sets the longest accepted line. Panics if limit < 1.
func WithMaxLineBytes(limit int) ReadOption {
	if limit < 1 {
		panic("graphio: WithMaxLineBytes requires limit ≥ 1")
	}

	return func(c *readConfig) { c.maxLineBytes = limit }
}

// WithMaxVertices sets the largest vertex count accepted in a header.
// Panics if limit < 0.
func WithMaxVertices(limit int) ReadOption {
	if limit < 0 {
		panic("graphio: WithMaxVertices requires limit ≥ 0")
	}

	return func(c *readConfig) { c.maxVertices = limit }
}
