package clique

import (
	"fmt"
	"slices"
	"sync"

	"github.com/katalvlaran/lvclique/adjacency"
)

// SinkConfig configures a Sink.
type SinkConfig struct {
	// Dedup discards a report that equals or is a subset of a recorded clique.
	Dedup bool

	// Collect keeps accepted cliques for Cliques().
	Collect bool

	// Verify, if non-nil, makes the sink reject reports that are not maximal in it.
	Verify adjacency.Model

	// OnClique receives a private copy of every accepted clique.
	OnClique func(c []int) error
}

// Sink is the terminal consumer of the search. It is safe for concurrent use;
// reports are serialized, and so are OnClique invocations.
//
// Deduplication keeps two indexes over recorded cliques: a canonical key map for
// exact repeats and an inverted vertex → clique posting index for the subset test.
// A subset candidate must contain every vertex of the report, so only the
// shortest posting list among the report's vertices needs scanning.
type Sink struct {
	mu  sync.Mutex
	cfg SinkConfig

	keys     map[string]struct{}
	recorded [][]int
	postings map[int][]int

	cliques   [][]int
	count     int
	maxSize   int
	discarded int
	rejected  int
}

// NewSink returns an empty Sink.
func NewSink(cfg SinkConfig) *Sink {
	s := &Sink{cfg: cfg}
	if cfg.Dedup {
		s.keys = make(map[string]struct{})
		s.postings = make(map[int][]int)
	}

	return s
}

// Report offers clique c to the sink. c is copied and sorted; the caller may
// reuse it. The empty set is ignored. accepted is false when c was rejected as
// non-maximal or discarded as a duplicate/subset. A non-nil error comes from
// the OnClique hook; the clique is counted before the hook runs.
// Complexity: O(|c| log |c|) without dedup; dedup adds O(k · |c|) where k is the
// length of the shortest posting list among c's vertices.
func (s *Sink) Report(c []int) (accepted bool, err error) {
	if len(c) == 0 {
		return false, nil
	}
	sc := sortedCopy(c)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cfg.Verify != nil && !IsMaximal(s.cfg.Verify, sc) {
		s.rejected++
		return false, nil
	}

	if s.cfg.Dedup {
		key := cliqueKey(sc)
		if _, ok := s.keys[key]; ok || s.coveredBy(sc) {
			s.discarded++
			return false, nil
		}
		s.record(key, sc)
	}

	s.count++
	if len(sc) > s.maxSize {
		s.maxSize = len(sc)
	}
	if s.cfg.Collect {
		s.cliques = append(s.cliques, sc)
	}

	if s.cfg.OnClique != nil {
		if err = s.cfg.OnClique(slices.Clone(sc)); err != nil {
			return true, fmt.Errorf("clique: OnClique hook for %v: %w", sc, err)
		}
	}

	return true, nil
}

// coveredBy reports whether sorted clique c is a subset of a recorded clique.
func (s *Sink) coveredBy(c []int) bool {
	shortest := -1
	for _, v := range c {
		ids, ok := s.postings[v]
		if !ok {
			return false // v belongs to no recorded clique
		}
		if shortest < 0 || len(ids) < len(s.postings[shortest]) {
			shortest = v
		}
	}

	for _, id := range s.postings[shortest] {
		rec := s.recorded[id]
		if len(rec) >= len(c) && adjacency.IntersectCount(c, rec) == len(c) {
			return true
		}
	}

	return false
}

func (s *Sink) record(key string, c []int) {
	id := len(s.recorded)
	s.recorded = append(s.recorded, c)
	s.keys[key] = struct{}{}
	for _, v := range c {
		s.postings[v] = append(s.postings[v], id)
	}
}

// Count returns the number of accepted cliques.
func (s *Sink) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.count
}

// MaxSize returns the size of the largest accepted clique.
func (s *Sink) MaxSize() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.maxSize
}

// Cliques returns the accepted cliques in report order (nil unless Collect).
// The outer slice is a copy; the inner slices must not be modified.
func (s *Sink) Cliques() [][]int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.cliques)
}

// fill copies the sink counters into res.
func (s *Sink) fill(res *Result) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res.Cliques = slices.Clone(s.cliques)
	res.Count = s.count
	res.MaxSize = s.maxSize
	res.Discarded = s.discarded
	res.Rejected = s.rejected
}
