// Package resultstore persists enumeration run summaries and their cliques in
// a bbolt database, so runs over the same graph can be compared later.
//
// Layout:
//
//	runs/<id>            JSON-encoded Run
//	cliques/<id>/<seq>   JSON-encoded sorted vertex list, seq = 1, 2, ...
//
// Run ids are random UUIDs.
package resultstore

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.etcd.io/bbolt"

	"github.com/katalvlaran/lvclique/clique"
)

// openTimeout bounds the wait for the file lock held by another process.
const openTimeout = 5 * time.Second

var (
	bucketRuns    = []byte("runs")
	bucketCliques = []byte("cliques")
)

// ErrNotFound indicates an unknown run id.
var ErrNotFound = errors.New("resultstore: run not found")

// Run is the stored summary of one enumeration run.
type Run struct {
	ID        string        `json:"id"`
	CreatedAt time.Time     `json:"createdAt"`
	Source    string        `json:"source"`
	Vertices  int           `json:"vertices"`
	Edges     int           `json:"edges"`
	Variant   string        `json:"variant"`
	Order     string        `json:"order"`
	Count     int           `json:"count"`
	MaxSize   int           `json:"maxSize"`
	Frames    int64         `json:"frames"`
	Complete  bool          `json:"complete"`
	Elapsed   time.Duration `json:"elapsed"`
	Error     string        `json:"error,omitempty"`
}

// RunFromResult fills the search fields of a Run from res and err.
func RunFromResult(res *clique.Result, err error) Run {
	var r Run
	if res != nil {
		r.Variant = res.Variant.String()
		r.Count = res.Count
		r.MaxSize = res.MaxSize
		r.Frames = res.Frames
		r.Complete = res.Complete
		r.Elapsed = res.Elapsed
	}
	if err != nil {
		r.Error = err.Error()
	}

	return r
}

// Store is a handle on an open database. It is safe for concurrent use.
type Store struct {
	db *bbolt.DB
}

// Open opens or creates the database at path.
func Open(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0o644, &bbolt.Options{Timeout: openTimeout})
	if err != nil {
		return nil, errors.Wrapf(err, "resultstore: open %s", path)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketRuns, bucketCliques} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "resultstore: init buckets")
	}

	return &Store{db: db}, nil
}

// Close releases the database file.
func (s *Store) Close() error {
	return errors.Wrap(s.db.Close(), "resultstore: close")
}

// Save stores run and its cliques in one transaction and returns the run id.
// An empty run.ID is replaced by a new UUID and a zero CreatedAt by the
// current time.
func (s *Store) Save(ctx context.Context, run Run, cliques [][]int) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	summary, err := json.Marshal(run)
	if err != nil {
		return "", errors.Wrap(err, "resultstore: encode run")
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.Bucket(bucketRuns).Put([]byte(run.ID), summary); err != nil {
			return err
		}

		parent := tx.Bucket(bucketCliques)
		if parent.Bucket([]byte(run.ID)) != nil {
			if err := parent.DeleteBucket([]byte(run.ID)); err != nil {
				return err
			}
		}
		b, err := parent.CreateBucket([]byte(run.ID))
		if err != nil {
			return err
		}
		for i, c := range cliques {
			if i%1024 == 0 {
				if err := ctx.Err(); err != nil {
					return err
				}
			}
			seq, err := b.NextSequence()
			if err != nil {
				return err
			}
			val, err := json.Marshal(c)
			if err != nil {
				return err
			}
			if err = b.Put(seqKey(seq), val); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return "", errors.Wrapf(err, "resultstore: save run %s", run.ID)
	}

	return run.ID, nil
}

// Get returns the summary of run id.
func (s *Store) Get(id string) (Run, error) {
	var run Run
	err := s.db.View(func(tx *bbolt.Tx) error {
		val := tx.Bucket(bucketRuns).Get([]byte(id))
		if val == nil {
			return ErrNotFound
		}
		return json.Unmarshal(val, &run)
	})
	if err != nil {
		return Run{}, errors.Wrapf(err, "resultstore: get %s", id)
	}

	return run, nil
}

// List returns every stored run, newest first.
func (s *Store) List() ([]Run, error) {
	var runs []Run
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketRuns).ForEach(func(_, val []byte) error {
			var run Run
			if err := json.Unmarshal(val, &run); err != nil {
				return err
			}
			runs = append(runs, run)
			return nil
		})
	})
	if err != nil {
		return nil, errors.Wrap(err, "resultstore: list")
	}

	slices.SortStableFunc(runs, func(a, b Run) int { return b.CreatedAt.Compare(a.CreatedAt) })

	return runs, nil
}

// Cliques returns the cliques of run id in the order they were saved.
func (s *Store) Cliques(id string) ([][]int, error) {
	var out [][]int
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketCliques).Bucket([]byte(id))
		if b == nil {
			return ErrNotFound
		}
		return b.ForEach(func(_, val []byte) error {
			var c []int
			if err := json.Unmarshal(val, &c); err != nil {
				return err
			}
			out = append(out, c)
			return nil
		})
	})
	if err != nil {
		return nil, errors.Wrapf(err, "resultstore: cliques of %s", id)
	}

	return out, nil
}

// Delete removes run id and its cliques.
func (s *Store) Delete(id string) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		runs := tx.Bucket(bucketRuns)
		if runs.Get([]byte(id)) == nil {
			return ErrNotFound
		}
		if err := runs.Delete([]byte(id)); err != nil {
			return err
		}
		if tx.Bucket(bucketCliques).Bucket([]byte(id)) != nil {
			return tx.Bucket(bucketCliques).DeleteBucket([]byte(id))
		}
		return nil
	})

	return errors.Wrapf(err, "resultstore: delete %s", id)
}

// seqKey encodes seq big-endian so cursor order equals insertion order.
func seqKey(seq uint64) []byte {
	k := make([]byte, 8)
	binary.BigEndian.PutUint64(k, seq)

	return k
}
