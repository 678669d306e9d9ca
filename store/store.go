package store

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/katalvlaran/segcolor/coloring"
	"github.com/katalvlaran/segcolor/instance"
)

// DefaultDir is the solutions directory used when none is configured.
const DefaultDir = "temp"

// Store reads and writes solution files in one directory.
type Store struct {
	dir    string
	logger *slog.Logger
	mu     sync.Mutex
}

// Option configures a Store.
type Option func(*Store)

// WithLogger logs persisted improvements to l.
func WithLogger(l *slog.Logger) Option {
	return func(st *Store) {
		if l != nil {
			st.logger = l
		}
	}
}

// New returns a store rooted at dir ("" ⇒ DefaultDir).
func New(dir string, opts ...Option) *Store {
	if dir == "" {
		dir = DefaultDir
	}
	st := &Store{dir: dir, logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, fn := range opts {
		fn(st)
	}

	return st
}

// Dir returns the solutions directory.
func (st *Store) Dir() string { return st.dir }

// Path returns the file holding the solution of instance id.
func (st *Store) Path(id string) string { return filepath.Join(st.dir, id+".json") }

// Load returns the stored solution for ins. found is false, with a nil
// error, when no file exists.
func (st *Store) Load(ins *instance.Instance) (sol *coloring.Solution, found bool, err error) {
	f, err := os.Open(st.Path(ins.ID()))
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("store: %w", err)
	}
	defer f.Close()

	sol, err = Decode(bufio.NewReader(f), ins)
	if err != nil {
		return nil, false, fmt.Errorf("store: %s: %w", f.Name(), err)
	}

	return sol, true, nil
}

// Best returns the stored solution when it is valid, otherwise the trivial
// colouring of ins.
func (st *Store) Best(ins *instance.Instance) (*coloring.Solution, error) {
	sol, found, err := st.Load(ins)
	if err != nil {
		return nil, err
	}
	if !found || !sol.Valid() {
		return coloring.New(ins), nil
	}

	return sol, nil
}

// SaveIfBetter persists sol when it is valid and better than the stored
// solution. It reports whether a file was written. An invalid sol yields
// ErrInvalidSolution wrapping the verification error.
func (st *Store) SaveIfBetter(sol *coloring.Solution) (bool, error) {
	if err := sol.Verify(); err != nil {
		return false, fmt.Errorf("%w: %s: %w", ErrInvalidSolution, sol.Instance().ID(), err)
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	stored, found, err := st.Load(sol.Instance())
	if err != nil && !errors.Is(err, ErrMalformed) && !errors.Is(err, ErrMismatch) {
		return false, err
	}
	if found && !sol.IsBetter(stored) {
		return false, nil
	}
	if err := st.write(sol); err != nil {
		return false, err
	}
	st.logger.Info("improvement saved",
		slog.String("instance", sol.Instance().ID()),
		slog.Int("colors", sol.NumColors()),
		slog.String("path", st.Path(sol.Instance().ID())))

	return true, nil
}

// write replaces the solution file atomically.
func (st *Store) write(sol *coloring.Solution) error {
	path := st.Path(sol.Instance().ID())
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("store: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("store: %w", err)
	}
	w := bufio.NewWriter(tmp)
	err = Encode(w, sol)
	if err == nil {
		err = w.Flush()
	}
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Rename(tmp.Name(), path)
	}
	if err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("store: write %s: %w", path, err)
	}

	return nil
}
