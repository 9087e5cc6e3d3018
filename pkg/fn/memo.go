package fn

import (
	"sync"

	"github.com/elves/cons/pkg/logutil"
	"github.com/elves/cons/pkg/vals"
)

var logger = logutil.GetLogger("[fn] ")

// Memo returns a function value that caches the results of f. Arguments are
// hashed with vals.Hash and compared with vals.Equal. Errors are not cached.
//
// The returned function value is safe for concurrent use. Concurrent calls
// with the same arguments may each call f before the result is cached.
func Memo(f Func) Func {
	return &memo{f: f, cache: make(map[uint32][]memoEntry)}
}

type memo struct {
	f     Func
	mutex sync.Mutex
	cache map[uint32][]memoEntry
	calls int
}

type memoEntry struct {
	args []any
	ret  any
}

func (m *memo) Arity() int   { return m.f.Arity() }
func (m *memo) Name() string { return Name(m.f) }

func (m *memo) Call(args ...any) (any, error) {
	h := vals.DJBInit
	for _, arg := range args {
		h = vals.DJBCombine(h, vals.Hash(arg))
	}

	m.mutex.Lock()
	for _, entry := range m.cache[h] {
		if equalArgs(entry.args, args) {
			m.mutex.Unlock()
			return entry.ret, nil
		}
	}
	m.mutex.Unlock()

	ret, err := m.f.Call(args...)
	if err != nil {
		return nil, err
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.calls++
	m.cache[h] = append(m.cache[h], memoEntry{append([]any(nil), args...), ret})
	logger.Printf("memo %s: cached result #%d (hash %#x)", Name(m.f), m.calls, h)
	return ret, nil
}

func equalArgs(xs, ys []any) bool {
	if len(xs) != len(ys) {
		return false
	}
	for i := range xs {
		if !vals.Equal(xs[i], ys[i]) {
			return false
		}
	}
	return true
}
