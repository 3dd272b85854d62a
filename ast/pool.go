package ast

import (
	"sync"

	"github.com/arbor-ast/go-arbor/debug"
	"github.com/arbor-ast/go-arbor/span"
)

// Pooling policy. Integers outside [PoolIntMin, PoolIntMax] and texts longer
// than PoolMaxTextLen are never pooled; the text shards additionally stop
// inserting (but keep serving hits) once they hold PoolMaxEntries values.
const (
	PoolIntMin     = -128
	PoolIntMax     = 127
	PoolMaxTextLen = 64
	PoolMaxEntries = 1024
)

// Pool deduplicates small immutable literal leaves. It holds four
// independent caches, one per value category, each behind its own lock, so
// concurrent construction from multiple goroutines is safe and the locks
// never nest. Construct pools explicitly and pass them to whatever builds
// trees; tests get isolation by using a fresh pool.
//
// Only zero-span requests are served from the cache: a literal built with a
// real source span is positionally unique and always constructed fresh, so
// pooling never distorts span-sensitive equality.
type Pool struct {
	ints   shard[int64]
	bools  shard[bool]
	texts  shard[string]
	idents shard[string]
}

// NewPool returns an empty pool.
func NewPool() *Pool {
	p := &Pool{}
	p.texts.limit = PoolMaxEntries
	p.idents.limit = PoolMaxEntries
	return p
}

// PoolStats is a point-in-time snapshot of pool effectiveness.
type PoolStats struct {
	Hits    uint64
	Misses  uint64
	HitRate float64
	Ints    int
	Bools   int
	Texts   int
	Idents  int
}

// shard is one bounded memoization cache. limit == 0 means unbounded; once
// len(m) reaches limit, further distinct values are constructed but not
// cached. There is no eviction.
type shard[K comparable] struct {
	mu     sync.Mutex
	m      map[K]Node
	limit  int
	hits   uint64
	misses uint64
}

func (s *shard[K]) getOrCreate(key K, factory func() Node) Node {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n, ok := s.m[key]; ok {
		s.hits++
		return n
	}
	s.misses++
	n := factory()
	if s.limit == 0 || len(s.m) < s.limit {
		if s.m == nil {
			s.m = map[K]Node{}
		}
		s.m[key] = n
	}
	return n
}

func (s *shard[K]) size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.m)
}

func (s *shard[K]) counters() (uint64, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits, s.misses
}

func (s *shard[K]) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m = nil
	s.hits = 0
	s.misses = 0
}

// IntLit returns the shared literal for v when v is poolable, constructing
// a fresh node otherwise.
func (p *Pool) IntLit(sp span.Span, v int64) *IntLit {
	if !sp.IsZero() || v < PoolIntMin || v > PoolIntMax {
		return NewIntLit(sp, v)
	}
	return p.ints.getOrCreate(v, func() Node { return NewIntLit(sp, v) }).(*IntLit)
}

// BoolLit returns the shared literal for v.
func (p *Pool) BoolLit(sp span.Span, v bool) *BoolLit {
	if !sp.IsZero() {
		return NewBoolLit(sp, v)
	}
	return p.bools.getOrCreate(v, func() Node { return NewBoolLit(sp, v) }).(*BoolLit)
}

// StringLit returns the shared literal for v when v is short enough to
// pool, constructing a fresh node otherwise.
func (p *Pool) StringLit(sp span.Span, v string) *StringLit {
	if !sp.IsZero() || len(v) > PoolMaxTextLen {
		return NewStringLit(sp, v)
	}
	return p.texts.getOrCreate(v, func() Node { return NewStringLit(sp, v) }).(*StringLit)
}

// Ident returns the shared identifier for name when it is short enough to
// pool, constructing a fresh node otherwise.
func (p *Pool) Ident(sp span.Span, name string) *Ident {
	if !sp.IsZero() || len(name) > PoolMaxTextLen {
		return NewIdent(sp, name)
	}
	return p.idents.getOrCreate(name, func() Node { return NewIdent(sp, name) }).(*Ident)
}

// Stats snapshots hit/miss counters and per-category sizes.
func (p *Pool) Stats() PoolStats {
	st := PoolStats{
		Ints:   p.ints.size(),
		Bools:  p.bools.size(),
		Texts:  p.texts.size(),
		Idents: p.idents.size(),
	}
	for _, hm := range [][2]uint64{
		collect(&p.ints), collect(&p.bools), collect(&p.texts), collect(&p.idents),
	} {
		st.Hits += hm[0]
		st.Misses += hm[1]
	}
	if total := st.Hits + st.Misses; total > 0 {
		st.HitRate = float64(st.Hits) / float64(total)
	}
	return st
}

func collect[K comparable](s *shard[K]) [2]uint64 {
	h, m := s.counters()
	return [2]uint64{h, m}
}

// Clear drops every cached value and resets the counters. Shared instances
// already placed in trees stay valid; they just stop being handed out.
func (p *Pool) Clear() {
	if debug.Pool() {
		st := p.Stats()
		debug.Logf("ast: pool clear: hits=%d misses=%d ints=%d bools=%d texts=%d idents=%d",
			st.Hits, st.Misses, st.Ints, st.Bools, st.Texts, st.Idents)
	}
	p.ints.clear()
	p.bools.clear()
	p.texts.clear()
	p.idents.clear()
}
