// Package memory implements C3: an arena-style allocator that tracks value
// lifetimes the way the original plorth memory manager does, without
// resorting to unsafe byte-level reinterpretation. Pools hand out accounting
// Cells sized in 8-byte units; the Go garbage collector still owns the real
// backing storage for value payloads, but every managed value's allocation
// and final release are mirrored here so pool pressure, slot reuse, and prompt
// reclamation are all observable and testable exactly as spec.md §4.3
// describes.
package memory

import "sync"

// PoolSize is the size, in bytes, of each arena pool (spec.md §4.3).
const PoolSize = 128 * 1024

// Alignment is the byte alignment every allocation is rounded up to.
const Alignment = 8

func align(n int) int {
	return (n + Alignment - 1) &^ (Alignment - 1)
}

type freeSlot struct {
	offset int
	size   int
}

type pool struct {
	id      int
	bump    int
	free    []freeSlot
	used    int // bytes currently allocated
}

func newPool(id int) *pool {
	return &pool{id: id}
}

func (p *pool) isEmpty() bool {
	return p.used == 0
}

// firstFit scans the free list for the first slot that can satisfy size,
// splitting off any remainder back into the free list.
func (p *pool) firstFit(size int) (offset int, ok bool) {
	for i, s := range p.free {
		if s.size >= size {
			p.free = append(p.free[:i], p.free[i+1:]...)
			if rem := s.size - size; rem > 0 {
				p.free = append(p.free, freeSlot{offset: s.offset + size, size: rem})
			}
			return s.offset, true
		}
	}
	return 0, false
}

func (p *pool) bumpAlloc(size int) (offset int, ok bool) {
	if p.bump+size > PoolSize {
		return 0, false
	}
	offset = p.bump
	p.bump += size
	return offset, true
}

func (p *pool) release(offset, size int) {
	p.free = append(p.free, freeSlot{offset: offset, size: size})
	p.used -= size
}

// Manager owns a set of pools, allocating Cells newest-pool-first and
// releasing pools that become wholly free, except the very first (oldest)
// one, kept around as the perpetual bump arena, and the newest one, matching
// the "non-head/non-tail pool" wording of spec.md §4.3.
type Manager struct {
	mu      sync.Mutex
	pools   []*pool // newest-first order used for allocation
	nextID  int
	live    int
	highWaterPools int
}

// NewManager creates an empty arena with no pools allocated yet.
func NewManager() *Manager {
	return &Manager{}
}

// Cell is an accounting handle for one allocation. It carries no payload;
// callers store their own Go value alongside the Cell and use Release to
// signal that the slot may be reused and the pool's bookkeeping updated.
type Cell struct {
	mgr    *Manager
	poolID int
	offset int
	size   int
}

// Size returns the aligned size of the allocation.
func (c *Cell) Size() int { return c.size }

// Alloc reserves size bytes (rounded up to Alignment) and returns a Cell
// tracking the reservation, per the algorithm in spec.md §4.3: walk pools
// newest-first, first-fit over each pool's free list, else bump-allocate,
// else grow the arena with a new pool.
func (m *Manager) Alloc(size int) *Cell {
	size = align(size)
	if size == 0 {
		size = Alignment
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for i := len(m.pools) - 1; i >= 0; i-- {
		p := m.pools[i]
		if offset, ok := p.firstFit(size); ok {
			p.used += size
			m.live++
			return &Cell{mgr: m, poolID: p.id, offset: offset, size: size}
		}
		if offset, ok := p.bumpAlloc(size); ok {
			p.used += size
			m.live++
			return &Cell{mgr: m, poolID: p.id, offset: offset, size: size}
		}
	}

	p := newPool(m.nextID)
	m.nextID++
	m.pools = append(m.pools, p)
	if len(m.pools) > m.highWaterPools {
		m.highWaterPools = len(m.pools)
	}
	offset, ok := p.bumpAlloc(size)
	if !ok {
		// size exceeds a whole pool; this only happens for pathological
		// allocation requests larger than PoolSize, which the value model
		// never issues (values are small fixed-layout records).
		panic("memory: allocation larger than pool size")
	}
	p.used += size
	m.live++
	return &Cell{mgr: m, poolID: p.id, offset: offset, size: size}
}

// Release returns a Cell's slot to its owning pool's free list. If the pool
// becomes wholly free and is neither the oldest nor the newest pool, it is
// removed from the arena entirely (spec.md §4.3 step 4).
func (c *Cell) Release() {
	if c == nil || c.mgr == nil {
		return
	}
	m := c.mgr
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := -1
	for i, p := range m.pools {
		if p.id == c.poolID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return // pool already released
	}
	p := m.pools[idx]
	p.release(c.offset, c.size)
	m.live--

	if p.isEmpty() && idx != 0 && idx != len(m.pools)-1 {
		m.pools = append(m.pools[:idx], m.pools[idx+1:]...)
	}
	c.mgr = nil
}

// Stats summarizes the arena's current state, exposed for tests and the
// runtime's introspection words.
type Stats struct {
	LivePools int
	LiveCells int
	HighWaterPools int
}

// Stats reports the manager's current pool and allocation counts.
func (m *Manager) Stats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Stats{LivePools: len(m.pools), LiveCells: m.live, HighWaterPools: m.highWaterPools}
}
