package memory

import "testing"

func TestAllocTracksLiveCells(t *testing.T) {
	m := NewManager()
	c1 := m.Alloc(16)
	c2 := m.Alloc(32)

	stats := m.Stats()
	if stats.LiveCells != 2 {
		t.Fatalf("LiveCells = %d, want 2", stats.LiveCells)
	}
	if stats.LivePools != 1 {
		t.Fatalf("LivePools = %d, want 1", stats.LivePools)
	}

	c1.Release()
	c2.Release()
	if got := m.Stats().LiveCells; got != 0 {
		t.Fatalf("LiveCells after releasing all = %d, want 0", got)
	}
}

func TestAllocRoundsUpToAlignment(t *testing.T) {
	m := NewManager()
	c := m.Alloc(1)
	if c.Size() != Alignment {
		t.Fatalf("Size() = %d, want %d (rounded up to Alignment)", c.Size(), Alignment)
	}
	c2 := m.Alloc(9)
	if c2.Size() != 16 {
		t.Fatalf("Size() = %d, want 16", c2.Size())
	}
}

func TestAllocGrowsToNewPoolWhenExhausted(t *testing.T) {
	m := NewManager()
	var cells []*Cell
	// Fill the first pool completely with PoolSize/Alignment cells.
	for i := 0; i < PoolSize/Alignment; i++ {
		cells = append(cells, m.Alloc(Alignment))
	}
	if got := m.Stats().LivePools; got != 1 {
		t.Fatalf("LivePools after exactly filling pool 0 = %d, want 1", got)
	}

	m.Alloc(Alignment) // forces a second pool
	if got := m.Stats().LivePools; got != 2 {
		t.Fatalf("LivePools after overflow alloc = %d, want 2", got)
	}
	if got := m.Stats().HighWaterPools; got != 2 {
		t.Fatalf("HighWaterPools = %d, want 2", got)
	}

	for _, c := range cells {
		c.Release()
	}
}

func TestReleaseReusesFreedSlotFirstFit(t *testing.T) {
	m := NewManager()
	a := m.Alloc(16)
	b := m.Alloc(16)
	c := m.Alloc(16)
	_ = c

	b.Release() // frees the middle slot

	d := m.Alloc(16)
	if got := m.Stats().LiveCells; got != 3 {
		t.Fatalf("LiveCells = %d, want 3", got)
	}
	if d.offset != b.offset {
		t.Fatalf("new cell offset = %d, want the freed slot's offset %d", d.offset, b.offset)
	}
	_ = a
	_ = d
}

func TestMiddlePoolRemovedWhenWhollyFreed(t *testing.T) {
	m := NewManager()

	// Fill pool 0, then force pools 1 and 2 into existence.
	fill := func() []*Cell {
		var cells []*Cell
		for i := 0; i < PoolSize/Alignment; i++ {
			cells = append(cells, m.Alloc(Alignment))
		}
		return cells
	}
	pool0 := fill()
	pool1 := fill()
	pool2cell := m.Alloc(Alignment)

	if got := m.Stats().LivePools; got != 3 {
		t.Fatalf("LivePools = %d, want 3", got)
	}

	for _, c := range pool1 {
		c.Release()
	}
	// Pool 1 is now wholly free and is neither the first nor the last pool,
	// so it should be dropped from the arena (spec.md §4.3 step 4).
	if got := m.Stats().LivePools; got != 2 {
		t.Fatalf("LivePools after freeing the middle pool = %d, want 2", got)
	}

	for _, c := range pool0 {
		c.Release()
	}
	pool2cell.Release()
}

func TestReleaseNilCellIsNoOp(t *testing.T) {
	var c *Cell
	c.Release() // must not panic
}

func TestDoubleReleaseIsNoOp(t *testing.T) {
	m := NewManager()
	c := m.Alloc(16)
	c.Release()
	c.Release() // must not panic or double-decrement
	if got := m.Stats().LiveCells; got != 0 {
		t.Fatalf("LiveCells after double release = %d, want 0", got)
	}
}
