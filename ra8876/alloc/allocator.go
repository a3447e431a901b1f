package alloc

import (
	"fmt"

	"github.com/joshuapare/ra8876kit/internal/logger"
)

// Allocator is a first-fit block allocator over a fixed arena.
// It is not safe for concurrent use.
type Allocator struct {
	cfg   Config
	table []uint32
	used  int
}

// New builds an allocator with an empty table.
func New(cfg Config) (*Allocator, error) {
	if cfg.BlockSize == 0 || cfg.BlockSize > cfg.MemSize {
		return nil, fmt.Errorf("%w: block size %d for arena %d", ErrInvalidArgument, cfg.BlockSize, cfg.MemSize)
	}
	n := int(cfg.MemSize / cfg.BlockSize)
	if cfg.StartBlock < 0 || cfg.StartBlock >= n {
		return nil, fmt.Errorf("%w: start block %d of %d", ErrInvalidArgument, cfg.StartBlock, n)
	}
	return &Allocator{cfg: cfg, table: make([]uint32, n)}, nil
}

// Config returns the configuration the allocator was built with.
func (a *Allocator) Config() Config { return a.cfg }

// BlockSize returns the allocation granule in bytes.
func (a *Allocator) BlockSize() uint32 { return a.cfg.BlockSize }

// Blocks returns the number of table entries.
func (a *Allocator) Blocks() int { return len(a.table) }

// Allocate reserves size bytes and returns the byte offset of the run.
func (a *Allocator) Allocate(size uint32) (uint32, error) {
	if size == 0 {
		return 0, fmt.Errorf("%w: zero size", ErrInvalidArgument)
	}
	n := int(size / a.cfg.BlockSize)
	if size%a.cfg.BlockSize != 0 {
		n++
	}

	idx := scannerFor(a.policyFor(size)).scan(a.table, a.cfg.StartBlock, n)
	if idx < 0 {
		logger.Debug("alloc: no run", "size", size, "blocks", n, "used", a.UsedPercentage())
		return 0, fmt.Errorf("%w: %d blocks", ErrOutOfMemory, n)
	}

	for i := idx; i < idx+n; i++ {
		a.table[i] = uint32(n)
	}
	a.used += n

	off := uint32(idx) * a.cfg.BlockSize
	logger.Debug("alloc: allocate", "size", size, "blocks", n, "offset", off)
	return off, nil
}

// Free releases the run starting at offset. offset must be a value returned
// by Allocate; interior offsets are not detected.
func (a *Allocator) Free(offset uint32) error {
	if offset >= a.cfg.MemSize {
		return fmt.Errorf("%w: 0x%X", ErrOutOfBounds, offset)
	}
	idx := int(offset / a.cfg.BlockSize)
	if idx >= len(a.table) {
		return fmt.Errorf("%w: block %d", ErrOutOfBounds, idx)
	}

	n := int(a.table[idx])
	for i := idx; i < idx+n && i < len(a.table); i++ {
		if a.table[i] != 0 {
			a.table[i] = 0
			a.used--
		}
	}
	logger.Debug("alloc: free", "offset", offset, "blocks", n)
	return nil
}

// UsedPercentage reports the share of occupied blocks, truncated.
func (a *Allocator) UsedPercentage() int {
	return a.used * 100 / len(a.table)
}

// Table returns a copy of the allocation table.
func (a *Allocator) Table() []uint32 {
	out := make([]uint32, len(a.table))
	copy(out, a.table)
	return out
}

// Runs lists live allocations in ascending block order.
func (a *Allocator) Runs() []Run {
	var runs []Run
	for i := 0; i < len(a.table); {
		n := int(a.table[i])
		if n == 0 {
			i++
			continue
		}
		runs = append(runs, Run{
			Block:  i,
			Blocks: n,
			Offset: uint32(i) * a.cfg.BlockSize,
			Size:   uint32(n) * a.cfg.BlockSize,
		})
		i += n
	}
	return runs
}

func (a *Allocator) policyFor(size uint32) Policy {
	if a.cfg.Policy != PolicyBySize {
		return a.cfg.Policy
	}
	if size > a.cfg.LargeThreshold {
		return PolicyForward
	}
	return PolicyBackward
}
