package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/ra8876kit/ra8876"
	"github.com/joshuapare/ra8876kit/ra8876/alloc"
	"github.com/joshuapare/ra8876kit/ra8876/canvas"
	"github.com/joshuapare/ra8876kit/ra8876/sim"
)

type memmapOptions struct {
	width, height int
	mode          string
	policy        string
	threshold     string
	allocs        []string
	frees         []string
	columns       int
	rows          int
}

var memmapOpts = memmapOptions{}

func init() {
	cmd := newMemmapCmd()
	f := cmd.Flags()
	f.IntVar(&memmapOpts.width, "width", 800, "Canvas width in pixels")
	f.IntVar(&memmapOpts.height, "height", 600, "Canvas height in pixels")
	f.StringVar(&memmapOpts.mode, "mode", "rgb565", "Canvas color mode")
	f.StringVar(&memmapOpts.policy, "policy", "by-size", "Placement policy: by-size, forward or backward")
	f.StringVar(&memmapOpts.threshold, "threshold", "0", "Size above which by-size scans forward")
	f.StringSliceVar(&memmapOpts.allocs, "alloc", nil, "Sizes to allocate, in order (e.g. 4096,64k)")
	f.StringSliceVar(&memmapOpts.frees, "free", nil, "Offsets to free after allocating")
	f.IntVar(&memmapOpts.columns, "columns", 64, "Map cells per row")
	f.IntVar(&memmapOpts.rows, "rows", 16, "Maximum map rows")
	rootCmd.AddCommand(cmd)
}

func newMemmapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "memmap",
		Short: "Show the SDRAM allocator layout for a series of allocations",
		Long: `The memmap command runs allocations and frees against a simulated
controller and prints the resulting block map. Blocks below the allocator's
start block hold the visible canvas.

Example:
  ra8876ctl memmap --alloc 64k,128k,64k --free 0x1F6000
  ra8876ctl memmap --alloc 1m --policy backward --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMemmap(memmapOpts)
		},
	}
}

type allocResult struct {
	Size   uint32 `json:"size"`
	Offset uint32 `json:"offset"`
	Error  string `json:"error,omitempty"`
}

type freeResult struct {
	Offset uint32 `json:"offset"`
	Error  string `json:"error,omitempty"`
}

type memmapReport struct {
	BlockSize   uint32        `json:"block_size"`
	Blocks      int           `json:"blocks"`
	StartBlock  int           `json:"start_block"`
	UsedPercent int           `json:"used_percent"`
	Allocations []allocResult `json:"allocations"`
	Frees       []freeResult  `json:"frees"`
	Runs        []alloc.Run   `json:"runs"`
}

func runMemmap(o memmapOptions) error {
	mode, err := parseMode(o.mode)
	if err != nil {
		return err
	}
	policy, err := parsePolicy(o.policy)
	if err != nil {
		return err
	}
	threshold, err := parseSize(o.threshold)
	if err != nil {
		return err
	}

	opts := ra8876.DefaultOptions()
	opts.Policy = policy
	opts.LargeThreshold = threshold
	dev, err := ra8876.New(sim.New(nil), opts)
	if err != nil {
		return err
	}
	if err := dev.SetCanvas(canvas.Descriptor{Width: o.width, Height: o.height, Mode: mode}); err != nil {
		return err
	}

	rep := memmapReport{Allocations: []allocResult{}, Frees: []freeResult{}}
	for _, s := range o.allocs {
		size, err := parseSize(s)
		if err != nil {
			return err
		}
		r := allocResult{Size: size}
		off, err := dev.Allocate(size)
		if err != nil {
			r.Error = err.Error()
		} else {
			r.Offset = off
		}
		printVerbose("alloc %d -> 0x%X %s\n", size, r.Offset, r.Error)
		rep.Allocations = append(rep.Allocations, r)
	}
	for _, s := range o.frees {
		off, err := parseSize(s)
		if err != nil {
			return err
		}
		r := freeResult{Offset: off}
		if err := dev.Free(off); err != nil {
			r.Error = err.Error()
		}
		rep.Frees = append(rep.Frees, r)
	}

	m, err := dev.Arena()
	if err != nil {
		return err
	}
	rep.BlockSize = m.BlockSize()
	rep.Blocks = m.Blocks()
	rep.StartBlock = m.Config().StartBlock
	rep.UsedPercent = m.UsedPercentage()
	rep.Runs = m.Runs()
	if rep.Runs == nil {
		rep.Runs = []alloc.Run{}
	}

	if jsonOut {
		return printJSON(rep)
	}
	printMemmap(rep, m.Table(), o.columns, o.rows)
	return nil
}

func printMemmap(rep memmapReport, table []uint32, columns, rows int) {
	printInfo("%s\n", render(headerStyle, "SDRAM allocator"))
	printInfo("  block size: %d bytes, %d blocks, canvas holds blocks 0-%d\n",
		rep.BlockSize, rep.Blocks, rep.StartBlock-1)
	printInfo("  used: %d%%\n\n", rep.UsedPercent)

	for _, a := range rep.Allocations {
		if a.Error != "" {
			printInfo("  alloc %-10d %s\n", a.Size, a.Error)
			continue
		}
		printInfo("  alloc %-10d 0x%08X\n", a.Size, a.Offset)
	}
	for _, f := range rep.Frees {
		status := "ok"
		if f.Error != "" {
			status = f.Error
		}
		printInfo("  free  0x%08X %s\n", f.Offset, status)
	}

	printInfo("\n%s\n", blockMap(table, rep.StartBlock, columns, rows))
	printInfo("  %s canvas  %s free  %s allocation (one letter per run)\n",
		render(reservedStyle, "#"), render(freeStyle, "."), render(runStyle(0), "A"))
}

// blockMap draws one cell per group of blocks. A cell shows the first run
// that touches it, else # when it lies below start, else a dot.
func blockMap(table []uint32, start, columns, rows int) string {
	if columns <= 0 {
		columns = 64
	}
	if rows <= 0 {
		rows = 16
	}
	per := (len(table) + columns*rows - 1) / (columns * rows)
	per = max(per, 1)

	owner := make([]int, len(table))
	for i := range owner {
		owner[i] = -1
	}
	run := 0
	for i := 0; i < len(table); {
		n := int(table[i])
		if n == 0 {
			i++
			continue
		}
		for j := i; j < i+n && j < len(table); j++ {
			owner[j] = run
		}
		run++
		i += n
	}

	var b strings.Builder
	cells := (len(table) + per - 1) / per
	for c := 0; c < cells; c++ {
		if c > 0 && c%columns == 0 {
			b.WriteByte('\n')
		}
		lo, hi := c*per, min((c+1)*per, len(table))
		cell := render(freeStyle, ".")
		if hi <= start {
			cell = render(reservedStyle, "#")
		}
		for i := lo; i < hi; i++ {
			if owner[i] >= 0 {
				cell = render(runStyle(owner[i]), string(rune('A'+owner[i]%26)))
				break
			}
		}
		b.WriteString(cell)
	}
	return render(gridStyle, b.String())
}
