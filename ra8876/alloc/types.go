package alloc

// LinesPerBlock is the number of canvas lines held by one block.
const LinesPerBlock = 4

// Policy selects the placement scan.
type Policy uint8

const (
	// PolicyBySize scans forward for requests above LargeThreshold and
	// backward for the rest.
	PolicyBySize Policy = iota

	// PolicyForward always scans forward from StartBlock.
	PolicyForward

	// PolicyBackward always scans backward toward StartBlock.
	PolicyBackward
)

func (p Policy) String() string {
	switch p {
	case PolicyBySize:
		return "by-size"
	case PolicyForward:
		return "forward"
	case PolicyBackward:
		return "backward"
	default:
		return "unknown"
	}
}

// Config describes the arena and the placement rules.
type Config struct {
	// MemSize is the arena size in bytes.
	MemSize uint32

	// BlockSize is the allocation granule in bytes.
	BlockSize uint32

	// StartBlock is the lowest block handed out.
	// Default: 0
	StartBlock int

	// LargeThreshold splits PolicyBySize: sizes above it scan forward.
	// Default: 0 (every non-zero request scans forward)
	LargeThreshold uint32

	// Policy selects the scan.
	// Default: PolicyBySize
	Policy Policy
}

// Run is a live allocation as seen in the table.
type Run struct {
	Block  int    // first block
	Blocks int    // run length
	Offset uint32 // byte offset of the first block
	Size   uint32 // Blocks × BlockSize
}

// BlockSizeFor returns the block size for a canvas of the given width and
// bytes per pixel.
func BlockSizeFor(width, bytesPerPixel int) uint32 {
	return uint32(width * LinesPerBlock * bytesPerPixel)
}
