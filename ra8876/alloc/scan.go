package alloc

// scanner finds the start index of n consecutive free entries no lower than
// start, or returns -1.
type scanner interface {
	scan(table []uint32, start, n int) int
}

var (
	_ scanner = forwardScan{}
	_ scanner = backwardScan{}
)

// forwardScan returns the lowest fitting index.
type forwardScan struct{}

func (forwardScan) scan(table []uint32, start, n int) int {
	for i := start; i+n <= len(table); {
		j := firstUsed(table, i, n)
		if j < 0 {
			return i
		}
		// every candidate up to j overlaps it
		i = j + 1
	}
	return -1
}

// backwardScan returns the highest fitting index.
type backwardScan struct{}

func (backwardScan) scan(table []uint32, start, n int) int {
	for i := len(table) - n; i >= start; {
		j := firstUsed(table, i, n)
		if j < 0 {
			return i
		}
		i = j - n
	}
	return -1
}

// scannerFor maps a fixed policy to its scan. PolicyBySize is resolved per
// request by Allocator.policyFor before this is called.
func scannerFor(p Policy) scanner {
	if p == PolicyBackward {
		return backwardScan{}
	}
	return forwardScan{}
}

// firstUsed returns the first occupied index in [i, i+n), or -1.
func firstUsed(table []uint32, i, n int) int {
	for j := i; j < i+n; j++ {
		if table[j] != 0 {
			return j
		}
	}
	return -1
}
