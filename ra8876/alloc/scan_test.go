package alloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanners(t *testing.T) {
	//               0  1  2  3  4  5  6  7
	table := []uint32{1, 0, 0, 2, 2, 0, 0, 0}

	tests := []struct {
		name  string
		s     scanner
		start int
		n     int
		want  int
	}{
		{"forward single", forwardScan{}, 0, 1, 1},
		{"forward pair", forwardScan{}, 0, 2, 1},
		{"forward skips short hole", forwardScan{}, 0, 3, 5},
		{"forward respects start", forwardScan{}, 2, 2, 5},
		{"forward none", forwardScan{}, 0, 4, -1},
		{"backward single", backwardScan{}, 0, 1, 7},
		{"backward triple", backwardScan{}, 0, 3, 5},
		{"backward pair", backwardScan{}, 0, 2, 6},
		{"backward stops at start", backwardScan{}, 6, 3, -1},
		{"backward none", backwardScan{}, 0, 4, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.s.scan(table, tt.start, tt.n))
		})
	}

	high := []uint32{1, 0, 0, 1, 0, 1, 0, 1}
	assert.Equal(t, 1, backwardScan{}.scan(high, 0, 2), "only the low hole fits")
}

func TestScannerFor(t *testing.T) {
	assert.IsType(t, forwardScan{}, scannerFor(PolicyForward))
	assert.IsType(t, backwardScan{}, scannerFor(PolicyBackward))
	assert.IsType(t, forwardScan{}, scannerFor(PolicyBySize))
}
