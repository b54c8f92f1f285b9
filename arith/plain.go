package arith

// Plain is the plaintext reference backend: words are native uint64 and
// every operation is the corresponding machine instruction. It is the
// oracle the encrypted backend is measured against.
type Plain struct{}

var _ Backend[uint64] = Plain{}

func (Plain) Lift(v uint64) uint64 { return v }

func (Plain) Add(a, b uint64) uint64 { return a + b }

func (Plain) Mul(a, b uint64) uint64 { return a * b }

func (Plain) ShiftRight(x uint64, n uint) uint64 { return x >> n }

func (Plain) And(a, b uint64) uint64 { return a & b }

func (Plain) Lsb(x uint64) uint64 { return x & 1 }

func (Plain) Gt(a, b uint64) uint64 {
	if a > b {
		return 1
	}
	return 0
}
