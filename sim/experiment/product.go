package experiment

// product enumerates the cartesian product of axis sizes as index tuples in
// row-major order: the first axis is outermost, the last axis advances
// fastest. Any zero-sized axis yields an empty enumeration.
type product struct {
	sizes []int
	idx   []int
	done  bool
}

func newProduct(sizes []int) *product {
	p := &product{sizes: sizes, idx: make([]int, len(sizes))}
	for _, n := range sizes {
		if n <= 0 {
			p.done = true
		}
	}
	return p
}

// next returns the next index tuple. The returned slice is owned by the
// caller. Returns ok=false once the enumeration is exhausted.
func (p *product) next() ([]int, bool) {
	if p.done {
		return nil, false
	}
	out := make([]int, len(p.idx))
	copy(out, p.idx)
	for i := len(p.idx) - 1; i >= 0; i-- {
		p.idx[i]++
		if p.idx[i] < p.sizes[i] {
			return out, true
		}
		p.idx[i] = 0
	}
	p.done = true
	return out, true
}
