package rockfall

import (
	"bufio"
	"fmt"
	"io"
)

// MaxSkylineRows is the largest skyline window a Skyline can hold.
const MaxSkylineRows = 32

// Skyline is a snapshot of the top rows of a pile, topmost first.
// Unused entries past the window are zero.
type Skyline [MaxSkylineRows]Row

// Pile is the settled rock. Rows below offset are gone, either because they
// were pruned as unreachable or because a detected cycle skipped over them;
// they read as solid.
type Pile struct {
	rows   []Row
	offset int64
	rocks  int64
}

// Height returns the number of rows from the floor to the top of the pile.
func (p *Pile) Height() int64 { return p.offset + int64(len(p.rows)) }

// Offset returns the number of rows no longer stored.
func (p *Pile) Offset() int64 { return p.offset }

// Rocks returns the number of rocks settled so far.
func (p *Pile) Rocks() int64 { return p.rocks }

// At returns the row at shaft height y. The floor and anything below the
// stored rows is FullRow; anything above the top is empty.
func (p *Pile) At(y int64) Row {
	if y < p.offset {
		return FullRow
	}
	if i := y - p.offset; i < int64(len(p.rows)) {
		return p.rows[i]
	}
	return 0
}

// BlockedLeft reports whether r is against the left wall or would overlap
// the pile after moving one column left.
func (p *Pile) BlockedLeft(r *Rock) bool {
	for i, row := range r.rows {
		if row&LeftWall != 0 || (row<<1)&p.At(r.offset+int64(i)) != 0 {
			return true
		}
	}
	return false
}

// BlockedRight reports whether r is against the right wall or would overlap
// the pile after moving one column right.
func (p *Pile) BlockedRight(r *Rock) bool {
	for i, row := range r.rows {
		if row&RightWall != 0 || (row>>1)&p.At(r.offset+int64(i)) != 0 {
			return true
		}
	}
	return false
}

// BlockedBelow reports whether r rests on the floor or on the pile.
func (p *Pile) BlockedBelow(r *Rock) bool {
	if r.offset == 0 {
		return true
	}
	for i, row := range r.rows {
		if row&p.At(r.offset+int64(i)-1) != 0 {
			return true
		}
	}
	return false
}

// Settle merges r into the pile and counts it.
func (p *Pile) Settle(r *Rock) {
	p.merge(r)
	p.rocks++
}

func (p *Pile) merge(r *Rock) {
	for i, row := range r.rows {
		idx := r.offset + int64(i) - p.offset
		switch {
		case idx < 0:
			panic(fmt.Sprintf("rockfall: rock at row %d settled below pile offset %d", r.offset+int64(i), p.offset))
		case idx < int64(len(p.rows)):
			p.rows[idx] |= row
		case idx == int64(len(p.rows)):
			p.rows = append(p.rows, row)
		default:
			panic(fmt.Sprintf("rockfall: rock at row %d settled above pile top %d", r.offset+int64(i), p.Height()))
		}
	}
}

// Prune discards every stored row below the highest full row, since no
// rock can pass a full row. It returns the number of rows discarded.
func (p *Pile) Prune() int64 {
	return p.pruneBetween(p.offset, p.Height())
}

// pruneBetween is Prune restricted to full rows in [lo, hi).
func (p *Pile) pruneBetween(lo, hi int64) int64 {
	lo = max(lo, p.offset)
	hi = min(hi, p.Height())
	for y := hi - 1; y >= lo; y-- {
		if p.At(y) != FullRow {
			continue
		}
		n := y - p.offset
		if n == 0 {
			return 0
		}
		p.rows = p.rows[n:]
		p.offset += n
		return n
	}
	return 0
}

// advance jumps the pile ahead by rocks settled rocks and rows of height
// without changing its shape.
func (p *Pile) advance(rocks, rows int64) {
	p.rocks += rocks
	p.offset += rows
}

// Skyline returns the top n rows of the pile, topmost first.
// It panics if n is outside [1, MaxSkylineRows].
func (p *Pile) Skyline(n int) Skyline {
	if n < 1 || n > MaxSkylineRows {
		panic(fmt.Sprintf("rockfall: bogus skyline size %d", n))
	}
	var s Skyline
	top := p.Height() - 1
	for k := 0; k < n; k++ {
		s[k] = p.At(top - int64(k))
	}
	return s
}

// Draw writes the top n rows of the pile to w in the puzzle's notation.
// The floor is drawn as +-------+ when it is within reach; rows that are
// no longer stored are drawn as a single |~~~~~~~| line.
func (p *Pile) Draw(w io.Writer, n int) error {
	bw := bufio.NewWriter(w)
	y := p.Height() - 1
	for ; y >= 0 && n > 0 && y >= p.offset; y, n = y-1, n-1 {
		fmt.Fprintf(bw, "|%v|\n", p.At(y))
	}
	switch {
	case y < 0:
		fmt.Fprintln(bw, "+-------+")
	case n > 0:
		fmt.Fprintln(bw, "|~~~~~~~|")
	}
	return bw.Flush()
}
