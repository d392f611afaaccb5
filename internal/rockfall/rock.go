package rockfall

// Rock is a falling rock. Its moves are not checked against the walls or
// the pile; callers consult Pile.BlockedLeft and friends first.
type Rock struct {
	kind   Kind
	rows   []Row // lowest first
	offset int64 // shaft row of rows[0]
}

func (r *Rock) Kind() Kind { return r.kind }

// Rows returns the rock's rows, lowest first. The slice must not be modified.
func (r *Rock) Rows() []Row { return r.rows }

// Offset returns the shaft row holding the rock's lowest row.
func (r *Rock) Offset() int64 { return r.offset }

// Top returns the shaft row just above the rock.
func (r *Rock) Top() int64 { return r.offset + int64(len(r.rows)) }

func (r *Rock) MoveLeft() {
	for i := range r.rows {
		r.rows[i] <<= 1
	}
}

func (r *Rock) MoveRight() {
	for i := range r.rows {
		r.rows[i] >>= 1
	}
}

func (r *Rock) MoveDown() {
	r.offset--
}
