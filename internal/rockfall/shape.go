// Package rockfall simulates rocks falling into a narrow shaft while jets
// of gas push them sideways, and reports how tall the resulting pile grows.
//
// Each shaft row is a Row bitmask. Bit 6 is the leftmost column and bit 0
// the rightmost, so shifting a row left moves its rock toward the left wall.
package rockfall

import (
	"fmt"
	"strings"
)

// Width is the number of columns in the shaft.
const Width = 7

// Row is the occupancy of one shaft row, one bit per column.
type Row uint8

const (
	LeftWall  Row = 1 << (Width - 1)
	RightWall Row = 1
	FullRow   Row = 1<<Width - 1
)

// String renders r as the puzzle does, '#' for rock and '.' for air,
// leftmost column first.
func (r Row) String() string {
	var sb strings.Builder
	for bit := LeftWall; bit != 0; bit >>= 1 {
		if r&bit != 0 {
			sb.WriteByte('#')
		} else {
			sb.WriteByte('.')
		}
	}
	return sb.String()
}

// Kind identifies one of the five rock shapes.
type Kind uint8

const (
	HBar   Kind = iota // ####
	Plus               // .#. / ### / .#.
	Ell                // ..# / ..# / ###
	VBar               // # x4
	Square             // ## / ##

	NumKinds = 5
)

// shapes holds each kind's rows, lowest first, already shifted so the
// rock's left edge is two columns from the left wall.
var shapes = [NumKinds][]Row{
	HBar:   {0b0011110},
	Plus:   {0b0001000, 0b0011100, 0b0001000},
	Ell:    {0b0011100, 0b0000100, 0b0000100},
	VBar:   {0b0010000, 0b0010000, 0b0010000, 0b0010000},
	Square: {0b0011000, 0b0011000},
}

var kindNames = [NumKinds]string{"hbar", "plus", "ell", "vbar", "square"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Next returns the kind that falls after k.
func (k Kind) Next() Kind {
	return (k + 1) % NumKinds
}

// Rows returns a copy of k's rows at their spawn columns, lowest first.
func (k Kind) Rows() []Row {
	return append([]Row(nil), shapes[k]...)
}

// ShapeAt returns a new rock of kind k whose lowest row sits at offset.
func ShapeAt(k Kind, offset int64) *Rock {
	return &Rock{kind: k, rows: k.Rows(), offset: offset}
}
