package rockfall

import (
	"github.com/rs/zerolog"
	"golang.org/x/exp/maps"
)

// SpawnGap is the number of empty rows left between the top of the pile and
// the bottom of a newly spawned rock.
const SpawnGap = 3

// DefaultSkylineRows is the skyline window used for cycle detection unless
// configured otherwise. Eight rows is enough for the canonical puzzle
// patterns; it is not enough for every pattern, see Options.SkylineRows.
const DefaultSkylineRows = 8

// Options configures a Simulator.
type Options struct {
	// SkylineRows is how many top rows of the pile go into the cycle
	// detection key, in [1, MaxSkylineRows]. Too small a window can match
	// states whose futures differ and give a wrong extrapolated height.
	SkylineRows  int
	DetectCycles bool // DetectCycles enables extrapolation over repeats
	Prune        bool // Prune discards rows below full rows
	Logger       *zerolog.Logger
}

// DefaultOptions returns the standard simulator options.
func DefaultOptions() *Options {
	return &Options{
		SkylineRows:  DefaultSkylineRows,
		DetectCycles: true,
		Prune:        true,
	}
}

// Cycle describes a repeat found during a run.
type Cycle struct {
	Start   int64 // rocks settled at the first occurrence of the state
	Length  int64 // rocks per repeat
	Height  int64 // rows gained per repeat
	Repeats int64 // whole repeats skipped
}

// Result is the outcome of Simulator.Run.
type Result struct {
	Rocks  int64
	Height int64
	Cycle  *Cycle // nil if no repeat was exploited
}

type stateKey struct {
	kind    Kind
	jet     int
	skyline Skyline
}

type snapshot struct {
	rocks, height int64
}

// Simulator drops rocks into a shaft. It is not safe for concurrent use.
type Simulator struct {
	opts Options
	log  zerolog.Logger

	jets jetCursor
	kind Kind
	pile Pile

	seen      map[stateKey]snapshot
	exploited bool
}

// New returns a Simulator with an empty shaft. A nil opts means
// DefaultOptions. It panics if jets is empty or opts.SkylineRows is out of
// range.
func New(jets JetPattern, opts *Options) *Simulator {
	if len(jets) == 0 {
		panic("rockfall: " + ErrNoJets.Error())
	}
	if opts == nil {
		opts = DefaultOptions()
	}
	if opts.SkylineRows < 1 || opts.SkylineRows > MaxSkylineRows {
		panic("rockfall: skyline rows out of range")
	}
	s := &Simulator{
		opts: *opts,
		log:  zerolog.Nop(),
		jets: jetCursor{pattern: jets},
		seen: make(map[stateKey]snapshot),
	}
	if opts.Logger != nil {
		s.log = *opts.Logger
	}
	return s
}

// Pile returns the simulator's pile.
func (s *Simulator) Pile() *Pile { return &s.pile }

// Drop lets the next rock fall until it settles and returns it.
func (s *Simulator) Drop() *Rock {
	r := ShapeAt(s.kind, s.pile.Height()+SpawnGap)
	for {
		switch s.jets.Next() {
		case Left:
			if !s.pile.BlockedLeft(r) {
				r.MoveLeft()
			}
		case Right:
			if !s.pile.BlockedRight(r) {
				r.MoveRight()
			}
		}
		if s.pile.BlockedBelow(r) {
			break
		}
		r.MoveDown()
	}
	s.pile.Settle(r)
	if s.opts.Prune {
		if n := s.pile.pruneBetween(r.Offset(), r.Top()); n > 0 {
			s.log.Trace().Int64("rows", n).Int64("offset", s.pile.Offset()).Msg("pruned unreachable rows")
		}
	}
	s.kind = s.kind.Next()
	return r
}

// Run drops rocks until target rocks have settled in total and returns the
// pile height. With cycle detection enabled, at most one repeat per call is
// used to skip ahead; the remainder is simulated rock by rock.
func (s *Simulator) Run(target int64) Result {
	var res Result
	s.exploited = false
	maps.Clear(s.seen)
	for s.pile.Rocks() < target {
		r := s.Drop()
		if s.opts.DetectCycles && !s.exploited {
			if c := s.observe(r.Kind(), target); c != nil {
				res.Cycle = c
			}
		}
	}
	res.Rocks = s.pile.Rocks()
	res.Height = s.pile.Height()
	s.log.Debug().
		Int64("rocks", res.Rocks).
		Int64("height", res.Height).
		Bool("cycle", res.Cycle != nil).
		Msg("run complete")
	return res
}

// observe records the state after a rock of kind k settled and, on the
// first repeat, advances the pile by as many whole repeats as fit before
// target.
func (s *Simulator) observe(k Kind, target int64) *Cycle {
	height := s.pile.Height()
	if height < int64(s.opts.SkylineRows) {
		return nil
	}
	key := stateKey{kind: k, jet: s.jets.last, skyline: s.pile.Skyline(s.opts.SkylineRows)}
	rocks := s.pile.Rocks()
	prev, ok := s.seen[key]
	if !ok {
		s.seen[key] = snapshot{rocks: rocks, height: height}
		return nil
	}
	c := &Cycle{
		Start:  prev.rocks,
		Length: rocks - prev.rocks,
		Height: height - prev.height,
	}
	c.Repeats = (target - rocks) / c.Length
	s.pile.advance(c.Repeats*c.Length, c.Repeats*c.Height)
	maps.Clear(s.seen)
	s.exploited = true
	s.log.Debug().
		Int64("start", c.Start).
		Int64("length", c.Length).
		Int64("height", c.Height).
		Int64("repeats", c.Repeats).
		Msg("cycle found")
	return c
}

// Height returns the pile height after target rocks fall through jets.
func Height(jets JetPattern, target int64, opts *Options) int64 {
	return New(jets, opts).Run(target).Height
}
