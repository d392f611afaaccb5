package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rockpile/aoc"
	"github.com/rockpile/aoc/internal/config"
	"github.com/rockpile/aoc/internal/logger"
	"github.com/rockpile/aoc/internal/rockfall"
)

const (
	day17Sample      = ">>><<><>><<<>><>>><<<>>><<<><<<>><>><<>>"
	day17SampleSmall = 3068
	day17SampleLarge = 1514285714288
)

type day17Options struct {
	*rootOptions
	input       string
	sample      bool
	rocks       int64
	draw        int
	skylineRows int
	noCycles    bool
}

func newDay17Cmd(ro *rootOptions) *cobra.Command {
	o := &day17Options{rootOptions: ro}
	cmd := &cobra.Command{
		Use:   "day17",
		Short: "Pyroclastic Flow: height of a pile of falling rocks",
		Long: `Drop rocks into a 7-wide shaft while jets push them left and right,
then report how tall the pile is after 2022 rocks and after one trillion.

Examples:
  aoc day17 -i 17.input
  aoc day17 --sample -i 17.input
  aoc day17 -i 17.input --skyline-rows 24`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDay17(cmd, o)
		},
	}

	cmd.Flags().StringVarP(&o.input, "input", "i", "", "Jet pattern input file")
	cmd.Flags().BoolVar(&o.sample, "sample", false, "Check the sample pattern's known answers first")
	cmd.Flags().Int64VarP(&o.rocks, "rocks", "n", 0, "Also report the height after this many rocks")
	cmd.Flags().IntVar(&o.draw, "draw", 0, "Draw the top rows of the pile after the small target")
	cmd.Flags().IntVar(&o.skylineRows, "skyline-rows", 0, fmt.Sprintf("Pile rows in the cycle key, 1-%d (default from config)", rockfall.MaxSkylineRows))
	cmd.Flags().BoolVar(&o.noCycles, "no-cycles", false, "Simulate every rock instead of skipping repeats")
	return cmd
}

func runDay17(cmd *cobra.Command, o *day17Options) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	if cmd.Flags().Changed("skyline-rows") {
		cfg.SkylineRows = o.skylineRows
	}
	if o.noCycles {
		cfg.DetectCycles = new(bool)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if o.rocks < 0 {
		return fmt.Errorf("--rocks must not be negative, got %d", o.rocks)
	}

	log := logger.New(cfg.LogLevel, cmd.ErrOrStderr())
	opts := cfg.SimOptions()
	opts.Logger = &log
	out := cmd.OutOrStdout()

	if o.sample {
		if err := checkDay17Sample(opts); err != nil {
			return err
		}
		log.Info().Msg("OK sample result")
	}
	if o.input == "" {
		if o.sample {
			return nil
		}
		return errors.New("required flag \"input\" not set")
	}

	input, err := aoc.ReadInput(o.input)
	if err != nil {
		return err
	}
	jets, err := rockfall.ParseJets(input)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", o.input, err)
	}
	log.Debug().Int("jets", len(jets)).Str("input", o.input).Msg("loaded jet pattern")

	sim := rockfall.New(jets, opts)
	small := sim.Run(cfg.SmallTarget)
	reportHeight(out, small)
	if o.draw > 0 {
		if err := sim.Pile().Draw(out, o.draw); err != nil {
			return err
		}
	}

	large := cfg.LargeTarget
	if !opts.DetectCycles {
		log.Warn().Int64("target", large).Msg("cycle detection disabled, skipping large target")
		large = 0
	}
	for _, target := range []int64{large, o.rocks} {
		if target == 0 {
			continue
		}
		res := rockfall.New(jets, opts).Run(target)
		logCycle(&log, res)
		reportHeight(out, res)
	}
	return nil
}

func checkDay17Sample(opts *rockfall.Options) error {
	jets := rockfall.MustParseJets(day17Sample)
	if err := aoc.CheckSample("day17 small", rockfall.Height(jets, 2022, opts), day17SampleSmall); err != nil {
		return err
	}
	if !opts.DetectCycles {
		return nil
	}
	return aoc.CheckSample("day17 large", rockfall.Height(jets, 1_000_000_000_000, opts), day17SampleLarge)
}

func reportHeight(w io.Writer, res rockfall.Result) {
	fmt.Fprintf(w, "Height after %d rocks: %d\n", res.Rocks, res.Height)
}

func logCycle(log *zerolog.Logger, res rockfall.Result) {
	if res.Cycle == nil {
		return
	}
	log.Info().
		Int64("start", res.Cycle.Start).
		Int64("length", res.Cycle.Length).
		Int64("height", res.Cycle.Height).
		Msg("extrapolated over repeating cycle")
}
