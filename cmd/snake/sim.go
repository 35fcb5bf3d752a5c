package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/matrix-snake/internal/core"
	"github.com/vovakirdan/matrix-snake/internal/input"
	"github.com/vovakirdan/matrix-snake/internal/registry"
	"github.com/vovakirdan/matrix-snake/internal/storage"
)

var (
	flagSteps int
	flagMoves string
)

var simCmd = &cobra.Command{
	Use:   "sim [variant]",
	Short: "Run a scripted session without a terminal UI",
	Long: `Runs the engine headless. Each script entry is fed to the emulated
stick for one sample window; the script repeats until --steps windows have
been stepped. Entries are directions (up/u, down/d, left/l, right/r), "-"
to leave the stick at rest, or "reset"/"x" to click the button.

Every step is logged, finished rounds are written to the journal and the
final board is printed.

Examples:
  snake sim --steps 50
  snake sim --moves "u,u,l,l,d,d,r,r" --steps 400 --log-level debug
  snake sim snake_mini --seed 3 --moves "r,-,-,u,reset" --journal ""`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSteps, "steps", 100, "Number of engine steps")
	simCmd.Flags().StringVar(&flagMoves, "moves", "", "Comma-separated stick script")
}

// scriptEntry is one sample window of stick input.
type scriptEntry struct {
	click bool
	dir   core.Direction
	push  bool
}

func parseScript(s string) ([]scriptEntry, error) {
	var script []scriptEntry
	for _, tok := range strings.Split(s, ",") {
		tok = strings.ToLower(strings.TrimSpace(tok))
		switch tok {
		case "":
			continue
		case "-":
			script = append(script, scriptEntry{})
			continue
		}

		cmd, err := core.ParseCommand(tok)
		if err != nil {
			return nil, err
		}
		if cmd.IsReset() {
			script = append(script, scriptEntry{click: true})
		} else {
			script = append(script, scriptEntry{dir: cmd.Dir, push: true})
		}
	}
	return script, nil
}

func runSim(cmd *cobra.Command, args []string) {
	variant := variantArg(args)

	logger, err := newLogger(os.Stderr)
	if err != nil {
		fail("Error", err)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		fail("Error loading config", err)
	}

	script, err := parseScript(flagMoves)
	if err != nil {
		fail("Error parsing --moves", err)
	}

	game, err := registry.Create(variant, cfg.Runtime())
	if err != nil {
		fail("Error creating engine", err)
	}

	var store *storage.Store
	if flagJournal != "" {
		store, err = storage.Open(flagJournal)
		if err != nil {
			logger.Warn("round journal unavailable", "err", err)
			store = nil
		} else {
			defer store.Close()
		}
	}

	th := input.Thresholds{Center: cfg.Input.Center, Quarter: cfg.Input.Threshold}
	stick := input.NewKeyStick(th, 1)
	sampler := input.NewSampler(cfg.Input.SamplesPerStep, th)

	logger.Info("simulation started", "variant", variant, "grid", game.Grid(), "seed", cfg.Seed, "steps", flagSteps)

	outcomes := make(map[core.GameResult]int)
	for step := 0; step < flagSteps; step++ {
		if len(script) > 0 {
			e := script[step%len(script)]
			switch {
			case e.click:
				stick.Click()
			case e.push:
				stick.Deflect(e.dir)
			}
		}
		for !sampler.Add(stick.Read()) {
		}

		command := sampler.Command()
		res := game.Step(command)
		outcomes[res]++
		logger.Debug("step", "n", step+1, "command", command, "result", res)

		if !res.EndsRound() {
			continue
		}
		sum, _ := game.LastRound()
		logger.Info("round over",
			"round", sum.Round,
			"outcome", sum.Outcome,
			"length", sum.Length,
			"steps", sum.Steps,
			"eaten", sum.Eaten,
		)
		if store != nil {
			if _, err := store.RecordRound(storage.NewRoundRecord(variant, cfg.Seed, sum)); err != nil {
				logger.Warn("journal write failed", "err", err)
			}
		}
	}

	fmt.Printf("%s after %d steps (seed %d)\n", game.Title(), flagSteps, cfg.Seed)
	fmt.Printf("continue %d  died %d  won %d  restarting %d\n\n",
		outcomes[core.Continue], outcomes[core.Died], outcomes[core.Won], outcomes[core.Restarting])
	if board, ok := game.(fmt.Stringer); ok {
		fmt.Print(board.String())
	}
}
