package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/pprof"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/domino14/tictac/automatic"
	"github.com/domino14/tictac/board"
	"github.com/domino14/tictac/config"
	"github.com/domino14/tictac/solver"
)

var errUsage = errors.New("bad usage")

func usage(w io.Writer) {
	io.WriteString(w, "usage: tictac [flags] <command> [board]\n")
	io.WriteString(w, "commands:\n")
	io.WriteString(w, "solve - build every best response for the width, print stats\n")
	io.WriteString(w, "best <board> - best move for whoever is to move\n")
	io.WriteString(w, "pv <board> - principal variation from the board\n")
	io.WriteString(w, "optimal <board> - every move as good as the best one\n")
	io.WriteString(w, "autoplay - play the solver against a random mover\n")
	io.WriteString(w, "boards look like 1,1,0,0,-1,-1,0,0,0 or XX./OO./...\n")
}

type bestReport struct {
	Board   string `yaml:"board"`
	Mover   string `yaml:"mover"`
	Move    int    `yaml:"move"`
	Row     int    `yaml:"row"`
	Col     int    `yaml:"col"`
	Outcome string `yaml:"outcome"`
}

type solveReport struct {
	Stats  solver.Stats `yaml:"stats"`
	Digest string       `yaml:"digest"`
}

type optimalReport struct {
	Board   string `yaml:"board"`
	Outcome string `yaml:"outcome"`
	Moves   []int  `yaml:"moves"`
}

func setupLogging(cfg *config.Config) {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	output.FormatMessage = func(i interface{}) string {
		return fmt.Sprintf("%s", i)
	}
	output.FormatFieldName = func(i interface{}) string {
		return fmt.Sprintf("%s:", i)
	}

	var logger zerolog.Logger
	if cfg.GetBool(config.ConfigDebug) {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		logger = zerolog.New(output).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		logger = zerolog.New(output).Level(zerolog.InfoLevel).With().Timestamp().Logger()
	}
	zerolog.DefaultContextLogger = &logger
	log.Logger = logger
	logger.Debug().Msg("Debug logging is on")
}

func emit(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func boardArg(cfg *config.Config, args []string) (board.Board, error) {
	if len(args) != 1 {
		return board.Board{}, fmt.Errorf("%w: expected exactly one board", errUsage)
	}
	return board.Parse(cfg.GetInt(config.ConfigWidth), args[0])
}

func run(ctx context.Context, cfg *config.Config, args []string, w io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	cmd, rest := args[0], args[1:]

	if cmd == "autoplay" {
		summary, err := automatic.NewRunner(cfg).Run(ctx)
		if err != nil {
			return err
		}
		return emit(w, summary)
	}

	s, err := solver.NewSolver(cfg.GetInt(config.ConfigWidth))
	if err != nil {
		return err
	}

	switch cmd {
	case "solve":
		if err := s.BuildAll(); err != nil {
			return err
		}
		return emit(w, solveReport{Stats: s.Stats(), Digest: fmt.Sprintf("%016x", s.Digest())})

	case "best":
		b, err := boardArg(cfg, rest)
		if err != nil {
			return err
		}
		e, err := s.BestResponse(b)
		if err != nil {
			return err
		}
		row, col := e.Move.RowCol(b.Width())
		if e.Move == board.NoMove {
			row, col = -1, -1
		}
		return emit(w, bestReport{
			Board:   b.Compact(),
			Mover:   b.Mover().String(),
			Move:    int(e.Move),
			Row:     row,
			Col:     col,
			Outcome: e.Outcome.String(),
		})

	case "pv":
		b, err := boardArg(cfg, rest)
		if err != nil {
			return err
		}
		pv, err := s.PrincipalVariation(b)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, b.ToDisplayText())
		fmt.Fprint(w, pv.String())
		return nil

	case "optimal":
		b, err := boardArg(cfg, rest)
		if err != nil {
			return err
		}
		moves, err := s.OptimalMoves(b)
		if err != nil {
			return err
		}
		e, _ := s.Lookup(b)
		ints := make([]int, len(moves))
		for i, m := range moves {
			ints[i] = int(m)
		}
		return emit(w, optimalReport{Board: b.Compact(), Outcome: e.Outcome.String(), Moves: ints})
	}
	return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
}

func main() {
	cfg := &config.Config{}
	args, err := cfg.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		usage(os.Stderr)
		os.Exit(2)
	}
	setupLogging(cfg)

	if cfg.GetString(config.ConfigCPUProfile) != "" {
		f, err := os.Create(cfg.GetString(config.ConfigCPUProfile))
		if err != nil {
			panic("could not create CPU profile: " + err.Error())
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			panic("could not start CPU profile: " + err.Error())
		}
		defer pprof.StopCPUProfile()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = run(ctx, cfg, args, os.Stdout)
	if errors.Is(err, errUsage) {
		fmt.Fprintln(os.Stderr, err)
		usage(os.Stderr)
		stop()
		pprof.StopCPUProfile()
		os.Exit(2)
	}
	if err != nil {
		log.Error().Err(err).Msg("")
		stop()
		pprof.StopCPUProfile()
		os.Exit(1)
	}
}
