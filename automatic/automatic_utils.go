package automatic

// Data collection for automatic games: the solver against some other
// player, many games at once, one solver per worker.

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/tictac/board"
	"github.com/domino14/tictac/config"
	"github.com/domino14/tictac/stats"
)

// SeatTally counts results from the solver's point of view.
type SeatTally struct {
	Games  int `yaml:"games"`
	Wins   int `yaml:"wins"`
	Draws  int `yaml:"draws"`
	Losses int `yaml:"losses"`
}

type Summary struct {
	Width    int       `yaml:"width"`
	Opponent string    `yaml:"opponent"`
	Total    SeatTally `yaml:"total"`
	AsFirst  SeatTally `yaml:"as-first"`
	AsSecond SeatTally `yaml:"as-second"`
	// Length is the number of moves per game.
	Length stats.Summary `yaml:"length"`
	// Score is the solver's result per game: 1, 0 or -1.
	Score stats.Summary `yaml:"score"`
}

// A Record is one finished game and the side the solver had.
type Record struct {
	SolverSeat board.Mark
	Result     GameResult
}

func (r Record) SolverOutcome() board.Outcome {
	switch r.Result.Winner {
	case board.Empty:
		return board.Draw
	case r.SolverSeat:
		return board.Win
	}
	return board.Loss
}

func tally(records []Record) SeatTally {
	counts := lo.CountValuesBy(records, func(r Record) board.Outcome {
		return r.SolverOutcome()
	})
	return SeatTally{
		Games:  len(records),
		Wins:   counts[board.Win],
		Draws:  counts[board.Draw],
		Losses: counts[board.Loss],
	}
}

// Summarize tallies records overall and per seat.
func Summarize(width int, opponent string, records []Record) Summary {
	first, second := lo.FilterReject(records, func(r Record, _ int) bool {
		return r.SolverSeat == board.PlayerA
	})
	return Summary{
		Width:    width,
		Opponent: opponent,
		Total:    tally(records),
		AsFirst:  tally(first),
		AsSecond: tally(second),
	}
}

// Runner plays the solver against an opponent for a fixed number of games.
type Runner struct {
	width   int
	games   int
	threads int
	seat    string

	newSolver   func(width int) (Player, error)
	newOpponent func() Player
}

func NewRunner(cfg *config.Config) *Runner {
	return &Runner{
		width:   cfg.GetInt(config.ConfigWidth),
		games:   cfg.GetInt(config.ConfigAutoplayGames),
		threads: cfg.GetInt(config.ConfigAutoplayThreads),
		seat:    cfg.GetString(config.ConfigAutoplaySolverSeat),
		newSolver: func(width int) (Player, error) {
			return NewSolverPlayer(width)
		},
		newOpponent: func() Player { return RandomPlayer{} },
	}
}

func (r *Runner) seatFor(game int) board.Mark {
	switch r.seat {
	case config.SeatFirst:
		return board.PlayerA
	case config.SeatSecond:
		return board.PlayerB
	}
	if game%2 == 0 {
		return board.PlayerA
	}
	return board.PlayerB
}

// Run plays all the games and returns the tally. It stops at the first
// game the solver loses, returning ErrSolverLost.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	threads := max(1, min(r.threads, r.games))
	opponent := r.newOpponent().Name()
	log.Info().Int("games", r.games).Int("threads", threads).
		Str("opponent", opponent).Str("seat", r.seat).Msg("starting-autoplay")
	start := time.Now()

	g, ctx := errgroup.WithContext(ctx)
	jobs := make(chan int, 100)

	g.Go(func() error {
		defer close(jobs)
		for i := 0; i < r.games; i++ {
			select {
			case jobs <- i:
			case <-ctx.Done():
				log.Info().Msg("got stop signal, no more games")
				return ctx.Err()
			}
		}
		return nil
	})

	type workerStats struct {
		records []Record
		length  stats.Statistic
		score   stats.Statistic
	}
	perWorker := make([]workerStats, threads)
	for t := 0; t < threads; t++ {
		t := t
		g.Go(func() error {
			sp, err := r.newSolver(r.width)
			if err != nil {
				return err
			}
			opp := r.newOpponent()
			for i := range jobs {
				if err := ctx.Err(); err != nil {
					return err
				}
				seat := r.seatFor(i)
				runner := NewGameRunner(r.width, sp, opp)
				if seat == board.PlayerB {
					runner = NewGameRunner(r.width, opp, sp)
				}
				res, err := runner.PlayGame()
				if err != nil {
					return err
				}
				rec := Record{SolverSeat: seat, Result: res}
				if rec.SolverOutcome() == board.Loss {
					return fmt.Errorf("%w: game %d playing %v, moves %v, final %s",
						ErrSolverLost, i, seat, res.Moves, res.Final.Compact())
				}
				ws := &perWorker[t]
				ws.records = append(ws.records, rec)
				ws.length.Push(float64(len(res.Moves)))
				ws.score.Push(float64(rec.SolverOutcome()))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Summary{}, err
	}
	var length, score stats.Statistic
	for _, ws := range perWorker {
		length.Merge(ws.length)
		score.Merge(ws.score)
	}
	summary := Summarize(r.width, opponent, lo.FlatMap(perWorker, func(ws workerStats, _ int) []Record {
		return ws.records
	}))
	summary.Length = length.Summary()
	summary.Score = score.Summary()
	log.Info().
		Int("games", summary.Total.Games).
		Int("wins", summary.Total.Wins).
		Int("draws", summary.Total.Draws).
		Float64("mean-length", summary.Length.Mean).
		Dur("elapsed", time.Since(start)).
		Msg("autoplay-done")
	return summary, nil
}
