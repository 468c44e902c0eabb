package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/domino14/tictac/board"
)

const (
	ConfigWidth              = "width"
	ConfigDebug              = "debug"
	ConfigCPUProfile         = "cpu-profile"
	ConfigAutoplayGames      = "autoplay-games"
	ConfigAutoplayThreads    = "autoplay-threads"
	ConfigAutoplaySolverSeat = "autoplay-solver-seat"
)

// Seat values for ConfigAutoplaySolverSeat.
const (
	SeatFirst     = "first"
	SeatSecond    = "second"
	SeatAlternate = "alternate"
)

// Config wraps a viper instance. Values come from, in order of precedence,
// command-line flags, TICTAC_-prefixed environment variables (dashes become
// underscores), and the defaults below.
type Config struct {
	viper.Viper
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(ConfigWidth, 3)
	v.SetDefault(ConfigDebug, false)
	v.SetDefault(ConfigCPUProfile, "")
	v.SetDefault(ConfigAutoplayGames, 1000)
	v.SetDefault(ConfigAutoplayThreads, 4)
	v.SetDefault(ConfigAutoplaySolverSeat, SeatAlternate)
}

// Load parses args as flags and returns the positional arguments left
// over.
func (c *Config) Load(args []string) ([]string, error) {
	c.Viper = *viper.New()
	c.SetEnvPrefix("TICTAC")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()
	setDefaults(&c.Viper)

	fs := pflag.NewFlagSet("tictac", pflag.ContinueOnError)
	fs.Int(ConfigWidth, 3, "board width")
	fs.Bool(ConfigDebug, false, "debug logging on")
	fs.String(ConfigCPUProfile, "", "write a CPU profile to this file")
	fs.Int(ConfigAutoplayGames, 1000, "number of games for autoplay")
	fs.Int(ConfigAutoplayThreads, 4, "number of autoplay workers, each with its own solver")
	fs.String(ConfigAutoplaySolverSeat, SeatAlternate, "which side the solver plays in autoplay: first, second or alternate")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if err := c.BindPFlags(fs); err != nil {
		return nil, err
	}
	return fs.Args(), c.Validate()
}

// Validate checks the values that have a fixed range.
func (c *Config) Validate() error {
	if w := c.GetInt(ConfigWidth); w < 1 || w > board.MaxWidth {
		return fmt.Errorf("width must be between 1 and %d, got %d", board.MaxWidth, w)
	}
	if c.GetInt(ConfigAutoplayGames) < 0 {
		return fmt.Errorf("%s must not be negative", ConfigAutoplayGames)
	}
	if c.GetInt(ConfigAutoplayThreads) < 1 {
		return fmt.Errorf("%s must be at least 1", ConfigAutoplayThreads)
	}
	switch seat := c.GetString(ConfigAutoplaySolverSeat); seat {
	case SeatFirst, SeatSecond, SeatAlternate:
	default:
		return fmt.Errorf("unknown %s %q", ConfigAutoplaySolverSeat, seat)
	}
	return nil
}

// DefaultConfig returns a config with only the defaults set; it does not
// look at flags or the environment.
func DefaultConfig() Config {
	c := Config{Viper: *viper.New()}
	setDefaults(&c.Viper)
	return c
}
