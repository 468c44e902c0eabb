package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/matryer/is"
	"gopkg.in/yaml.v3"

	"github.com/domino14/tictac/config"
)

func TestRunBest(t *testing.T) {
	is := is.New(t)
	cfg := config.DefaultConfig()
	var buf bytes.Buffer

	err := run(context.Background(), &cfg, []string{"best", "1,-1,1,-1,1,1,-1,-1,0"}, &buf)
	is.NoErr(err)

	var rep bestReport
	is.NoErr(yaml.Unmarshal(buf.Bytes(), &rep))
	is.Equal(rep.Move, 8)
	is.Equal(rep.Row, 2)
	is.Equal(rep.Col, 2)
	is.Equal(rep.Outcome, "win")
	is.Equal(rep.Mover, "X")
}

func TestRunOptimal(t *testing.T) {
	is := is.New(t)
	cfg := config.DefaultConfig()
	var buf bytes.Buffer

	err := run(context.Background(), &cfg, []string{"optimal", "XX./.OO/..."}, &buf)
	is.NoErr(err)

	var rep optimalReport
	is.NoErr(yaml.Unmarshal(buf.Bytes(), &rep))
	is.Equal(rep.Moves, []int{2, 3})
	is.Equal(rep.Outcome, "win")
}

func TestRunSolve(t *testing.T) {
	is := is.New(t)
	cfg := config.DefaultConfig()
	var buf bytes.Buffer

	is.NoErr(run(context.Background(), &cfg, []string{"solve"}, &buf))

	var rep solveReport
	is.NoErr(yaml.Unmarshal(buf.Bytes(), &rep))
	is.Equal(rep.Stats.Entries, 5478)
	is.Equal(len(rep.Digest), 16)
}

func TestRunBadUsage(t *testing.T) {
	is := is.New(t)
	cfg := config.DefaultConfig()
	var buf bytes.Buffer

	is.True(errors.Is(run(context.Background(), &cfg, nil, &buf), errUsage))
	is.True(errors.Is(run(context.Background(), &cfg, []string{"frobnicate"}, &buf), errUsage))
	is.True(errors.Is(run(context.Background(), &cfg, []string{"best"}, &buf), errUsage))
}
