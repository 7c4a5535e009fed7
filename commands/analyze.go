package commands

import (
	"bufio"
	"errors"
	"fmt"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/rupor-github/kmorph/morphemes"
	"github.com/rupor-github/kmorph/state"
)

// Pos is "pos" command body.
func Pos(ctx *cli.Context) error {
	return analyze(ctx, "pos: ", func(w *bufio.Writer, tokens []morphemes.Token) {
		for _, t := range tokens {
			fmt.Fprintf(w, "%q\t%s\n", t.Surface, t.Tag)
		}
	})
}

// Morphs is "morphs" command body.
func Morphs(ctx *cli.Context) error {
	return analyze(ctx, "morphs: ", func(w *bufio.Writer, tokens []morphemes.Token) {
		for _, t := range tokens {
			fmt.Fprintf(w, "%q\n", t.Surface)
		}
	})
}

func analyze(ctx *cli.Context, errPrefix string, emit func(*bufio.Writer, []morphemes.Token)) error {

	const errCode = 1

	env := ctx.Generic(state.FlagName).(*state.LocalEnv)

	text, err := readInput(ctx.Args().Get(0), ctx.App.Reader)
	if err != nil {
		return cli.Exit(fmt.Errorf("%sunable to read input: %w", errPrefix, err), errCode)
	}

	light := ctx.Bool("light")
	p := openPipeline(env, adapters(env, light), light)
	if !p.Ready() {
		return cli.Exit(errors.New(errPrefix+"no morpheme analyzer is available"), errCode)
	}

	start := time.Now()
	var tokens []morphemes.Token
	if ctx.Bool("no-space") {
		tokens, err = p.Analyzer.Pos(text)
	} else {
		tokens, err = p.Pos(text)
	}
	if err != nil {
		return cli.Exit(fmt.Errorf("%s%w", errPrefix, err), errCode)
	}
	env.Log.Debug("Analysis is done",
		zap.Stringer("backend", p.Backend),
		zap.Int("tokens", len(tokens)),
		zap.Duration("elapsed", time.Since(start)),
	)

	w := bufio.NewWriter(ctx.App.Writer)
	emit(w, tokens)
	if err := w.Flush(); err != nil {
		return cli.Exit(fmt.Errorf("%sunable to write results: %w", errPrefix, err), errCode)
	}
	return nil
}
