package commands

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/rupor-github/kmorph/state"
)

// Probe is "probe" command body.
func Probe(ctx *cli.Context) error {

	const (
		errPrefix = "probe: "
		errCode   = 1
	)

	env := ctx.Generic(state.FlagName).(*state.LocalEnv)
	light := ctx.Bool("light")

	candidates := adapters(env, light)
	fmt.Fprintf(ctx.App.Writer, "profile: %s\n", profileName(light))
	for i, a := range candidates {
		fmt.Fprintf(ctx.App.Writer, "  %d. %s (%s)\n", i+1, a.Name, a.Backend)
	}

	p := openPipeline(env, candidates, light)
	if !p.Ready() {
		return cli.Exit(errors.New(errPrefix+"no morpheme analyzer is available"), errCode)
	}
	fmt.Fprintf(ctx.App.Writer, "selected: %s\n", p.Backend)
	return nil
}
