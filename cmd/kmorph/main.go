package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/pkg/profile"
	"github.com/urfave/cli/v2"

	"github.com/rupor-github/kmorph/commands"
	"github.com/rupor-github/kmorph/config"
	"github.com/rupor-github/kmorph/state"
	"github.com/rupor-github/kmorph/utils"
)

// Set by linker.
var (
	version = "dev"
	githash = "unknown"
)

func main() {

	env := state.NewLocalEnv()

	app := &cli.App{
		Name:    "kmorph",
		Usage:   "Korean morpheme analyzer front end",
		Version: fmt.Sprintf("%s (%s) : %s", version, runtime.Version(), githash),
		Flags: []cli.Flag{
			&cli.GenericFlag{Name: state.FlagName, Hidden: true, Value: env},
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "load configuration from `FILE`"},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "debug logging"},
			&cli.StringFlag{Name: "disable", Usage: "comma separated list of adapters to skip"},
			&cli.StringFlag{Name: "cpuprofile", Usage: "write cpu profile to `DIR`"},
		},
		Before: func(ctx *cli.Context) error {

			const errCode = 2

			conf, err := config.Load(ctx.String("config"))
			if err != nil {
				return cli.Exit(err, errCode)
			}
			for _, name := range utils.SplitList(ctx.String("disable")) {
				conf.Analyzer.Disabled = utils.AppendIfMissingIgnoreCase(conf.Analyzer.Disabled, name)
			}

			env.Debug = ctx.Bool("debug")
			env.Cfg = conf
			if env.Log, err = conf.PrepareLog(env.Debug); err != nil {
				return cli.Exit(err, errCode)
			}

			if dir := ctx.String("cpuprofile"); len(dir) > 0 {
				env.StartProfiling(profile.Start(profile.CPUProfile, profile.ProfilePath(filepath.Clean(dir)), profile.Quiet))
			}
			return nil
		},
		After: func(*cli.Context) error {
			env.Close()
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:   "probe",
				Usage:  "Shows which morpheme analyzer will be used",
				Action: commands.Probe,
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "light", Usage: "use plain tagging profile"},
				},
			},
			{
				Name:      "pos",
				Usage:     "Splits text into tagged morphemes",
				ArgsUsage: "FILE|-",
				Action:    commands.Pos,
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "light", Usage: "use plain tagging profile"},
					&cli.BoolFlag{Name: "no-space", Usage: "do not restore whitespace"},
				},
			},
			{
				Name:      "morphs",
				Usage:     "Splits text into morphemes",
				ArgsUsage: "FILE|-",
				Action:    commands.Morphs,
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "light", Usage: "use plain tagging profile"},
					&cli.BoolFlag{Name: "no-space", Usage: "do not restore whitespace"},
				},
			},
			{
				Name:      "export",
				Usage:     "Writes default configuration to directory",
				ArgsUsage: "DIR",
				Action:    commands.ExportConfig,
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "force", Usage: "overwrite existing file"},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
