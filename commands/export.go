package commands

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/rupor-github/kmorph/config"
	"github.com/rupor-github/kmorph/state"
)

// ExportConfig is "export" command body.
func ExportConfig(ctx *cli.Context) error {

	const (
		errPrefix = "export: "
		errCode   = 1
	)

	env := ctx.Generic(state.FlagName).(*state.LocalEnv)

	dname := ctx.Args().Get(0)
	if len(dname) == 0 {
		return cli.Exit(errors.New(errPrefix+"destination directory has not been specified"), errCode)
	}
	//nolint:gocritic
	if info, err := os.Stat(dname); err != nil && !os.IsNotExist(err) {
		return cli.Exit(errors.New(errPrefix+"unable to access destination directory"), errCode)
	} else if err != nil {
		return cli.Exit(errors.New(errPrefix+"destination directory does not exits"), errCode)
	} else if !info.IsDir() {
		return cli.Exit(errors.New(errPrefix+"destination is not a directory"), errCode)
	}

	fname := filepath.Join(dname, config.FileName)
	if _, err := os.Stat(fname); err == nil && !ctx.Bool("force") {
		return cli.Exit(errors.New(errPrefix+"configuration file already exists, use --force to overwrite"), errCode)
	}
	if err := config.Default().Save(fname); err != nil {
		return cli.Exit(errors.New(errPrefix+"unable to store configuration"), errCode)
	}
	env.Log.Info("Default configuration exported", zap.String("file", fname))
	return nil
}
