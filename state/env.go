package state

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/rupor-github/kmorph/config"
)

// FlagName is name of hidden flag used to pass LocalEnv to commands.
const FlagName = "__local_env__"

// LocalEnv keeps everything commands share. It is cli.Generic so it could be carried by flag.
type LocalEnv struct {
	Debug   bool
	Cfg     *config.Config
	Log     *zap.Logger
	profile interface{ Stop() }
}

// NewLocalEnv creates environment with default configuration and no logging.
func NewLocalEnv() *LocalEnv {
	return &LocalEnv{
		Cfg: config.Default(),
		Log: zap.NewNop(),
	}
}

// Set is required by cli.Generic, value is never set from command line.
func (e *LocalEnv) Set(string) error {
	return nil
}

func (e *LocalEnv) String() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("debug:%t", e.Debug)
}

// StartProfiling remembers running profiler so it could be stopped on exit.
func (e *LocalEnv) StartProfiling(p interface{ Stop() }) {
	e.profile = p
}

// Close stops profiling and flushes log.
func (e *LocalEnv) Close() {
	if e.profile != nil {
		e.profile.Stop()
		e.profile = nil
	}
	if e.Log != nil {
		_ = e.Log.Sync()
	}
}
