package mecab

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"go.uber.org/zap"

	"github.com/rupor-github/kmorph/config"
	"github.com/rupor-github/kmorph/morphemes"
	"github.com/rupor-github/kmorph/utils"
)

// ErrNoWindowsMeCab - mecab-ko-msvc could not be found.
var ErrNoWindowsMeCab = errors.New("mecab-ko-msvc is not installed")

// Adapter names, could be used in configuration to disable particular adapter.
const (
	AdapterMeCab     = "mecab"
	AdapterKoNLPy    = "konlpy"
	AdapterWinMeCab  = "mecab-windows"
	AdapterWinKoNLPy = "konlpy-windows"
	AdapterPeCab     = "pecab"
)

// system is everything adapters need from outside world.
type system struct {
	run              runner
	lookPath         func(string) (string, error)
	stat             func(string) (os.FileInfo, error)
	findWindowsMeCab func() (string, error)
}

func defaultSystem(log *zap.Logger) *system {
	return &system{
		run:              execRunner(log),
		lookPath:         exec.LookPath,
		stat:             os.Stat,
		findWindowsMeCab: findWindowsMeCab,
	}
}

// program returns configured executable or looks up default one in PATH.
func (s *system) program(configured, def string) (string, error) {
	name := def
	if len(configured) > 0 {
		name = config.ExpandPath(configured)
	}
	path, err := s.lookPath(name)
	if err != nil {
		return "", fmt.Errorf("unable to locate %s: %w", name, err)
	}
	return path, nil
}

func (s *system) python(conf *config.AnalyzerConfig) (string, error) {
	return s.program(conf.PythonPath, pythonExe())
}

// FullAdapters returns adapters for complete morphological tagging in order of preference.
func FullAdapters(conf *config.Config, log *zap.Logger) []morphemes.Adapter {
	if log == nil {
		log = zap.NewNop()
	}
	return fullAdapters(conf, defaultSystem(log), log)
}

// LightAdapters returns adapters for plain tagging.
func LightAdapters(conf *config.Config, log *zap.Logger) []morphemes.Adapter {
	if log == nil {
		log = zap.NewNop()
	}
	return lightAdapters(conf, defaultSystem(log), log)
}

// GetFullAnalyzer selects analyzer for complete morphological tagging. It returns (nil, morphemes.BackendNone) when
// nothing is installed.
func GetFullAnalyzer(conf *config.Config, log *zap.Logger) (morphemes.Analyzer, morphemes.Backend) {
	return morphemes.NewResolver(log, FullAdapters(conf, log)...).Resolve()
}

// GetLightAnalyzer selects analyzer for plain tagging. It returns (nil, morphemes.BackendNone) when nothing is
// installed.
func GetLightAnalyzer(conf *config.Config, log *zap.Logger) (morphemes.Analyzer, morphemes.Backend) {
	return morphemes.NewResolver(log, LightAdapters(conf, log)...).Resolve()
}

func fullAdapters(conf *config.Config, sys *system, log *zap.Logger) []morphemes.Adapter {

	ac := &conf.Analyzer

	adapters := []morphemes.Adapter{
		{
			// mecab-ko (Linux/MacOS)
			Name:    AdapterMeCab,
			Backend: morphemes.BackendMeCab,
			Open: func() (morphemes.Analyzer, error) {
				path, err := sys.program(ac.MeCabPath, mecabExe())
				if err != nil {
					return nil, err
				}
				minVer, err := conf.MinMeCabVersion()
				if err != nil {
					return nil, err
				}
				t, err := newTagger(sys.run, path, ac.MeCabDicDir, minVer, log)
				if err != nil {
					return nil, err
				}
				return t, nil
			},
			Probe: morphemes.ProbeMorphs,
		},
		{
			// konlpy (Linux/MacOS)
			Name:    AdapterKoNLPy,
			Backend: morphemes.BackendKoNLPy,
			Open: func() (morphemes.Analyzer, error) {
				python, err := sys.python(ac)
				if err != nil {
					return nil, err
				}
				return newPyTagger(sys.run, python, pySetupKoNLPy, log), nil
			},
			Probe: morphemes.ProbeMorphs,
		},
		{
			// mecab-ko-msvc (Windows)
			Name:    AdapterWinMeCab,
			Backend: morphemes.BackendMeCab,
			Open: func() (morphemes.Analyzer, error) {
				var (
					path string
					err  error
				)
				if len(ac.WindowsMeCabPath) > 0 {
					path, err = sys.program(ac.WindowsMeCabPath, "")
				} else {
					path, err = sys.findWindowsMeCab()
				}
				if err != nil {
					return nil, err
				}
				return newNodeTagger(sys.run, path, log), nil
			},
			Probe: morphemes.ProbePos,
		},
		{
			// konlpy (Windows)
			Name:    AdapterWinKoNLPy,
			Backend: morphemes.BackendKoNLPy,
			Open: func() (morphemes.Analyzer, error) {
				dic := ac.WindowsDicDir
				if len(dic) == 0 {
					dic = config.DefaultWindowsDicDir
				}
				if _, err := sys.stat(dic); err != nil {
					return nil, fmt.Errorf("unable to find mecab dictionary [%s]: %w", dic, err)
				}
				python, err := sys.python(ac)
				if err != nil {
					return nil, err
				}
				return newPyTagger(sys.run, python, pySetupKoNLPyDic, log, dic), nil
			},
			Probe: morphemes.ProbePos,
		},
	}
	return enabled(adapters, ac.Disabled, log)
}

func lightAdapters(conf *config.Config, sys *system, log *zap.Logger) []morphemes.Adapter {

	ac := &conf.Analyzer

	adapters := []morphemes.Adapter{
		{
			Name:    AdapterPeCab,
			Backend: morphemes.BackendPeCab,
			Open: func() (morphemes.Analyzer, error) {
				python, err := sys.python(ac)
				if err != nil {
					return nil, err
				}
				return newPyTagger(sys.run, python, pySetupPeCab, log), nil
			},
			Probe: morphemes.ProbeMorphs,
		},
	}
	return enabled(adapters, ac.Disabled, log)
}

func enabled(adapters []morphemes.Adapter, disabled []string, log *zap.Logger) []morphemes.Adapter {
	out := adapters[:0]
	for _, a := range adapters {
		if utils.IsOneOfIgnoreCase(a.Name, disabled) {
			log.Debug("Adapter disabled by configuration", zap.String("adapter", a.Name))
			continue
		}
		out = append(out, a)
	}
	return out
}
