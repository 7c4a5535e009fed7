package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/h2non/filetype"
	"go.uber.org/zap"

	"github.com/rupor-github/kmorph/mecab"
	"github.com/rupor-github/kmorph/morphemes"
	"github.com/rupor-github/kmorph/state"
	"github.com/rupor-github/kmorph/utils"
)

// isBinaryFile detects if file looks like something analyzers should never see: images, archives, documents...
func isBinaryFile(file *os.File) (bool, error) {

	header := make([]byte, 262)
	count, err := file.Read(header)
	if err != nil && err != io.EOF {
		return false, err
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return false, err
	}
	if count == 0 {
		return false, nil
	}
	kind, err := filetype.Match(header[:count])
	if err != nil {
		return false, err
	}
	return kind != filetype.Unknown, nil
}

// readInput reads text to analyze from file or from stdin when name is "-" or empty.
func readInput(fname string, stdin io.Reader) (string, error) {

	if len(fname) == 0 || fname == "-" {
		return utils.ReadText(stdin)
	}

	file, err := os.Open(fname)
	if err != nil {
		return "", err
	}
	defer file.Close()

	binary, err := isBinaryFile(file)
	if err != nil {
		return "", err
	}
	if binary {
		return "", fmt.Errorf("%s is not a text file", fname)
	}

	enc, err := utils.DetectFileUTF(file)
	if err != nil {
		return "", err
	}
	data, err := io.ReadAll(utils.SelectReader(file, enc))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// adapters lists candidates of requested profile in order they are tried.
func adapters(env *state.LocalEnv, light bool) []morphemes.Adapter {
	if light {
		return mecab.LightAdapters(env.Cfg, env.Log)
	}
	return mecab.FullAdapters(env.Cfg, env.Log)
}

// resolve selects first working analyzer.
var resolve = func(env *state.LocalEnv, adapters []morphemes.Adapter) (morphemes.Analyzer, morphemes.Backend) {
	return morphemes.NewResolver(env.Log, adapters...).Resolve()
}

func profileName(light bool) string {
	if light {
		return "light"
	}
	return "full"
}

// openPipeline resolves analyzer from candidates and reports which one was selected.
func openPipeline(env *state.LocalEnv, candidates []morphemes.Adapter, light bool) *morphemes.Pipeline {
	a, b := resolve(env, candidates)
	env.Log.Debug("Analyzer resolved", zap.String("profile", profileName(light)), zap.Stringer("backend", b))
	return morphemes.NewPipeline(a, b)
}
