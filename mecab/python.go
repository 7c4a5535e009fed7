package mecab

import (
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/rupor-github/kmorph/morphemes"
)

// Python side of the bridge. Analyzer is constructed by setup code, method to call is the first argument, anything
// after that is available to setup. Input and output are always UTF-8 regardless of console code page.
const pyScript = `import json, sys
%s
text = sys.stdin.buffer.read().decode("utf-8")
res = getattr(analyzer, sys.argv[1])(text)
sys.stdout.buffer.write(json.dumps(res, ensure_ascii=False).encode("utf-8"))
`

// Setup code for supported python packages.
const (
	pySetupKoNLPy    = "from konlpy.tag import Mecab\nanalyzer = Mecab()"
	pySetupKoNLPyDic = "from konlpy.tag import Mecab\nanalyzer = Mecab(dicpath=sys.argv[2])"
	pySetupPeCab     = "from pecab import PeCab\nanalyzer = PeCab()"
	pyMethodPos      = "pos"
	pyMethodMorphs   = "morphs"
)

// PyTagger drives analyzer implemented as python package. Every call starts fresh interpreter.
type PyTagger struct {
	log    *zap.Logger
	run    runner
	python string
	script string
	extra  []string
}

func newPyTagger(run runner, python, setup string, log *zap.Logger, extra ...string) *PyTagger {
	return &PyTagger{
		log:    log,
		run:    run,
		python: python,
		script: fmt.Sprintf(pyScript, setup),
		extra:  extra,
	}
}

func (t *PyTagger) call(method, text string, res interface{}) error {

	args := make([]string, 0, 3+len(t.extra))
	args = append(args, "-c", t.script, method)
	args = append(args, t.extra...)

	start := time.Now()
	out, err := t.run(text, t.python, args...)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(out, res); err != nil {
		return fmt.Errorf("unable to decode %s results: %w", method, err)
	}
	t.log.Debug("Python analyzer returned",
		zap.String("method", method),
		zap.Strings("extra", t.extra),
		zap.Int("output", len(out)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return nil
}

// Pos implements morphemes.Analyzer.
func (t *PyTagger) Pos(text string) ([]morphemes.Token, error) {

	var pairs [][2]string
	if err := t.call(pyMethodPos, text, &pairs); err != nil {
		return nil, err
	}

	tokens := make([]morphemes.Token, 0, len(pairs))
	for _, p := range pairs {
		tokens = append(tokens, morphemes.Token{Surface: p[0], Tag: p[1]})
	}
	return tokens, nil
}

// Morphs implements morphemes.Analyzer.
func (t *PyTagger) Morphs(text string) ([]string, error) {
	words := []string{}
	if err := t.call(pyMethodMorphs, text, &words); err != nil {
		return nil, err
	}
	return words, nil
}
