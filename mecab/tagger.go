package mecab

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/blang/semver"
	"go.uber.org/zap"

	"github.com/rupor-github/kmorph/morphemes"
)

// ErrUnsupportedVersion - installed mecab is too old.
var ErrUnsupportedVersion = errors.New("unsupported mecab version")

const eos = "EOS"

var reMeCabVer = regexp.MustCompile(`^mecab\s+of\s+([0-9]+\.[0-9]+(?:\.[0-9]+)?)`)

// Tagger runs mecab-ko executable in its default output mode: one "surface<TAB>features" line per morpheme and
// "EOS" after every input line.
type Tagger struct {
	log  *zap.Logger
	run  runner
	path string
	args []string
	ver  semver.Version
}

func newTagger(run runner, path, dicDir string, minVer semver.Version, log *zap.Logger) (*Tagger, error) {

	out, err := run("", path, "-v")
	if err != nil {
		return nil, fmt.Errorf("unable to run mecab [%s]: %w", path, err)
	}

	var ver semver.Version
	matches := reMeCabVer.FindStringSubmatch(strings.TrimSpace(string(out)))
	if len(matches) < 2 {
		return nil, fmt.Errorf("unable to find mecab version in %q", strings.TrimSpace(string(out)))
	}
	if ver, err = semver.ParseTolerant(matches[1]); err != nil {
		return nil, fmt.Errorf("unable to parse mecab version: %w", err)
	}
	if minVer.GT(ver) {
		return nil, fmt.Errorf("%w: %s is installed (required version %s or newer)", ErrUnsupportedVersion, ver, minVer)
	}

	t := &Tagger{
		log:  log,
		run:  run,
		path: path,
		ver:  ver,
	}
	if len(dicDir) > 0 {
		t.args = append(t.args, "-d", dicDir)
	}
	log.Debug("MeCab found", zap.Stringer("env", t))
	return t, nil
}

func (t *Tagger) String() string {
	return fmt.Sprintf("%s:(%s) %v", t.path, t.ver, t.args)
}

// Version returns version of the mecab executable.
func (t *Tagger) Version() semver.Version {
	return t.ver
}

// Pos implements morphemes.Analyzer.
func (t *Tagger) Pos(text string) ([]morphemes.Token, error) {
	out, err := t.run(text, t.path, t.args...)
	if err != nil {
		return nil, err
	}
	return parseOutput(out)
}

// Morphs implements morphemes.Analyzer.
func (t *Tagger) Morphs(text string) ([]string, error) {
	tokens, err := t.Pos(text)
	if err != nil {
		return nil, err
	}
	return morphemes.Surfaces(tokens), nil
}

// parseOutput reads mecab default output format.
func parseOutput(out []byte) ([]morphemes.Token, error) {

	var tokens []morphemes.Token

	scanner := bufio.NewScanner(bytes.NewReader(out))
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == eos || len(line) == 0 {
			continue
		}
		surface, feature, ok := cutTab(line)
		if !ok || len(surface) == 0 {
			return nil, fmt.Errorf("unexpected mecab output at line %d: %q", n, line)
		}
		tokens = append(tokens, morphemes.Token{Surface: surface, Tag: firstField(feature)})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("unable to read mecab output: %w", err)
	}
	return tokens, nil
}

func cutTab(line string) (string, string, bool) {
	if i := strings.IndexByte(line, '\t'); i >= 0 {
		return line[:i], line[i+1:], true
	}
	return line, "", false
}

// firstField returns part of speech - first element of comma separated feature string.
func firstField(feature string) string {
	if i := strings.IndexByte(feature, ','); i >= 0 {
		return feature[:i]
	}
	return feature
}
