package morphemes

import (
	"errors"
	"fmt"
)

// ErrNoAnalyzer is returned by Pipeline when resolution did not find anything.
var ErrNoAnalyzer = errors.New("no morpheme analyzer available")

// Pipeline runs text through analyzer and restores spacing in the results.
type Pipeline struct {
	Analyzer Analyzer
	Backend  Backend
}

// NewPipeline wraps resolved analyzer. It does not check arguments, use Ready for that.
func NewPipeline(a Analyzer, b Backend) *Pipeline {
	return &Pipeline{Analyzer: a, Backend: b}
}

// Ready reports whether pipeline has analyzer to work with.
func (p *Pipeline) Ready() bool {
	return p != nil && p.Analyzer != nil && p.Backend != BackendNone
}

// Pos returns tagged morphemes of text with whitespace tokens restored.
func (p *Pipeline) Pos(text string) ([]Token, error) {
	if !p.Ready() {
		return nil, ErrNoAnalyzer
	}
	tokens, err := p.Analyzer.Pos(text)
	if err != nil {
		return nil, fmt.Errorf("%s analyzer failed: %w", p.Backend, err)
	}
	return RestoreSpacing(text, tokens)
}

// Morphs returns morphemes of text with whitespace restored.
func (p *Pipeline) Morphs(text string) ([]string, error) {
	tokens, err := p.Pos(text)
	if err != nil {
		return nil, err
	}
	return Surfaces(tokens), nil
}
