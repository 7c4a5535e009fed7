package morphemes

import (
	"sync"
)

// Canary is the input used to make sure freshly started analyzer actually works.
const Canary = "_"

// Analyzer is common shape of all supported morpheme analyzers. Analyzer output never contains whitespace.
// Implementations are not safe for concurrent use, see Locked.
type Analyzer interface {
	// Pos splits text into morphemes and tags them.
	Pos(text string) ([]Token, error)
	// Morphs splits text into morphemes.
	Morphs(text string) ([]string, error)
}

type locked struct {
	mu sync.Mutex
	a  Analyzer
}

// Locked serializes access to analyzer so it could be shared between goroutines.
func Locked(a Analyzer) Analyzer {
	if a == nil {
		return nil
	}
	if l, ok := a.(*locked); ok {
		return l
	}
	return &locked{a: a}
}

func (l *locked) Pos(text string) ([]Token, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.a.Pos(text)
}

func (l *locked) Morphs(text string) ([]string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.a.Morphs(text)
}

// Close closes wrapped analyzer if it holds anything.
func (l *locked) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if c, ok := l.a.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
