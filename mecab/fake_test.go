package mecab

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

// call records single program invocation.
type call struct {
	stdin string
	name  string
	args  []string
}

// fakeSystem pretends to have some programs installed. Every installed program answers with a function of its input.
type fakeSystem struct {
	programs map[string]func(stdin string, args []string) ([]byte, error)
	dirs     map[string]bool
	windows  string
	calls    []call
}

func newFakeSystem() *fakeSystem {
	return &fakeSystem{
		programs: make(map[string]func(string, []string) ([]byte, error)),
		dirs:     make(map[string]bool),
	}
}

func (f *fakeSystem) system() *system {
	return &system{
		run: func(stdin, name string, arg ...string) ([]byte, error) {
			f.calls = append(f.calls, call{stdin: stdin, name: name, args: arg})
			p, ok := f.programs[name]
			if !ok {
				return nil, fmt.Errorf("%s: not found", name)
			}
			return p(stdin, arg)
		},
		lookPath: func(name string) (string, error) {
			if _, ok := f.programs[name]; ok {
				return name, nil
			}
			return "", errors.New("executable file not found in $PATH")
		},
		stat: func(name string) (os.FileInfo, error) {
			if f.dirs[name] {
				return nil, nil
			}
			return nil, os.ErrNotExist
		},
		findWindowsMeCab: func() (string, error) {
			if len(f.windows) == 0 {
				return "", ErrNoWindowsMeCab
			}
			return f.windows, nil
		},
	}
}

func (f *fakeSystem) names() []string {
	out := make([]string, 0, len(f.calls))
	for _, c := range f.calls {
		out = append(out, filepath.Base(c.name))
	}
	return out
}

func (f *fakeSystem) dump(t *testing.T) {
	t.Helper()
	var buf bytes.Buffer
	spew.Fprintf(&buf, "calls %#v", f.calls)
	t.Log(buf.String())
}

// mecabOutput imitates mecab-ko default output: every whitespace separated word becomes NNG morpheme.
func mecabOutput(stdin string) []byte {
	var b strings.Builder
	for _, line := range strings.Split(stdin, "\n") {
		for _, w := range strings.Fields(line) {
			fmt.Fprintf(&b, "%s\tNNG,*,T,%s,*,*,*,*\n", w, w)
		}
		b.WriteString("EOS\n")
	}
	return []byte(b.String())
}

// mecabProgram is fake mecab-ko executable of specified version.
func mecabProgram(version string) func(string, []string) ([]byte, error) {
	return func(stdin string, args []string) ([]byte, error) {
		if len(args) == 1 && args[0] == "-v" {
			return []byte("mecab of " + version + "\n"), nil
		}
		for _, a := range args {
			if strings.HasPrefix(a, "--node-format") {
				return nodeOutput(stdin), nil
			}
		}
		return mecabOutput(stdin), nil
	}
}

// nodeOutput imitates mecab output with node formats from nodeFormatArgs.
func nodeOutput(stdin string) []byte {
	var b strings.Builder
	for _, line := range strings.Split(stdin, "\n") {
		b.WriteString("\tBOS/EOS,*,*,*,*,*,*,*,*\n")
		for _, w := range strings.Fields(line) {
			fmt.Fprintf(&b, "%s\tNNG,*,T,%s,*,*,*,*\n", w, w)
		}
		b.WriteString("\tBOS/EOS,*,*,*,*,*,*,*,*\n")
	}
	return []byte(b.String())
}

// pythonProgram is fake interpreter which has requested packages importable. Every word gets the same tag.
func pythonProgram(tag string, pkgs ...string) func(string, []string) ([]byte, error) {
	return func(stdin string, args []string) ([]byte, error) {
		if len(args) < 3 || args[0] != "-c" {
			return nil, errors.New("bad arguments")
		}
		installed := false
		for _, pkg := range pkgs {
			installed = installed || strings.Contains(args[1], "from "+pkg+" import")
		}
		if !installed {
			return nil, errors.New("python ended with code 1: ModuleNotFoundError")
		}
		words := strings.Fields(stdin)
		switch args[2] {
		case pyMethodPos:
			pairs := make([]string, 0, len(words))
			for _, w := range words {
				pairs = append(pairs, fmt.Sprintf("[%q, %q]", w, tag))
			}
			return []byte("[" + strings.Join(pairs, ", ") + "]"), nil
		case pyMethodMorphs:
			quoted := make([]string, 0, len(words))
			for _, w := range words {
				quoted = append(quoted, fmt.Sprintf("%q", w))
			}
			return []byte("[" + strings.Join(quoted, ", ") + "]"), nil
		}
		return nil, errors.New("python ended with code 1: AttributeError")
	}
}
