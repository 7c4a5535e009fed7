package mecab

import (
	"testing"

	td "github.com/maxatome/go-testdeep"
	"go.uber.org/zap"

	"github.com/rupor-github/kmorph/config"
	"github.com/rupor-github/kmorph/morphemes"
)

func resolve(conf *config.Config, f *fakeSystem, light bool) (morphemes.Analyzer, morphemes.Backend) {
	var adapters []morphemes.Adapter
	if light {
		adapters = lightAdapters(conf, f.system(), zap.NewNop())
	} else {
		adapters = fullAdapters(conf, f.system(), zap.NewNop())
	}
	return morphemes.NewResolver(nil, adapters...).Resolve()
}

func TestFullProfileOrder(t *testing.T) {

	adapters := fullAdapters(config.Default(), newFakeSystem().system(), zap.NewNop())
	names := make([]string, 0, len(adapters))
	backends := make([]morphemes.Backend, 0, len(adapters))
	for _, a := range adapters {
		names = append(names, a.Name)
		backends = append(backends, a.Backend)
	}
	td.Cmp(t, names, []string{AdapterMeCab, AdapterKoNLPy, AdapterWinMeCab, AdapterWinKoNLPy})
	td.Cmp(t, backends, []morphemes.Backend{
		morphemes.BackendMeCab, morphemes.BackendKoNLPy, morphemes.BackendMeCab, morphemes.BackendKoNLPy,
	})
}

func TestFullProfileMeCab(t *testing.T) {

	f := newFakeSystem()
	f.programs[mecabExe()] = mecabProgram("0.996/ko-0.9.2")
	f.programs[pythonExe()] = pythonProgram("NNG", "konlpy.tag")

	a, b := resolve(config.Default(), f, false)
	td.Cmp(t, b, morphemes.BackendMeCab)
	td.Cmp(t, a, td.Isa(&Tagger{}))
	// python was never touched
	td.Cmp(t, f.names(), []string{mecabExe(), mecabExe()})
}

func TestFullProfileKoNLPy(t *testing.T) {

	f := newFakeSystem()
	f.programs[mecabExe()] = mecabProgram("0.9/ko-0.1") // too old
	f.programs[pythonExe()] = pythonProgram("NNG", "konlpy.tag")

	a, b := resolve(config.Default(), f, false)
	td.Cmp(t, b, morphemes.BackendKoNLPy)
	td.Cmp(t, a, td.Isa(&PyTagger{}))

	tokens, err := a.Pos("형태소 분석")
	td.CmpNoError(t, err)
	td.Cmp(t, tokens, []morphemes.Token{{Surface: "형태소", Tag: "NNG"}, {Surface: "분석", Tag: "NNG"}})
	f.dump(t)
}

func TestFullProfileWindowsMeCab(t *testing.T) {

	f := newFakeSystem()
	f.windows = `C:\mecab\mecab.exe`
	f.programs[f.windows] = mecabProgram("0.996/ko-0.9.2")
	f.programs[pythonExe()] = pythonProgram("NN", "pecab")

	a, b := resolve(config.Default(), f, false)
	td.Cmp(t, b, morphemes.BackendMeCab)
	td.Cmp(t, a, td.Isa(&NodeTagger{}))

	p := morphemes.NewPipeline(a, b)
	tokens, err := p.Pos("윈도우  에서")
	td.CmpNoError(t, err)
	td.Cmp(t, tokens, []morphemes.Token{{Surface: "윈도우", Tag: "NNG"}, {Surface: " ", Tag: "SP"}, {Surface: " ", Tag: "SP"}, {Surface: "에서", Tag: "NNG"}})
}

func TestFullProfileWindowsKoNLPy(t *testing.T) {

	f := newFakeSystem()
	f.dirs[config.DefaultWindowsDicDir] = true
	f.programs[pythonExe()] = pythonProgram("NNG", "konlpy.tag")

	conf := config.Default()
	conf.Analyzer.Disabled = []string{AdapterKoNLPy}

	a, b := resolve(conf, f, false)
	td.Cmp(t, b, morphemes.BackendKoNLPy)
	td.Cmp(t, a, td.Isa(&PyTagger{}))

	last := f.calls[len(f.calls)-1]
	td.Cmp(t, last.args[2:], []string{pyMethodPos, config.DefaultWindowsDicDir})
	td.CmpContains(t, last.args[1], "Mecab(dicpath=sys.argv[2])")
}

func TestFullProfileNothing(t *testing.T) {

	f := newFakeSystem()
	f.programs[pythonExe()] = pythonProgram("NNG", "pecab")

	a, b := resolve(config.Default(), f, false)
	td.CmpNil(t, a)
	td.Cmp(t, b, morphemes.BackendNone)
}

func TestLightProfile(t *testing.T) {

	f := newFakeSystem()
	f.programs[pythonExe()] = pythonProgram("NNG", "pecab", "konlpy.tag")

	a, b := resolve(config.Default(), f, true)
	td.Cmp(t, b, morphemes.BackendPeCab)
	td.Cmp(t, a, td.Isa(&PyTagger{}))

	conf := config.Default()
	conf.Analyzer.Disabled = []string{"PECAB"}
	a, b = resolve(conf, f, true)
	td.CmpNil(t, a)
	td.Cmp(t, b, morphemes.BackendNone)
}

func TestConfiguredPrograms(t *testing.T) {

	f := newFakeSystem()
	f.programs["/opt/mecab/bin/mecab"] = mecabProgram("0.996/ko-0.9.2")

	conf := config.Default()
	conf.Analyzer.MeCabPath = "/opt/mecab/bin/mecab"
	conf.Analyzer.MeCabDicDir = "/opt/mecab/dic"

	_, b := resolve(conf, f, false)
	td.Cmp(t, b, morphemes.BackendMeCab)
	td.Cmp(t, f.calls[len(f.calls)-1].args, []string{"-d", "/opt/mecab/dic"})
}

func TestEntryPointsAllDisabled(t *testing.T) {

	conf := config.Default()
	conf.Analyzer.Disabled = []string{AdapterMeCab, AdapterKoNLPy, AdapterWinMeCab, AdapterWinKoNLPy, AdapterPeCab}

	td.CmpEmpty(t, FullAdapters(conf, nil))
	td.CmpEmpty(t, LightAdapters(conf, nil))

	a, b := GetFullAnalyzer(conf, nil)
	td.CmpNil(t, a)
	td.Cmp(t, b, morphemes.BackendNone)

	a, b = GetLightAnalyzer(conf, nil)
	td.CmpNil(t, a)
	td.Cmp(t, b, morphemes.BackendNone)
}
