package mecab

import (
	"runtime"
	"strings"
	"testing"
	"time"

	td "github.com/maxatome/go-testdeep"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func shellRunner(t *testing.T) (runner, *observer.ObservedLogs) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("needs POSIX shell")
	}
	core, logs := observer.New(zapcore.DebugLevel)
	return execRunner(zap.New(core)), logs
}

// runShell fails test instead of waiting forever when runner does not return.
func runShell(t *testing.T, run runner, stdin, script string) ([]byte, error) {
	t.Helper()

	type result struct {
		out []byte
		err error
	}
	done := make(chan result, 1)
	go func() {
		out, err := run(stdin, "sh", "-c", script)
		done <- result{out, err}
	}()

	select {
	case r := <-done:
		return r.out, r.err
	case <-time.After(30 * time.Second):
		t.Fatalf("sh -c %q did not finish", script)
	}
	return nil, nil
}

func stderrLines(logs *observer.ObservedLogs) []string {
	var out []string
	for _, e := range logs.FilterMessage("sh").All() {
		out = append(out, e.ContextMap()["stderr"].(string))
	}
	return out
}

func TestExecRunnerStdio(t *testing.T) {

	run, logs := shellRunner(t)

	out, err := runShell(t, run, "아버지가 방에\n들어가신다", "cat")
	td.CmpNoError(t, err)
	td.Cmp(t, string(out), "아버지가 방에\n들어가신다")

	out, err = runShell(t, run, "", "echo one >&2; echo >&2; echo two >&2; echo out")
	td.CmpNoError(t, err)
	td.Cmp(t, string(out), "out\n")
	td.Cmp(t, stderrLines(logs), []string{"one", "two"})
	td.Cmp(t, logs.FilterMessage("External analyzer is done").Len(), 2)
}

func TestExecRunnerExitCode(t *testing.T) {

	run, _ := shellRunner(t)

	out, err := runShell(t, run, "", "echo partial; echo first >&2; echo bad thing >&2; exit 3")
	td.CmpNil(t, out)
	td.CmpString(t, err, "sh ended with code 3: bad thing")

	_, err = runShell(t, run, "", "exit 1")
	td.CmpString(t, err, "sh ended with code 1")

	_, err = run("", "/nonexistent/kmorph/mecab")
	td.CmpContains(t, err, "unable to start mecab")
}

func TestExecRunnerLongStderr(t *testing.T) {

	run, logs := shellRunner(t)

	// long line still fits and is logged whole
	out, err := runShell(t, run, "", `head -c 200000 /dev/zero | tr '\0' x >&2; echo '["a"]'`)
	td.CmpNoError(t, err)
	td.Cmp(t, string(out), "[\"a\"]\n")
	lines := stderrLines(logs)
	if td.Cmp(t, lines, td.Len(1)) {
		td.Cmp(t, lines[0], strings.Repeat("x", 200000))
	}

	// too long line is dropped but program is not left blocked on stderr
	out, err = runShell(t, run, "", `head -c 3000000 /dev/zero | tr '\0' x >&2; echo '["b"]'`)
	td.CmpNoError(t, err)
	td.Cmp(t, string(out), "[\"b\"]\n")
	td.Cmp(t, logs.FilterMessage("Unable to read stderr, dropping the rest").Len(), 1)
}
