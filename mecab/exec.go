package mecab

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Longest stderr line logged as is. Anything longer is read and thrown away so program is never blocked on full pipe.
const maxStderrLine = 1024 * 1024

// runner executes program with arguments feeding stdin to it and returns whatever program printed to stdout.
type runner func(stdin, name string, arg ...string) ([]byte, error)

// execRunner runs external programs, their stderr goes to log.
func execRunner(log *zap.Logger) runner {

	return func(stdin, name string, arg ...string) ([]byte, error) {

		var stdout bytes.Buffer

		cmd := exec.Command(name, arg...)
		cmd.Stdin = strings.NewReader(stdin)
		cmd.Stdout = &stdout

		stderr, err := cmd.StderrPipe()
		if err != nil {
			return nil, fmt.Errorf("unable to redirect %s stderr: %w", filepath.Base(name), err)
		}

		start := time.Now()
		if err := cmd.Start(); err != nil {
			return nil, fmt.Errorf("unable to start %s: %w", filepath.Base(name), err)
		}

		var lines []string
		scanner := bufio.NewScanner(stderr)
		scanner.Buffer(make([]byte, 0, 64*1024), maxStderrLine)
		for scanner.Scan() {
			if s := scanner.Text(); len(s) > 0 {
				lines = append(lines, s)
				log.Debug(filepath.Base(name), zap.String("stderr", s))
			}
		}
		if err := scanner.Err(); err != nil {
			log.Debug("Unable to read stderr, dropping the rest", zap.String("program", name), zap.Error(err))
			if _, err := io.Copy(io.Discard, stderr); err != nil {
				log.Debug("Unable to drain stderr", zap.String("program", name), zap.Error(err))
			}
		}

		if err := cmd.Wait(); err != nil {
			var ee *exec.ExitError
			if errors.As(err, &ee) {
				msg := ""
				if len(lines) > 0 {
					msg = ": " + lines[len(lines)-1]
				}
				return nil, fmt.Errorf("%s ended with code %d%s", filepath.Base(name), ee.ExitCode(), msg)
			}
			return nil, fmt.Errorf("%s returned error: %w", filepath.Base(name), err)
		}

		log.Debug("External analyzer is done",
			zap.String("program", name),
			zap.Strings("args", arg),
			zap.Int("input", len(stdin)),
			zap.Duration("elapsed", time.Since(start)),
		)
		return stdout.Bytes(), nil
	}
}
