//go:build !windows
// +build !windows

package mecab

// mecabExe provides OS specific name of mecab executable.
func mecabExe() string {
	return "mecab"
}

// pythonExe provides OS specific name of python interpreter.
func pythonExe() string {
	return "python3"
}

// findWindowsMeCab - mecab-ko-msvc only exists on Windows.
func findWindowsMeCab() (string, error) {
	return "", ErrNoWindowsMeCab
}
