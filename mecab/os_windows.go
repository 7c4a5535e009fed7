//go:build windows
// +build windows

package mecab

import (
	"os"
	"path/filepath"

	"golang.org/x/sys/windows/registry"
)

// mecabExe provides OS specific name of mecab executable.
func mecabExe() string {
	return "mecab.exe"
}

// pythonExe provides OS specific name of python interpreter.
func pythonExe() string {
	return "python.exe"
}

// defaultWindowsMeCab is where mecab-ko-msvc is installed by default.
const defaultWindowsMeCab = `C:\mecab\mecab.exe`

// mecabrc returns location of mecab resource file written by MeCab installer.
func mecabrc() string {
	for _, root := range []registry.Key{registry.CURRENT_USER, registry.LOCAL_MACHINE} {
		k, err := registry.OpenKey(root, `SOFTWARE\MeCab`, registry.QUERY_VALUE)
		if err != nil {
			continue
		}
		v, _, err := k.GetStringValue("mecabrc")
		k.Close()
		if err == nil && len(v) > 0 {
			return v
		}
	}
	return ""
}

// findWindowsMeCab looks for mecab.exe next to registered mecabrc, then in default mecab-ko-msvc location.
func findWindowsMeCab() (string, error) {

	var paths []string
	if rc := mecabrc(); len(rc) > 0 {
		dir := filepath.Dir(rc)
		paths = append(paths,
			filepath.Join(dir, "mecab.exe"),                      // mecab-ko-msvc: C:\mecab\mecabrc
			filepath.Join(filepath.Dir(dir), "bin", "mecab.exe"), // MeCab installer: <root>\etc\mecabrc
		)
	}
	paths = append(paths, defaultWindowsMeCab)

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", ErrNoWindowsMeCab
}
