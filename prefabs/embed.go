package prefabs

import (
	"embed"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

//go:embed *.yaml
var PrefabsFS embed.FS

// DiskRoot is the directory checked for overrides before the embedded copy.
var DiskRoot = "prefabs"

// Load returns a tuning file, preferring the on-disk copy so edits show up
// without a rebuild.
func Load(name string) ([]byte, error) {
	clean := cleanPrefabPath(name)
	if data, err := os.ReadFile(diskPath(clean)); err == nil {
		return data, nil
	}
	return PrefabsFS.ReadFile(clean)
}

// LoadScript resolves name under scripts/, with the same disk override as Load.
func LoadScript(name string) ([]byte, error) {
	clean := cleanScriptPath(name)
	if data, err := os.ReadFile(diskPath(clean)); err == nil {
		return data, nil
	}
	return ScriptsFS.ReadFile(clean)
}

// ScriptNames lists the embedded AI scripts by base name.
func ScriptNames() []string {
	matches, err := fs.Glob(ScriptsFS, "scripts/*.tengo")
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, path.Base(m))
	}
	sort.Strings(out)
	return out
}

func ModTime(name string) (time.Time, bool) {
	clean := cleanPrefabPath(name)
	info, err := os.Stat(diskPath(clean))
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

func cleanPrefabPath(p string) string {
	if p == "" {
		return ""
	}
	s := filepath.ToSlash(p)
	if after, ok := strings.CutPrefix(s, "prefabs/"); ok {
		return after
	}
	return s
}

func cleanScriptPath(p string) string {
	if p == "" {
		return ""
	}
	s := cleanPrefabPath(p)
	s = strings.TrimPrefix(s, "scripts/")
	return "scripts/" + s
}

func diskPath(clean string) string {
	return filepath.Join(DiskRoot, filepath.FromSlash(clean))
}
