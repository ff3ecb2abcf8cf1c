package playground

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/nowplaying-cli/nowplaying/filesystem"
	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

//go:embed samples/*.html samples/*.json
var samples embed.FS

// Samples lists the names of the built-in demo pages.
func Samples() []string {
	entries := lo.Must(samples.ReadDir("samples"))
	names := lo.FilterMap(entries, func(e fs.DirEntry, _ int) (string, bool) {
		return strings.CutSuffix(e.Name(), ".html")
	})
	slices.Sort(names)
	return names
}

// LoadSample loads a built-in demo page by name.
func LoadSample(name string) (*Playground, error) {
	document, err := samples.ReadFile(path.Join("samples", name+".html"))
	if err != nil {
		return nil, fmt.Errorf("unknown sample %q", name)
	}

	data, err := samples.ReadFile(path.Join("samples", name+".json"))
	if err != nil {
		return New(string(document), Fixture{})
	}

	fx, err := ParseFixture(data)
	if err != nil {
		return nil, err
	}
	return New(string(document), fx)
}

// Export writes the sample's page and fixture into dir and returns the written paths. Existing
// files are only replaced when overwrite is set.
func Export(name, dir string, overwrite bool) ([]string, error) {
	if !lo.Contains(Samples(), name) {
		return nil, fmt.Errorf("unknown sample %q", name)
	}

	if err := filesystem.API().MkdirAll(dir, os.ModePerm); err != nil {
		return nil, err
	}

	var written []string
	for _, ext := range []string{".html", ".json"} {
		data, err := samples.ReadFile(path.Join("samples", name+ext))
		if err != nil {
			continue
		}

		target := filepath.Join(dir, name+ext)
		if exists, _ := filesystem.API().Exists(target); exists && !overwrite {
			return written, fmt.Errorf("%s already exists", target)
		}
		if err := filesystem.API().WriteFile(target, data, 0o644); err != nil {
			return written, err
		}
		written = append(written, target)
	}
	return written, nil
}
