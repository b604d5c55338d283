// Package localdb locates the embedded database file the local development
// runtime keeps under its state directory.
package localdb

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"
	"golang.org/x/exp/slices"
)

var AppFs = afero.NewOsFs()

var ErrNotFound = errors.New("local D1 database not found")

type candidate struct {
	path    string
	modTime time.Time
}

// Find returns the absolute path of the most recently modified *.sqlite file
// under stateDir, searching recursively.
func Find(stateDir string) (string, error) {
	return FindFs(AppFs, stateDir)
}

func FindFs(fsys afero.Fs, stateDir string) (string, error) {
	var candidates []candidate

	err := afero.Walk(fsys, stateDir, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() || !strings.HasSuffix(info.Name(), ".sqlite") {
			return nil
		}

		candidates = append(candidates, candidate{path: path, modTime: info.ModTime()})

		return nil
	})

	if errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("%w: %s does not exist", ErrNotFound, stateDir)
	}

	if err != nil {
		return "", fmt.Errorf("failed to search %s: %w", stateDir, err)
	}

	if len(candidates) == 0 {
		return "", fmt.Errorf("%w: no .sqlite file in %s", ErrNotFound, stateDir)
	}

	slices.SortStableFunc(candidates, func(a, b candidate) int {
		return b.modTime.Compare(a.modTime)
	})

	newest, err := filepath.Abs(candidates[0].path)

	if err != nil {
		return "", err
	}

	return newest, nil
}
