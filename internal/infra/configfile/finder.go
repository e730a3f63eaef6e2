package configfile

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/aalvaropc/customs/internal/domain"
)

const DefaultFileName = "customs.yaml"

// Finder locates the directory holding customs.yaml by searching upward.
type Finder struct {
	ConfigFile string // defaults to "customs.yaml"
}

func NewFinder() *Finder {
	return &Finder{ConfigFile: DefaultFileName}
}

func (f *Finder) FindRoot(startDir string) (string, error) {
	if startDir == "" {
		return "", &domain.OpError{
			Op:   "configfile.findroot",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("startDir is empty"),
		}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{
			Op:   "configfile.findroot",
			Kind: domain.KindInvalidConfig,
			Err:  err,
		}
	}

	// If user passes a file path, use its directory.
	info, statErr := os.Stat(abs)
	if statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	name := f.fileName()

	cur := filepath.Clean(abs)
	for {
		if _, err := os.Stat(filepath.Join(cur, name)); err == nil {
			return cur, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			return "", &domain.OpError{
				Op:   "configfile.findroot",
				Kind: domain.KindNotFound,
				Err:  domain.ErrNotFound,
			}
		}
		cur = parent
	}
}

func (f *Finder) fileName() string {
	if f.ConfigFile == "" {
		return DefaultFileName
	}
	return f.ConfigFile
}
