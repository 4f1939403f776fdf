package cli

import (
	"os"
	"path/filepath"

	"github.com/rwx-research/hookcheck/internal/config"
	"github.com/rwx-research/hookcheck/internal/errors"
)

// Init writes a starter configuration file to `<dir>/.hookcheck/config.yaml`.
func (s Service) Init(cfg InitConfig) error {
	dir := filepath.Join(cfg.Dir, config.Directory)
	path := config.Path(cfg.Dir, config.FileExtensions[0])

	// Any existing configuration file blocks a new one, since both would be found by `config.Find`.
	for _, extension := range config.FileExtensions {
		existing := config.Path(cfg.Dir, extension)

		_, err := s.FileSystem.Stat(existing)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return errors.NewSystemError("unable to access %q: %s", existing, err)
		}
		if err != nil {
			continue
		}

		if !cfg.Force {
			return errors.NewConfigurationError("%q already exists; use --force to overwrite it", existing)
		}

		if existing != path {
			return errors.NewConfigurationError(
				"%q already exists; remove it before running 'hookcheck init --force'", existing,
			)
		}
	}

	if err := s.FileSystem.MkdirAll(dir, 0o750); err != nil {
		return errors.NewSystemError("unable to create %q: %s", dir, err)
	}

	file, err := s.FileSystem.Create(path)
	if err != nil {
		return errors.NewSystemError("unable to create %q: %s", path, err)
	}

	if err := config.Encode(file, config.Starter()); err != nil {
		_ = file.Close()
		return errors.WithStack(err)
	}

	if err := file.Close(); err != nil {
		return errors.NewSystemError("unable to write %q: %s", path, err)
	}

	s.Log.Infof("Wrote %s", path)
	return nil
}
