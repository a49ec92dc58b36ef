package bigfile

import (
	"fmt"
	"path/filepath"

	"go-simpler.org/env"
)

// Config controls how a [Loader] searches for and opens libraries.
type Config struct {
	// Directories searched before the platform search path, separated by os.PathListSeparator.
	Path string `env:"BIGFILE_LIBRARY_PATH"`
	// Resolve symbols on first use (RTLD_LAZY) instead of at load time (RTLD_NOW).
	Lazy bool `env:"BIGFILE_DLOPEN_LAZY"`
	// Keep the library's symbols out of the global namespace (RTLD_LOCAL instead of RTLD_GLOBAL).
	Local bool `env:"BIGFILE_DLOPEN_LOCAL"`
}

// LoadConfig returns a Config populated from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// Dirs returns the configured search directories in order.
func (c Config) Dirs() []string {
	return filepath.SplitList(c.Path)
}
