package minicconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/minic/configs"
	"github.com/reusee/minic/logs"
	"github.com/reusee/minic/modes"
)

//go:embed schema.cue
var schema string

var configFilenames = []string{
	"minic.cue",
	".minic.cue",
}

// ConfigsLoader looks in the working directory, then the user config directory, then /etc.
// Nothing is loaded in development mode so tests do not depend on the machine.
func (Module) ConfigsLoader(
	logger logs.Logger,
	mode modes.Mode,
) configs.Loader {
	if mode == modes.ModeDevelopment {
		return configs.NewLoader(nil, schema)
	}

	var dirs []string
	if dir, err := os.Getwd(); err == nil {
		dirs = append(dirs, dir)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}
	dirs = append(dirs, "/etc")

	var paths []string
	for _, dir := range dirs {
		for _, filename := range configFilenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}
	if len(paths) > 0 {
		logger.Info("config file", "paths", paths)
	}

	return configs.NewLoader(paths, schema)
}
