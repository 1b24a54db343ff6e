package lexconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/pasclex/cmds"
	"github.com/reusee/pasclex/configs"
	"github.com/reusee/pasclex/logs"
	"github.com/reusee/pasclex/modes"
)

//go:embed schema.cue
var schema string

var configFiles = cmds.Collect[string]("-config", "read settings from this cue file, may repeat")

var filenames = []string{
	"pasclex.cue",
	".pasclex.cue",
}

func (Module) ConfigsLoader(
	logger logs.Logger,
	mode modes.Mode,
) (loader configs.Loader) {

	// explicit files first
	paths := append([]string(nil), *configFiles...)

	defer func() {
		if loaded := loader.Paths(); len(loaded) > 0 {
			logger.Info("config file",
				"paths", loaded,
			)
		}
	}()

	if mode == modes.ModeDevelopment {
		return configs.NewLoader(paths, schema)
	}

	// working directory
	workingDir, err := os.Getwd()
	if err == nil {
		paths = append(paths, existing(workingDir)...)
	}

	// user config dir
	configDir, err := os.UserConfigDir()
	if err == nil {
		paths = append(paths, existing(configDir)...)
	}

	// system wide dir
	paths = append(paths, existing("/etc")...)

	return configs.NewLoader(paths, schema)
}

func existing(dir string) (ret []string) {
	for _, filename := range filenames {
		path := filepath.Join(dir, filename)
		if _, err := os.Stat(path); err == nil {
			ret = append(ret, path)
		}
	}
	return
}
