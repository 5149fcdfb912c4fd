package runner

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/projectdiscovery/gologger"
	fileutil "github.com/projectdiscovery/utils/file"
)

// defaultConfigYAML seeds config_<version>.yaml the first time the CLI
// runs.
const defaultConfigYAML = `defaultWordSource: ""
defaultZipfSkew: 0.9
defaultDateStart: "1/1/2000"
wordsPerLine: 14
`

func getUserHomeDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic(err)
	}
	return homeDir
}

func init() {
	defaultCfg := filepath.Join(getUserHomeDir(), fmt.Sprintf(".config/gentemplate/config_%v.yaml", version))
	if fileutil.FileExists(defaultCfg) {
		if bin, err := os.ReadFile(defaultCfg); err == nil {
			var probe map[string]interface{}
			if errx := yaml.Unmarshal(bin, &probe); errx != nil {
				gologger.Error().Msgf("gentemplate yaml configuration syntax error.\n%v\n", yaml.FormatError(errx, true, true))
				os.Exit(1)
			}
		}
		return
	}
	if err := validateDir(filepath.Join(getUserHomeDir(), ".config/gentemplate")); err != nil {
		gologger.Error().Msgf("gentemplate config dir not found and failed to create got: %v", err)
		return
	}
	if err := os.WriteFile(defaultCfg, []byte(defaultConfigYAML), 0600); err != nil {
		gologger.Error().Msgf("failed to save default config to %v got: %v", defaultCfg, err)
	}
}

// validateDir checks if dir exists, creating it if not.
func validateDir(dirPath string) error {
	if fileutil.FolderExists(dirPath) {
		return nil
	}
	return fileutil.CreateFolder(dirPath)
}
