package template

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFilePath is a conventional location for a Config file
// under the user's home directory. The CLI wrapper does not use it; it
// seeds its own config_<version>.yaml in the same folder.
var DefaultConfigFilePath = filepath.Join(getUserHomeDir(), ".config/gentemplate/config.yaml")

// Config holds library-level defaults: default word-list source when a
// Words segment omits source=, default Zipf skew, default Date start, and
// the Words wrap width. NewConfig reads it and GenerateSample writes it;
// ParseFile and ParseString take no Config, so its values do not change
// how a template compiles or generates (the wrap width in use is the
// wordsPerLine constant in defaults.go).
type Config struct {
	DefaultWordSource string  `yaml:"defaultWordSource"`
	DefaultZipfSkew   float64 `yaml:"defaultZipfSkew"`
	DefaultDateStart  string  `yaml:"defaultDateStart"`
	WordsPerLine      int     `yaml:"wordsPerLine"`
}

// NewConfig reads a Config from filePath.
func NewConfig(filePath string) (*Config, error) {
	bin, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err = yaml.Unmarshal(bin, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// GenerateSample writes a sample config file with library default values.
func GenerateSample(filePath string) error {
	cfg := Config{
		DefaultWordSource: "",
		DefaultZipfSkew:   defaultZipfSkew,
		DefaultDateStart:  "1/1/2000",
		WordsPerLine:      wordsPerLine,
	}
	bin, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, bin, 0644)
}

func getUserHomeDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic(err)
	}
	return homeDir
}
