package pipeline

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/mosaic/pkg/errors"
)

// LoadConfig reads Options from a TOML file. Unknown keys are rejected so
// that typos do not silently fall back to defaults.
//
//	tiles = 40
//	columns = 6
//	tall_rate = 0.2
//	formats = ["html", "svg"]
func LoadConfig(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	return ParseConfig(data)
}

// ParseConfig decodes TOML-encoded Options.
func ParseConfig(data []byte) (Options, error) {
	var opts Options
	md, err := toml.Decode(string(data), &opts)
	if err != nil {
		return Options{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Options{}, errors.New(errors.ErrCodeInvalidConfig, "unknown config keys: %s", strings.Join(keys, ", "))
	}
	return opts, nil
}
