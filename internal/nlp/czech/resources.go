package czech

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads resource overrides from a YAML file. Fields left empty in the
// file keep their compiled-in defaults, so a file can override just the
// stopword list or just the lexicons.
func Load(path string) (*Resources, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading resource file: %w", err)
	}

	var override Resources
	if err := yaml.Unmarshal(data, &override); err != nil {
		return nil, fmt.Errorf("parsing resource file: %w", err)
	}

	res := Default()
	if len(override.Stopwords) > 0 {
		res.Stopwords = override.Stopwords
	}
	if len(override.LemmaExceptions) > 0 {
		res.LemmaExceptions = override.LemmaExceptions
	}
	if len(override.LemmaSuffixes) > 0 {
		res.LemmaSuffixes = override.LemmaSuffixes
	}
	if len(override.PositiveWords) > 0 {
		res.PositiveWords = override.PositiveWords
	}
	if len(override.NegativeWords) > 0 {
		res.NegativeWords = override.NegativeWords
	}

	return res, nil
}
