package config

import (
	_ "embed"
)

//go:embed defaults/wordle.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration, used if even the
// embedded YAML cannot be parsed.
func Default() Config {
	return Config{
		Source: SourceConfig{
			APIURL:    "https://random-word-api.herokuapp.com/word?length={length}&number={count}",
			TimeoutMS: 5000,
		},
		UI: UIConfig{
			ShowKeyboard: true,
		},
	}
}
