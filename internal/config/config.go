// Package config provides YAML-based configuration loading for the game.
package config

// Config contains all tunable settings.
type Config struct {
	Source SourceConfig `yaml:"source"`
	UI     UIConfig     `yaml:"ui"`
}

// SourceConfig configures the remote word endpoint.
// The {length} and {count} placeholders in APIURL are substituted per
// request.
type SourceConfig struct {
	APIURL    string `yaml:"api_url"`
	TimeoutMS int    `yaml:"timeout_ms"`
}

// UIConfig configures presentation details.
type UIConfig struct {
	ShowKeyboard bool `yaml:"show_keyboard"`
}
