package config

// Config is the top-level azkar configuration, corresponding to .azkar.yml.
type Config struct {
	Server   ServerConfig  `yaml:"server" koanf:"server"`
	Content  ContentConfig `yaml:"content" koanf:"content"`
	Share    ShareConfig   `yaml:"share" koanf:"share"`
	Speech   SpeechConfig  `yaml:"speech" koanf:"speech"`
	Site     SiteConfig    `yaml:"site" koanf:"site"`
	LogLevel string        `yaml:"log_level" koanf:"log_level"`
}

// ServerConfig holds settings for `azkar serve`.
type ServerConfig struct {
	Port            int  `yaml:"port" koanf:"port"`
	AllowAllOrigins bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}

// ContentConfig points at YAML content files. Empty means the bundled content.
type ContentConfig struct {
	Paths []string `yaml:"paths,omitempty" koanf:"paths"`
}

// ShareConfig controls the outbound share link.
type ShareConfig struct {
	URLTemplate string `yaml:"url_template" koanf:"url_template"`
	Attribution string `yaml:"attribution" koanf:"attribution"`
}

// SpeechConfig selects the text-to-speech command used by the CLI.
// An empty command picks a platform default.
type SpeechConfig struct {
	Command []string `yaml:"command,omitempty" koanf:"command"`
	Lang    string   `yaml:"lang" koanf:"lang"`
}

// SiteConfig holds settings for `azkar site`.
type SiteConfig struct {
	OutputDir string `yaml:"output_dir" koanf:"output_dir"`
	Title     string `yaml:"title" koanf:"title"`
}
