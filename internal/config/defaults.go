package config

const (
	DefaultPort        = 8080
	DefaultShareURL    = "https://wa.me/?text={text}"
	DefaultAttribution = "\n\n— أذكار وأدعية"
	DefaultSiteTitle   = "أذكار وأدعية"
)

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port: DefaultPort,
		},
		Share: ShareConfig{
			URLTemplate: DefaultShareURL,
			Attribution: DefaultAttribution,
		},
		Speech: SpeechConfig{
			Lang: "ar",
		},
		Site: SiteConfig{
			OutputDir: "site",
			Title:     DefaultSiteTitle,
		},
		LogLevel: "info",
	}
}
