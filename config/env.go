package config

import (
	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds everything the service reads from the environment.
type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	SupabaseURL string `env:"SUPABASE_URL,required"`
	SupabaseKey string `env:"SUPABASE_KEY,required"`

	// Public origin of the web app, used for question-submission links and
	// as the OAuth redirect target.
	AppOrigin     string `env:"APP_ORIGIN" envDefault:"https://app.qalive.ink"`
	OAuthRedirect string `env:"OAUTH_REDIRECT_URL" envDefault:"https://app.qalive.ink"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads .env if present, then parses the environment into a Config.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		Logger.Warn("Error loading .env file, will use environment variables instead:", err)
		// Don't fail here - continue with the process environment
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
