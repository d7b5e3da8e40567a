package cliparse

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	APIBaseURL   string        `env:"PLANNER_API_URL"`
	DatabasePath string        `env:"PLANNER_DB"`
	OwnerName    string        `env:"PLANNER_OWNER_NAME"`
	OwnerEmail   string        `env:"PLANNER_OWNER_EMAIL"`
	Locale       string        `env:"PLANNER_LOCALE"`
	HTTPTimeout  time.Duration `env:"PLANNER_HTTP_TIMEOUT"`

	// ExportPath is flag-only: when set, the CLI writes the itinerary
	// as iCalendar to this path.
	ExportPath string `env:"-"`

	// Trip creation inputs are per-invocation, so flag-only. They are
	// used when no trip is open on the device.
	Destination string `env:"-"`
	StartDate   string `env:"-"`
	EndDate     string `env:"-"`
	Invites     string `env:"-"`
}

// ParseFlags reads configuration from the environment, then lets CLI flags
// override it, then fills defaults.
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	fs := flag.NewFlagSet("planner", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "api", cfg.APIBaseURL, "Planner API base URL")
	fs.StringVar(&cfg.DatabasePath, "db", cfg.DatabasePath, "Device store file path")
	fs.StringVar(&cfg.OwnerName, "owner-name", cfg.OwnerName, "Trip owner name sent on trip creation")
	fs.StringVar(&cfg.OwnerEmail, "owner-email", cfg.OwnerEmail, "Trip owner email sent on trip creation")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "Display locale (pt-BR or en)")
	fs.DurationVar(&cfg.HTTPTimeout, "timeout", cfg.HTTPTimeout, "API request timeout")
	fs.StringVar(&cfg.ExportPath, "export", "", "Write the itinerary as iCalendar to this path")
	fs.StringVar(&cfg.Destination, "destination", "", "Destination for a new trip")
	fs.StringVar(&cfg.StartDate, "start", "", "New trip start date (YYYY-MM-DD)")
	fs.StringVar(&cfg.EndDate, "end", "", "New trip end date (YYYY-MM-DD)")
	fs.StringVar(&cfg.Invites, "invites", "", "Comma-separated guest emails for a new trip")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Defaults
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = "http://localhost:3333"
	}
	if cfg.DatabasePath == "" {
		cfg.DatabasePath = "planner.db"
	}
	if cfg.Locale == "" {
		cfg.Locale = "pt-BR"
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 15 * time.Second
	}

	return cfg, nil
}
