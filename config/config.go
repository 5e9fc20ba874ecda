package config

import (
	"encoding/base64"
	"errors"
	"fmt"
)

// DefaultAPIBase is the backend the roster talks to when HRMS_API_BASE is unset.
// Override at build time with -ldflags "-X hrmslite.com/hrms/config.DefaultAPIBase=...".
var DefaultAPIBase = "http://localhost:8000"

var ErrNoSessionSecret = errors.New("HRMS_SESSION_SECRET is not set")

type Slack struct {
	Token          string `env:"SLACK_BOT_TOKEN"`
	InfoChannelID  string `env:"SLACK_INFO_CHANNEL"`
	ErrorChannelID string `env:"SLACK_ERROR_CHANNEL"`
}

// API configures the REST backend.
type API struct {
	Addr        string `env:"HRMS_API_ADDR" envDefault:":8000"`
	DatabaseURL string `env:"DATABASE_URL" envDefault:"sqlite://hrms.db"`
	DBLogLevel  string `env:"HRMS_DB_LOG_LEVEL" envDefault:"warn"`

	// SSMDatabases names an SSM parameter holding a YAML database list. When
	// set, Database picks the entry to use instead of DatabaseURL.
	SSMDatabases string `env:"HRMS_SSM_DATABASES"`
	Database     string `env:"HRMS_DATABASE"`

	Slack Slack
}

// Client configures access to the REST backend.
type Client struct {
	APIBase  string `env:"HRMS_API_BASE"`
	APIToken string `env:"HRMS_API_TOKEN"`
}

func (c Client) BaseURL() string {
	if c.APIBase != "" {
		return c.APIBase
	}
	return DefaultAPIBase
}

// Web configures the browser-facing roster front end.
type Web struct {
	Client
	Addr          string `env:"HRMS_WEB_ADDR" envDefault:":8090"`
	SessionSecret string `env:"HRMS_SESSION_SECRET"`
}

// Secret decodes the base64 session signing secret.
func (w Web) Secret() ([]byte, error) {
	if w.SessionSecret == "" {
		return nil, ErrNoSessionSecret
	}
	secret, err := base64.StdEncoding.DecodeString(w.SessionSecret)
	if err != nil {
		return nil, fmt.Errorf("decode session secret: %w", err)
	}
	return secret, nil
}
