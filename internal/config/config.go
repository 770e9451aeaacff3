package config

import (
	"encoding/xml"
	"io"
	"os"
	"sync"
)

var (
	cfg  *APIConfig
	once sync.Once
)

// APIConfig represents the root element.
type APIConfig struct {
	XMLName     xml.Name      `xml:"API"`
	RequestDump bool          `xml:"REQUEST_DUMP,attr"`
	Context     ContextConfig `xml:"CONTEXT"`
	DB          DBConfig      `xml:"DB"`
	Auth        AuthConfig    `xml:"AUTH"`
	LLM         LLMConfig     `xml:"LLM"`
}

// ContextConfig holds basic server settings.
type ContextConfig struct {
	Port     int    `xml:"PORT"`
	Host     string `xml:"HOST"`
	Env      string `xml:"ENV"` // "production" enables secure cookies
	TimeZone string `xml:"TIME_ZONE"`
}

// DBConfig holds database connection settings.
type DBConfig struct {
	Host     string       `xml:"HOST"`
	Port     int          `xml:"PORT"`
	Name     string       `xml:"NAME"`
	Username string       `xml:"USERNAME"`
	Password string       `xml:"PASSWORD"`
	SSLMode  string       `xml:"SSL_MODE"`
	Pool     DBPoolConfig `xml:"POOL"`
}

// DBPoolConfig holds database connection pooling settings.
type DBPoolConfig struct {
	MaxOpenConns    int `xml:"MAX_OPEN_CONNS"`
	MaxIdleConns    int `xml:"MAX_IDLE_CONNS"`
	ConnMaxLifetime int `xml:"CONN_MAX_LIFETIME"` // minutes
}

// AuthConfig holds settings for the hosted auth provider.
type AuthConfig struct {
	BaseURL    string `xml:"BASE_URL"`
	AnonKey    string `xml:"ANON_KEY"`
	ServiceKey string `xml:"SERVICE_KEY"`
	JWTSecret  string `xml:"JWT_SECRET"`
}

// LLMConfig holds settings for the completion service.
type LLMConfig struct {
	BaseURL string `xml:"BASE_URL"`
	APIKey  string `xml:"API_KEY"`
	Model   string `xml:"MODEL"`
}

// LoadConfig loads and parses the XML configuration from the given file.
// Secrets may be supplied or overridden through the environment
// (OPENAI_API_KEY, AUTH_ANON_KEY, AUTH_SERVICE_KEY, AUTH_JWT_SECRET, APP_ENV).
func LoadConfig(xmlPath string) (*APIConfig, error) {
	once.Do(func() {
		f, err := os.Open(xmlPath)
		if err != nil {
			return
		}
		defer f.Close()

		data, err := io.ReadAll(f)
		if err != nil {
			return
		}

		var newCfg APIConfig
		if err := xml.Unmarshal(data, &newCfg); err != nil {
			return
		}

		applyEnvOverrides(&newCfg)
		cfg = &newCfg
	})

	if cfg == nil {
		return nil, os.ErrInvalid
	}
	return cfg, nil
}

// GetConfig returns the loaded configuration.
func GetConfig() *APIConfig {
	return cfg
}

func applyEnvOverrides(c *APIConfig) {
	overlay(&c.LLM.APIKey, "OPENAI_API_KEY")
	overlay(&c.LLM.BaseURL, "OPENAI_BASE_URL")
	overlay(&c.Auth.BaseURL, "AUTH_BASE_URL")
	overlay(&c.Auth.AnonKey, "AUTH_ANON_KEY")
	overlay(&c.Auth.ServiceKey, "AUTH_SERVICE_KEY")
	overlay(&c.Auth.JWTSecret, "AUTH_JWT_SECRET")
	overlay(&c.Context.Env, "APP_ENV")
	overlay(&c.DB.Password, "DB_PASSWORD")
}

func overlay(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
