package config

import (
	"encoding/base64"
	"fmt"
	"log"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Used only when running locally with DEBUG=true
const devPayloadSecret = "your-secret-key-change-me"

type Secret struct {
	Bytes []byte
}

type Config struct {
	// Running localy or not
	Debug bool `env:"DEBUG" envDefault:"false"`

	// Content API (the CMS)
	PayloadURL    string        `env:"PAYLOAD_URL" envDefault:"http://localhost:3000"`
	PayloadSecret string        `env:"PAYLOAD_SECRET"`
	PayloadAPIKey string        `env:"PAYLOAD_API_KEY"`
	DatabaseURI   string        `env:"DATABASE_URI" envDefault:"mongodb://localhost:27017/payload-cms"`
	HTTPTimeout   time.Duration `env:"HTTP_TIMEOUT" envDefault:"10s"`

	// Site settings
	SiteURL         string `env:"SITE_URL" envDefault:"http://localhost:4321"`
	SiteName        string `env:"SITE_NAME" envDefault:"Block Site"`
	SiteDescription string `env:"SITE_DESCRIPTION"`
	PostsPerPage    int    `env:"POSTS_PER_PAGE" envDefault:"12"`

	// Preview sessions
	AuthKey            Secret `env:"AUTH_KEY"`
	EncryptionKey      Secret `env:"ENCRYPTION_KEY"`
	PreviewSessionName string `env:"PREVIEW_SESSION_NAME" envDefault:"_site_preview"`

	// Redis
	CacheEnabled  bool          `env:"CACHE_ENABLED" envDefault:"false"`
	RedisHost     string        `env:"REDIS_HOST" envDefault:"localhost"`
	RedisPort     int           `env:"REDIS_PORT" envDefault:"6379"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	CacheTimeout  time.Duration `env:"CACHE_TIMEOUT" envDefault:"300s"`

	// Cloudflare R2, the static export target
	R2AccountId       string `env:"R2_ACCOUNT_ID"`
	R2AccessKeyId     string `env:"R2_ACCESS_KEY_ID"`
	R2SecretAccessKey string `env:"R2_SECRET_ACCESS_KEY"`
	R2SiteBucketName  string `env:"R2_SITE_BUCKET_NAME"`
	ExportWorkers     int    `env:"EXPORT_WORKERS" envDefault:"8"`

	// Local app host and port
	Host string `env:"HOST" envDefault:"localhost"`
	Port int    `env:"PORT" envDefault:"4321"`
}

// New creates new config object
func New() *Config {
	cfg, err := Parse()
	if err != nil {
		log.Fatalf("failed to parse the config; %v", err)
	}
	return cfg
}

// Parse reads the config from the environment and validates it
func Parse() (*Config, error) {

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}

	// The placeholder secret is fine for local development only
	if cfg.PayloadSecret == "" && cfg.Debug {
		cfg.PayloadSecret = devPayloadSecret
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config; %w", err)
	}

	return &cfg, nil
}

// Validate checks the values parsed from the environment
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.PayloadURL, validation.Required, validation.By(absoluteURL)),
		validation.Field(&c.SiteURL, validation.Required, validation.By(absoluteURL)),
		validation.Field(&c.PayloadSecret, validation.Required),
		validation.Field(&c.DatabaseURI, validation.Required, validation.By(withScheme)),
		validation.Field(&c.HTTPTimeout, validation.Min(time.Second)),
		validation.Field(&c.PostsPerPage, validation.Required, validation.Min(1)),
		validation.Field(&c.ExportWorkers, validation.Required, validation.Min(1)),
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
		validation.Field(&c.RedisPort, validation.Min(1), validation.Max(65535)),
	)
}

// Addr is the address the HTTP server listens on
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LivePreviewURL is the frontend URL the CMS loads in its live-preview pane.
// Pages live under /preview/<slug>, posts under /preview/blog/<slug>.
func (c *Config) LivePreviewURL(collection, slug string) string {
	switch collection {
	case "pages":
		return c.SiteURL + "/preview/" + slug
	case "posts":
		return c.SiteURL + "/preview/blog/" + slug
	default:
		return c.SiteURL
	}
}

// absoluteURL is an ozzo rule checking for a scheme and a host
func absoluteURL(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}

	u, err := url.Parse(s)
	if err != nil {
		return err
	}

	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("must be an absolute URL")
	}

	return nil
}

// withScheme is an ozzo rule for connection strings,
// file:./payload.db is as valid as mongodb://host/db
func withScheme(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}

	u, err := url.Parse(s)
	if err != nil {
		return err
	}

	if u.Scheme == "" {
		return fmt.Errorf("must start with a scheme")
	}

	return nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
// It's called by the env library to decode the Secret,
func (s *Secret) UnmarshalText(text []byte) error {

	s.Bytes = make([]byte, base64.StdEncoding.DecodedLen(len(text)))
	n, err := base64.StdEncoding.Decode(s.Bytes, text)
	if err != nil {
		return fmt.Errorf("error decoding a secret key; %w", err)
	}

	s.Bytes = s.Bytes[:n]
	return nil
}
