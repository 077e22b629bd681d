package config

import (
	"fmt"
	"os"
	"time"
)

// Fixed pipeline constants. Language codes and the working directory are
// deliberately not configurable: downstream storage keys embed them.
const (
	DefaultEnvironment = "beta"
	InputDir           = "audio_inputs"
	SourceLanguage     = "en"
	TargetLanguage     = "es"

	defaultPollInterval = 30 * time.Second
)

// Config is built once at startup and passed to every collaborator.
type Config struct {
	Bucket      string
	Environment string

	InputDir       string
	SourceLanguage string
	TargetLanguage string

	// PullInputs enables the optional pre-stage that mirrors
	// {env}/audio_inputs/ from the bucket into the local working dir.
	PullInputs bool

	PollInterval time.Duration
	// PollTimeout bounds the transcription poll loop. Zero means poll
	// until the job reaches a terminal state.
	PollTimeout time.Duration

	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	S3Region    string
}

// FromEnv builds the Config from environment variables. A missing bucket
// name is the only fatal configuration error.
func FromEnv() (*Config, error) {
	bucket := os.Getenv("S3_BUCKET_NAME")
	if bucket == "" {
		return nil, fmt.Errorf("S3_BUCKET_NAME is not set")
	}

	cfg := &Config{
		Bucket:         bucket,
		Environment:    envOr("ENVIRONMENT", DefaultEnvironment),
		InputDir:       InputDir,
		SourceLanguage: SourceLanguage,
		TargetLanguage: TargetLanguage,
		PullInputs:     os.Getenv("PULL_INPUTS") == "true",
		PollInterval:   defaultPollInterval,
		S3Endpoint:     envOr("S3_ENDPOINT", "s3.amazonaws.com"),
		S3AccessKey:    os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey:    os.Getenv("S3_SECRET_KEY"),
		S3Region:       os.Getenv("S3_REGION"),
	}

	if raw := os.Getenv("POLL_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid POLL_TIMEOUT %q: %w", raw, err)
		}
		cfg.PollTimeout = d
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
