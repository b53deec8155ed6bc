// package goaws contains methods for initializing AWS SDK v2
// sessions for use with each service client. Also contains
// generic error types for implementing service-specific errors
// and common logic across services.
package goaws

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/joho/godotenv"
)

// DefaultRegion is used when neither the caller nor the
// environment names a region.
const DefaultRegion = "us-east-2"

type AwsConfig struct {
	Config aws.Config
}

// Option configures a Session.
type Option func(*sessionOptions)

type sessionOptions struct {
	profile      string
	creds        aws.CredentialsProvider
	baseEndpoint string
	useDotEnv    bool
	dotEnvFiles  []string
	loadOpts     []func(*config.LoadOptions) error
	logger       *slog.Logger
}

// WithProfile loads credentials and settings from the named shared config profile.
func WithProfile(profile string) Option {
	return func(o *sessionOptions) {
		o.profile = profile
	}
}

// WithStaticCredentials uses the given access key pair instead of the default chain.
func WithStaticCredentials(accessKeyId, secretKey, stsToken string) Option {
	return func(o *sessionOptions) {
		o.creds = credentials.NewStaticCredentialsProvider(accessKeyId, secretKey, stsToken)
	}
}

// WithBaseEndpoint points every client at url, e.g. a LocalStack instance.
func WithBaseEndpoint(url string) Option {
	return func(o *sessionOptions) {
		o.baseEndpoint = url
	}
}

// WithDotEnv loads the given .env files (".env" when none are given) into the
// process environment before the AWS configuration is resolved.
func WithDotEnv(files ...string) Option {
	return func(o *sessionOptions) {
		o.useDotEnv = true
		o.dotEnvFiles = files
	}
}

// WithLoadOptions passes raw options to config.LoadDefaultConfig.
func WithLoadOptions(opts ...func(*config.LoadOptions) error) Option {
	return func(o *sessionOptions) {
		o.loadOpts = append(o.loadOpts, opts...)
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *sessionOptions) {
		o.logger = logger
	}
}

// Session holds the resolved region and AWS configuration shared by
// the service clients built from it.
type Session struct {
	mu     sync.RWMutex
	region string
	cfg    aws.Config
	err    error
	opts   sessionOptions
	logger *slog.Logger
}

// NewSession creates a Session for region. The returned Session is never nil:
// when the configuration cannot be loaded the fault is returned and also kept
// on the Session, and every client created from it reports that fault.
func NewSession(ctx context.Context, region string, opts ...Option) (*Session, error) {
	s := &Session{region: region}
	for _, opt := range opts {
		opt(&s.opts)
	}
	s.logger = LoggerOrDefault(s.opts.logger)

	if err := s.CreateSession(ctx, region); err != nil {
		return s, err
	}
	return s, nil
}

// CreateSession (re)loads the AWS configuration. The region is resolved from
// the argument, then the session's current region, then the environment and
// shared config files, then DefaultRegion. The resolved region is stored back
// on the session.
func (s *Session) CreateSession(ctx context.Context, region string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if region == "" {
		region = s.region
	}

	cfg, err := Guard(ctx, s.logger, "goaws.CreateSession", func() (aws.Config, error) {
		return s.load(ctx, region)
	})
	if err != nil {
		if _, ok := err.(*SessionError); !ok {
			err = NewSessionError(err)
		}
		s.cfg, s.err = aws.Config{}, err
		return err
	}

	s.cfg, s.region, s.err = cfg, cfg.Region, nil
	s.logger.InfoContext(ctx, "aws session created", slog.String("region", cfg.Region))

	return nil
}

func (s *Session) load(ctx context.Context, region string) (aws.Config, error) {
	if s.opts.useDotEnv {
		if err := godotenv.Load(s.opts.dotEnvFiles...); err != nil {
			return aws.Config{}, NewSessionError(fmt.Errorf("godotenv.Load: %w", err))
		}
	}

	loadOpts := make([]func(*config.LoadOptions) error, 0, 3+len(s.opts.loadOpts))
	if region != "" {
		loadOpts = append(loadOpts, config.WithRegion(region))
	}
	if s.opts.profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(s.opts.profile))
	}
	if s.opts.creds != nil {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(s.opts.creds))
	}
	loadOpts = append(loadOpts, s.opts.loadOpts...)

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return aws.Config{}, NewSessionError(fmt.Errorf("config.LoadDefaultConfig: %w", err))
	}

	if cfg.Region == "" {
		cfg.Region = DefaultRegion
	}
	if s.opts.baseEndpoint != "" {
		cfg.BaseEndpoint = aws.String(s.opts.baseEndpoint)
	}

	return cfg, nil
}

// Region returns the resolved region.
func (s *Session) Region() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.region
}

// Err returns the fault recorded by the last CreateSession call, if any.
func (s *Session) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

func (s *Session) Logger() *slog.Logger {
	return s.logger
}

// Config returns a copy of the session's AWS configuration.
func (s *Session) Config() (AwsConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.err != nil {
		return AwsConfig{}, s.err
	}
	return AwsConfig{Config: s.cfg.Copy()}, nil
}

// CreateClient derives a service client from the session, e.g.
//
//	client, err := goaws.CreateClient(sess, dynamodb.NewFromConfig)
func CreateClient[C any, O any](s *Session, newFn func(aws.Config, ...func(*O)) C, optFns ...func(*O)) (C, error) {
	var zero C
	if s == nil {
		return zero, NewSessionError(errors.New("nil session"))
	}

	cfg, err := s.Config()
	if err != nil {
		return zero, err
	}

	return newFn(cfg.Config, optFns...), nil
}
