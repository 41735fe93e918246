package config

import (
	"errors"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/ffget/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Sentry holds error reporting configuration
type Sentry struct {
	DSN string
	Env string

	enabled bool
}

// Flags returns CLI flags for Sentry configuration
func (c *Sentry) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "sentry-dsn",
			Usage:       "Sentry DSN to report fatal errors to",
			Destination: &c.DSN,
			Sources:     cli.EnvVars("FFGET_SENTRY_DSN"),
		},
		&cli.StringFlag{
			Name:        "sentry-env",
			Usage:       "Sentry environment",
			Value:       "default",
			Destination: &c.Env,
			Sources:     cli.EnvVars("FFGET_SENTRY_ENV"),
		},
	}
}

// Configure initializes the Sentry client when a DSN is given
func (c *Sentry) Configure() error {
	if c.DSN == "" {
		return nil
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         c.DSN,
		Environment: c.Env,
		Release:     "ffget@" + types.Version,
	}); err != nil {
		return goerr.Wrap(err, "failed to initialize Sentry")
	}
	c.enabled = true
	return nil
}

// Reportable reports whether err is worth sending. Invalid user input is not.
func Reportable(err error) bool {
	return err != nil && !errors.Is(err, types.ErrInvalidArgument)
}

// Report sends err to Sentry and waits for delivery. No-op when not configured.
func (c *Sentry) Report(err error) {
	if !c.enabled || !Reportable(err) {
		return
	}
	sentry.CaptureException(err)
	sentry.Flush(2 * time.Second)
}
