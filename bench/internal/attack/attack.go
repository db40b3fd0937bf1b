package attack

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"time"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

const (
	TypeCreate   = "create"
	TypeRedirect = "redirect"
	TypeMixed    = "mixed"
	TypeList     = "list"
)

const listPageSize = 50

var errNoCodes = errors.New("attack requires seeded codes")

type Config struct {
	BaseURL            string
	Codes              []string
	Rate               int
	Duration           time.Duration
	CreateRatio        float64
	Type               string
	Connections        int
	InsecureSkipVerify bool
}

func Targeter(cfg *Config) (vegeta.Targeter, error) {
	switch cfg.Type {
	case TypeCreate:
		return CreateTargeter(cfg.BaseURL), nil
	case TypeRedirect:
		if len(cfg.Codes) == 0 {
			return nil, fmt.Errorf("%s %w", cfg.Type, errNoCodes)
		}
		return RedirectTargeter(cfg.BaseURL, cfg.Codes), nil
	case TypeMixed:
		if len(cfg.Codes) == 0 {
			return nil, fmt.Errorf("%s %w", cfg.Type, errNoCodes)
		}
		return MixedTargeter(cfg.BaseURL, cfg.Codes, cfg.CreateRatio), nil
	case TypeList:
		return ListTargeter(cfg.BaseURL, len(cfg.Codes)), nil
	default:
		return nil, fmt.Errorf("unknown attack type: %s", cfg.Type)
	}
}

func Run(ctx context.Context, cfg *Config, out io.Writer) error {
	targeter, err := Targeter(cfg)
	if err != nil {
		return err
	}

	rate := vegeta.Rate{Freq: cfg.Rate, Per: time.Second}
	attacker := vegeta.NewAttacker(
		// Redirects are measured, not followed.
		vegeta.Redirects(vegeta.NoFollow),
		vegeta.KeepAlive(true),
		vegeta.Connections(cfg.Connections),
		vegeta.Timeout(5*time.Second),
		vegeta.MaxBody(0),
		vegeta.HTTP2(false),
		vegeta.TLSConfig(&tls.Config{InsecureSkipVerify: cfg.InsecureSkipVerify}), //nolint:gosec // bench against self-signed certs
	)

	fmt.Fprintf(out, "Starting %s attack: rate=%d/s duration=%s\n", cfg.Type, cfg.Rate, cfg.Duration)

	results := attacker.Attack(targeter, rate, cfg.Duration, cfg.Type)

	var metrics vegeta.Metrics
loop:
	for {
		select {
		case <-ctx.Done():
			attacker.Stop()
			break loop
		case res, ok := <-results:
			if !ok {
				break loop
			}
			metrics.Add(res)
		}
	}
	metrics.Close()

	return vegeta.NewTextReporter(&metrics).Report(out)
}
