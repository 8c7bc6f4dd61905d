package probe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/dimspell/gladiator-launcher/model"
)

// CodeUnreachable is shown to the user when a console does not answer the handshake.
const CodeUnreachable = "ERR2137"

const wellKnownPath = "/.well-known/dispel-multi.json"

var ErrUnreachable = errors.New("could not reach server")

// HandshakeError is returned by Handshake. It matches ErrUnreachable with errors.Is.
type HandshakeError struct {
	Code string
	URL  string
	Err  error
}

func (e *HandshakeError) Error() string {
	return fmt.Sprintf("%s: %s (%s): %v", e.Code, ErrUnreachable, e.URL, e.Err)
}

func (e *HandshakeError) Unwrap() error { return e.Err }

func (e *HandshakeError) Is(target error) bool { return target == ErrUnreachable }

// WellKnownURL turns a console address into its handshake URL. The http scheme is assumed when
// the address has none.
func WellKnownURL(addr string) (string, error) {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return "", errors.New("empty address")
	}
	if !strings.Contains(addr, "://") {
		addr = "http://" + addr
	}

	u, err := url.Parse(addr)
	if err != nil {
		return "", fmt.Errorf("parse address: %w", err)
	}
	if u.Host == "" {
		return "", fmt.Errorf("address %q has no host", addr)
	}
	u.Path = strings.TrimRight(u.Path, "/") + wellKnownPath
	u.RawQuery = ""
	u.Fragment = ""
	return u.String(), nil
}

// Handshake asks the console at addr for its well-known document. Failed attempts are retried
// with exponential backoff until maxElapsed; a non-positive maxElapsed means a single attempt.
func Handshake(ctx context.Context, addr string, maxElapsed time.Duration) (model.WellKnown, error) {
	var info model.WellKnown

	target, err := WellKnownURL(addr)
	if err != nil {
		return info, &HandshakeError{Code: CodeUnreachable, URL: addr, Err: err}
	}

	client := &http.Client{Timeout: DefaultTimeout}
	operation := func() error {
		info, err = fetchWellKnown(ctx, client, target)
		return err
	}

	if maxElapsed <= 0 {
		err = operation()
	} else {
		b := backoff.NewExponentialBackOff()
		b.InitialInterval = 100 * time.Millisecond
		b.MaxElapsedTime = maxElapsed
		err = backoff.RetryNotify(operation, backoff.WithContext(b, ctx), func(err error, d time.Duration) {
			log.Debug("retrying handshake", zap.String("url", target), zap.Duration("in", d), zap.Error(err))
		})
	}
	if err != nil {
		log.Info("handshake failed", zap.String("url", target), zap.Error(err))
		return model.WellKnown{}, &HandshakeError{Code: CodeUnreachable, URL: target, Err: err}
	}

	log.Info("handshake succeeded", zap.String("url", target), zap.String("version", info.Version))
	return info, nil
}

func fetchWellKnown(ctx context.Context, client *http.Client, target string) (model.WellKnown, error) {
	var info model.WellKnown

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return info, backoff.Permanent(err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return info, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return info, fmt.Errorf("incorrect http status code: %d", resp.StatusCode)
	}

	// Older consoles answer with an empty body.
	body, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return info, fmt.Errorf("read body: %w", err)
	}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &info); err != nil {
			log.Debug("ignoring malformed well-known document", zap.String("url", target), zap.Error(err))
			info = model.WellKnown{}
		}
	}
	return info, nil
}
