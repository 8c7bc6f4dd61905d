package probe

import (
	"context"
	"fmt"
	"net"
	"net/http"
)

// HTTPChecker expects 200 OK from a GET on URL.
type HTTPChecker struct {
	Client *http.Client
	URL    string
}

func NewHTTPChecker(url string) *HTTPChecker {
	return &HTTPChecker{
		Client: &http.Client{Timeout: DefaultTimeout},
		URL:    url,
	}
}

func (h *HTTPChecker) Check(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.URL, nil)
	if err != nil {
		return err
	}
	resp, err := h.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("bad status: %s", resp.Status)
	}
	return nil
}

// TCPChecker succeeds when a connection to Address can be opened.
type TCPChecker struct {
	Address string
}

func (c *TCPChecker) Check(ctx context.Context) error {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", c.Address)
	if err != nil {
		return err
	}
	return conn.Close()
}
