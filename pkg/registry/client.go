package registry

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"

	"golang.org/x/net/proxy"

	"github.com/meshveil/identity/pkg/identity"
)

// Client fetches peer identities from a registry reachable only through a
// SOCKS5 proxy (e.g. Tor), the same dialing shape as onionmsg's
// ConnectionManager, but over HTTP instead of the raw wire protocol.
type Client struct {
	httpClient *http.Client
}

// NewClient builds a Client that dials through dialer. Pass nil to dial
// directly (useful in tests); use golang.org/x/net/proxy.SOCKS5 to build a
// Tor-routed dialer in production.
func NewClient(dialer proxy.Dialer) *Client {
	transport := &http.Transport{}
	if dialer != nil {
		transport.DialContext = func(ctx context.Context, network, addr string) (net.Conn, error) {
			return dialer.Dial(network, addr)
		}
	}
	return &Client{httpClient: &http.Client{Transport: transport}}
}

// FetchIdentity retrieves a peer's public identity text form from the
// registry's "/v1/identity/lookup" endpoint under baseURL, parsing and
// returning it.
func (c *Client) FetchIdentity(baseURL, address string) (*identity.Identity, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("registry client: parse base url: %w", err)
	}
	u.Path = "/v1/identity/lookup"
	q := u.Query()
	q.Set("address", address)
	u.RawQuery = q.Encode()

	resp, err := c.httpClient.Get(u.String())
	if err != nil {
		return nil, fmt.Errorf("registry client: request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("registry client: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("registry client: read body: %w", err)
	}

	id, err := identity.FromString(string(body))
	if err != nil {
		return nil, fmt.Errorf("registry client: decode identity: %w", err)
	}
	return id, nil
}
