// internal/upstream/identity.go
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"goldvault/internal/util"
)

// identityProvider calls the external session-exchange endpoint. The opaque
// session id travels in the X-Session-ID header.
type identityProvider struct {
	client *http.Client
	url    string
}

// NewIdentityProvider creates an IdentityProvider for the given endpoint URL.
func NewIdentityProvider(url string) IdentityProvider {
	return &identityProvider{
		client: newHTTPClient(),
		url:    url,
	}
}

func (p *identityProvider) ExchangeSession(ctx context.Context, sessionID string) (*SessionData, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build session exchange request: %w", err)
	}
	req.Header.Set("X-Session-ID", sessionID)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: session exchange request failed: %v", util.ErrUpstream, err)
	}
	defer resp.Body.Close()

	// Any non-200 means the session id is not redeemable.
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: session exchange returned status %d", util.ErrInvalidCredentials, resp.StatusCode)
	}

	var data SessionData
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("%w: failed to decode session exchange response: %v", util.ErrInvalidCredentials, err)
	}
	return &data, nil
}
