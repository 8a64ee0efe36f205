package solver

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// maxReply bounds the bytes read from a solver reply.
const maxReply = 4096

// HTTP queries a solver server with GET <endpoint>?facelets=<definition>.
// The reply body is the move sequence in plain text.
type HTTP struct {
	endpoint string
	client   *http.Client
}

// NewHTTP creates an HTTP solver. A nil client means http.DefaultClient.
func NewHTTP(endpoint string, client *http.Client) *HTTP {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTP{endpoint: endpoint, client: client}
}

// Name returns the endpoint.
func (h *HTTP) Name() string {
	return "http:" + h.endpoint
}

// Solve sends the definition to the server. 4xx replies and replies that
// start with "Error" are rejections; transport failures and 5xx replies
// mean the solver is unavailable.
func (h *HTTP) Solve(ctx context.Context, definition string) (string, error) {
	u, err := url.Parse(h.endpoint)
	if err != nil {
		return "", fmt.Errorf("%w: bad endpoint: %v", ErrUnavailable, err)
	}
	q := u.Query()
	q.Set("facelets", definition)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	resp, err := h.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxReply))
	if err != nil {
		return "", fmt.Errorf("%w: read reply: %v", ErrUnavailable, err)
	}
	reply := strings.TrimSpace(string(body))

	switch {
	case resp.StatusCode >= 500:
		return "", fmt.Errorf("%w: %s", ErrUnavailable, resp.Status)
	case resp.StatusCode >= 400:
		return "", fmt.Errorf("%w: %s: %s", ErrRejected, resp.Status, reply)
	case resp.StatusCode >= 300:
		return "", fmt.Errorf("%w: unexpected %s", ErrUnavailable, resp.Status)
	}
	return checkReply(reply)
}

// checkReply maps the two-phase solver's "Error N: ..." replies to
// ErrRejected.
func checkReply(reply string) (string, error) {
	if strings.HasPrefix(reply, "Error") {
		return "", fmt.Errorf("%w: %s", ErrRejected, reply)
	}
	return reply, nil
}
