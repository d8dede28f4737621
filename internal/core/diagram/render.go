package diagram

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Shivagad/SDLC-Automation/internal/core/model"
)

const DefaultRenderBaseURL = "https://mermaid.ink/img"

// Renderer fetches rendered images from a mermaid.ink-style service:
// the diagram text travels base64-encoded in the URL path. Rendering is
// best-effort; on any transport problem callers fall back to the
// textual diagram.
type Renderer struct {
	baseURL string
	client  *http.Client
}

func NewRenderer(baseURL string, timeout time.Duration) *Renderer {
	if baseURL == "" {
		baseURL = DefaultRenderBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Renderer{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// RenderURL returns the request URL for a diagram without fetching it.
func (r *Renderer) RenderURL(diagram string) string {
	encoded := base64.URLEncoding.EncodeToString([]byte(diagram))
	return fmt.Sprintf("%s/%s", r.baseURL, encoded)
}

// Render fetches the image bytes for the diagram text. A non-success
// status or transport error yields a transport failure, never a panic.
func (r *Renderer) Render(ctx context.Context, diagram string) ([]byte, *model.Failure) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.RenderURL(diagram), nil)
	if err != nil {
		return nil, model.TransportFailure(fmt.Sprintf("failed to build render request: %v", err))
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, model.TransportFailure(fmt.Sprintf("render request failed: %v", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, model.TransportFailure(fmt.Sprintf("render service returned status %d", resp.StatusCode))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, model.TransportFailure(fmt.Sprintf("failed to read rendered image: %v", err))
	}

	return data, nil
}
