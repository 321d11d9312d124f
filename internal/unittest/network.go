package unittest

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"
)

// RequireHTTPReadyWithinTimeout is a test helper that fails if url does not answer 200 OK within the specified timeout.
func RequireHTTPReadyWithinTimeout(t *testing.T, ctx context.Context, url string, timeout time.Duration) {
	deadline := time.Now().Add(timeout)

	for time.Now().Before(deadline) {
		req, _ := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		resp, err := http.DefaultClient.Do(req)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(150 * time.Millisecond)
	}
	t.Fatalf("%s not ready within %s", url, timeout)
}

// RequirePortClosesWithinTimeout is a test helper that fails if the specified port does not close within the timeout.
func RequirePortClosesWithinTimeout(t *testing.T, port int, timeout time.Duration) {
	addr := fmt.Sprintf("127.0.0.1:%d", port)
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		conn, err := net.Dial("tcp", addr)
		if err != nil {
			return // port is closed
		}
		_ = conn.Close()
		time.Sleep(100 * time.Millisecond)
	}
	t.Fatalf("port %d did not close within %s", port, timeout)
}
