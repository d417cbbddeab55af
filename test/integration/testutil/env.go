package testutil

import (
	"context"
	"net/http"
	"os"
	"testing"
	"time"

	"splendico/pkg/client"
)

const (
	DefaultMongoURI           = "mongodb://localhost:27017"
	DefaultDatabaseName       = "splendico"
	ConnectionTimeout         = 10 * time.Second
	DefaultHealthCheckTimeout = 30 * time.Second
)

type TestEnv struct {
	MongoURI     string
	DatabaseName string
	ServerURL    string
}

// NewTestEnv skips the calling test unless TEST_SERVER_URL points at a
// running server. Start that server with a RATE_LIMIT_BURST of a few hundred;
// the suite issues requests faster than the default allows.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	serverURL := os.Getenv("TEST_SERVER_URL")
	if serverURL == "" {
		t.Skip("TEST_SERVER_URL not set, skipping integration tests")
	}

	return &TestEnv{
		MongoURI:     getEnv("TEST_MONGO_URI", DefaultMongoURI),
		DatabaseName: getEnv("TEST_DB_NAME", DefaultDatabaseName),
		ServerURL:    serverURL,
	}
}

func (e *TestEnv) Setup(t *testing.T) (*MongoHelper, *client.HotelClient) {
	t.Helper()

	mongo := NewMongoHelper(t, e.MongoURI, e.DatabaseName)
	mongo.CleanDatabase(t)
	t.Cleanup(func() {
		mongo.CleanDatabase(t)
		mongo.Close(t)
	})

	waitForHealthy(t, e.ServerURL, DefaultHealthCheckTimeout)
	return mongo, e.NewClient()
}

// NewClient returns a client with its own cookie jar.
func (e *TestEnv) NewClient() *client.HotelClient {
	return client.NewHotelClient(e.ServerURL, ConnectionTimeout)
}

func waitForHealthy(t *testing.T, serverURL string, timeout time.Duration) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	for {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, serverURL+"/ready", nil)
		if err != nil {
			t.Fatalf("failed to build readiness request: %v", err)
		}
		if resp, err := http.DefaultClient.Do(req); err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}

		select {
		case <-ctx.Done():
			t.Fatalf("server at %s not ready after %s", serverURL, timeout)
		case <-time.After(500 * time.Millisecond):
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
