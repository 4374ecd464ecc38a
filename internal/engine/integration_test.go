//go:build integration

package engine_test

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dm/actdash/internal/client"
	"github.com/dm/actdash/internal/engine"
	"github.com/dm/actdash/internal/model"
)

// actuatorClient creates a DefaultClient from $ACTUATOR_URI or skips the test if unset.
func actuatorClient(t *testing.T) client.ActuatorClient {
	t.Helper()
	uri := os.Getenv("ACTUATOR_URI")
	if uri == "" {
		t.Skip("ACTUATOR_URI not set; skipping integration test")
	}
	c, err := client.NewDefaultClient(client.ClientConfig{
		BaseURL:        uri,
		RequestTimeout: 10 * time.Second,
	})
	require.NoError(t, err)
	return c
}

// TestLiveActuator_AllSources connects to $ACTUATOR_URI, runs FetchAll across
// all four sources, and verifies that each one answered.
func TestLiveActuator_AllSources(t *testing.T) {
	c := actuatorClient(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	res := engine.FetchAll(ctx, c, nil)
	require.False(t, res.Failed(), "errors: %v", res.Errs)

	assert.NotEmpty(t, res.Health.Status, "health status should not be empty")
	assert.Greater(t, res.Uptime, int64(0), "uptime should be positive")
	assert.Equal(t, len(res.Traces.Traces), res.Traces.Buckets.Total())
}

// TestLiveActuator_UptimeAdvances polls twice, 2 s apart, and checks the
// server-reported uptime moved forward.
func TestLiveActuator_UptimeAdvances(t *testing.T) {
	c := actuatorClient(t)
	ctx := context.Background()

	var snap model.Snapshot
	first := engine.FetchAll(ctx, c, nil)
	require.NotContains(t, first.Errs, engine.SourceUptime)
	first.Apply(&snap)
	base := snap.Uptime.Seconds()

	time.Sleep(2 * time.Second)

	second := engine.FetchAll(ctx, c, nil)
	require.NotContains(t, second.Errs, engine.SourceUptime)
	second.Apply(&snap)
	assert.GreaterOrEqual(t, snap.Uptime.Seconds(), base+1)
}

// TestLiveActuator_HTTPSWithInsecure skips unless ACTUATOR_URI is https://.
func TestLiveActuator_HTTPSWithInsecure(t *testing.T) {
	uri := os.Getenv("ACTUATOR_URI")
	if uri == "" {
		t.Skip("ACTUATOR_URI not set; skipping integration test")
	}
	if !strings.HasPrefix(uri, "https://") {
		t.Skip("ACTUATOR_URI is not https://; skipping TLS insecure test")
	}

	c, err := client.NewDefaultClient(client.ClientConfig{
		BaseURL:            uri,
		InsecureSkipVerify: true,
		RequestTimeout:     10 * time.Second,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, c.Ping(ctx))
}
