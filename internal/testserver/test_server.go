// Package testserver runs the MCP server in process for tests.
package testserver

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"

	"github.com/rpggio/stowage/internal/app"
	"github.com/rpggio/stowage/internal/config"
	"github.com/rpggio/stowage/internal/mcp"
)

// TestServer is a connected client session backed by a fresh store.
type TestServer struct {
	App     *app.App
	Session *sdkmcp.ClientSession
}

// New starts a server over in-memory transports. The store is built from cfg;
// pass config.Default() with Seed set for the demo data.
func New(t *testing.T, cfg config.Config) *TestServer {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	a, err := app.New(ctx, cfg, nil)
	require.NoError(t, err)

	server := mcp.NewServer(mcp.Config{
		Services: mcp.Services{
			Tags:       a.Tags,
			Items:      a.Items,
			Views:      a.Views,
			Activity:   a.Activity,
			Companions: a.Companions,
		},
		Version: "test",
	})

	serverTransport, clientTransport := sdkmcp.NewInMemoryTransports()
	serverSession, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)

	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "test-client", Version: "1.0.0"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = session.Close()
		_ = serverSession.Wait()
		cancel()
		_ = a.Close()
	})

	return &TestServer{App: a, Session: session}
}

// CallTool invokes a tool and returns the JSON text of its result along with
// the IsError flag.
func (ts *TestServer) CallTool(t *testing.T, name string, args map[string]any) (json.RawMessage, bool) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ts.Session.CallTool(ctx, &sdkmcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	require.NoError(t, err, "CallTool %s failed", name)
	require.NotEmpty(t, result.Content, "Tool %s returned no content", name)

	for _, content := range result.Content {
		if text, ok := content.(*sdkmcp.TextContent); ok {
			return json.RawMessage(text.Text), result.IsError
		}
	}
	t.Fatalf("Tool %s returned no text content", name)
	return nil, false
}

// MustCall invokes a tool, fails the test on a tool error and decodes the
// result into out when out is non-nil.
func (ts *TestServer) MustCall(t *testing.T, name string, args map[string]any, out any) {
	t.Helper()
	raw, isError := ts.CallTool(t, name, args)
	require.False(t, isError, "Tool %s returned error: %s", name, raw)
	if out != nil {
		require.NoError(t, json.Unmarshal(raw, out))
	}
}
