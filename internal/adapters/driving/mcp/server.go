package mcp

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Version is the MCP server version.
const Version = "0.1.0"

// serverInstructions is shown to connecting clients so they know
// what the tools operate on.
const serverInstructions = "Obadh converts Avro-style Roman script to Bengali. " +
	"Use the transliterate tool for conversion, tokenize to inspect " +
	"phonetic segmentation, and the obadh:// resources for the " +
	"alphabet table and exception dictionary."

// Server exposes the transliteration engine over the Model Context
// Protocol. Tools cover conversion and token analysis; resources
// publish the alphabet and the exception dictionary.
type Server struct {
	ports  *Ports
	server *mcp.Server
}

// NewServer creates an MCP server backed by the given ports. The
// transliteration service is mandatory; the dictionary is optional
// and its absence degrades the exception tooling gracefully.
func NewServer(ports *Ports) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	s := &Server{
		ports: ports,
		server: mcp.NewServer(
			&mcp.Implementation{Name: "obadh", Version: Version},
			&mcp.ServerOptions{Instructions: serverInstructions},
		),
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Run serves MCP over stdio until the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// RunHTTP serves MCP over streamable HTTP on addr until the context
// is cancelled.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	handler := mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return s.server
	}, nil)

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		httpServer.Shutdown(context.Background()) //nolint:errcheck
	}()

	err := httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}
