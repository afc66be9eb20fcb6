package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/beyond/pkg/app"
	"tableflip.dev/beyond/pkg/entry"
)

// Runner serves the journal over MCP on stdio.
type Runner struct {
	Service   *app.Service
	Formatter entry.Formatter
	Name      string
	Version   string
}

// NewServer builds the MCP server with every journal tool and resource
// registered.
func (r Runner) NewServer() (*server.MCPServer, error) {
	if r.Service == nil || r.Service.Persistence == nil {
		return nil, errors.New("mcp runner requires persistence")
	}
	name := r.Name
	if name == "" {
		name = "beyond"
	}
	version := r.Version
	if version == "" {
		version = "dev"
	}

	srv := server.NewMCPServer(
		fmt.Sprintf("%s MCP", name),
		version,
		server.WithResourceCapabilities(false, false),
		server.WithToolCapabilities(false),
		server.WithInstructions("Read and write a daily journal: one entry per day, a streak of consecutive days, and a JSON backup."),
		server.WithResourceRecovery(),
		server.WithRecovery(),
	)

	svc := NewService(r.Service, r.Formatter)
	registerResources(srv, svc)
	registerTools(srv, svc)
	return srv, nil
}

// Do blocks serving stdio until the client disconnects.
func (r Runner) Do(ctx context.Context) error {
	srv, err := r.NewServer()
	if err != nil {
		return err
	}
	return server.ServeStdio(srv)
}
