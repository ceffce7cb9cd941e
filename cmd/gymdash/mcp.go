package main

import (
	"context"

	gymdashmcp "github.com/2beens/gymdash/internal/mcp"
	"github.com/2beens/gymdash/internal/session"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	log "github.com/sirupsen/logrus"
)

const version = "1.0.0"

// cmdMCP serves the MCP tools over stdio, acting as the logged in user.
// Stdout belongs to the protocol, logs stay on stderr.
func (a *app) cmdMCP(ctx context.Context) error {
	if !session.HasToken(ctx, a.store) {
		return errNotLoggedIn
	}
	log.Debugln("serving mcp over stdio")
	server := gymdashmcp.NewServer(a.client, version)
	return server.Run(ctx, &mcp.StdioTransport{})
}
