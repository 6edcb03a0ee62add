package mcp

import (
	"context"
	"io"
	"log/slog"
	"sync"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/termgrid/internal/config"
	"github.com/1broseidon/termgrid/internal/platform"
	"github.com/1broseidon/termgrid/internal/tiling"
)

const (
	ServerName    = "termgrid"
	ServerVersion = "0.1.0"
)

// Server exposes the tiler as MCP tools.
type Server struct {
	mcpServer *mcpsdk.Server
	config    *config.Config
	tiler     *tiling.Tiler
	logger    *slog.Logger

	// Runs touch real windows; only one at a time.
	mu sync.Mutex
}

// NewServer creates an MCP server that tiles windows of ws.
func NewServer(cfg *config.Config, ws platform.WindowSystem, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	logger = logger.With("component", "mcp")

	s := &Server{
		config: cfg,
		logger: logger,
		tiler: tiling.NewTiler(ws, cfg.Detector(), tiling.Options{
			PacingDelay:    cfg.PacingDelay(),
			FallbackScreen: cfg.FallbackScreenSize(),
			Logger:         logger,
		}),
	}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)

	s.registerTools()
	return s
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("serving on stdio")
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_windows",
		Description: "List the visible terminal windows (id, title, class) on the current desktop.",
	}, s.handleListWindows)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "tile_windows",
		Description: "Arrange every terminal window whose title contains keyword into a grid. Windows that fail to move are reported individually; the rest are still tiled. Returns the grid plan and a per-window result.",
	}, s.handleTileWindows)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "hide_windows",
		Description: "Minimize every terminal window whose title contains keyword.",
	}, s.handleHideWindows)
}
