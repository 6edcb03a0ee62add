package mcp

import (
	"context"
	"fmt"
	"strings"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/samber/lo"

	"github.com/1broseidon/termgrid/internal/platform"
	"github.com/1broseidon/termgrid/internal/tiling"
)

func (s *Server) handleListWindows(_ context.Context, _ *mcpsdk.CallToolRequest, _ ListWindowsInput) (*mcpsdk.CallToolResult, ListWindowsOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	windows, warnings := s.tiler.List()
	return nil, ListWindowsOutput{
		Windows: lo.Map(windows, func(w platform.Window, _ int) WindowInfo {
			return WindowInfo{ID: uint32(w.ID), Title: w.Title, Class: w.Class}
		}),
		Warnings: warnings,
	}, nil
}

func (s *Server) handleTileWindows(_ context.Context, _ *mcpsdk.CallToolRequest, args TileWindowsInput) (*mcpsdk.CallToolResult, RunOutput, error) {
	keyword := strings.TrimSpace(args.Keyword)
	if keyword == "" {
		return nil, RunOutput{}, fmt.Errorf("keyword is required")
	}

	req := tiling.Request{
		Keyword:    keyword,
		Preference: s.config.Preference(),
		Gap:        s.config.Gap,
	}
	if args.Horizontal != nil {
		req.Preference = tiling.Vertical
		if *args.Horizontal {
			req.Preference = tiling.Horizontal
		}
	}
	if args.Gap != nil {
		req.Gap = *args.Gap
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	summary, err := s.tiler.Tile(req)
	if err != nil {
		s.logger.Error("tile_windows failed", "keyword", keyword, "error", err)
		return nil, RunOutput{}, err
	}
	return nil, summary.Report(), nil
}

func (s *Server) handleHideWindows(_ context.Context, _ *mcpsdk.CallToolRequest, args HideWindowsInput) (*mcpsdk.CallToolResult, RunOutput, error) {
	keyword := strings.TrimSpace(args.Keyword)
	if keyword == "" {
		return nil, RunOutput{}, fmt.Errorf("keyword is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return nil, s.tiler.Hide(keyword).Report(), nil
}
