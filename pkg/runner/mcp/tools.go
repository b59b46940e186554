package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerCheckTool(srv, svc)
	registerListTool(srv, svc)
	registerGetTool(srv, svc)
	registerSetTool(srv, svc)
	registerClearTool(srv, svc)
}

func datesArg() mcp.ToolOption {
	return mcp.WithArray("dates",
		mcp.Required(),
		mcp.Description("Dates in the configured format, as ISO dates, or as offsets from today such as +1w."),
		mcp.Items(map[string]any{"type": "string"}),
	)
}

func registerCheckTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"check_dates",
		mcp.WithDescription("Report whether dates can be picked and why not."),
		datesArg(),
	)
	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Dates []string `json:"dates"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		checks, err := svc.Check(ctx, args.Dates)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{"checks": checks, "count": len(checks)})
	})
}

func registerListTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_selections",
		mcp.WithDescription("List every saved selection."),
	)
	srv.AddTool(tool, func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		all, err := svc.ListSelections(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{"selections": all, "count": len(all)})
	})
}

func registerGetTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_selection",
		mcp.WithDescription("Fetch the dates saved under a name."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Selection name."),
		),
	)
	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := request.RequireString("name")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		dto, err := svc.Selection(ctx, name)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerSetTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"set_selection",
		mcp.WithDescription("Save dates under a name. Dates that cannot be picked are skipped and reported."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Selection name."),
		),
		datesArg(),
		mcp.WithBoolean("append",
			mcp.Description("Keep the dates already saved."),
		),
	)
	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Name   string   `json:"name"`
			Dates  []string `json:"dates"`
			Append bool     `json:"append"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		if args.Name == "" {
			return mcp.NewToolResultError("name is required"), nil
		}
		dto, rejected, err := svc.SetSelection(ctx, args.Name, args.Dates, args.Append)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{"selection": dto, "rejected": rejected})
	})
}

func registerClearTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"clear_selection",
		mcp.WithDescription("Forget the dates saved under a name."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Selection name."),
		),
	)
	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := request.RequireString("name")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if err := svc.ClearSelection(ctx, name); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText("cleared " + name), nil
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}
