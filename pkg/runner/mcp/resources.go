package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"pickdate://selections",
		"Selections",
		mcp.WithResourceDescription("Every saved date selection."),
		mcp.WithMIMEType("application/json"),
	)
	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		all, err := svc.ListSelections(ctx)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, map[string]any{
			"selections": all,
			"count":      len(all),
		})
	})

	template := mcp.NewResourceTemplate(
		"pickdate://selections/{name}",
		"Selection",
		mcp.WithTemplateDescription("The dates saved under a name."),
		mcp.WithTemplateMIMEType("application/json"),
	)
	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		name := templateArg(request.Params.Arguments["name"])
		if name == "" {
			return nil, fmt.Errorf("selection name is required")
		}
		dto, err := svc.Selection(ctx, name)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, dto)
	})
}

// templateArg reads a URI template variable, which arrives as a string or
// a one-element list depending on the matcher.
func templateArg(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case []string:
		if len(v) > 0 {
			return v[0]
		}
	}
	return ""
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
