package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	registerPlacesResource(srv, svc)
	registerMoodsResource(srv, svc)
	registerPlaceTemplate(srv, svc)
}

func registerPlacesResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"horizon://places",
		"Places",
		mcp.WithResourceDescription("Every place in the catalog."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		places, err := svc.ListPlaces(ctx, "")
		if err != nil {
			return nil, err
		}
		payload := map[string]any{
			"places": places,
			"count":  len(places),
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

func registerMoodsResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"horizon://moods",
		"Moods",
		mcp.WithResourceDescription("The moods places are tagged with."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return encodeResourceJSON(request.Params.URI, map[string]any{"moods": svc.ListMoods()})
	})
}

func registerPlaceTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"horizon://places/{id}",
		"Place Details",
		mcp.WithTemplateDescription("Detailed information about a single place."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		id, _ := request.Params.Arguments["id"].(string)
		if id == "" {
			return nil, fmt.Errorf("place id is required")
		}

		dto, err := svc.GetPlace(ctx, id)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, map[string]any{"place": dto})
	})
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
