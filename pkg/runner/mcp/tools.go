package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

var moodEnum = []string{"all", "rainy", "cafe", "evening", "sunset", "sunshine", "hungry", "nature", "adventure", "peaceful"}

func registerTools(srv *server.MCPServer, svc *Service) {
	registerListPlacesTool(srv, svc)
	registerListMoodsTool(srv, svc)
	registerGetPlaceTool(srv, svc)
	registerRevealPlanTool(srv, svc)
}

func registerListPlacesTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_places",
		mcp.WithDescription("List places along the route, optionally filtered by mood."),
		mcp.WithString("mood",
			mcp.Description("Mood to filter by. Omit or use \"all\" for every place."),
			mcp.Enum(moodEnum...),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Mood string `json:"mood"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		places, err := svc.ListPlaces(ctx, args.Mood)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"mood":   args.Mood,
			"count":  len(places),
			"places": places,
		})
	})
}

func registerListMoodsTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_moods",
		mcp.WithDescription("List the moods places can be filtered by."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return toJSONResult(map[string]any{"moods": svc.ListMoods()})
	})
}

func registerGetPlaceTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_place",
		mcp.WithDescription("Fetch a single place by id."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Place identifier."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		dto, err := svc.GetPlace(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerRevealPlanTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"reveal_plan",
		mcp.WithDescription("Preview the order and timing in which places would be revealed for a mood."),
		mcp.WithString("mood",
			mcp.Description("Mood to filter by. Omit or use \"all\" for every place."),
			mcp.Enum(moodEnum...),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		mood := request.GetString("mood", "")
		plan, err := svc.RevealPlan(ctx, mood)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"mood":            mood,
			"intervalSeconds": svc.Interval.Seconds(),
			"reveals":         plan,
		})
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return result, nil
}
