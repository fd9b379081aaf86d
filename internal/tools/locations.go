package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/genealogydb/genealogy-mcp/internal/models"
	"github.com/genealogydb/genealogy-mcp/internal/storage"
)

// LocationTools holds the location tool handlers.
type LocationTools struct {
	Store *storage.Store
}

// --- Input types ---

type CreateLocationInput struct {
	Name     string `json:"name" jsonschema:"Place name, free text"`
	Locality string `json:"locality,omitempty" jsonschema:"Town or parish"`
	Region   string `json:"region,omitempty" jsonschema:"Region, province, or state"`
	Country  string `json:"country,omitempty" jsonschema:"Country"`
}

type SearchLocationsInput struct {
	Query string `json:"query" jsonschema:"Case-insensitive substring matched against name and hierarchy fields"`
	Limit int    `json:"limit,omitempty" jsonschema:"Maximum results (default 20, max 200)"`
}

// --- Handlers ---

func (t *LocationTools) CreateLocation(_ context.Context, _ *mcp.CallToolRequest, input CreateLocationInput) (*mcp.CallToolResult, any, error) {
	if input.Name == "" {
		return argError("name is required"), nil, nil
	}
	loc, err := t.Store.CreateLocation(input.Name, input.Locality, input.Region, input.Country)
	if err != nil {
		return storeError(err), nil, nil
	}
	return toolJSON(loc)
}

func (t *LocationTools) SearchLocations(_ context.Context, _ *mcp.CallToolRequest, input SearchLocationsInput) (*mcp.CallToolResult, any, error) {
	locations, err := t.Store.SearchLocations(input.Query, input.Limit)
	if err != nil {
		return storeError(err), nil, nil
	}
	if locations == nil {
		locations = []models.Location{}
	}
	return toolJSON(locations)
}
