package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/genealogydb/genealogy-mcp/internal/models"
	"github.com/genealogydb/genealogy-mcp/internal/storage"
)

// RelationshipTools holds the relationship tool handlers.
type RelationshipTools struct {
	Store *storage.Store
}

// --- Input types ---

type CreateRelationshipInput struct {
	FromPersonID string `json:"from_person_id" jsonschema:"Source person id; the parent for parent-child edges"`
	ToPersonID   string `json:"to_person_id" jsonschema:"Target person id; the child for parent-child edges"`
	Kind         string `json:"kind" jsonschema:"Relationship kind: parent-child, spouse, sibling, or other"`
	Label        string `json:"label,omitempty" jsonschema:"Free-text label for kind 'other' (e.g. godparent)"`
	DateRange    string `json:"date_range,omitempty" jsonschema:"Free-text date range (e.g. '1872-1880')"`
}

type ListRelationshipsInput struct {
	PersonID string `json:"person_id" jsonschema:"Person id; matches either endpoint"`
	Kind     string `json:"kind,omitempty" jsonschema:"Optional kind filter"`
}

type GetFamilyGroupInput struct {
	PersonID string `json:"person_id" jsonschema:"Person at the center of the group"`
	Depth    *int   `json:"depth,omitempty" jsonschema:"Traversal depth in hops; 0 returns only the person, default 1"`
}

// --- Handlers ---

func (t *RelationshipTools) CreateRelationship(_ context.Context, _ *mcp.CallToolRequest, input CreateRelationshipInput) (*mcp.CallToolResult, any, error) {
	if input.FromPersonID == "" || input.ToPersonID == "" {
		return argError("from_person_id and to_person_id are required"), nil, nil
	}
	if input.Kind == "" {
		return argError("kind is required"), nil, nil
	}
	rel, err := t.Store.CreateRelationship(input.FromPersonID, input.ToPersonID, input.Kind, input.Label, input.DateRange)
	if err != nil {
		return storeError(err), nil, nil
	}
	return toolJSON(rel)
}

func (t *RelationshipTools) ListRelationships(_ context.Context, _ *mcp.CallToolRequest, input ListRelationshipsInput) (*mcp.CallToolResult, any, error) {
	if input.PersonID == "" {
		return argError("person_id is required"), nil, nil
	}
	rels, err := t.Store.ListRelationships(input.PersonID, input.Kind)
	if err != nil {
		return storeError(err), nil, nil
	}
	if rels == nil {
		rels = []models.Relationship{}
	}
	return toolJSON(rels)
}

func (t *RelationshipTools) GetFamilyGroup(_ context.Context, _ *mcp.CallToolRequest, input GetFamilyGroupInput) (*mcp.CallToolResult, any, error) {
	if input.PersonID == "" {
		return argError("person_id is required"), nil, nil
	}
	depth := 1
	if input.Depth != nil {
		depth = *input.Depth
	}
	if depth < 0 {
		return argError("depth must be zero or positive"), nil, nil
	}
	group, err := t.Store.FamilyGroup(input.PersonID, depth)
	if err != nil {
		return storeError(err), nil, nil
	}
	return toolJSON(group)
}
