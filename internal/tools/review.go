package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/genealogydb/genealogy-mcp/internal/models"
	"github.com/genealogydb/genealogy-mcp/internal/storage"
)

// ReviewTools holds the verification workflow handlers: marking persons,
// relationships, and assertions verified or rejected, and pulling review
// queues.
type ReviewTools struct {
	Store *storage.Store
}

// --- Input types ---

type MarkPersonInput struct {
	PersonID string `json:"person_id" jsonschema:"Person id"`
	Notes    string `json:"notes,omitempty" jsonschema:"Optional review notes; empty keeps existing notes"`
}

type MarkRelationshipInput struct {
	RelationshipID string `json:"relationship_id" jsonschema:"Relationship id"`
	Notes          string `json:"notes,omitempty" jsonschema:"Optional review notes; empty keeps existing notes"`
}

type MarkAssertionInput struct {
	AssertionID string `json:"assertion_id" jsonschema:"Assertion id"`
	Notes       string `json:"notes,omitempty" jsonschema:"Optional review notes; empty keeps existing notes"`
}

type ListUnreviewedInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Maximum results (default 50, max 500)"`
}

type BulkMarkPersonsInput struct {
	PersonIDs []string `json:"person_ids" jsonschema:"Person ids to mark"`
	Notes     string   `json:"notes,omitempty" jsonschema:"Optional review notes applied to every row"`
}

// --- Handlers ---

func (t *ReviewTools) MarkPersonVerified(_ context.Context, _ *mcp.CallToolRequest, input MarkPersonInput) (*mcp.CallToolResult, any, error) {
	return t.markPerson(input, models.StatusVerified)
}

func (t *ReviewTools) MarkPersonRejected(_ context.Context, _ *mcp.CallToolRequest, input MarkPersonInput) (*mcp.CallToolResult, any, error) {
	return t.markPerson(input, models.StatusRejected)
}

func (t *ReviewTools) markPerson(input MarkPersonInput, status string) (*mcp.CallToolResult, any, error) {
	if input.PersonID == "" {
		return argError("person_id is required"), nil, nil
	}
	person, err := t.Store.SetPersonStatus(input.PersonID, status, input.Notes)
	if err != nil {
		return storeError(err), nil, nil
	}
	return toolJSON(person)
}

func (t *ReviewTools) MarkRelationshipVerified(_ context.Context, _ *mcp.CallToolRequest, input MarkRelationshipInput) (*mcp.CallToolResult, any, error) {
	return t.markRelationship(input, models.StatusVerified)
}

func (t *ReviewTools) MarkRelationshipRejected(_ context.Context, _ *mcp.CallToolRequest, input MarkRelationshipInput) (*mcp.CallToolResult, any, error) {
	return t.markRelationship(input, models.StatusRejected)
}

func (t *ReviewTools) markRelationship(input MarkRelationshipInput, status string) (*mcp.CallToolResult, any, error) {
	if input.RelationshipID == "" {
		return argError("relationship_id is required"), nil, nil
	}
	rel, err := t.Store.SetRelationshipStatus(input.RelationshipID, status, input.Notes)
	if err != nil {
		return storeError(err), nil, nil
	}
	return toolJSON(rel)
}

func (t *ReviewTools) MarkAssertionVerified(_ context.Context, _ *mcp.CallToolRequest, input MarkAssertionInput) (*mcp.CallToolResult, any, error) {
	return t.markAssertion(input, models.StatusVerified)
}

func (t *ReviewTools) MarkAssertionRejected(_ context.Context, _ *mcp.CallToolRequest, input MarkAssertionInput) (*mcp.CallToolResult, any, error) {
	return t.markAssertion(input, models.StatusRejected)
}

func (t *ReviewTools) markAssertion(input MarkAssertionInput, status string) (*mcp.CallToolResult, any, error) {
	if input.AssertionID == "" {
		return argError("assertion_id is required"), nil, nil
	}
	assertion, err := t.Store.SetAssertionStatus(input.AssertionID, status, input.Notes)
	if err != nil {
		return storeError(err), nil, nil
	}
	return toolJSON(assertion)
}

func (t *ReviewTools) ListUnreviewedPersons(_ context.Context, _ *mcp.CallToolRequest, input ListUnreviewedInput) (*mcp.CallToolResult, any, error) {
	persons, err := t.Store.ListUnreviewedPersons(input.Limit)
	if err != nil {
		return storeError(err), nil, nil
	}
	if persons == nil {
		persons = []models.Person{}
	}
	return toolJSON(persons)
}

func (t *ReviewTools) ListUnreviewedRelationships(_ context.Context, _ *mcp.CallToolRequest, input ListUnreviewedInput) (*mcp.CallToolResult, any, error) {
	rels, err := t.Store.ListUnreviewedRelationships(input.Limit)
	if err != nil {
		return storeError(err), nil, nil
	}
	if rels == nil {
		rels = []models.Relationship{}
	}
	return toolJSON(rels)
}

func (t *ReviewTools) ListUnreviewedAssertions(_ context.Context, _ *mcp.CallToolRequest, input ListUnreviewedInput) (*mcp.CallToolResult, any, error) {
	assertions, err := t.Store.ListUnreviewedAssertions(input.Limit)
	if err != nil {
		return storeError(err), nil, nil
	}
	if assertions == nil {
		assertions = []models.Assertion{}
	}
	return toolJSON(assertions)
}

func (t *ReviewTools) BulkMarkPersonsVerified(_ context.Context, _ *mcp.CallToolRequest, input BulkMarkPersonsInput) (*mcp.CallToolResult, any, error) {
	return t.bulkMarkPersons(input, models.StatusVerified)
}

func (t *ReviewTools) BulkMarkPersonsRejected(_ context.Context, _ *mcp.CallToolRequest, input BulkMarkPersonsInput) (*mcp.CallToolResult, any, error) {
	return t.bulkMarkPersons(input, models.StatusRejected)
}

func (t *ReviewTools) bulkMarkPersons(input BulkMarkPersonsInput, status string) (*mcp.CallToolResult, any, error) {
	if len(input.PersonIDs) == 0 {
		return argError("person_ids is required"), nil, nil
	}
	count, err := t.Store.BulkSetPersonStatus(input.PersonIDs, status, input.Notes)
	if err != nil {
		return storeError(err), nil, nil
	}
	return toolJSON(map[string]any{
		"updated": count,
		"skipped": int64(len(input.PersonIDs)) - count,
		"status":  status,
	})
}
