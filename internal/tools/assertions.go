package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/genealogydb/genealogy-mcp/internal/models"
	"github.com/genealogydb/genealogy-mcp/internal/storage"
)

// EvidenceTools holds the source and assertion tool handlers.
type EvidenceTools struct {
	Store *storage.Store
}

// --- Input types ---

type AddSourceInput struct {
	Reference string `json:"reference" jsonschema:"Citation: URL, archive identifier, or free text"`
}

type AddAssertionInput struct {
	SubjectType string   `json:"subject_type" jsonschema:"What the claim is about: person or relationship"`
	SubjectID   string   `json:"subject_id" jsonschema:"Id of the person or relationship"`
	Claim       string   `json:"claim" jsonschema:"The claim text (e.g. 'born 1851 per parish register')"`
	SourceIDs   []string `json:"source_ids,omitempty" jsonschema:"Ids of sources backing the claim"`
}

type ListAssertionsInput struct {
	SubjectType string `json:"subject_type" jsonschema:"person or relationship"`
	SubjectID   string `json:"subject_id" jsonschema:"Id of the person or relationship"`
}

type LinkSourceToPersonInput struct {
	PersonID string `json:"person_id" jsonschema:"Person id"`
	SourceID string `json:"source_id" jsonschema:"Source id"`
}

type ListSourcesForPersonInput struct {
	PersonID string `json:"person_id" jsonschema:"Person id"`
}

// --- Handlers ---

func (t *EvidenceTools) AddSource(_ context.Context, _ *mcp.CallToolRequest, input AddSourceInput) (*mcp.CallToolResult, any, error) {
	if input.Reference == "" {
		return argError("reference is required"), nil, nil
	}
	src, err := t.Store.AddSource(input.Reference)
	if err != nil {
		return storeError(err), nil, nil
	}
	return toolJSON(src)
}

func (t *EvidenceTools) AddAssertion(_ context.Context, _ *mcp.CallToolRequest, input AddAssertionInput) (*mcp.CallToolResult, any, error) {
	if input.SubjectType == "" || input.SubjectID == "" {
		return argError("subject_type and subject_id are required"), nil, nil
	}
	if input.Claim == "" {
		return argError("claim is required"), nil, nil
	}
	assertion, err := t.Store.AddAssertion(input.SubjectType, input.SubjectID, input.Claim, input.SourceIDs)
	if err != nil {
		return storeError(err), nil, nil
	}
	return toolJSON(assertion)
}

func (t *EvidenceTools) ListAssertions(_ context.Context, _ *mcp.CallToolRequest, input ListAssertionsInput) (*mcp.CallToolResult, any, error) {
	if input.SubjectType == "" || input.SubjectID == "" {
		return argError("subject_type and subject_id are required"), nil, nil
	}
	assertions, err := t.Store.ListAssertions(input.SubjectType, input.SubjectID)
	if err != nil {
		return storeError(err), nil, nil
	}
	if assertions == nil {
		assertions = []models.Assertion{}
	}
	return toolJSON(assertions)
}

func (t *EvidenceTools) LinkSourceToPerson(_ context.Context, _ *mcp.CallToolRequest, input LinkSourceToPersonInput) (*mcp.CallToolResult, any, error) {
	if input.PersonID == "" || input.SourceID == "" {
		return argError("person_id and source_id are required"), nil, nil
	}
	link, err := t.Store.LinkSourceToPerson(input.PersonID, input.SourceID)
	if err != nil {
		return storeError(err), nil, nil
	}
	return toolJSON(link)
}

func (t *EvidenceTools) ListSourcesForPerson(_ context.Context, _ *mcp.CallToolRequest, input ListSourcesForPersonInput) (*mcp.CallToolResult, any, error) {
	if input.PersonID == "" {
		return argError("person_id is required"), nil, nil
	}
	sources, err := t.Store.SourcesForPerson(input.PersonID)
	if err != nil {
		return storeError(err), nil, nil
	}
	if sources == nil {
		sources = []models.Source{}
	}
	return toolJSON(sources)
}
