package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/genealogydb/genealogy-mcp/internal/models"
	"github.com/genealogydb/genealogy-mcp/internal/storage"
)

// NoteTools holds the research note tool handlers.
type NoteTools struct {
	Store *storage.Store
}

// --- Input types ---

type SaveResearchNoteInput struct {
	PersonID  string `json:"person_id" jsonschema:"Person the note is about"`
	Note      string `json:"note" jsonschema:"Note text"`
	SourceURL string `json:"source_url,omitempty" jsonschema:"Optional URL the note came from"`
}

type ListResearchNotesInput struct {
	PersonID string `json:"person_id" jsonschema:"Person id"`
	Limit    int    `json:"limit,omitempty" jsonschema:"Maximum results (default 50, max 500)"`
}

type SearchResearchNotesInput struct {
	Query string `json:"query" jsonschema:"Case-insensitive substring matched against note text"`
	Limit int    `json:"limit,omitempty" jsonschema:"Maximum results (default 50, max 500)"`
}

// --- Handlers ---

func (t *NoteTools) SaveResearchNote(_ context.Context, _ *mcp.CallToolRequest, input SaveResearchNoteInput) (*mcp.CallToolResult, any, error) {
	if input.PersonID == "" {
		return argError("person_id is required"), nil, nil
	}
	if input.Note == "" {
		return argError("note is required"), nil, nil
	}
	note, err := t.Store.SaveResearchNote(input.PersonID, input.Note, input.SourceURL)
	if err != nil {
		return storeError(err), nil, nil
	}
	return toolJSON(note)
}

func (t *NoteTools) ListResearchNotes(_ context.Context, _ *mcp.CallToolRequest, input ListResearchNotesInput) (*mcp.CallToolResult, any, error) {
	if input.PersonID == "" {
		return argError("person_id is required"), nil, nil
	}
	notes, err := t.Store.ListResearchNotes(input.PersonID, input.Limit)
	if err != nil {
		return storeError(err), nil, nil
	}
	if notes == nil {
		notes = []models.ResearchNote{}
	}
	return toolJSON(notes)
}

func (t *NoteTools) SearchResearchNotes(_ context.Context, _ *mcp.CallToolRequest, input SearchResearchNotesInput) (*mcp.CallToolResult, any, error) {
	notes, err := t.Store.SearchResearchNotes(input.Query, input.Limit)
	if err != nil {
		return storeError(err), nil, nil
	}
	if notes == nil {
		notes = []models.ResearchNote{}
	}
	return toolJSON(notes)
}
