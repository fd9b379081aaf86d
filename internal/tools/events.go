package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/genealogydb/genealogy-mcp/internal/models"
	"github.com/genealogydb/genealogy-mcp/internal/storage"
)

// EventTools holds the event tool handlers.
type EventTools struct {
	Store *storage.Store
}

// --- Input types ---

type CreateEventInput struct {
	Kind       string `json:"kind" jsonschema:"Event kind: birth, baptism, marriage, death, or free text"`
	DateApprox string `json:"date_approx,omitempty" jsonschema:"Approximate date, free text (e.g. '1850-03', 'about 1850')"`
	LocationID string `json:"location_id,omitempty" jsonschema:"Optional id of an existing location"`
}

type LinkPersonEventInput struct {
	EventID  string `json:"event_id" jsonschema:"Event id"`
	PersonID string `json:"person_id" jsonschema:"Person id"`
	Role     string `json:"role,omitempty" jsonschema:"Person's role in the event (default subject; e.g. spouse, witness, parent-of-subject)"`
}

type GetEventsForPersonInput struct {
	PersonID string `json:"person_id" jsonschema:"Person id"`
}

// --- Handlers ---

func (t *EventTools) CreateEvent(_ context.Context, _ *mcp.CallToolRequest, input CreateEventInput) (*mcp.CallToolResult, any, error) {
	if input.Kind == "" {
		return argError("kind is required"), nil, nil
	}
	event, err := t.Store.CreateEvent(input.Kind, input.DateApprox, input.LocationID)
	if err != nil {
		return storeError(err), nil, nil
	}
	return toolJSON(event)
}

func (t *EventTools) LinkPersonEvent(_ context.Context, _ *mcp.CallToolRequest, input LinkPersonEventInput) (*mcp.CallToolResult, any, error) {
	if input.EventID == "" || input.PersonID == "" {
		return argError("event_id and person_id are required"), nil, nil
	}
	link, err := t.Store.LinkPersonEvent(input.EventID, input.PersonID, input.Role)
	if err != nil {
		return storeError(err), nil, nil
	}
	return toolJSON(link)
}

func (t *EventTools) GetEventsForPerson(_ context.Context, _ *mcp.CallToolRequest, input GetEventsForPersonInput) (*mcp.CallToolResult, any, error) {
	if input.PersonID == "" {
		return argError("person_id is required"), nil, nil
	}
	events, err := t.Store.EventsForPerson(input.PersonID)
	if err != nil {
		return storeError(err), nil, nil
	}
	if events == nil {
		events = []models.PersonEventRole{}
	}
	return toolJSON(events)
}
