package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/genealogydb/genealogy-mcp/internal/models"
	"github.com/genealogydb/genealogy-mcp/internal/storage"
)

// PersonTools holds the person tool handlers.
type PersonTools struct {
	Store *storage.Store
}

// --- Input types ---

type CreatePersonInput struct {
	GivenNames    string `json:"given_names,omitempty" jsonschema:"Given name(s), free text"`
	Surname       string `json:"surname,omitempty" jsonschema:"Surname(s), free text"`
	BirthEstimate string `json:"birth_estimate,omitempty" jsonschema:"Approximate birth date, free text (e.g. 'about 1850', '1850-03-12')"`
	DeathEstimate string `json:"death_estimate,omitempty" jsonschema:"Approximate death date, free text"`
	Notes         string `json:"notes,omitempty" jsonschema:"Free-form research notes"`
}

type GetPersonInput struct {
	PersonID string `json:"person_id" jsonschema:"Person id"`
}

type SearchPersonsInput struct {
	Query        string `json:"query" jsonschema:"Case-insensitive substring matched against given names and surname"`
	BirthYearMin int    `json:"birth_year_min,omitempty" jsonschema:"Lower bound on approximate birth year"`
	BirthYearMax int    `json:"birth_year_max,omitempty" jsonschema:"Upper bound on approximate birth year"`
	DeathYearMin int    `json:"death_year_min,omitempty" jsonschema:"Lower bound on approximate death year"`
	DeathYearMax int    `json:"death_year_max,omitempty" jsonschema:"Upper bound on approximate death year"`
	Limit        int    `json:"limit,omitempty" jsonschema:"Maximum results (default 20, max 200)"`
	Offset       int    `json:"offset,omitempty" jsonschema:"Results to skip for paging"`
}

type UpdatePersonInput struct {
	PersonID      string  `json:"person_id" jsonschema:"Person id"`
	GivenNames    *string `json:"given_names,omitempty" jsonschema:"New given name(s); omit to leave unchanged"`
	Surname       *string `json:"surname,omitempty" jsonschema:"New surname(s); omit to leave unchanged"`
	BirthEstimate *string `json:"birth_estimate,omitempty" jsonschema:"New approximate birth date; omit to leave unchanged"`
	DeathEstimate *string `json:"death_estimate,omitempty" jsonschema:"New approximate death date; omit to leave unchanged"`
	Notes         *string `json:"notes,omitempty" jsonschema:"New notes; omit to leave unchanged"`
}

// --- Handlers ---

func (t *PersonTools) CreatePerson(_ context.Context, _ *mcp.CallToolRequest, input CreatePersonInput) (*mcp.CallToolResult, any, error) {
	person, err := t.Store.CreatePerson(input.GivenNames, input.Surname, input.BirthEstimate, input.DeathEstimate, input.Notes)
	if err != nil {
		return storeError(err), nil, nil
	}
	return toolJSON(person)
}

func (t *PersonTools) GetPerson(_ context.Context, _ *mcp.CallToolRequest, input GetPersonInput) (*mcp.CallToolResult, any, error) {
	if input.PersonID == "" {
		return argError("person_id is required"), nil, nil
	}
	person, err := t.Store.GetPerson(input.PersonID)
	if err != nil {
		return storeError(err), nil, nil
	}
	return toolJSON(person)
}

func (t *PersonTools) SearchPersons(_ context.Context, _ *mcp.CallToolRequest, input SearchPersonsInput) (*mcp.CallToolResult, any, error) {
	filter := models.PersonFilter{
		BirthYearMin: input.BirthYearMin,
		BirthYearMax: input.BirthYearMax,
		DeathYearMin: input.DeathYearMin,
		DeathYearMax: input.DeathYearMax,
	}
	persons, err := t.Store.SearchPersons(input.Query, filter, input.Limit, input.Offset)
	if err != nil {
		return storeError(err), nil, nil
	}
	if persons == nil {
		persons = []models.Person{}
	}
	return toolJSON(persons)
}

func (t *PersonTools) UpdatePerson(_ context.Context, _ *mcp.CallToolRequest, input UpdatePersonInput) (*mcp.CallToolResult, any, error) {
	if input.PersonID == "" {
		return argError("person_id is required"), nil, nil
	}
	patch := models.PersonPatch{
		GivenNames:    input.GivenNames,
		Surname:       input.Surname,
		BirthEstimate: input.BirthEstimate,
		DeathEstimate: input.DeathEstimate,
		Notes:         input.Notes,
	}
	person, err := t.Store.UpdatePerson(input.PersonID, patch)
	if err != nil {
		return storeError(err), nil, nil
	}
	return toolJSON(person)
}
