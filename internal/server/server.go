package server

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/genealogydb/genealogy-mcp/internal/storage"
	"github.com/genealogydb/genealogy-mcp/internal/tools"
)

// New creates a fully configured MCP server with all genealogy tools
// registered. The server is stateless between calls: every handler goes
// straight to the store, there is no session or cache in between.
func New(store *storage.Store) *mcp.Server {
	pt := &tools.PersonTools{Store: store}
	rt := &tools.RelationshipTools{Store: store}
	et := &tools.EventTools{Store: store}
	lt := &tools.LocationTools{Store: store}
	vt := &tools.EvidenceTools{Store: store}
	wt := &tools.ReviewTools{Store: store}
	nt := &tools.NoteTools{Store: store}

	srv := mcp.NewServer(&mcp.Implementation{
		Name:    "genealogy-mcp",
		Version: "0.2.0",
	}, nil)

	// Person tools
	mcp.AddTool(srv, &mcp.Tool{
		Name:        "create_person",
		Description: "Create a person record; every field is optional, partial identity is valid",
	}, pt.CreatePerson)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_person",
		Description: "Fetch a person by id",
	}, pt.GetPerson)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "search_persons",
		Description: "Case-insensitive substring search over names, optionally narrowed by birth/death year ranges, paged via limit/offset",
	}, pt.SearchPersons)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "update_person",
		Description: "Apply a sparse patch to a person; omitted fields are left unchanged",
	}, pt.UpdatePerson)

	// Relationship tools
	mcp.AddTool(srv, &mcp.Tool{
		Name:        "create_relationship",
		Description: "Create an edge between two persons (parent-child, spouse, sibling, or other); duplicates are allowed",
	}, rt.CreateRelationship)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "list_relationships",
		Description: "List all relationships where a person appears as either endpoint, optionally filtered by kind",
	}, rt.ListRelationships)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_family_group",
		Description: "Return the graph of people reachable via parent-child and spouse edges within the given depth",
	}, rt.GetFamilyGroup)

	// Event tools
	mcp.AddTool(srv, &mcp.Tool{
		Name:        "create_event",
		Description: "Create an event (birth, marriage, ...) with an approximate date and optional location",
	}, et.CreateEvent)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "link_person_event",
		Description: "Attach a person to an event with a role; one event can carry several people",
	}, et.LinkPersonEvent)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_events_for_person",
		Description: "List a person's events with their roles, dated events first in date order",
	}, et.GetEventsForPerson)

	// Location tools
	mcp.AddTool(srv, &mcp.Tool{
		Name:        "create_location",
		Description: "Create a place record with optional locality/region/country hierarchy",
	}, lt.CreateLocation)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "search_locations",
		Description: "Substring search over place names and hierarchy fields; use before create_location to reuse existing places",
	}, lt.SearchLocations)

	// Source and assertion tools
	mcp.AddTool(srv, &mcp.Tool{
		Name:        "add_source",
		Description: "Store a citation (URL, archive id, or free text) and return its id",
	}, vt.AddSource)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "add_assertion",
		Description: "Record a claim about a person or relationship with its backing sources; all-or-nothing write",
	}, vt.AddAssertion)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "list_assertions",
		Description: "List all assertions about a person or relationship with their linked sources",
	}, vt.ListAssertions)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "link_source_to_person",
		Description: "Link a source directly to a person as evidence",
	}, vt.LinkSourceToPerson)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "list_sources_for_person",
		Description: "List every source linked to a person, directly or through assertions",
	}, vt.ListSourcesForPerson)

	// Review workflow tools
	mcp.AddTool(srv, &mcp.Tool{
		Name:        "mark_person_verified",
		Description: "Mark a person record as verified, optionally with review notes",
	}, wt.MarkPersonVerified)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "mark_person_rejected",
		Description: "Mark a person record as rejected; the record and its evidence are kept",
	}, wt.MarkPersonRejected)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "list_unreviewed_persons",
		Description: "List person records still awaiting review",
	}, wt.ListUnreviewedPersons)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "bulk_mark_persons_verified",
		Description: "Mark a batch of persons verified in one transaction",
	}, wt.BulkMarkPersonsVerified)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "bulk_mark_persons_rejected",
		Description: "Mark a batch of persons rejected in one transaction",
	}, wt.BulkMarkPersonsRejected)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "mark_relationship_verified",
		Description: "Mark a relationship as verified, optionally with review notes",
	}, wt.MarkRelationshipVerified)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "mark_relationship_rejected",
		Description: "Mark a relationship as rejected; the edge is kept",
	}, wt.MarkRelationshipRejected)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "list_unreviewed_relationships",
		Description: "List relationships still awaiting review",
	}, wt.ListUnreviewedRelationships)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "mark_assertion_verified",
		Description: "Mark an assertion as verified, optionally with review notes",
	}, wt.MarkAssertionVerified)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "mark_assertion_rejected",
		Description: "Mark an assertion as rejected; conflicting assertions may coexist",
	}, wt.MarkAssertionRejected)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "list_unreviewed_assertions",
		Description: "List assertions still awaiting review",
	}, wt.ListUnreviewedAssertions)

	// Research note tools
	mcp.AddTool(srv, &mcp.Tool{
		Name:        "save_research_note",
		Description: "Attach a free-form research note to a person, optionally citing a URL",
	}, nt.SaveResearchNote)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "list_research_notes",
		Description: "List a person's research notes, newest first",
	}, nt.ListResearchNotes)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "search_research_notes",
		Description: "Substring search over all research notes",
	}, nt.SearchResearchNotes)

	return srv
}
