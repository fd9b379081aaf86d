package models

// Relationship kinds stored in the relationship table. KindOther carries a
// free-text label alongside it.
const (
	KindParentChild = "parent-child"
	KindSpouse      = "spouse"
	KindSibling     = "sibling"
	KindOther       = "other"
)

// Assertion subject tags.
const (
	SubjectPerson       = "person"
	SubjectRelationship = "relationship"
)

// Review statuses. Every reviewable row starts as unreviewed.
const (
	StatusUnreviewed = "unreviewed"
	StatusVerified   = "verified"
	StatusRejected   = "rejected"
)

// Person represents an individual under research. Name parts and date
// estimates are free text and individually optional; archival records are
// often partial.
type Person struct {
	ID            string `json:"id"`
	GivenNames    string `json:"given_names,omitempty"`
	Surname       string `json:"surname,omitempty"`
	BirthEstimate string `json:"birth_estimate,omitempty"`
	DeathEstimate string `json:"death_estimate,omitempty"`
	Notes         string `json:"notes,omitempty"`
	Status        string `json:"status"`
	StatusNotes   string `json:"status_notes,omitempty"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

// PersonPatch is a sparse update: nil fields are left untouched.
type PersonPatch struct {
	GivenNames    *string
	Surname       *string
	BirthEstimate *string
	DeathEstimate *string
	Notes         *string
}

// PersonFilter narrows a person search by approximate birth/death year.
// Zero values mean "no bound".
type PersonFilter struct {
	BirthYearMin int
	BirthYearMax int
	DeathYearMin int
	DeathYearMax int
}

// Relationship is a directed edge between two persons. For parent-child,
// FromPerson is the parent and ToPerson the child; spouse and sibling edges
// are symmetric and the order carries no meaning.
type Relationship struct {
	ID          string `json:"id"`
	FromPerson  string `json:"from_person"`
	ToPerson    string `json:"to_person"`
	Kind        string `json:"kind"`
	Label       string `json:"label,omitempty"`
	DateRange   string `json:"date_range,omitempty"`
	Status      string `json:"status"`
	StatusNotes string `json:"status_notes,omitempty"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// Event is something that happened: a birth, baptism, marriage, death, or a
// free-text kind. Events exist independently of people and are linked
// afterward via PersonEvent rows.
type Event struct {
	ID         string `json:"id"`
	Kind       string `json:"kind"`
	DateApprox string `json:"date_approx,omitempty"`
	LocationID string `json:"location_id,omitempty"`
	CreatedAt  string `json:"created_at"`
}

// PersonEvent records a person's role in an event (subject, spouse,
// witness, parent-of-subject, ...).
type PersonEvent struct {
	ID        string `json:"id"`
	PersonID  string `json:"person_id"`
	EventID   string `json:"event_id"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

// PersonEventRole pairs an event with the role a person held in it.
type PersonEventRole struct {
	Event Event  `json:"event"`
	Role  string `json:"role"`
}

// Location is a place description. Hierarchy fields are optional; nothing
// enforces uniqueness, the search surface only helps callers reuse rows.
type Location struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Locality  string `json:"locality,omitempty"`
	Region    string `json:"region,omitempty"`
	Country   string `json:"country,omitempty"`
	CreatedAt string `json:"created_at"`
}

// Source is a citation: URL, archive identifier, or free text.
type Source struct {
	ID        string `json:"id"`
	Reference string `json:"reference"`
	CreatedAt string `json:"created_at"`
}

// Assertion is a claim about a person or a relationship, backed by zero or
// more sources. Conflicting assertions about the same fact are expected;
// the store never adjudicates them.
type Assertion struct {
	ID          string   `json:"id"`
	SubjectType string   `json:"subject_type"`
	SubjectID   string   `json:"subject_id"`
	Claim       string   `json:"claim"`
	Status      string   `json:"status"`
	StatusNotes string   `json:"status_notes,omitempty"`
	Sources     []Source `json:"sources,omitempty"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

// PersonSource is a direct evidence link between a person and a source.
type PersonSource struct {
	ID        string `json:"id"`
	PersonID  string `json:"person_id"`
	SourceID  string `json:"source_id"`
	CreatedAt string `json:"created_at"`
}

// ResearchNote is a free-form note attached to a person, optionally citing
// where it came from.
type ResearchNote struct {
	ID        string `json:"id"`
	PersonID  string `json:"person_id"`
	Note      string `json:"note"`
	SourceURL string `json:"source_url,omitempty"`
	CreatedAt string `json:"created_at"`
}

// FamilyGroup is the subgraph of people reachable from one person via
// parent-child and spouse edges within a bounded number of hops.
type FamilyGroup struct {
	Nodes []Person       `json:"nodes"`
	Edges []Relationship `json:"edges"`
}
