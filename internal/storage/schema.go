package storage

// Schema is the SQL schema for the genealogy database. Rows are never
// physically deleted through the public surface, so there are no
// deleted_at columns; "rejection" is a review status, not a removal.
const Schema = `
CREATE TABLE IF NOT EXISTS person (
    id              TEXT PRIMARY KEY,
    given_names     TEXT NOT NULL DEFAULT '',
    surname         TEXT NOT NULL DEFAULT '',
    birth_estimate  TEXT NOT NULL DEFAULT '',
    death_estimate  TEXT NOT NULL DEFAULT '',
    birth_year      INTEGER NULL,
    death_year      INTEGER NULL,
    notes           TEXT NOT NULL DEFAULT '',
    status          TEXT NOT NULL DEFAULT 'unreviewed'
                    CHECK(status IN ('unreviewed', 'verified', 'rejected')),
    status_notes    TEXT NOT NULL DEFAULT '',
    created_at      TEXT NOT NULL DEFAULT (datetime('now')),
    updated_at      TEXT NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS relationship (
    id           TEXT PRIMARY KEY,
    from_person  TEXT NOT NULL REFERENCES person(id),
    to_person    TEXT NOT NULL REFERENCES person(id),
    kind         TEXT NOT NULL
                 CHECK(kind IN ('parent-child', 'spouse', 'sibling', 'other')),
    label        TEXT NOT NULL DEFAULT '',
    date_range   TEXT NOT NULL DEFAULT '',
    status       TEXT NOT NULL DEFAULT 'unreviewed'
                 CHECK(status IN ('unreviewed', 'verified', 'rejected')),
    status_notes TEXT NOT NULL DEFAULT '',
    created_at   TEXT NOT NULL DEFAULT (datetime('now')),
    updated_at   TEXT NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS location (
    id          TEXT PRIMARY KEY,
    name        TEXT NOT NULL,
    locality    TEXT NOT NULL DEFAULT '',
    region      TEXT NOT NULL DEFAULT '',
    country     TEXT NOT NULL DEFAULT '',
    created_at  TEXT NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS event (
    id          TEXT PRIMARY KEY,
    kind        TEXT NOT NULL,
    date_approx TEXT NOT NULL DEFAULT '',
    date_sort   INTEGER NULL,
    location_id TEXT NULL REFERENCES location(id),
    created_at  TEXT NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS person_event (
    id         TEXT PRIMARY KEY,
    person_id  TEXT NOT NULL REFERENCES person(id),
    event_id   TEXT NOT NULL REFERENCES event(id),
    role       TEXT NOT NULL,
    created_at TEXT NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS source (
    id         TEXT PRIMARY KEY,
    reference  TEXT NOT NULL,
    created_at TEXT NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS assertion (
    id           TEXT PRIMARY KEY,
    subject_type TEXT NOT NULL CHECK(subject_type IN ('person', 'relationship')),
    subject_id   TEXT NOT NULL,
    claim        TEXT NOT NULL,
    status       TEXT NOT NULL DEFAULT 'unreviewed'
                 CHECK(status IN ('unreviewed', 'verified', 'rejected')),
    status_notes TEXT NOT NULL DEFAULT '',
    created_at   TEXT NOT NULL DEFAULT (datetime('now')),
    updated_at   TEXT NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS assertion_source (
    assertion_id TEXT NOT NULL REFERENCES assertion(id),
    source_id    TEXT NOT NULL REFERENCES source(id),
    PRIMARY KEY (assertion_id, source_id)
);

CREATE TABLE IF NOT EXISTS person_source (
    id         TEXT PRIMARY KEY,
    person_id  TEXT NOT NULL REFERENCES person(id),
    source_id  TEXT NOT NULL REFERENCES source(id),
    created_at TEXT NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS research_note (
    id         TEXT PRIMARY KEY,
    person_id  TEXT NOT NULL REFERENCES person(id),
    note       TEXT NOT NULL,
    source_url TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_person_surname ON person(surname);
CREATE INDEX IF NOT EXISTS idx_person_given ON person(given_names);
CREATE INDEX IF NOT EXISTS idx_person_status ON person(status);
CREATE INDEX IF NOT EXISTS idx_relationship_from ON relationship(from_person);
CREATE INDEX IF NOT EXISTS idx_relationship_to ON relationship(to_person);
CREATE INDEX IF NOT EXISTS idx_relationship_status ON relationship(status);
CREATE INDEX IF NOT EXISTS idx_event_location ON event(location_id);
CREATE INDEX IF NOT EXISTS idx_person_event_person ON person_event(person_id);
CREATE INDEX IF NOT EXISTS idx_person_event_event ON person_event(event_id);
CREATE INDEX IF NOT EXISTS idx_location_name ON location(name);
CREATE INDEX IF NOT EXISTS idx_assertion_subject ON assertion(subject_type, subject_id);
CREATE INDEX IF NOT EXISTS idx_assertion_status ON assertion(status);
CREATE INDEX IF NOT EXISTS idx_person_source_person ON person_source(person_id);
CREATE INDEX IF NOT EXISTS idx_research_note_person ON research_note(person_id);
`
