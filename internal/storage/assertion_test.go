package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genealogydb/genealogy-mcp/internal/models"
)

func TestAddSource(t *testing.T) {
	s := setupStore(t)

	src, err := s.AddSource("https://archives.example.org/register/1851/p12")
	require.NoError(t, err)
	assert.NotEmpty(t, src.ID)
	assert.Equal(t, "https://archives.example.org/register/1851/p12", src.Reference)

	_, err = s.AddSource("")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAddAssertionForPerson(t *testing.T) {
	s := setupStore(t)
	p := mustPerson(t, s, "Jean", "Dupont")

	src1, err := s.AddSource("parish register 1851")
	require.NoError(t, err)
	src2, err := s.AddSource("census 1881")
	require.NoError(t, err)

	a, err := s.AddAssertion(models.SubjectPerson, p.ID, "born 1851 in Rouen", []string{src1.ID, src2.ID})
	require.NoError(t, err)
	assert.Equal(t, models.SubjectPerson, a.SubjectType)
	assert.Equal(t, p.ID, a.SubjectID)
	require.Len(t, a.Sources, 2)
}

func TestAddAssertionForRelationship(t *testing.T) {
	s := setupStore(t)
	a := mustPerson(t, s, "Jean", "Dupont")
	b := mustPerson(t, s, "Marie", "Lefevre")
	rel, err := s.CreateRelationship(a.ID, b.ID, models.KindSpouse, "", "")
	require.NoError(t, err)

	claim, err := s.AddAssertion(models.SubjectRelationship, rel.ID, "married June 1872 per banns", nil)
	require.NoError(t, err)
	assert.Equal(t, models.SubjectRelationship, claim.SubjectType)
	assert.Empty(t, claim.Sources)
}

func TestAddAssertionValidation(t *testing.T) {
	s := setupStore(t)
	p := mustPerson(t, s, "Jean", "Dupont")

	_, err := s.AddAssertion("location", p.ID, "claim", nil)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = s.AddAssertion(models.SubjectPerson, "no-such-id", "claim", nil)
	assert.ErrorIs(t, err, ErrNotFound)

	// A person id passed as a relationship subject is a missing row in the
	// relationship table, not a valid subject.
	_, err = s.AddAssertion(models.SubjectRelationship, p.ID, "claim", nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddAssertionAtomicOnMissingSource(t *testing.T) {
	s := setupStore(t)
	p := mustPerson(t, s, "Jean", "Dupont")
	src, err := s.AddSource("census 1881")
	require.NoError(t, err)

	_, err = s.AddAssertion(models.SubjectPerson, p.ID, "born 1851", []string{src.ID, "no-such-source"})
	assert.ErrorIs(t, err, ErrConflict)

	// The whole write rolled back: no assertion rows are visible.
	assertions, err := s.ListAssertions(models.SubjectPerson, p.ID)
	require.NoError(t, err)
	assert.Empty(t, assertions)
}

func TestListAssertionsConflictingClaims(t *testing.T) {
	s := setupStore(t)
	p := mustPerson(t, s, "Jean", "Dupont")

	// Two sources disagreeing on a birth year is expected data, never
	// adjudicated by the store.
	_, err := s.AddAssertion(models.SubjectPerson, p.ID, "born 1850 per parish register", nil)
	require.NoError(t, err)
	_, err = s.AddAssertion(models.SubjectPerson, p.ID, "born 1852 per census", nil)
	require.NoError(t, err)

	assertions, err := s.ListAssertions(models.SubjectPerson, p.ID)
	require.NoError(t, err)
	require.Len(t, assertions, 2)
	assert.Equal(t, "born 1850 per parish register", assertions[0].Claim)
	assert.Equal(t, "born 1852 per census", assertions[1].Claim)
}

func TestListAssertionsCreationOrder(t *testing.T) {
	s := setupStore(t)
	p := mustPerson(t, s, "Jean", "Dupont")

	// Back-to-back inserts land within the same datetime('now') second, so
	// ordering must not depend on the random ids.
	claims := []string{
		"born 1850", "born 1851", "born 1852", "born 1853",
		"born 1854", "born 1855", "born 1856", "born 1857",
	}
	for _, claim := range claims {
		_, err := s.AddAssertion(models.SubjectPerson, p.ID, claim, nil)
		require.NoError(t, err)
	}

	assertions, err := s.ListAssertions(models.SubjectPerson, p.ID)
	require.NoError(t, err)
	require.Len(t, assertions, len(claims))
	for i, claim := range claims {
		assert.Equal(t, claim, assertions[i].Claim)
	}
}

func TestLinkSourceToPerson(t *testing.T) {
	s := setupStore(t)
	p := mustPerson(t, s, "Jean", "Dupont")
	src, err := s.AddSource("military record")
	require.NoError(t, err)

	link, err := s.LinkSourceToPerson(p.ID, src.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, link.PersonID)
	assert.Equal(t, src.ID, link.SourceID)

	_, err = s.LinkSourceToPerson("no-such-id", src.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.LinkSourceToPerson(p.ID, "no-such-id")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSourcesForPersonUnion(t *testing.T) {
	s := setupStore(t)
	p := mustPerson(t, s, "Jean", "Dupont")

	direct, err := s.AddSource("military record")
	require.NoError(t, err)
	viaAssertion, err := s.AddSource("parish register")
	require.NoError(t, err)
	both, err := s.AddSource("census 1881")
	require.NoError(t, err)

	_, err = s.LinkSourceToPerson(p.ID, direct.ID)
	require.NoError(t, err)
	_, err = s.LinkSourceToPerson(p.ID, both.ID)
	require.NoError(t, err)
	_, err = s.AddAssertion(models.SubjectPerson, p.ID, "born 1851", []string{viaAssertion.ID, both.ID})
	require.NoError(t, err)

	sources, err := s.SourcesForPerson(p.ID)
	require.NoError(t, err)
	require.Len(t, sources, 3)

	ids := make([]string, 0, len(sources))
	for _, src := range sources {
		ids = append(ids, src.ID)
	}
	assert.ElementsMatch(t, []string{direct.ID, viaAssertion.ID, both.ID}, ids)
}
