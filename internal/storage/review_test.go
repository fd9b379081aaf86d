package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genealogydb/genealogy-mcp/internal/models"
)

func TestSetPersonStatus(t *testing.T) {
	s := setupStore(t)
	p := mustPerson(t, s, "Jean", "Dupont")

	verified, err := s.SetPersonStatus(p.ID, models.StatusVerified, "matches parish register")
	require.NoError(t, err)
	assert.Equal(t, models.StatusVerified, verified.Status)
	assert.Equal(t, "matches parish register", verified.StatusNotes)

	// Empty notes keep the existing ones.
	rejected, err := s.SetPersonStatus(p.ID, models.StatusRejected, "")
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, rejected.Status)
	assert.Equal(t, "matches parish register", rejected.StatusNotes)

	_, err = s.SetPersonStatus("no-such-id", models.StatusVerified, "")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.SetPersonStatus(p.ID, "maybe", "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSetRelationshipStatus(t *testing.T) {
	s := setupStore(t)
	a := mustPerson(t, s, "Jean", "Dupont")
	b := mustPerson(t, s, "Marie", "Lefevre")
	rel, err := s.CreateRelationship(a.ID, b.ID, models.KindSpouse, "", "")
	require.NoError(t, err)

	updated, err := s.SetRelationshipStatus(rel.ID, models.StatusVerified, "")
	require.NoError(t, err)
	assert.Equal(t, models.StatusVerified, updated.Status)

	_, err = s.SetRelationshipStatus("no-such-id", models.StatusVerified, "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSetAssertionStatus(t *testing.T) {
	s := setupStore(t)
	p := mustPerson(t, s, "Jean", "Dupont")
	a, err := s.AddAssertion(models.SubjectPerson, p.ID, "born 1851", nil)
	require.NoError(t, err)

	updated, err := s.SetAssertionStatus(a.ID, models.StatusRejected, "contradicted by census")
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, updated.Status)
	assert.Equal(t, "contradicted by census", updated.StatusNotes)
}

func TestListUnreviewedQueues(t *testing.T) {
	s := setupStore(t)
	p1 := mustPerson(t, s, "Jean", "Dupont")
	p2 := mustPerson(t, s, "Marie", "Lefevre")

	queue, err := s.ListUnreviewedPersons(0)
	require.NoError(t, err)
	assert.Len(t, queue, 2)

	_, err = s.SetPersonStatus(p1.ID, models.StatusVerified, "")
	require.NoError(t, err)

	queue, err = s.ListUnreviewedPersons(0)
	require.NoError(t, err)
	require.Len(t, queue, 1)
	assert.Equal(t, p2.ID, queue[0].ID)

	rel, err := s.CreateRelationship(p1.ID, p2.ID, models.KindSpouse, "", "")
	require.NoError(t, err)
	relQueue, err := s.ListUnreviewedRelationships(0)
	require.NoError(t, err)
	require.Len(t, relQueue, 1)
	assert.Equal(t, rel.ID, relQueue[0].ID)

	a, err := s.AddAssertion(models.SubjectPerson, p1.ID, "born 1851", nil)
	require.NoError(t, err)
	asQueue, err := s.ListUnreviewedAssertions(0)
	require.NoError(t, err)
	require.Len(t, asQueue, 1)
	assert.Equal(t, a.ID, asQueue[0].ID)
}

func TestBulkSetPersonStatus(t *testing.T) {
	s := setupStore(t)
	p1 := mustPerson(t, s, "Jean", "Dupont")
	p2 := mustPerson(t, s, "Marie", "Lefevre")

	// Unknown ids are skipped, known ones are updated.
	count, err := s.BulkSetPersonStatus([]string{p1.ID, p2.ID, "no-such-id"}, models.StatusVerified, "batch sweep")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	got, err := s.GetPerson(p1.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusVerified, got.Status)
	assert.Equal(t, "batch sweep", got.StatusNotes)

	_, err = s.BulkSetPersonStatus(nil, models.StatusVerified, "")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = s.BulkSetPersonStatus([]string{p1.ID}, "unreviewed", "")
	assert.ErrorIs(t, err, ErrValidation)
}
