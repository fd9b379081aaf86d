package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genealogydb/genealogy-mcp/internal/models"
)

func mustPerson(t *testing.T, s *Store, given, surname string) *models.Person {
	t.Helper()
	p, err := s.CreatePerson(given, surname, "", "", "")
	require.NoError(t, err)
	return p
}

func TestCreateRelationship(t *testing.T) {
	s := setupStore(t)
	parent := mustPerson(t, s, "Henri", "Dupont")
	child := mustPerson(t, s, "Jean", "Dupont")

	rel, err := s.CreateRelationship(parent.ID, child.ID, models.KindParentChild, "", "")
	require.NoError(t, err)
	assert.Equal(t, parent.ID, rel.FromPerson)
	assert.Equal(t, child.ID, rel.ToPerson)
	assert.Equal(t, models.KindParentChild, rel.Kind)
	assert.Equal(t, models.StatusUnreviewed, rel.Status)
}

func TestCreateRelationshipValidation(t *testing.T) {
	s := setupStore(t)
	p := mustPerson(t, s, "Jean", "Dupont")

	_, err := s.CreateRelationship(p.ID, "no-such-id", models.KindSpouse, "", "")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.CreateRelationship("no-such-id", p.ID, models.KindSpouse, "", "")
	assert.ErrorIs(t, err, ErrNotFound)

	q := mustPerson(t, s, "Marie", "Lefevre")
	_, err = s.CreateRelationship(p.ID, q.ID, "acquaintance", "", "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateRelationshipAllowsDuplicates(t *testing.T) {
	s := setupStore(t)
	a := mustPerson(t, s, "Jean", "Dupont")
	b := mustPerson(t, s, "Marie", "Lefevre")

	// Divorced and remarried: two spouse edges with distinct date ranges.
	first, err := s.CreateRelationship(a.ID, b.ID, models.KindSpouse, "", "1872-1880")
	require.NoError(t, err)
	second, err := s.CreateRelationship(a.ID, b.ID, models.KindSpouse, "", "1885-1901")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	rels, err := s.ListRelationships(a.ID, models.KindSpouse)
	require.NoError(t, err)
	assert.Len(t, rels, 2)
}

func TestListRelationshipsCreationOrder(t *testing.T) {
	s := setupStore(t)
	center := mustPerson(t, s, "Jean", "Dupont")

	// Same-second inserts keep their insert order in listings.
	var want []string
	for _, surname := range []string{"Lefevre", "Moreau", "Garnier", "Petit", "Roux"} {
		other := mustPerson(t, s, "Marie", surname)
		rel, err := s.CreateRelationship(center.ID, other.ID, models.KindOther, "witness", "")
		require.NoError(t, err)
		want = append(want, rel.ID)
	}

	rels, err := s.ListRelationships(center.ID, "")
	require.NoError(t, err)
	require.Len(t, rels, len(want))
	for i, rel := range rels {
		assert.Equal(t, want[i], rel.ID)
	}
}

func TestListRelationshipsBothEndpoints(t *testing.T) {
	s := setupStore(t)
	parent := mustPerson(t, s, "Henri", "Dupont")
	child := mustPerson(t, s, "Jean", "Dupont")

	rel, err := s.CreateRelationship(parent.ID, child.ID, models.KindParentChild, "", "")
	require.NoError(t, err)

	fromSide, err := s.ListRelationships(parent.ID, "")
	require.NoError(t, err)
	require.Len(t, fromSide, 1)
	assert.Equal(t, rel.ID, fromSide[0].ID)

	toSide, err := s.ListRelationships(child.ID, "")
	require.NoError(t, err)
	require.Len(t, toSide, 1)
	assert.Equal(t, rel.ID, toSide[0].ID)
}

func TestListRelationshipsKindFilter(t *testing.T) {
	s := setupStore(t)
	a := mustPerson(t, s, "Jean", "Dupont")
	b := mustPerson(t, s, "Marie", "Lefevre")
	c := mustPerson(t, s, "Paul", "Dupont")

	_, err := s.CreateRelationship(a.ID, b.ID, models.KindSpouse, "", "")
	require.NoError(t, err)
	_, err = s.CreateRelationship(a.ID, c.ID, models.KindParentChild, "", "")
	require.NoError(t, err)

	spouses, err := s.ListRelationships(a.ID, models.KindSpouse)
	require.NoError(t, err)
	require.Len(t, spouses, 1)
	assert.Equal(t, models.KindSpouse, spouses[0].Kind)

	all, err := s.ListRelationships(a.ID, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestListRelationshipsUnknownPerson(t *testing.T) {
	s := setupStore(t)

	_, err := s.ListRelationships("no-such-id", "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFamilyGroupDepthOne(t *testing.T) {
	s := setupStore(t)
	center := mustPerson(t, s, "Jean", "Dupont")
	parent := mustPerson(t, s, "Henri", "Dupont")
	spouse := mustPerson(t, s, "Marie", "Lefevre")
	// A sibling edge must not be traversed.
	sibling := mustPerson(t, s, "Paul", "Dupont")

	parentEdge, err := s.CreateRelationship(parent.ID, center.ID, models.KindParentChild, "", "")
	require.NoError(t, err)
	spouseEdge, err := s.CreateRelationship(center.ID, spouse.ID, models.KindSpouse, "", "")
	require.NoError(t, err)
	_, err = s.CreateRelationship(center.ID, sibling.ID, models.KindSibling, "", "")
	require.NoError(t, err)

	group, err := s.FamilyGroup(center.ID, 1)
	require.NoError(t, err)

	nodeIDs := make([]string, 0, len(group.Nodes))
	for _, n := range group.Nodes {
		nodeIDs = append(nodeIDs, n.ID)
	}
	assert.ElementsMatch(t, []string{center.ID, parent.ID, spouse.ID}, nodeIDs)

	edgeIDs := make([]string, 0, len(group.Edges))
	for _, e := range group.Edges {
		edgeIDs = append(edgeIDs, e.ID)
	}
	assert.ElementsMatch(t, []string{parentEdge.ID, spouseEdge.ID}, edgeIDs)
}

func TestFamilyGroupDepthZero(t *testing.T) {
	s := setupStore(t)
	center := mustPerson(t, s, "Jean", "Dupont")
	parent := mustPerson(t, s, "Henri", "Dupont")
	_, err := s.CreateRelationship(parent.ID, center.ID, models.KindParentChild, "", "")
	require.NoError(t, err)

	group, err := s.FamilyGroup(center.ID, 0)
	require.NoError(t, err)
	require.Len(t, group.Nodes, 1)
	assert.Equal(t, center.ID, group.Nodes[0].ID)
	assert.Empty(t, group.Edges)
}

func TestFamilyGroupDepthTwo(t *testing.T) {
	s := setupStore(t)
	center := mustPerson(t, s, "Jean", "Dupont")
	parent := mustPerson(t, s, "Henri", "Dupont")
	grandparent := mustPerson(t, s, "Louis", "Dupont")

	_, err := s.CreateRelationship(parent.ID, center.ID, models.KindParentChild, "", "")
	require.NoError(t, err)
	_, err = s.CreateRelationship(grandparent.ID, parent.ID, models.KindParentChild, "", "")
	require.NoError(t, err)

	shallow, err := s.FamilyGroup(center.ID, 1)
	require.NoError(t, err)
	assert.Len(t, shallow.Nodes, 2)

	deep, err := s.FamilyGroup(center.ID, 2)
	require.NoError(t, err)
	assert.Len(t, deep.Nodes, 3)
	assert.Len(t, deep.Edges, 2)
}

func TestFamilyGroupSelfReferentialEdge(t *testing.T) {
	s := setupStore(t)
	p := mustPerson(t, s, "Jean", "Dupont")

	// Degenerate data: a person recorded as their own parent. Traversal
	// must terminate and must not report the person twice.
	_, err := s.CreateRelationship(p.ID, p.ID, models.KindParentChild, "", "")
	require.NoError(t, err)

	group, err := s.FamilyGroup(p.ID, 3)
	require.NoError(t, err)
	require.Len(t, group.Nodes, 1)
	assert.Equal(t, p.ID, group.Nodes[0].ID)
	assert.Len(t, group.Edges, 1)
}

func TestFamilyGroupUnknownPerson(t *testing.T) {
	s := setupStore(t)

	_, err := s.FamilyGroup("no-such-id", 1)
	assert.ErrorIs(t, err, ErrNotFound)
}
