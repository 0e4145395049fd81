package repositories

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tndevfactory/labtim/internal/app/models"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func buildWhere(t *testing.T, cond squirrel.Sqlizer) (string, []interface{}) {
	t.Helper()
	sql, args, err := squirrel.Select("*").
		From("x").
		Where(cond).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	require.NoError(t, err)
	return sql, args
}

func TestPublicationFilterEmpty(t *testing.T) {
	// an empty And renders as the no-op (1=1)
	sql, args := buildWhere(t, publicationFilterConditions(PublicationFilter{}))
	assert.Contains(t, sql, "(1=1)")
	assert.NotContains(t, sql, "ILIKE")
	assert.Empty(t, args)
}

func TestPublicationFilterScalars(t *testing.T) {
	filter := PublicationFilter{
		CreatorID: strPtr("user-1"),
		Year:      intPtr(2023),
	}
	sql, args := buildWhere(t, publicationFilterConditions(filter))

	assert.Contains(t, sql, "p.user_id = $1")
	assert.Contains(t, sql, "p.year = $2")
	assert.Contains(t, sql, " AND ")
	assert.Equal(t, []interface{}{"user-1", 2023}, args)
}

func TestPublicationFilterSearchTerm(t *testing.T) {
	filter := PublicationFilter{SearchTerm: strPtr("deep learning")}
	sql, args := buildWhere(t, publicationFilterConditions(filter))

	assert.Contains(t, sql, "p.title ILIKE $1")
	assert.Contains(t, sql, "p.authors ILIKE $2")
	assert.Contains(t, sql, " OR ")
	assert.Equal(t, []interface{}{"%deep learning%", "%deep learning%"}, args)
}

func TestPublicationFilterBlankSearchTermIgnored(t *testing.T) {
	filter := PublicationFilter{SearchTerm: strPtr("   ")}
	sql, args := buildWhere(t, publicationFilterConditions(filter))
	assert.NotContains(t, sql, "ILIKE")
	assert.Empty(t, args)
}

func TestTheseFilterSearchSpansTextColumns(t *testing.T) {
	filter := TheseFilter{SearchTerm: strPtr("imagerie")}
	sql, args := buildWhere(t, theseFilterConditions(filter))

	for _, col := range []string{"t.title", "t.author", "t.etablissement", "t.specialite", "t.encadrant", "t.membres"} {
		assert.Contains(t, sql, col+" ILIKE")
	}
	assert.Len(t, args, 6)
}

func TestTheseFilterType(t *testing.T) {
	hdr := models.TheseHDR
	filter := TheseFilter{Type: &hdr, Year: intPtr(2020)}
	sql, args := buildWhere(t, theseFilterConditions(filter))

	assert.Contains(t, sql, "t.year = $1")
	assert.Contains(t, sql, "t.type = $2")
	assert.Equal(t, []interface{}{2020, models.TheseHDR}, args)
}

func TestMasterFilterCombined(t *testing.T) {
	pfe := models.MasterPFE
	filter := MasterFilter{
		CreatorID:  strPtr("user-9"),
		Type:       &pfe,
		SearchTerm: strPtr("segmentation"),
	}
	sql, args := buildWhere(t, masterFilterConditions(filter))

	assert.Contains(t, sql, "m.user_id = $1")
	assert.Contains(t, sql, "m.type = $2")
	assert.Contains(t, sql, "m.title ILIKE")
	assert.Contains(t, sql, "m.membres ILIKE")
	assert.Len(t, args, 8)
}

func TestActuFilterCategoryAndSearch(t *testing.T) {
	formation := models.ActuFormation
	filter := ActuFilter{
		Category:   &formation,
		SearchTerm: strPtr("atelier"),
	}
	sql, args := buildWhere(t, actuFilterConditions(filter))

	assert.Contains(t, sql, "a.category = $1")
	assert.Contains(t, sql, "a.title ILIKE $2")
	assert.Contains(t, sql, "a.short_description ILIKE $3")
	assert.Equal(t, []interface{}{models.ActuFormation, "%atelier%", "%atelier%"}, args)
}

func TestUserFilterRoleAndSearch(t *testing.T) {
	member := models.RoleMember
	filter := UserFilter{
		Role:       &member,
		SearchTerm: strPtr("traitement"),
	}
	sql, args := buildWhere(t, userFilterConditions(filter))

	assert.Contains(t, sql, "role = $1")
	assert.Contains(t, sql, "name ILIKE")
	assert.Contains(t, sql, "email ILIKE")
	assert.Contains(t, sql, "position ILIKE")
	assert.Contains(t, sql, "expertises ILIKE")
	assert.Len(t, args, 5)
}

func TestSearchConditionTrimsTerm(t *testing.T) {
	sql, args := buildWhere(t, publicationSearchCondition("  réseaux  "))
	assert.Contains(t, sql, "ILIKE")
	assert.Equal(t, []interface{}{"%réseaux%", "%réseaux%"}, args)
}
