package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tndevfactory/labtim/internal/app/models"
	"github.com/Tndevfactory/labtim/internal/pkg/apperrors"
)

func TestNormalizeAuthorsPrependsCreator(t *testing.T) {
	authors, err := normalizeAuthors(models.StringList{"B. Dupont"}, "A. Martin")
	require.NoError(t, err)
	assert.Equal(t, models.StringList{"A. Martin", "B. Dupont"}, authors)
}

func TestNormalizeAuthorsNoDuplicate(t *testing.T) {
	authors, err := normalizeAuthors(models.StringList{"A. Martin", "B. Dupont"}, "A. Martin")
	require.NoError(t, err)
	assert.Equal(t, models.StringList{"A. Martin", "B. Dupont"}, authors)
}

func TestNormalizeAuthorsEmptyListUsesCreator(t *testing.T) {
	authors, err := normalizeAuthors(models.StringList{}, "A. Martin")
	require.NoError(t, err)
	assert.Equal(t, models.StringList{"A. Martin"}, authors)
}

func TestNormalizeAuthorsTrimsEntries(t *testing.T) {
	authors, err := normalizeAuthors(models.StringList{"  B. Dupont  ", "", "  "}, "A. Martin")
	require.NoError(t, err)
	assert.Equal(t, models.StringList{"A. Martin", "B. Dupont"}, authors)
}

func TestNormalizeAuthorsEmptyEverything(t *testing.T) {
	_, err := normalizeAuthors(models.StringList{}, "")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestNormalizeAuthorsBlankCreatorKeepsList(t *testing.T) {
	authors, err := normalizeAuthors(models.StringList{"B. Dupont"}, "   ")
	require.NoError(t, err)
	assert.Equal(t, models.StringList{"B. Dupont"}, authors)
}

func TestNormalizeDOI(t *testing.T) {
	assert.Nil(t, normalizeDOI(nil))

	empty := ""
	assert.Nil(t, normalizeDOI(&empty))

	blank := "   "
	assert.Nil(t, normalizeDOI(&blank))

	doi := " 10.1000/xyz123 "
	got := normalizeDOI(&doi)
	require.NotNil(t, got)
	assert.Equal(t, "10.1000/xyz123", *got)
}

func TestCreatorDisplayName(t *testing.T) {
	assert.Equal(t, "", creatorDisplayName(nil))

	name := "M. Membre"
	assert.Equal(t, "M. Membre", creatorDisplayName(&name))
}

func TestNormalizeAuthorsAgainstRecordOwner(t *testing.T) {
	// update normalizes against the record owner's name, so an admin
	// editing a member's publication never ends up in the list
	owner := "M. Membre"
	authors, err := normalizeAuthors(models.StringList{"B. Dupont"}, creatorDisplayName(&owner))
	require.NoError(t, err)
	assert.Equal(t, models.StringList{"M. Membre", "B. Dupont"}, authors)
	assert.False(t, authors.Contains("A. Admin"))
}

func TestNormalizeAuthorsOrphanedRecord(t *testing.T) {
	// owner deleted: no name to prepend, the submitted list stands alone
	authors, err := normalizeAuthors(models.StringList{"B. Dupont"}, creatorDisplayName(nil))
	require.NoError(t, err)
	assert.Equal(t, models.StringList{"B. Dupont"}, authors)

	_, err = normalizeAuthors(models.StringList{}, creatorDisplayName(nil))
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestResolveAuthorAgainstRecordOwner(t *testing.T) {
	owner := "M. Membre"
	author, err := resolveAuthor("", creatorDisplayName(&owner))
	require.NoError(t, err)
	assert.Equal(t, "M. Membre", author)

	_, err = resolveAuthor("", creatorDisplayName(nil))
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestTranslatePublicationError(t *testing.T) {
	doiErr := &pgconn.PgError{Code: "23505", ConstraintName: "publications_doi_key"}

	err := translatePublicationError(doiErr)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Equal(t, "DOI must be unique", err.Error())

	wrapped := fmt.Errorf("create publication: %w", doiErr)
	assert.ErrorIs(t, translatePublicationError(wrapped), apperrors.ErrValidationFailed)

	other := errors.New("pool exhausted")
	assert.Equal(t, other, translatePublicationError(other))

	emailErr := &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
	assert.Equal(t, error(emailErr), translatePublicationError(emailErr))
}

func TestResolveAuthor(t *testing.T) {
	author, err := resolveAuthor("C. Petit", "A. Martin")
	require.NoError(t, err)
	assert.Equal(t, "C. Petit", author)

	author, err = resolveAuthor("", "A. Martin")
	require.NoError(t, err)
	assert.Equal(t, "A. Martin", author)

	author, err = resolveAuthor("  C. Petit  ", "")
	require.NoError(t, err)
	assert.Equal(t, "C. Petit", author)

	_, err = resolveAuthor("", "  ")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
