package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsDuplicateConstraintError(t *testing.T) {
	doiErr := &pgconn.PgError{Code: "23505", ConstraintName: "publications_doi_key"}

	assert.True(t, IsDuplicateConstraintError(doiErr, "publications_doi_key"))
	assert.False(t, IsDuplicateConstraintError(doiErr, "users_email_key"))

	wrapped := fmt.Errorf("create publication: %w", doiErr)
	assert.True(t, IsDuplicateConstraintError(wrapped, "publications_doi_key"))

	fkErr := &pgconn.PgError{Code: "23503", ConstraintName: "publications_doi_key"}
	assert.False(t, IsDuplicateConstraintError(fkErr, "publications_doi_key"))

	assert.False(t, IsDuplicateConstraintError(errors.New("boom"), "publications_doi_key"))
	assert.False(t, IsDuplicateConstraintError(nil, "publications_doi_key"))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}))
	assert.True(t, IsUniqueViolation(fmt.Errorf("wrapped: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("boom")))
	assert.False(t, IsUniqueViolation(nil))
}
