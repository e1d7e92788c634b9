package repository_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"delivery-fee-service/internal/repository"
)

func TestIsDuplicate(t *testing.T) {
	t.Parallel()

	assert.True(t, repository.IsDuplicate(fmt.Errorf("wrap: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, repository.IsDuplicate(&pgconn.PgError{Code: "23503"}))
	assert.False(t, repository.IsDuplicate(errors.New("x")))
}

func TestIsNotFound(t *testing.T) {
	t.Parallel()

	assert.True(t, repository.IsNotFound(fmt.Errorf("wrap: %w", pgx.ErrNoRows)))
	assert.False(t, repository.IsNotFound(errors.New("x")))
}
