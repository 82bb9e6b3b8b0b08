package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"socialink/internal/domain"
	socialink_errors "socialink/pkg/errors"
)

func TestSchemaValidation(t *testing.T) {
	t.Run("current user version passes", func(t *testing.T) {
		u := &domain.User{SchemaVersion: domain.UserSchemaVersion}
		assert.NoError(t, validateUserSchema(u))
	})

	t.Run("unknown user version is rejected at the store boundary", func(t *testing.T) {
		u := &domain.User{SchemaVersion: domain.UserSchemaVersion + 1}
		assert.ErrorIs(t, validateUserSchema(u), socialink_errors.ErrSchemaVersion)

		legacy := &domain.User{}
		assert.ErrorIs(t, validateUserSchema(legacy), socialink_errors.ErrSchemaVersion)
	})

	t.Run("current post version passes", func(t *testing.T) {
		p := &domain.Post{SchemaVersion: domain.PostSchemaVersion}
		assert.NoError(t, validatePostSchema(p))
	})

	t.Run("unknown post version is rejected", func(t *testing.T) {
		p := &domain.Post{SchemaVersion: 99}
		assert.ErrorIs(t, validatePostSchema(p), socialink_errors.ErrSchemaVersion)
	})
}
