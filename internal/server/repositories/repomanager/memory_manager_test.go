package repomanager

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/bloglist/internal/dbx"
	"github.com/dmitrijs2005/bloglist/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryRepositoryManager_SharesState(t *testing.T) {
	ctx := context.Background()
	m := NewInMemoryRepositoryManager()

	require.NoError(t, m.RunMigrations(ctx, nil))

	created, err := m.Blogs(nil).Create(ctx, &models.Blog{Title: "t", URL: "u"})
	require.NoError(t, err)

	got, err := m.Blogs(nil).GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "t", got.Title)

	u, err := m.Users(nil).Create(ctx, &models.User{Username: "root", PasswordHash: "h"})
	require.NoError(t, err)
	_, err = m.Users(nil).GetByID(ctx, u.ID)
	require.NoError(t, err)
}

func TestInMemoryRepositoryManager_WithTx(t *testing.T) {
	m := NewInMemoryRepositoryManager()
	boom := errors.New("boom")

	called := false
	err := m.WithTx(context.Background(), nil, func(ctx context.Context, tx dbx.DBTX) error {
		called = true
		return boom
	})
	assert.True(t, called)
	require.ErrorIs(t, err, boom)
}
