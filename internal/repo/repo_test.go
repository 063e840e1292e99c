package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/castleclothing/storefront/internal/models"
	"github.com/castleclothing/storefront/internal/testdb"
)

func newTestRepo(t *testing.T) *GormRepo {
	return &GormRepo{DB: testdb.Open(t)}
}

func TestUsers(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	ok, err := r.UserExists(ctx, "admin")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = r.FindUser(ctx, "admin")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, r.CreateUser(ctx, &models.User{Username: "admin", PasswordHash: "h"}))

	ok, err = r.UserExists(ctx, "admin")
	require.NoError(t, err)
	assert.True(t, ok)

	u, err := r.FindUser(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, "h", u.PasswordHash)
}

func TestProducts_CRUD(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	items, err := r.ListProducts(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.NotNil(t, items)

	p := &models.Product{Name: "Tee", Description: "Basic", Price: 19.99, ImageURL: "https://img/1.jpg"}
	require.NoError(t, r.CreateProduct(ctx, p))
	require.NotZero(t, p.ID)

	got, err := r.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tee", got.Name)
	assert.InDelta(t, 19.99, got.Price, 1e-9)

	got.Name = "Hoodie"
	got.Description = ""
	require.NoError(t, r.UpdateProduct(ctx, got))

	again, err := r.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hoodie", again.Name)
	assert.Empty(t, again.Description)
	assert.Equal(t, "https://img/1.jpg", again.ImageURL)

	require.NoError(t, r.DeleteProduct(ctx, p.ID))
	assert.ErrorIs(t, r.DeleteProduct(ctx, p.ID), gorm.ErrRecordNotFound)

	_, err = r.GetProduct(ctx, p.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUpdateProduct_MissingRow(t *testing.T) {
	r := newTestRepo(t)
	err := r.UpdateProduct(context.Background(), &models.Product{ID: 99, Name: "x"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestListProducts_NaturalOrder(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	for _, name := range []string{"a", "b", "c"} {
		require.NoError(t, r.CreateProduct(ctx, &models.Product{Name: name}))
	}

	items, err := r.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "a", items[0].Name)
	assert.Equal(t, "c", items[2].Name)
}
