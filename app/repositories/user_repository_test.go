package repositories_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/morehouse/pizzashack/app/models"
	"github.com/morehouse/pizzashack/app/repositories"
	"github.com/morehouse/pizzashack/pkg/testkit"
)

func ptr[T any](v T) *T { return &v }

func TestUserCreateAndFind(t *testing.T) {
	repo := repositories.NewUserRepository(testkit.NewDB(t))
	ctx := context.Background()

	u := &models.User{Email: "kim@example.com", Password: "kim123", Type: models.TypeCustomer}
	require.NoError(t, repo.Create(ctx, u))
	assert.NotZero(t, u.ID)

	got, err := repo.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u, got)

	got, err = repo.FindByEmail(ctx, "kim@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
}

func TestUserFindMissingIsEmpty(t *testing.T) {
	repo := repositories.NewUserRepository(testkit.NewDB(t))

	got, err := repo.FindByID(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = repo.FindByEmail(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUserDuplicateEmail(t *testing.T) {
	repo := repositories.NewUserRepository(testkit.NewDB(t))
	ctx := context.Background()

	first := &models.User{Email: "dup@example.com", Password: "one", Type: models.TypeCustomer}
	require.NoError(t, repo.Create(ctx, first))

	err := repo.Create(ctx, &models.User{Email: "dup@example.com", Password: "two", Type: models.TypeEmployee})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UNIQUE constraint failed")

	got, err := repo.FindByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "one", got.Password)
	assert.Equal(t, models.TypeCustomer, got.Type)
}

func TestUserDuplicatePassword(t *testing.T) {
	repo := repositories.NewUserRepository(testkit.NewDB(t))
	ctx := context.Background()

	first := &models.User{Email: "alice@example.com", Password: "alice123", Type: models.TypeCustomer}
	require.NoError(t, repo.Create(ctx, first))

	err := repo.Create(ctx, &models.User{Email: "mallory@example.com", Password: "alice123", Type: models.TypeCustomer})
	require.Error(t, err)
	assert.Equal(t, "UNIQUE constraint failed: user.userPassword", err.Error())

	second := &models.User{Email: "bob@example.com", Password: "bob123", Type: models.TypeEmployee}
	require.NoError(t, repo.Create(ctx, second))
	_, err = repo.Update(ctx, second.ID, repositories.UserChanges{
		Email:    ptr("bob@example.com"),
		Password: ptr("alice123"),
		Type:     ptr(models.TypeEmployee),
	})
	assert.ErrorContains(t, err, "UNIQUE constraint failed: user.userPassword")

	got, err := repo.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, first, got)

	missing, err := repo.FindByEmail(ctx, "mallory@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserUpdate(t *testing.T) {
	repo := repositories.NewUserRepository(testkit.NewDB(t))
	ctx := context.Background()

	u := &models.User{Email: "lee@example.com", Password: "lee123", Type: models.TypeCustomer}
	require.NoError(t, repo.Create(ctx, u))

	changes, err := repo.Update(ctx, u.ID, repositories.UserChanges{
		Email:    ptr("lee@pizza.example"),
		Password: ptr("secret"),
		Type:     ptr(models.TypeEmployee),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), changes)

	got, err := repo.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, &models.User{ID: u.ID, Email: "lee@pizza.example", Password: "secret", Type: models.TypeEmployee}, got)
}

func TestUserUpdateUnknownID(t *testing.T) {
	db := testkit.NewDB(t)
	repo := repositories.NewUserRepository(db)

	changes, err := repo.Update(context.Background(), 42, repositories.UserChanges{
		Email: ptr("ghost@example.com"), Password: ptr("ghost"), Type: ptr(models.TypeCustomer),
	})
	require.NoError(t, err)
	assert.Zero(t, changes)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestUserUpdateOmittedFieldHitsNotNull(t *testing.T) {
	repo := repositories.NewUserRepository(testkit.NewDB(t))
	ctx := context.Background()

	u := &models.User{Email: "max@example.com", Password: "max123", Type: models.TypeCustomer}
	require.NoError(t, repo.Create(ctx, u))

	_, err := repo.Update(ctx, u.ID, repositories.UserChanges{Email: ptr("max@pizza.example"), Password: ptr("x")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NOT NULL constraint failed")

	got, err := repo.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "max@example.com", got.Email)
}

func TestUserDelete(t *testing.T) {
	repo := repositories.NewUserRepository(testkit.NewDB(t))
	ctx := context.Background()

	u := &models.User{Email: "sam@example.com", Password: "sam123", Type: models.TypeCustomer}
	require.NoError(t, repo.Create(ctx, u))

	changes, err := repo.Delete(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), changes)

	changes, err = repo.Delete(ctx, u.ID)
	require.NoError(t, err)
	assert.Zero(t, changes)

	got, err := repo.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}
