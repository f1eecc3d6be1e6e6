package service_test

import (
	"context"
	"testing"

	"moviehub/internal/auth"
	"moviehub/internal/models"
	"moviehub/internal/repository"
	"moviehub/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_Create(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewUserService(repository.NewUserRepository(db))
	ctx := context.Background()

	u := models.UserProfile{
		FirstName: "Ada",
		Username:  "ada",
		Email:     "ada@example.com",
		Age:       30,
	}
	require.NoError(t, svc.Create(ctx, &u, "s3cret-pass"))

	got, err := svc.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusSimple, got.Status, "status defaults to simple")
	assert.NoError(t, auth.VerifyPassword(got.PasswordHash, "s3cret-pass"))

	// registration brings the favorites list with it
	fav, err := repository.NewFavoriteRepository(db).GetByUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Empty(t, fav.Items)
}

func TestUserService_Create_Validation(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewUserService(repository.NewUserRepository(db))
	ctx := context.Background()

	var verr *service.ValidationError

	err := svc.Create(ctx, &models.UserProfile{Username: "x", Email: "x@example.com", Age: 30}, "pw")
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "first_name", verr.Field)

	err = svc.Create(ctx, &models.UserProfile{FirstName: "X", Username: "x", Email: "x@example.com", Age: 12}, "pw")
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "age", verr.Field)

	err = svc.Create(ctx, &models.UserProfile{FirstName: "X", Username: "x", Email: "x@example.com", Age: 30}, "")
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "password", verr.Field)
}

func TestUserService_Create_DuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewUserService(repository.NewUserRepository(db))
	ctx := context.Background()

	first := models.UserProfile{FirstName: "A", Username: "taken", Email: "a@example.com", Age: 30}
	require.NoError(t, svc.Create(ctx, &first, "pw-one"))

	second := models.UserProfile{FirstName: "B", Username: "taken", Email: "b@example.com", Age: 30}
	err := svc.Create(ctx, &second, "pw-two")
	assert.ErrorIs(t, err, repository.ErrConflict)

	third := models.UserProfile{FirstName: "C", Username: "other", Email: "a@example.com", Age: 30}
	err = svc.Create(ctx, &third, "pw-three")
	assert.ErrorIs(t, err, repository.ErrConflict)
}

func TestUserService_Update_KeepsPasswordWhenEmpty(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewUserService(repository.NewUserRepository(db))
	ctx := context.Background()

	u := models.UserProfile{FirstName: "Ada", Username: "ada", Email: "ada@example.com", Age: 30}
	require.NoError(t, svc.Create(ctx, &u, "original-pw"))

	update := models.UserProfile{FirstName: "Ada", LastName: strPtr("Lovelace"), Username: "ada", Email: "ada@example.com", Age: 31}
	require.NoError(t, svc.Update(ctx, u.ID, &update, ""))

	got, err := svc.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, got.LastName)
	assert.Equal(t, "Lovelace", *got.LastName)
	assert.Equal(t, 31, got.Age)
	assert.NoError(t, auth.VerifyPassword(got.PasswordHash, "original-pw"))
}

func TestUserService_Delete_BlockedByReviews(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewUserService(repository.NewUserRepository(db))
	reviewSvc := newReviewService(db)
	ctx := context.Background()

	country := seedCountry(t, db, "Canada")
	movie := seedMovie(t, db, "reviewed", country.ID)
	user := seedUser(t, db, "prolific")

	review := models.Review{Rating: intPtr(5), UserID: user.ID, MovieID: movie.ID}
	require.NoError(t, reviewSvc.Create(ctx, &review))

	err := svc.Delete(ctx, user.ID)
	assert.ErrorIs(t, err, repository.ErrConflict)

	_, err = reviewSvc.Delete(ctx, review.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, user.ID))

	// the favorites list went with the profile
	_, err = repository.NewFavoriteRepository(db).GetByUser(ctx, user.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
