package service_test

import (
	"context"
	"testing"

	"moviehub/internal/models"
	"moviehub/internal/repository"
	"moviehub/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newReviewService(db *gorm.DB) service.ReviewService {
	return service.NewReviewService(
		repository.NewReviewRepository(db),
		repository.NewMovieRepo(db),
		repository.NewUserRepository(db),
	)
}

func TestReviewService_Create_Validation(t *testing.T) {
	db := newTestDB(t)
	svc := newReviewService(db)
	ctx := context.Background()

	country := seedCountry(t, db, "UK")
	movie := seedMovie(t, db, "reviewed", country.ID)
	user := seedUser(t, db, "critic")

	var verr *service.ValidationError

	t.Run("rating out of range", func(t *testing.T) {
		err := svc.Create(ctx, &models.Review{Rating: intPtr(6), UserID: user.ID, MovieID: movie.ID})
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "rating", verr.Field)

		err = svc.Create(ctx, &models.Review{Rating: intPtr(0), UserID: user.ID, MovieID: movie.ID})
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("blank text", func(t *testing.T) {
		err := svc.Create(ctx, &models.Review{Text: strPtr("   "), UserID: user.ID, MovieID: movie.ID})
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "text", verr.Field)
	})

	t.Run("neither rating nor text", func(t *testing.T) {
		err := svc.Create(ctx, &models.Review{UserID: user.ID, MovieID: movie.ID})
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "review", verr.Field)
	})

	t.Run("unknown movie", func(t *testing.T) {
		err := svc.Create(ctx, &models.Review{Rating: intPtr(3), UserID: user.ID, MovieID: 9999})
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("unknown author", func(t *testing.T) {
		err := svc.Create(ctx, &models.Review{Rating: intPtr(3), UserID: 9999, MovieID: movie.ID})
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("rating only is enough", func(t *testing.T) {
		require.NoError(t, svc.Create(ctx, &models.Review{Rating: intPtr(5), UserID: user.ID, MovieID: movie.ID}))
	})
}

func TestReviewService_Reply_MustShareMovie(t *testing.T) {
	db := newTestDB(t)
	svc := newReviewService(db)
	ctx := context.Background()

	country := seedCountry(t, db, "UK")
	m1 := seedMovie(t, db, "one", country.ID)
	m2 := seedMovie(t, db, "two", country.ID)
	user := seedUser(t, db, "critic")

	root := models.Review{Text: strPtr("great"), UserID: user.ID, MovieID: m1.ID}
	require.NoError(t, svc.Create(ctx, &root))

	crossMovie := models.Review{Text: strPtr("agreed"), ParentID: &root.ID, UserID: user.ID, MovieID: m2.ID}
	err := svc.Create(ctx, &crossMovie)
	var verr *service.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "parent_id", verr.Field)

	sameMovie := models.Review{Text: strPtr("agreed"), ParentID: &root.ID, UserID: user.ID, MovieID: m1.ID}
	require.NoError(t, svc.Create(ctx, &sameMovie))
}

func TestReviewService_Delete_RemovesSubtree(t *testing.T) {
	db := newTestDB(t)
	svc := newReviewService(db)
	ctx := context.Background()

	country := seedCountry(t, db, "UK")
	movie := seedMovie(t, db, "threaded", country.ID)
	user := seedUser(t, db, "critic")

	root := models.Review{Text: strPtr("root"), UserID: user.ID, MovieID: movie.ID}
	require.NoError(t, svc.Create(ctx, &root))

	reply1 := models.Review{Text: strPtr("reply 1"), ParentID: &root.ID, UserID: user.ID, MovieID: movie.ID}
	require.NoError(t, svc.Create(ctx, &reply1))
	reply2 := models.Review{Text: strPtr("reply 2"), ParentID: &root.ID, UserID: user.ID, MovieID: movie.ID}
	require.NoError(t, svc.Create(ctx, &reply2))
	nested := models.Review{Text: strPtr("nested"), ParentID: &reply1.ID, UserID: user.ID, MovieID: movie.ID}
	require.NoError(t, svc.Create(ctx, &nested))

	bystander := models.Review{Text: strPtr("unrelated"), UserID: user.ID, MovieID: movie.ID}
	require.NoError(t, svc.Create(ctx, &bystander))

	deleted, err := svc.Delete(ctx, root.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 4, deleted)

	remaining, err := svc.GetByMovie(ctx, movie.ID)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, bystander.ID, remaining[0].ID)
}

func TestReviewService_Delete_NotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newReviewService(db)

	_, err := svc.Delete(context.Background(), 777)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
