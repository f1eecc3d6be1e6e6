package service_test

import (
	"context"
	"testing"
	"time"

	"moviehub/internal/models"
	"moviehub/internal/repository"
	"moviehub/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMovieService_CreateWithCastAndGenres(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewMovieService(repository.NewMovieRepo(db))
	ctx := context.Background()

	country := seedCountry(t, db, "USA")
	director := seedDirector(t, db, "Nolan")
	a1 := seedActor(t, db, "Lead")
	a2 := seedActor(t, db, "Support")
	g1 := seedGenre(t, db, "Sci-Fi")

	m := newMovie("inception", country.ID)
	m.DirectorID = &director.ID
	m.Resolutions = []string{models.Res720, models.Res1080}
	require.NoError(t, svc.Create(ctx, &m, []int64{a1.ID, a2.ID}, []int64{g1.ID}))

	got, err := svc.GetByID(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, "inception", got.Name)
	assert.Equal(t, []string{models.Res720, models.Res1080}, got.Resolutions)
	assert.Len(t, got.Actors, 2)
	assert.Len(t, got.Genres, 1)
	require.NotNil(t, got.DirectorID)
	assert.Equal(t, director.ID, *got.DirectorID)
}

func TestMovieService_Create_FutureYear(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewMovieService(repository.NewMovieRepo(db))

	country := seedCountry(t, db, "USA")
	m := newMovie("from-the-future", country.ID)
	m.Year = time.Now().Year() + 1

	err := svc.Create(context.Background(), &m, nil, nil)
	var verr *service.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "year", verr.Field)
}

func TestMovieService_Create_UnknownCountry(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewMovieService(repository.NewMovieRepo(db))

	m := newMovie("orphan", 999)
	err := svc.Create(context.Background(), &m, nil, nil)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestMovieService_Create_UnknownActor(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewMovieService(repository.NewMovieRepo(db))

	country := seedCountry(t, db, "USA")
	m := newMovie("miscast", country.ID)
	err := svc.Create(context.Background(), &m, []int64{12345}, nil)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestMovieService_Create_DirectorAlreadyTaken(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewMovieService(repository.NewMovieRepo(db))
	ctx := context.Background()

	country := seedCountry(t, db, "USA")
	director := seedDirector(t, db, "Busy")

	first := newMovie("first", country.ID)
	first.DirectorID = &director.ID
	require.NoError(t, svc.Create(ctx, &first, nil, nil))

	second := newMovie("second", country.ID)
	second.DirectorID = &director.ID
	err := svc.Create(ctx, &second, nil, nil)
	assert.ErrorIs(t, err, repository.ErrConflict)
}

func TestMovieService_Update_ReplacesFieldSet(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewMovieService(repository.NewMovieRepo(db))
	ctx := context.Background()

	country := seedCountry(t, db, "USA")
	g1 := seedGenre(t, db, "Drama")
	g2 := seedGenre(t, db, "Thriller")
	a1 := seedActor(t, db, "Original")
	a2 := seedActor(t, db, "Recast")

	m := newMovie("original", country.ID)
	m.Description = "original cut"
	require.NoError(t, svc.Create(ctx, &m, []int64{a1.ID}, []int64{g1.ID}))

	created, err := svc.GetByID(ctx, m.ID)
	require.NoError(t, err)

	replacement := newMovie("directors-cut", country.ID)
	replacement.Year = 2021
	require.NoError(t, svc.Update(ctx, m.ID, &replacement, []int64{a2.ID}, []int64{g1.ID, g2.ID}))

	got, err := svc.GetByID(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, "directors-cut", got.Name)
	assert.Equal(t, 2021, got.Year)
	assert.Empty(t, got.Description, "omitted optional fields are cleared")
	require.Len(t, got.Actors, 1)
	assert.Equal(t, a2.ID, got.Actors[0].ID)
	assert.Len(t, got.Genres, 2)
	assert.True(t, got.CreatedAt.Equal(created.CreatedAt), "created_at survives updates")
}

func TestMovieService_Update_NotFound(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewMovieService(repository.NewMovieRepo(db))

	country := seedCountry(t, db, "USA")
	m := newMovie("ghost", country.ID)
	err := svc.Update(context.Background(), 404, &m, nil, nil)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestMovieService_Delete_Cascades(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewMovieService(repository.NewMovieRepo(db))
	ctx := context.Background()

	country := seedCountry(t, db, "USA")
	g := seedGenre(t, db, "Horror")
	user := seedUser(t, db, "collector")

	m := newMovie("doomed", country.ID)
	require.NoError(t, svc.Create(ctx, &m, nil, []int64{g.ID}))

	require.NoError(t, db.Create(&models.Moment{Image: "still.jpg", MovieID: m.ID}).Error)
	require.NoError(t, db.Create(&models.Review{Rating: intPtr(4), UserID: user.ID, MovieID: m.ID}).Error)

	favRepo := repository.NewFavoriteRepository(db)
	fav, err := favRepo.GetByUser(ctx, user.ID)
	require.NoError(t, err)
	_, err = favRepo.AddItem(ctx, fav.ID, m.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, m.ID))

	for table, model := range map[string]interface{}{
		"moments":        &models.Moment{},
		"reviews":        &models.Review{},
		"movie_genres":   &models.MovieGenre{},
		"favorite_items": &models.FavoriteItem{},
	} {
		var count int64
		require.NoError(t, db.Model(model).Where("movie_id = ?", m.ID).Count(&count).Error)
		assert.Zerof(t, count, "expected no %s rows left", table)
	}

	_, err = svc.GetByID(ctx, m.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	// the genre itself is untouched
	var genres int64
	require.NoError(t, db.Model(&models.Genre{}).Count(&genres).Error)
	assert.EqualValues(t, 1, genres)
}
