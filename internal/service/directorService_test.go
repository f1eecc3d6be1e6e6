package service_test

import (
	"context"
	"testing"

	"moviehub/internal/models"
	"moviehub/internal/repository"
	"moviehub/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectorService_Create_AgeBounds(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewDirectorService(repository.NewDirectorRepo(db))
	ctx := context.Background()

	var verr *service.ValidationError
	err := svc.Create(ctx, &models.Director{Name: "Too Young", Age: 10})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "age", verr.Field)

	err = svc.Create(ctx, &models.Director{Name: "Too Old", Age: 130})
	assert.ErrorAs(t, err, &verr)

	require.NoError(t, svc.Create(ctx, &models.Director{Name: "Just Right", Age: 45}))
}

func TestDirectorService_Delete_DetachesMovie(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewDirectorService(repository.NewDirectorRepo(db))
	ctx := context.Background()

	country := seedCountry(t, db, "Italy")
	director := seedDirector(t, db, "Fellini")

	m := newMovie("la-strada", country.ID)
	m.DirectorID = &director.ID
	movieRepo := repository.NewMovieRepo(db)
	require.NoError(t, movieRepo.Create(ctx, &m, nil, nil))

	require.NoError(t, svc.Delete(ctx, director.ID))

	got, err := movieRepo.GetByID(ctx, m.ID)
	require.NoError(t, err)
	assert.Nil(t, got.DirectorID, "movie must survive with no director")

	_, err = svc.GetByID(ctx, director.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
