package service_test

import (
	"context"
	"testing"

	"moviehub/database"
	"moviehub/internal/models"
	"moviehub/internal/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// --- HELPER FUNCTIONS FOR POINTERS ---
func intPtr(i int) *int       { return &i }
func strPtr(s string) *string { return &s }
func int64Ptr(i int64) *int64 { return &i }

// newTestDB spins up a fresh in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// a single connection keeps every session on the same in-memory database
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.RegisterJoinTables(db))
	require.NoError(t, db.AutoMigrate(
		&models.Country{},
		&models.Director{},
		&models.Actor{},
		&models.Genre{},
		&models.UserProfile{},
		&models.RefreshToken{},
		&models.Movie{},
		&models.Moment{},
		&models.MovieLanguage{},
		&models.Review{},
		&models.Favorite{},
		&models.FavoriteItem{},
	))
	return db
}

// --- FIXTURES ---

func seedCountry(t *testing.T, db *gorm.DB, name string) models.Country {
	t.Helper()
	c := models.Country{Name: name}
	require.NoError(t, db.Create(&c).Error)
	return c
}

func seedDirector(t *testing.T, db *gorm.DB, name string) models.Director {
	t.Helper()
	d := models.Director{Name: name, Age: 50}
	require.NoError(t, db.Create(&d).Error)
	return d
}

func seedActor(t *testing.T, db *gorm.DB, name string) models.Actor {
	t.Helper()
	a := models.Actor{Name: name, Age: 40}
	require.NoError(t, db.Create(&a).Error)
	return a
}

func seedGenre(t *testing.T, db *gorm.DB, name string) models.Genre {
	t.Helper()
	g := models.Genre{Name: name}
	require.NoError(t, db.Create(&g).Error)
	return g
}

// newMovie returns a movie that passes validation, ready to customize.
func newMovie(name string, countryID int64) models.Movie {
	return models.Movie{
		Name:      name,
		Trailer:   "https://cdn.example.com/" + name + "/trailer.mp4",
		Image:     "https://cdn.example.com/" + name + "/poster.jpg",
		Status:    models.StatusSimple,
		Year:      2020,
		Duration:  120,
		CountryID: countryID,
	}
}

func seedMovie(t *testing.T, db *gorm.DB, name string, countryID int64) models.Movie {
	t.Helper()
	m := newMovie(name, countryID)
	require.NoError(t, repository.NewMovieRepo(db).Create(context.Background(), &m, nil, nil))
	return m
}

// seedUser goes through the repository so the favorites list comes with it.
func seedUser(t *testing.T, db *gorm.DB, username string) models.UserProfile {
	t.Helper()
	u := models.UserProfile{
		FirstName:    "Test",
		Username:     username,
		PasswordHash: "not-a-real-hash",
		Email:        username + "@example.com",
		Age:          30,
		Status:       models.StatusSimple,
	}
	require.NoError(t, repository.NewUserRepository(db).Create(context.Background(), &u))
	return u
}
