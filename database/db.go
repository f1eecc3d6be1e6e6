package database

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"moviehub/internal/config"
	"moviehub/internal/models"

	"github.com/golang-migrate/migrate/v4"
	pgxmigrate "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// ConnectDB opens the postgres pool, applies pending migrations and wraps the
// connection in a gorm session with error translation turned on, so driver
// errors surface as gorm sentinels the repositories can map.
func ConnectDB(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	sqlDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Verify the connection
	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	if err := runMigrations(sqlDB, logger); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	gormLogLevel := gormlogger.Silent
	if cfg.IsDevelopment() {
		gormLogLevel = gormlogger.Warn
	}

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormLogLevel),
	})
	if err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to initialize orm: %w", err)
	}

	if err := RegisterJoinTables(db); err != nil {
		sqlDB.Close()
		return nil, err
	}

	logger.Info("Connected to the database successfully")
	return db, nil
}

// RegisterJoinTables binds the explicit junction models so cast and genre
// links go through movie_actors/movie_genres with their composite keys.
func RegisterJoinTables(db *gorm.DB) error {
	if err := db.SetupJoinTable(&models.Movie{}, "Actors", &models.MovieActor{}); err != nil {
		return fmt.Errorf("failed to bind movie_actors join table: %w", err)
	}
	if err := db.SetupJoinTable(&models.Movie{}, "Genres", &models.MovieGenre{}); err != nil {
		return fmt.Errorf("failed to bind movie_genres join table: %w", err)
	}
	return nil
}

func runMigrations(db *sql.DB, logger *slog.Logger) error {
	driver, err := pgxmigrate.WithInstance(db, &pgxmigrate.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://database/migrations",
		"pgx5",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	logger.Info("Database migrations applied successfully")
	return nil
}
