package repository

import (
	"context"
	"fmt"

	"moviehub/internal/models"

	"gorm.io/gorm"
)

type MovieRepo struct {
	db *gorm.DB
}

func NewMovieRepo(db *gorm.DB) *MovieRepo {
	return &MovieRepo{db: db}
}

func (r *MovieRepo) GetAll(ctx context.Context) ([]models.Movie, error) {
	var list []models.Movie
	if err := r.db.WithContext(ctx).
		Preload("Actors").
		Preload("Genres").
		Order("id asc").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get movies: %w", err)
	}
	return list, nil
}

func (r *MovieRepo) GetByID(ctx context.Context, id int64) (*models.Movie, error) {
	var m models.Movie
	if err := r.db.WithContext(ctx).
		Preload("Country").
		Preload("Director").
		Preload("Actors").
		Preload("Genres").
		Preload("Moments").
		First(&m, id).Error; err != nil {
		return nil, fmt.Errorf("get movie: %w", translate(err))
	}
	return &m, nil
}

// Create writes the movie row and its actor/genre junction rows in one
// transaction. Referenced countries, directors, actors and genres must exist,
// and the director must not already be linked to another movie.
func (r *MovieRepo) Create(ctx context.Context, m *models.Movie, actorIDs, genreIDs []int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.checkReferences(tx, m, 0, actorIDs, genreIDs); err != nil {
			return err
		}
		if err := tx.Create(m).Error; err != nil {
			return fmt.Errorf("create movie: %w", translate(err))
		}
		if err := insertMovieLinks(tx, m.ID, actorIDs, genreIDs); err != nil {
			return err
		}
		return nil
	})
}

// Update replaces the full field set and reassigns the actor/genre sets by
// applying only the symmetric difference against the stored junction rows.
func (r *MovieRepo) Update(ctx context.Context, id int64, m *models.Movie, actorIDs, genreIDs []int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Movie
		if err := tx.First(&existing, id).Error; err != nil {
			return fmt.Errorf("update movie: %w", translate(err))
		}
		if err := r.checkReferences(tx, m, id, actorIDs, genreIDs); err != nil {
			return err
		}
		m.ID = id
		m.CreatedAt = existing.CreatedAt
		if err := tx.Save(m).Error; err != nil {
			return fmt.Errorf("update movie: %w", translate(err))
		}
		if err := replaceActorLinks(tx, id, actorIDs); err != nil {
			return err
		}
		if err := replaceGenreLinks(tx, id, genreIDs); err != nil {
			return err
		}
		return nil
	})
}

// Delete runs the full per-movie cascade in one transaction.
func (r *MovieRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m models.Movie
		if err := tx.First(&m, id).Error; err != nil {
			return fmt.Errorf("delete movie: %w", translate(err))
		}
		return deleteMovieCascade(tx, id)
	})
}

// checkReferences validates every foreign key a movie write carries.
// excludeMovieID is the movie being updated (0 on create); any other movie
// holding the requested director makes the assignment a conflict.
func (r *MovieRepo) checkReferences(tx *gorm.DB, m *models.Movie, excludeMovieID int64, actorIDs, genreIDs []int64) error {
	var country models.Country
	if err := tx.Select("id").First(&country, m.CountryID).Error; err != nil {
		return fmt.Errorf("movie country %d: %w", m.CountryID, translate(err))
	}

	if m.DirectorID != nil {
		var director models.Director
		if err := tx.Select("id").First(&director, *m.DirectorID).Error; err != nil {
			return fmt.Errorf("movie director %d: %w", *m.DirectorID, translate(err))
		}
		var taken int64
		if err := tx.Model(&models.Movie{}).
			Where("director_id = ? AND id <> ?", *m.DirectorID, excludeMovieID).
			Count(&taken).Error; err != nil {
			return fmt.Errorf("check director assignment: %w", err)
		}
		if taken > 0 {
			return fmt.Errorf("director %d already directs another movie: %w", *m.DirectorID, ErrConflict)
		}
	}

	if err := allExist(tx, &models.Actor{}, actorIDs, "actor"); err != nil {
		return err
	}
	if err := allExist(tx, &models.Genre{}, genreIDs, "genre"); err != nil {
		return err
	}
	return nil
}

// allExist verifies that every id in the slice resolves to a stored row.
func allExist(tx *gorm.DB, model interface{}, ids []int64, kind string) error {
	if len(ids) == 0 {
		return nil
	}
	unique := dedupe(ids)
	var count int64
	if err := tx.Model(model).Where("id IN ?", unique).Count(&count).Error; err != nil {
		return fmt.Errorf("check %ss: %w", kind, err)
	}
	if count != int64(len(unique)) {
		return fmt.Errorf("one or more %ss do not exist: %w", kind, ErrNotFound)
	}
	return nil
}

func insertMovieLinks(tx *gorm.DB, movieID int64, actorIDs, genreIDs []int64) error {
	for _, actorID := range dedupe(actorIDs) {
		if err := tx.Create(&models.MovieActor{MovieID: movieID, ActorID: actorID}).Error; err != nil {
			return fmt.Errorf("link actor %d: %w", actorID, translate(err))
		}
	}
	for _, genreID := range dedupe(genreIDs) {
		if err := tx.Create(&models.MovieGenre{MovieID: movieID, GenreID: genreID}).Error; err != nil {
			return fmt.Errorf("link genre %d: %w", genreID, translate(err))
		}
	}
	return nil
}

func replaceActorLinks(tx *gorm.DB, movieID int64, actorIDs []int64) error {
	var current []int64
	if err := tx.Model(&models.MovieActor{}).Where("movie_id = ?", movieID).
		Pluck("actor_id", &current).Error; err != nil {
		return fmt.Errorf("load actor links: %w", err)
	}
	added, removed := diff(current, actorIDs)
	if len(removed) > 0 {
		if err := tx.Where("movie_id = ? AND actor_id IN ?", movieID, removed).
			Delete(&models.MovieActor{}).Error; err != nil {
			return fmt.Errorf("unlink actors: %w", err)
		}
	}
	for _, actorID := range added {
		if err := tx.Create(&models.MovieActor{MovieID: movieID, ActorID: actorID}).Error; err != nil {
			return fmt.Errorf("link actor %d: %w", actorID, translate(err))
		}
	}
	return nil
}

func replaceGenreLinks(tx *gorm.DB, movieID int64, genreIDs []int64) error {
	var current []int64
	if err := tx.Model(&models.MovieGenre{}).Where("movie_id = ?", movieID).
		Pluck("genre_id", &current).Error; err != nil {
		return fmt.Errorf("load genre links: %w", err)
	}
	added, removed := diff(current, genreIDs)
	if len(removed) > 0 {
		if err := tx.Where("movie_id = ? AND genre_id IN ?", movieID, removed).
			Delete(&models.MovieGenre{}).Error; err != nil {
			return fmt.Errorf("unlink genres: %w", err)
		}
	}
	for _, genreID := range added {
		if err := tx.Create(&models.MovieGenre{MovieID: movieID, GenreID: genreID}).Error; err != nil {
			return fmt.Errorf("link genre %d: %w", genreID, translate(err))
		}
	}
	return nil
}

// deleteMovieCascade removes a movie and everything it owns: moments, its
// review forest, junction rows and favorite items that still reference it.
// Must run inside a transaction.
func deleteMovieCascade(tx *gorm.DB, movieID int64) error {
	if err := tx.Where("movie_id = ?", movieID).Delete(&models.Moment{}).Error; err != nil {
		return fmt.Errorf("delete movie moments: %w", err)
	}
	if err := tx.Where("movie_id = ?", movieID).Delete(&models.Review{}).Error; err != nil {
		return fmt.Errorf("delete movie reviews: %w", err)
	}
	if err := tx.Where("movie_id = ?", movieID).Delete(&models.MovieActor{}).Error; err != nil {
		return fmt.Errorf("delete movie actor links: %w", err)
	}
	if err := tx.Where("movie_id = ?", movieID).Delete(&models.MovieGenre{}).Error; err != nil {
		return fmt.Errorf("delete movie genre links: %w", err)
	}
	if err := tx.Where("movie_id = ?", movieID).Delete(&models.FavoriteItem{}).Error; err != nil {
		return fmt.Errorf("delete movie favorite items: %w", err)
	}
	if err := tx.Delete(&models.Movie{}, movieID).Error; err != nil {
		return fmt.Errorf("delete movie: %w", translate(err))
	}
	return nil
}

func dedupe(ids []int64) []int64 {
	seen := make(map[int64]bool, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

// diff returns the ids to add (in want but not current) and to remove
// (in current but not want).
func diff(current, want []int64) (added, removed []int64) {
	have := make(map[int64]bool, len(current))
	for _, id := range current {
		have[id] = true
	}
	keep := make(map[int64]bool, len(want))
	for _, id := range dedupe(want) {
		keep[id] = true
		if !have[id] {
			added = append(added, id)
		}
	}
	for _, id := range current {
		if !keep[id] {
			removed = append(removed, id)
		}
	}
	return added, removed
}
