package models

import (
	"time"

	"github.com/MGTheTrain/movie-catalog/internal/domain/movies"
)

// MovieModel is the GORM database model for movies
type MovieModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	DateTimeCreated time.Time `gorm:"not null"`
	Title           string    `gorm:"not null;index;type:varchar(255)"`
	Description     string    `gorm:"type:text"`
	ImageURL        string    `gorm:"type:varchar(512)"`
	URL             string    `gorm:"type:varchar(512)"`
}

// TableName specifies the table name for GORM
func (MovieModel) TableName() string {
	return "movies"
}

// ToDomain converts GORM model to domain entity
func (m *MovieModel) ToDomain() *movies.Movie {
	return &movies.Movie{
		ID:              m.ID,
		DateTimeCreated: m.DateTimeCreated,
		Title:           m.Title,
		Description:     m.Description,
		ImageURL:        m.ImageURL,
		URL:             m.URL,
	}
}

// FromDomain converts domain entity to GORM model
func (m *MovieModel) FromDomain(movie *movies.Movie) {
	m.ID = movie.ID
	m.DateTimeCreated = movie.DateTimeCreated
	m.Title = movie.Title
	m.Description = movie.Description
	m.ImageURL = movie.ImageURL
	m.URL = movie.URL
}
