package domain

import (
	"fmt"
	"slices"
	"time"

	appvalidator "github.com/metinatakli/cinema-planner/internal/validator"
)

const DateLayout = "02-01-2006"

var validate = appvalidator.NewValidator()

// Movie is immutable once built; edits produce a new value.
type Movie struct {
	Name        string    `validate:"required,max=100"`
	Duration    int       `validate:"gt=0"`
	Rating      string    `validate:"rating"`
	ReleaseDate time.Time `validate:"required"`
	Tags        []Tag     `validate:"dive,tag"`
}

// NewMovie builds a validated movie. The release date is truncated to its
// calendar date and invalid fields are reported as ErrInvalidMovie.
func NewMovie(name string, duration int, rating string, releaseDate time.Time, tags ...Tag) (Movie, error) {
	movie := Movie{
		Name:        name,
		Duration:    duration,
		Rating:      rating,
		ReleaseDate: truncateToDate(releaseDate),
		Tags:        MergeTags(tags),
	}

	err := validate.Struct(movie)
	if err != nil {
		return Movie{}, fmt.Errorf("%w: %s", ErrInvalidMovie, appvalidator.Describe(err))
	}

	return movie, nil
}

// IsSame reports whether both values describe the same movie. Movies are
// identified by name.
func (m Movie) IsSame(other Movie) bool {
	return m.Name == other.Name
}

func (m Movie) Equal(other Movie) bool {
	return m.Name == other.Name &&
		m.Duration == other.Duration &&
		m.Rating == other.Rating &&
		m.ReleaseDate.Equal(other.ReleaseDate) &&
		slices.Equal(m.Tags, other.Tags)
}

func (m Movie) String() string {
	return fmt.Sprintf("%s Duration: %d Rating: %s Release Date: %s Tags: %s",
		m.Name, m.Duration, m.Rating, m.ReleaseDate.Format(DateLayout), renderTags(m.Tags))
}

func truncateToDate(t time.Time) time.Time {
	y, mo, d := t.Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, t.Location())
}
