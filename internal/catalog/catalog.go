// Package catalog holds the in-memory venue planner: every cinema, movie and
// tag. Entities are replaced wholesale, never edited in place, so a Catalog
// can be snapshotted and restored for undo.
package catalog

import (
	"fmt"
	"slices"

	"github.com/metinatakli/cinema-planner/internal/domain"
)

// data carries exported fields so copier can deep copy it.
type data struct {
	Cinemas []domain.Cinema
	Movies  []domain.Movie
	Tags    []domain.Tag
}

type Catalog struct {
	data data
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{}
}

// Reset replaces the contents of c with a copy of other.
func (c *Catalog) Reset(other *Catalog) {
	c.data = other.Copy().data
}

// Cinemas returns the cinemas in insertion order. The slice is a copy.
func (c *Catalog) Cinemas() []domain.Cinema {
	return slices.Clone(c.data.Cinemas)
}

func (c *Catalog) Movies() []domain.Movie {
	return slices.Clone(c.data.Movies)
}

func (c *Catalog) Tags() []domain.Tag {
	return slices.Clone(c.data.Tags)
}

// Equal reports whether both catalogs hold equal cinemas, movies and tags in
// the same order.
func (c *Catalog) Equal(other *Catalog) bool {
	return slices.EqualFunc(c.data.Cinemas, other.data.Cinemas, domain.Cinema.Equal) &&
		slices.EqualFunc(c.data.Movies, other.data.Movies, domain.Movie.Equal) &&
		slices.Equal(c.data.Tags, other.data.Tags)
}

// AddTag adds tag to the global tag set. Adding a known tag is a no-op.
func (c *Catalog) AddTag(tag domain.Tag) {
	c.data.Tags = domain.MergeTags(c.data.Tags, []domain.Tag{tag})
}

func (c *Catalog) HasCinema(cinema domain.Cinema) bool {
	return slices.ContainsFunc(c.data.Cinemas, cinema.IsSame)
}

// AddCinema appends cinema and merges its tags into the tag set. A cinema
// with the same identity fails with ErrDuplicateCinema.
func (c *Catalog) AddCinema(cinema domain.Cinema) error {
	if c.HasCinema(cinema) {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateCinema, cinema.Name)
	}

	c.data.Cinemas = append(slices.Clone(c.data.Cinemas), cinema)
	c.data.Tags = domain.MergeTags(c.data.Tags, cinema.Tags)

	return nil
}

// UpdateCinema substitutes edited for target. target is located by full
// structural equality, so a stale value fails with domain.ErrCinemaNotFound.
// It fails with domain.ErrDuplicateCinema when edited has the identity of
// another cinema.
func (c *Catalog) UpdateCinema(target, edited domain.Cinema) error {
	i := slices.IndexFunc(c.data.Cinemas, target.Equal)
	if i < 0 {
		return fmt.Errorf("%w: %s", domain.ErrCinemaNotFound, target.Name)
	}

	for j, other := range c.data.Cinemas {
		if j != i && other.IsSame(edited) {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateCinema, edited.Name)
		}
	}

	cinemas := slices.Clone(c.data.Cinemas)
	cinemas[i] = edited
	c.data.Cinemas = cinemas
	c.pruneTags()

	return nil
}

// DeleteCinema removes the cinema equal to target, or fails with
// ErrCinemaNotFound.
func (c *Catalog) DeleteCinema(target domain.Cinema) error {
	i := slices.IndexFunc(c.data.Cinemas, target.Equal)
	if i < 0 {
		return fmt.Errorf("%w: %s", domain.ErrCinemaNotFound, target.Name)
	}

	c.data.Cinemas = slices.Delete(slices.Clone(c.data.Cinemas), i, i+1)
	c.pruneTags()

	return nil
}

// AddTheater appends a bare theater to target and returns the new cinema.
func (c *Catalog) AddTheater(target domain.Cinema, theater domain.Theater) (domain.Cinema, error) {
	edited, err := target.WithAddedTheater(theater)
	if err != nil {
		return domain.Cinema{}, err
	}

	err = c.UpdateCinema(target, edited)
	if err != nil {
		return domain.Cinema{}, err
	}

	return edited, nil
}

// ResizeTheaters grows or shrinks the theaters of target to count.
func (c *Catalog) ResizeTheaters(target domain.Cinema, count int) (domain.Cinema, error) {
	resized, err := target.WithTheaterCount(count)
	if err != nil {
		return domain.Cinema{}, err
	}

	err = c.UpdateCinema(target, resized)
	if err != nil {
		return domain.Cinema{}, err
	}

	return resized, nil
}

func (c *Catalog) HasMovie(movie domain.Movie) bool {
	return slices.ContainsFunc(c.data.Movies, movie.IsSame)
}

// AddMovie appends movie and merges its tags into the tag set. A movie with
// the same name fails with ErrDuplicateMovie.
func (c *Catalog) AddMovie(movie domain.Movie) error {
	if c.HasMovie(movie) {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateMovie, movie.Name)
	}

	c.data.Movies = append(slices.Clone(c.data.Movies), movie)
	c.data.Tags = domain.MergeTags(c.data.Tags, movie.Tags)

	return nil
}

// UpdateMovie substitutes edited for target. It fails with ErrMovieNotFound
// when target is absent and with ErrDuplicateMovie when edited takes another
// movie's name. A movie with screenings keeps its name because screenings
// refer to it by name (ErrMovieInUse).
func (c *Catalog) UpdateMovie(target, edited domain.Movie) error {
	i := slices.IndexFunc(c.data.Movies, target.Equal)
	if i < 0 {
		return fmt.Errorf("%w: %s", domain.ErrMovieNotFound, target.Name)
	}

	for j, other := range c.data.Movies {
		if j != i && other.IsSame(edited) {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateMovie, edited.Name)
		}
	}

	if !target.IsSame(edited) && c.isScreened(target) {
		return fmt.Errorf("%w: cannot rename %s", domain.ErrMovieInUse, target.Name)
	}

	movies := slices.Clone(c.data.Movies)
	movies[i] = edited
	c.data.Movies = movies
	c.pruneTags()

	return nil
}

// DeleteMovie removes target once none of its screenings remain. It fails
// with ErrMovieNotFound or ErrMovieInUse.
func (c *Catalog) DeleteMovie(target domain.Movie) error {
	i := slices.IndexFunc(c.data.Movies, target.Equal)
	if i < 0 {
		return fmt.Errorf("%w: %s", domain.ErrMovieNotFound, target.Name)
	}

	if c.isScreened(target) {
		return fmt.Errorf("%w: %s", domain.ErrMovieInUse, target.Name)
	}

	c.data.Movies = slices.Delete(slices.Clone(c.data.Movies), i, i+1)
	c.pruneTags()

	return nil
}

func (c *Catalog) isScreened(movie domain.Movie) bool {
	for _, cinema := range c.data.Cinemas {
		if cinema.HasScreeningsOf(movie.Name) {
			return true
		}
	}

	return false
}

// pruneTags drops tags that no movie or cinema refers to any more.
func (c *Catalog) pruneTags() {
	var used []domain.Tag
	for _, movie := range c.data.Movies {
		used = append(used, movie.Tags...)
	}
	for _, cinema := range c.data.Cinemas {
		used = append(used, cinema.Tags...)
	}

	c.data.Tags = domain.MergeTags(used)
}
