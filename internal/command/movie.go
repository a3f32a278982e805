package command

import (
	"fmt"
	"time"

	"github.com/metinatakli/cinema-planner/internal/catalog"
	"github.com/metinatakli/cinema-planner/internal/domain"
)

type AddMovie struct {
	record
	Movie domain.Movie
}

func (c *AddMovie) Name() string { return "add-movie" }

func (c *AddMovie) prepare(m *catalog.Model) error {
	return nil
}

func (c *AddMovie) apply(m *catalog.Model) (Result, error) {
	err := m.Catalog().AddMovie(c.Movie)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Feedback: fmt.Sprintf("New movie added: %s", c.Movie),
		Entity:   c.Movie,
	}, nil
}

// DeleteMovie removes the movie at a 1-based position in the filtered movie
// list. Movies that still have screenings cannot be deleted.
type DeleteMovie struct {
	record
	Index int

	target *domain.Movie
}

func (c *DeleteMovie) Name() string { return "delete-movie" }

func (c *DeleteMovie) prepare(m *catalog.Model) error {
	target, err := movieAt(m, c.Index)
	if err != nil {
		return err
	}

	c.target = &target

	return nil
}

func (c *DeleteMovie) apply(m *catalog.Model) (Result, error) {
	err := mustExist(m.Catalog().DeleteMovie(*c.target))
	if err != nil {
		return Result{}, err
	}

	return Result{
		Feedback: fmt.Sprintf("Deleted Movie: %s", c.target),
		Entity:   *c.target,
	}, nil
}

// MovieEdit lists the fields to change. Nil fields keep their value; a
// non-nil empty Tags clears the tags.
type MovieEdit struct {
	Name        *string
	Duration    *int
	Rating      *string
	ReleaseDate *time.Time
	Tags        []domain.Tag
}

type EditMovie struct {
	record
	Index int
	Edit  MovieEdit

	target *domain.Movie
	edited *domain.Movie
}

func (c *EditMovie) Name() string { return "edit-movie" }

func (c *EditMovie) prepare(m *catalog.Model) error {
	target, err := movieAt(m, c.Index)
	if err != nil {
		return err
	}

	tags := target.Tags
	if c.Edit.Tags != nil {
		tags = c.Edit.Tags
	}

	edited, err := domain.NewMovie(
		valueOr(c.Edit.Name, target.Name),
		valueOr(c.Edit.Duration, target.Duration),
		valueOr(c.Edit.Rating, target.Rating),
		valueOr(c.Edit.ReleaseDate, target.ReleaseDate),
		tags...,
	)
	if err != nil {
		return err
	}

	if !target.IsSame(edited) && m.Catalog().HasMovie(edited) {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateMovie, edited.Name)
	}

	c.target = &target
	c.edited = &edited

	return nil
}

func (c *EditMovie) apply(m *catalog.Model) (Result, error) {
	err := mustExist(m.Catalog().UpdateMovie(*c.target, *c.edited))
	if err != nil {
		return Result{}, err
	}

	return Result{
		Feedback: fmt.Sprintf("Edited Movie: %s", c.edited),
		Entity:   *c.edited,
	}, nil
}
