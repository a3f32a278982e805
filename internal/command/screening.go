package command

import (
	"fmt"
	"time"

	"github.com/metinatakli/cinema-planner/internal/catalog"
	"github.com/metinatakli/cinema-planner/internal/domain"
	"github.com/metinatakli/cinema-planner/internal/scheduler"
)

// AddScreening schedules the movie at MovieIndex into a theater of the cinema
// at CinemaIndex. Both indices are 1-based positions in the filtered lists.
type AddScreening struct {
	record
	CinemaIndex   int
	TheaterNumber int
	MovieIndex    int
	Start         time.Time

	cinema    *domain.Cinema
	edited    *domain.Cinema
	screening *domain.Screening
}

func (c *AddScreening) Name() string { return "add-screening" }

func (c *AddScreening) prepare(m *catalog.Model) error {
	cinema, err := cinemaAt(m, c.CinemaIndex)
	if err != nil {
		return err
	}

	theater, err := theaterOf(cinema, c.TheaterNumber)
	if err != nil {
		return err
	}

	movie, err := movieAt(m, c.MovieIndex)
	if err != nil {
		return err
	}

	screening, err := scheduler.Schedule(theater, movie, c.Start)
	if err != nil {
		return err
	}

	edited := cinema.WithTheater(theater.WithScreening(screening))

	c.cinema = &cinema
	c.edited = &edited
	c.screening = &screening

	return nil
}

func (c *AddScreening) apply(m *catalog.Model) (Result, error) {
	err := mustExist(m.Catalog().UpdateCinema(*c.cinema, *c.edited))
	if err != nil {
		return Result{}, err
	}

	return Result{
		Feedback: fmt.Sprintf("New screening added: %s", c.screening),
		Entity:   *c.screening,
	}, nil
}

// DeleteScreening removes the screening starting at Start from a theater.
type DeleteScreening struct {
	record
	CinemaIndex   int
	TheaterNumber int
	Start         time.Time

	cinema    *domain.Cinema
	edited    *domain.Cinema
	screening *domain.Screening
}

func (c *DeleteScreening) Name() string { return "delete-screening" }

func (c *DeleteScreening) prepare(m *catalog.Model) error {
	cinema, err := cinemaAt(m, c.CinemaIndex)
	if err != nil {
		return err
	}

	theater, err := theaterOf(cinema, c.TheaterNumber)
	if err != nil {
		return err
	}

	screening, ok := theater.ScreeningAt(c.Start)
	if !ok {
		return fmt.Errorf("%w: nothing starts at %s %s in %s", domain.ErrScreeningNotFound,
			c.Start.Format(domain.DateLayout), c.Start.Format(domain.TimeLayout), theater)
	}

	trimmed, err := theater.WithoutScreening(screening)
	if err != nil {
		return err
	}

	edited := cinema.WithTheater(trimmed)

	c.cinema = &cinema
	c.edited = &edited
	c.screening = &screening

	return nil
}

func (c *DeleteScreening) apply(m *catalog.Model) (Result, error) {
	err := mustExist(m.Catalog().UpdateCinema(*c.cinema, *c.edited))
	if err != nil {
		return Result{}, err
	}

	return Result{
		Feedback: fmt.Sprintf("Deleted screening: %s", c.screening),
		Entity:   *c.screening,
	}, nil
}
