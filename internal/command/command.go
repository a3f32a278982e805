// Package command wraps every catalog mutation in a value that can be
// executed, undone and redone by an Engine.
package command

import (
	"errors"
	"fmt"

	"github.com/metinatakli/cinema-planner/internal/catalog"
	"github.com/metinatakli/cinema-planner/internal/domain"
)

var (
	ErrNothingToUndo = errors.New("no more commands to undo")
	ErrNothingToRedo = errors.New("no more commands to redo")
)

// Result is what a successful command reports back to its caller.
type Result struct {
	ID       string
	Feedback string
	Entity   any
}

// Command is one catalog mutation. The set of commands is closed; every
// variant is defined in this package and carries its input parameters, the
// entities resolved by prepare, and the catalog it replaced.
//
// prepare resolves indices against the model's filtered views and must not
// mutate the catalog. apply performs the mutation using only what prepare
// resolved, so calling it again after an undo repeats the same change.
type Command interface {
	Name() string
	prepare(m *catalog.Model) error
	apply(m *catalog.Model) (Result, error)
	history() *record
}

// record is embedded by every command. It is filled by the Engine after a
// successful execution.
type record struct {
	id       string
	previous *catalog.Catalog
}

func (r *record) history() *record {
	return r
}

func cinemaAt(m *catalog.Model, index int) (domain.Cinema, error) {
	cinemas := m.FilteredCinemas()
	if index < 1 || index > len(cinemas) {
		return domain.Cinema{}, fmt.Errorf("%w: %d", domain.ErrInvalidCinemaIndex, index)
	}

	return cinemas[index-1], nil
}

func movieAt(m *catalog.Model, index int) (domain.Movie, error) {
	movies := m.FilteredMovies()
	if index < 1 || index > len(movies) {
		return domain.Movie{}, fmt.Errorf("%w: %d", domain.ErrInvalidMovieIndex, index)
	}

	return movies[index-1], nil
}

func theaterOf(cinema domain.Cinema, number int) (domain.Theater, error) {
	theater, ok := cinema.Theater(number)
	if !ok {
		return domain.Theater{}, fmt.Errorf("%w: %s has no theater %d", domain.ErrInvalidTheaterNumber, cinema.Name, number)
	}

	return theater, nil
}

// mustExist turns a not-found error from a catalog mutation into a panic.
// prepare resolved the entity from the same catalog, so its absence means the
// command stacks are out of step with the catalog.
func mustExist(err error) error {
	if errors.Is(err, domain.ErrCinemaNotFound) || errors.Is(err, domain.ErrMovieNotFound) {
		panic(fmt.Sprintf("command: resolved entity missing from catalog: %v", err))
	}

	return err
}
