package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/metinatakli/cinema-planner/internal/catalog"
	"github.com/metinatakli/cinema-planner/internal/command"
	"github.com/metinatakli/cinema-planner/internal/domain"
)

func sampleDay(hour, minute int) time.Time {
	return time.Date(2018, time.March, 13, hour, minute, 0, 0, time.UTC)
}

// seed fills the catalog with a few cinemas, movies and screenings. Every
// change goes through the engine, so the seeded state can be undone step by
// step. One screening deliberately overlaps and is expected to be rejected.
func (app *application) seed(ctx context.Context) error {
	cathay, err := domain.NewCinema("Cathay", "61234567", "cathay@cineplex.com", "2 Handy Road", 3, domain.NewTags("Central", "IMAX")...)
	if err != nil {
		return err
	}

	shaw, err := domain.NewCinema("Shaw Lido", "67388555", "lido@shaw.sg", "350 Orchard Road", 2, domain.NewTags("Orchard")...)
	if err != nil {
		return err
	}

	coco, err := domain.NewMovie("Coco", 105, "PG", time.Date(2017, time.November, 23, 0, 0, 0, 0, time.UTC), domain.NewTags("Animation", "Family")...)
	if err != nil {
		return err
	}

	panther, err := domain.NewMovie("Black Panther", 134, "PG13", time.Date(2018, time.February, 14, 0, 0, 0, 0, time.UTC), domain.NewTags("Action")...)
	if err != nil {
		return err
	}

	steps := []command.Command{
		&command.AddCinema{Cinema: cathay},
		&command.AddCinema{Cinema: shaw},
		&command.AddMovie{Movie: coco},
		&command.AddMovie{Movie: panther},
		&command.AddScreening{CinemaIndex: 1, TheaterNumber: 1, MovieIndex: 1, Start: sampleDay(13, 0)},
		&command.AddScreening{CinemaIndex: 1, TheaterNumber: 1, MovieIndex: 2, Start: sampleDay(15, 0)},
		&command.AddScreening{CinemaIndex: 2, TheaterNumber: 2, MovieIndex: 2, Start: sampleDay(19, 30)},
		&command.ResizeTheaters{Index: 2, Delta: 1},
	}

	for _, step := range steps {
		result, err := app.engine.Execute(ctx, step)
		if err != nil {
			return fmt.Errorf("failed to seed sample catalog: %w", err)
		}

		app.logger.Debug(result.Feedback, "id", result.ID)
	}

	_, err = app.engine.Execute(ctx, &command.AddScreening{CinemaIndex: 1, TheaterNumber: 1, MovieIndex: 1, Start: sampleDay(14, 0)})
	if !errors.Is(err, domain.ErrInvalidScreening) {
		return fmt.Errorf("expected overlapping screening to be rejected, got %v", err)
	}

	// Undo the resize and redo it to leave a record of both in the log.
	_, err = app.engine.Undo(ctx)
	if err != nil {
		return err
	}

	_, err = app.engine.Redo(ctx)
	if err != nil {
		return err
	}

	return nil
}

func printCatalog(w io.Writer, c *catalog.Catalog) {
	fmt.Fprintln(w, "Cinemas:")
	for i, cinema := range c.Cinemas() {
		fmt.Fprintf(w, "%d. %s\n", i+1, cinema)

		for _, theater := range cinema.Theaters {
			fmt.Fprintf(w, "   %s\n", theater)

			for _, screening := range theater.Screenings {
				fmt.Fprintf(w, "     %s\n", screening)
			}
		}
	}

	fmt.Fprintln(w, "Movies:")
	for i, movie := range c.Movies() {
		fmt.Fprintf(w, "%d. %s\n", i+1, movie)
	}

	fmt.Fprint(w, "Tags:")
	for _, tag := range c.Tags() {
		fmt.Fprintf(w, " %s", tag)
	}
	fmt.Fprintln(w)
}
