// Package scheduler decides whether a screening fits into a theater. All
// functions are pure; callers decide whether to apply the result.
package scheduler

import (
	"fmt"
	"time"

	"github.com/metinatakli/cinema-planner/internal/domain"
)

// PreparationBuffer is the time a theater needs after a movie ends before it
// can host the next screening.
const PreparationBuffer = 15 * time.Minute

// EndTime returns when a screening of a movie lasting duration minutes and
// starting at start releases its theater. The result has zero seconds and a
// minute that is a multiple of five, rounded up.
func EndTime(duration int, start time.Time) time.Time {
	end := start.Add(time.Duration(duration)*time.Minute + PreparationBuffer)
	end = time.Date(end.Year(), end.Month(), end.Day(), end.Hour(), end.Minute(), 0, 0, end.Location())

	if minute := end.Minute(); minute%5 != 0 {
		end = end.Add(time.Duration((65-minute)%5) * time.Minute)
	}

	return end
}

// IsSlotAvailable reports whether [start, end) fits among the screenings
// already in a theater. existing must be sorted by start time, as
// domain.Theater keeps it. Only screenings on the same calendar date as start
// are considered, and they are compared by time of day. Touching intervals do
// not conflict.
func IsSlotAvailable(existing []domain.Screening, start, end time.Time) bool {
	var sameDay []domain.Screening
	for _, s := range existing {
		if s.OnDate(start) {
			sameDay = append(sameDay, s)
		}
	}

	proposedStart, proposedEnd := clock(start), clock(end)

	switch len(sameDay) {
	case 0:
		return true
	case 1:
		only := sameDay[0]
		return proposedStart >= clock(only.End) || proposedEnd <= clock(only.Start)
	}

	if proposedEnd <= clock(sameDay[0].Start) {
		return true
	}

	for i := 1; i < len(sameDay); i++ {
		before, after := sameDay[i-1], sameDay[i]
		if proposedStart >= clock(before.End) && proposedEnd <= clock(after.Start) {
			return true
		}
	}

	return proposedStart >= clock(sameDay[len(sameDay)-1].End)
}

// IsReleasedBy reports whether date falls on or after releaseDate, comparing
// calendar dates only.
func IsReleasedBy(date, releaseDate time.Time) bool {
	return !calendarDate(date).Before(calendarDate(releaseDate))
}

// Schedule builds the screening of movie in theater starting at start, or
// returns an error wrapping domain.ErrInvalidScreening when the movie is not
// yet released or the slot is taken.
func Schedule(theater domain.Theater, movie domain.Movie, start time.Time) (domain.Screening, error) {
	if !IsReleasedBy(start, movie.ReleaseDate) {
		return domain.Screening{}, fmt.Errorf("%w: %s is released on %s",
			domain.ErrInvalidScreening, movie.Name, movie.ReleaseDate.Format(domain.DateLayout))
	}

	screening := domain.Screening{
		MovieName:     movie.Name,
		TheaterNumber: theater.Number,
		Start:         start,
		End:           EndTime(movie.Duration, start),
	}

	if !IsSlotAvailable(theater.Screenings, screening.Start, screening.End) {
		return domain.Screening{}, fmt.Errorf("%w: %s clashes with another screening in %s",
			domain.ErrInvalidScreening, screening, theater)
	}

	return screening, nil
}

func clock(t time.Time) time.Duration {
	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second +
		time.Duration(t.Nanosecond())
}

func calendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
