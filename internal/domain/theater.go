package domain

import (
	"fmt"
	"slices"
	"time"
)

// Theater is a numbered screening room. Screenings are kept sorted by start
// time. A Theater is treated as a value: changes return a new Theater and
// never touch the receiver's slice.
type Theater struct {
	Number     int
	Screenings []Screening
}

func NewTheater(number int) Theater {
	return Theater{Number: number}
}

// WithScreening returns a copy of t with s inserted after every screening
// that starts at or before it.
func (t Theater) WithScreening(s Screening) Theater {
	i := len(t.Screenings)
	for j, existing := range t.Screenings {
		if s.Start.Before(existing.Start) {
			i = j
			break
		}
	}

	screenings := make([]Screening, 0, len(t.Screenings)+1)
	screenings = append(screenings, t.Screenings[:i]...)
	screenings = append(screenings, s)
	screenings = append(screenings, t.Screenings[i:]...)

	return Theater{Number: t.Number, Screenings: screenings}
}

// WithoutScreening returns a copy of t without s.
func (t Theater) WithoutScreening(s Screening) (Theater, error) {
	i := slices.IndexFunc(t.Screenings, s.IsSame)
	if i < 0 {
		return Theater{}, fmt.Errorf("%w: %s", ErrScreeningNotFound, s)
	}

	return Theater{
		Number:     t.Number,
		Screenings: slices.Delete(slices.Clone(t.Screenings), i, i+1),
	}, nil
}

// ScreeningAt finds the screening starting at the given instant.
func (t Theater) ScreeningAt(start time.Time) (Screening, bool) {
	for _, s := range t.Screenings {
		if s.Start.Equal(start) {
			return s, true
		}
	}

	return Screening{}, false
}

func (t Theater) Equal(other Theater) bool {
	return t.Number == other.Number &&
		slices.EqualFunc(t.Screenings, other.Screenings, Screening.Equal)
}

func (t Theater) String() string {
	return fmt.Sprintf("Theater %d", t.Number)
}
