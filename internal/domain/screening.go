package domain

import (
	"fmt"
	"time"
)

const TimeLayout = "15:04"

// Screening is a showing of a movie in one theater. The movie is referenced
// by name only.
type Screening struct {
	MovieName     string
	TheaterNumber int
	Start         time.Time
	End           time.Time
}

// IsSame compares the identity triple: movie name, theater and start.
func (s Screening) IsSame(other Screening) bool {
	return s.MovieName == other.MovieName &&
		s.TheaterNumber == other.TheaterNumber &&
		s.Start.Equal(other.Start)
}

func (s Screening) Equal(other Screening) bool {
	return s.IsSame(other) && s.End.Equal(other.End)
}

// OnDate reports whether the screening starts on the calendar date of t.
func (s Screening) OnDate(t time.Time) bool {
	y1, m1, d1 := s.Start.Date()
	y2, m2, d2 := t.Date()

	return y1 == y2 && m1 == m2 && d1 == d2
}

func (s Screening) String() string {
	return fmt.Sprintf("%s at Theater %d on %s %s-%s",
		s.MovieName,
		s.TheaterNumber,
		s.Start.Format(DateLayout),
		s.Start.Format(TimeLayout),
		s.End.Format(TimeLayout))
}
