package catalog

import (
	"strings"

	"github.com/metinatakli/cinema-planner/internal/domain"
)

type (
	CinemaPredicate func(domain.Cinema) bool
	MoviePredicate  func(domain.Movie) bool
)

func ShowAllCinemas(domain.Cinema) bool { return true }
func ShowAllMovies(domain.Movie) bool   { return true }

// CinemaNameContains matches cinemas whose name has any of the keywords as a
// whole word, ignoring case.
func CinemaNameContains(keywords ...string) CinemaPredicate {
	return func(c domain.Cinema) bool {
		return containsWord(c.Name, keywords)
	}
}

// MovieNameContains matches movies whose name has any of the keywords as a
// whole word, ignoring case.
func MovieNameContains(keywords ...string) MoviePredicate {
	return func(m domain.Movie) bool {
		return containsWord(m.Name, keywords)
	}
}

func containsWord(sentence string, keywords []string) bool {
	for _, word := range strings.Fields(sentence) {
		for _, keyword := range keywords {
			if strings.EqualFold(word, keyword) {
				return true
			}
		}
	}

	return false
}

// Model is a Catalog together with the filtered views that user-facing
// indices refer to.
type Model struct {
	catalog      *Catalog
	cinemaFilter CinemaPredicate
	movieFilter  MoviePredicate
}

func NewModel(c *Catalog) *Model {
	return &Model{
		catalog:      c,
		cinemaFilter: ShowAllCinemas,
		movieFilter:  ShowAllMovies,
	}
}

func (m *Model) Catalog() *Catalog {
	return m.catalog
}

// ResetData replaces the live catalog contents with a copy of c.
func (m *Model) ResetData(c *Catalog) {
	m.catalog.Reset(c)
}

func (m *Model) FilterCinemas(predicate CinemaPredicate) {
	m.cinemaFilter = predicate
}

func (m *Model) FilterMovies(predicate MoviePredicate) {
	m.movieFilter = predicate
}

func (m *Model) ShowAll() {
	m.cinemaFilter = ShowAllCinemas
	m.movieFilter = ShowAllMovies
}

func (m *Model) FilteredCinemas() []domain.Cinema {
	var filtered []domain.Cinema
	for _, c := range m.catalog.data.Cinemas {
		if m.cinemaFilter(c) {
			filtered = append(filtered, c)
		}
	}

	return filtered
}

func (m *Model) FilteredMovies() []domain.Movie {
	var filtered []domain.Movie
	for _, mv := range m.catalog.data.Movies {
		if m.movieFilter(mv) {
			filtered = append(filtered, mv)
		}
	}

	return filtered
}
