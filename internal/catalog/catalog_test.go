package catalog

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/metinatakli/cinema-planner/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCinema(t *testing.T, name string, theaters int, tags ...string) domain.Cinema {
	t.Helper()

	cinema, err := domain.NewCinema(name, "61234567", "contact@cinema.com", name+" Road", theaters, domain.NewTags(tags...)...)
	require.NoError(t, err)

	return cinema
}

func newMovie(t *testing.T, name string, tags ...string) domain.Movie {
	t.Helper()

	movie, err := domain.NewMovie(name, 120, "PG", time.Date(2018, time.January, 1, 0, 0, 0, 0, time.UTC), domain.NewTags(tags...)...)
	require.NoError(t, err)

	return movie
}

func withScreening(cinema domain.Cinema, movie domain.Movie, theaterNumber int) domain.Cinema {
	theater, _ := cinema.Theater(theaterNumber)
	start := time.Date(2018, time.March, 13, 13, 0, 0, 0, time.UTC)

	return cinema.WithTheater(theater.WithScreening(domain.Screening{
		MovieName:     movie.Name,
		TheaterNumber: theaterNumber,
		Start:         start,
		End:           start.Add(2 * time.Hour),
	}))
}

func TestCatalogCinemas(t *testing.T) {
	c := New()
	cathay := newCinema(t, "Cathay", 3, "central")
	shaw := newCinema(t, "Shaw", 2)

	require.NoError(t, c.AddCinema(cathay))
	require.NoError(t, c.AddCinema(shaw))
	assert.ErrorIs(t, c.AddCinema(cathay), domain.ErrDuplicateCinema)
	assert.Equal(t, []domain.Tag{"central"}, c.Tags())

	renamed, err := cathay.WithDetails("Cathay", cathay.Phone, cathay.Email, cathay.Address, domain.NewTags("imax"))
	require.NoError(t, err)
	require.NoError(t, c.UpdateCinema(cathay, renamed))
	assert.Equal(t, []domain.Tag{"imax"}, c.Tags())

	clash, err := shaw.WithDetails("Cathay", cathay.Phone, cathay.Email, cathay.Address, nil)
	require.NoError(t, err)
	assert.ErrorIs(t, c.UpdateCinema(shaw, clash), domain.ErrDuplicateCinema)

	assert.ErrorIs(t, c.UpdateCinema(cathay, renamed), domain.ErrCinemaNotFound)
	assert.ErrorIs(t, c.DeleteCinema(cathay), domain.ErrCinemaNotFound)

	require.NoError(t, c.DeleteCinema(renamed))
	assert.Equal(t, []domain.Cinema{shaw}, c.Cinemas())
	assert.Empty(t, c.Tags())
}

func TestCatalogResizeTheaters(t *testing.T) {
	c := New()
	cathay := newCinema(t, "Cathay", 3)
	require.NoError(t, c.AddCinema(cathay))

	grown, err := c.ResizeTheaters(cathay, 5)
	require.NoError(t, err)
	require.Len(t, grown.Theaters, 5)
	assert.Equal(t, 4, grown.Theaters[3].Number)
	assert.Equal(t, 5, grown.Theaters[4].Number)
	assert.True(t, c.Cinemas()[0].Equal(grown))

	_, err = c.ResizeTheaters(grown, 5-7)
	assert.ErrorIs(t, err, domain.ErrInvalidTheaterCount)
	assert.True(t, c.Cinemas()[0].Equal(grown))

	shrunk, err := c.ResizeTheaters(grown, 1)
	require.NoError(t, err)
	assert.Equal(t, []domain.Theater{domain.NewTheater(1)}, shrunk.Theaters)

	_, err = c.AddTheater(shrunk, domain.NewTheater(1))
	assert.ErrorIs(t, err, domain.ErrDuplicateTheater)
}

func TestCatalogMovies(t *testing.T) {
	c := New()
	panther := newMovie(t, "Black Panther", "action", "marvel")
	coco := newMovie(t, "Coco", "animation")

	require.NoError(t, c.AddMovie(panther))
	require.NoError(t, c.AddMovie(coco))
	assert.ErrorIs(t, c.AddMovie(panther), domain.ErrDuplicateMovie)
	assert.Equal(t, domain.NewTags("action", "animation", "marvel"), c.Tags())

	cathay := withScreening(newCinema(t, "Cathay", 2), panther, 1)
	require.NoError(t, c.AddCinema(cathay))

	assert.ErrorIs(t, c.DeleteMovie(panther), domain.ErrMovieInUse)

	renamed := panther
	renamed.Name = "Black Panther 2"
	assert.ErrorIs(t, c.UpdateMovie(panther, renamed), domain.ErrMovieInUse)

	retagged := panther
	retagged.Tags = domain.NewTags("action")
	require.NoError(t, c.UpdateMovie(panther, retagged))
	assert.Equal(t, domain.NewTags("action", "animation"), c.Tags())

	require.NoError(t, c.DeleteMovie(coco))
	assert.Equal(t, domain.NewTags("action"), c.Tags())
	assert.ErrorIs(t, c.DeleteMovie(coco), domain.ErrMovieNotFound)
}

func TestCatalogCopyIsDeep(t *testing.T) {
	c := New()
	panther := newMovie(t, "Black Panther", "action")
	cathay := withScreening(newCinema(t, "Cathay", 2, "central"), panther, 1)
	require.NoError(t, c.AddMovie(panther))
	require.NoError(t, c.AddCinema(cathay))

	snapshot := c.Copy()

	if diff := cmp.Diff(c.Cinemas(), snapshot.Cinemas(), cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("snapshot cinemas mismatch (-want +got):\n%s", diff)
	}
	require.True(t, c.Equal(snapshot))
	assert.Equal(t, 13, snapshot.Cinemas()[0].Theaters[0].Screenings[0].Start.Day())

	_, err := c.ResizeTheaters(cathay, 1)
	require.NoError(t, err)
	require.NoError(t, c.DeleteCinema(c.Cinemas()[0]))

	assert.False(t, c.Equal(snapshot))
	assert.True(t, snapshot.Cinemas()[0].Equal(cathay))

	c.Reset(snapshot)
	assert.True(t, c.Equal(snapshot))
}

// Loading a saved catalog goes through the same add primitives, in order:
// tags, cinemas, movies, then bare theaters.
func TestCatalogRebuildFromPrimitives(t *testing.T) {
	original := New()
	original.AddTag(domain.NewTag("central"))
	cathay := newCinema(t, "Cathay", 1, "central")
	require.NoError(t, original.AddCinema(cathay))
	require.NoError(t, original.AddMovie(newMovie(t, "Coco")))
	_, err := original.AddTheater(cathay, domain.NewTheater(2))
	require.NoError(t, err)

	rebuilt := New()
	for _, tag := range original.Tags() {
		rebuilt.AddTag(tag)
	}
	for _, cinema := range original.Cinemas() {
		bare := cinema
		bare.Theaters = bare.Theaters[:1]
		require.NoError(t, rebuilt.AddCinema(bare))
	}
	for _, movie := range original.Movies() {
		require.NoError(t, rebuilt.AddMovie(movie))
	}
	for _, cinema := range original.Cinemas() {
		current := rebuilt.Cinemas()[0]
		for _, theater := range cinema.Theaters[1:] {
			current, err = rebuilt.AddTheater(current, theater)
			require.NoError(t, err)
		}
	}

	assert.True(t, original.Equal(rebuilt))
}

func TestModelFilters(t *testing.T) {
	c := New()
	require.NoError(t, c.AddCinema(newCinema(t, "Cathay Cineplex", 1)))
	require.NoError(t, c.AddCinema(newCinema(t, "Shaw Lido", 1)))
	require.NoError(t, c.AddMovie(newMovie(t, "Black Panther")))
	require.NoError(t, c.AddMovie(newMovie(t, "Coco")))

	m := NewModel(c)
	assert.Len(t, m.FilteredCinemas(), 2)

	m.FilterCinemas(CinemaNameContains("lido"))
	m.FilterMovies(MovieNameContains("COCO", "Up"))
	require.Len(t, m.FilteredCinemas(), 1)
	assert.Equal(t, "Shaw Lido", m.FilteredCinemas()[0].Name)
	require.Len(t, m.FilteredMovies(), 1)
	assert.Equal(t, "Coco", m.FilteredMovies()[0].Name)

	m.ShowAll()
	assert.Len(t, m.FilteredCinemas(), 2)
	assert.Len(t, m.FilteredMovies(), 2)
}
