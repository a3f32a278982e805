package domain

import (
	"fmt"
	"slices"

	appvalidator "github.com/metinatakli/cinema-planner/internal/validator"
)

// Cinema is a venue. Its identity is the name, phone, email and address
// tuple. Like Theater it is a value: every change builds a new Cinema.
type Cinema struct {
	Name     string    `validate:"required,max=100"`
	Phone    string    `validate:"required,numeric,min=3,max=20"`
	Email    string    `validate:"required,email"`
	Address  string    `validate:"required"`
	Theaters []Theater `validate:"min=1"`
	Tags     []Tag     `validate:"dive,tag"`
}

// NewCinema builds a validated cinema with theaters numbered 1 to
// theaterCount. Invalid fields are reported as ErrInvalidCinema.
func NewCinema(name, phone, email, address string, theaterCount int, tags ...Tag) (Cinema, error) {
	cinema := Cinema{
		Name:    name,
		Phone:   phone,
		Email:   email,
		Address: address,
		Tags:    MergeTags(tags),
	}

	for i := 1; i <= theaterCount; i++ {
		cinema.Theaters = append(cinema.Theaters, NewTheater(i))
	}

	err := validate.Struct(cinema)
	if err != nil {
		return Cinema{}, fmt.Errorf("%w: %s", ErrInvalidCinema, appvalidator.Describe(err))
	}

	return cinema, nil
}

// IsSame reports whether both values describe the same venue.
func (c Cinema) IsSame(other Cinema) bool {
	return c.Name == other.Name &&
		c.Phone == other.Phone &&
		c.Email == other.Email &&
		c.Address == other.Address
}

// Equal compares the identity tuple, every theater with its screenings, and
// the tags.
func (c Cinema) Equal(other Cinema) bool {
	return c.IsSame(other) &&
		slices.EqualFunc(c.Theaters, other.Theaters, Theater.Equal) &&
		slices.Equal(c.Tags, other.Tags)
}

// Theater looks up a theater by number.
func (c Cinema) Theater(number int) (Theater, bool) {
	i := slices.IndexFunc(c.Theaters, func(t Theater) bool { return t.Number == number })
	if i < 0 {
		return Theater{}, false
	}

	return c.Theaters[i], true
}

// WithTheater returns a copy of c in which the theater with the same number
// is replaced by t.
func (c Cinema) WithTheater(t Theater) Cinema {
	edited := c.clone()
	for i := range edited.Theaters {
		if edited.Theaters[i].Number == t.Number {
			edited.Theaters[i] = t
		}
	}

	return edited
}

// WithAddedTheater appends t, keeping theater numbers unique.
func (c Cinema) WithAddedTheater(t Theater) (Cinema, error) {
	if _, ok := c.Theater(t.Number); ok {
		return Cinema{}, fmt.Errorf("%w: %s", ErrDuplicateTheater, t)
	}

	edited := c.clone()
	edited.Theaters = append(edited.Theaters, t)

	return edited, nil
}

// WithTheaterCount grows or shrinks the theater list to count. New theaters
// are numbered after the current highest number; shrinking drops the
// highest-numbered theaters together with their screenings.
func (c Cinema) WithTheaterCount(count int) (Cinema, error) {
	if count <= 0 {
		return Cinema{}, fmt.Errorf("%w: cannot resize %s to %d theater(s)", ErrInvalidTheaterCount, c.Name, count)
	}

	edited := c.clone()
	slices.SortFunc(edited.Theaters, func(a, b Theater) int { return a.Number - b.Number })

	if count <= len(edited.Theaters) {
		edited.Theaters = edited.Theaters[:count]
		return edited, nil
	}

	next := 1
	if n := len(edited.Theaters); n > 0 {
		next = edited.Theaters[n-1].Number + 1
	}

	for len(edited.Theaters) < count {
		edited.Theaters = append(edited.Theaters, NewTheater(next))
		next++
	}

	return edited, nil
}

// WithDetails returns a copy of c with new identity fields and tags but the
// same theaters.
func (c Cinema) WithDetails(name, phone, email, address string, tags []Tag) (Cinema, error) {
	edited := c.clone()
	edited.Name = name
	edited.Phone = phone
	edited.Email = email
	edited.Address = address
	edited.Tags = MergeTags(tags)

	err := validate.Struct(edited)
	if err != nil {
		return Cinema{}, fmt.Errorf("%w: %s", ErrInvalidCinema, appvalidator.Describe(err))
	}

	return edited, nil
}

// HasScreeningsOf reports whether any theater shows the named movie.
func (c Cinema) HasScreeningsOf(movieName string) bool {
	for _, t := range c.Theaters {
		for _, s := range t.Screenings {
			if s.MovieName == movieName {
				return true
			}
		}
	}

	return false
}

func (c Cinema) String() string {
	return fmt.Sprintf("%s Phone: %s Email: %s Address: %s Theaters: %d Tags: %s",
		c.Name, c.Phone, c.Email, c.Address, len(c.Theaters), renderTags(c.Tags))
}

// clone copies the slices c owns. Theater screening slices are shared, which
// is safe because Theater never mutates them.
func (c Cinema) clone() Cinema {
	c.Theaters = slices.Clone(c.Theaters)
	c.Tags = slices.Clone(c.Tags)

	return c
}
