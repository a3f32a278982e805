package command

import (
	"fmt"

	"github.com/metinatakli/cinema-planner/internal/catalog"
	"github.com/metinatakli/cinema-planner/internal/domain"
)

type AddCinema struct {
	record
	Cinema domain.Cinema
}

func (c *AddCinema) Name() string { return "add-cinema" }

func (c *AddCinema) prepare(m *catalog.Model) error {
	return nil
}

func (c *AddCinema) apply(m *catalog.Model) (Result, error) {
	err := m.Catalog().AddCinema(c.Cinema)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Feedback: fmt.Sprintf("New cinema added: %s", c.Cinema),
		Entity:   c.Cinema,
	}, nil
}

// DeleteCinema removes the cinema at a 1-based position in the filtered
// cinema list.
type DeleteCinema struct {
	record
	Index int

	target *domain.Cinema
}

func (c *DeleteCinema) Name() string { return "delete-cinema" }

func (c *DeleteCinema) prepare(m *catalog.Model) error {
	target, err := cinemaAt(m, c.Index)
	if err != nil {
		return err
	}

	c.target = &target

	return nil
}

func (c *DeleteCinema) apply(m *catalog.Model) (Result, error) {
	err := mustExist(m.Catalog().DeleteCinema(*c.target))
	if err != nil {
		return Result{}, err
	}

	return Result{
		Feedback: fmt.Sprintf("Deleted Cinema: %s", c.target),
		Entity:   *c.target,
	}, nil
}

// CinemaEdit lists the fields to change. Nil fields keep their value; a
// non-nil empty Tags clears the tags.
type CinemaEdit struct {
	Name    *string
	Phone   *string
	Email   *string
	Address *string
	Tags    []domain.Tag
}

// EditCinema changes the details of a cinema. Theaters and their screenings
// are kept.
type EditCinema struct {
	record
	Index int
	Edit  CinemaEdit

	target *domain.Cinema
	edited *domain.Cinema
}

func (c *EditCinema) Name() string { return "edit-cinema" }

func (c *EditCinema) prepare(m *catalog.Model) error {
	target, err := cinemaAt(m, c.Index)
	if err != nil {
		return err
	}

	tags := target.Tags
	if c.Edit.Tags != nil {
		tags = c.Edit.Tags
	}

	edited, err := target.WithDetails(
		valueOr(c.Edit.Name, target.Name),
		valueOr(c.Edit.Phone, target.Phone),
		valueOr(c.Edit.Email, target.Email),
		valueOr(c.Edit.Address, target.Address),
		tags,
	)
	if err != nil {
		return err
	}

	if !target.IsSame(edited) && m.Catalog().HasCinema(edited) {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateCinema, edited.Name)
	}

	c.target = &target
	c.edited = &edited

	return nil
}

func (c *EditCinema) apply(m *catalog.Model) (Result, error) {
	err := mustExist(m.Catalog().UpdateCinema(*c.target, *c.edited))
	if err != nil {
		return Result{}, err
	}

	return Result{
		Feedback: fmt.Sprintf("Edited Cinema: %s", c.edited),
		Entity:   *c.edited,
	}, nil
}

// ResizeTheaters adds Delta theaters to a cinema, or removes them when Delta
// is negative. Removing every theater is rejected.
type ResizeTheaters struct {
	record
	Index int
	Delta int

	target *domain.Cinema
}

func (c *ResizeTheaters) Name() string { return "resize-theaters" }

func (c *ResizeTheaters) prepare(m *catalog.Model) error {
	target, err := cinemaAt(m, c.Index)
	if err != nil {
		return err
	}

	count := len(target.Theaters) + c.Delta
	if c.Delta == 0 || count <= 0 {
		return fmt.Errorf("%w: %s has %d theater(s), cannot change by %d",
			domain.ErrInvalidTheaterCount, target.Name, len(target.Theaters), c.Delta)
	}

	c.target = &target

	return nil
}

func (c *ResizeTheaters) apply(m *catalog.Model) (Result, error) {
	resized, err := m.Catalog().ResizeTheaters(*c.target, len(c.target.Theaters)+c.Delta)
	if err = mustExist(err); err != nil {
		return Result{}, err
	}

	feedback := fmt.Sprintf("Added %d theater(s) to %s", c.Delta, resized)
	if c.Delta < 0 {
		feedback = fmt.Sprintf("Deleted %d theater(s) from %s", -c.Delta, resized)
	}

	return Result{Feedback: feedback, Entity: resized}, nil
}

func valueOr[T any](v *T, fallback T) T {
	if v == nil {
		return fallback
	}

	return *v
}
