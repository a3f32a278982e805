package command

import "github.com/metinatakli/cinema-planner/internal/catalog"

// Clear empties the whole catalog.
type Clear struct {
	record
}

func (c *Clear) Name() string { return "clear" }

func (c *Clear) prepare(m *catalog.Model) error {
	return nil
}

func (c *Clear) apply(m *catalog.Model) (Result, error) {
	m.ResetData(catalog.New())

	return Result{Feedback: "Catalog has been cleared!"}, nil
}
