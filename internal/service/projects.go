package service

import (
	"context"
	"fmt"

	"github.com/Fsince94/PortfolioApp/internal/model"
)

// projectRow mirrors the projects table. Compound fields stay serialized
// here and are decoded at the API boundary.
type projectRow struct {
	ID           int64   `db:"id"`
	Title        string  `db:"title"`
	Description  string  `db:"description"`
	Roles        string  `db:"roles"`
	Technologies string  `db:"technologies"`
	BuyURL       string  `db:"buy_url"`
	Price        float64 `db:"price"`
}

// GetProjects returns every project in insertion order. The result is an
// owned copy; callers may mutate it freely without touching the store.
func (s *Service) GetProjects(ctx context.Context) ([]model.Project, error) {
	if s.degraded(ctx, "GetProjects") {
		return []model.Project{}, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var rows []projectRow
	err := s.eng.Select(ctx, &rows,
		`SELECT id, title, description, roles, technologies, buy_url, price
		 FROM projects ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("get projects: %w", err)
	}

	projects := make([]model.Project, 0, len(rows))
	for _, r := range rows {
		projects = append(projects, model.Project{
			ID:           r.ID,
			Title:        r.Title,
			Description:  r.Description,
			Roles:        decodeRoles(r.Roles),
			Technologies: decodeStrings(r.Technologies),
			BuyURL:       r.BuyURL,
			Price:        r.Price,
		})
	}
	return projects, nil
}

// AddProject inserts a project, commits the snapshot, and broadcasts.
// The assigned id is not returned; consumers learn about the new row by
// re-querying on the change notification.
func (s *Service) AddProject(ctx context.Context, p model.Project) error {
	if s.degraded(ctx, "AddProject") {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.eng.Exec(ctx,
		`INSERT INTO projects (title, description, roles, technologies, buy_url, price)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		p.Title, p.Description, encodeRoles(p.Roles), encodeStrings(p.Technologies),
		p.BuyURL, p.Price)
	if err != nil {
		return fmt.Errorf("add project: %w", err)
	}

	return s.commitLocked(ctx)
}

// DeleteProject removes a project by id. A missing id is a no-op, not an
// error; the commit and broadcast still run.
func (s *Service) DeleteProject(ctx context.Context, id int64) error {
	if s.degraded(ctx, "DeleteProject") {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.eng.Exec(ctx, "DELETE FROM projects WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete project %d: %w", id, err)
	}

	return s.commitLocked(ctx)
}
