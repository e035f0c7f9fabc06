package service

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"

	"github.com/Fsince94/PortfolioApp/internal/content"
)

//go:embed schema.sql
var schemaSQL string

// ensureSchema creates the four tables if absent. Idempotent: running it
// against an already-correct schema changes nothing, and it never drops or
// alters existing tables. Called with s.mu held.
func (s *Service) ensureSchema(ctx context.Context) error {
	if _, err := s.eng.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// seedIfEmpty populates the bootstrap content on first-ever initialization
// only. The admin row count is the single idempotence guard: a non-empty
// admins table means the store has been seeded before, whatever else it
// contains. Returns whether any seeding happened. Called with s.mu held.
func (s *Service) seedIfEmpty(ctx context.Context) (bool, error) {
	var admins int
	if err := s.eng.Get(ctx, &admins, "SELECT COUNT(*) FROM admins"); err != nil {
		return false, fmt.Errorf("count admins: %w", err)
	}
	if admins > 0 {
		return false, nil
	}

	slog.Info("seeding database with bootstrap content", "lang", s.lang)

	catalog, err := content.Load(s.lang)
	if err != nil {
		return false, fmt.Errorf("load bootstrap catalog: %w", err)
	}

	_, err = s.eng.Exec(ctx,
		"INSERT INTO admins (username, password) VALUES (?, ?)",
		content.AdminUsername, content.AdminPassword)
	if err != nil {
		return false, fmt.Errorf("seed admin: %w", err)
	}

	for _, p := range catalog.Projects {
		_, err = s.eng.Exec(ctx,
			`INSERT INTO projects (title, description, roles, technologies, buy_url, price)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			p.Title, p.Description, encodeRoles(p.Roles), encodeStrings(p.Technologies),
			p.BuyURL, p.Price)
		if err != nil {
			return false, fmt.Errorf("seed project %q: %w", p.Title, err)
		}
	}

	for _, b := range catalog.Posts {
		_, err = s.eng.Exec(ctx,
			`INSERT INTO blog_posts (title, excerpt, date, category, read_time, url)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			b.Title, b.Excerpt, b.Date, b.Category, b.ReadTime, b.URL)
		if err != nil {
			return false, fmt.Errorf("seed blog post %q: %w", b.Title, err)
		}
	}

	return true, nil
}
