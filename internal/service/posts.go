package service

import (
	"context"
	"fmt"

	"github.com/Fsince94/PortfolioApp/internal/model"
)

type blogPostRow struct {
	ID       int64  `db:"id"`
	Title    string `db:"title"`
	Excerpt  string `db:"excerpt"`
	Date     string `db:"date"`
	Category string `db:"category"`
	ReadTime string `db:"read_time"`
	URL      string `db:"url"`
}

// GetBlogPosts returns every post in insertion order.
func (s *Service) GetBlogPosts(ctx context.Context) ([]model.BlogPost, error) {
	if s.degraded(ctx, "GetBlogPosts") {
		return []model.BlogPost{}, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var rows []blogPostRow
	err := s.eng.Select(ctx, &rows,
		`SELECT id, title, excerpt, date, category, read_time, url
		 FROM blog_posts ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("get blog posts: %w", err)
	}

	posts := make([]model.BlogPost, 0, len(rows))
	for _, r := range rows {
		posts = append(posts, model.BlogPost(r))
	}
	return posts, nil
}

// AddBlogPost inserts a post, commits the snapshot, and broadcasts.
func (s *Service) AddBlogPost(ctx context.Context, b model.BlogPost) error {
	if s.degraded(ctx, "AddBlogPost") {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.eng.Exec(ctx,
		`INSERT INTO blog_posts (title, excerpt, date, category, read_time, url)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		b.Title, b.Excerpt, b.Date, b.Category, b.ReadTime, b.URL)
	if err != nil {
		return fmt.Errorf("add blog post: %w", err)
	}

	return s.commitLocked(ctx)
}

// DeleteBlogPost removes a post by id. Missing ids are a no-op.
func (s *Service) DeleteBlogPost(ctx context.Context, id int64) error {
	if s.degraded(ctx, "DeleteBlogPost") {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.eng.Exec(ctx, "DELETE FROM blog_posts WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete blog post %d: %w", id, err)
	}

	return s.commitLocked(ctx)
}
