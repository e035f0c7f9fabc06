package service

import (
	"context"
	"fmt"

	"github.com/Fsince94/PortfolioApp/internal/kvstore"
)

// Login checks the credential pair against the admins table with exact
// string equality on both fields. A mismatch is a negative result, not an
// error. The deliberate absence of password hashing is a documented
// limitation of this single-admin store.
func (s *Service) Login(ctx context.Context, username, password string) (bool, error) {
	if s.degraded(ctx, "Login") {
		return false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var count int
	err := s.eng.Get(ctx, &count,
		"SELECT COUNT(*) FROM admins WHERE username = ? AND password = ?",
		username, password)
	if err != nil {
		return false, fmt.Errorf("login: %w", err)
	}
	return count > 0, nil
}

// SetAuthSession records or clears the admin session flag in the durable
// store. The flag only gates admin surface visibility; it is not an
// authorization token, and it sits outside the relational snapshot.
func (s *Service) SetAuthSession(authenticated bool) error {
	if !authenticated {
		return s.kv.Delete(kvstore.KeyAdminAuth)
	}
	return s.kv.SetString(kvstore.KeyAdminAuth, "true")
}

// AuthSession reports whether the admin session flag is set.
func (s *Service) AuthSession() bool {
	v, ok := s.kv.GetString(kvstore.KeyAdminAuth)
	return ok && v == "true"
}
