package service

import (
	"encoding/json"
	"log/slog"

	"github.com/Fsince94/PortfolioApp/internal/model"
)

// Compound fields (roles, technologies, order items) live in TEXT columns
// as JSON sequences. The invariant runs one way only: encoding always
// produces a sequence ("[]" when empty, never null), and decoding treats
// malformed text as an empty sequence instead of failing the whole read.
// Element order is preserved exactly.

func encodeRoles(roles []model.Role) string {
	if roles == nil {
		roles = []model.Role{}
	}
	return mustEncode(roles)
}

func encodeStrings(values []string) string {
	if values == nil {
		values = []string{}
	}
	return mustEncode(values)
}

func encodeItems(items []model.CartItem) string {
	if items == nil {
		items = []model.CartItem{}
	}
	return mustEncode(items)
}

// mustEncode marshals v, which is always a slice of marshalable values.
// A failure here would be a programming error, not data-dependent.
func mustEncode(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Error("encode compound field", "error", err)
		return "[]"
	}
	return string(data)
}

func decodeRoles(data string) []model.Role {
	var roles []model.Role
	if err := json.Unmarshal([]byte(data), &roles); err != nil || roles == nil {
		return []model.Role{}
	}
	return roles
}

func decodeStrings(data string) []string {
	var values []string
	if err := json.Unmarshal([]byte(data), &values); err != nil || values == nil {
		return []string{}
	}
	return values
}

func decodeItems(data string) []model.CartItem {
	var items []model.CartItem
	if err := json.Unmarshal([]byte(data), &items); err != nil || items == nil {
		return []model.CartItem{}
	}
	return items
}
