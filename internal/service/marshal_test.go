package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Fsince94/PortfolioApp/internal/model"
)

func TestEncodeRoles_NilBecomesEmptySequence(t *testing.T) {
	assert.Equal(t, "[]", encodeRoles(nil))
	assert.Equal(t, "[]", encodeRoles([]model.Role{}))
	assert.Equal(t, `["Frontend","API"]`, encodeRoles([]model.Role{model.RoleFrontend, model.RoleAPI}))
}

func TestEncodeStrings(t *testing.T) {
	assert.Equal(t, "[]", encodeStrings(nil))
	assert.Equal(t, `["Go","SQLite"]`, encodeStrings([]string{"Go", "SQLite"}))
}

func TestDecodeRoles_OrderPreserved(t *testing.T) {
	roles := decodeRoles(`["API","Backend","Frontend"]`)
	assert.Equal(t, []model.Role{model.RoleAPI, model.RoleBackend, model.RoleFrontend}, roles)
}

func TestDecode_MalformedFallsBackToEmpty(t *testing.T) {
	// Corrupt serialized text decodes to an empty sequence, never an error
	// and never nil.
	for _, data := range []string{"", "{", "not json", "42", `{"a":1}`, "null"} {
		roles := decodeRoles(data)
		assert.NotNil(t, roles, "input %q", data)
		assert.Empty(t, roles, "input %q", data)

		values := decodeStrings(data)
		assert.NotNil(t, values, "input %q", data)
		assert.Empty(t, values, "input %q", data)

		items := decodeItems(data)
		assert.NotNil(t, items, "input %q", data)
		assert.Empty(t, items, "input %q", data)
	}
}

func TestItems_RoundTrip(t *testing.T) {
	items := []model.CartItem{
		{Project: model.Project{ID: 2, Title: "Tool", Price: 149.5,
			Roles:        []model.Role{model.RoleFrontend},
			Technologies: []string{"React"}}, Quantity: 3},
	}

	decoded := decodeItems(encodeItems(items))
	assert.Equal(t, items, decoded)
}
