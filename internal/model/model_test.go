package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCartTotal(t *testing.T) {
	items := []CartItem{
		{Project: Project{ID: 1, Title: "E-commerce Platform", Price: 199.99}, Quantity: 1},
		{Project: Project{ID: 3, Title: "Personal Blog", Price: 49.99}, Quantity: 2},
	}

	assert.InDelta(t, 299.97, CartTotal(items), 1e-9)
}

func TestCartTotal_Empty(t *testing.T) {
	assert.Zero(t, CartTotal(nil))
	assert.Zero(t, CartTotal([]CartItem{}))
}

func TestCartTotal_ZeroPriceItems(t *testing.T) {
	items := []CartItem{
		{Project: Project{ID: 7, Title: "Free Sample"}, Quantity: 5},
	}
	assert.Zero(t, CartTotal(items))
}

func TestOrderStatus_Valid(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.True(t, StatusApproved.Valid())
	assert.True(t, StatusRejected.Valid())
	assert.False(t, OrderStatus("shipped").Valid())
	assert.False(t, OrderStatus("").Valid())
}
