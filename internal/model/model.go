// Package model defines the persisted entities of the portfolio store:
// projects, blog posts, orders, admin credentials, and the cart line items
// that bridge the catalog to the checkout flow.
//
// Database rows map onto these structs via sqlx `db` tags. The compound
// fields (Project.Roles, Project.Technologies, Order.Items) are stored as
// serialized JSON text columns; the service layer owns that codec.
package model

// Role tags a project with the part of the stack it covers.
type Role string

const (
	RoleFrontend Role = "Frontend"
	RoleBackend  Role = "Backend"
	RoleAPI      Role = "API"
)

// Project is a portfolio entry, optionally purchasable.
//
// Roles and Technologies are always persisted as JSON sequences, even when
// empty - never NULL. Order of elements is preserved across round-trips.
type Project struct {
	ID           int64    `json:"id" db:"id"`
	Title        string   `json:"title" db:"title"`
	Description  string   `json:"description" db:"description"`
	Roles        []Role   `json:"roles" db:"-"`
	Technologies []string `json:"technologies" db:"-"`
	BuyURL       string   `json:"buyUrl,omitempty" db:"buy_url"`
	Price        float64  `json:"price,omitempty" db:"price"`
}

// BlogPost is a published article reference. Date and ReadTime are
// display-formatted text, not parsed time values.
type BlogPost struct {
	ID       int64  `json:"id" db:"id"`
	Title    string `json:"title" db:"title"`
	Excerpt  string `json:"excerpt" db:"excerpt"`
	Date     string `json:"date" db:"date"`
	Category string `json:"category" db:"category"`
	ReadTime string `json:"readTime" db:"read_time"`
	URL      string `json:"url" db:"url"`
}

// OrderStatus is the order approval state.
type OrderStatus string

const (
	StatusPending  OrderStatus = "pending"
	StatusApproved OrderStatus = "approved"
	StatusRejected OrderStatus = "rejected"
)

// Valid reports whether s is one of the three known states.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// PaymentMethod identifies how the customer paid.
type PaymentMethod string

const (
	PaymentPagoMovil PaymentMethod = "pago_movil"
	PaymentBinance   PaymentMethod = "binance"
	PaymentKontigo   PaymentMethod = "kontigo"
)

// CartItem is a Project plus a quantity. Inside an Order it is a frozen
// snapshot of the project at purchase time, not a live reference: deleting
// the project later never rewrites historical orders.
type CartItem struct {
	Project
	Quantity int `json:"quantity"`
}

// Order is a checkout submission. Items is persisted as serialized JSON.
type Order struct {
	ID               int64         `json:"id" db:"id"`
	CustomerName     string        `json:"customerName" db:"customer_name"`
	CustomerEmail    string        `json:"customerEmail" db:"customer_email"`
	TotalAmount      float64       `json:"totalAmount" db:"total_amount"`
	Status           OrderStatus   `json:"status" db:"status"`
	PaymentMethod    PaymentMethod `json:"paymentMethod" db:"payment_method"`
	PaymentReference string        `json:"paymentReference" db:"payment_reference"`
	Items            []CartItem    `json:"items" db:"-"`
	Date             string        `json:"date" db:"date"`
}

// Admin is the credential record checked by Login. The password is stored
// as plain comparable text; this is a deliberate, documented limitation of
// the single-admin design, not something to harden here.
type Admin struct {
	ID       int64  `json:"id" db:"id"`
	Username string `json:"username" db:"username"`
	Password string `json:"password" db:"password"`
}

// CartTotal sums price*quantity over the line items.
func CartTotal(items []CartItem) float64 {
	var total float64
	for _, it := range items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}
