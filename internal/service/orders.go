package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Fsince94/PortfolioApp/internal/model"
)

type orderRow struct {
	ID               int64   `db:"id"`
	CustomerName     string  `db:"customer_name"`
	CustomerEmail    string  `db:"customer_email"`
	TotalAmount      float64 `db:"total_amount"`
	Status           string  `db:"status"`
	PaymentMethod    string  `db:"payment_method"`
	PaymentReference string  `db:"payment_reference"`
	Items            string  `db:"items"`
	Date             string  `db:"date"`
}

// GetOrders returns all orders, newest first.
func (s *Service) GetOrders(ctx context.Context) ([]model.Order, error) {
	if s.degraded(ctx, "GetOrders") {
		return []model.Order{}, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var rows []orderRow
	err := s.eng.Select(ctx, &rows,
		`SELECT id, customer_name, customer_email, total_amount, status,
		        payment_method, payment_reference, items, date
		 FROM orders ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("get orders: %w", err)
	}

	orders := make([]model.Order, 0, len(rows))
	for _, r := range rows {
		orders = append(orders, model.Order{
			ID:               r.ID,
			CustomerName:     r.CustomerName,
			CustomerEmail:    r.CustomerEmail,
			TotalAmount:      r.TotalAmount,
			Status:           model.OrderStatus(r.Status),
			PaymentMethod:    model.PaymentMethod(r.PaymentMethod),
			PaymentReference: r.PaymentReference,
			Items:            decodeItems(r.Items),
			Date:             r.Date,
		})
	}
	return orders, nil
}

// CreateOrder inserts a new order. The status is forced to pending no
// matter what the caller supplied - the initial state is authoritative
// here, not an input. Items are stored as a frozen denormalized snapshot;
// later changes to the referenced projects never rewrite them.
func (s *Service) CreateOrder(ctx context.Context, o model.Order) error {
	if s.degraded(ctx, "CreateOrder") {
		return nil
	}

	date := o.Date
	if date == "" {
		date = time.Now().UTC().Format(time.RFC3339)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.eng.Exec(ctx,
		`INSERT INTO orders (customer_name, customer_email, total_amount, status,
		                     payment_method, payment_reference, items, date)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		o.CustomerName, o.CustomerEmail, o.TotalAmount, string(model.StatusPending),
		string(o.PaymentMethod), o.PaymentReference, encodeItems(o.Items), date)
	if err != nil {
		return fmt.Errorf("create order: %w", err)
	}

	return s.commitLocked(ctx)
}

// UpdateOrderStatus sets only the status column. The OrderStatus type
// narrows the value; callers passing one of the three constants need no
// further validation. Unknown ids update zero rows and still commit.
func (s *Service) UpdateOrderStatus(ctx context.Context, id int64, status model.OrderStatus) error {
	if s.degraded(ctx, "UpdateOrderStatus") {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.eng.Exec(ctx, "UPDATE orders SET status = ? WHERE id = ?", string(status), id)
	if err != nil {
		return fmt.Errorf("update order %d status: %w", id, err)
	}

	return s.commitLocked(ctx)
}
