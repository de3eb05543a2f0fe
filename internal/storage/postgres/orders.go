package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/Cucholambr3ta/App-Ajicolor-sub001/internal/domain/errors"
	"github.com/Cucholambr3ta/App-Ajicolor-sub001/internal/domain/model"
	"github.com/Cucholambr3ta/App-Ajicolor-sub001/internal/pkg/livequery"
)

const orderColumns = `order_number, user_id, status, created_at, confirmed_at, shipped_at, delivered_at, dispatch_number`

func (r *orderRepository) Insert(ctx context.Context, order *model.Order) error {
	const query = `INSERT INTO orders (` + orderColumns + `)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
                   ON CONFLICT (order_number) DO UPDATE SET
                       user_id=EXCLUDED.user_id,
                       status=EXCLUDED.status,
                       created_at=EXCLUDED.created_at,
                       confirmed_at=EXCLUDED.confirmed_at,
                       shipped_at=EXCLUDED.shipped_at,
                       delivered_at=EXCLUDED.delivered_at,
                       dispatch_number=EXCLUDED.dispatch_number`
	_, err := r.storage.pool.Exec(ctx, query,
		order.Number, order.UserID, order.Status, order.CreatedAt,
		order.ConfirmedAt, order.ShippedAt, order.DeliveredAt, order.DispatchNumber)
	if err != nil {
		return err
	}
	r.storage.hub.Notify(topicOrders)
	return nil
}

func (r *orderRepository) InsertItems(ctx context.Context, items []model.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	const query = `INSERT INTO order_items (order_number, product_id, product_name, quantity, unit_price)
                   VALUES ($1, $2, $3, $4, $5)
                   ON CONFLICT (order_number, product_id) DO UPDATE SET
                       product_name=EXCLUDED.product_name,
                       quantity=EXCLUDED.quantity,
                       unit_price=EXCLUDED.unit_price`
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		for _, item := range items {
			if _, err := tx.Exec(ctx, query,
				item.OrderNumber, item.ProductID, item.ProductName, item.Quantity, item.UnitPrice); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	r.storage.hub.Notify(topicOrderItems)
	return nil
}

func (r *orderRepository) GetByNumber(ctx context.Context, number string) (*model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE order_number=$1`
	var o model.Order
	err := r.storage.pool.QueryRow(ctx, query, number).Scan(
		&o.Number, &o.UserID, &o.Status, &o.CreatedAt,
		&o.ConfirmedAt, &o.ShippedAt, &o.DeliveredAt, &o.DispatchNumber)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders
                   WHERE user_id=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	return scanOrders(rows)
}

func (r *orderRepository) listByStatus(ctx context.Context, userID int64, status model.OrderStatus) ([]model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders
                   WHERE user_id=$1 AND status=$2 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID, status)
	if err != nil {
		return nil, err
	}
	return scanOrders(rows)
}

func scanOrders(rows pgx.Rows) ([]model.Order, error) {
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.Number, &o.UserID, &o.Status, &o.CreatedAt,
			&o.ConfirmedAt, &o.ShippedAt, &o.DeliveredAt, &o.DispatchNumber); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) ListItems(ctx context.Context, number string) ([]model.OrderItem, error) {
	const query = `SELECT id, order_number, product_id, product_name, quantity, unit_price
                   FROM order_items WHERE order_number=$1 ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query, number)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.OrderItem
	for rows.Next() {
		var item model.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderNumber, &item.ProductID,
			&item.ProductName, &item.Quantity, &item.UnitPrice); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *orderRepository) ObserveByUser(ctx context.Context, userID int64) (<-chan []model.Order, error) {
	return livequery.Observe(ctx, r.storage.hub, topicOrders, func(ctx context.Context) ([]model.Order, error) {
		return r.ListByUser(ctx, userID)
	})
}

func (r *orderRepository) ObserveByStatus(ctx context.Context, userID int64, status model.OrderStatus) (<-chan []model.Order, error) {
	return livequery.Observe(ctx, r.storage.hub, topicOrders, func(ctx context.Context) ([]model.Order, error) {
		return r.listByStatus(ctx, userID, status)
	})
}

func (r *orderRepository) ObserveItems(ctx context.Context, number string) (<-chan []model.OrderItem, error) {
	return livequery.Observe(ctx, r.storage.hub, topicOrderItems, func(ctx context.Context) ([]model.OrderItem, error) {
		return r.ListItems(ctx, number)
	})
}

// UpdateStatus sets the status and stamps the milestone timestamp matching
// the new status. Each CASE arm guards with IS NULL so a repeated transition
// never re-stamps; a status outside the milestone set changes only status.
func (r *orderRepository) UpdateStatus(ctx context.Context, number string, status model.OrderStatus, at time.Time) error {
	const query = `UPDATE orders SET
                       status=$2,
                       confirmed_at = CASE WHEN $2 = 'CONFIRMADO' AND confirmed_at IS NULL THEN $3 ELSE confirmed_at END,
                       shipped_at   = CASE WHEN $2 = 'ENVIADO'    AND shipped_at   IS NULL THEN $3 ELSE shipped_at   END,
                       delivered_at = CASE WHEN $2 = 'ENTREGADO'  AND delivered_at IS NULL THEN $3 ELSE delivered_at END
                   WHERE order_number=$1`
	tag, err := r.storage.pool.Exec(ctx, query, number, status, at)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	r.storage.hub.Notify(topicOrders)
	return nil
}

func (r *orderRepository) AssignDispatch(ctx context.Context, number, dispatch string) error {
	const query = `UPDATE orders SET dispatch_number=$2 WHERE order_number=$1`
	tag, err := r.storage.pool.Exec(ctx, query, number, dispatch)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	r.storage.hub.Notify(topicOrders)
	return nil
}

// DeleteComplete removes the order and its items in one transaction, so a
// failure of either delete leaves both tables untouched.
func (r *orderRepository) DeleteComplete(ctx context.Context, number string) error {
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM order_items WHERE order_number=$1`, number); err != nil {
			return err
		}
		tag, err := tx.Exec(ctx, `DELETE FROM orders WHERE order_number=$1`, number)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domainErrors.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}
	r.storage.hub.Notify(topicOrders, topicOrderItems)
	return nil
}
