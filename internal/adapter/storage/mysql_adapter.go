package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rl1809/kiosk-checkout/internal/core/domain"
)

type MySQLAdapter struct {
	db *sql.DB
}

func NewMySQLAdapter(db *sql.DB) *MySQLAdapter {
	return &MySQLAdapter{db: db}
}

func (m *MySQLAdapter) Ping(ctx context.Context) error {
	return m.db.PingContext(ctx)
}

func (m *MySQLAdapter) GetCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := m.db.QueryContext(ctx, `
		SELECT id, name, COALESCE(image, '') FROM categories ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var cat domain.Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.Image); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, cat)
	}
	return categories, rows.Err()
}

func (m *MySQLAdapter) GetItems(ctx context.Context, categoryID int64) ([]domain.Item, error) {
	query := `
		SELECT id, category_id, name, price, COALESCE(image_id, '')
		FROM items`
	args := []any{}
	if categoryID != 0 {
		query += ` WHERE category_id = ?`
		args = append(args, categoryID)
	}
	query += ` ORDER BY id`

	rows, err := m.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		var item domain.Item
		if err := rows.Scan(&item.ID, &item.CategoryID, &item.Name, &item.Price, &item.ImageID); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (m *MySQLAdapter) GetItem(ctx context.Context, itemID int64) (*domain.Item, error) {
	var item domain.Item
	err := m.db.QueryRowContext(ctx, `
		SELECT id, category_id, name, price, COALESCE(image_id, '')
		FROM items WHERE id = ?`, itemID,
	).Scan(&item.ID, &item.CategoryID, &item.Name, &item.Price, &item.ImageID)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query item: %w", err)
	}
	return &item, nil
}

// FindItem satisfies the catalog port: the engine prices orders against the
// row as it stands at call time.
func (m *MySQLAdapter) FindItem(ctx context.Context, itemID int64) (*domain.ItemSnapshot, error) {
	item, err := m.GetItem(ctx, itemID)
	if err != nil || item == nil {
		return nil, err
	}
	snap := item.Snapshot()
	return &snap, nil
}

func (m *MySQLAdapter) CreateCategory(ctx context.Context, category domain.Category) (*domain.Category, error) {
	result, err := m.db.ExecContext(ctx, `
		INSERT INTO categories (name, image) VALUES (?, ?)`,
		category.Name, nullable(category.Image),
	)
	if err != nil {
		return nil, fmt.Errorf("insert category: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("category id: %w", err)
	}
	category.ID = id
	return &category, nil
}

func (m *MySQLAdapter) CreateItem(ctx context.Context, item domain.Item) (*domain.Item, error) {
	result, err := m.db.ExecContext(ctx, `
		INSERT INTO items (category_id, name, price, image_id) VALUES (?, ?, ?, ?)`,
		item.CategoryID, item.Name, item.Price, nullable(item.ImageID),
	)
	if err != nil {
		return nil, fmt.Errorf("insert item: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("item id: %w", err)
	}
	item.ID = id
	return &item, nil
}

// CreateOrder writes the order header and all lines in one transaction.
// Either everything commits or the deferred rollback leaves no trace.
func (m *MySQLAdapter) CreateOrder(ctx context.Context, order domain.ValidatedOrder) (*domain.StoredOrder, error) {
	paymentData, err := json.Marshal(order.Payment)
	if err != nil {
		return nil, fmt.Errorf("encode payment summary: %w", err)
	}

	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	createdAt := time.Now().UTC().Truncate(time.Second)

	result, err := tx.ExecContext(ctx, `
		INSERT INTO orders (created_at, total, payment_key, payment_data)
		VALUES (?, ?, ?, ?)`,
		createdAt, order.Total, order.PaymentKey, paymentData,
	)
	if err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}
	orderID, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("order id: %w", err)
	}

	stored := &domain.StoredOrder{
		ID:         orderID,
		Timestamp:  createdAt,
		Total:      order.Total,
		PaymentKey: order.PaymentKey,
		Lines:      make([]domain.StoredLine, 0, len(order.Lines)),
	}

	for _, line := range order.Lines {
		result, err := tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, item_id, quantity)
			VALUES (?, ?, ?)`,
			orderID, line.ItemID, line.Quantity,
		)
		if err != nil {
			return nil, fmt.Errorf("insert order item %d: %w", line.ItemID, err)
		}
		lineID, err := result.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("order item id: %w", err)
		}
		stored.Lines = append(stored.Lines, domain.StoredLine{
			ID:       lineID,
			ItemID:   line.ItemID,
			Quantity: line.Quantity,
		})
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit order: %w", err)
	}
	return stored, nil
}

func (m *MySQLAdapter) GetOrder(ctx context.Context, orderID int64) (*domain.StoredOrder, error) {
	var order domain.StoredOrder
	err := m.db.QueryRowContext(ctx, `
		SELECT id, created_at, total, payment_key FROM orders WHERE id = ?`, orderID,
	).Scan(&order.ID, &order.Timestamp, &order.Total, &order.PaymentKey)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query order: %w", err)
	}

	rows, err := m.db.QueryContext(ctx, `
		SELECT id, item_id, quantity FROM order_items WHERE order_id = ? ORDER BY id`, orderID)
	if err != nil {
		return nil, fmt.Errorf("query order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var line domain.StoredLine
		if err := rows.Scan(&line.ID, &line.ItemID, &line.Quantity); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		order.Lines = append(order.Lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &order, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
