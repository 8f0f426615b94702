package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Veraticus/listwise/internal/model"
)

// SaveItem inserts item, creating its list on first use. An empty ID is
// replaced by a new UUID and a zero CreatedAt by the current time.
func (s *SQLiteStorage) SaveItem(ctx context.Context, item *model.ShoppingItem) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateItem(item); err != nil {
		return err
	}

	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}

	var priceMinor sql.NullInt64
	var currency sql.NullString
	if item.Price != nil {
		priceMinor = sql.NullInt64{Int64: item.Price.ToMinor(), Valid: true}
		currency = sql.NullString{String: item.Price.Currency(), Valid: true}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`INSERT OR IGNORE INTO lists (name, type, created_at) VALUES (?, ?, ?)`,
		item.ListName, string(model.ListTypeShopping), item.CreatedAt,
	); err != nil {
		return fmt.Errorf("failed to create list: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO items (id, list_name, section, name, quantity, unit, category,
			raw_text, checked, created_at, price_minor, currency)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ID, item.ListName, item.Section, item.Name, item.Quantity.String(), item.Unit,
		item.Category, item.RawText, item.Checked, item.CreatedAt, priceMinor, currency,
	)
	if err != nil {
		return fmt.Errorf("failed to save item: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit item: %w", err)
	}

	slog.Debug("saved item", "id", item.ID, "list", item.ListName, "name", item.Name)
	return nil
}

// GetItems returns the items of listName in insertion order. An empty
// listName returns the items of every list.
func (s *SQLiteStorage) GetItems(ctx context.Context, listName string) ([]model.ShoppingItem, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT id, list_name, section, name, quantity, unit, category, raw_text,
			checked, created_at, price_minor, currency
		FROM items`
	var args []any
	if listName != "" {
		query += ` WHERE list_name = ?`
		args = append(args, listName)
	}
	query += ` ORDER BY list_name, created_at, rowid`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var items []model.ShoppingItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating items: %w", err)
	}

	slog.Debug("retrieved items", "list", listName, "count", len(items))
	return items, nil
}

func scanItem(rows *sql.Rows) (model.ShoppingItem, error) {
	var (
		item       model.ShoppingItem
		quantity   string
		priceMinor sql.NullInt64
		currency   sql.NullString
	)
	if err := rows.Scan(
		&item.ID, &item.ListName, &item.Section, &item.Name, &quantity, &item.Unit,
		&item.Category, &item.RawText, &item.Checked, &item.CreatedAt, &priceMinor, &currency,
	); err != nil {
		return model.ShoppingItem{}, fmt.Errorf("failed to scan item: %w", err)
	}

	q, err := model.ParseQuantity(quantity)
	if err != nil {
		return model.ShoppingItem{}, fmt.Errorf("item %s: %w", item.ID, err)
	}
	item.Quantity = q

	if priceMinor.Valid {
		price := model.MoneyFromMinor(priceMinor.Int64, currency.String)
		item.Price = &price
	}
	return item, nil
}

// GetLists returns every list with its item count, ordered by name.
func (s *SQLiteStorage) GetLists(ctx context.Context) ([]model.List, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT l.name, l.type, COUNT(i.id)
		FROM lists l
		LEFT JOIN items i ON i.list_name = l.name
		GROUP BY l.name, l.type
		ORDER BY l.name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query lists: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var lists []model.List
	for rows.Next() {
		var list model.List
		var listType string
		if err := rows.Scan(&list.Name, &listType, &list.ItemCount); err != nil {
			return nil, fmt.Errorf("failed to scan list: %w", err)
		}
		list.Type = model.ListType(listType)
		lists = append(lists, list)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating lists: %w", err)
	}
	return lists, nil
}

// SetChecked marks an item as checked or unchecked.
func (s *SQLiteStorage) SetChecked(ctx context.Context, id string, checked bool) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `UPDATE items SET checked = ? WHERE id = ?`, checked, id)
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}
	return requireAffected(result, id)
}

// DeleteItem removes an item.
func (s *SQLiteStorage) DeleteItem(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	return requireAffected(result, id)
}

// ListTotal sums price times quantity over the priced items of listName in
// currency. Items priced in another currency fail with
// model.ErrCurrencyMismatch.
func (s *SQLiteStorage) ListTotal(ctx context.Context, listName, currency string) (model.Money, error) {
	items, err := s.GetItems(ctx, listName)
	if err != nil {
		return model.Money{}, err
	}

	total := model.MoneyFromMinor(0, currency)
	for i := range items {
		itemTotal := items[i].Total()
		if itemTotal == nil {
			continue
		}
		total, err = total.Add(*itemTotal)
		if err != nil {
			return model.Money{}, fmt.Errorf("item %s: %w", items[i].ID, err)
		}
	}
	return total, nil
}

func requireAffected(result sql.Result, id string) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: item %s", ErrNotFound, id)
	}
	return nil
}
