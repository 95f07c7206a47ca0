// Package cart persists the shopping cart in a local sqlite database.
package cart

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/kraitsura/storefront/pkg/model"
)

// Store handles cart persistence
type Store struct {
	db *sql.DB
}

// Open opens or creates the cart database at the given path
func Open(dbPath string) (*Store, error) {
	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	s := &Store{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return s, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS cart_items (
		product_id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		price REAL NOT NULL,
		quantity INTEGER NOT NULL,
		category TEXT NOT NULL DEFAULT '',
		period TEXT NOT NULL DEFAULT '',
		image TEXT NOT NULL DEFAULT '',
		added_at DATETIME NOT NULL
	);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Add inserts an item, or increases the quantity if the product is already in the cart
func (s *Store) Add(item model.CartItem) error {
	if item.ProductID == "" {
		return fmt.Errorf("cart item has no product id")
	}
	if item.Quantity <= 0 {
		return fmt.Errorf("cart item %s has quantity %d", item.ProductID, item.Quantity)
	}
	_, err := s.db.Exec(`
		INSERT INTO cart_items (product_id, name, price, quantity, category, period, image, added_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(product_id) DO UPDATE SET quantity = quantity + excluded.quantity
	`, item.ProductID, item.Name, item.Price, item.Quantity, string(item.Category), string(item.Period), item.Image, time.Now())
	return err
}

// Remove deletes a product line from the cart
func (s *Store) Remove(productID string) error {
	_, err := s.db.Exec(`DELETE FROM cart_items WHERE product_id = ?`, productID)
	return err
}

// UpdateQuantity sets the quantity of a line; zero or less removes it
func (s *Store) UpdateQuantity(productID string, quantity int) error {
	if quantity <= 0 {
		return s.Remove(productID)
	}
	_, err := s.db.Exec(`UPDATE cart_items SET quantity = ? WHERE product_id = ?`, quantity, productID)
	return err
}

// Clear empties the cart
func (s *Store) Clear() error {
	_, err := s.db.Exec(`DELETE FROM cart_items`)
	return err
}

// Items returns the cart lines in the order they were first added
func (s *Store) Items() ([]model.CartItem, error) {
	rows, err := s.db.Query(`
		SELECT product_id, name, price, quantity, category, period, image
		FROM cart_items
		ORDER BY added_at ASC, product_id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.CartItem
	for rows.Next() {
		var item model.CartItem
		var category, period string
		if err := rows.Scan(&item.ProductID, &item.Name, &item.Price, &item.Quantity, &category, &period, &item.Image); err != nil {
			return nil, err
		}
		item.Category = model.Category(category)
		item.Period = model.Period(period)
		items = append(items, item)
	}
	return items, rows.Err()
}

// Total returns the sum of all line subtotals
func (s *Store) Total() (float64, error) {
	var total sql.NullFloat64
	if err := s.db.QueryRow(`SELECT SUM(price * quantity) FROM cart_items`).Scan(&total); err != nil {
		return 0, err
	}
	return total.Float64, nil
}
