// Package review persists extracted invoices between runs so a human can
// verify or reject them later, and computes the dashboard metrics over the
// stored collection.
package review

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/ashwinrao/invoice-extractor/constants"
	"github.com/ashwinrao/invoice-extractor/internal/common"
	"github.com/ashwinrao/invoice-extractor/internal/entity"
)

const schema = `
CREATE TABLE IF NOT EXISTS invoices (
	id             TEXT PRIMARY KEY,
	merchant       TEXT NOT NULL,
	gstin          TEXT NOT NULL DEFAULT '',
	invoice_number TEXT NOT NULL DEFAULT '',
	date           TEXT NOT NULL,
	total_amount   REAL NOT NULL DEFAULT 0,
	tax_amount     REAL NOT NULL DEFAULT 0,
	subtotal       REAL NOT NULL DEFAULT 0,
	line_items     TEXT NOT NULL DEFAULT '[]',
	payment_method TEXT NOT NULL DEFAULT 'Cash',
	confidence     REAL NOT NULL DEFAULT 0,
	status         TEXT NOT NULL DEFAULT 'pending',
	raw_text       TEXT NOT NULL DEFAULT '',
	created_at     TEXT NOT NULL,
	updated_at     TEXT NOT NULL
)`

// Store is a SQLite-backed invoice collection.
type Store struct {
	db   *sql.DB
	path string
	log  *slog.Logger
}

// NewStore opens (or creates) the invoice database under dataDir. An empty
// dataDir falls back to ~/.invoice-extractor.
func NewStore(dataDir string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, common.WrapError(err, "getting home directory")
		}
		dataDir = filepath.Join(home, ".invoice-extractor")
	}
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, common.WrapError(err, "creating data directory")
	}

	dbPath := filepath.Join(dataDir, "invoices.db")

	// WAL keeps concurrent readers from blocking the writer.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, common.NewAppError("DB_OPEN", "opening database", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, common.NewAppError("DB_MIGRATE", "creating invoices table", err)
	}

	logger.Debug("review.store.open", "path", dbPath)
	return &Store{db: db, path: dbPath, log: logger}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Add inserts an invoice. The caller owns ID assignment; a zero ID is
// replaced before insert.
func (s *Store) Add(ctx context.Context, inv entity.Invoice) (entity.Invoice, error) {
	if inv.ID == uuid.Nil {
		inv.ID = uuid.New()
	}
	items, err := json.Marshal(inv.LineItems)
	if err != nil {
		return entity.Invoice{}, common.WrapError(err, "encode line items")
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO invoices (
			id, merchant, gstin, invoice_number, date,
			total_amount, tax_amount, subtotal, line_items,
			payment_method, confidence, status, raw_text,
			created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		inv.ID.String(), inv.Merchant, inv.GSTIN, inv.InvoiceNumber, inv.Date,
		inv.TotalAmount, inv.TaxAmount, inv.Subtotal, string(items),
		inv.PaymentMethod, inv.Confidence, string(inv.Status), inv.RawText,
		inv.CreatedAt.UTC().Format(time.RFC3339Nano), inv.UpdatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return entity.Invoice{}, common.NewAppError("DB_INSERT", "inserting invoice", err)
	}
	s.log.Info("review.store.add", "id", inv.ID, "merchant", inv.Merchant)
	return inv, nil
}

// Get returns one invoice by id. Returns common.ErrNotFound when absent.
func (s *Store) Get(ctx context.Context, id uuid.UUID) (entity.Invoice, error) {
	row := s.db.QueryRowContext(ctx, selectCols+` WHERE id = ?`, id.String())
	inv, err := scanInvoice(row)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.Invoice{}, fmt.Errorf("invoice %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return entity.Invoice{}, common.NewAppError("DB_QUERY", "reading invoice", err)
	}
	return inv, nil
}

// List returns all invoices, newest first.
func (s *Store) List(ctx context.Context) ([]entity.Invoice, error) {
	rows, err := s.db.QueryContext(ctx, selectCols+` ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, common.NewAppError("DB_QUERY", "listing invoices", err)
	}
	defer rows.Close()

	invoices := []entity.Invoice{}
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, common.NewAppError("DB_SCAN", "scanning invoice", err)
		}
		invoices = append(invoices, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, common.NewAppError("DB_QUERY", "listing invoices", err)
	}
	return invoices, nil
}

// Update replaces the stored invoice with the same ID and bumps
// updated_at.
func (s *Store) Update(ctx context.Context, inv entity.Invoice) (entity.Invoice, error) {
	items, err := json.Marshal(inv.LineItems)
	if err != nil {
		return entity.Invoice{}, common.WrapError(err, "encode line items")
	}
	inv.UpdatedAt = time.Now().UTC()

	res, err := s.db.ExecContext(ctx, `
		UPDATE invoices SET
			merchant = ?, gstin = ?, invoice_number = ?, date = ?,
			total_amount = ?, tax_amount = ?, subtotal = ?, line_items = ?,
			payment_method = ?, confidence = ?, status = ?, raw_text = ?,
			updated_at = ?
		WHERE id = ?`,
		inv.Merchant, inv.GSTIN, inv.InvoiceNumber, inv.Date,
		inv.TotalAmount, inv.TaxAmount, inv.Subtotal, string(items),
		inv.PaymentMethod, inv.Confidence, string(inv.Status), inv.RawText,
		inv.UpdatedAt.Format(time.RFC3339Nano), inv.ID.String(),
	)
	if err != nil {
		return entity.Invoice{}, common.NewAppError("DB_UPDATE", "updating invoice", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entity.Invoice{}, fmt.Errorf("invoice %s: %w", inv.ID, common.ErrNotFound)
	}
	return inv, nil
}

// UpdateStatus moves an invoice through the review workflow.
func (s *Store) UpdateStatus(ctx context.Context, id uuid.UUID, status constants.InvoiceStatus) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE invoices SET status = ?, updated_at = ? WHERE id = ?`,
		string(status), time.Now().UTC().Format(time.RFC3339Nano), id.String(),
	)
	if err != nil {
		return common.NewAppError("DB_UPDATE", "updating status", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("invoice %s: %w", id, common.ErrNotFound)
	}
	s.log.Info("review.store.status", "id", id, "status", status)
	return nil
}

// Delete removes one invoice.
func (s *Store) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM invoices WHERE id = ?`, id.String())
	if err != nil {
		return common.NewAppError("DB_DELETE", "deleting invoice", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("invoice %s: %w", id, common.ErrNotFound)
	}
	return nil
}

// Clear removes every stored invoice.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM invoices`); err != nil {
		return common.NewAppError("DB_DELETE", "clearing invoices", err)
	}
	s.log.Info("review.store.clear")
	return nil
}

const selectCols = `
	SELECT id, merchant, gstin, invoice_number, date,
	       total_amount, tax_amount, subtotal, line_items,
	       payment_method, confidence, status, raw_text,
	       created_at, updated_at
	FROM invoices`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanInvoice(row rowScanner) (entity.Invoice, error) {
	var (
		inv                  entity.Invoice
		id, status           string
		items                string
		createdAt, updatedAt string
	)
	err := row.Scan(
		&id, &inv.Merchant, &inv.GSTIN, &inv.InvoiceNumber, &inv.Date,
		&inv.TotalAmount, &inv.TaxAmount, &inv.Subtotal, &items,
		&inv.PaymentMethod, &inv.Confidence, &status, &inv.RawText,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return entity.Invoice{}, err
	}
	if inv.ID, err = uuid.Parse(id); err != nil {
		return entity.Invoice{}, fmt.Errorf("parse id %q: %w", id, err)
	}
	if err := json.Unmarshal([]byte(items), &inv.LineItems); err != nil {
		return entity.Invoice{}, fmt.Errorf("decode line items: %w", err)
	}
	if inv.LineItems == nil {
		inv.LineItems = []entity.LineItem{}
	}
	inv.Status = constants.InvoiceStatus(status)
	if inv.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return entity.Invoice{}, fmt.Errorf("parse created_at: %w", err)
	}
	if inv.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt); err != nil {
		return entity.Invoice{}, fmt.Errorf("parse updated_at: %w", err)
	}
	return inv, nil
}
