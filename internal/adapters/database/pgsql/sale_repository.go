package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/comerzia/comerzia_backend/internal/apperrors"
	"github.com/comerzia/comerzia_backend/internal/core/domain"
	portsrepo "github.com/comerzia/comerzia_backend/internal/core/ports/repositories"
	"github.com/comerzia/comerzia_backend/internal/dto"
)

type PgxSaleRepository struct {
	pool *pgxpool.Pool
}

// NewPgxSaleRepository creates a new repository for sale, item and payment data.
func NewPgxSaleRepository(pool *pgxpool.Pool) portsrepo.SaleRepository {
	return &PgxSaleRepository{pool: pool}
}

// SaveDraft stores an unissued sale with its items.
func (r *PgxSaleRepository) SaveDraft(ctx context.Context, sale domain.Sale) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if err := insertSale(ctx, tx, sale, nil); err != nil {
		return err
	}
	if err := insertSaleItems(ctx, tx, sale.SaleID, sale.Items); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction for sale %s: %w", sale.SaleID, err)
	}
	return nil
}

// UpdateDraft replaces an existing draft's header and items.
func (r *PgxSaleRepository) UpdateDraft(ctx context.Context, sale domain.Sale) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	updateQuery := `
		UPDATE sales
		SET client_id = $2, subtotal_amount = $3, tax_amount = $4, total_amount = $5,
		    last_updated_at = $6, last_updated_by = $7
		WHERE sale_id = $1 AND status = $8;
	`
	tag, err := tx.Exec(ctx, updateQuery,
		sale.SaleID,
		sale.ClientID,
		sale.SubtotalAmount,
		sale.TaxAmount,
		sale.TotalAmount,
		sale.LastUpdatedAt,
		sale.LastUpdatedBy,
		domain.SaleStatusDraft,
	)
	if err != nil {
		return fmt.Errorf("failed to update sale %s: %w", sale.SaleID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM sale_items WHERE sale_id = $1;`, sale.SaleID); err != nil {
		return fmt.Errorf("failed to clear items of sale %s: %w", sale.SaleID, err)
	}
	if err := insertSaleItems(ctx, tx, sale.SaleID, sale.Items); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction for sale %s: %w", sale.SaleID, err)
	}
	return nil
}

// SaveIssued stores a finalized sale with items and payments, allocating the
// document number within the same DB transaction.
func (r *PgxSaleRepository) SaveIssued(ctx context.Context, sale domain.Sale, seriesID string) (*domain.IssuedDocument, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	doc, err := allocateDocument(ctx, tx, seriesID)
	if err != nil {
		return nil, err
	}

	if err := insertSale(ctx, tx, sale, &doc.DocumentID); err != nil {
		return nil, err
	}
	if err := insertSaleItems(ctx, tx, sale.SaleID, sale.Items); err != nil {
		return nil, err
	}

	batch := &pgx.Batch{}
	paymentQuery := `
		INSERT INTO sale_payments (payment_id, sale_id, payment_method_id, amount_paid, payment_reference, proof_key, proof_path)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	for _, p := range sale.Payments {
		batch.Queue(paymentQuery,
			uuid.NewString(),
			sale.SaleID,
			int(p.PaymentMethodID),
			p.AmountPaid,
			p.PaymentReference,
			p.ProofKey,
			p.ProofPath,
		)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return nil, fmt.Errorf("failed to execute payment batch for sale %s: %w", sale.SaleID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction for sale %s: %w", sale.SaleID, err)
	}
	return doc, nil
}

// FindSaleByID retrieves a sale with its items, payments and document.
func (r *PgxSaleRepository) FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	query := `
		SELECT s.sale_id, s.client_id, s.status, s.subtotal_amount, s.tax_amount, s.total_amount,
		       s.created_at, s.created_by, s.last_updated_at, s.last_updated_by,
		       d.document_id, d.series_id, d.document_type_code, d.series, d.sequence, d.issue_date, d.status
		FROM sales s
		LEFT JOIN documents d ON d.document_id = s.document_id
		WHERE s.sale_id = $1;
	`
	sale, err := scanSale(r.pool.QueryRow(ctx, query, saleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find sale by ID %s: %w", saleID, err)
	}

	sale.Items, err = r.findSaleItems(ctx, saleID)
	if err != nil {
		return nil, err
	}
	sale.Payments, err = r.findSalePayments(ctx, saleID)
	if err != nil {
		return nil, err
	}
	return sale, nil
}

// ListSales retrieves sales matching the filter, newest first. Items and
// payments are not loaded for listings.
func (r *PgxSaleRepository) ListSales(ctx context.Context, filter dto.SaleFilter) ([]domain.Sale, error) {
	conditions := []string{}
	args := []any{}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.SaleID != "" {
		conditions = append(conditions, "s.sale_id = "+arg(filter.SaleID))
	}
	if filter.ClientID != "" {
		conditions = append(conditions, "s.client_id = "+arg(filter.ClientID))
	}
	if filter.SaleStatus != "" {
		conditions = append(conditions, "s.status = "+arg(filter.SaleStatus))
	}
	if filter.StartDate != nil {
		conditions = append(conditions, "s.created_at >= "+arg(*filter.StartDate))
	}
	if filter.EndDate != nil {
		conditions = append(conditions, "s.created_at <= "+arg(*filter.EndDate))
	}

	query := `
		SELECT s.sale_id, s.client_id, s.status, s.subtotal_amount, s.tax_amount, s.total_amount,
		       s.created_at, s.created_by, s.last_updated_at, s.last_updated_by,
		       d.document_id, d.series_id, d.document_type_code, d.series, d.sequence, d.issue_date, d.status
		FROM sales s
		LEFT JOIN documents d ON d.document_id = s.document_id
	`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY s.created_at DESC;"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales: %w", err)
	}
	defer rows.Close()

	sales := []domain.Sale{}
	for rows.Next() {
		sale, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sale row: %w", err)
		}
		sales = append(sales, *sale)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sale rows: %w", err)
	}
	return sales, nil
}

func (r *PgxSaleRepository) findSaleItems(ctx context.Context, saleID string) ([]domain.LineItem, error) {
	query := `
		SELECT item_type, product_id, service_id, description, quantity, unit_price, discount_percentage
		FROM sale_items
		WHERE sale_id = $1
		ORDER BY position;
	`
	rows, err := r.pool.Query(ctx, query, saleID)
	if err != nil {
		return nil, fmt.Errorf("failed to query items for sale %s: %w", saleID, err)
	}
	defer rows.Close()
	return scanLineItems(rows)
}

func (r *PgxSaleRepository) findSalePayments(ctx context.Context, saleID string) ([]domain.Payment, error) {
	query := `
		SELECT payment_method_id, amount_paid, payment_reference, proof_key, proof_path
		FROM sale_payments
		WHERE sale_id = $1
		ORDER BY payment_id;
	`
	rows, err := r.pool.Query(ctx, query, saleID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments for sale %s: %w", saleID, err)
	}
	defer rows.Close()

	payments := []domain.Payment{}
	for rows.Next() {
		var p domain.Payment
		var methodID int
		if err := rows.Scan(&methodID, &p.AmountPaid, &p.PaymentReference, &p.ProofKey, &p.ProofPath); err != nil {
			return nil, fmt.Errorf("failed to scan payment row for sale %s: %w", saleID, err)
		}
		p.PaymentMethodID = domain.PaymentMethodID(methodID)
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payment rows for sale %s: %w", saleID, err)
	}
	return payments, nil
}

func insertSale(ctx context.Context, tx pgx.Tx, sale domain.Sale, documentID *string) error {
	query := `
		INSERT INTO sales (sale_id, client_id, status, document_id, subtotal_amount, tax_amount, total_amount, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := tx.Exec(ctx, query,
		sale.SaleID,
		sale.ClientID,
		sale.Status,
		documentID,
		sale.SubtotalAmount,
		sale.TaxAmount,
		sale.TotalAmount,
		sale.CreatedAt,
		sale.CreatedBy,
		sale.LastUpdatedAt,
		sale.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert sale %s: %w", sale.SaleID, err)
	}
	return nil
}

func insertSaleItems(ctx context.Context, tx pgx.Tx, saleID string, items []domain.LineItem) error {
	batch := &pgx.Batch{}
	query := `
		INSERT INTO sale_items (sale_item_id, sale_id, position, item_type, product_id, service_id, description, quantity, unit_price, discount_percentage)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	for i, item := range items {
		batch.Queue(query,
			uuid.NewString(),
			saleID,
			i,
			item.ItemType,
			item.ProductID,
			item.ServiceID,
			item.Description,
			item.Quantity,
			item.UnitPrice,
			item.DiscountPercentage,
		)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to execute item batch for sale %s: %w", saleID, err)
	}
	return nil
}

// scanSale reads a sale header row joined with its (possibly absent) document.
func scanSale(row pgx.Row) (*domain.Sale, error) {
	var sale domain.Sale
	var docID, docSeriesID, docTypeCode, docSeries, docStatus *string
	var docSequence *int64
	var docIssueDate *time.Time

	if err := row.Scan(
		&sale.SaleID,
		&sale.ClientID,
		&sale.Status,
		&sale.SubtotalAmount,
		&sale.TaxAmount,
		&sale.TotalAmount,
		&sale.CreatedAt,
		&sale.CreatedBy,
		&sale.LastUpdatedAt,
		&sale.LastUpdatedBy,
		&docID,
		&docSeriesID,
		&docTypeCode,
		&docSeries,
		&docSequence,
		&docIssueDate,
		&docStatus,
	); err != nil {
		return nil, err
	}

	if docID != nil {
		sale.Document = &domain.IssuedDocument{
			DocumentID:       *docID,
			SeriesID:         *docSeriesID,
			DocumentTypeCode: *docTypeCode,
			Series:           *docSeries,
			Sequence:         *docSequence,
			IssueDate:        *docIssueDate,
			Status:           *docStatus,
		}
	}
	return &sale, nil
}

// scanLineItems drains an item result set in positional order.
func scanLineItems(rows pgx.Rows) ([]domain.LineItem, error) {
	items := []domain.LineItem{}
	for rows.Next() {
		var item domain.LineItem
		if err := rows.Scan(
			&item.ItemType,
			&item.ProductID,
			&item.ServiceID,
			&item.Description,
			&item.Quantity,
			&item.UnitPrice,
			&item.DiscountPercentage,
		); err != nil {
			return nil, fmt.Errorf("failed to scan item row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating item rows: %w", err)
	}
	return items, nil
}
