package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/recibospro/recibos-api/internal/domain/entity"
	"github.com/recibospro/recibos-api/internal/domain/repository"
)

var _ repository.ReceiptRepository = (*ReceiptRepo)(nil)

// ReceiptRepo implementación del puerto ReceiptRepository sobre PostgreSQL.
// Snapshots, ítems y totales van como JSONB: el recibo es un documento cerrado,
// se escribe una vez y se lee tal cual quedó. Este adaptador no expone update
// ni delete, igual que el puerto.
type ReceiptRepo struct {
	db Querier
}

// NewReceiptRepository construye el adaptador de persistencia para recibos.
func NewReceiptRepository(db Querier) *ReceiptRepo {
	return &ReceiptRepo{db: db}
}

const receiptColumns = `id, user_id, company_id, employee_id, periodo_mes, periodo_anio,
		employee_snapshot, company_snapshot, items, totales, created_at`

// Create persiste un recibo ya emitido, con sus snapshots y totales congelados.
func (r *ReceiptRepo) Create(ctx context.Context, receipt *entity.Receipt) error {
	empSnap, err := json.Marshal(receipt.EmployeeSnapshot)
	if err != nil {
		return fmt.Errorf("marshal employee snapshot: %w", err)
	}
	compSnap, err := json.Marshal(receipt.CompanySnapshot)
	if err != nil {
		return fmt.Errorf("marshal company snapshot: %w", err)
	}
	items, err := json.Marshal(receipt.Items)
	if err != nil {
		return fmt.Errorf("marshal items: %w", err)
	}
	totales, err := json.Marshal(receipt.Totales)
	if err != nil {
		return fmt.Errorf("marshal totales: %w", err)
	}

	query := `
		INSERT INTO receipts (` + receiptColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err = r.db.Exec(ctx, query,
		receipt.ID, receipt.UserID, receipt.CompanyID, receipt.EmployeeID,
		receipt.Periodo.Mes, receipt.Periodo.Anio,
		empSnap, compSnap, items, totales,
		receipt.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert receipt: %w", err)
	}
	return nil
}

// GetByIDAndUser obtiene un recibo por ID acotado al tenant.
func (r *ReceiptRepo) GetByIDAndUser(ctx context.Context, id, userID string) (*entity.Receipt, error) {
	query := `SELECT ` + receiptColumns + ` FROM receipts WHERE id = $1 AND user_id = $2`
	row := r.db.QueryRow(ctx, query, id, userID)
	receipt, err := scanReceipt(row)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get receipt: %w", err)
	}
	return receipt, nil
}

// ListByUser lista recibos del tenant aplicando los filtros no vacíos,
// más reciente primero.
func (r *ReceiptRepo) ListByUser(ctx context.Context, userID string, filter repository.ReceiptFilter) ([]*entity.Receipt, error) {
	query := `
		SELECT ` + receiptColumns + `
		FROM receipts
		WHERE user_id = $1
		  AND ($2 = '' OR company_id = $2)
		  AND ($3 = '' OR employee_id = $3)
		  AND ($4 = 0 OR periodo_mes = $4)
		  AND ($5 = 0 OR periodo_anio = $5)
		ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, userID, filter.CompanyID, filter.EmployeeID, filter.Mes, filter.Anio)
	if err != nil {
		return nil, fmt.Errorf("list receipts: %w", err)
	}
	defer rows.Close()

	var list []*entity.Receipt
	for rows.Next() {
		receipt, err := scanReceipt(rows)
		if err != nil {
			return nil, fmt.Errorf("scan receipt: %w", err)
		}
		list = append(list, receipt)
	}
	return list, rows.Err()
}

// CountByUserInRange cuenta recibos del tenant con created_at en [desde, hasta).
func (r *ReceiptRepo) CountByUserInRange(ctx context.Context, userID string, desde, hasta time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM receipts WHERE user_id = $1 AND created_at >= $2 AND created_at < $3`
	var count int
	if err := r.db.QueryRow(ctx, query, userID, desde, hasta).Scan(&count); err != nil {
		return 0, fmt.Errorf("count receipts: %w", err)
	}
	return count, nil
}

// scanReceipt deserializa una fila de receipts, JSONB incluido.
func scanReceipt(row interface{ Scan(dest ...any) error }) (*entity.Receipt, error) {
	var rec entity.Receipt
	var empSnap, compSnap, items, totales []byte
	err := row.Scan(
		&rec.ID, &rec.UserID, &rec.CompanyID, &rec.EmployeeID,
		&rec.Periodo.Mes, &rec.Periodo.Anio,
		&empSnap, &compSnap, &items, &totales,
		&rec.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(empSnap, &rec.EmployeeSnapshot); err != nil {
		return nil, fmt.Errorf("unmarshal employee snapshot: %w", err)
	}
	if err := json.Unmarshal(compSnap, &rec.CompanySnapshot); err != nil {
		return nil, fmt.Errorf("unmarshal company snapshot: %w", err)
	}
	if err := json.Unmarshal(items, &rec.Items); err != nil {
		return nil, fmt.Errorf("unmarshal items: %w", err)
	}
	if err := json.Unmarshal(totales, &rec.Totales); err != nil {
		return nil, fmt.Errorf("unmarshal totales: %w", err)
	}
	return &rec, nil
}
