package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Stock-ledger-api/internal/domain"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/repository"
)

var _ repository.SerialNoRepository = (*SerialNoRepo)(nil)

// SerialNoRepo implementación de SerialNoRepository sobre PostgreSQL (usable con pool o tx).
type SerialNoRepo struct {
	q Querier
}

// NewSerialNoRepository construye el adaptador de números de serie. Pasar pool o tx (Querier).
func NewSerialNoRepository(q Querier) *SerialNoRepo {
	return &SerialNoRepo{q: q}
}

const serialNoColumns = `
	serial_no, item_code, company, COALESCE(warehouse, ''), status, COALESCE(maintenance_status, ''),
	item_name, item_group, description, brand, warranty_period,
	warranty_expiry_date, amc_expiry_date,
	COALESCE(purchase_document_type, ''), COALESCE(purchase_document_no, ''), purchase_date,
	COALESCE(purchase_time::text, ''), purchase_rate, COALESCE(supplier, ''), COALESCE(supplier_name, ''),
	COALESCE(delivery_document_type, ''), COALESCE(delivery_document_no, ''), delivery_date,
	COALESCE(delivery_time::text, ''), COALESCE(customer, ''), COALESCE(customer_name, ''),
	created_at, updated_at`

func scanSerialNo(row pgx.Row) (*entity.SerialNo, error) {
	var s entity.SerialNo
	err := row.Scan(
		&s.SerialNo, &s.ItemCode, &s.Company, &s.Warehouse, &s.Status, &s.MaintenanceStatus,
		&s.ItemName, &s.ItemGroup, &s.Description, &s.Brand, &s.WarrantyPeriod,
		&s.WarrantyExpiryDate, &s.AMCExpiryDate,
		&s.PurchaseDocumentType, &s.PurchaseDocumentNo, &s.PurchaseDate,
		&s.PurchaseTime, &s.PurchaseRate, &s.Supplier, &s.SupplierName,
		&s.DeliveryDocumentType, &s.DeliveryDocumentNo, &s.DeliveryDate,
		&s.DeliveryTime, &s.Customer, &s.CustomerName,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Exists indica si el número de serie ya está registrado.
func (r *SerialNoRepo) Exists(ctx context.Context, serialNo string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM serial_nos WHERE serial_no = $1)`, serialNo).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists serial no: %w", err)
	}
	return exists, nil
}

// GetByID obtiene un número de serie; nil, nil si no existe.
func (r *SerialNoRepo) GetByID(ctx context.Context, serialNo string) (*entity.SerialNo, error) {
	s, err := scanSerialNo(r.q.QueryRow(ctx, `SELECT `+serialNoColumns+` FROM serial_nos WHERE serial_no = $1`, serialNo))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get serial no: %w", err)
	}
	return s, nil
}

// GetForUpdate obtiene el número de serie y bloquea la fila (SELECT FOR UPDATE).
func (r *SerialNoRepo) GetForUpdate(ctx context.Context, serialNo string) (*entity.SerialNo, error) {
	s, err := scanSerialNo(r.q.QueryRow(ctx, `SELECT `+serialNoColumns+` FROM serial_nos WHERE serial_no = $1 FOR UPDATE`, serialNo))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get serial no for update: %w", err)
	}
	return s, nil
}

// Create persiste un nuevo número de serie.
func (r *SerialNoRepo) Create(ctx context.Context, s *entity.SerialNo) error {
	query := `
		INSERT INTO serial_nos (
			serial_no, item_code, company, warehouse, status, maintenance_status,
			item_name, item_group, description, brand, warranty_period,
			warranty_expiry_date, amc_expiry_date,
			purchase_document_type, purchase_document_no, purchase_date, purchase_time, purchase_rate,
			supplier, supplier_name,
			delivery_document_type, delivery_document_no, delivery_date, delivery_time,
			customer, customer_name, created_at, updated_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, NULLIF($6, ''),
			$7, $8, $9, $10, $11,
			$12, $13,
			NULLIF($14, ''), NULLIF($15, ''), $16, NULLIF($17, '')::time, $18,
			NULLIF($19, ''), NULLIF($20, ''),
			NULLIF($21, ''), NULLIF($22, ''), $23, NULLIF($24, '')::time,
			NULLIF($25, ''), NULLIF($26, ''), now(), now())`
	_, err := r.q.Exec(ctx, query,
		s.SerialNo, s.ItemCode, s.Company, s.Warehouse, s.Status, s.MaintenanceStatus,
		s.ItemName, s.ItemGroup, s.Description, s.Brand, s.WarrantyPeriod,
		s.WarrantyExpiryDate, s.AMCExpiryDate,
		s.PurchaseDocumentType, s.PurchaseDocumentNo, s.PurchaseDate, s.PurchaseTime, s.PurchaseRate,
		s.Supplier, s.SupplierName,
		s.DeliveryDocumentType, s.DeliveryDocumentNo, s.DeliveryDate, s.DeliveryTime,
		s.Customer, s.CustomerName,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert serial no: %w", err)
	}
	return nil
}

// Update reescribe todos los campos derivados del número de serie.
func (r *SerialNoRepo) Update(ctx context.Context, s *entity.SerialNo) error {
	query := `
		UPDATE serial_nos SET
			item_code = $2, company = $3, warehouse = NULLIF($4, ''), status = $5,
			maintenance_status = NULLIF($6, ''),
			item_name = $7, item_group = $8, description = $9, brand = $10, warranty_period = $11,
			warranty_expiry_date = $12, amc_expiry_date = $13,
			purchase_document_type = NULLIF($14, ''), purchase_document_no = NULLIF($15, ''),
			purchase_date = $16, purchase_time = NULLIF($17, '')::time, purchase_rate = $18,
			supplier = NULLIF($19, ''), supplier_name = NULLIF($20, ''),
			delivery_document_type = NULLIF($21, ''), delivery_document_no = NULLIF($22, ''),
			delivery_date = $23, delivery_time = NULLIF($24, '')::time,
			customer = NULLIF($25, ''), customer_name = NULLIF($26, ''),
			updated_at = now()
		WHERE serial_no = $1`
	cmd, err := r.q.Exec(ctx, query,
		s.SerialNo, s.ItemCode, s.Company, s.Warehouse, s.Status, s.MaintenanceStatus,
		s.ItemName, s.ItemGroup, s.Description, s.Brand, s.WarrantyPeriod,
		s.WarrantyExpiryDate, s.AMCExpiryDate,
		s.PurchaseDocumentType, s.PurchaseDocumentNo, s.PurchaseDate, s.PurchaseTime, s.PurchaseRate,
		s.Supplier, s.SupplierName,
		s.DeliveryDocumentType, s.DeliveryDocumentNo, s.DeliveryDate, s.DeliveryTime,
		s.Customer, s.CustomerName,
	)
	if err != nil {
		return fmt.Errorf("update serial no: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateWarehouse actualiza solo la bodega; warehouse vacío = NULL.
func (r *SerialNoRepo) UpdateWarehouse(ctx context.Context, serialNo, warehouse string) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE serial_nos SET warehouse = NULLIF($2, ''), updated_at = now() WHERE serial_no = $1`,
		serialNo, warehouse)
	if err != nil {
		return fmt.Errorf("update serial no warehouse: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina el número de serie.
func (r *SerialNoRepo) Delete(ctx context.Context, serialNo string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM serial_nos WHERE serial_no = $1`, serialNo)
	if err != nil {
		return fmt.Errorf("delete serial no: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Rename cambia la clave del número de serie.
func (r *SerialNoRepo) Rename(ctx context.Context, oldSerialNo, newSerialNo string) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE serial_nos SET serial_no = $2, updated_at = now() WHERE serial_no = $1`,
		oldSerialNo, newSerialNo)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("rename serial no: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
