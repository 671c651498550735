package horse

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/FarrierBookingService/internal/domain"
	"github.com/m04kA/FarrierBookingService/pkg/dbmetrics"
	"github.com/m04kA/FarrierBookingService/pkg/psqlbuilder"
)

const (
	table = "horses"

	// foreignKeyViolation код ошибки PostgreSQL при нарушении внешнего ключа
	foreignKeyViolation = "23503"
)

// Repository репозиторий лошадей клиента
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create добавляет лошадь
func (r *Repository) Create(ctx context.Context, horse *domain.Horse) (*domain.Horse, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns("customer_id", "name", "breed", "birth_year", "notes").
		Values(horse.CustomerID, horse.Name, horse.Breed, horse.BirthYear, horse.Notes).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&horse.ID, &horse.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return horse, nil
}

// GetByID получает лошадь по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Horse, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "customer_id", "name", "breed", "birth_year", "notes", "created_at").
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var horse domain.Horse
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&horse.ID,
		&horse.CustomerID,
		&horse.Name,
		&horse.Breed,
		&horse.BirthYear,
		&horse.Notes,
		&horse.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrHorseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan horse: %v", ErrScanRow, err)
	}

	return &horse, nil
}

// GetByCustomerID получает лошадей клиента в порядке добавления
func (r *Repository) GetByCustomerID(ctx context.Context, customerID int64) ([]*domain.Horse, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "customer_id", "name", "breed", "birth_year", "notes", "created_at").
		From(table).
		Where(squirrel.Eq{"customer_id": customerID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomerID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomerID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	horses := make([]*domain.Horse, 0)
	for rows.Next() {
		var horse domain.Horse
		err := rows.Scan(
			&horse.ID,
			&horse.CustomerID,
			&horse.Name,
			&horse.Breed,
			&horse.BirthYear,
			&horse.Notes,
			&horse.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByCustomerID - scan row: %v", ErrScanRow, err)
		}
		horses = append(horses, &horse)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByCustomerID - rows error: %v", ErrScanRow, err)
	}

	return horses, nil
}

// Delete удаляет лошадь клиента
func (r *Repository) Delete(ctx context.Context, id, customerID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id, "customer_id": customerID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation {
			return ErrHorseInUse
		}
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrHorseNotFound
	}

	return nil
}
