package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"communityevents/internal/domain"
)

// SQLSTATE codes the registration insert can surface.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

type registrationRepository struct {
	DB *sql.DB
}

func NewRegistrationRepository(db *sql.DB) domain.RegistrationRepository {
	return &registrationRepository{
		DB: db,
	}
}

// Create inserts the registration. The database assigns id and
// purchase_datetime; the (event_id, email) uniqueness constraint and the
// event foreign key arbitrate races with concurrent writes.
func (r *registrationRepository) Create(ctx context.Context, reg *domain.Registration) error {
	query := `
		INSERT INTO registrations (event_id, purchaser_name, email, phone, tickets)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, purchase_datetime
	`
	err := r.DB.QueryRowContext(ctx, query, reg.EventID, reg.PurchaserName, reg.Email, nullableString(reg.Phone), reg.Tickets).
		Scan(&reg.ID, &reg.PurchaseDatetime)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch string(pqErr.Code) {
			case pgUniqueViolation:
				return domain.ErrDuplicateRegistration
			case pgForeignKeyViolation:
				return domain.ErrNotFound
			}
		}
		return err
	}
	return nil
}

func (r *registrationRepository) ListByEventID(ctx context.Context, eventID int64) ([]*domain.Registration, error) {
	query := `
		SELECT id, event_id, purchaser_name, email, phone, tickets, purchase_datetime
		FROM registrations
		WHERE event_id = $1
		ORDER BY purchase_datetime DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	regs := make([]*domain.Registration, 0)
	for rows.Next() {
		reg := &domain.Registration{}
		var phone sql.NullString
		if err := rows.Scan(&reg.ID, &reg.EventID, &reg.PurchaserName, &reg.Email, &phone, &reg.Tickets, &reg.PurchaseDatetime); err != nil {
			return nil, err
		}
		reg.Phone = nullString(phone)
		regs = append(regs, reg)
	}
	return regs, rows.Err()
}
