package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"communityevents/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

func TestRegistrationRepository_Create(t *testing.T) {
	ctx := context.Background()
	purchasedAt := time.Date(2024, 6, 10, 9, 30, 0, 0, time.UTC)
	phone := "0400 000 000"

	tests := []struct {
		name    string
		reg     *domain.Registration
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "success",
			reg: &domain.Registration{
				EventID:       1,
				PurchaserName: "Ada",
				Email:         "ada@example.com",
				Phone:         &phone,
				Tickets:       2,
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO registrations \(event_id, purchaser_name, email, phone, tickets\)`).
					WithArgs(int64(1), "Ada", "ada@example.com", phone, 2).
					WillReturnRows(sqlmock.NewRows([]string{"id", "purchase_datetime"}).AddRow(int64(10), purchasedAt))
			},
		},
		{
			name: "nil phone stored as null",
			reg: &domain.Registration{
				EventID:       1,
				PurchaserName: "Grace",
				Email:         "grace@example.com",
				Tickets:       1,
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO registrations`).
					WithArgs(int64(1), "Grace", "grace@example.com", nil, 1).
					WillReturnRows(sqlmock.NewRows([]string{"id", "purchase_datetime"}).AddRow(int64(11), purchasedAt))
			},
		},
		{
			name: "duplicate email for event",
			reg: &domain.Registration{
				EventID:       1,
				PurchaserName: "Ada",
				Email:         "ada@example.com",
				Tickets:       2,
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO registrations`).
					WillReturnError(&pq.Error{Code: pq.ErrorCode(pgUniqueViolation)})
			},
			wantErr: domain.ErrDuplicateRegistration,
		},
		{
			name: "event deleted concurrently",
			reg: &domain.Registration{
				EventID:       77,
				PurchaserName: "Ada",
				Email:         "ada@example.com",
				Tickets:       1,
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO registrations`).
					WillReturnError(&pq.Error{Code: pq.ErrorCode(pgForeignKeyViolation)})
			},
			wantErr: domain.ErrNotFound,
		},
		{
			name: "db error",
			reg: &domain.Registration{
				EventID:       1,
				PurchaserName: "Ada",
				Email:         "ada@example.com",
				Tickets:       1,
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO registrations`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: sql.ErrConnDone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewRegistrationRepository(db)
			err = repo.Create(ctx, tt.reg)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NotZero(t, tt.reg.ID)
			require.Equal(t, purchasedAt, tt.reg.PurchaseDatetime)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRegistrationRepository_ListByEventID(t *testing.T) {
	ctx := context.Background()
	earlier := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	later := time.Date(2024, 6, 5, 10, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`ORDER BY purchase_datetime DESC`).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "event_id", "purchaser_name", "email", "phone", "tickets", "purchase_datetime"}).
			AddRow(int64(2), int64(3), "Grace", "grace@example.com", nil, 1, later).
			AddRow(int64(1), int64(3), "Ada", "ada@example.com", "0400 000 000", 2, earlier))

	repo := NewRegistrationRepository(db)
	regs, err := repo.ListByEventID(ctx, 3)
	require.NoError(t, err)
	require.Len(t, regs, 2)
	require.Equal(t, "Grace", regs[0].PurchaserName)
	require.Nil(t, regs[0].Phone)
	require.Equal(t, "Ada", regs[1].PurchaserName)
	require.Equal(t, "0400 000 000", *regs[1].Phone)
	require.NoError(t, mock.ExpectationsWereMet())
}
