package postgres

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestCategoryRepository_List(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantLen int
		wantErr bool
	}{
		{
			name: "success ordered by name",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, name, slug\s+FROM categories\s+ORDER BY name ASC`).
					WillReturnRows(sqlmock.NewRows([]string{"id", "name", "slug"}).
						AddRow(int64(2), "Arts", "arts").
						AddRow(int64(1), "Sports", "sports"))
			},
			wantLen: 2,
		},
		{
			name: "db error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM categories`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewCategoryRepository(db)
			categories, err := repo.List(ctx)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Len(t, categories, tt.wantLen)
			require.Equal(t, "Arts", categories[0].Name)
			require.Equal(t, "sports", categories[1].Slug)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
