package registration_test

import (
	"context"
	"errors"
	"testing"

	"github.com/canfinancialsolutions/can-registration-app/internal/registration"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	assert.NoError(t, err)

	return gormDB, mock
}

func TestRepository_Create(t *testing.T) {
	gormDB, mock := newMockDB(t)
	repo := registration.NewRepository(gormDB)

	reg := &registration.Registration{
		Status:        registration.StatusNew,
		InterestType:  "client",
		FirstName:     "Jane",
		LastName:      "Doe",
		Phone:         "555",
		Email:         "jane@doe.co",
		PreferredDays: []string{"Monday"},
		PreferredTime: []string{"AM"},
		ReferredBy:    "friend",
	}

	id := uuid.New()
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "client_registrations"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(id.String()))
	mock.ExpectCommit()

	err := repo.Create(context.Background(), reg)

	assert.NoError(t, err)
	assert.Equal(t, id, reg.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_Error(t *testing.T) {
	gormDB, mock := newMockDB(t)
	repo := registration.NewRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "client_registrations"`).
		WillReturnError(errors.New("relation does not exist"))
	mock.ExpectRollback()

	err := repo.Create(context.Background(), &registration.Registration{Status: registration.StatusNew})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "relation does not exist")
	assert.NoError(t, mock.ExpectationsWereMet())
}
