package registration

import (
	"errors"

	registrationerrors "github.com/canfinancialsolutions/can-registration-app/internal/registration/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// mapStorageError converts a raw insert failure into the storage error the
// envelope reports. Postgres errors use the server's own message rather than
// the full driver string.
func mapStorageError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return registrationerrors.StorageFailed(err, pgErr.Message)
	}

	return registrationerrors.StorageFailed(err, err.Error())
}
