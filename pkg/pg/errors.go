package pg

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrFailedToOpenDBConnection = errors.New("failed to open db connection")
	ErrEmptyConnectionString    = errors.New("empty postgres connection string, use PG_CONN_URL env var")
	ErrHealthcheckFailed        = errors.New("healthcheck failed, connection is not available")
	ErrFailedToParseDBConfig    = errors.New("failed to parse db config")
	ErrFailedToApplyMigrations  = errors.New("failed to apply migrations")
	ErrMigrationsDirNotFound    = errors.New("migrations directory not found")
	ErrMigrationPathNotProvided = errors.New("migration path not provided")
)

// SQLSTATE codes the application reacts to.
const (
	CodeUniqueViolation           = "23505"
	CodeForeignKeyViolation       = "23503"
	CodeCheckViolation            = "23514"
	CodeNotNullViolation          = "23502"
	CodeInvalidTextRepresentation = "22P02"
	CodeInvalidDatetimeFormat     = "22007"
	CodeDatetimeFieldOverflow     = "22008"
)

// SQLState returns the SQLSTATE code carried by err, or "" when err does not
// wrap a *pgconn.PgError.
func SQLState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// IsNotFoundError reports zero-row results from both pgx and database/sql.
func IsNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows)
}

// IsTxClosedError detects attempts to use closed transactions.
func IsTxClosedError(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, pgx.ErrTxClosed) || errors.Is(err, sql.ErrTxDone)
}

// IsDuplicateKeyError detects unique constraint violations (SQLSTATE 23505).
func IsDuplicateKeyError(err error) bool {
	return SQLState(err) == CodeUniqueViolation
}

// IsForeignKeyViolationError detects references to missing rows (SQLSTATE 23503).
func IsForeignKeyViolationError(err error) bool {
	return SQLState(err) == CodeForeignKeyViolation
}

// IsCheckViolationError detects CHECK constraint failures such as a non-positive price.
func IsCheckViolationError(err error) bool {
	return SQLState(err) == CodeCheckViolation
}

// IsNotNullViolationError detects missing values for NOT NULL columns.
func IsNotNullViolationError(err error) bool {
	return SQLState(err) == CodeNotNullViolation
}

// IsInvalidInputError detects values postgres could not parse: malformed
// UUIDs, unknown enum labels and invalid dates.
func IsInvalidInputError(err error) bool {
	switch SQLState(err) {
	case CodeInvalidTextRepresentation, CodeInvalidDatetimeFormat, CodeDatetimeFieldOverflow:
		return true
	}
	return false
}
