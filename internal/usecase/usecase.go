package usecase

import (
	"errors"
	"strings"

	"nextcare-api/internal/domain/entity"
	"nextcare-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrNotAuthorized is returned when the caller is neither the record owner nor an admin.
var ErrNotAuthorized = errors.New("not authorized")

func authorizeOwner(caller entity.Identity, ownerID uuid.UUID) error {
	if !caller.CanAccess(ownerID) {
		return ErrNotAuthorized
	}
	return nil
}

func requireAdmin(caller entity.Identity) error {
	if !caller.IsAdmin() {
		return ErrNotAuthorized
	}
	return nil
}

// requireAccount rejects a caller whose account was deleted after the token was issued.
func requireAccount(db *gorm.DB, userRepo repository.UserRepository, caller entity.Identity) error {
	user, err := userRepo.FindByID(db, caller.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrNotAuthorized
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// isDuplicateKeyError checks for a unique violation, either translated by gorm
// or as a raw PostgreSQL error whose constraint name contains constraintName.
func isDuplicateKeyError(err error, constraintName string) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}

// isForeignKeyError reports a write that references a row which no longer exists.
func isForeignKeyError(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var pgErr *pgconn.PgError
	// PostgreSQL error code 23503 = foreign_key_violation
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
