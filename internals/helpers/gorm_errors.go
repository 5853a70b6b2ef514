package helper

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// TranslateDBError maps storage errors onto the envelope statuses:
// missing row → 404, FK violation → 422 (referential integrity),
// unique violation → 409, unreachable DB → 503. Nothing is retried.
func TranslateDBError(err error, notFoundMsg string) *fiber.Error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusNotFound, notFoundMsg)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23503":
			return fiber.NewError(fiber.StatusUnprocessableEntity, "Referenced entity does not exist")
		case "23505":
			return fiber.NewError(fiber.StatusConflict, "Duplicate value violates a unique constraint")
		}
	}

	// Driver-agnostic fallback, same checks the raw message would show.
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "foreign key"):
		return fiber.NewError(fiber.StatusUnprocessableEntity, "Referenced entity does not exist")
	case strings.Contains(msg, "duplicate"), strings.Contains(msg, "unique"):
		return fiber.NewError(fiber.StatusConflict, "Duplicate value violates a unique constraint")
	case strings.Contains(msg, "connection refused"), strings.Contains(msg, "connection reset"):
		return fiber.NewError(fiber.StatusServiceUnavailable, "Storage engine unreachable")
	}

	return fiber.NewError(fiber.StatusInternalServerError, "Database error")
}
