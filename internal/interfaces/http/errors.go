package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/Pedidos-dashboard/internal/application/dto"
	"github.com/jhoicas/Pedidos-dashboard/internal/domain"
	"github.com/jhoicas/Pedidos-dashboard/internal/domain/entity"
)

var errInvalidQuery = fmt.Errorf("%w: parámetros de consulta inválidos", domain.ErrInvalidInput)

// LocalError guarda el error interno de la petición para RequestLogger.
const LocalError = "handler_error"

// respondError traduce errores de dominio a HTTP. Los errores no previstos
// responden 500 sin detalle y quedan en Locals para el log.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidRange),
		errors.Is(err, domain.ErrInvalidOwner):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: err.Error()})
	}
	c.Locals(LocalError, err)
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}

// ── Alcance por propietario ──────────────────────────────────────────────────

// ownerScope decide sobre qué propietario se consulta.
//
//   - admin: global, o el owner_id de la query si viene (debe ser UUID).
//   - otro rol con scoped=true (estadísticas): su propio user_id.
//   - otro rol con scoped=false (tableros): global; owner_id se ignora.
func ownerScope(c *fiber.Ctx, requested string, scoped bool) (string, error) {
	if GetRole(c) == entity.RoleAdmin {
		if requested == "" {
			return "", nil
		}
		id, err := uuid.Parse(requested)
		if err != nil {
			return "", domain.ErrInvalidOwner
		}
		return id.String(), nil
	}
	if !scoped {
		return "", nil
	}
	id, err := uuid.Parse(GetUserID(c))
	if err != nil {
		return "", domain.ErrUnauthorized
	}
	return id.String(), nil
}
