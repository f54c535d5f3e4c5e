package handler

import "github.com/gofiber/fiber/v3"

// Stable machine-readable rejection codes. Clients branch on these, so
// they never change even when messages do.
const (
	CodeValidationError   = "ValidationError"
	CodeNotFound          = "NotFound"
	CodeOutOfHours        = "OutOfHours"
	CodeSlotTaken         = "SlotTaken"
	CodeOutsideWindow     = "OutsideWindow"
	CodeIllegalTransition = "IllegalTransition"
	CodeUnavailable       = "Unavailable"
	CodeUnauthorized      = "Unauthorized"
	CodeInternal          = "Internal"
)

func ok(c fiber.Ctx, data any) error {
	return c.JSON(fiber.Map{"success": true, "data": data})
}

func created(c fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": data})
}

// okWith merges the payload fields into the envelope itself, for responses
// whose documented shape puts fields like slots or appointment_id at the
// top level next to success.
func okWith(c fiber.Ctx, fields fiber.Map) error {
	return c.JSON(envelope(fields))
}

func createdWith(c fiber.Ctx, fields fiber.Map) error {
	return c.Status(fiber.StatusCreated).JSON(envelope(fields))
}

func envelope(fields fiber.Map) fiber.Map {
	body := fiber.Map{"success": true}
	for k, v := range fields {
		body[k] = v
	}
	return body
}

func noContent(c fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

func fail(c fiber.Ctx, status int, code, msg string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": msg,
		"code":    code,
	})
}

func badRequest(c fiber.Ctx, msg string) error {
	return fail(c, fiber.StatusBadRequest, CodeValidationError, msg)
}

func unauthorized(c fiber.Ctx) error {
	return fail(c, fiber.StatusUnauthorized, CodeUnauthorized, "unauthorized")
}

func notFound(c fiber.Ctx, msg string) error {
	return fail(c, fiber.StatusNotFound, CodeNotFound, msg)
}

func conflict(c fiber.Ctx, code, msg string) error {
	return fail(c, fiber.StatusConflict, code, msg)
}

func unprocessable(c fiber.Ctx, code, msg string) error {
	return fail(c, fiber.StatusUnprocessableEntity, code, msg)
}

func serviceUnavailable(c fiber.Ctx, msg string) error {
	return fail(c, fiber.StatusServiceUnavailable, CodeUnavailable, msg)
}

func internalError(c fiber.Ctx) error {
	return fail(c, fiber.StatusInternalServerError, CodeInternal, "internal server error")
}
