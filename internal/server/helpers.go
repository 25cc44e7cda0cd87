// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"errors"

	"devconnect/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper.  Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// currentUserID returns the authenticated user's ID set by AuthRequired.
func currentUserID(c *fiber.Ctx) uint {
	return c.Locals("userID").(uint)
}

// parsePostID extracts a post ID route parameter. A malformed or
// non-positive value is indistinguishable from a missing post, so it gets
// the same 404 the lookup would produce.
func (s *Server) parsePostID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Post not found"))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// parseUserID extracts a user ID route parameter for profile lookups. A
// malformed value reads as a profile that does not exist.
func (s *Server) parseUserID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewNotFoundError("Profile not found"))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// parseCommentID extracts a comment ID route parameter. Malformed values
// read as comments that do not exist.
func (s *Server) parseCommentID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Comment not found"))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// parseEntryID extracts an experience or education entry ID.
func (s *Server) parseEntryID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid ID"))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// statusForError maps an application error code to an HTTP status. Routes
// that need a legacy status for a given code handle it before calling this.
func statusForError(err error) int {
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case "NOT_FOUND":
			return fiber.StatusNotFound
		case "VALIDATION_ERROR":
			return fiber.StatusBadRequest
		case "CONFLICT":
			return fiber.StatusBadRequest
		case "UNAUTHORIZED":
			return fiber.StatusUnauthorized
		}
	}
	return fiber.StatusInternalServerError
}

// respondServiceError writes err with the status from statusForError.
func respondServiceError(c *fiber.Ctx, err error) error {
	return models.RespondWithError(c, statusForError(err), err)
}
