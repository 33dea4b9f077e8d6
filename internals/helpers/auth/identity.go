// file: internals/helpers/auth/identity.go
package helperAuth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Locals keys hydrated by the JWT middleware.
const (
	LocUserID   = "user_id"
	LocTempleID = "temple_id"
	LocRoles    = "roles"
	LocUserName = "user_name"
)

// GetUserIDFromToken reads the acting administrator's id from c.Locals.
// Returns 401 when not logged in, 400 when it isn't a valid UUID.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	v := c.Locals(LocUserID)
	if v == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Not logged in")
	}

	switch t := v.(type) {
	case uuid.UUID:
		if t == uuid.Nil {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Not logged in")
		}
		return t, nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Not logged in")
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid user id in token")
		}
		return id, nil
	default:
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid user id in token")
	}
}

// GetTempleIDFromToken reads the active temple (tenant) scope. On public
// routes (no JWT locals) it falls back to the X-Temple-ID header.
func GetTempleIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	v := c.Locals(LocTempleID)
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		s = strings.TrimSpace(c.Get("X-Temple-ID"))
	}
	if strings.TrimSpace(s) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "No active temple in token")
	}
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid temple id in token")
	}
	return id, nil
}

// GetRolesFromToken returns the role tokens for the current user ([] when none).
func GetRolesFromToken(c *fiber.Ctx) []string {
	switch v := c.Locals(LocRoles).(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, it := range v {
			if s, ok := it.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// HasAnyRole reports whether the current user holds at least one of the roles.
func HasAnyRole(c *fiber.Ctx, roles ...string) bool {
	have := GetRolesFromToken(c)
	for _, want := range roles {
		for _, h := range have {
			if strings.EqualFold(h, want) {
				return true
			}
		}
	}
	return false
}
