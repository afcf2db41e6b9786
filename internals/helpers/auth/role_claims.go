// file: internals/helpers/auth/role_claims.go
package helperAuth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"pesantrenku_backend/internals/constants"
)

// Kunci c.Locals yang dihidrasi oleh middleware AuthJWT.
const (
	LocUserID     = "user_id"
	LocRoles      = "roles"
	LocActiveRole = "active_role"
)

// GetUserIDFromToken mengambil user_id (uuid) yang sudah dihidrasi middleware.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	switch v := c.Locals(LocUserID).(type) {
	case uuid.UUID:
		return v, nil
	case string:
		id, err := uuid.Parse(strings.TrimSpace(v))
		if err != nil {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "user_id pada token tidak valid")
		}
		return id, nil
	default:
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "user_id tidak ditemukan di token")
	}
}

// Roles mengembalikan seluruh role ter-otorisasi dari token (bisa kosong).
func Roles(c *fiber.Ctx) []string {
	switch v := c.Locals(LocRoles).(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	default:
		return nil
	}
}

// ActiveRole: role yang sedang dipakai caller (claim "active_role"),
// fallback ke role pertama pada daftar.
func ActiveRole(c *fiber.Ctx) string {
	if s, ok := c.Locals(LocActiveRole).(string); ok && s != "" {
		return s
	}
	if rs := Roles(c); len(rs) > 0 {
		return rs[0]
	}
	return ""
}

func HasRole(c *fiber.Ctx, role string) bool {
	for _, r := range Roles(c) {
		if strings.EqualFold(r, role) {
			return true
		}
	}
	return false
}

func HasAnyRole(c *fiber.Ctx, roles []string) bool {
	for _, r := range roles {
		if HasRole(c, r) {
			return true
		}
	}
	return false
}

func IsOwner(c *fiber.Ctx) bool      { return HasRole(c, constants.RoleOwner) }
func IsAdmin(c *fiber.Ctx) bool      { return HasRole(c, constants.RoleAdmin) }
func IsStaff(c *fiber.Ctx) bool      { return HasRole(c, constants.RoleStaff) }
func IsTeacher(c *fiber.Ctx) bool    { return HasRole(c, constants.RoleTeacher) }
func IsWaliAsrama(c *fiber.Ctx) bool { return HasRole(c, constants.RoleWaliAsrama) }
