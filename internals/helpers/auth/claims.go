// file: internals/helpers/auth/claims.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

/* ============================================
   Locals Keys (middleware should set these)
   ============================================ */

const (
	LocUserID         = "user_id"          // string UUID
	LocActiveSchoolID = "active_school_id" // string UUID
	LocRolesGlobal    = "roles_global"     // []string
	LocSchoolRoles    = "school_roles"     // []SchoolRolesEntry
	LocIsOwner        = "is_owner"         // bool
)

type SchoolRolesEntry struct {
	SchoolID uuid.UUID `json:"school_id"`
	Roles    []string  `json:"roles"`
}

/* ============================================
   Claim readers
   ============================================ */

func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	s, _ := c.Locals(LocUserID).(string)
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "user_id ausente no token")
	}
	return id, nil
}

// GetSchoolIDFromToken lê o escopo de escola ativo da sessão.
func GetSchoolIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	s, _ := c.Locals(LocActiveSchoolID).(string)
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "escopo de escola ausente no token")
	}
	return id, nil
}

func IsOwner(c *fiber.Ctx) bool {
	b, _ := c.Locals(LocIsOwner).(bool)
	return b
}

func rolesForSchool(c *fiber.Ctx, schoolID uuid.UUID) []string {
	entries, _ := c.Locals(LocSchoolRoles).([]SchoolRolesEntry)
	for _, e := range entries {
		if e.SchoolID == schoolID {
			return e.Roles
		}
	}
	return nil
}

func hasRole(roles []string, want ...string) bool {
	for _, r := range roles {
		for _, w := range want {
			if strings.EqualFold(strings.TrimSpace(r), w) {
				return true
			}
		}
	}
	return false
}

// IsSchoolAdmin: admin ou teacher na escola ativa (staff do editor).
func IsSchoolAdmin(c *fiber.Ctx, schoolID uuid.UUID) bool {
	if IsOwner(c) {
		return true
	}
	return hasRole(rolesForSchool(c, schoolID), "admin", "teacher")
}

// IsSchoolGuardian: responsável com vínculo na escola ativa.
func IsSchoolGuardian(c *fiber.Ctx, schoolID uuid.UUID) bool {
	return hasRole(rolesForSchool(c, schoolID), "guardian", "parent", "student")
}
