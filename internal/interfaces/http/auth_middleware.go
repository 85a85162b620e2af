package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/application/dto"
	"github.com/vai-sys/Backend-Engineering-intern-Case-study/pkg/jwt"
)

// Locals keys para UserID, CompanyID y Role en Fiber.
const (
	LocalUserID    = "user_id"
	LocalCompanyID = "company_id"
	LocalRole      = "role"
)

// AuthMiddleware valida el Bearer Token JWT y extrae UserID, CompanyID y Role
// a c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		userID, companyID, role, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalCompanyID, companyID)
		c.Locals(LocalRole, role)
		return c.Next()
	}
}

// RequireRole autoriza solo a los roles indicados. Debe ir después de
// AuthMiddleware en la cadena.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "token sin rol"})
		}
		for _, r := range roles {
			if role == r {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol sin permiso para esta operación"})
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetCompanyID devuelve el CompanyID del contexto (después del middleware de auth).
func GetCompanyID(c *fiber.Ctx) string {
	v := c.Locals(LocalCompanyID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRole devuelve el Role del contexto (después del middleware de auth).
func GetRole(c *fiber.Ctx) string {
	v := c.Locals(LocalRole)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
