package middleware

import (
	"strings"

	"gorent/internal/models"
	"gorent/internal/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthRequired validates the bearer token and sets user_id and
// user_role on the request context.
func AuthRequired(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.UnauthorizedResponse(c, "authorization header required")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			utils.UnauthorizedResponse(c, "bearer token required")
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(tokenString, jwtSecret)
		if err != nil {
			utils.UnauthorizedResponse(c, utils.ErrInvalidToken)
			c.Abort()
			return
		}

		userID, err := primitive.ObjectIDFromHex(claims.UserID)
		if err != nil {
			utils.UnauthorizedResponse(c, utils.ErrInvalidToken)
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Set("user_role", claims.Role)

		c.Next()
	}
}

// AuthOptional resolves the bearer token when one is supplied but
// never rejects the request. Surfaces shared by guests and logged-in
// users sit behind it.
func AuthOptional(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if authHeader == "" || tokenString == authHeader {
			c.Next()
			return
		}

		claims, err := utils.ValidateToken(tokenString, jwtSecret)
		if err != nil {
			c.Next()
			return
		}

		if userID, err := primitive.ObjectIDFromHex(claims.UserID); err == nil {
			c.Set("user_id", userID)
			c.Set("user_role", claims.Role)
		}

		c.Next()
	}
}

// OwnerRequired ensures the caller's role is owner. The role string is
// normalized before comparison, so casing and whitespace in stored
// roles never lock an owner out.
func OwnerRequired() gin.HandlerFunc {
	return roleRequired(models.UserRoleOwner, utils.RedirectHome)
}

// RenterRequired ensures the caller's role is renter.
func RenterRequired() gin.HandlerFunc {
	return roleRequired(models.UserRoleRenter, utils.RedirectHome)
}

func roleRequired(role models.UserRole, redirect string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, exists := c.Get("user_role")
		if !exists {
			utils.UnauthorizedResponse(c, "")
			c.Abort()
			return
		}

		roleStr, ok := userRole.(string)
		if !ok || models.NormalizeRole(roleStr) != role {
			utils.ForbiddenResponse(c, string(role)+" access required", redirect)
			c.Abort()
			return
		}

		c.Next()
	}
}

// AdminRequired ensures the caller is an admin. Denials send the user
// to the login page rather than the home page.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, exists := c.Get("user_role")
		if !exists {
			utils.UnauthorizedResponse(c, "")
			c.Abort()
			return
		}

		roleStr, ok := userRole.(string)
		if !ok || models.NormalizeRole(roleStr) != models.UserRoleAdmin {
			utils.ForbiddenResponse(c, "admin access required", utils.RedirectLogin)
			c.Abort()
			return
		}

		c.Next()
	}
}
