package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/temple-billing/internal/domain/enum"
	"github.com/sangkips/temple-billing/pkg/apperror"
)

// GetUserID extracts the user ID from the Gin context
func GetUserID(c *gin.Context) uint {
	return c.GetUint("user_id")
}

// GetUsername extracts the username from the Gin context
func GetUsername(c *gin.Context) string {
	return c.GetString("username")
}

// IsAdmin checks if the caller has the admin role
func IsAdmin(c *gin.Context) bool {
	return c.GetString("role") == enum.UserRoleAdmin.String()
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, apperror.NewBadRequestError("Invalid ID format")
	}
	return uint(id), nil
}
