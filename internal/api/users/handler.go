package users

import (
	"net/http"
	"time"

	"marketplace-admin/database"
	"marketplace-admin/internal/domain/users"

	"github.com/gin-gonic/gin"
)

type AdminUser struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	UserType  string    `json:"user_type"`
	Status    string    `json:"status"`
	City      *string   `json:"city,omitempty"`
	Country   *string   `json:"country,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// GET /users
func ListUsers(c *gin.Context) {
	q := database.DB.Order("created_at DESC")
	if userType := c.Query("userType"); userType != "" {
		q = q.Where("user_type = ?", userType)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var list []users.User
	if err := q.Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}

	result := make([]AdminUser, 0, len(list))
	for _, u := range list {
		result = append(result, AdminUser{
			ID:        u.ID,
			Name:      u.Name,
			Email:     u.Email,
			Phone:     u.Phone,
			UserType:  u.UserType,
			Status:    u.Status,
			City:      u.City,
			Country:   u.Country,
			CreatedAt: u.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, result)
}

// GET /users/:id
func GetUser(c *gin.Context) {
	var u users.User
	if err := database.DB.First(&u, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, u)
}
