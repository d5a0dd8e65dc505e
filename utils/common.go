package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

var phonePattern = regexp.MustCompile(`^\d{10}$`)

// IsValidPhone reports whether the value is exactly ten numeric digits.
func IsValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// IsBlank reports whether the value is empty after trimming whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// LoginUser is the authenticated caller extracted from the request context.
type LoginUser struct {
	ID    string `json:"id"`
	Role  string `json:"role"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// GetUser reads the authenticated user from the gin context.
func GetUser(c *gin.Context) (*LoginUser, error) {
	currentUser, exists := c.Get("user")
	if !exists {
		return nil, CreateUnauthorizedError()
	}

	var claims map[string]interface{}
	switch v := currentUser.(type) {
	case jwt.MapClaims:
		claims = make(map[string]interface{})
		for key, val := range v {
			claims[key] = val
		}
	case map[string]interface{}:
		claims = v
	default:
		// Fall back to a JSON round trip for anything else
		data, err := json.Marshal(currentUser)
		if err != nil {
			return nil, fmt.Errorf("serializing user claims: %v", err)
		}
		if err := json.Unmarshal(data, &claims); err != nil {
			return nil, fmt.Errorf("deserializing user claims: %v", err)
		}
	}

	id, ok := claims["id"].(string)
	if !ok {
		return nil, fmt.Errorf("invalid user id claim")
	}

	role, ok := claims["role"].(string)
	if !ok {
		return nil, fmt.Errorf("invalid user role claim")
	}

	name, _ := claims["name"].(string)
	email, _ := claims["email"].(string)

	return &LoginUser{
		ID:    id,
		Role:  role,
		Name:  name,
		Email: email,
	}, nil
}

// ListResponse writes a list envelope with a count.
func ListResponse(c *gin.Context, key string, data interface{}, count int) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		key:       data,
		"total":   count,
	})
}
