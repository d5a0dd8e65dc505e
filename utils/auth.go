package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/WanderstayHolidays/crm_end/config"
	"github.com/WanderstayHolidays/crm_end/models"

	"github.com/dgrijalva/jwt-go"
)

var jwtSecret = []byte(config.LoadConfig().JWTKey)

// HashPassword hashes a password with sha256.
func HashPassword(password string) string {
	hash := sha256.Sum256([]byte(password))
	return hex.EncodeToString(hash[:])
}

// VerifyPassword checks a password against its stored hash.
func VerifyPassword(password string, hashedPassword string) bool {
	return HashPassword(password) == hashedPassword
}

// GenerateToken creates a signed session token for a profile.
func GenerateToken(user models.Profile) (string, error) {
	Logger.Info().
		Str("_id", user.ID.Hex()).
		Str("email", user.Email).
		Str("role", string(user.Role)).
		Msg("generating token")

	claims := jwt.MapClaims{
		"id":    user.ID.Hex(),
		"email": user.Email,
		"name":  user.FullName,
		"role":  string(user.Role),
		"exp":   time.Now().Add(time.Hour * 24 * 30).Unix(), // 30 day sessions
		"iat":   time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(jwtSecret)
	if err != nil {
		Logger.Error().Err(err).Msg("token signing failed")
		return "", err
	}

	return tokenString, nil
}

// ParseToken parses and validates a session token.
func ParseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtSecret, nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// IsAdmin reports whether the role carries admin capability.
func IsAdmin(role string) bool {
	return role == string(models.UserRoleADMIN)
}

// CanManageInquiry reports whether the caller may update the inquiry's status:
// admins always, advisors only on inquiries assigned to them.
func CanManageInquiry(user *LoginUser, assignedTo string) bool {
	if user == nil {
		return false
	}
	if IsAdmin(user.Role) {
		return true
	}
	return user.Role == string(models.UserRoleTRAVEL_ADVISOR) && assignedTo == user.ID
}
