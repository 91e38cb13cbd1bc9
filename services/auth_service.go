package services

import (
	"context"
	"errors"
	"os"
	"time"

	"hotel-booking-backend/config"
	"hotel-booking-backend/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenRevoked       = errors.New("token revoked")
)

const denylistPrefix = "denylist:"

// Claims carried by every issued token.
type Claims struct {
	Username  string `json:"username"`
	IsManager bool   `json:"is_manager"`
	jwt.RegisteredClaims
}

type AuthService struct {
	DB *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db}
}

func jwtSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// Login verifies the password and issues a 24h HS256 token.
func (s *AuthService) Login(username, password string) (string, models.User, error) {
	var user models.User
	err := s.DB.Where("username = ? OR email = ?", username, username).First(&user).Error
	if err != nil {
		return "", user, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", user, ErrInvalidCredentials
	}

	now := time.Now()
	claims := Claims{
		Username:  user.Username,
		IsManager: user.IsManager,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(24 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(jwtSecret())
	if err != nil {
		return "", user, err
	}
	return signed, user, nil
}

// ParseToken validates the signature and expiry and returns the claims.
func ParseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtSecret(), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// Logout denylists the token until it would have expired. Without redis this
// is a no-op; the token simply ages out.
func (s *AuthService) Logout(ctx context.Context, tokenString string) error {
	claims, err := ParseToken(tokenString)
	if err != nil {
		return err
	}
	if config.Redis == nil {
		zap.L().Warn("logout without redis; token not revoked", zap.String("jti", claims.ID))
		return nil
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	return config.Redis.Set(ctx, denylistPrefix+claims.ID, "1", ttl).Err()
}

// IsRevoked reports whether the token id was denylisted by a logout.
func IsRevoked(ctx context.Context, jti string) bool {
	if config.Redis == nil || jti == "" {
		return false
	}
	n, err := config.Redis.Exists(ctx, denylistPrefix+jti).Result()
	if err != nil {
		zap.L().Warn("denylist check failed", zap.Error(err))
		return false
	}
	return n > 0
}
