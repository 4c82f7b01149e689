package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"geo-attendance-backend/internal/model"
	"geo-attendance-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserInactive       = errors.New("user is inactive")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

type Claims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

type AuthUsecase struct {
	users  repository.UserRepository
	secret []byte
	ttl    time.Duration
	clock  Clock
}

func NewAuthUsecase(users repository.UserRepository, secret string, ttl time.Duration, clock Clock) *AuthUsecase {
	return &AuthUsecase{users: users, secret: []byte(secret), ttl: ttl, clock: clock}
}

func (u *AuthUsecase) Login(ctx context.Context, username, password string) (string, *model.User, error) {
	// 1. Cari user berdasarkan username
	user, err := u.users.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, fmt.Errorf("%w: load user: %w", ErrStorage, err)
	}

	// 2. Bandingkan password (input vs hash di DB)
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if !user.IsActive() {
		return "", nil, ErrUserInactive
	}

	// 3. Buat token JWT
	token, err := u.IssueToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (u *AuthUsecase) IssueToken(user *model.User) (string, error) {
	now := u.clock.Now()
	claims := Claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(u.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(u.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (u *AuthUsecase) Profile(ctx context.Context, userID uint) (*model.User, error) {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// ParseToken memvalidasi token HS256 dan mengembalikan claims-nya.
func ParseToken(secret, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
