package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/aulanova/aulanova-backend/internal/data/repos"
	"github.com/aulanova/aulanova-backend/internal/domain"
	"github.com/aulanova/aulanova-backend/internal/pkg/apperr"
	"github.com/aulanova/aulanova-backend/internal/pkg/logger"
)

type RegisterInput struct {
	Email    string
	Password string
	Name     string
}

type AuthService interface {
	RegisterUser(ctx context.Context, input RegisterInput) (*domain.User, error)
	LoginUser(ctx context.Context, email, password string) (string, *domain.User, error)
	ParseToken(tokenString string) (uuid.UUID, error)
	AccessTTL() time.Duration
}

type authService struct {
	db           *gorm.DB
	log          *logger.Logger
	users        repos.UserRepo
	jwtSecretKey string
	accessTTL    time.Duration
}

func NewAuthService(
	db *gorm.DB,
	baseLog *logger.Logger,
	users repos.UserRepo,
	jwtSecretKey string,
	accessTTL time.Duration,
) AuthService {
	return &authService{
		db:           db,
		log:          baseLog.With("service", "AuthService"),
		users:        users,
		jwtSecretKey: jwtSecretKey,
		accessTTL:    accessTTL,
	}
}

func (as *authService) RegisterUser(ctx context.Context, input RegisterInput) (*domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" {
		return nil, fmt.Errorf("%w: an email is required to register", apperr.ErrInvalidArgument)
	}
	if input.Password == "" {
		return nil, fmt.Errorf("%w: a password is required to register", apperr.ErrInvalidArgument)
	}

	exists, err := as.users.EmailExists(ctx, nil, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check user email: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: email is already in use", apperr.ErrInvalidArgument)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		ID:       uuid.New(),
		Email:    email,
		Password: string(hashed),
		Name:     strings.TrimSpace(input.Name),
		Status:   domain.UserStatusActive,
	}
	if err := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, cErr := as.users.Create(ctx, tx, []*domain.User{user})
		return cErr
	}); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	as.log.Info("User registered", "user_id", user.ID, "email", email)
	return user, nil
}

func (as *authService) LoginUser(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", nil, fmt.Errorf("%w: email and password are required to login", apperr.ErrInvalidArgument)
	}

	user, err := as.users.GetByEmail(ctx, nil, email)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return "", nil, fmt.Errorf("%w: invalid email or password", apperr.ErrInvalidArgument)
		}
		return "", nil, fmt.Errorf("failed to retrieve user by email: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, fmt.Errorf("%w: invalid email or password", apperr.ErrInvalidArgument)
	}

	token, err := as.generateAccessToken(user)
	if err != nil {
		return "", nil, err
	}
	as.log.Info("User logged in", "user_id", user.ID)
	return token, user, nil
}

func (as *authService) generateAccessToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": user.ID.String(),
		"iat": now.Unix(),
		"exp": now.Add(as.accessTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(as.jwtSecretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return signed, nil
}

// ParseToken validates the signature and expiry and returns the subject
// user ID.
func (as *authService) ParseToken(tokenString string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return []byte(as.jwtSecretKey), nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, fmt.Errorf("%w: invalid access token", apperr.ErrInvalidArgument)
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, fmt.Errorf("%w: invalid token claims", apperr.ErrInvalidArgument)
	}
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid token subject", apperr.ErrInvalidArgument)
	}
	return userID, nil
}

func (as *authService) AccessTTL() time.Duration { return as.accessTTL }
