// Package services contains server-side business logic. This file implements
// UserService, which handles registration, login, and issuing identity JWTs.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/skorolev/taskkeeper/internal/common"
	"github.com/skorolev/taskkeeper/internal/dbx"
	"github.com/skorolev/taskkeeper/internal/server/auth"
	"github.com/skorolev/taskkeeper/internal/server/config"
	"github.com/skorolev/taskkeeper/internal/server/models"
	"github.com/skorolev/taskkeeper/internal/server/repositories/repomanager"
)

// UserService provides authentication-related operations:
// - Register: create users and mint their first token
// - Login: verify credentials and mint tokens
type UserService struct {
	db                          *sql.DB
	repomanager                 repomanager.RepositoryManager
	jwtSecret                   []byte
	signingMethod               jwt.SigningMethod
	accessTokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server
// config. The signing method is resolved and validated at startup, before
// this constructor runs.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, method jwt.SigningMethod) *UserService {
	return &UserService{
		db:                          db,
		repomanager:                 m,
		jwtSecret:                   []byte(cfg.SecretKey),
		signingMethod:               method,
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
	}
}

// Register creates a new user and returns a signed access token for it.
// A taken email yields common.ErrorAlreadyExists. The raw and hashed
// passwords never appear in return values or logs.
func (s *UserService) Register(ctx context.Context, email, password, fullName, imageURL string) (string, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return "", fmt.Errorf("%w: hashing password: %v", common.ErrorInternal, err)
	}

	user := &models.User{Email: email, FullName: fullName, ImageURL: imageURL, HashedPassword: hash}

	var created *models.User
	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		_, err := repo.GetByEmail(ctx, email)
		if err == nil {
			return common.ErrorAlreadyExists
		}
		if !errors.Is(err, common.ErrorNotFound) {
			return fmt.Errorf("%w: looking up user: %v", common.ErrorInternal, err)
		}

		// The unique constraint still backs this up under concurrency.
		created, err = repo.Create(ctx, user)
		return err
	}); err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return "", common.ErrorAlreadyExists
		}
		if errors.Is(err, common.ErrorInternal) {
			return "", err
		}
		return "", fmt.Errorf("%w: creating user: %v", common.ErrorInternal, err)
	}

	return s.issueToken(created)
}

// Login verifies the provided password against the stored hash and, on
// success, returns a new access token. An unknown email and a wrong password
// are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorInvalidCredentials
		}
		return "", fmt.Errorf("%w: looking up user: %v", common.ErrorInternal, err)
	}

	if !auth.CheckPassword(password, user.HashedPassword) {
		return "", common.ErrorInvalidCredentials
	}

	return s.issueToken(user)
}

func (s *UserService) issueToken(user *models.User) (string, error) {
	claims := auth.Claims{
		UserID:   user.ID,
		Email:    user.Email,
		FullName: user.FullName,
		ImageURL: user.ImageURL,
	}
	token, err := auth.GenerateToken(claims, s.jwtSecret, s.signingMethod, s.accessTokenValidityDuration)
	if err != nil {
		return "", fmt.Errorf("%w: generating token: %v", common.ErrorInternal, err)
	}
	return token, nil
}
