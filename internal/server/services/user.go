package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/guptaRishi00/waflow/internal/common"
	"github.com/guptaRishi00/waflow/internal/dbx"
	"github.com/guptaRishi00/waflow/internal/server/auth"
	"github.com/guptaRishi00/waflow/internal/server/config"
	"github.com/guptaRishi00/waflow/internal/server/models"
	"github.com/guptaRishi00/waflow/internal/server/repositories/repomanager"
	"github.com/guptaRishi00/waflow/internal/shared"
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// UserService handles login, token refresh, logout and the staff directory.
type UserService struct {
	db                           *sql.DB
	repomanager                  repomanager.RepositoryManager
	jwtSecret                    []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                           db,
		repomanager:                  m,
		jwtSecret:                    []byte(cfg.SecretKey),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
	}
}

// Login verifies the credentials and issues a token pair.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, *TokenPair, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil, common.ErrorUnauthorized
		}
		return nil, nil, common.ErrorInternal
	}

	if bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)) != nil {
		return nil, nil, common.ErrorUnauthorized
	}

	pair, err := s.generateTokenPair(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	return user, pair, nil
}

// RefreshToken rotates a refresh token: the old one is revoked and a new
// pair is issued in the same transaction.
func (s *UserService) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	repo := s.repomanager.RefreshTokens(s.db)

	token, err := repo.Find(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("error searching refresh token: %w", err)
	}

	if token.Expires.Before(time.Now()) {
		return nil, common.ErrRefreshTokenExpired
	}

	user, err := s.repomanager.Users(s.db).GetByID(ctx, token.UserID)
	if err != nil {
		return nil, fmt.Errorf("error loading user: %w", err)
	}

	var tokenPair *TokenPair

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.RefreshTokens(tx).Delete(ctx, refreshToken); err != nil {
			return fmt.Errorf("error deleting refresh token: %w", err)
		}

		tokenPair, err = s.generateTokenPairTx(ctx, tx, user)
		if err != nil {
			return fmt.Errorf("error generating token pair: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return tokenPair, nil
}

// Logout revokes the refresh token. Revoking an unknown token is a no-op.
func (s *UserService) Logout(ctx context.Context, refreshToken string) error {
	return s.repomanager.RefreshTokens(s.db).Delete(ctx, refreshToken)
}

// CreateCustomer registers a new customer account. Staff only.
func (s *UserService) CreateCustomer(ctx context.Context, actor Actor, user *models.User, password string) (*models.User, error) {
	if !actor.IsStaff() {
		return nil, common.ErrorForbidden
	}

	if user.Email == "" || password == "" {
		return nil, common.ErrorValidation
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user.Role = models.RoleCustomer
	user.PasswordHash = hash

	created, err := s.repomanager.Users(s.db).Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return created, nil
}

// GetByID loads a user profile. Customers may only load themselves.
func (s *UserService) GetByID(ctx context.Context, actor Actor, id string) (*models.User, error) {
	if !actor.IsStaff() && actor.ID != id {
		return nil, common.ErrorForbidden
	}
	return s.repomanager.Users(s.db).GetByID(ctx, id)
}

// ListByRole returns the directory for one role. Staff only.
func (s *UserService) ListByRole(ctx context.Context, actor Actor, role models.Role) ([]*models.User, error) {
	if !actor.IsStaff() {
		return nil, common.ErrorForbidden
	}
	return s.repomanager.Users(s.db).ListByRole(ctx, role)
}

func (s *UserService) generateTokenPair(ctx context.Context, user *models.User) (*TokenPair, error) {
	return s.generateTokenPairTx(ctx, s.db, user)
}

func (s *UserService) generateTokenPairTx(ctx context.Context, db dbx.DBTX, user *models.User) (*TokenPair, error) {
	accessToken, err := auth.GenerateToken(user.ID, string(user.Role), s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, err
	}

	refreshToken, err := shared.MakeRandHexString(32)
	if err != nil {
		return nil, err
	}

	if err := s.repomanager.RefreshTokens(db).Create(ctx, user.ID, refreshToken, s.refreshTokenValidityDuration); err != nil {
		return nil, err
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
