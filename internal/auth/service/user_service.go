package service

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/arvndkumar/UserService/internal/auth/domain UserRepository,ResetTokenRepository,Notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/arvndkumar/UserService/internal/auth/domain"
	"github.com/arvndkumar/UserService/internal/auth/dto"
	autherror "github.com/arvndkumar/UserService/internal/errors"
	"github.com/arvndkumar/UserService/pkg/constant"
)

type UserService struct {
	repo         domain.UserRepository
	resetRepo    domain.ResetTokenRepository
	tokenService TokenGenerator
	notifier     domain.Notifier
	logger       *zap.Logger
}

func NewUserService(repo domain.UserRepository, resetRepo domain.ResetTokenRepository,
	tokenService TokenGenerator, notifier domain.Notifier, logger *zap.Logger) *UserService {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &UserService{
		repo:         repo,
		resetRepo:    resetRepo,
		tokenService: tokenService,
		notifier:     notifier,
		logger:       logger,
	}
}

func (s *UserService) Register(ctx context.Context, input dto.RegisterInput) (*domain.User, error) {
	existingUser, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, autherror.ErrEmailAlreadyInUse
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	user := &domain.User{
		ID:           uuid.New().String(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		RoleID:       constant.DefaultUserRoleID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*dto.TokenResponse, error) {
	user, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}

	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		return nil, autherror.ErrInvalidCredentials
	}

	return s.issueTokenPair(ctx, user)
}

// Refresh exchanges a still-valid refresh token for a fresh access+refresh
// pair. The spent token is revoked so it cannot authorize a second rotation.
func (s *UserService) Refresh(ctx context.Context, input dto.RefreshInput) (*dto.TokenResponse, error) {
	// One verification pass covers signature and expiry; the subject comes
	// out of the same parse.
	email, err := s.tokenService.ExtractSubject(input.RefreshToken)
	if err != nil {
		return nil, err
	}

	stored, err := s.repo.GetRefreshToken(ctx, input.RefreshToken)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, autherror.ErrRefreshTokenNotFound
	}
	if stored.Revoked {
		return nil, autherror.ErrRefreshTokenRevoked
	}
	if time.Now().After(stored.ExpiresAt) {
		return nil, autherror.ErrRefreshTokenExpired
	}

	// The account may have been removed after the token was issued.
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrUserNotFound
	}

	if err := s.repo.RevokeRefreshToken(ctx, stored.ID); err != nil {
		return nil, fmt.Errorf("failed to revoke token: %w", err)
	}

	return s.issueTokenPair(ctx, user)
}

func (s *UserService) issueTokenPair(ctx context.Context, user *domain.User) (*dto.TokenResponse, error) {
	accessToken, _, err := s.tokenService.GenerateAccessToken(user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExpiresAt, err := s.tokenService.GenerateRefreshToken(user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	rt := &domain.RefreshToken{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Token:     refreshToken,
		ExpiresAt: refreshExpiresAt,
		CreatedAt: time.Now(),
		Revoked:   false,
	}
	if err := s.repo.StoreRefreshToken(ctx, rt); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (s *UserService) GetProfile(ctx context.Context, email string) (*dto.UserOutput, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrUserNotFound
	}

	return toUserOutput(user), nil
}

func (s *UserService) UpdateProfile(ctx context.Context, email string, input dto.UpdateProfileInput) (*dto.UserOutput, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrUserNotFound
	}

	if input.Name != "" {
		if err := s.repo.UpdateName(ctx, email, input.Name); err != nil {
			return nil, err
		}
		user.Name = input.Name
	}

	return toUserOutput(user), nil
}

func (s *UserService) ChangePassword(ctx context.Context, email string, input dto.ChangePasswordInput) error {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return autherror.ErrUserNotFound
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.OldPassword)) != nil {
		return autherror.ErrOldPasswordMismatch
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.repo.UpdatePassword(ctx, email, string(hashedPassword))
}

// RequestPasswordReset persists a fresh single-use token for the account and
// publishes it for out-of-band delivery. A publish failure does not undo the
// persisted token.
func (s *UserService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return autherror.ErrUserNotFound
	}

	prt := &domain.PasswordResetToken{
		ID:        uuid.NewString(),
		Token:     uuid.NewString(),
		Email:     user.Email,
		ExpiresAt: time.Now().Add(constant.ResetTokenTTL),
	}

	if err := s.resetRepo.StoreResetToken(ctx, prt); err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}

	payload, err := json.Marshal(map[string]string{
		"email": prt.Email,
		"token": prt.Token,
	})
	if err == nil {
		err = s.notifier.Publish(ctx, constant.ResetNotificationTopic, payload)
	}
	if err != nil {
		s.logger.Warn("failed to publish password reset notification",
			zap.String("email", prt.Email), zap.Error(err))
	}

	return nil
}

// ConfirmPasswordReset consumes the token exactly once: an expired row is
// rejected but left in storage, and the delete+password update happen in one
// transaction in the repository.
func (s *UserService) ConfirmPasswordReset(ctx context.Context, token, newPassword string) error {
	prt, err := s.resetRepo.GetResetToken(ctx, token)
	if err != nil {
		return err
	}
	if prt == nil {
		return autherror.ErrInvalidResetToken
	}

	if prt.ExpiresAt.Before(time.Now()) {
		return autherror.ErrResetTokenExpired
	}

	user, err := s.repo.GetByEmail(ctx, prt.Email)
	if err != nil {
		return err
	}
	if user == nil {
		return autherror.ErrUserNotFound
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.resetRepo.ConsumeResetToken(ctx, prt.ID, prt.Email, string(hashedPassword))
}

func toUserOutput(user *domain.User) *dto.UserOutput {
	return &dto.UserOutput{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
