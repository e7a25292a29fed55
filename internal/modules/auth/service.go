package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"malaeb/internal/domain"
	"malaeb/internal/notification"
	"malaeb/internal/repository"
)

type jwtService interface {
	GenerateToken(userID int64, role string) (string, error)
}

type Service struct {
	users         UserRepositoryInterface
	jwt           jwtService
	mailer        Mailer
	notifier      Notifier
	pepper        string
	resetTokenTTL time.Duration
}

func NewService(
	users UserRepositoryInterface,
	jwt jwtService,
	mailer Mailer,
	notifier Notifier,
	pepper string,
	resetTokenTTL time.Duration,
) *Service {
	return &Service{
		users:         users,
		jwt:           jwt,
		mailer:        mailer,
		notifier:      notifier,
		pepper:        pepper,
		resetTokenTTL: resetTokenTTL,
	}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	token := uuid.NewString()
	now := time.Now()

	user := &domain.User{
		Email:           email,
		PasswordHash:    string(hash),
		Name:            req.Name,
		Phone:           req.Phone,
		Role:            domain.RoleUser,
		PreferredLocale: domain.ParseLocale(req.PreferredLocale),
		EmailVerified:   false,
		IsActive:        true,
		VerifyTokenHash: s.hashToken(token),
		VerifySentAt:    &now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	if err := s.mailer.Send(user.Email, "Verify your email",
		fmt.Sprintf("Your verification token: %s", token)); err != nil {
		slog.Warn("verification mail failed", "user_id", user.ID, "error", err)
	}

	if err := s.notifyAdminsUserCreated(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// notifyAdminsUserCreated fans a user_created notification out to every
// active admin, composed in all three platform languages.
func (s *Service) notifyAdminsUserCreated(ctx context.Context, user *domain.User) error {
	admins, err := s.users.ListActiveAdmins(ctx)
	if err != nil {
		return err
	}

	link := fmt.Sprintf("/dashboard/users/%d", user.ID)
	actorID := user.ID

	for _, admin := range admins {
		_, err := s.notifier.Create(ctx, notification.CreateInput{
			UserID:          admin.ID,
			RecipientLocale: admin.PreferredLocale,
			ActorUserID:     &actorID,
			Type:            notification.TypeUserCreated,
			Model:           notification.ModelUser,
			ReferenceID:     user.ID,
			TitleEn:         "New user registered",
			TitleFr:         "Nouvel utilisateur inscrit",
			TitleAr:         "مستخدم جديد مسجل",
			MessageEn:       fmt.Sprintf("%s just created an account", user.Name),
			MessageFr:       fmt.Sprintf("%s vient de créer un compte", user.Name),
			MessageAr:       fmt.Sprintf("أنشأ %s حسابًا جديدًا", user.Name),
			Link:            &link,
			Metadata:        map[string]any{"email": user.Email},
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.EmailVerified {
		return nil, ErrEmailNotVerified
	}
	if !user.IsActive {
		return nil, ErrAccountDisabled
	}

	token, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		Token: token,
		User: UserResponse{
			ID:              user.ID,
			Email:           user.Email,
			Name:            user.Name,
			Role:            string(user.Role),
			PreferredLocale: string(user.PreferredLocale),
			EmailVerified:   user.EmailVerified,
		},
	}, nil
}

func (s *Service) VerifyEmail(ctx context.Context, email, token string) error {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if errors.Is(err, repository.ErrUserNotFound) {
		return ErrInvalidToken
	}
	if err != nil {
		return err
	}

	if user.VerifyTokenHash == "" || user.VerifyTokenHash != s.hashToken(token) {
		return ErrInvalidToken
	}

	user.EmailVerified = true
	user.VerifyTokenHash = ""
	return s.users.Update(ctx, user)
}

// RequestPasswordReset never reveals whether the email exists.
func (s *Service) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	token := uuid.NewString()
	expires := time.Now().Add(s.resetTokenTTL)
	user.ResetTokenHash = s.hashToken(token)
	user.ResetExpiresAt = &expires

	if err := s.users.Update(ctx, user); err != nil {
		return err
	}

	if err := s.mailer.Send(user.Email, "Reset your password",
		fmt.Sprintf("Your password reset token: %s", token)); err != nil {
		slog.Warn("reset mail failed", "user_id", user.ID, "error", err)
	}
	return nil
}

func (s *Service) ResetPassword(ctx context.Context, email, token, newPassword string) error {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if errors.Is(err, repository.ErrUserNotFound) {
		return ErrInvalidToken
	}
	if err != nil {
		return err
	}

	if user.ResetTokenHash == "" || user.ResetTokenHash != s.hashToken(token) {
		return ErrInvalidToken
	}
	if user.ResetExpiresAt == nil || time.Now().After(*user.ResetExpiresAt) {
		return ErrInvalidToken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.PasswordHash = string(hash)
	user.ResetTokenHash = ""
	user.ResetExpiresAt = nil
	return s.users.Update(ctx, user)
}

func (s *Service) hashToken(token string) string {
	sum := sha256.Sum256([]byte(token + s.pepper))
	return hex.EncodeToString(sum[:])
}
