package user

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/saulluiz/api-recipe-generator/domain"
	"github.com/saulluiz/api-recipe-generator/entities"
	"github.com/saulluiz/api-recipe-generator/internal/utils"
	"github.com/saulluiz/api-recipe-generator/internal/utils/mailing"
	"github.com/saulluiz/api-recipe-generator/pkg/jwt"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.UserResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		Me(ctx context.Context, userID string) (domain.UserResponse, error)
		VerifyEmail(ctx context.Context, token string) error
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
		hasher         PasswordHasher
		mailer         mailing.Mailer
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService, hasher PasswordHasher, mailer mailing.Mailer) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
		hasher:         hasher,
		mailer:         mailer,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.UserResponse, error) {
	if _, err := s.userRepository.GetByUsername(ctx, req.Username); err == nil {
		return domain.UserResponse{}, domain.ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.UserResponse{}, err
	}

	if _, err := s.userRepository.GetByEmail(ctx, req.Email); err == nil {
		return domain.UserResponse{}, domain.ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.UserResponse{}, err
	}

	hashed, err := s.hasher.Hash(req.Password)
	if err != nil {
		return domain.UserResponse{}, err
	}

	user := &entities.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hashed,
		FullName: req.FullName,
	}

	if err := s.userRepository.Create(ctx, user); err != nil {
		return domain.UserResponse{}, err
	}

	// Verification mail is best-effort, registration already succeeded.
	if err := s.sendVerificationMail(user); err != nil {
		log.Printf("failed to send verification mail to %s: %v", user.Email, err)
	}

	return toUserResponse(user), nil
}

func (s *userService) sendVerificationMail(user *entities.User) error {
	token, err := s.jwtService.GenerateMailToken(map[string]any{"email": user.Email}, 24*time.Hour)
	if err != nil {
		return err
	}

	link := fmt.Sprintf("%s/api/v1/auth/verify?token=%s", utils.GetConfig("APP_URL"), token)
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Confirm your email address by clicking <a href=%q>here</a>.</p>",
		user.FullName, link,
	)

	return s.mailer.Send(user.Email, "Verify your email", body)
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrInvalidCredentials
		}
		return domain.LoginResponse{}, err
	}

	if err := s.hasher.Compare(user.Password, req.Password); err != nil {
		return domain.LoginResponse{}, domain.ErrInvalidCredentials
	}

	token := s.jwtService.GenerateToken(user.ID.String(), user.Username, user.Email)

	return domain.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
	}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (domain.UserResponse, error) {
	user, err := s.userRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}

	return toUserResponse(user), nil
}

func (s *userService) VerifyEmail(ctx context.Context, token string) error {
	claims, err := s.jwtService.ValidateMailToken(token)
	if err != nil {
		return err
	}

	email, _ := claims["email"].(string)
	if email == "" {
		return domain.ErrTokenInvalid
	}

	user, err := s.userRepository.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	user.Verified = true
	return s.userRepository.Update(ctx, user)
}

func toUserResponse(user *entities.User) domain.UserResponse {
	return domain.UserResponse{
		ID:        user.ID.String(),
		Username:  user.Username,
		Email:     user.Email,
		FullName:  user.FullName,
		Verified:  user.Verified,
		CreatedAt: user.CreatedAt,
	}
}
