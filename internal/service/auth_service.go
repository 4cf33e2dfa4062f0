package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"study_buddy_backend/internal/config"
	"study_buddy_backend/internal/model"
	"study_buddy_backend/internal/repository"
	"study_buddy_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
)

// PasswordCost bcrypt 工作因子
const PasswordCost = 10

type AuthService struct {
	UserRepo *repository.UserRepository
	Cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Cfg:      cfg,
	}
}

// Register 创建用户并签发令牌；邮箱已存在返回 util.ErrEmailRegistered
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*model.User, string, error) {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(email) == "" || password == "" {
		return nil, "", fmt.Errorf("%w: All fields are required", util.ErrValidation)
	}

	_, err := s.UserRepo.FindByEmail(ctx, email)
	if err == nil {
		return nil, "", util.ErrEmailRegistered
	} else if !errors.Is(err, util.ErrUserNotFound) {
		return nil, "", err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		return nil, "", err
	}

	user := &model.User{
		UUIDBase: model.UUIDBase{ID: model.GenerateUUID()},
		Name:     username,
		Email:    email,
		Password: string(hashedPassword),
	}
	if err := s.UserRepo.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.TTL)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.UserRepo.FindByEmail(ctx, email)
	if errors.Is(err, util.ErrUserNotFound) {
		return nil, "", util.ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", util.ErrInvalidCredentials
	}

	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.TTL)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *AuthService) GetUser(ctx context.Context, id string) (*model.User, error) {
	return s.UserRepo.FindByID(ctx, id)
}
