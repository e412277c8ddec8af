package service

import (
	"errors"

	"ddplanner_backend/internal/config"
	"ddplanner_backend/internal/model"
	"ddplanner_backend/internal/repository"
	"ddplanner_backend/internal/util"
	"ddplanner_backend/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const bcryptCost = 12

type AuthService struct {
	UserRepo *repository.UserRepository
	SubRepo  *repository.SubscriptionRepository
	Config   *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, subRepo *repository.SubscriptionRepository, cfg *config.Config) *AuthService {
	return &AuthService{UserRepo: userRepo, SubRepo: subRepo, Config: cfg}
}

func (s *AuthService) Register(name, email, password string) (*model.User, error) {
	exists, err := s.UserRepo.ExistsByEmail(email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, util.ErrEmailRegistered
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
	}
	if err := s.UserRepo.Create(user); err != nil {
		return nil, err
	}

	logger.Log.Info("user registered", zap.String("email", email))
	return user, nil
}

func (s *AuthService) Login(email, password string) (string, *model.User, error) {
	user, err := s.UserRepo.FindByEmail(email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, util.ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}

	if user.Disabled {
		return "", nil, util.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, util.ErrInvalidCredentials
	}

	token, err := util.GenerateJWT(user, s.Config.JWT.Secret, s.Config.JWT.ExpireTime)
	if err != nil {
		return "", nil, err
	}

	if err := s.UserRepo.TouchLastLogin(user.ID); err != nil {
		logger.Log.Warn("failed to record login time", zap.Uint("user_id", user.ID), zap.Error(err))
	}

	return token, user, nil
}

// Profile returns the user with their subscription history.
func (s *AuthService) Profile(userID uint) (*model.User, []*model.Subscription, error) {
	user, err := s.UserRepo.FindByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, util.ErrUserNotFound
	}
	if err != nil {
		return nil, nil, err
	}

	subs, err := s.SubRepo.FindByUserID(userID)
	if err != nil {
		return nil, nil, err
	}

	return user, subs, nil
}

// ChangePassword verifies the current password before replacing it.
func (s *AuthService) ChangePassword(userID uint, current, next string) error {
	user, err := s.UserRepo.FindByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrUserNotFound
	}
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(current)); err != nil {
		return util.ErrInvalidCredentials
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(next), bcryptCost)
	if err != nil {
		return err
	}
	user.Password = string(hashed)

	if err := s.UserRepo.Update(user); err != nil {
		return err
	}

	logger.Log.Info("password changed", zap.Uint("user_id", userID))
	return nil
}

// HasActiveSubscription gates plan features behind a valid
// subscription.
func (s *AuthService) HasActiveSubscription(userID uint) (bool, error) {
	_, err := s.SubRepo.FindActiveByUserID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
