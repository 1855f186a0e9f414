package service

import (
	"context"
	"errors"
	"fmt"

	"shop-backend/internal/events"
	"shop-backend/internal/hash"
	"shop-backend/internal/logging"
	"shop-backend/internal/models"
	"shop-backend/internal/repo"
	"shop-backend/internal/tokens"
	"shop-backend/internal/transport"
)

var (
	ErrEmailTaken = errors.New("User with this email already exists.")
	// ErrInvalidLogin covers a missing user, a missing credential and a bad
	// password alike. The caller never learns which one it was.
	ErrInvalidLogin = errors.New("Invalid email or password.")
	ErrUserNotFound = errors.New("User not found.")
)

type AuthService struct {
	Repo      *repo.GormRepo
	JWTSecret []byte
	Producer  *events.Producer
}

func (s *AuthService) Signup(ctx context.Context, req transport.SignupRequest) (string, error) {
	l := logging.FromContext(ctx).With("svc", "auth.signup")

	if _, err := s.Repo.GetUserByEmail(ctx, req.Email); err == nil {
		return "", ErrEmailTaken
	} else if !errors.Is(err, repo.ErrNotFound) {
		return "", err
	}

	pwHash, err := hash.HashPassword(req.Password)
	if err != nil {
		l.Error("signup_error", "status", 500, "reason", "cannot hash the password", "error", err)
		return "", err
	}

	user := models.User{Name: req.Name, Email: req.Email}
	if err := s.Repo.CreateUser(ctx, &user); err != nil {
		return "", err
	}

	cred := models.Credential{
		UserID:       user.ID,
		PasswordHash: pwHash,
		Role:         "user",
	}
	if err := s.Repo.CreateCredential(ctx, &cred); err != nil {
		return "", err
	}

	token, err := tokens.Issue(&user, cred.Role, s.JWTSecret)
	if err != nil {
		l.Error("signup_error", "status", 500, "reason", "cannot sign token", "error", err)
		return "", err
	}

	event := map[string]any{
		"type":   "user_registered",
		"userID": user.ID,
		"email":  user.Email,
	}
	if err := s.Producer.Publish(ctx, events.TopicUserEvents, fmt.Sprint(user.ID), event); err != nil {
		l.Error("kafka_publish_error", "error", err)
	}

	return token, nil
}

func (s *AuthService) Login(ctx context.Context, req transport.LoginRequest) (string, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login")

	user, err := s.Repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return "", ErrInvalidLogin
		}
		return "", err
	}

	cred, err := s.Repo.GetCredentialByUserID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return "", ErrInvalidLogin
		}
		return "", err
	}

	if !hash.CheckPassword(cred.PasswordHash, req.Password) {
		return "", ErrInvalidLogin
	}

	token, err := tokens.Issue(user, cred.Role, s.JWTSecret)
	if err != nil {
		l.Error("login_error", "status", 500, "reason", "cannot sign token", "error", err)
		return "", err
	}

	return token, nil
}

func (s *AuthService) Users(ctx context.Context) ([]models.User, error) {
	return s.Repo.GetUsers(ctx)
}

func (s *AuthService) User(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.Repo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) UpdateUserName(ctx context.Context, id uint, name string) (*models.User, error) {
	user, err := s.Repo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	user.Name = name
	if err := s.Repo.SaveUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) DeleteUser(ctx context.Context, id uint) error {
	if err := s.Repo.DeleteUser(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}
