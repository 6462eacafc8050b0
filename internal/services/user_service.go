package services

import (
	"context"
	"errors"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/kelly670/ROLLEROSE/internal/models"
	"github.com/kelly670/ROLLEROSE/internal/repositories"
	"github.com/kelly670/ROLLEROSE/utils"
)

const tokenTTL = 20 * time.Hour

type UserService struct {
	UserRepo *repositories.UserRepository
	Tokens   *utils.Manager
}

// SignIn checks the credentials and issues the access token the admin pages
// send on mutating requests. Unknown usernames and wrong passwords are
// indistinguishable to the caller.
func (s *UserService) SignIn(ctx context.Context, username, password string) (models.SignInResponse, error) {
	user, err := s.UserRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return models.SignInResponse{}, models.ErrInvalidCredentials
		}
		return models.SignInResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		log.Printf("Invalid password for user: %s", username)
		return models.SignInResponse{}, models.ErrInvalidCredentials
	}

	token, err := s.Tokens.NewJWT(user.ID, user.Role, tokenTTL)
	if err != nil {
		return models.SignInResponse{}, err
	}

	user.Password = ""
	return models.SignInResponse{
		Success: true,
		User:    user,
		Role:    user.Role,
		Token:   token,
	}, nil
}

func (s *UserService) RegisterAdmin(ctx context.Context, username, password string) (models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Username: username,
		Password: string(hashedPassword),
		Role:     "admin",
	}
	created, err := s.UserRepo.CreateUser(ctx, user)
	if err != nil {
		return models.User{}, err
	}
	created.Password = ""
	return created, nil
}

// SeedAdmin provisions the first admin account. Running it again resets the
// password, so it doubles as a recovery path.
func (s *UserService) SeedAdmin(ctx context.Context, username, password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.UserRepo.UpsertAdmin(ctx, username, string(hashedPassword))
}
