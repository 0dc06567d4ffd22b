package service

import (
	"context"
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	errorvalues "github.com/galacticx/engagement/internal/error_values"
	"github.com/galacticx/engagement/internal/repository"
	"github.com/galacticx/engagement/pkg/entity"
)

type UserService struct {
	repo repository.UsersRepositoryI
}

func NewUserService(usersRepo repository.UsersRepositoryI) *UserService {
	if usersRepo == nil {
		log.Fatal("on user service provided nil repo")
	}
	return &UserService{
		repo: usersRepo,
	}
}

func (us *UserService) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := us.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	return user, nil
}

func (us *UserService) SetUsername(ctx context.Context, id uuid.UUID, req *SetUsernameRequest) error {
	err := validate.Struct(*req)
	if err != nil {
		if validationError, ok := err.(validator.ValidationErrors); ok {
			err = errors.New("validation error: ")
			for _, fieldErr := range validationError {
				err = errors.Join(err, fieldErr)
			}
			return errors.Join(errorvalues.ErrUsernameInvalid, err)
		}
		return errors.New("validation unexpected error: " + err.Error())
	}
	err = us.repo.UpdateUsername(ctx, id, req.Username)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUsernameTaken), errors.Is(err, errorvalues.ErrUserNotFound):
			return err
		}
		return errors.New("repository updating error: " + err.Error())
	}
	return nil
}
