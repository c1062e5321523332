package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lehuy/speaktrack/internal/dto"
	"github.com/lehuy/speaktrack/internal/model"
	"github.com/lehuy/speaktrack/internal/repository"
	"github.com/rs/zerolog/log"
)

// UserService manages the practice accounts test sets are generated for.
// Authentication lives outside this service; it only owns account records.
type UserService interface {
	CreateUser(req dto.UserCreateDTO) (*dto.UserResponseDTO, error)
	GetAllUsers() ([]dto.UserResponseDTO, error)
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) CreateUser(req dto.UserCreateDTO) (*dto.UserResponseDTO, error) {
	user := model.User{
		Email: req.Email,
		Name:  req.Name,
	}
	if err := s.repo.Create(&user); err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("Failed to create user")
		return nil, fmt.Errorf("database error creating user: %w", err)
	}
	var resp dto.UserResponseDTO
	copier.Copy(&resp, &user)
	return &resp, nil
}

func (s *userService) GetAllUsers() ([]dto.UserResponseDTO, error) {
	users, err := s.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("error fetching users: %w", err)
	}
	var resp []dto.UserResponseDTO
	copier.Copy(&resp, &users)
	return resp, nil
}
