package services

import (
	"errors"
	"strings"
	"time"

	"github.com/BETACRD01/delibery-sub000/entity"
	"github.com/BETACRD01/delibery-sub000/repository"
	"github.com/BETACRD01/delibery-sub000/utils"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles register/login and profile maintenance.
type AuthService struct {
	userRepo    *repository.UserRepository
	courierRepo *repository.CourierRepository
	jwtSecret   string
	jwtTTL      time.Duration
}

func NewAuthService(ur *repository.UserRepository, cr *repository.CourierRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{userRepo: ur, courierRepo: cr, jwtSecret: secret, jwtTTL: ttl}
}

type RegisterIn struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	// client | courier; providers are onboarded by an admin
	Role string `json:"role" binding:"omitempty,oneof=client courier"`
}

func (s *AuthService) Register(in *RegisterIn) (*entity.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	count, err := s.userRepo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("hash password failed")
	}

	role := in.Role
	if role == "" {
		role = "client"
	}

	user := &entity.User{
		Email:     email,
		Password:  string(hashed),
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Phone:     strings.TrimSpace(in.Phone),
		Role:      role,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	// couriers get a profile row up front so accept/availability work from
	// the first login
	if role == "courier" {
		if err := s.courierRepo.Upsert(&entity.Courier{UserID: user.ID}); err != nil {
			return nil, err
		}
	}
	return user, nil
}

func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return "", nil, errors.New("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, errors.New("invalid credentials")
	}

	token, err := utils.GenerateToken(user.ID, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}
	return token, user, nil
}

func (s *AuthService) GetProfile(userID uint) (*entity.User, error) {
	return s.userRepo.FindByID(userID)
}

func (s *AuthService) UpdateProfile(userID uint, updates map[string]any) (*entity.User, error) {
	// role and password change through their own endpoints only
	delete(updates, "role")
	delete(updates, "password")
	if err := s.userRepo.Update(userID, updates); err != nil {
		return nil, err
	}
	return s.userRepo.FindByID(userID)
}

func (s *AuthService) ChangePassword(userID uint, current, next string) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(current)); err != nil {
		return errors.New("invalid credentials")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return errors.New("hash password failed")
	}
	return s.userRepo.Update(userID, map[string]any{"password": string(hashed)})
}
