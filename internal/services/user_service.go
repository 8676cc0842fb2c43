package services

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"

	"tripgoBack/internal/models"
	"tripgoBack/internal/repositories"
	"tripgoBack/utils"
)

type UserService struct {
	UserRepo     *repositories.UserRepository
	OTPRepo      *repositories.OTPRepository
	Mail         *MailService
	TokenManager *utils.Manager

	SigningKey      string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	ResetCodeTTL    time.Duration
	GoogleClientID  string
}

func GenerateResetCode() string {
	return fmt.Sprintf("%04d", rand.Intn(10000))
}

func (s *UserService) SignUp(ctx context.Context, user models.User) (models.SignUpResponse, error) {
	existingUser1, err := s.UserRepo.GetUserByEmail(ctx, user.Email)
	if err != nil {
		return models.SignUpResponse{}, err
	}
	if existingUser1.Email != "" {
		return models.SignUpResponse{}, models.ErrDuplicateEmail
	}

	if user.Phone != "" {
		existingUser2, err := s.UserRepo.GetUserByPhone(ctx, user.Phone)
		if err != nil {
			return models.SignUpResponse{}, err
		}
		if existingUser2.Phone != "" {
			return models.SignUpResponse{}, models.ErrDuplicatePhone
		}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.SignUpResponse{}, err
	}
	user.Password = string(hashedPassword)
	if user.Role == "" {
		user.Role = models.RoleClient
	}

	created, err := s.UserRepo.CreateUser(ctx, user)
	if err != nil {
		return models.SignUpResponse{}, err
	}

	accessToken, err := s.NewAccessToken(created.ID, created.Role)
	if err != nil {
		return models.SignUpResponse{}, err
	}
	tokens, err := s.CreateSession(ctx, created, accessToken)
	if err != nil {
		return models.SignUpResponse{}, err
	}

	created.Password = ""
	return models.SignUpResponse{User: created, Tokens: tokens}, nil
}

func (s *UserService) SignIn(ctx context.Context, email, password string) (models.Tokens, error) {
	user, err := s.UserRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return models.Tokens{}, err
	}
	if user.ID == 0 {
		log.Printf("User not found: %s", email)
		return models.Tokens{}, models.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		log.Printf("Invalid password for user: %s", email)
		return models.Tokens{}, models.ErrInvalidCredentials
	}

	accessToken, err := s.NewAccessToken(user.ID, user.Role)
	if err != nil {
		log.Printf("Error signing token: %v", err)
		return models.Tokens{}, err
	}

	tokens, err := s.CreateSession(ctx, user, accessToken)
	if err != nil {
		log.Printf("Error creating session: %v", err)
		return models.Tokens{}, err
	}

	return tokens, nil
}

func (s *UserService) NewAccessToken(userID int, role string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &models.Claims{
		UserID: uint(userID),
		Role:   role,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(s.AccessTokenTTL).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	})
	return token.SignedString([]byte(s.SigningKey))
}

func (s *UserService) CreateSession(ctx context.Context, user models.User, accessToken string) (models.Tokens, error) {
	var (
		res models.Tokens
		err error
	)

	res.AccessToken = accessToken

	res.RefreshToken = uuid.New().String()
	if s.TokenManager != nil {
		res.RefreshToken, err = s.TokenManager.NewRefreshToken()
		if err != nil {
			return res, err
		}
	}

	session := models.Session{
		UserID:       user.ID,
		Role:         user.Role,
		RefreshToken: res.RefreshToken,
		ExpiresAt:    time.Now().Add(s.RefreshTokenTTL),
	}

	err = s.UserRepo.SetSession(ctx, session)
	if err != nil {
		return res, err
	}

	return res, nil
}

// RefreshTokens exchanges a live refresh token for a fresh access token,
// rotating the refresh token in the process.
func (s *UserService) RefreshTokens(ctx context.Context, refreshToken string) (models.Tokens, error) {
	session, err := s.UserRepo.GetSessionByToken(ctx, refreshToken)
	if err != nil {
		return models.Tokens{}, err
	}
	if session.ExpiresAt.Before(time.Now()) {
		return models.Tokens{}, models.ErrSessionNotFound
	}

	accessToken, err := s.NewAccessToken(session.UserID, session.Role)
	if err != nil {
		return models.Tokens{}, err
	}

	user := models.User{ID: session.UserID, Role: session.Role}
	return s.CreateSession(ctx, user, accessToken)
}

// GoogleSignIn validates a Google ID token and signs the user in,
// creating the account on first sight of the email.
func (s *UserService) GoogleSignIn(ctx context.Context, rawIDToken string) (models.SignUpResponse, error) {
	payload, err := idtoken.Validate(ctx, rawIDToken, s.GoogleClientID)
	if err != nil {
		return models.SignUpResponse{}, models.ErrInvalidCredentials
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return models.SignUpResponse{}, models.ErrInvalidCredentials
	}

	user, err := s.UserRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return models.SignUpResponse{}, err
	}

	if user.ID == 0 {
		name, _ := payload.Claims["given_name"].(string)
		surname, _ := payload.Claims["family_name"].(string)

		// Google accounts get a random local password; sign-in stays on Google.
		randomPassword, err := bcrypt.GenerateFromPassword([]byte(uuid.New().String()), bcrypt.DefaultCost)
		if err != nil {
			return models.SignUpResponse{}, err
		}

		user, err = s.UserRepo.CreateUser(ctx, models.User{
			Name:     name,
			Surname:  surname,
			Email:    email,
			Password: string(randomPassword),
			Role:     models.RoleClient,
		})
		if err != nil {
			return models.SignUpResponse{}, err
		}
	}

	accessToken, err := s.NewAccessToken(user.ID, user.Role)
	if err != nil {
		return models.SignUpResponse{}, err
	}
	tokens, err := s.CreateSession(ctx, user, accessToken)
	if err != nil {
		return models.SignUpResponse{}, err
	}

	user.Password = ""
	return models.SignUpResponse{User: user, Tokens: tokens}, nil
}

func (s *UserService) SendResetCode(ctx context.Context, email string) error {
	user, err := s.UserRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user.ID == 0 {
		return models.ErrUserNotFound
	}

	code := GenerateResetCode()
	if err := s.OTPRepo.SetResetCode(ctx, email, code, s.ResetCodeTTL); err != nil {
		return err
	}

	if err := s.Mail.SendResetCode(email, code); err != nil {
		return fmt.Errorf("send reset code: %v", err)
	}
	return nil
}

func (s *UserService) VerifyResetCode(ctx context.Context, email, code string) error {
	stored, err := s.OTPRepo.GetResetCode(ctx, email)
	if err != nil {
		return err
	}
	if !CodesMatch(stored, code) {
		return models.ErrInvalidResetCode
	}
	return nil
}

// CodesMatch compares OTP codes in constant time.
func CodesMatch(stored, given string) bool {
	if len(stored) == 0 || len(stored) != len(given) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(given)) == 1
}

func (s *UserService) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	if err := s.VerifyResetCode(ctx, email, code); err != nil {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := s.UserRepo.UpdatePasswordByEmail(ctx, email, string(hashedPassword)); err != nil {
		return err
	}
	return s.OTPRepo.DeleteResetCode(ctx, email)
}

func (s *UserService) UpdatePassword(ctx context.Context, userID int, oldPassword, newPassword string) error {
	user, err := s.UserRepo.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)); err != nil {
		return models.ErrInvalidPassword
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.UserRepo.UpdatePassword(ctx, userID, string(hashedPassword))
}

func (s *UserService) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}
	user.Password = string(hashedPassword)
	return s.UserRepo.CreateUser(ctx, user)
}

func (s *UserService) GetUserByID(ctx context.Context, id int) (models.User, error) {
	return s.UserRepo.GetUserByID(ctx, id)
}

func (s *UserService) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	existing, err := s.UserRepo.GetUserByID(ctx, user.ID)
	if err != nil {
		return models.User{}, err
	}
	if user.Email != "" && user.Email != existing.Email {
		dup, err := s.UserRepo.GetUserByEmail(ctx, user.Email)
		if err != nil {
			return models.User{}, err
		}
		if dup.ID != 0 {
			return models.User{}, models.ErrDuplicateEmail
		}
	} else {
		user.Email = existing.Email
	}
	if user.Phone != "" && user.Phone != existing.Phone {
		dup, err := s.UserRepo.GetUserByPhone(ctx, user.Phone)
		if err != nil {
			return models.User{}, err
		}
		if dup.ID != 0 {
			return models.User{}, models.ErrDuplicatePhone
		}
	} else {
		user.Phone = existing.Phone
	}
	if user.Name == "" {
		user.Name = existing.Name
	}
	if user.Surname == "" {
		user.Surname = existing.Surname
	}
	if user.Role == "" {
		user.Role = existing.Role
	}
	if user.AvatarPath == nil {
		user.AvatarPath = existing.AvatarPath
	}
	return s.UserRepo.UpdateUser(ctx, user)
}

func (s *UserService) DeleteUser(ctx context.Context, id int) error {
	return s.UserRepo.DeleteUser(ctx, id)
}

func (s *UserService) GetUsersByRole(ctx context.Context, role string) ([]models.User, error) {
	users, err := s.UserRepo.GetUsersByRole(ctx, role)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, models.ErrUserNotFound
	}
	return users, nil
}

func (s *UserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return s.UserRepo.GetAllUsers(ctx)
}

func (s *UserService) UpdateUserAvatar(ctx context.Context, userID int, avatarPath string) (models.User, error) {
	return s.UserRepo.UpdateUserAvatar(ctx, userID, avatarPath)
}

func (s *UserService) UserLogOut(ctx context.Context, userID int) error {
	return s.UserRepo.DeleteSession(ctx, userID)
}
