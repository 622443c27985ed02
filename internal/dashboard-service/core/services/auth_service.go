package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"

	"delivery-track/internal/config"
	"delivery-track/internal/dashboard-service/core/domain/dto"
	"delivery-track/internal/dashboard-service/core/domain/model"
	"delivery-track/internal/dashboard-service/core/myerrors"
	"delivery-track/internal/dashboard-service/core/ports"
	"delivery-track/internal/mylogger"
)

type AuthService struct {
	cfg      *config.Config
	userRepo ports.IUserRepo
	mylog    mylogger.Logger
}

func NewAuthService(cfg *config.Config, userRepo ports.IUserRepo, mylog mylogger.Logger) *AuthService {
	return &AuthService{
		cfg:      cfg,
		userRepo: userRepo,
		mylog:    mylog,
	}
}

func (as *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (dto.AuthResponse, error) {
	mylog := as.mylog.Action("Register")

	hashedPassword, err := hashPassword(req.Password)
	if err != nil {
		return dto.AuthResponse{}, fmt.Errorf("failed to hash password: %v", err)
	}

	user, err := as.userRepo.Create(ctx, model.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashedPassword,
	})
	if err != nil {
		if errors.Is(err, myerrors.ErrEmailRegistered) {
			mylog.Warn("Failed to register, email already registered")
			return dto.AuthResponse{}, err
		}
		mylog.Error("Failed to save user in db", err)
		return dto.AuthResponse{}, fmt.Errorf("cannot save user in db: %w", err)
	}

	token, err := as.signToken(user)
	if err != nil {
		mylog.Error("error to create jwt token", err)
		return dto.AuthResponse{}, err
	}

	mylog.Info("User registered successfully", "user_id", user.ID)
	return dto.AuthResponse{
		Message: "user registered",
		Token:   token,
		User:    dto.UserInfo{ID: user.ID, Name: user.Name, Email: user.Email},
	}, nil
}

func (as *AuthService) Login(ctx context.Context, req dto.LoginRequest) (dto.AuthResponse, error) {
	mylog := as.mylog.Action("Login")

	user, err := as.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, myerrors.ErrUnknownEmail) {
			mylog.Warn("Failed to login, unknown email")
			return dto.AuthResponse{}, err
		}
		mylog.Error("Failed to load user from db", err)
		return dto.AuthResponse{}, fmt.Errorf("cannot load user from db: %w", err)
	}

	if !checkPassword(user.PasswordHash, req.Password) {
		mylog.Debug("Failed to login, password mismatch")
		return dto.AuthResponse{}, myerrors.ErrPasswordUnknown
	}

	token, err := as.signToken(user)
	if err != nil {
		mylog.Error("error to create jwt token", err)
		return dto.AuthResponse{}, err
	}

	mylog.Info("User login successfully", "user_id", user.ID)
	return dto.AuthResponse{
		Message: "login successful",
		Token:   token,
		User:    dto.UserInfo{ID: user.ID, Name: user.Name, Email: user.Email},
	}, nil
}

// ValidateToken checks the signature and expiry and returns the user id.
// Used by the websocket relay, which cannot rely on the HTTP middleware.
func (as *AuthService) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(as.cfg.App.JwtSecret), nil
	})
	if err != nil || !token.Valid {
		return "", myerrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", myerrors.ErrInvalidToken
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", myerrors.ErrInvalidToken
	}
	return userID, nil
}

func (as *AuthService) signToken(user model.User) (string, error) {
	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"exp":     time.Now().Add(time.Hour * TokenTTLHours).Unix(),
	})
	return accessToken.SignedString([]byte(as.cfg.App.JwtSecret))
}
