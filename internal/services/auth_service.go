package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"platzistore/internal/apperrors"
	"platzistore/internal/models"
	"platzistore/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles sign-up, sign-in and token verification.
type AuthService struct {
	userRepo   repositories.UserRepository
	apiKeys    repositories.APIKeyRepository
	jwtSecret  []byte
	tokenDurat time.Duration // Duration for which JWT is valid
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, apiKeys repositories.APIKeyRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		apiKeys:    apiKeys,
		jwtSecret:  []byte(jwtSecret),
		tokenDurat: tokenTTL,
	}
}

type tokenClaims struct {
	Email  string   `json:"email"`
	Name   string   `json:"name"`
	Scopes []string `json:"scopes"`
	jwt.StandardClaims
}

// SignUp hashes the password, stores the user and returns the new id.
func (s *AuthService) SignUp(ctx context.Context, input models.SignUpInput) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:     input.Name,
		Email:    strings.ToLower(strings.TrimSpace(input.Email)),
		Password: string(hashedPassword),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return "", apperrors.Wrap("sign up", err)
	}
	return user.ID, nil
}

// SignIn checks the credentials and the API key, then issues a token carrying the key's scopes.
func (s *AuthService) SignIn(ctx context.Context, email, password, apiKeyToken string) (*models.SignInResult, error) {
	key, err := s.apiKeys.GetByToken(ctx, apiKeyToken)
	if err != nil {
		return nil, &apperrors.AuthenticationError{Reason: "invalid api key"}
	}

	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Do not reveal whether the email exists.
			return nil, &apperrors.AuthenticationError{Reason: "invalid credentials"}
		}
		return nil, apperrors.Wrap("sign in", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, &apperrors.AuthenticationError{Reason: "invalid credentials"}
	}

	token, err := s.IssueToken(models.Principal{
		Subject: user.ID,
		Email:   user.Email,
		Name:    user.Name,
		Scopes:  key.Scopes,
	})
	if err != nil {
		return nil, err
	}
	return &models.SignInResult{Token: token, User: *user}, nil
}

// IssueToken signs an HS256 token for principal that expires after the configured TTL.
func (s *AuthService) IssueToken(principal models.Principal) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		Email:  principal.Email,
		Name:   principal.Name,
		Scopes: principal.Scopes,
		StandardClaims: jwt.StandardClaims{
			Subject:   principal.Subject,
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(s.tokenDurat).Unix(),
		},
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}

// VerifyToken checks the signature and expiry of tokenString and returns its principal.
func (s *AuthService) VerifyToken(tokenString string) (*models.Principal, error) {
	claims := &tokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, &apperrors.AuthenticationError{Reason: "invalid token", Err: err}
	}
	if !token.Valid {
		return nil, &apperrors.AuthenticationError{Reason: "invalid token"}
	}
	if claims.ExpiresAt == 0 {
		return nil, &apperrors.AuthenticationError{Reason: "token has no expiry"}
	}

	return &models.Principal{
		Subject: claims.Subject,
		Email:   claims.Email,
		Name:    claims.Name,
		Scopes:  claims.Scopes,
	}, nil
}
