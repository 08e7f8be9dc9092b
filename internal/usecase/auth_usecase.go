package usecase

import (
	"context"

	"applyo/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignupInput defines the data required to register a new account.
type SignupInput struct {
	Email    string
	Password string
	FullName string
	UserType entity.UserType
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string
	Password string
	UserType entity.UserType
}

// ChangePasswordInput defines the data required to change a password.
type ChangePasswordInput struct {
	UserID          uuid.UUID
	CurrentPassword string
	NewPassword     string
}

// --- Output DTOs ---

// SignupOutput returns the newly created account's basic information.
type SignupOutput struct {
	User *entity.User
}

// TokenPairOutput returns the generated tokens after login or refresh.
type TokenPairOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// AuthUsecase defines the interface for account and session operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Signup registers a candidate or company account.
	Signup(ctx context.Context, input SignupInput) (*SignupOutput, error)

	// Login verifies credentials and mints an access/refresh token pair. The
	// access token is the identity token the gateway later verifies.
	Login(ctx context.Context, input LoginInput) (*TokenPairOutput, error)

	// Refresh rotates the refresh token and mints a fresh pair.
	Refresh(ctx context.Context, refreshToken string) (*TokenPairOutput, error)

	// Logout invalidates the stored refresh token.
	Logout(ctx context.Context, userID uuid.UUID) error

	// ChangePassword verifies the current password and replaces it. All
	// sessions are invalidated by clearing the stored refresh token hash.
	ChangePassword(ctx context.Context, input ChangePasswordInput) error
}
