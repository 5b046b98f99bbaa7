package accounts

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"github.com/pulsewatch/pulsewatch/internal/auth"
	"github.com/pulsewatch/pulsewatch/internal/shared"
)

// These messages are part of the external contract and must not change.
var (
	ErrUserExists    = errors.New("User already exists")
	ErrUserNotFound  = errors.New("User does not exist!")
	ErrWrongPassword = errors.New("Password is incorrect!")
)

// bcryptCost is the fixed strength of all stored hashes.
const bcryptCost = 12

// Session is the result of a successful login.
type Session struct {
	UserID string
	Token  string
	// TokenExpiration is always 1 (hours). The token itself carries the
	// real expiry; this field mirrors the historical response contract.
	TokenExpiration int
}

type registerInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// Service wraps registration and authentication rules.
type Service struct {
	repo     Repository
	issuer   *auth.Issuer
	validate *validator.Validate
}

// NewService constructs a Service.
func NewService(repo Repository, issuer *auth.Issuer) *Service {
	return &Service{repo: repo, issuer: issuer, validate: validator.New()}
}

// HashPassword produces a salted bcrypt hash at the fixed cost.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether plaintext matches the stored hash.
func CheckPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

// Register creates a new account. The existence check answers the common
// case fast; the unique index on email is what actually guarantees
// uniqueness when two registrations race.
func (s *Service) Register(ctx context.Context, email, password string) (*Account, error) {
	input := registerInput{Email: email, Password: password}
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrValidation, err)
	}

	_, err := s.repo.FindByEmail(ctx, email)
	if err == nil {
		return nil, ErrUserExists
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}
	return s.repo.Insert(ctx, Account{Email: email, PasswordHash: hash})
}

// Login verifies credentials and issues a signed token. Unknown email and
// wrong password produce distinct messages, matching the documented
// contract.
func (s *Service) Login(ctx context.Context, email, password string) (*Session, error) {
	account, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if !CheckPassword(password, account.PasswordHash) {
		return nil, ErrWrongPassword
	}

	token, err := s.issuer.Issue(account.ID.Hex(), account.Email)
	if err != nil {
		return nil, err
	}
	return &Session{UserID: account.ID.Hex(), Token: token, TokenExpiration: 1}, nil
}
