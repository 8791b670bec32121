package customer

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"strings"
	"time"

	"github.com/mousa-mostafa/capitone-Furniture/internal/currency"
	"github.com/mousa-mostafa/capitone-Furniture/internal/domain"
	sessionrepo "github.com/mousa-mostafa/capitone-Furniture/internal/repository/session"
)

// The storefront's single privileged account. This is a demo gate, not an
// authentication boundary: there is no password storage and no user database.
const (
	adminEmail    = "admin@capitone.com"
	adminPassword = "123456"
)

// Service issues and validates storefront sessions: anonymous guest sessions
// for carts, and user sessions created by login/registration.
type Service struct {
	sessions   sessionrepo.Repository
	sessionTTL time.Duration
}

func New(sessions sessionrepo.Repository, sessionTTL time.Duration) *Service {
	if sessionTTL <= 0 {
		sessionTTL = 12 * time.Hour
	}
	return &Service{sessions: sessions, sessionTTL: sessionTTL}
}

// RegisterInput mirrors the registration form. All fields are required.
type RegisterInput struct {
	FirstName   string         `json:"firstName"`
	LastName    string         `json:"lastName"`
	Email       string         `json:"email"`
	Phone       string         `json:"phone"`
	Country     domain.Country `json:"country"`
	Governorate string         `json:"governorate"`
	Password    string         `json:"password"`
}

// LoginInput mirrors the login form: email and password only.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Anonymous issues a guest session so an unauthenticated visitor can hold a
// cart. Guests are priced in the base currency.
func (s *Service) Anonymous(ctx context.Context) (string, error) {
	return s.startSession(ctx, nil)
}

// Register creates a session for a newly registered user. Validation is
// required-field presence only.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*domain.User, string, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	switch {
	case email == "":
		return nil, "", errors.New("email required")
	case strings.TrimSpace(in.Password) == "":
		return nil, "", errors.New("password required")
	case strings.TrimSpace(in.FirstName) == "":
		return nil, "", errors.New("firstName required")
	case strings.TrimSpace(in.LastName) == "":
		return nil, "", errors.New("lastName required")
	case strings.TrimSpace(in.Phone) == "":
		return nil, "", errors.New("phone required")
	case strings.TrimSpace(in.Governorate) == "":
		return nil, "", errors.New("governorate required")
	}
	country := in.Country
	if country == "" {
		country = domain.CountryEgypt
	}

	user := &domain.User{
		FirstName:   strings.TrimSpace(in.FirstName),
		LastName:    strings.TrimSpace(in.LastName),
		Email:       email,
		Phone:       strings.TrimSpace(in.Phone),
		Country:     country,
		Governorate: strings.TrimSpace(in.Governorate),
		Currency:    currency.ForCountry(country).Code,
		IsAdmin:     isAdmin(email, in.Password),
	}
	token, err := s.startSession(ctx, user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login creates a session from email and password alone. Names default to
// placeholders the way the storefront form does; the country defaults to
// Egypt so pricing stays in base currency until the user registers properly.
func (s *Service) Login(ctx context.Context, in LoginInput) (*domain.User, string, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if email == "" {
		return nil, "", errors.New("email required")
	}
	if strings.TrimSpace(in.Password) == "" {
		return nil, "", errors.New("password required")
	}

	user := &domain.User{
		FirstName: "مستخدم",
		LastName:  "جديد",
		Email:     email,
		Country:   domain.CountryEgypt,
		Currency:  currency.Base.Code,
		IsAdmin:   isAdmin(email, in.Password),
	}
	token, err := s.startSession(ctx, user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Logout destroys the session. Unknown tokens are fine; the result is the
// same either way.
func (s *Service) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

// LookupByToken resolves a bearer token to its session.
func (s *Service) LookupByToken(ctx context.Context, token string) (*sessionrepo.Session, error) {
	sess, err := s.sessions.Get(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidToken
		}
		return nil, err
	}
	return sess, nil
}

func (s *Service) startSession(ctx context.Context, user *domain.User) (string, error) {
	token, err := randomToken()
	if err != nil {
		return "", err
	}
	sess := sessionrepo.Session{
		Token:     token,
		User:      user,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.sessions.Save(ctx, sess, s.sessionTTL); err != nil {
		return "", err
	}
	return token, nil
}

func isAdmin(email, password string) bool {
	return email == adminEmail && password == adminPassword
}

func randomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
