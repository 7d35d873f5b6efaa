package services

import (
	"adminpanel/internal/domain"
	"adminpanel/internal/repos"
	"adminpanel/internal/validate"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	Admins *repos.AdminRepo
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// Register creates a new admin account. It never logs the admin in; the
// caller sends them to the login form on success.
func (s *AuthService) Register(in RegisterInput) error {
	fe := validate.FieldErrors{}
	name, ok := validate.Name(in.Name)
	if !ok {
		fe["name"] = "Name is required and must be at most 255 characters"
	}
	email, ok := validate.Email(in.Email)
	if !ok {
		fe["email"] = "A valid email address is required"
	} else if taken, err := s.Admins.EmailTaken(email); err != nil {
		return storeErr(err)
	} else if taken {
		fe["email"] = "Email is already registered"
	}
	if !validate.RegisterPassword(in.Password) {
		fe["password"] = "Password must be at least 6 characters"
	}
	if len(fe) > 0 {
		return fe
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), 12)
	if err != nil {
		return err
	}
	a := &domain.Admin{
		ID:    uuid.NewString(),
		Name:  name,
		Email: email,
		Hash:  string(hash),
	}
	return storeErr(s.Admins.Create(a))
}

type LoginInput struct {
	Email    string
	Password string
}

// Login verifies credentials and binds the session id to the admin. Unknown
// email and wrong password both come back as ErrBadCreds.
func (s *AuthService) Login(sid string, in LoginInput) (*domain.Admin, error) {
	fe := validate.FieldErrors{}
	email, ok := validate.Email(in.Email)
	if !ok {
		fe["email"] = "A valid email address is required"
	}
	if !validate.LoginPassword(in.Password) {
		fe["password"] = "Password must be between 5 and 12 characters"
	}
	if len(fe) > 0 {
		return nil, fe
	}

	a, err := s.Admins.ByEmail(email)
	if err != nil {
		return nil, ErrBadCreds
	}
	if bcrypt.CompareHashAndPassword([]byte(a.Hash), []byte(in.Password)) != nil {
		return nil, ErrBadCreds
	}
	if err := s.Admins.BindSession(sid, a.ID); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AuthService) CurrentAdmin(sid string) (*domain.Admin, error) {
	a, err := s.Admins.SessionAdmin(sid)
	if err != nil {
		return nil, ErrNotAuthenticated
	}
	return a, nil
}

// Logout unbinds the session; unbinding an unknown or already-cleared
// session is a no-op.
func (s *AuthService) Logout(sid string) error {
	return s.Admins.UnbindSession(sid)
}
