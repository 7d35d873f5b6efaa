package services

import (
	"strings"

	"adminpanel/internal/domain"
	"adminpanel/internal/repos"
	"adminpanel/internal/validate"

	"github.com/google/uuid"
)

type GuestService struct {
	Guests *repos.GuestRepo
}

type GuestInput struct {
	Name  string
	Email string
	Bio   string
	Phone string
}

func (s *GuestService) List() ([]domain.Guest, error) {
	return s.Guests.List()
}

func (s *GuestService) Get(id string) (*domain.Guest, error) {
	g, err := s.Guests.ByID(id)
	if err != nil {
		return nil, storeErr(err)
	}
	return g, nil
}

func (s *GuestService) Create(in GuestInput) (*domain.Guest, error) {
	fe := validate.FieldErrors{}
	var ok bool
	if in.Name, ok = validate.Name(in.Name); !ok {
		fe["name"] = "Name is required and must be at most 255 characters"
	}
	if in.Email, ok = validate.Email(in.Email); !ok {
		fe["email"] = "A valid email address is required"
	} else if taken, err := s.Guests.EmailTaken(in.Email); err != nil {
		return nil, storeErr(err)
	} else if taken {
		fe["email"] = "Email is already in use"
	}
	// guest bio is uncapped free text; only the admin bio carries a limit
	in.Bio = strings.TrimSpace(in.Bio)
	if in.Phone, ok = validate.Phone(in.Phone); !ok {
		fe["phone"] = "Phone number must be at most 20 characters"
	}
	if len(fe) > 0 {
		return nil, fe
	}

	g := &domain.Guest{
		ID:    uuid.NewString(),
		Name:  in.Name,
		Email: in.Email,
		Bio:   in.Bio,
		Phone: in.Phone,
	}
	if err := s.Guests.Create(g); err != nil {
		return nil, storeErr(err)
	}
	return g, nil
}

// Update is deliberately laxer than Create: every field is optional and an
// empty form value keeps the stored one. A supplied email must still be
// well-formed and unused by any other guest.
func (s *GuestService) Update(id string, in GuestInput) (*domain.Guest, error) {
	g, err := s.Guests.ByID(id)
	if err != nil {
		return nil, storeErr(err)
	}

	fe := validate.FieldErrors{}
	if in.Name != "" {
		name, ok := validate.Name(in.Name)
		if !ok {
			fe["name"] = "Name must be at most 255 characters"
		} else {
			g.Name = name
		}
	}
	if in.Email != "" {
		email, ok := validate.Email(in.Email)
		if !ok {
			fe["email"] = "A valid email address is required"
		} else if taken, err := s.Guests.EmailTakenByOther(email, id); err != nil {
			return nil, storeErr(err)
		} else if taken {
			fe["email"] = "Email is already in use"
		} else {
			g.Email = email
		}
	}
	if in.Bio != "" {
		g.Bio = strings.TrimSpace(in.Bio)
	}
	if in.Phone != "" {
		phone, ok := validate.Phone(in.Phone)
		if !ok {
			fe["phone"] = "Phone number must be at most 20 characters"
		} else {
			g.Phone = phone
		}
	}
	if len(fe) > 0 {
		return nil, fe
	}

	if err := s.Guests.Update(g); err != nil {
		return nil, storeErr(err)
	}
	return g, nil
}

func (s *GuestService) Delete(id string) error {
	if _, err := s.Guests.ByID(id); err != nil {
		return storeErr(err)
	}
	return s.Guests.Delete(id)
}
