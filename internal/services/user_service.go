package services

import (
	"adminpanel/internal/domain"
	"adminpanel/internal/media"
	"adminpanel/internal/repos"
	"adminpanel/internal/validate"

	"github.com/google/uuid"
)

type UserService struct {
	Users *repos.UserRepo
	Media *media.Store
}

type UserInput struct {
	Name    string
	Email   string
	Role    string
	Picture *media.Upload
}

func (s *UserService) List() ([]domain.User, error) {
	return s.Users.List()
}

func (s *UserService) Get(id string) (*domain.User, error) {
	u, err := s.Users.ByID(id)
	if err != nil {
		return nil, storeErr(err)
	}
	return u, nil
}

func (s *UserService) validateInput(in UserInput) (UserInput, validate.FieldErrors) {
	fe := validate.FieldErrors{}
	var ok bool
	if in.Name, ok = validate.Name(in.Name); !ok {
		fe["name"] = "Name is required and must be at most 255 characters"
	}
	if in.Email, ok = validate.Email(in.Email); !ok {
		fe["email"] = "A valid email address is required"
	}
	if in.Role, ok = validate.Role(in.Role); !ok {
		fe["role"] = "Role is required"
	}
	if in.Picture != nil {
		if _, ok := validate.Picture(in.Picture.Name, in.Picture.Size); !ok {
			fe["picture"] = "Picture must be a jpeg, png, jpg or gif of at most 2048 KB"
		}
	}
	return in, fe
}

func (s *UserService) Create(in UserInput) (*domain.User, error) {
	in, fe := s.validateInput(in)
	if _, dup := fe["email"]; !dup && in.Email != "" {
		taken, err := s.Users.EmailTaken(in.Email)
		if err != nil {
			return nil, storeErr(err)
		}
		if taken {
			fe["email"] = "Email is already in use"
		}
	}
	if len(fe) > 0 {
		return nil, fe
	}

	u := &domain.User{
		ID:    uuid.NewString(),
		Name:  in.Name,
		Email: in.Email,
		Role:  in.Role,
	}
	if in.Picture != nil {
		path, err := s.Media.Save(*in.Picture)
		if err != nil {
			return nil, err
		}
		u.Picture = path
	}
	if err := s.Users.Create(u); err != nil {
		return nil, storeErr(err)
	}
	return u, nil
}

// Update overwrites every field. The uniqueness probe excludes the row's own
// email so a self-update with an unchanged address succeeds. A replacement
// picture does not remove the old blob (unlike the admin profile).
func (s *UserService) Update(id string, in UserInput) (*domain.User, error) {
	u, err := s.Users.ByID(id)
	if err != nil {
		return nil, storeErr(err)
	}

	in, fe := s.validateInput(in)
	if _, dup := fe["email"]; !dup && in.Email != "" {
		taken, err := s.Users.EmailTakenByOther(in.Email, id)
		if err != nil {
			return nil, storeErr(err)
		}
		if taken {
			fe["email"] = "Email is already in use"
		}
	}
	if len(fe) > 0 {
		return nil, fe
	}

	u.Name = in.Name
	u.Email = in.Email
	u.Role = in.Role
	if in.Picture != nil {
		path, err := s.Media.Save(*in.Picture)
		if err != nil {
			return nil, err
		}
		u.Picture = path
	}
	if err := s.Users.Update(u); err != nil {
		return nil, storeErr(err)
	}
	return u, nil
}

// Delete removes the row only; an associated picture blob is left behind.
func (s *UserService) Delete(id string) error {
	if _, err := s.Users.ByID(id); err != nil {
		return storeErr(err)
	}
	return s.Users.Delete(id)
}
