package services

import (
	"adminpanel/internal/domain"
	"adminpanel/internal/media"
	"adminpanel/internal/repos"
	"adminpanel/internal/validate"
)

type ProfileService struct {
	Admins *repos.AdminRepo
	Media  *media.Store
}

type ProfileInput struct {
	Name    string
	Bio     string
	Picture *media.Upload
}

// Update edits the logged-in admin's row. A replacement picture deletes the
// previous blob before the new one is written; this is the only entity that
// cleans up old blobs.
func (s *ProfileService) Update(adminID string, in ProfileInput) (*domain.Admin, error) {
	fe := validate.FieldErrors{}
	name, ok := validate.Name(in.Name)
	if !ok {
		fe["name"] = "Name is required and must be at most 255 characters"
	}
	bio, ok := validate.Bio(in.Bio)
	if !ok {
		fe["bio"] = "Bio must be at most 1000 characters"
	}
	if in.Picture != nil {
		if _, ok := validate.Picture(in.Picture.Name, in.Picture.Size); !ok {
			fe["picture"] = "Picture must be a jpeg, png, jpg or gif of at most 2048 KB"
		}
	}
	if len(fe) > 0 {
		return nil, fe
	}

	a, err := s.Admins.ByID(adminID)
	if err != nil {
		return nil, storeErr(err)
	}

	a.Name = name
	a.Bio = bio
	if in.Picture != nil {
		if a.Picture != "" {
			if err := s.Media.Delete(a.Picture); err != nil {
				return nil, err
			}
		}
		path, err := s.Media.Save(*in.Picture)
		if err != nil {
			return nil, err
		}
		a.Picture = path
	}
	// Row update and blob write are separate steps; a crash in between can
	// leave a blob without a row reference.
	if err := s.Admins.Update(a); err != nil {
		return nil, storeErr(err)
	}
	return a, nil
}
