package handlers

import (
	"adminpanel/internal/media"
	"adminpanel/internal/repos"
	"adminpanel/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	ProfileHandler *ProfileHandler
	UserHandler    *UserHandler
	GuestHandler   *GuestHandler
}

func NewDeps(db *sqlx.DB, store *media.Store, auth *services.AuthService) *Deps {
	userRepo := repos.NewUserRepo(db)
	guestRepo := repos.NewGuestRepo(db)

	profileSvc := &services.ProfileService{Admins: auth.Admins, Media: store}
	userSvc := &services.UserService{Users: userRepo, Media: store}
	guestSvc := &services.GuestService{Guests: guestRepo}

	return &Deps{
		ProfileHandler: &ProfileHandler{Profile: profileSvc},
		UserHandler:    &UserHandler{Users: userSvc},
		GuestHandler:   &GuestHandler{Guests: guestSvc},
	}
}
