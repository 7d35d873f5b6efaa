package handlers

import (
	"errors"

	"adminpanel/internal/domain"
	applog "adminpanel/internal/log"
	"adminpanel/internal/services"
	"adminpanel/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type ProfileHandler struct {
	Profile *services.ProfileService
}

func profilePage(c *fiber.Ctx, fe validate.FieldErrors, name, bio string) error {
	return render(c, "profile", fiber.Map{
		"Errors": fe,
		"Form":   fiber.Map{"Name": name, "Bio": bio},
	})
}

// GET /admin/dashboard
func (h *ProfileHandler) Dashboard(c *fiber.Ctx) error {
	return render(c, "dashboard", fiber.Map{})
}

// GET /admin/profile
func (h *ProfileHandler) Show(c *fiber.Ctx) error {
	admin, _ := c.Locals("admin").(*domain.Admin)
	if admin == nil {
		return c.Redirect("/login")
	}
	return profilePage(c, validate.FieldErrors{}, admin.Name, admin.Bio)
}

// POST /admin/profile
func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	admin, _ := c.Locals("admin").(*domain.Admin)
	if admin == nil {
		return c.Redirect("/login")
	}

	in := services.ProfileInput{
		Name: c.FormValue("name"),
		Bio:  c.FormValue("bio"),
	}

	up, done, err := formUpload(c, "picture")
	if err != nil {
		applog.Error(c, "profile.update.fail", err, nil)
		return profilePage(c.Status(fiber.StatusBadRequest),
			validate.FieldErrors{"picture": "Could not read the uploaded file"}, in.Name, in.Bio)
	}
	defer done()
	in.Picture = up

	updated, err := h.Profile.Update(admin.ID, in)
	if err != nil {
		var fe validate.FieldErrors
		if errors.As(err, &fe) {
			// re-render with what was submitted so nothing typed is lost
			return profilePage(c.Status(fiber.StatusBadRequest), fe, in.Name, in.Bio)
		}
		applog.Error(c, "profile.update.fail", err, nil)
		return profilePage(c.Status(fiber.StatusInternalServerError),
			validate.FieldErrors{"form": "Could not save the profile. Please try again."}, in.Name, in.Bio)
	}
	applog.Audit(c, "profile.update", map[string]any{"admin": updated.ID})
	return c.Redirect("/admin/profile")
}
