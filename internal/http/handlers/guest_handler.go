package handlers

import (
	"errors"

	applog "adminpanel/internal/log"
	"adminpanel/internal/services"
	"adminpanel/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type GuestHandler struct {
	Guests *services.GuestService
}

func (h *GuestHandler) listPage(c *fiber.Ctx, status int, fe validate.FieldErrors, form fiber.Map) error {
	guests, err := h.Guests.List()
	if err != nil {
		applog.Error(c, "guests.list.fail", err, nil)
		return render(c.Status(fiber.StatusInternalServerError), "notfound", fiber.Map{"Message": "Could not load guests"})
	}
	if form == nil {
		form = fiber.Map{"Name": "", "Email": "", "Bio": "", "Phone": ""}
	}
	return render(c.Status(status), "guests", fiber.Map{
		"Guests": guests,
		"Errors": fe,
		"Form":   form,
	})
}

// GET /admin/guests
func (h *GuestHandler) List(c *fiber.Ctx) error {
	return h.listPage(c, fiber.StatusOK, validate.FieldErrors{}, nil)
}

func guestForm(c *fiber.Ctx) (services.GuestInput, fiber.Map) {
	in := services.GuestInput{
		Name:  c.FormValue("name"),
		Email: c.FormValue("email"),
		Bio:   c.FormValue("bio"),
		Phone: c.FormValue("phonenumber"),
	}
	return in, fiber.Map{"Name": in.Name, "Email": in.Email, "Bio": in.Bio, "Phone": in.Phone}
}

// POST /admin/guests
func (h *GuestHandler) Create(c *fiber.Ctx) error {
	in, form := guestForm(c)
	g, err := h.Guests.Create(in)
	if err != nil {
		return h.crudError(c, "guests.create.fail", err, form)
	}
	applog.Audit(c, "guests.create", map[string]any{"guest": g.ID, "email": g.Email})
	return c.Redirect("/admin/guests")
}

// POST /admin/guests/:id
func (h *GuestHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	in, form := guestForm(c)
	g, err := h.Guests.Update(id, in)
	if err != nil {
		return h.crudError(c, "guests.update.fail", err, form)
	}
	applog.Audit(c, "guests.update", map[string]any{"guest": g.ID})
	return c.Redirect("/admin/guests")
}

// POST /admin/guests/:id/delete
func (h *GuestHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.Guests.Delete(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Guest not found"})
		}
		applog.Error(c, "guests.delete.fail", err, map[string]any{"guest": id})
		return h.listPage(c, fiber.StatusInternalServerError,
			validate.FieldErrors{"form": "Could not delete the guest"}, nil)
	}
	applog.Audit(c, "guests.delete", map[string]any{"guest": id})
	return c.Redirect("/admin/guests")
}

func (h *GuestHandler) crudError(c *fiber.Ctx, action string, err error, form fiber.Map) error {
	var fe validate.FieldErrors
	switch {
	case errors.As(err, &fe):
		return h.listPage(c, fiber.StatusBadRequest, fe, form)
	case errors.Is(err, services.ErrNotFound):
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Guest not found"})
	case errors.Is(err, services.ErrConflict):
		applog.Security(c, action, map[string]any{"reason": "conflict"})
		return h.listPage(c, fiber.StatusConflict,
			validate.FieldErrors{"email": "Email is already in use"}, form)
	default:
		applog.Error(c, action, err, nil)
		return h.listPage(c, fiber.StatusInternalServerError,
			validate.FieldErrors{"form": "Could not save the guest. Please try again."}, form)
	}
}
