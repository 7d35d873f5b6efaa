package handlers

import (
	"errors"

	applog "adminpanel/internal/log"
	"adminpanel/internal/services"
	"adminpanel/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	Users *services.UserService
}

func (h *UserHandler) listPage(c *fiber.Ctx, status int, fe validate.FieldErrors, form fiber.Map) error {
	users, err := h.Users.List()
	if err != nil {
		applog.Error(c, "users.list.fail", err, nil)
		return render(c.Status(fiber.StatusInternalServerError), "notfound", fiber.Map{"Message": "Could not load users"})
	}
	if form == nil {
		form = fiber.Map{"Name": "", "Email": "", "Role": ""}
	}
	return render(c.Status(status), "users", fiber.Map{
		"Users":  users,
		"Errors": fe,
		"Form":   form,
	})
}

// GET /admin/users
func (h *UserHandler) List(c *fiber.Ctx) error {
	return h.listPage(c, fiber.StatusOK, validate.FieldErrors{}, nil)
}

func userForm(c *fiber.Ctx) (services.UserInput, fiber.Map) {
	in := services.UserInput{
		Name:  c.FormValue("name"),
		Email: c.FormValue("email"),
		Role:  c.FormValue("role"),
	}
	return in, fiber.Map{"Name": in.Name, "Email": in.Email, "Role": in.Role}
}

// POST /admin/users
func (h *UserHandler) Create(c *fiber.Ctx) error {
	up, done, err := formUpload(c, "picture")
	if err != nil {
		return h.listPage(c, fiber.StatusBadRequest,
			validate.FieldErrors{"picture": "Could not read the uploaded file"}, nil)
	}
	defer done()

	in, form := userForm(c)
	in.Picture = up
	u, err := h.Users.Create(in)
	if err != nil {
		return h.crudError(c, "users.create.fail", err, form)
	}
	applog.Audit(c, "users.create", map[string]any{"user": u.ID, "email": u.Email})
	return c.Redirect("/admin/users")
}

// POST /admin/users/:id
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	up, done, err := formUpload(c, "picture")
	if err != nil {
		return h.listPage(c, fiber.StatusBadRequest,
			validate.FieldErrors{"picture": "Could not read the uploaded file"}, nil)
	}
	defer done()

	in, form := userForm(c)
	in.Picture = up
	u, err := h.Users.Update(id, in)
	if err != nil {
		return h.crudError(c, "users.update.fail", err, form)
	}
	applog.Audit(c, "users.update", map[string]any{"user": u.ID})
	return c.Redirect("/admin/users")
}

// POST /admin/users/:id/delete
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.Users.Delete(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "User not found"})
		}
		applog.Error(c, "users.delete.fail", err, map[string]any{"user": id})
		return h.listPage(c, fiber.StatusInternalServerError,
			validate.FieldErrors{"form": "Could not delete the user"}, nil)
	}
	applog.Audit(c, "users.delete", map[string]any{"user": id})
	return c.Redirect("/admin/users")
}

func (h *UserHandler) crudError(c *fiber.Ctx, action string, err error, form fiber.Map) error {
	var fe validate.FieldErrors
	switch {
	case errors.As(err, &fe):
		return h.listPage(c, fiber.StatusBadRequest, fe, form)
	case errors.Is(err, services.ErrNotFound):
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "User not found"})
	case errors.Is(err, services.ErrConflict):
		applog.Security(c, action, map[string]any{"reason": "conflict"})
		return h.listPage(c, fiber.StatusConflict,
			validate.FieldErrors{"email": "Email is already in use"}, form)
	default:
		applog.Error(c, action, err, nil)
		return h.listPage(c, fiber.StatusInternalServerError,
			validate.FieldErrors{"form": "Could not save the user. Please try again."}, form)
	}
}
