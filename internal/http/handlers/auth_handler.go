package handlers

import (
	"errors"
	"time"

	applog "adminpanel/internal/log"
	"adminpanel/internal/services"
	"adminpanel/internal/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AuthHandler struct {
	Auth *services.AuthService
}

func ensureSID(c *fiber.Ctx) string {
	sid := c.Cookies("sid")
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     "sid",
			Value:    sid,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
			Secure:   false,
		})
	}
	return sid
}

func registerPage(c *fiber.Ctx, fe validate.FieldErrors, name, email string) error {
	return render(c, "register", fiber.Map{
		"Errors": fe,
		"Form":   fiber.Map{"Name": name, "Email": email},
	})
}

func (h *AuthHandler) RegisterForm(c *fiber.Ctx) error {
	return registerPage(c, validate.FieldErrors{}, "", "")
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	in := services.RegisterInput{
		Name:     c.FormValue("name"),
		Email:    c.FormValue("email"),
		Password: c.FormValue("password"),
	}
	if err := h.Auth.Register(in); err != nil {
		var fe validate.FieldErrors
		switch {
		case errors.As(err, &fe):
			applog.Security(c, "auth.register.fail", map[string]any{"email": in.Email})
			return registerPage(c.Status(fiber.StatusBadRequest), fe, in.Name, in.Email)
		case errors.Is(err, services.ErrConflict):
			// the unique index caught a racing duplicate
			return registerPage(c.Status(fiber.StatusConflict),
				validate.FieldErrors{"email": "Email is already registered"}, in.Name, in.Email)
		default:
			applog.Error(c, "auth.register.fail", err, nil)
			return registerPage(c.Status(fiber.StatusInternalServerError),
				validate.FieldErrors{"form": "Could not complete registration. Please try again."}, in.Name, in.Email)
		}
	}
	applog.Audit(c, "auth.register.success", map[string]any{"email": in.Email})
	return c.Redirect("/login?registered=1")
}

func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	data := fiber.Map{"Err": "", "Errors": validate.FieldErrors{}}
	if c.Query("registered") == "1" {
		data["Success"] = "Registration successful. Please login."
	}
	return render(c, "login", data)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	sid := ensureSID(c)
	in := services.LoginInput{
		Email:    c.FormValue("email"),
		Password: c.FormValue("password"),
	}
	if _, err := h.Auth.Login(sid, in); err != nil {
		var fe validate.FieldErrors
		if errors.As(err, &fe) {
			applog.Security(c, "auth.login.fail", map[string]any{"email": in.Email, "reason": "bad_format"})
			return render(c.Status(fiber.StatusBadRequest), "login", fiber.Map{"Err": "", "Errors": fe})
		}
		// unknown email and wrong password share one message
		applog.Security(c, "auth.login.fail", map[string]any{"email": in.Email})
		return render(c.Status(fiber.StatusUnauthorized), "login", fiber.Map{
			"Err": "Invalid credentials", "Errors": validate.FieldErrors{},
		})
	}
	applog.Audit(c, "auth.login.success", map[string]any{"email": in.Email})
	return c.Redirect("/admin/dashboard")
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sid := ensureSID(c)
	_ = h.Auth.Logout(sid)
	c.Cookie(&fiber.Cookie{
		Name:     "sid",
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   false,
		Expires:  time.Now().Add(-1 * time.Hour),
	})
	applog.Audit(c, "auth.logout", map[string]any{"sid": sid})
	return c.Redirect("/login")
}
