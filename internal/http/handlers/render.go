package handlers

import (
	"adminpanel/internal/media"

	"github.com/gofiber/fiber/v2"
)

func render(c *fiber.Ctx, tmpl string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	// Inject the logged-in admin if the gate put one on the context
	if a := c.Locals("admin"); a != nil {
		data["Admin"] = a
	}
	// Pick up the token the CSRF middleware put into Locals
	if tok, _ := c.Locals("CSRFToken").(string); tok != "" {
		data["CSRFToken"] = tok
	} else if cookTok := c.Cookies("csrf_"); cookTok != "" {
		data["CSRFToken"] = cookTok
	}
	return c.Render(tmpl, data)
}

// formUpload lifts an optional multipart file into a media.Upload. The
// cleanup func closes the underlying file and is safe to call when no file
// was sent.
func formUpload(c *fiber.Ctx, field string) (*media.Upload, func(), error) {
	fh, err := c.FormFile(field)
	if err != nil || fh == nil {
		// absent file is not an error; the field is optional everywhere
		return nil, func() {}, nil
	}
	f, err := fh.Open()
	if err != nil {
		return nil, func() {}, err
	}
	return &media.Upload{Name: fh.Filename, Size: fh.Size, Content: f}, func() { f.Close() }, nil
}
