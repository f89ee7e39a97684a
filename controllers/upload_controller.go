package controllers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/qcutapp/dashboard-v2/upload"
)

type UploadController struct {
	Uploader *upload.Uploader
}

func NewUploadController(u *upload.Uploader) *UploadController {
	return &UploadController{Uploader: u}
}

// POST /dashboard/upload accepts a multipart image for the drink and
// special editors. One in-flight upload per field; a second request for
// the same field while one is running gets a 409.
func (uc *UploadController) Upload(c *fiber.Ctx) error {
	field := c.FormValue("field", "image")

	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "missing file",
		})
	}

	src, err := fh.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "could not read file",
		})
	}
	defer src.Close()

	url, err := uc.Uploader.Upload(c.Context(), field, fh.Filename, src)
	if err != nil {
		if errors.Is(err, upload.ErrBusy) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "an upload for this field is already running",
			})
		}
		log.Printf("upload: %v", err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"message": "upload failed",
		})
	}

	return c.JSON(fiber.Map{"url": url})
}
