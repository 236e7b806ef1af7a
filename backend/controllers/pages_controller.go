package controllers

import (
	"path/filepath"

	"github.com/gofiber/fiber/v2"
)

// PagesController serves the static HTML shells. The pages themselves fetch the
// dashboard data client-side from the JSON endpoints.
type PagesController struct {
	TemplatesDir string
}

func NewPagesController(templatesDir string) *PagesController {
	return &PagesController{TemplatesDir: templatesDir}
}

// Index renders the home page shell.
func (pc *PagesController) Index(c *fiber.Ctx) error {
	return c.SendFile(filepath.Join(pc.TemplatesDir, "index.html"))
}

// Progress renders the progress page shell.
func (pc *PagesController) Progress(c *fiber.Ctx) error {
	return c.SendFile(filepath.Join(pc.TemplatesDir, "progress.html"))
}
