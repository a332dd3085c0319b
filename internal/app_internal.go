package internal

import (
	"github.com/rios0rios0/specforge/internal/domain/entities"
)

// AppInternal aggregates the wired application graph handed to the CLI.
type AppInternal struct {
	controllers []entities.Controller
}

// NewAppInternal creates the application context from the controller list.
func NewAppInternal(controllers *[]entities.Controller) *AppInternal {
	return &AppInternal{controllers: *controllers}
}

// GetControllers returns all wired controllers.
func (it *AppInternal) GetControllers() []entities.Controller {
	return it.controllers
}
