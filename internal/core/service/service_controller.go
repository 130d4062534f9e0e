package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/salonova/booking-client/internal/core/domain"
	"github.com/salonova/booking-client/internal/core/ports"
)

// ServiceController synchronizes the service catalogue. Mutations are
// admin-only: the server enforces this, and the controller additionally
// refuses to send them for non-admin sessions rather than relying on the
// UI hiding the controls.
type ServiceController struct {
	controller[domain.Service]
	gw       ports.ServiceGateway
	session  *SessionManager
	validate *payloadValidator
}

func NewServiceController(
	gw ports.ServiceGateway,
	session *SessionManager,
	guard MutationGuard,
	notifier ports.Notifier,
	log zerolog.Logger,
) *ServiceController {
	return &ServiceController{
		controller: newController("services", gw.ListServices, guard, notifier, log),
		gw:         gw,
		session:    session,
		validate:   newPayloadValidator(),
	}
}

// Create adds a new service and refetches the catalogue.
func (c *ServiceController) Create(ctx context.Context, in ports.ServiceInput) bool {
	if !c.requireAdmin() {
		return false
	}
	if err := c.validate.Struct(in); err != nil {
		c.notifier.Error(err.Error())
		return false
	}
	return c.mutate(ctx, "create", "", "Service created successfully", "Failed to create service",
		func(ctx context.Context) error { return c.gw.CreateService(ctx, in) })
}

// Update replaces the editable fields of an existing service.
func (c *ServiceController) Update(ctx context.Context, id string, in ports.ServiceInput) bool {
	if !c.requireAdmin() {
		return false
	}
	if err := c.validate.Struct(in); err != nil {
		c.notifier.Error(err.Error())
		return false
	}
	return c.mutate(ctx, "update", id, "Service updated successfully", "Failed to update service",
		func(ctx context.Context) error { return c.gw.UpdateService(ctx, id, in) })
}

// Delete removes a service from the catalogue.
func (c *ServiceController) Delete(ctx context.Context, id string) bool {
	if !c.requireAdmin() {
		return false
	}
	return c.mutate(ctx, "delete", id, "Service deleted successfully", "Failed to delete service",
		func(ctx context.Context) error { return c.gw.DeleteService(ctx, id) })
}

func (c *ServiceController) requireAdmin() bool {
	if !c.session.IsAdmin() {
		c.log.Warn().Msg("service mutation refused for non-admin session")
		c.notifier.Error(domain.ErrForbidden.Error())
		return false
	}
	return true
}
