package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/salonova/booking-client/internal/core/domain"
	"github.com/salonova/booking-client/internal/core/ports"
)

// BusinessController synchronizes the business directory.
type BusinessController struct {
	controller[domain.Business]
	gw       ports.BusinessGateway
	session  *SessionManager
	validate *payloadValidator
}

func NewBusinessController(
	gw ports.BusinessGateway,
	session *SessionManager,
	guard MutationGuard,
	notifier ports.Notifier,
	log zerolog.Logger,
) *BusinessController {
	return &BusinessController{
		controller: newController("businesses", gw.ListBusinesses, guard, notifier, log),
		gw:         gw,
		session:    session,
		validate:   newPayloadValidator(),
	}
}

// FetchMine replaces the collection with the businesses owned by the
// authenticated account.
func (c *BusinessController) FetchMine(ctx context.Context) {
	c.setLoading(true)
	items, err := c.gw.ListMyBusinesses(ctx)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	if err != nil {
		c.errMsg = err.Error()
		c.notifier.Error("Failed to fetch businesses: " + err.Error())
		return
	}
	c.items = items
	c.errMsg = ""
}

func (c *BusinessController) Create(ctx context.Context, in ports.BusinessInput) bool {
	if !c.requireAdmin() {
		return false
	}
	if err := c.validate.Struct(in); err != nil {
		c.notifier.Error(err.Error())
		return false
	}
	return c.mutate(ctx, "create", "", "Business created successfully", "Failed to create business",
		func(ctx context.Context) error { return c.gw.CreateBusiness(ctx, in) })
}

func (c *BusinessController) Update(ctx context.Context, id string, in ports.BusinessInput) bool {
	if !c.requireAdmin() {
		return false
	}
	if err := c.validate.Struct(in); err != nil {
		c.notifier.Error(err.Error())
		return false
	}
	return c.mutate(ctx, "update", id, "Business updated successfully", "Failed to update business",
		func(ctx context.Context) error { return c.gw.UpdateBusiness(ctx, id, in) })
}

func (c *BusinessController) Delete(ctx context.Context, id string) bool {
	if !c.requireAdmin() {
		return false
	}
	return c.mutate(ctx, "delete", id, "Business deleted successfully", "Failed to delete business",
		func(ctx context.Context) error { return c.gw.DeleteBusiness(ctx, id) })
}

func (c *BusinessController) requireAdmin() bool {
	if !c.session.IsAdmin() {
		c.notifier.Error(domain.ErrForbidden.Error())
		return false
	}
	return true
}
