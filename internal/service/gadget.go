package service

import (
	"context"

	"gadgetlend-backend/internal/domain"
	"gadgetlend-backend/internal/notify"
	"gadgetlend-backend/internal/repository"
)

type gadgetService struct {
	store repository.Store
	hub   *notify.Hub
}

func NewGadgetService(store repository.Store, hub *notify.Hub) GadgetService {
	return &gadgetService{store: store, hub: hub}
}

func (s *gadgetService) AddGadget(ctx context.Context, gadget *domain.Gadget) error {
	if gadget.Status == "" {
		gadget.Status = domain.GadgetStatusAvailable
	}
	if err := s.store.Gadgets().Create(ctx, gadget); err != nil {
		return err
	}
	s.hub.Notify("gadgets")
	return nil
}

func (s *gadgetService) GetGadget(ctx context.Context, id int32) (*domain.Gadget, error) {
	return s.store.Gadgets().GetByID(ctx, id)
}

func (s *gadgetService) UpdateGadget(ctx context.Context, gadget *domain.Gadget) error {
	if err := s.store.Gadgets().Update(ctx, gadget); err != nil {
		return err
	}
	s.hub.Notify("gadgets")
	return nil
}

// DeleteGadget hard-deletes a unit, guarded twice: a gadget in use is never
// deletable, and a gadget referenced by any rental line item, active or
// historical, must be retired via Lost or In Repair instead.
func (s *gadgetService) DeleteGadget(ctx context.Context, id int32) error {
	gadget, err := s.store.Gadgets().GetByID(ctx, id)
	if err != nil {
		return err
	}
	if gadget.Status == domain.GadgetStatusInUse {
		return ErrGadgetInUse
	}
	refs, err := s.store.Gadgets().CountRentalReferences(ctx, id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return ErrGadgetHasRentals
	}
	if err := s.store.Gadgets().Delete(ctx, id); err != nil {
		return err
	}
	s.hub.Notify("gadgets")
	return nil
}

func (s *gadgetService) ListGadgets(ctx context.Context, status domain.GadgetStatus, typeID int32) ([]domain.Gadget, error) {
	return s.store.Gadgets().List(ctx, status, typeID)
}

func (s *gadgetService) CreateType(ctx context.Context, gt *domain.GadgetType) error {
	if err := s.store.Gadgets().CreateType(ctx, gt); err != nil {
		return err
	}
	s.hub.Notify("gadget_types")
	return nil
}

func (s *gadgetService) ListTypes(ctx context.Context) ([]domain.GadgetType, error) {
	return s.store.Gadgets().ListTypes(ctx)
}

func (s *gadgetService) DeleteType(ctx context.Context, id int32) error {
	if err := s.store.Gadgets().DeleteType(ctx, id); err != nil {
		return err
	}
	s.hub.Notify("gadget_types")
	return nil
}
