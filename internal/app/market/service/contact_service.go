package service

import (
	"context"
	"fmt"

	"shopnet/internal/app/market/entity"
	"shopnet/internal/app/market/repository"

	"github.com/google/uuid"
)

// ContactService управляет адресами доставки пользователя
type ContactService struct {
	contactRepo repository.ContactRepository
}

// NewContactService создает новый сервис адресов доставки
func NewContactService(contactRepo repository.ContactRepository) *ContactService {
	return &ContactService{contactRepo: contactRepo}
}

func (s *ContactService) ListContacts(ctx context.Context, userID uuid.UUID) ([]entity.Contact, error) {
	contacts, err := s.contactRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}

	return contacts, nil
}

func (s *ContactService) CreateContact(ctx context.Context, userID uuid.UUID, req *entity.ContactRequest) (*entity.Contact, error) {
	contact := &entity.Contact{
		UserID:    userID,
		City:      req.City,
		Street:    req.Street,
		House:     req.House,
		Structure: req.Structure,
		Building:  req.Building,
		Apartment: req.Apartment,
		Phone:     req.Phone,
	}

	if err := s.contactRepo.Create(ctx, contact); err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}

	return contact, nil
}

// UpdateContact обновляет адрес, принадлежащий пользователю
func (s *ContactService) UpdateContact(ctx context.Context, userID uuid.UUID, req *entity.ContactRequest) error {
	contact := &entity.Contact{
		ID:        req.ID,
		UserID:    userID,
		City:      req.City,
		Street:    req.Street,
		House:     req.House,
		Structure: req.Structure,
		Building:  req.Building,
		Apartment: req.Apartment,
		Phone:     req.Phone,
	}

	rows, err := s.contactRepo.Update(ctx, contact)
	if err != nil {
		return fmt.Errorf("failed to update contact: %w", err)
	}

	if rows == 0 {
		return ErrContactNotFound
	}

	return nil
}

// DeleteContacts удаляет адреса по списку ID через запятую
func (s *ContactService) DeleteContacts(ctx context.Context, userID uuid.UUID, itemsCSV string) (int64, error) {
	ids := parseIDList(itemsCSV)
	if len(ids) == 0 {
		return 0, ErrNoItems
	}

	deleted, err := s.contactRepo.DeleteByIDs(ctx, userID, ids)
	if err != nil {
		return 0, fmt.Errorf("failed to delete contacts: %w", err)
	}

	return deleted, nil
}
