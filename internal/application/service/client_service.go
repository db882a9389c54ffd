package service

import (
	"context"
	"strings"

	"github.com/alsyedgraphics/printshop-api/internal/domain/entity"
	"github.com/alsyedgraphics/printshop-api/internal/domain/repository"
	"github.com/alsyedgraphics/printshop-api/pkg/apperror"
	"github.com/alsyedgraphics/printshop-api/pkg/pagination"
)

// ClientService handles client-related operations
type ClientService struct {
	clientRepo repository.ClientRepository
}

// NewClientService creates a new client service
func NewClientService(clientRepo repository.ClientRepository) *ClientService {
	return &ClientService{clientRepo: clientRepo}
}

// CreateClientInput represents the create client input
type CreateClientInput struct {
	Name         string
	MobileNumber string
	Email        *string
	Address      *string
}

// CreateClient creates a new client. The mobile number is the primary key
// and must be unique.
func (s *ClientService) CreateClient(ctx context.Context, input *CreateClientInput) (*entity.Client, error) {
	name := strings.TrimSpace(input.Name)
	mobile := strings.TrimSpace(input.MobileNumber)
	if name == "" || mobile == "" {
		return nil, apperror.NewValidationError("Client name and mobile number are required")
	}

	existing, err := s.clientRepo.GetByMobileNumber(ctx, mobile)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewValidationError("A client with this mobile number already exists")
	}

	client := &entity.Client{
		MobileNumber: mobile,
		Name:         name,
		Email:        input.Email,
		Address:      input.Address,
	}

	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, err
	}

	return client, nil
}

// GetClient retrieves a client by mobile number
func (s *ClientService) GetClient(ctx context.Context, mobileNumber string) (*entity.Client, error) {
	client, err := s.clientRepo.GetByMobileNumber(ctx, mobileNumber)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperror.NewNotFoundError("Client")
	}
	return client, nil
}

// ListClients lists clients with pagination and optional search
func (s *ClientService) ListClients(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Client], error) {
	clients, total, err := s.clientRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(clients, pag), nil
}

// UpdateClientInput represents the update client input. The mobile number
// identifies the client and cannot itself be changed.
type UpdateClientInput struct {
	MobileNumber string
	Name         *string
	Email        *string
	Address      *string
}

// UpdateClient updates a client's mutable fields
func (s *ClientService) UpdateClient(ctx context.Context, input *UpdateClientInput) (*entity.Client, error) {
	client, err := s.clientRepo.GetByMobileNumber(ctx, input.MobileNumber)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperror.NewNotFoundError("Client")
	}

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, apperror.NewValidationError("Client name cannot be empty")
		}
		client.Name = *input.Name
	}
	if input.Email != nil {
		client.Email = input.Email
	}
	if input.Address != nil {
		client.Address = input.Address
	}

	if err := s.clientRepo.Update(ctx, client); err != nil {
		return nil, err
	}

	return client, nil
}

// DeleteClient deletes a client by mobile number
func (s *ClientService) DeleteClient(ctx context.Context, mobileNumber string) error {
	client, err := s.clientRepo.GetByMobileNumber(ctx, mobileNumber)
	if err != nil {
		return err
	}
	if client == nil {
		return apperror.NewNotFoundError("Client")
	}

	return s.clientRepo.Delete(ctx, mobileNumber)
}
