package service

import (
	"errors"
	"fmt"

	"go-pos-api/internal/model"
	"go-pos-api/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClientInput is the unified create/update payload. The legacy English-field
// route posts name/phone/address; the Portuguese route posts nome/telefone/
// endereco. Both land here and are normalized before use.
type ClientInput struct {
	Nome     string `json:"nome"`
	Name     string `json:"name"`
	Telefone string `json:"telefone"`
	Phone    string `json:"phone"`
	Endereco string `json:"endereco"`
	Address  string `json:"address"`
	CPF      string `json:"cpf"`
}

func (in *ClientInput) normalize() {
	if in.Nome == "" {
		in.Nome = in.Name
	}
	if in.Telefone == "" {
		in.Telefone = in.Phone
	}
	if in.Endereco == "" {
		in.Endereco = in.Address
	}
}

type ClientService interface {
	CreateClient(in *ClientInput) (*model.Client, error)
	UpdateClient(id uuid.UUID, in *ClientInput) (*model.Client, error)
	DeleteClient(id uuid.UUID) error
	GetClients(nome string) ([]model.Client, error)
	GetClient(id uuid.UUID) (*model.Client, error)
}

type clientService struct {
	clientRepo repository.ClientRepository
}

func NewClientService(cRepo repository.ClientRepository) ClientService {
	return &clientService{clientRepo: cRepo}
}

func (s *clientService) CreateClient(in *ClientInput) (*model.Client, error) {
	in.normalize()
	if in.Nome == "" {
		return nil, fmt.Errorf("%w: nome is required", ErrValidation)
	}
	if in.CPF == "" {
		return nil, fmt.Errorf("%w: cpf is required", ErrValidation)
	}

	client := &model.Client{
		Nome:     in.Nome,
		Telefone: in.Telefone,
		Endereco: in.Endereco,
		CPFHash:  model.HashCPF(in.CPF),
	}

	if err := s.clientRepo.Create(client); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: cpf already registered", ErrDuplicate)
		}
		return nil, err
	}
	return client, nil
}

func (s *clientService) UpdateClient(id uuid.UUID, in *ClientInput) (*model.Client, error) {
	client, err := s.clientRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: client %s", ErrNotFound, id)
		}
		return nil, err
	}

	in.normalize()
	if in.Nome == "" {
		return nil, fmt.Errorf("%w: nome is required", ErrValidation)
	}

	client.Nome = in.Nome
	client.Telefone = in.Telefone
	client.Endereco = in.Endereco
	if in.CPF != "" {
		client.CPFHash = model.HashCPF(in.CPF)
	}

	if err := s.clientRepo.Update(client); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: cpf already registered", ErrDuplicate)
		}
		return nil, err
	}
	return client, nil
}

func (s *clientService) DeleteClient(id uuid.UUID) error {
	affected, err := s.clientRepo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: client %s", ErrNotFound, id)
	}
	return nil
}

func (s *clientService) GetClients(nome string) ([]model.Client, error) {
	return s.clientRepo.FindAll(nome)
}

func (s *clientService) GetClient(id uuid.UUID) (*model.Client, error) {
	client, err := s.clientRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: client %s", ErrNotFound, id)
		}
		return nil, err
	}
	return client, nil
}
