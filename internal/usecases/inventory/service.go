package inventory

import (
	"time"

	"github.com/Kyosue/vetra/infrastructure/repository"
	"github.com/Kyosue/vetra/internal/domain"
)

// InventoryService gerencia o cadastro de produtos da loja
type InventoryService interface {
	CreateProduct(product *domain.Product) (*domain.Product, error)
	UpdateProduct(req *domain.UpdateProductRequest) (*domain.Product, error)
	GetProduct(productID int) (*domain.Product, error)
	ListProducts() ([]*domain.Product, error)
	DeleteProduct(productID int) error
}

type Service struct {
	productRepo repository.ProductRepository
}

func NewService(productRepo repository.ProductRepository) InventoryService {
	return &Service{
		productRepo: productRepo,
	}
}

func (s *Service) CreateProduct(product *domain.Product) (*domain.Product, error) {
	if product.Name == "" {
		return nil, ErrMissingRequiredData
	}

	if product.Price < 0 {
		return nil, ErrInvalidPrice
	}

	if product.Stock < 0 {
		return nil, ErrInvalidStock
	}

	return s.productRepo.CreateProduct(product)
}

func (s *Service) UpdateProduct(req *domain.UpdateProductRequest) (*domain.Product, error) {
	product, err := s.productRepo.GetProductByID(req.ID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	if req.Name != nil {
		product.Name = *req.Name
	}

	if req.Category != nil {
		product.Category = *req.Category
	}

	if req.Price != nil {
		if *req.Price < 0 {
			return nil, ErrInvalidPrice
		}
		product.Price = *req.Price
	}

	if req.Stock != nil {
		if *req.Stock < 0 {
			return nil, ErrInvalidStock
		}
		product.Stock = *req.Stock
	}

	if req.ImageURL != nil {
		product.ImageURL = req.ImageURL
	}

	if req.Deleted != nil && *req.Deleted {
		now := time.Now()
		product.Deleted = true
		product.DeletedAt = &now
	}

	if err := s.productRepo.UpdateProduct(product); err != nil {
		return nil, err
	}

	return product, nil
}

func (s *Service) GetProduct(productID int) (*domain.Product, error) {
	product, err := s.productRepo.GetProductByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	return product, nil
}

func (s *Service) ListProducts() ([]*domain.Product, error) {
	return s.productRepo.ListProducts()
}

// DeleteProduct faz a remoção lógica; o produto continua referenciado
// pelos itens das vendas já registradas
func (s *Service) DeleteProduct(productID int) error {
	product, err := s.productRepo.GetProductByID(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}

	now := time.Now()
	product.Deleted = true
	product.DeletedAt = &now

	return s.productRepo.UpdateProduct(product)
}
