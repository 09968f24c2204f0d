package inventory

import (
	"errors"
	"testing"

	"github.com/Kyosue/vetra/infrastructure/repository/mocks"
	"github.com/Kyosue/vetra/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_CreateProduct(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProductRepo := mocks.NewMockProductRepository(ctrl)
	service := NewService(mockProductRepo)

	mockProductRepo.EXPECT().
		CreateProduct(gomock.Any()).
		DoAndReturn(func(p *domain.Product) (*domain.Product, error) {
			p.ID = 3
			return p, nil
		})

	product, err := service.CreateProduct(&domain.Product{
		Name:     "Café 500g",
		Category: "Bebidas",
		Price:    25.90,
		Stock:    10,
	})
	require.NoError(t, err)
	require.NotNil(t, product)
	assert.Equal(t, 3, product.ID)
}

func TestService_CreateProduct_Invalido(t *testing.T) {
	tests := []struct {
		name    string
		product *domain.Product
		wantErr error
	}{
		{
			name:    "SemNome",
			product: &domain.Product{Price: 10, Stock: 1},
			wantErr: ErrMissingRequiredData,
		},
		{
			name:    "PrecoNegativo",
			product: &domain.Product{Name: "Café", Price: -1, Stock: 1},
			wantErr: ErrInvalidPrice,
		},
		{
			name:    "EstoqueNegativo",
			product: &domain.Product{Name: "Café", Price: 10, Stock: -1},
			wantErr: ErrInvalidStock,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockProductRepo := mocks.NewMockProductRepository(ctrl)
			service := NewService(mockProductRepo)

			_, err := service.CreateProduct(tt.product)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestService_UpdateProduct(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProductRepo := mocks.NewMockProductRepository(ctrl)
	service := NewService(mockProductRepo)

	mockProductRepo.EXPECT().
		GetProductByID(3).
		Return(&domain.Product{
			ID:       3,
			Name:     "Café 500g",
			Category: "Bebidas",
			Price:    25.90,
			Stock:    10,
		}, nil)

	var saved *domain.Product
	mockProductRepo.EXPECT().
		UpdateProduct(gomock.Any()).
		DoAndReturn(func(p *domain.Product) error {
			saved = p
			return nil
		})

	newPrice := 27.50
	newStock := 8
	product, err := service.UpdateProduct(&domain.UpdateProductRequest{
		ID:    3,
		Price: &newPrice,
		Stock: &newStock,
	})
	require.NoError(t, err)
	require.NotNil(t, saved)

	// Campos não enviados permanecem como estavam
	assert.Equal(t, "Café 500g", product.Name)
	assert.Equal(t, "Bebidas", product.Category)
	assert.Equal(t, 27.50, product.Price)
	assert.Equal(t, 8, product.Stock)
}

func TestService_UpdateProduct_Falhas(t *testing.T) {
	t.Run("ProdutoInexistente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockProductRepo := mocks.NewMockProductRepository(ctrl)
		service := NewService(mockProductRepo)

		mockProductRepo.EXPECT().GetProductByID(99).Return(nil, nil)

		name := "Café"
		_, err := service.UpdateProduct(&domain.UpdateProductRequest{ID: 99, Name: &name})
		assert.ErrorIs(t, err, ErrProductNotFound)
	})

	t.Run("PrecoNegativo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockProductRepo := mocks.NewMockProductRepository(ctrl)
		service := NewService(mockProductRepo)

		mockProductRepo.EXPECT().
			GetProductByID(3).
			Return(&domain.Product{ID: 3, Name: "Café", Price: 25.90}, nil)

		newPrice := -5.0
		_, err := service.UpdateProduct(&domain.UpdateProductRequest{ID: 3, Price: &newPrice})
		assert.ErrorIs(t, err, ErrInvalidPrice)
	})
}

func TestService_GetProduct(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProductRepo := mocks.NewMockProductRepository(ctrl)
	service := NewService(mockProductRepo)

	mockProductRepo.EXPECT().
		GetProductByID(3).
		Return(&domain.Product{ID: 3, Name: "Café 500g"}, nil)

	product, err := service.GetProduct(3)
	require.NoError(t, err)
	assert.Equal(t, "Café 500g", product.Name)
}

func TestService_GetProduct_NaoEncontrado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProductRepo := mocks.NewMockProductRepository(ctrl)
	service := NewService(mockProductRepo)

	mockProductRepo.EXPECT().GetProductByID(99).Return(nil, nil)

	_, err := service.GetProduct(99)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestService_DeleteProduct(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProductRepo := mocks.NewMockProductRepository(ctrl)
	service := NewService(mockProductRepo)

	mockProductRepo.EXPECT().
		GetProductByID(3).
		Return(&domain.Product{ID: 3, Name: "Café 500g"}, nil)

	var saved *domain.Product
	mockProductRepo.EXPECT().
		UpdateProduct(gomock.Any()).
		DoAndReturn(func(p *domain.Product) error {
			saved = p
			return nil
		})

	err := service.DeleteProduct(3)
	require.NoError(t, err)
	require.NotNil(t, saved)

	assert.True(t, saved.Deleted)
	assert.NotNil(t, saved.DeletedAt)
}

func TestService_ListProducts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProductRepo := mocks.NewMockProductRepository(ctrl)
	service := NewService(mockProductRepo)

	mockProductRepo.EXPECT().
		ListProducts().
		Return([]*domain.Product{
			{ID: 1, Name: "Café 500g"},
			{ID: 2, Name: "Açúcar 1kg"},
		}, nil)

	products, err := service.ListProducts()
	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestService_ListProducts_ErroNoBanco(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProductRepo := mocks.NewMockProductRepository(ctrl)
	service := NewService(mockProductRepo)

	mockProductRepo.EXPECT().
		ListProducts().
		Return(nil, errors.New("conexão recusada"))

	_, err := service.ListProducts()
	assert.Error(t, err)
}
