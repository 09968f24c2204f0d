package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Kyosue/vetra/internal/domain"
	"github.com/Kyosue/vetra/internal/usecases/inventory"
	"github.com/Kyosue/vetra/pkg/apiErrors"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ListProducts lista os produtos ativos do catálogo
func ListProducts(service inventory.InventoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products, err := service.ListProducts()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar produtos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(products); err != nil {
			logrus.Error(err)
		}
	}
}

// CreateProduct cadastra um novo produto
func CreateProduct(service inventory.InventoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var product *domain.Product

		if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		product, err := service.CreateProduct(product)
		if err != nil {
			logrus.Error(err)
			handleInventoryError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(product); err != nil {
			logrus.Error(err)
		}
	}
}

// GetProduct retorna um produto por ID
func GetProduct(service inventory.InventoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := productIDFromRequest(w, r)
		if !ok {
			return
		}

		product, err := service.GetProduct(id)
		if err != nil {
			logrus.Error(err)
			handleInventoryError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(product); err != nil {
			logrus.Error(err)
		}
	}
}

// UpdateProduct atualiza os dados de um produto
func UpdateProduct(service inventory.InventoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := productIDFromRequest(w, r)
		if !ok {
			return
		}

		var req domain.UpdateProductRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		req.ID = id

		product, err := service.UpdateProduct(&req)
		if err != nil {
			logrus.Error(err)
			handleInventoryError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(product); err != nil {
			logrus.Error(err)
		}
	}
}

// DeleteProduct remove (logicamente) um produto do catálogo
func DeleteProduct(service inventory.InventoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := productIDFromRequest(w, r)
		if !ok {
			return
		}

		if err := service.DeleteProduct(id); err != nil {
			logrus.Error(err)
			handleInventoryError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func productIDFromRequest(w http.ResponseWriter, r *http.Request) (int, bool) {
	idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
	if idStr == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do produto não fornecido", nil)
		return 0, false
	}

	id, err := strconv.Atoi(idStr)
	if err != nil {
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do produto inválido", nil)
		return 0, false
	}

	return id, true
}

func handleInventoryError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, inventory.ErrProductNotFound):
		apiErrors.WriteError(w, apiErrors.ErrProductNotFound, "Produto não encontrado", nil)

	case errors.Is(err, inventory.ErrMissingRequiredData):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)

	case errors.Is(err, inventory.ErrInvalidPrice),
		errors.Is(err, inventory.ErrInvalidStock):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao acessar o catálogo de produtos", nil)
	}
}
