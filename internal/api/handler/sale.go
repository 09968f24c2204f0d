package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Kyosue/vetra/internal/domain"
	"github.com/Kyosue/vetra/internal/usecases/selling"
	"github.com/Kyosue/vetra/pkg/apiErrors"
	"github.com/Kyosue/vetra/pkg/middleware"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type CreateSaleRequest struct {
	Items []domain.CartItem `json:"items"`
}

// CreateSale registra uma venda (checkout) para o usuário autenticado
func CreateSale(service selling.SellingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req CreateSaleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		sale, err := service.CreateSale(r.Context(), userClaims.UserID, req.Items)
		if err != nil {
			logrus.Error(err)
			handleSellingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(sale); err != nil {
			logrus.Error(err)
		}
	}
}

// ListSales retorna o histórico completo de vendas
func ListSales(service selling.SellingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sales, err := service.ListSales()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar vendas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(sales); err != nil {
			logrus.Error(err)
		}
	}
}

// GetSale retorna uma venda por ID
func GetSale(service selling.SellingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := saleIDFromRequest(w, r)
		if !ok {
			return
		}

		sale, err := service.GetSale(id)
		if err != nil {
			logrus.Error(err)
			handleSellingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(sale); err != nil {
			logrus.Error(err)
		}
	}
}

// GetReceipt retorna o payload do recibo de uma venda
func GetReceipt(service selling.SellingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := saleIDFromRequest(w, r)
		if !ok {
			return
		}

		receipt, err := service.GetReceipt(id)
		if err != nil {
			logrus.Error(err)
			handleSellingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(receipt); err != nil {
			logrus.Error(err)
		}
	}
}

func saleIDFromRequest(w http.ResponseWriter, r *http.Request) (int, bool) {
	idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
	if idStr == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da venda não fornecido", nil)
		return 0, false
	}

	id, err := strconv.Atoi(idStr)
	if err != nil {
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID da venda inválido", nil)
		return 0, false
	}

	return id, true
}

func handleSellingError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, selling.ErrEmptyCart):
		apiErrors.WriteError(w, apiErrors.ErrEmptyCart, err.Error(), nil)

	case errors.Is(err, selling.ErrInvalidQuantity):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)

	case errors.Is(err, selling.ErrProductNotFound):
		apiErrors.WriteError(w, apiErrors.ErrProductNotFound, err.Error(), nil)

	case errors.Is(err, selling.ErrInsufficientStock):
		apiErrors.WriteError(w, apiErrors.ErrInsufficientStock, err.Error(), nil)

	case errors.Is(err, selling.ErrSaleNotFound):
		apiErrors.WriteError(w, apiErrors.ErrSaleNotFound, "Venda não encontrada", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao acessar as vendas", nil)
	}
}
