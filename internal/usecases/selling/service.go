package selling

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Kyosue/vetra/infrastructure/repository"
	"github.com/Kyosue/vetra/internal/config"
	"github.com/Kyosue/vetra/internal/domain"
	"github.com/Kyosue/vetra/pkg/log"
	"github.com/Kyosue/vetra/pkg/utils"
)

// SellingService registra vendas (checkout) e monta recibos.
// Vendas são imutáveis depois de criadas.
type SellingService interface {
	CreateSale(ctx context.Context, userID int, cart []domain.CartItem) (*domain.Sale, error)
	GetSale(saleID int) (*domain.Sale, error)
	ListSales() ([]*domain.Sale, error)
	GetReceipt(saleID int) (*domain.Receipt, error)
}

// TxRunner executa uma função dentro de uma transação de banco
type TxRunner interface {
	RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error
}

type Service struct {
	conn        TxRunner
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	cfg         *config.Config
}

func NewService(
	conn TxRunner,
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
	cfg *config.Config,
) SellingService {
	return &Service{
		conn:        conn,
		saleRepo:    saleRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		cfg:         cfg,
	}
}

// CreateSale valida o carrinho, calcula o total a partir do preço cadastrado
// de cada produto e grava a venda com a baixa de estoque em uma única transação.
func (s *Service) CreateSale(ctx context.Context, userID int, cart []domain.CartItem) (*domain.Sale, error) {
	items, total, err := s.buildSaleItems(cart)
	if err != nil {
		return nil, err
	}

	receiptNumber, err := utils.GenerateReceiptNumber()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar número do recibo: %w", err)
	}

	sale := &domain.Sale{
		ReceiptNumber: receiptNumber,
		UserID:        userID,
		Items:         items,
		TotalAmount:   total,
		Timestamp:     time.Now(),
	}

	err = s.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, item := range sale.Items {
			if err := s.productRepo.DecrementStock(tx, item.ProductID, item.Quantity); err != nil {
				return ErrInsufficientStock
			}
		}

		_, err := s.saleRepo.InsertSale(tx, sale)
		return err
	})
	if err != nil {
		return nil, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"sale_id":        sale.ID,
		"receipt_number": sale.ReceiptNumber,
		"total_amount":   sale.TotalAmount,
		"items":          len(sale.Items),
	}).Info("Venda registrada")

	return sale, nil
}

// buildSaleItems resolve os produtos do carrinho e calcula os subtotais.
// O total da venda é sempre a soma de quantity × unit_price dos itens.
func (s *Service) buildSaleItems(cart []domain.CartItem) ([]domain.SaleItem, float64, error) {
	if len(cart) == 0 {
		return nil, 0, ErrEmptyCart
	}

	items := make([]domain.SaleItem, 0, len(cart))
	var total float64

	for _, cartItem := range cart {
		if cartItem.Quantity <= 0 {
			return nil, 0, fmt.Errorf("%w: produto %d", ErrInvalidQuantity, cartItem.ProductID)
		}

		product, err := s.productRepo.GetProductByID(cartItem.ProductID)
		if err != nil {
			return nil, 0, err
		}
		if product == nil {
			return nil, 0, fmt.Errorf("%w: %d", ErrProductNotFound, cartItem.ProductID)
		}

		if product.Stock < cartItem.Quantity {
			return nil, 0, fmt.Errorf("%w: produto %q", ErrInsufficientStock, product.Name)
		}

		// Arredonda por item para o total bater com a soma impressa no recibo
		subtotal := utils.RoundWithTwoDecimalPlace(float64(cartItem.Quantity) * product.Price)
		items = append(items, domain.SaleItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    cartItem.Quantity,
			UnitPrice:   product.Price,
			Subtotal:    subtotal,
		})

		total += subtotal
	}

	return items, utils.RoundWithTwoDecimalPlace(total), nil
}

func (s *Service) GetSale(saleID int) (*domain.Sale, error) {
	sale, err := s.saleRepo.GetSaleByID(saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, ErrSaleNotFound
	}

	return sale, nil
}

func (s *Service) ListSales() ([]*domain.Sale, error) {
	return s.saleRepo.ListSales()
}

// GetReceipt monta o payload do recibo de uma venda já registrada
func (s *Service) GetReceipt(saleID int) (*domain.Receipt, error) {
	sale, err := s.saleRepo.GetSaleByID(saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, ErrSaleNotFound
	}

	cashierName := ""
	user, err := s.userRepo.GetUserByID(sale.UserID)
	if err == nil && user != nil {
		cashierName = fmt.Sprintf("%s %s", user.Name, user.Lastname)
	}

	return &domain.Receipt{
		StoreName:     s.cfg.Store.Name,
		ReceiptNumber: sale.ReceiptNumber,
		CashierName:   cashierName,
		Items:         sale.Items,
		TotalAmount:   sale.TotalAmount,
		Timestamp:     sale.Timestamp,
	}, nil
}
