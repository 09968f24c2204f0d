package domain

import "time"

// SaleItem representa uma linha da venda. O subtotal é calculado no checkout
// e armazenado junto com a venda.
type SaleItem struct {
	ProductID   int     `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Subtotal    float64 `json:"subtotal"`
}

// Sale é o registro imutável de uma venda concluída.
// TotalAmount é sempre a soma de quantity × unit_price dos itens.
type Sale struct {
	ID            int        `json:"id"`
	ReceiptNumber string     `json:"receipt_number"`
	UserID        int        `json:"user_id"`
	Items         []SaleItem `json:"items"`
	TotalAmount   float64    `json:"total_amount"`
	Timestamp     time.Time  `json:"timestamp"`
	CreatedAt     time.Time  `json:"created_at"`
}

// CartItem é o item enviado pelo cliente no checkout. O preço unitário
// vem sempre do cadastro do produto, nunca da requisição.
type CartItem struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

// Receipt é o payload usado pela tela de recibo e pela impressão.
type Receipt struct {
	StoreName     string     `json:"store_name"`
	ReceiptNumber string     `json:"receipt_number"`
	CashierName   string     `json:"cashier_name"`
	Items         []SaleItem `json:"items"`
	TotalAmount   float64    `json:"total_amount"`
	Timestamp     time.Time  `json:"timestamp"`
}
