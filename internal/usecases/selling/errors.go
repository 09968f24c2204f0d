package selling

import "errors"

var (
	ErrEmptyCart         = errors.New("o carrinho não pode estar vazio")
	ErrInvalidQuantity   = errors.New("quantidade deve ser maior que zero")
	ErrProductNotFound   = errors.New("produto não encontrado")
	ErrInsufficientStock = errors.New("estoque insuficiente")
	ErrSaleNotFound      = errors.New("venda não encontrada")
)
