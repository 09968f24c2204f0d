package inventory

import "errors"

var (
	ErrProductNotFound     = errors.New("produto não encontrado")
	ErrMissingRequiredData = errors.New("nome e preço do produto são obrigatórios")
	ErrInvalidPrice        = errors.New("preço do produto não pode ser negativo")
	ErrInvalidStock        = errors.New("estoque do produto não pode ser negativo")
)
