package repository

import (
	"database/sql"
	"fmt"

	"github.com/Kyosue/vetra/infrastructure/database/postgres"
	"github.com/Kyosue/vetra/internal/domain"
	"github.com/Masterminds/squirrel"
)

const salesTable = "sales"

type SaleRepository interface {
	InsertSale(tx *sql.Tx, sale *domain.Sale) (*domain.Sale, error)
	GetSaleByID(saleID int) (*domain.Sale, error)
	ListSales() ([]*domain.Sale, error)
}

type saleRepository struct {
	conn *postgres.Connection
}

func NewSaleRepository(conn *postgres.Connection) SaleRepository {
	return &saleRepository{
		conn: conn,
	}
}

// InsertSale grava a venda dentro da transação do checkout.
// Os itens são serializados como JSONB; a venda nunca é atualizada depois.
func (r *saleRepository) InsertSale(tx *sql.Tx, sale *domain.Sale) (*domain.Sale, error) {
	itemsJSON, err := json.Marshal(sale.Items)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar itens da venda: %w", err)
	}

	queryBuilder := squirrel.
		Insert(salesTable).
		Columns("receipt_number", "user_id", "items", "total_amount", "timestamp").
		Values(sale.ReceiptNumber, sale.UserID, itemsJSON, sale.TotalAmount, sale.Timestamp).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar)

	saleSQL, saleArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	err = tx.QueryRow(saleSQL, saleArgs...).Scan(&sale.ID, &sale.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("erro ao gravar venda: %w", err)
	}

	return sale, nil
}

func (r *saleRepository) GetSaleByID(saleID int) (*domain.Sale, error) {
	row := r.conn.QueryRow(
		"SELECT id, receipt_number, user_id, items, total_amount, timestamp, created_at FROM sales WHERE id = $1",
		saleID,
	)

	sale, err := scanSale(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return sale, nil
}

// ListSales retorna o histórico completo de vendas. O agregador de relatório
// recebe sempre a lista inteira; não há paginação nem filtro por período.
func (r *saleRepository) ListSales() ([]*domain.Sale, error) {
	queryBuilder := squirrel.
		Select("id", "receipt_number", "user_id", "items", "total_amount", "timestamp", "created_at").
		From(salesTable).
		OrderBy("timestamp DESC").
		PlaceholderFormat(squirrel.Dollar)

	salesSQL, salesArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(salesSQL, salesArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sales := make([]*domain.Sale, 0)
	for rows.Next() {
		sale, err := scanSaleRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear venda: %w", err)
		}
		sales = append(sales, sale)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return sales, nil
}

func scanSale(row *sql.Row) (*domain.Sale, error) {
	var sale domain.Sale
	var itemsJSON []byte

	err := row.Scan(
		&sale.ID,
		&sale.ReceiptNumber,
		&sale.UserID,
		&itemsJSON,
		&sale.TotalAmount,
		&sale.Timestamp,
		&sale.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(itemsJSON, &sale.Items); err != nil {
		return nil, fmt.Errorf("erro ao desserializar itens da venda: %w", err)
	}

	return &sale, nil
}

func scanSaleRows(rows *sql.Rows) (*domain.Sale, error) {
	var sale domain.Sale
	var itemsJSON []byte

	err := rows.Scan(
		&sale.ID,
		&sale.ReceiptNumber,
		&sale.UserID,
		&itemsJSON,
		&sale.TotalAmount,
		&sale.Timestamp,
		&sale.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(itemsJSON, &sale.Items); err != nil {
		return nil, fmt.Errorf("erro ao desserializar itens da venda: %w", err)
	}

	return &sale, nil
}
