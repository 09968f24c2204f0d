package repository

import (
	"database/sql"
	"fmt"

	"github.com/Kyosue/vetra/infrastructure/database/postgres"
	"github.com/Kyosue/vetra/internal/domain"
	"github.com/Masterminds/squirrel"
)

const productsTable = "products"

type ProductRepository interface {
	CreateProduct(product *domain.Product) (*domain.Product, error)
	UpdateProduct(product *domain.Product) error
	GetProductByID(productID int) (*domain.Product, error)
	ListProducts() ([]*domain.Product, error)
	DecrementStock(tx *sql.Tx, productID int, quantity int) error
}

type productRepository struct {
	conn *postgres.Connection
}

func NewProductRepository(conn *postgres.Connection) ProductRepository {
	return &productRepository{
		conn: conn,
	}
}

func (r *productRepository) CreateProduct(product *domain.Product) (*domain.Product, error) {
	queryBuilder := squirrel.
		Insert(productsTable).
		Columns("name", "category", "price", "stock", "image_url").
		Values(product.Name, product.Category, product.Price, product.Stock, product.ImageURL).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	productSQL, productArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	err = r.conn.QueryRow(productSQL, productArgs...).Scan(
		&product.ID,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar produto: %w", err)
	}

	return product, nil
}

func (r *productRepository) UpdateProduct(product *domain.Product) error {
	queryBuilder := squirrel.
		Update(productsTable).
		Set("name", product.Name).
		Set("category", product.Category).
		Set("price", product.Price).
		Set("stock", product.Stock).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": product.ID})

	if product.ImageURL != nil && *product.ImageURL != "" {
		queryBuilder = queryBuilder.Set("image_url", product.ImageURL)
	}

	if product.Deleted {
		queryBuilder = queryBuilder.Set("deleted", true)
		queryBuilder = queryBuilder.Set("deleted_at", product.DeletedAt)
	}

	productSQL, productArgs, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	_, err = r.conn.Exec(productSQL, productArgs...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar produto: %w", err)
	}

	return nil
}

func (r *productRepository) GetProductByID(productID int) (*domain.Product, error) {
	var product domain.Product
	err := r.conn.QueryRow("SELECT id, name, category, price, stock, image_url, created_at, updated_at FROM products WHERE deleted = false AND id = $1", productID).Scan(
		&product.ID,
		&product.Name,
		&product.Category,
		&product.Price,
		&product.Stock,
		&product.ImageURL,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &product, nil
}

func (r *productRepository) ListProducts() ([]*domain.Product, error) {
	queryBuilder := squirrel.
		Select("id", "name", "category", "price", "stock", "image_url", "created_at", "updated_at").
		From(productsTable).
		Where(squirrel.Eq{"deleted": false}).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar)

	productsSQL, productsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(productsSQL, productsArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*domain.Product
	for rows.Next() {
		var product domain.Product
		if err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.Category,
			&product.Price,
			&product.Stock,
			&product.ImageURL,
			&product.CreatedAt,
			&product.UpdatedAt,
		); err != nil {
			return nil, err
		}

		products = append(products, &product)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

// DecrementStock baixa o estoque dentro da transação do checkout.
// A cláusula stock >= quantity garante que o estoque nunca fica negativo
// mesmo com dois checkouts simultâneos do mesmo produto.
func (r *productRepository) DecrementStock(tx *sql.Tx, productID int, quantity int) error {
	result, err := tx.Exec(
		"UPDATE products SET stock = stock - $1, updated_at = NOW() WHERE id = $2 AND deleted = false AND stock >= $1",
		quantity,
		productID,
	)
	if err != nil {
		return fmt.Errorf("erro ao baixar estoque do produto %d: %w", productID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao verificar baixa de estoque do produto %d: %w", productID, err)
	}

	if affected == 0 {
		return fmt.Errorf("estoque insuficiente para o produto %d", productID)
	}

	return nil
}
