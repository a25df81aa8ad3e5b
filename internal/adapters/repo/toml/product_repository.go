package toml

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/tusc/internal/domain"
	"github.com/bnema/tusc/internal/ports"
	"github.com/spf13/viper"
)

type ProductRepository struct {
	path string
	mu   *sync.RWMutex
}

var _ ports.ProductRepository = (*ProductRepository)(nil)

func NewProductRepository(cfg *viper.Viper) (*ProductRepository, error) {
	path, err := resolveStorePath(cfg, ProductsPathKey, productsFileName)
	if err != nil {
		return nil, fmt.Errorf("products store: %w", err)
	}

	return &ProductRepository{path: path, mu: lockForPath(path)}, nil
}

func (r *ProductRepository) Path() string {
	return r.path
}

func (r *ProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var file productsFileSchema
	if err := readTOMLFile(r.path, &file); err != nil {
		return nil, fmt.Errorf("products file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return nil, err
	}

	products := make([]domain.Product, 0, len(file.Products))
	for _, entry := range file.Products {
		price, err := parseAmount(entry.Price)
		if err != nil {
			return nil, fmt.Errorf("decode products file: product %q: price: %w", entry.Name, err)
		}
		product := domain.Product{Name: entry.Name, Price: price, Quantity: entry.Quantity}
		if err := product.Validate(); err != nil {
			return nil, fmt.Errorf("decode products file: %w", err)
		}
		products = append(products, product)
	}

	return products, nil
}

func (r *ProductRepository) SaveAll(ctx context.Context, products []domain.Product) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	file := productsFileSchema{Products: make([]productSchema, 0, len(products))}
	file.applyDefaults()
	for _, product := range products {
		file.Products = append(file.Products, productSchema{
			Name:     product.Name,
			Price:    product.Price.String(),
			Quantity: product.Quantity,
		})
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := writeTOMLFile(r.path, file); err != nil {
		return fmt.Errorf("products file: %w", err)
	}

	return nil
}
