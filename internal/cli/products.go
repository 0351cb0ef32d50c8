package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/ekuzmina/shopfront/internal/models"
)

// ListProducts prints the catalog, optionally filtered by a search query.
func (a *App) ListProducts(ctx context.Context, query string) error {
	var (
		products []models.Product
		err      error
	)
	if query == "" {
		products, err = a.products.List(ctx)
	} else {
		products, err = a.products.Search(ctx, query)
	}
	if err != nil {
		return fmt.Errorf("error listing products: %w", err)
	}

	printProducts(products)
	return nil
}

// ProductsByCategory prints the products in a category (exact match).
func (a *App) ProductsByCategory(ctx context.Context, category string) error {
	products, err := a.products.ByCategory(ctx, category)
	if err != nil {
		return fmt.Errorf("error filtering products: %w", err)
	}
	printProducts(products)
	return nil
}

// AddProduct prompts for product fields and creates a catalog entry.
func (a *App) AddProduct(ctx context.Context) error {
	req := models.CreateProductRequest{}

	var err error
	if req.Title, err = GetSimpleText(a.reader, "Title", os.Stdout); err != nil {
		return err
	}
	if req.Description, err = GetSimpleText(a.reader, "Description", os.Stdout); err != nil {
		return err
	}
	priceStr, err := GetSimpleText(a.reader, "Price", os.Stdout)
	if err != nil {
		return err
	}
	req.Price, err = strconv.ParseFloat(priceStr, 64)
	if err != nil || req.Price < 0 {
		fmt.Println("Price must be a non-negative number")
		return fmt.Errorf("invalid price %q", priceStr)
	}
	if req.Category, err = GetSimpleText(a.reader, "Category", os.Stdout); err != nil {
		return err
	}

	p, err := a.products.Create(ctx, req)
	if err != nil {
		return fmt.Errorf("error creating product: %w", err)
	}
	fmt.Printf("Created product %s (%s)\n", p.Title, p.ID)
	return nil
}

// DeleteProduct removes one product by id.
func (a *App) DeleteProduct(ctx context.Context, id string) error {
	removed, err := a.products.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("error deleting product: %w", err)
	}
	if removed {
		fmt.Println("Product deleted")
	} else {
		fmt.Println("No such product (nothing deleted)")
	}
	return nil
}

func printProducts(products []models.Product) {
	if len(products) == 0 {
		fmt.Println("No products found")
		return
	}
	for _, p := range products {
		fmt.Printf("%-10s %-25s %8.2f  %-12s stock=%d rating=%.1f\n",
			p.ID, p.Title, p.Price, p.Category, p.Stock, p.Rating)
	}
}
