// Package fixtures holds the bundled seed records every store falls back to
// when durable storage has nothing (or nothing parsable) under its key.
//
// Accessors return deep copies so callers can never mutate the seed itself.
package fixtures

import "github.com/ekuzmina/shopfront/internal/models"

var credentials = []models.Credential{
	{
		Email:       "john.doe@example.com",
		UserName:    "johndoe",
		Password:    "password123",
		DisplayName: "John Doe",
	},
	{
		Email:       "jane.smith@example.com",
		UserName:    "janesmith",
		Password:    "password123",
		DisplayName: "Jane Smith",
	},
}

var users = []models.User{
	{
		ID:          "1",
		FirstName:   "John",
		LastName:    "Doe",
		UserName:    "johndoe",
		Email:       "john.doe@example.com",
		Phone:       "+1234567890",
		Gender:      models.GenderMale,
		DateOfBirth: "1990-01-15",
		Role:        models.RoleUser,
		DisplayName: "John Doe",
	},
	{
		ID:          "2",
		FirstName:   "Jane",
		LastName:    "Smith",
		UserName:    "janesmith",
		Email:       "jane.smith@example.com",
		Phone:       "+1234567891",
		Gender:      models.GenderFemale,
		DateOfBirth: "1992-05-20",
		Role:        models.RoleAdmin,
		DisplayName: "Jane Smith",
	},
}

var products = []models.Product{
	{
		ID:          "101",
		Title:       "Blue Shirt",
		Description: "Classic cotton shirt in navy blue",
		Price:       29.99,
		Category:    "clothing",
		Image:       "/assets/products/blue-shirt.jpg",
		Stock:       120,
		Rating:      4.2,
	},
	{
		ID:          "102",
		Title:       "Running Shoes",
		Description: "Lightweight trainers for daily runs",
		Price:       89.5,
		Category:    "footwear",
		Image:       "/assets/products/running-shoes.jpg",
		Stock:       45,
		Rating:      4.7,
	},
	{
		ID:          "103",
		Title:       "Leather Wallet",
		Description: "Slim bifold wallet, genuine leather",
		Price:       39,
		Category:    "accessories",
		Image:       "/assets/products/leather-wallet.jpg",
		Stock:       200,
		Rating:      3.9,
	},
	{
		ID:          "104",
		Title:       "Wool Scarf",
		Price:       24.95,
		Category:    "clothing",
		Image:       "/assets/products/wool-scarf.jpg",
		Stock:       80,
		Rating:      4.1,
	},
}

// Credentials returns a copy of the credential table used for login matching.
func Credentials() []models.Credential {
	out := make([]models.Credential, len(credentials))
	copy(out, credentials)
	return out
}

// Users returns a copy of the full-profile user table.
func Users() []models.User {
	out := make([]models.User, len(users))
	copy(out, users)
	return out
}

// Products returns a copy of the default product catalog.
func Products() []models.Product {
	out := make([]models.Product, len(products))
	copy(out, products)
	return out
}
