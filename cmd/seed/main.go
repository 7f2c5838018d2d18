// Command seed loads sample grocery data: a product catalog, an admin
// account and a demo customer. Safe to run repeatedly; rows are keyed on
// deterministic IDs and upserted.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/light-bringer/grocery-service/internal/models/m_product"
	"github.com/light-bringer/grocery-service/internal/models/m_user"
	"github.com/light-bringer/grocery-service/internal/pkg/auth"
	"github.com/light-bringer/grocery-service/internal/pkg/money"
)

type seedProduct struct {
	name        string
	description string
	category    string
	price       string
	stock       int64
}

var products = []seedProduct{
	{"Fresh Bananas", "Ripe yellow bananas, sold per bunch", "produce", "1.99", 100},
	{"Organic Apples", "Crisp organic apples, 2 lb bag", "produce", "4.99", 75},
	{"Whole Milk (1 gallon)", "Fresh whole milk", "dairy", "3.49", 50},
	{"Whole Wheat Bread", "Freshly baked whole wheat loaf", "bakery", "2.99", 30},
	{"Free Range Eggs", "One dozen free range eggs", "dairy", "4.99", 40},
	{"Organic Spinach", "Fresh organic spinach, 5 oz", "produce", "3.99", 25},
	{"Ground Beef", "85% lean ground beef, 1 lb", "meat", "6.99", 20},
	{"Chicken Breast", "Boneless skinless chicken breast, 1 lb", "meat", "8.99", 15},
	{"Cheddar Cheese", "Sharp cheddar cheese block, 8 oz", "dairy", "4.49", 35},
	{"Spaghetti Pasta", "Classic spaghetti, 1 lb box", "pantry", "1.99", 60},
	{"Tomato Sauce", "Basil tomato sauce, 24 oz jar", "pantry", "2.49", 45},
	{"Olive Oil", "Extra virgin olive oil, 500 ml", "pantry", "7.99", 20},
	{"Jasmine Rice", "Fragrant jasmine rice, 2 lb bag", "pantry", "3.99", 30},
	{"Black Beans", "Canned black beans, 15 oz", "pantry", "1.49", 50},
	{"Avocados", "Hass avocados, bag of 4", "produce", "3.99", 40},
	{"Orange Juice", "Fresh squeezed orange juice, 52 oz", "beverages", "4.99", 25},
	{"Greek Yogurt", "Plain Greek yogurt, 32 oz", "dairy", "5.99", 20},
	{"Salmon Fillet", "Atlantic salmon fillet, 1 lb", "seafood", "12.99", 10},
	{"Sweet Potatoes", "Sweet potatoes, 3 lb bag", "produce", "2.99", 35},
	{"Broccoli Crowns", "Fresh broccoli crowns, 1 lb", "produce", "2.49", 30},
}

func main() {
	ctx := context.Background()

	spannerDB := os.Getenv("SPANNER_DATABASE")
	if spannerDB == "" {
		spannerDB = "projects/test-project/instances/dev-instance/databases/grocery-store-db"
	}

	client, err := spanner.NewClient(ctx, spannerDB)
	if err != nil {
		log.Fatalf("Failed to create Spanner client: %v", err)
	}
	defer client.Close()

	if err := seed(ctx, client); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Seeding completed successfully!")
}

func seed(ctx context.Context, client *spanner.Client) error {
	now := time.Now().UTC()
	muts := make([]*spanner.Mutation, 0, len(products)+2)

	for _, p := range products {
		price, err := money.Parse(p.price)
		if err != nil {
			return fmt.Errorf("invalid price for %s: %w", p.name, err)
		}

		muts = append(muts, spanner.InsertOrUpdate(
			m_product.TableName,
			m_product.Columns,
			[]interface{}{
				stableID("product", p.name),
				p.name,
				p.description,
				p.category,
				price.Numerator(),
				price.Denominator(),
				p.stock,
				now,
				now,
			},
		))
	}

	adminMut, err := userMut("Administrator", "admin@example.com", "admin123", auth.RoleAdmin, now)
	if err != nil {
		return err
	}
	customerMut, err := userMut("John Doe", "customer@example.com", "customer123", auth.RoleCustomer, now)
	if err != nil {
		return err
	}
	muts = append(muts, adminMut, customerMut)

	if _, err := client.Apply(ctx, muts); err != nil {
		return fmt.Errorf("failed to apply seed mutations: %w", err)
	}

	log.Printf("Seeded %d products and 2 users", len(products))
	return nil
}

func userMut(name, email, password string, role auth.Role, now time.Time) (*spanner.Mutation, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password for %s: %w", email, err)
	}

	return spanner.InsertOrUpdate(
		m_user.TableName,
		m_user.Columns,
		[]interface{}{
			stableID("user", email),
			name,
			email,
			string(hash),
			spanner.NullString{},
			spanner.NullString{},
			string(role),
			now,
			now,
		},
	), nil
}

// stableID derives a deterministic UUID so reseeding updates instead of
// duplicating.
func stableID(kind, name string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(kind+":"+name)).String()
}
