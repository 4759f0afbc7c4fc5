// Seeds the database with fake catalog data for local development.
//
// Usage: DB_PATH=./db/bellavista.db go run ./scripts/seed-products
package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/bellavista/storefront/internal/variants"
	"github.com/bellavista/storefront/storage"
	"github.com/bellavista/storefront/storage/db"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/oklog/ulid/v2"
	"golang.org/x/sync/errgroup"
)

const numProducts = 40

var categories = []string{"joyeria", "accesorios", "ropa", "decoracion"}

var genders = []string{"mujer", "hombre", "unisex"}

var adjectives = []string{"Luna", "Sol", "Mar", "Río", "Flor", "Estrella", "Nube", "Arena"}

var kinds = []string{"Pulsera", "Collar", "Anillo", "Arete", "Bolsa", "Rebozo", "Tapete"}

func main() {
	gofakeit.Seed(time.Now().UnixNano())

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./db/bellavista.db"
	}

	store, err := storage.New(dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer store.Close()

	ctx := context.Background()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)

	for i := 0; i < numProducts; i++ {
		g.Go(func() error {
			return seedProduct(ctx, store.Queries)
		})
	}

	if err := g.Wait(); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	count, err := store.Queries.CountProducts(ctx)
	if err != nil {
		log.Fatalf("Failed to count products: %v", err)
	}
	log.Printf("Done. Database now holds %d products.", count)
}

func seedProduct(ctx context.Context, queries *db.Queries) error {
	name := fmt.Sprintf("%s %s", kinds[rand.Intn(len(kinds))], adjectives[rand.Intn(len(adjectives))])
	slug := variants.SlugifyKey(fmt.Sprintf("%s-%s", name, gofakeit.LetterN(4)), "producto")

	variantOptions := ""
	stock := int64(gofakeit.Number(0, 30))
	if gofakeit.Bool() {
		cfg, err := randomVariantConfig()
		if err != nil {
			return err
		}
		encoded, err := json.Marshal(cfg)
		if err != nil {
			return err
		}
		variantOptions = string(encoded)
		stock = cfg.TotalStock
	}

	now := time.Now().UTC()
	_, err := queries.CreateProduct(ctx, db.CreateProductParams{
		ID:             ulid.Make().String(),
		Slug:           slug,
		Sku:            slug,
		Name:           name,
		Description:    nullString(gofakeit.Sentence(12)),
		Category:       nullString(categories[rand.Intn(len(categories))]),
		Gender:         nullString(genders[rand.Intn(len(genders))]),
		PriceCents:     int64(gofakeit.Number(8000, 120000)),
		Stock:          stock,
		VariantOptions: nullString(variantOptions),
		ImageUrl:       nullString(fmt.Sprintf("/images/products/%s.jpg", slug)),
		Active:         1,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	return err
}

func randomVariantConfig() (variants.Config, error) {
	sizes := []string{"S", "M", "L"}

	combos := make([]any, 0, len(sizes))
	for _, size := range sizes {
		combos = append(combos, map[string]any{
			"values": map[string]any{"talla": size},
			"stock":  gofakeit.Number(0, 10),
		})
	}

	raw := map[string]any{
		"enabled": true,
		"options": []any{
			map[string]any{"label": "Talla", "values": sizes},
		},
		"variants": combos,
	}

	// Normalize only understands JSON-decoded shapes, so round-trip the
	// map through the encoder the way a stored blob would arrive.
	encoded, err := json.Marshal(raw)
	if err != nil {
		return variants.Config{}, err
	}
	return variants.Normalize(string(encoded)), nil
}

func nullString(value string) sql.NullString {
	return sql.NullString{String: value, Valid: value != ""}
}
