package seeder

import (
	"context"
	"fmt"

	"gigboard/internal/database"
)

type CategoriesSeeder struct{}

func (CategoriesSeeder) Name() string { return "categories" }

func (CategoriesSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "categories", "id", "name", "slug", "description", "created_at"); err != nil {
		return err
	}

	return database.RunInTx(ctx, db, func(tx database.Tx) error {
		for _, it := range defaultCategories {
			if _, err := tx.Exec(
				ctx,
				`INSERT INTO categories (name, slug, description) VALUES ($1, $2, $3) ON CONFLICT (slug) DO NOTHING`,
				it.Name,
				it.Slug,
				it.Description,
			); err != nil {
				return fmt.Errorf("insert category %s: %w", it.Slug, err)
			}
		}
		return nil
	})
}

var defaultCategories = []struct {
	Name        string
	Slug        string
	Description string
}{
	{Name: "Design", Slug: "design", Description: "UI/UX, branding and illustration"},
	{Name: "Development", Slug: "development", Description: "Web, mobile and backend engineering"},
	{Name: "Writing", Slug: "writing", Description: "Copywriting, editing and technical writing"},
	{Name: "Marketing", Slug: "marketing", Description: "SEO, social media and growth"},
	{Name: "Video & Animation", Slug: "video-animation", Description: "Editing, motion graphics and 3D"},
	{Name: "Data", Slug: "data", Description: "Analytics, data engineering and machine learning"},
}
