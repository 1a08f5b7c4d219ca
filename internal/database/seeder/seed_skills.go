package seeder

import (
	"context"
	"fmt"

	"gigboard/internal/database"
)

type SkillsSeeder struct{}

func (SkillsSeeder) Name() string { return "skills" }

func (SkillsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "skills", "id", "name", "category_id", "created_at"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	items := []struct {
		Name         string
		CategorySlug string
	}{
		{Name: "Figma", CategorySlug: "design"},
		{Name: "UI/UX Design", CategorySlug: "design"},
		{Name: "Illustration", CategorySlug: "design"},
		{Name: "React", CategorySlug: "development"},
		{Name: "TypeScript", CategorySlug: "development"},
		{Name: "Go", CategorySlug: "development"},
		{Name: "PostgreSQL", CategorySlug: "development"},
		{Name: "Copywriting", CategorySlug: "writing"},
		{Name: "Technical Writing", CategorySlug: "writing"},
		{Name: "SEO", CategorySlug: "marketing"},
		{Name: "After Effects", CategorySlug: "video-animation"},
		{Name: "Python", CategorySlug: "data"},
		{Name: "SQL", CategorySlug: "data"},
	}

	for _, it := range items {
		if _, err := tx.Exec(
			ctx,
			`INSERT INTO skills (name, category_id)
			 VALUES ($1, (SELECT id FROM categories WHERE slug = $2))
			 ON CONFLICT (name) DO NOTHING`,
			it.Name,
			it.CategorySlug,
		); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
