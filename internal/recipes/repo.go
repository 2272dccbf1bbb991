package recipes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/realjbmangum/clarkstark/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrRecipeNotFound = errors.New("recipe not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Recipe, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "recipes.repo.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	row := r.db.QueryRow(ctx, `
		SELECT id, name, category, prep_time, cook_time, servings,
			calories, protein, carbs, fat, ingredients, instructions, notes, favorite
		FROM recipes WHERE id = $1
	`, id)

	recipe, err := scanRecipe(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrRecipeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get recipe: %w", err)
	}
	return recipe, nil
}

// List returns recipes ordered by name, optionally narrowed by category
// and/or favorites.
func (r *Repo) List(ctx context.Context, filter ListFilter) (_ []Recipe, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "recipes.repo.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	query := `
		SELECT id, name, category, prep_time, cook_time, servings,
			calories, protein, carbs, fat, ingredients, instructions, notes, favorite
		FROM recipes`
	var conditions []string
	var args []any
	if filter.Category != "" {
		args = append(args, filter.Category)
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)))
	}
	if filter.FavoritesOnly {
		conditions = append(conditions, "favorite = TRUE")
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY name"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query recipes: %w", err)
	}
	defer rows.Close()

	var recipes []Recipe
	for rows.Next() {
		recipe, err := scanRecipe(rows)
		if err != nil {
			return nil, fmt.Errorf("scan recipe: %w", err)
		}
		recipes = append(recipes, *recipe)
	}
	return recipes, rows.Err()
}

func (r *Repo) Add(ctx context.Context, recipe *Recipe) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "recipes.repo.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	ingredientsJson, instructionsJson, err := marshalRecipeLists(recipe)
	if err != nil {
		return 0, err
	}

	var id int
	err = r.db.QueryRow(ctx, `
		INSERT INTO recipes (name, category, prep_time, cook_time, servings,
			calories, protein, carbs, fat, ingredients, instructions, notes, favorite)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id
	`, recipe.Name, recipe.Category, recipe.PrepTime, recipe.CookTime, recipe.Servings,
		recipe.Calories, recipe.Protein, recipe.Carbs, recipe.Fat,
		ingredientsJson, instructionsJson, recipe.Notes, recipe.Favorite,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert recipe: %w", err)
	}
	return id, nil
}

func (r *Repo) Update(ctx context.Context, recipe *Recipe) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "recipes.repo.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	ingredientsJson, instructionsJson, err := marshalRecipeLists(recipe)
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, `
		UPDATE recipes SET
			name = $1, category = $2, prep_time = $3, cook_time = $4, servings = $5,
			calories = $6, protein = $7, carbs = $8, fat = $9,
			ingredients = $10, instructions = $11, notes = $12, favorite = $13
		WHERE id = $14
	`, recipe.Name, recipe.Category, recipe.PrepTime, recipe.CookTime, recipe.Servings,
		recipe.Calories, recipe.Protein, recipe.Carbs, recipe.Fat,
		ingredientsJson, instructionsJson, recipe.Notes, recipe.Favorite, recipe.ID,
	)
	if err != nil {
		return fmt.Errorf("update recipe: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrRecipeNotFound
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "recipes.repo.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `DELETE FROM recipes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete recipe: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrRecipeNotFound
	}
	return nil
}

func marshalRecipeLists(recipe *Recipe) (ingredients, instructions string, err error) {
	if recipe.Ingredients == nil {
		recipe.Ingredients = []string{}
	}
	if recipe.Instructions == nil {
		recipe.Instructions = []string{}
	}
	ingredientsJson, err := json.Marshal(recipe.Ingredients)
	if err != nil {
		return "", "", fmt.Errorf("marshal ingredients: %w", err)
	}
	instructionsJson, err := json.Marshal(recipe.Instructions)
	if err != nil {
		return "", "", fmt.Errorf("marshal instructions: %w", err)
	}
	return string(ingredientsJson), string(instructionsJson), nil
}

func scanRecipe(row pgx.Row) (*Recipe, error) {
	recipe := &Recipe{}
	var ingredientsJson, instructionsJson string
	if err := row.Scan(
		&recipe.ID, &recipe.Name, &recipe.Category,
		&recipe.PrepTime, &recipe.CookTime, &recipe.Servings,
		&recipe.Calories, &recipe.Protein, &recipe.Carbs, &recipe.Fat,
		&ingredientsJson, &instructionsJson, &recipe.Notes, &recipe.Favorite,
	); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(ingredientsJson), &recipe.Ingredients); err != nil {
		recipe.Ingredients = []string{}
	}
	if err := json.Unmarshal([]byte(instructionsJson), &recipe.Instructions); err != nil {
		recipe.Instructions = []string{}
	}
	return recipe, nil
}
