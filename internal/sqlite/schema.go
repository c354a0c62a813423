package sqlite

// Schema DDL. Statements are idempotent; the database is the source of truth
// and is reopened, never rebuilt.
const (
	createCategories = `CREATE TABLE IF NOT EXISTS categories (
    name TEXT PRIMARY KEY,
    ordinal INTEGER NOT NULL
);`

	createRecipes = `CREATE TABLE IF NOT EXISTS recipes (
    seq INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL,
    category TEXT NOT NULL,
    ingredients TEXT NOT NULL,
    steps TEXT NOT NULL,
    image TEXT NOT NULL
);`

	idxRecipesCategory = `CREATE INDEX IF NOT EXISTS idx_recipes_category ON recipes(category);`
)

// schemaDDL lists all statements in dependency order.
var schemaDDL = []string{
	createCategories,
	createRecipes,
	idxRecipesCategory,
}
