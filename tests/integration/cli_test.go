package integration

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// TestMain builds the recipebox binary once before running tests.
func TestMain(m *testing.M) {
	projectRoot, err := FindProjectRoot()
	if err != nil {
		buildErr = err
		os.Exit(1)
	}

	tmpDir, err := os.MkdirTemp("", "recipebox-test-*")
	if err != nil {
		buildErr = err
		os.Exit(1)
	}
	recipeboxBin = filepath.Join(tmpDir, "recipebox")

	cmd := exec.Command("go", "build", "-o", recipeboxBin, "./cmd/recipebox")
	cmd.Dir = projectRoot
	if output, err := cmd.CombinedOutput(); err != nil {
		fmt.Fprintln(os.Stderr, &BuildError{Err: err, Output: string(output)})
		os.RemoveAll(tmpDir)
		os.Exit(1)
	}

	code := m.Run()
	os.RemoveAll(tmpDir)
	os.Exit(code)
}

var backends = []string{"json", "sqlite"}

func (e *TestEnv) addRecipe(title, category, ingredients string) {
	e.t.Helper()
	name := strings.ReplaceAll(strings.ToLower(title), " ", "-") + ".png"
	e.MustRun("add",
		"--title", title,
		"--category", category,
		"--ingredients", ingredients,
		"--steps", "Cook it.",
		"--image", e.WriteImage(name))
}

// TestExampleScenario appends one recipe, deletes it, and expects an empty catalog.
func TestExampleScenario(t *testing.T) {
	for _, backend := range backends {
		t.Run(backend, func(t *testing.T) {
			env := NewTestEnv(t, backend)
			env.MustRun("init")

			env.addRecipe("Soup", "Soups", "water, salt")
			list := ParseJSON[Listing](t, env.MustRun("--json", "list").Stdout)
			if list.TotalItems != 1 || list.Items[0].Recipe.Title != "Soup" {
				t.Fatalf("after add: %+v", list)
			}
			if got := list.Items[0].Recipe.Ingredients; len(got) != 2 || got[0] != "water" || got[1] != "salt" {
				t.Errorf("ingredients = %q", got)
			}
			if got := list.Items[0].Recipe.Image; got != "images/soup.png" {
				t.Errorf("image = %q, want images/soup.png", got)
			}

			env.MustRun("delete", "0")
			list = ParseJSON[Listing](t, env.MustRun("--json", "list").Stdout)
			if list.TotalItems != 0 || len(list.Items) != 0 {
				t.Errorf("after delete: %+v", list)
			}
		})
	}
}

// TestPagination checks 25 records at page size 10.
func TestPagination(t *testing.T) {
	for _, backend := range backends {
		t.Run(backend, func(t *testing.T) {
			env := NewTestEnv(t, backend)
			for i := range 25 {
				env.addRecipe(fmt.Sprintf("Recipe %02d", i), "Snacks", "")
			}

			page1 := ParseJSON[Listing](t, env.MustRun("--json", "list", "--page", "1", "--page-size", "10").Stdout)
			page3 := ParseJSON[Listing](t, env.MustRun("--json", "list", "--page", "3", "--page-size", "10").Stdout)

			if page1.TotalPages != 3 {
				t.Errorf("total pages = %d, want 3", page1.TotalPages)
			}
			if len(page1.Items) != 10 || page1.Items[0].Position != 0 {
				t.Errorf("page 1 = %+v", page1.Items)
			}
			if len(page3.Items) != 5 || page3.Items[0].Position != 20 || page3.Items[4].Recipe.Title != "Recipe 24" {
				t.Errorf("page 3 = %+v", page3.Items)
			}
		})
	}
}

// TestSearchAndDeleteFromResults deletes a search hit by its displayed position.
func TestSearchAndDeleteFromResults(t *testing.T) {
	env := NewTestEnv(t, "json")
	env.addRecipe("Cake", "Desserts", "flour")
	env.addRecipe("Grilled chicken", "Grilled", "chicken")
	env.addRecipe("Dessert bars", "Snacks", "oats")

	hits := ParseJSON[Listing](t, env.MustRun("--json", "search", "--query", "CHICKEN").Stdout)
	if len(hits.Items) != 1 || hits.Items[0].Position != 1 {
		t.Fatalf("search hits = %+v", hits.Items)
	}

	hits = ParseJSON[Listing](t, env.MustRun("--json", "search", "--category", "Desserts").Stdout)
	if len(hits.Items) != 1 || hits.Items[0].Recipe.Title != "Cake" {
		t.Fatalf("category hits = %+v", hits.Items)
	}

	env.MustRun("delete", "1")
	recipes := env.ReadRecipesFile()
	if len(recipes) != 2 || recipes[0].Title != "Cake" || recipes[1].Title != "Dessert bars" {
		t.Errorf("recipes.json = %+v", recipes)
	}
}

// TestStorageFileFormat checks the on-disk layout other tools read.
func TestStorageFileFormat(t *testing.T) {
	env := NewTestEnv(t, "json")
	env.addRecipe("Soup", "Soups", "water")

	data, err := os.ReadFile(filepath.Join(env.DataDir, "recipes.json"))
	if err != nil {
		t.Fatal(err)
	}
	want := `[
    {
        "title": "Soup",
        "category": "Soups",
        "ingredients": [
            "water"
        ],
        "steps": "Cook it.",
        "image": "images/soup.png"
    }
]`
	if string(data) != want {
		t.Errorf("recipes.json =\n%s\nwant\n%s", data, want)
	}
	if _, err := os.Stat(filepath.Join(env.DataDir, "images", "soup.png")); err != nil {
		t.Errorf("image not stored: %v", err)
	}
}

// TestExitCodes checks the user error exit code.
func TestExitCodes(t *testing.T) {
	env := NewTestEnv(t, "json")

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"delete out of range", []string{"delete", "0"}, 1},
		{"empty search", []string{"search"}, 1},
		{"unknown category", []string{"add", "--title", "x", "--category", "Dessert", "--image", env.WriteImage("x.png")}, 1},
		{"unknown command", []string{"frobnicate"}, 1},
		{"version", []string{"version"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := env.Run(tt.args...)
			if result.ExitCode != tt.want {
				t.Errorf("exit code = %d, want %d (stderr: %s)", result.ExitCode, tt.want, result.Stderr)
			}
		})
	}
}
