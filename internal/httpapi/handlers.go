package httpapi

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mesh-intelligence/recipebox/internal/catalog"
	"github.com/mesh-intelligence/recipebox/internal/images"
)

// maxUploadMemory bounds the multipart form held in memory; larger uploads
// spill to temporary files.
const maxUploadMemory = 32 << 20

// recipeHandler serves the recipe endpoints.
type recipeHandler struct {
	catalog *catalog.Catalog
	logger  *slog.Logger
}

// health handles GET /health.
func (h *recipeHandler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// categories handles GET /api/categories.
func (h *recipeHandler) categories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.Categories(), h.logger)
}

// list handles GET /api/recipes?page=&page_size=.
func (h *recipeHandler) list(w http.ResponseWriter, r *http.Request) {
	page, size, err := pageParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), h.logger)
		return
	}

	listing, err := h.catalog.List(r.Context(), size, page)
	if err != nil {
		writeCatalogError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, listing, h.logger)
}

// search handles GET /api/recipes/search?category=&q=&page=&page_size=.
func (h *recipeHandler) search(w http.ResponseWriter, r *http.Request) {
	page, size, err := pageParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), h.logger)
		return
	}

	listing, err := h.catalog.Search(r.Context(), catalog.SearchInput{
		Category: r.URL.Query().Get("category"),
		Query:    r.URL.Query().Get("q"),
		PageSize: size,
		Page:     page,
	})
	if err != nil {
		writeCatalogError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, listing, h.logger)
}

// get handles GET /api/recipes/{position}.
func (h *recipeHandler) get(w http.ResponseWriter, r *http.Request) {
	position, err := positionParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), h.logger)
		return
	}

	entry, err := h.catalog.Get(r.Context(), position)
	if err != nil {
		writeCatalogError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, entry, h.logger)
}

// create handles POST /api/recipes as a multipart form with fields title,
// category, ingredients, steps and file field image.
func (h *recipeHandler) create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form", h.logger)
		return
	}
	defer r.MultipartForm.RemoveAll()

	in := catalog.AddInput{
		Title:       r.FormValue("title"),
		Category:    r.FormValue("category"),
		Ingredients: r.FormValue("ingredients"),
		Steps:       r.FormValue("steps"),
	}
	file, header, err := r.FormFile("image")
	switch {
	case err == nil:
		defer file.Close()
		in.ImageName = header.Filename
		in.Image = file
	case errors.Is(err, http.ErrMissingFile):
	default:
		writeError(w, http.StatusBadRequest, "invalid image upload", h.logger)
		return
	}

	entry, err := h.catalog.Add(r.Context(), in)
	if err != nil {
		writeCatalogError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusCreated, entry, h.logger)
}

// delete handles DELETE /api/recipes/{position}.
func (h *recipeHandler) delete(w http.ResponseWriter, r *http.Request) {
	position, err := positionParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), h.logger)
		return
	}

	if err := h.catalog.Delete(r.Context(), position); err != nil {
		writeCatalogError(w, err, h.logger)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// image handles GET /images/{name}.
func (h *recipeHandler) image(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	rc, err := h.catalog.Image(r.Context(), images.StoredPath(name))
	if err != nil {
		writeCatalogError(w, err, h.logger)
		return
	}
	defer rc.Close()

	if ct := mime.TypeByExtension(filepath.Ext(name)); ct != "" {
		w.Header().Set("Content-Type", ct)
	}
	if _, err := io.Copy(w, rc); err != nil {
		h.logger.Warn("image stream interrupted", "name", name, "error", err)
	}
}

func positionParam(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "position")
	position, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid position %q", raw)
	}
	return position, nil
}

// pageParams reads page and page_size; absent values are 1 and 0 (the
// catalog default).
func pageParams(r *http.Request) (page, size int, err error) {
	page, err = intParam(r, "page", 1)
	if err != nil {
		return 0, 0, err
	}
	size, err = intParam(r, "page_size", 0)
	if err != nil {
		return 0, 0, err
	}
	return page, size, nil
}

func intParam(r *http.Request, key string, def int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", key, raw)
	}
	return v, nil
}
