package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/kelly670/ROLLEROSE/internal/models"
	"github.com/kelly670/ROLLEROSE/internal/services"
	"github.com/kelly670/ROLLEROSE/internal/storage"
)

type ItemHandler struct {
	Service *services.ItemService
	Storage storage.FileStorage
}

func (h *ItemHandler) GetItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.Service.GetItems(r.Context())
	if err != nil {
		log.Printf("GetItems error: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(items)
}

func (h *ItemHandler) GetItemsByCategory(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get(":category")

	items, err := h.Service.GetItemsByCategory(r.Context(), category)
	if err != nil {
		log.Printf("GetItemsByCategory error: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(items)
}

func (h *ItemHandler) GetItemByID(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get(":id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid item ID")
		return
	}

	item, err := h.Service.GetItemByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrItemNotFound) {
			writeError(w, http.StatusNotFound, "Item not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(item)
}

func (h *ItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	err := r.ParseMultipartForm(32 << 20) // 32MB
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	var item models.Item
	item.Name = r.FormValue("name")
	item.Category = r.FormValue("category")
	item.Price, _ = strconv.ParseFloat(r.FormValue("price"), 64)
	item.Description = r.FormValue("description")

	ref, ok, err := h.saveImage(r)
	if err != nil {
		log.Printf("CreateItem image error: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to store image")
		return
	}
	if ok {
		item.Image = &ref
	}

	createdItem, err := h.Service.CreateItem(r.Context(), item)
	if err != nil {
		log.Printf("CreateItem error: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(createdItem)
}

func (h *ItemHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get(":id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid item ID")
		return
	}

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	var item models.Item
	item.ID = id
	item.Name = r.FormValue("name")
	item.Category = r.FormValue("category")
	item.Price, _ = strconv.ParseFloat(r.FormValue("price"), 64)
	item.Description = r.FormValue("description")

	// Full-overwrite semantics: without a fresh upload the form carries the
	// prior image reference in the "image" field.
	ref, ok, err := h.saveImage(r)
	if err != nil {
		log.Printf("UpdateItem image error: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to store image")
		return
	}
	if ok {
		item.Image = &ref
	} else if prior := r.FormValue("image"); prior != "" {
		item.Image = &prior
	}

	if err := h.Service.UpdateItem(r.Context(), item); err != nil {
		if errors.Is(err, models.ErrItemNotFound) {
			writeError(w, http.StatusNotFound, "Item not found")
			return
		}
		log.Printf("UpdateItem error: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeSuccess(w)
}

func (h *ItemHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get(":id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid item ID")
		return
	}

	if err := h.Service.DeleteItem(r.Context(), id); err != nil {
		if errors.Is(err, models.ErrItemNotFound) {
			writeError(w, http.StatusNotFound, "Item not found")
			return
		}
		log.Printf("DeleteItem error: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeSuccess(w)
}

// saveImage buffers the optional "image" form file and hands it to the
// storage collaborator. The second return value reports whether a file was
// supplied at all.
func (h *ItemHandler) saveImage(r *http.Request) (string, bool, error) {
	file, header, err := r.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", false, nil
		}
		return "", false, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", false, err
	}

	ref, err := h.Storage.Save(data, header.Filename, header.Header.Get("Content-Type"))
	if err != nil {
		return "", false, err
	}
	return ref, true, nil
}
