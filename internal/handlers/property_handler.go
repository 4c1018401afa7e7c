package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"turakBack/internal/models"
	"turakBack/internal/services"
	"turakBack/utils"
)

const maxUploadSize = 32 << 20

type PropertyHandler struct {
	Service *services.PropertyService
	Storage *utils.S3Storage
}

// CreateProperty accepts either a JSON body or a multipart form with a
// "data" JSON field plus "images" file parts that are pushed to S3.
func (h *PropertyHandler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	requester, ok := RequesterFromContext(r)
	if !ok {
		writeError(w, models.ErrUnauthenticated)
		return
	}

	var p models.Property
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			http.Error(w, "invalid multipart form", http.StatusBadRequest)
			return
		}
		if err := json.Unmarshal([]byte(r.FormValue("data")), &p); err != nil {
			http.Error(w, "invalid data field", http.StatusBadRequest)
			return
		}
		images, err := h.uploadImages(r)
		if err != nil {
			writeError(w, err)
			return
		}
		p.Images = append(p.Images, images...)
	} else {
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
	}

	p.UserID = requester.UserID
	created, err := h.Service.CreateProperty(r.Context(), p)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *PropertyHandler) uploadImages(r *http.Request) ([]models.Image, error) {
	if h.Storage == nil || r.MultipartForm == nil {
		return nil, nil
	}
	var images []models.Image
	for _, header := range r.MultipartForm.File["images"] {
		file, err := header.Open()
		if err != nil {
			return nil, err
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			return nil, err
		}
		name := uuid.New().String() + filepath.Ext(header.Filename)
		contentType := header.Header.Get("Content-Type")
		url, err := h.Storage.UploadFile(data, name, "properties", contentType)
		if err != nil {
			return nil, err
		}
		images = append(images, models.Image{Name: header.Filename, Path: url, Type: contentType})
	}
	return images, nil
}

func (h *PropertyHandler) GetProperties(w http.ResponseWriter, r *http.Request) {
	filter := filterFromQuery(r.URL.Query())
	properties, err := h.Service.GetFilteredProperties(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, properties)
}

func (h *PropertyHandler) GetMapProperties(w http.ResponseWriter, r *http.Request) {
	filter := filterFromQuery(r.URL.Query())
	properties, err := h.Service.GetMapProperties(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, properties)
}

func (h *PropertyHandler) GetProperty(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	property, err := h.Service.GetPropertyByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, property)
}

func (h *PropertyHandler) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	requester, ok := RequesterFromContext(r)
	if !ok {
		writeError(w, models.ErrUnauthenticated)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var p models.Property
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	p.ID = id
	updated, err := h.Service.UpdateProperty(r.Context(), p, requester)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *PropertyHandler) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	requester, ok := RequesterFromContext(r)
	if !ok {
		writeError(w, models.ErrUnauthenticated)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.Service.DeleteProperty(r.Context(), id, requester); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *PropertyHandler) ArchiveProperty(w http.ResponseWriter, r *http.Request) {
	requester, ok := RequesterFromContext(r)
	if !ok {
		writeError(w, models.ErrUnauthenticated)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req struct {
		Archived bool `json:"archived"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.Service.ArchiveProperty(r.Context(), id, req.Archived, requester); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *PropertyHandler) GetMyProperties(w http.ResponseWriter, r *http.Request) {
	requester, ok := RequesterFromContext(r)
	if !ok {
		writeError(w, models.ErrUnauthenticated)
		return
	}
	properties, err := h.Service.GetPropertiesByUserID(r.Context(), requester.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, properties)
}
