package documents

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/sirupsen/logrus"

	"layerboard/core"
)

type (
	DocumentCreateResponse struct {
		ID string `json:"id"`
	}
)

// HandleCreate stores a posted document and returns its id. The payload may
// be the current multi-page shape or a legacy flat layer array; both are
// normalized by the decoder before storage.
func HandleCreate(store core.DocumentStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			logrus.WithField("error", err).Error("Failed to read request body")
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		doc, err := core.DecodeDocument(body)
		if err != nil {
			logrus.WithField("error", err).Warn("Failed to decode document payload")
			http.Error(w, "Invalid document payload", http.StatusBadRequest)
			return
		}

		id, err := store.Create(r.Context(), doc)
		if err != nil {
			logrus.WithField("error", err).Error("Failed to create document")
			http.Error(w, "Failed to create document", http.StatusInternalServerError)
			return
		}

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, DocumentCreateResponse{ID: id})
	}
}

// HandleGet returns a stored document as JSON.
func HandleGet(store core.DocumentStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if id == "" {
			http.Error(w, "Document id is required", http.StatusBadRequest)
			return
		}

		doc, err := store.FindID(r.Context(), id)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"error":       err,
				"document_id": id,
			}).Warn("Failed to get document")
			http.Error(w, "Document not found", http.StatusNotFound)
			return
		}

		render.JSON(w, r, doc)
	}
}
