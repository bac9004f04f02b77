package progress

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	httputil "github.com/hushsocial/hush/pkg/http"
)

type Endpoint struct {
	backend *Backend
}

func NewEndpoint(backend *Backend) *Endpoint {
	return &Endpoint{backend: backend}
}

func (e *Endpoint) Router() *mux.Router {
	r := mux.NewRouter()
	e.Mount(r)
	return r
}

func (e *Endpoint) Mount(r *mux.Router) {
	r.Path("/v1/shelf").Methods("GET").HandlerFunc(e.GetShelf)
	r.Path("/v1/shelf/{item}").Methods("PUT").HandlerFunc(e.UpdateProgress)
}

type shelfItem struct {
	*ShelfEntry
	Summary Summary `json:"summary"`
}

func (e *Endpoint) GetShelf(w http.ResponseWriter, r *http.Request) {
	viewer, ok := httputil.GetViewerIDFromContext(r.Context())
	if !ok {
		httputil.JsonError(w, http.StatusUnauthorized, httputil.ErrorCodeUnauthorized, "unauthorized")
		return
	}

	entries, err := e.backend.GetShelfForViewer(viewer)
	if err != nil {
		httputil.JsonError(w, http.StatusInternalServerError, httputil.ErrorCodeFailedToStore, "failed to load shelf")
		return
	}

	result := make([]shelfItem, 0)
	for _, entry := range entries {
		var units []Unit
		if entry.Kind == ItemEpisodic {
			units, err = e.backend.GetUnits(entry.ItemID)
			if err != nil {
				log.Printf("backend.GetUnits err: %v", err)
			}
		}

		result = append(result, shelfItem{ShelfEntry: entry, Summary: Summarize(entry, units)})
	}

	err = httputil.JsonEncode(w, result)
	if err != nil {
		log.Printf("failed to write shelf response: %s", err.Error())
	}
}

func (e *Endpoint) UpdateProgress(w http.ResponseWriter, r *http.Request) {
	viewer, ok := httputil.GetViewerIDFromContext(r.Context())
	if !ok {
		httputil.JsonError(w, http.StatusUnauthorized, httputil.ErrorCodeUnauthorized, "unauthorized")
		return
	}

	params := mux.Vars(r)

	item, err := uuid.Parse(params["item"])
	if err != nil {
		httputil.JsonError(w, http.StatusBadRequest, httputil.ErrorCodeInvalidRequestBody, "invalid item")
		return
	}

	update := ViewerProgress{}
	err = json.NewDecoder(r.Body).Decode(&update)
	if err != nil {
		httputil.JsonError(w, http.StatusBadRequest, httputil.ErrorCodeInvalidRequestBody, "invalid body")
		return
	}

	if update.Status != StatusCompleted {
		update.Status = StatusInProgress
	}

	if update.Percent != nil {
		v := ClampPercent(*update.Percent)
		update.Percent = &v
	}

	err = e.backend.UpdateProgress(viewer, item.String(), update)
	if err != nil {
		httputil.JsonError(w, http.StatusInternalServerError, httputil.ErrorCodeFailedToStore, "failed to update")
		return
	}

	httputil.JsonSuccess(w)
}
