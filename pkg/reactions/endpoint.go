package reactions

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"

	httputil "github.com/hushsocial/hush/pkg/http"
)

type Endpoint struct {
	engine  *Engine
	backend *Backend
}

func NewEndpoint(engine *Engine, backend *Backend) *Endpoint {
	return &Endpoint{engine: engine, backend: backend}
}

func (e *Endpoint) Router() *mux.Router {
	r := mux.NewRouter()
	e.Mount(r)
	return r
}

func (e *Endpoint) Mount(r *mux.Router) {
	r.Path("/v1/posts/{id}/reactions/toggle").Methods("POST").HandlerFunc(e.Toggle)
	r.Path("/v1/posts/{id}/reactions/react").Methods("POST").HandlerFunc(e.React)
	r.Path("/v1/posts/{id}/reactions").Methods("GET").HandlerFunc(e.GetSummary)
	r.Path("/v1/posts/{id}/reactions/{emoji}").Methods("POST").HandlerFunc(e.AddEmoji)
	r.Path("/v1/posts/{id}/reactions/{emoji}").Methods("DELETE").HandlerFunc(e.RemoveEmoji)
}

// Toggle flips the viewer's reaction and responds with the optimistic
// state right away, reconciliation happens in the background.
func (e *Endpoint) Toggle(w http.ResponseWriter, r *http.Request) {
	viewer, ok := httputil.GetViewerIDFromContext(r.Context())
	if !ok {
		httputil.JsonError(w, http.StatusUnauthorized, httputil.ErrorCodeUnauthorized, "unauthorized")
		return
	}

	post := mux.Vars(r)["id"]

	state := e.engine.Session(viewer).Toggle(post)

	err := httputil.JsonEncode(w, state)
	if err != nil {
		log.Printf("failed to write reaction response: %s", err.Error())
	}
}

// React handles the double-action gesture, a no-op when already reacted.
func (e *Endpoint) React(w http.ResponseWriter, r *http.Request) {
	viewer, ok := httputil.GetViewerIDFromContext(r.Context())
	if !ok {
		httputil.JsonError(w, http.StatusUnauthorized, httputil.ErrorCodeUnauthorized, "unauthorized")
		return
	}

	post := mux.Vars(r)["id"]

	state := e.engine.Session(viewer).React(post)

	err := httputil.JsonEncode(w, state)
	if err != nil {
		log.Printf("failed to write reaction response: %s", err.Error())
	}
}

func (e *Endpoint) AddEmoji(w http.ResponseWriter, r *http.Request) {
	viewer, ok := httputil.GetViewerIDFromContext(r.Context())
	if !ok {
		httputil.JsonError(w, http.StatusUnauthorized, httputil.ErrorCodeUnauthorized, "unauthorized")
		return
	}

	params := mux.Vars(r)

	state := e.engine.Session(viewer).AddEmoji(params["id"], params["emoji"])

	err := httputil.JsonEncode(w, state)
	if err != nil {
		log.Printf("failed to write reaction response: %s", err.Error())
	}
}

func (e *Endpoint) RemoveEmoji(w http.ResponseWriter, r *http.Request) {
	viewer, ok := httputil.GetViewerIDFromContext(r.Context())
	if !ok {
		httputil.JsonError(w, http.StatusUnauthorized, httputil.ErrorCodeUnauthorized, "unauthorized")
		return
	}

	params := mux.Vars(r)

	state := e.engine.Session(viewer).RemoveEmoji(params["id"], params["emoji"])

	err := httputil.JsonEncode(w, state)
	if err != nil {
		log.Printf("failed to write reaction response: %s", err.Error())
	}
}

func (e *Endpoint) GetSummary(w http.ResponseWriter, r *http.Request) {
	post := mux.Vars(r)["id"]

	summary, err := e.backend.SummaryForPost(post)
	if err != nil {
		httputil.JsonError(w, http.StatusInternalServerError, httputil.ErrorCodeFailedToStore, "failed to load reactions")
		return
	}

	err = httputil.JsonEncode(w, summary)
	if err != nil {
		log.Printf("failed to write reaction response: %s", err.Error())
	}
}
