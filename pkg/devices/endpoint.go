package devices

import (
	"encoding/json"
	"net/http"

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
	r.Path("/v1/devices").Methods("POST").HandlerFunc(e.AddDevice)
}

func (e *Endpoint) AddDevice(w http.ResponseWriter, r *http.Request) {
	viewer, ok := httputil.GetViewerIDFromContext(r.Context())
	if !ok {
		httputil.JsonError(w, http.StatusUnauthorized, httputil.ErrorCodeUnauthorized, "unauthorized")
		return
	}

	request := struct {
		Token string `json:"token"`
	}{}

	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil || request.Token == "" {
		httputil.JsonError(w, http.StatusBadRequest, httputil.ErrorCodeInvalidRequestBody, "invalid token")
		return
	}

	err = e.backend.AddDeviceForViewer(viewer, request.Token)
	if err != nil {
		httputil.JsonError(w, http.StatusInternalServerError, httputil.ErrorCodeFailedToStore, "failed to store device")
		return
	}

	httputil.JsonSuccess(w)
}
