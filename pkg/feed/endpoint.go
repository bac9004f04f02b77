package feed

import (
	"database/sql"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	httputil "github.com/hushsocial/hush/pkg/http"
	"github.com/hushsocial/hush/pkg/progress"
	"github.com/hushsocial/hush/pkg/pubsub"
	"github.com/hushsocial/hush/pkg/reactions"
)

type Endpoint struct {
	backend   *Backend
	shelf     *progress.Backend
	reactions *reactions.Backend
	cache     *reactions.Cache
	engine    *reactions.Engine
	queue     *pubsub.Queue
}

func NewEndpoint(
	backend *Backend,
	shelf *progress.Backend,
	reactionsBackend *reactions.Backend,
	cache *reactions.Cache,
	engine *reactions.Engine,
	queue *pubsub.Queue,
) *Endpoint {
	return &Endpoint{
		backend:   backend,
		shelf:     shelf,
		reactions: reactionsBackend,
		cache:     cache,
		engine:    engine,
		queue:     queue,
	}
}

func (e *Endpoint) Router() *mux.Router {
	r := mux.NewRouter()
	e.Mount(r)
	return r
}

func (e *Endpoint) Mount(r *mux.Router) {
	r.Path("/v1/feed").Methods("GET").HandlerFunc(e.GetFeed)
	r.Path("/v1/posts").Methods("POST").HandlerFunc(e.CreatePost)
	r.Path("/v1/posts/{id}").Methods("DELETE").HandlerFunc(e.DeletePost)
}

type feedPost struct {
	*Post
	Reactions reactions.State `json:"reactions"`
}

// GetFeed loads posts, applies the spoiler gate against the viewer's
// shelf and hydrates reaction state for the rendered result.
func (e *Endpoint) GetFeed(w http.ResponseWriter, r *http.Request) {
	viewer, ok := httputil.GetViewerIDFromContext(r.Context())
	if !ok {
		httputil.JsonError(w, http.StatusUnauthorized, httputil.ErrorCodeUnauthorized, "unauthorized")
		return
	}

	limit := httputil.GetInt(r.URL.Query(), "limit", 20)
	offset := httputil.GetInt(r.URL.Query(), "offset", 0)

	posts, err := e.backend.GetFeedForViewer(viewer, limit, offset)
	if err != nil {
		httputil.JsonError(w, http.StatusInternalServerError, httputil.ErrorCodeFailedToStore, "failed to load feed")
		return
	}

	entries, err := e.shelf.GetShelfForViewer(viewer)
	if err != nil {
		httputil.JsonError(w, http.StatusInternalServerError, httputil.ErrorCodeFailedToStore, "failed to load shelf")
		return
	}

	visible := FilterVisibility(posts, progress.Index(entries))

	session := e.engine.Session(viewer)
	session.Hydrate(e.hydrate(viewer, visible))

	result := make([]feedPost, 0)
	for _, post := range visible {
		result = append(result, feedPost{Post: post, Reactions: session.State(post.ID)})
	}

	err = httputil.JsonEncode(w, result)
	if err != nil {
		log.Printf("failed to write feed response: %s", err.Error())
	}
}

// hydrate assembles per-post reaction state, serving counts from the
// cache where possible.
func (e *Endpoint) hydrate(viewer int, posts []*Post) map[string]reactions.State {
	ids := make([]string, 0)
	for _, post := range posts {
		ids = append(ids, post.ID)
	}

	states := make(map[string]reactions.State)
	if len(ids) == 0 {
		return states
	}

	counts := e.cache.Counts(ids)

	missing := make([]string, 0)
	for _, id := range ids {
		if _, ok := counts[id]; !ok {
			missing = append(missing, id)
		}
	}

	if len(missing) > 0 {
		fresh, err := e.reactions.CountsForPosts(missing, reactions.DefaultEmoji)
		if err != nil {
			log.Printf("reactions.CountsForPosts err: %v", err)
			fresh = map[string]int{}
		}

		fill := make(map[string]int)
		for _, id := range missing {
			fill[id] = fresh[id]
		}

		e.cache.SetCounts(fill)

		for id, count := range fill {
			counts[id] = count
		}
	}

	reacted, err := e.reactions.ViewerReactions(viewer, ids, reactions.DefaultEmoji)
	if err != nil {
		log.Printf("reactions.ViewerReactions err: %v", err)
		reacted = map[string]bool{}
	}

	for _, id := range ids {
		states[id] = reactions.State{
			ViewerHasReacted: reacted[id],
			ReactionCount:    counts[id],
		}
	}

	return states
}

type createPostRequest struct {
	Body          string          `json:"body"`
	CatalogItemID string          `json:"catalog_item_id"`
	Marker        progress.Marker `json:"marker"`
	GroupID       *int            `json:"group_id"`
}

func (e *Endpoint) CreatePost(w http.ResponseWriter, r *http.Request) {
	viewer, ok := httputil.GetViewerIDFromContext(r.Context())
	if !ok {
		httputil.JsonError(w, http.StatusUnauthorized, httputil.ErrorCodeUnauthorized, "unauthorized")
		return
	}

	request := createPostRequest{}
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil || request.Body == "" {
		httputil.JsonError(w, http.StatusBadRequest, httputil.ErrorCodeInvalidRequestBody, "invalid body")
		return
	}

	marker := progress.Marker{Kind: progress.MarkerNone}

	if request.CatalogItemID != "" {
		_, err := uuid.Parse(request.CatalogItemID)
		if err != nil {
			httputil.JsonError(w, http.StatusBadRequest, httputil.ErrorCodeInvalidRequestBody, "invalid item")
			return
		}

		marker = normalizeMarker(request.Marker)
	}

	id, err := e.backend.CreatePost(viewer, request.Body, request.CatalogItemID, marker, request.GroupID, time.Now().Unix())
	if err != nil {
		httputil.JsonError(w, http.StatusInternalServerError, httputil.ErrorCodeFailedToStore, "failed to create post")
		return
	}

	err = e.queue.Publish(pubsub.PostTopic, pubsub.NewPostEvent(id, viewer))
	if err != nil {
		log.Printf("queue.Publish err: %v", err)
	}

	err = httputil.JsonEncode(w, map[string]string{"id": id})
	if err != nil {
		log.Printf("failed to write post response: %s", err.Error())
	}
}

func (e *Endpoint) DeletePost(w http.ResponseWriter, r *http.Request) {
	viewer, ok := httputil.GetViewerIDFromContext(r.Context())
	if !ok {
		httputil.JsonError(w, http.StatusUnauthorized, httputil.ErrorCodeUnauthorized, "unauthorized")
		return
	}

	id := mux.Vars(r)["id"]

	err := e.backend.DeletePost(id, viewer)
	if err == sql.ErrNoRows {
		httputil.JsonError(w, http.StatusNotFound, httputil.ErrorCodeNotFound, "not found")
		return
	}

	if err != nil {
		httputil.JsonError(w, http.StatusInternalServerError, httputil.ErrorCodeFailedToStore, "failed to delete post")
		return
	}

	err = e.queue.Publish(pubsub.PostTopic, pubsub.NewDeletePostEvent(id))
	if err != nil {
		log.Printf("queue.Publish err: %v", err)
	}

	httputil.JsonSuccess(w)
}

// normalizeMarker drops fields a marker kind does not use and falls
// back to no gating for shapes that do not parse.
func normalizeMarker(marker progress.Marker) progress.Marker {
	switch marker.Kind {
	case progress.MarkerPage:
		return progress.Marker{Kind: progress.MarkerPage, Page: marker.Page}
	case progress.MarkerPercent:
		return progress.Marker{Kind: progress.MarkerPercent, Percent: progress.ClampPercent(marker.Percent)}
	case progress.MarkerEpisode:
		return progress.Marker{Kind: progress.MarkerEpisode, Season: marker.Season, Episode: marker.Episode}
	}

	return progress.Marker{Kind: progress.MarkerNone}
}
