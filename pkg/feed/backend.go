package feed

import (
	"database/sql"

	"github.com/segmentio/ksuid"

	"github.com/hushsocial/hush/pkg/progress"
)

type Backend struct {
	db *sql.DB
}

func NewBackend(db *sql.DB) *Backend {
	return &Backend{db: db}
}

// GetFeedForViewer returns public posts and posts from groups the
// viewer belongs to, newest first. Markers are parsed strictly at this
// boundary, malformed rows gate nothing.
func (b *Backend) GetFeedForViewer(viewer, limit, offset int) ([]*Post, error) {
	stmt, err := b.db.Prepare("SELECT posts.id, posts.catalog_item_id, posts.marker_kind, posts.marker_page, posts.marker_percent, posts.marker_season, posts.marker_episode, posts.body, posts.author_id, posts.group_id, posts.created_at FROM posts LEFT JOIN group_members ON (posts.group_id = group_members.group_id AND group_members.user_id = $1) WHERE posts.group_id IS NULL OR group_members.user_id IS NOT NULL ORDER BY posts.created_at DESC LIMIT $2 OFFSET $3;")
	if err != nil {
		return nil, err
	}

	rows, err := stmt.Query(viewer, limit, offset)
	if err != nil {
		return nil, err
	}

	result := make([]*Post, 0)

	for rows.Next() {
		var (
			item                  sql.NullString
			kind                  sql.NullString
			page, season, episode sql.NullInt64
			percent               sql.NullFloat64
			group                 sql.NullInt64
		)

		post := &Post{}

		err := rows.Scan(&post.ID, &item, &kind, &page, &percent, &season, &episode, &post.Body, &post.AuthorID, &group, &post.CreatedAt)
		if err != nil {
			return nil, err
		}

		if item.Valid {
			post.CatalogItemID = item.String
		}

		post.Marker = progress.ParseMarker(kind.String, page, season, episode, percent)

		if group.Valid {
			id := int(group.Int64)
			post.GroupID = &id
		}

		result = append(result, post)
	}

	return result, nil
}

// GetPost returns a single post by id.
func (b *Backend) GetPost(id string) (*Post, error) {
	stmt, err := b.db.Prepare("SELECT id, body, author_id, created_at FROM posts WHERE id = $1;")
	if err != nil {
		return nil, err
	}

	post := &Post{}

	row := stmt.QueryRow(id)

	err = row.Scan(&post.ID, &post.Body, &post.AuthorID, &post.CreatedAt)
	if err != nil {
		return nil, err
	}

	return post, nil
}

// CreatePost stores a new post and returns its id.
func (b *Backend) CreatePost(author int, body string, item string, marker progress.Marker, group *int, createdAt int64) (string, error) {
	stmt, err := b.db.Prepare("INSERT INTO posts (id, catalog_item_id, marker_kind, marker_page, marker_percent, marker_season, marker_episode, body, author_id, group_id, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);")
	if err != nil {
		return "", err
	}

	id := ksuid.New().String()

	_, err = stmt.Exec(
		id,
		nullableString(item),
		string(marker.Kind),
		markerInt(marker.Kind == progress.MarkerPage, marker.Page),
		markerFloat(marker.Kind == progress.MarkerPercent, marker.Percent),
		markerInt(marker.Kind == progress.MarkerEpisode, marker.Season),
		markerInt(marker.Kind == progress.MarkerEpisode, marker.Episode),
		body,
		author,
		nullableGroup(group),
		createdAt,
	)

	if err != nil {
		return "", err
	}

	return id, nil
}

// DeletePost removes a post, only its author may do so.
func (b *Backend) DeletePost(id string, author int) error {
	stmt, err := b.db.Prepare("DELETE FROM posts WHERE id = $1 AND author_id = $2;")
	if err != nil {
		return err
	}

	res, err := stmt.Exec(id, author)
	if err != nil {
		return err
	}

	count, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if count == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func nullableString(v string) sql.NullString {
	if v == "" {
		return sql.NullString{}
	}

	return sql.NullString{String: v, Valid: true}
}

func nullableGroup(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}

	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func markerInt(valid bool, v int) sql.NullInt64 {
	if !valid {
		return sql.NullInt64{}
	}

	return sql.NullInt64{Int64: int64(v), Valid: true}
}

func markerFloat(valid bool, v float64) sql.NullFloat64 {
	if !valid {
		return sql.NullFloat64{}
	}

	return sql.NullFloat64{Float64: v, Valid: true}
}
