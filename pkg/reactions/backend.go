package reactions

import (
	"database/sql"

	"github.com/lib/pq"
)

// Backend reads and writes reaction rows. The natural key of a row is
// (post_id, viewer_id, emoji), hitting it twice is the idempotent case.
type Backend struct {
	db *sql.DB
}

func NewBackend(db *sql.DB) *Backend {
	return &Backend{db: db}
}

// IsConflict reports whether an error is a unique constraint violation,
// meaning the desired row already exists.
func IsConflict(err error) bool {
	pqErr, ok := err.(*pq.Error)
	return ok && pqErr.Code == "23505"
}

func (b *Backend) Upsert(post string, viewer int, emoji string) error {
	stmt, err := b.db.Prepare("INSERT INTO reactions (post_id, viewer_id, emoji) VALUES ($1, $2, $3);")
	if err != nil {
		return err
	}

	_, err = stmt.Exec(post, viewer, emoji)
	return err
}

func (b *Backend) Delete(post string, viewer int, emoji string) error {
	stmt, err := b.db.Prepare("DELETE FROM reactions WHERE post_id = $1 AND viewer_id = $2 AND emoji = $3;")
	if err != nil {
		return err
	}

	_, err = stmt.Exec(post, viewer, emoji)
	return err
}

// CountsForPosts returns how many viewers reacted to each of the posts.
func (b *Backend) CountsForPosts(posts []string, emoji string) (map[string]int, error) {
	stmt, err := b.db.Prepare("SELECT post_id, COUNT(*) FROM reactions WHERE post_id = ANY($1) AND emoji = $2 GROUP BY post_id;")
	if err != nil {
		return nil, err
	}

	rows, err := stmt.Query(pq.Array(posts), emoji)
	if err != nil {
		return nil, err
	}

	result := make(map[string]int)

	for rows.Next() {
		var (
			post  string
			count int
		)

		err := rows.Scan(&post, &count)
		if err != nil {
			return nil, err
		}

		result[post] = count
	}

	return result, nil
}

// ViewerReactions returns which of the posts the viewer reacted to.
func (b *Backend) ViewerReactions(viewer int, posts []string, emoji string) (map[string]bool, error) {
	stmt, err := b.db.Prepare("SELECT post_id FROM reactions WHERE viewer_id = $1 AND post_id = ANY($2) AND emoji = $3;")
	if err != nil {
		return nil, err
	}

	rows, err := stmt.Query(viewer, pq.Array(posts), emoji)
	if err != nil {
		return nil, err
	}

	result := make(map[string]bool)

	for rows.Next() {
		var post string

		err := rows.Scan(&post)
		if err != nil {
			return nil, err
		}

		result[post] = true
	}

	return result, nil
}

// SummaryForPost returns per-emoji reaction counts for a group post.
func (b *Backend) SummaryForPost(post string) ([]Summary, error) {
	stmt, err := b.db.Prepare("SELECT emoji, COUNT(*) FROM reactions WHERE post_id = $1 GROUP BY emoji ORDER BY COUNT(*) DESC;")
	if err != nil {
		return nil, err
	}

	rows, err := stmt.Query(post)
	if err != nil {
		return nil, err
	}

	result := make([]Summary, 0)

	for rows.Next() {
		summary := Summary{}

		err := rows.Scan(&summary.Emoji, &summary.Count)
		if err != nil {
			return nil, err
		}

		result = append(result, summary)
	}

	return result, nil
}
