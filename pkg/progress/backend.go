package progress

import (
	"database/sql"
)

type Backend struct {
	db *sql.DB
}

func NewBackend(db *sql.DB) *Backend {
	return &Backend{db: db}
}

// GetShelfForViewer returns every shelf entry a viewer tracks, joined
// with the catalog item it belongs to.
func (b *Backend) GetShelfForViewer(viewer int) ([]*ShelfEntry, error) {
	stmt, err := b.db.Prepare("SELECT shelf.catalog_item_id, items.kind, items.total_pages, shelf.status, shelf.current_page, shelf.current_percent, shelf.current_season, shelf.current_episode FROM shelf INNER JOIN items ON (shelf.catalog_item_id = items.id) WHERE shelf.viewer_id = $1;")
	if err != nil {
		return nil, err
	}

	rows, err := stmt.Query(viewer)
	if err != nil {
		return nil, err
	}

	result := make([]*ShelfEntry, 0)

	for rows.Next() {
		var (
			kind                  string
			totalPages            sql.NullInt64
			status                string
			page, season, episode sql.NullInt64
			percent               sql.NullFloat64
		)

		entry := &ShelfEntry{}

		err := rows.Scan(&entry.ItemID, &kind, &totalPages, &status, &page, &percent, &season, &episode)
		if err != nil {
			return nil, err
		}

		entry.Kind = ItemKind(kind)
		if totalPages.Valid {
			entry.TotalPages = int(totalPages.Int64)
		}

		entry.Progress = ParseViewerProgress(status, page, season, episode, percent)

		result = append(result, entry)
	}

	return result, nil
}

// GetUnits returns the full ordered episode or chapter catalog of an item.
func (b *Backend) GetUnits(item string) ([]Unit, error) {
	stmt, err := b.db.Prepare("SELECT season, episode FROM units WHERE catalog_item_id = $1 ORDER BY season, episode;")
	if err != nil {
		return nil, err
	}

	rows, err := stmt.Query(item)
	if err != nil {
		return nil, err
	}

	result := make([]Unit, 0)

	for rows.Next() {
		unit := Unit{}

		err := rows.Scan(&unit.Season, &unit.Episode)
		if err != nil {
			return nil, err
		}

		result = append(result, unit)
	}

	return result, nil
}

// UpdateProgress upserts a viewer's shelf row for a catalog item.
func (b *Backend) UpdateProgress(viewer int, item string, update ViewerProgress) error {
	stmt, err := b.db.Prepare("INSERT INTO shelf (viewer_id, catalog_item_id, status, current_page, current_percent, current_season, current_episode) VALUES ($1, $2, $3, $4, $5, $6, $7) ON CONFLICT (viewer_id, catalog_item_id) DO UPDATE SET status = $3, current_page = $4, current_percent = $5, current_season = $6, current_episode = $7;")
	if err != nil {
		return err
	}

	_, err = stmt.Exec(
		viewer,
		item,
		string(update.Status),
		nullableInt(update.Page),
		nullableFloat(update.Percent),
		nullableInt(update.Season),
		nullableInt(update.Episode),
	)

	return err
}

func nullableInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}

	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func nullableFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}

	return sql.NullFloat64{Float64: *v, Valid: true}
}
