package feed_test

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/hushsocial/hush/pkg/feed"
	"github.com/hushsocial/hush/pkg/progress"
)

func TestBackend_GetFeedForViewer(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	backend := feed.NewBackend(db)

	viewer := 1
	mock.ExpectPrepare("^SELECT (.+)").
		ExpectQuery().
		WithArgs(viewer, 20, 0).
		WillReturnRows(
			mock.NewRows([]string{"id", "catalog_item_id", "marker_kind", "marker_page", "marker_percent", "marker_season", "marker_episode", "body", "author_id", "group_id", "created_at"}).
				AddRow("post-1", "item-1", "page", 120, nil, nil, nil, "spoilers!", 2, nil, 300).
				AddRow("post-2", nil, "none", nil, nil, nil, nil, "hello", 3, 9, 200).
				AddRow("post-3", "item-2", "banana", nil, nil, nil, nil, "odd marker", 4, nil, 100),
		)

	result, err := backend.GetFeedForViewer(viewer, 20, 0)
	if err != nil {
		t.Fatal(err)
	}

	if len(result) != 3 {
		t.Fatalf("expected 3 posts got %d", len(result))
	}

	if result[0].Marker.Kind != progress.MarkerPage || result[0].Marker.Page != 120 {
		t.Fatal("marker not parsed")
	}

	if result[1].CatalogItemID != "" || result[1].GroupID == nil || *result[1].GroupID != 9 {
		t.Fatal("nullable fields not parsed")
	}

	// A malformed marker must fall back to none instead of gating.
	if result[2].Marker.Kind != progress.MarkerNone {
		t.Fatal("malformed marker not mapped to none")
	}
}

func TestBackend_CreatePost(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	backend := feed.NewBackend(db)

	mock.ExpectPrepare("^INSERT (.+)").
		ExpectExec().
		WillReturnResult(sqlmock.NewResult(1, 1))

	id, err := backend.CreatePost(1, "hello", "item-1", progress.Marker{Kind: progress.MarkerPage, Page: 12}, nil, 300)
	if err != nil {
		t.Fatal(err)
	}

	if id == "" {
		t.Fatal("expected an id")
	}
}

func TestBackend_DeletePost_NotOwned(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	backend := feed.NewBackend(db)

	mock.ExpectPrepare("^DELETE (.+)").
		ExpectExec().
		WithArgs("post-1", 1).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = backend.DeletePost("post-1", 1)
	if err != sql.ErrNoRows {
		t.Fatalf("expected ErrNoRows got %v", err)
	}
}
