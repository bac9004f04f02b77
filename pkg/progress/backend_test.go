package progress_test

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/hushsocial/hush/pkg/progress"
)

func TestBackend_GetShelfForViewer(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	backend := progress.NewBackend(db)

	viewer := 1
	mock.ExpectPrepare("^SELECT (.+)").
		ExpectQuery().
		WithArgs(viewer).
		WillReturnRows(
			mock.NewRows([]string{"catalog_item_id", "kind", "total_pages", "status", "current_page", "current_percent", "current_season", "current_episode"}).
				AddRow("f47ac10b-58cc-0372-8567-0e02b2c3d479", "book", 320, "in_progress", 119, nil, nil, nil).
				AddRow("9b2495e4-4247-4dd8-8e33-5a4e8b3e44a1", "episodic", nil, "completed", nil, nil, 2, 1),
		)

	result, err := backend.GetShelfForViewer(viewer)
	if err != nil {
		t.Fatal(err)
	}

	if len(result) != 2 {
		t.Fatalf("expected 2 entries got %d", len(result))
	}

	if result[0].Kind != progress.ItemBook || result[0].TotalPages != 320 {
		t.Fatal("book entry not parsed")
	}

	if result[0].Progress.Page == nil || *result[0].Progress.Page != 119 {
		t.Fatal("page not parsed")
	}

	if result[1].Progress.Status != progress.StatusCompleted {
		t.Fatal("status not parsed")
	}
}

func TestBackend_GetUnits(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	backend := progress.NewBackend(db)

	item := "f47ac10b-58cc-0372-8567-0e02b2c3d479"
	mock.ExpectPrepare("^SELECT (.+)").
		ExpectQuery().
		WithArgs(item).
		WillReturnRows(
			mock.NewRows([]string{"season", "episode"}).
				AddRow(1, 1).
				AddRow(1, 2).
				AddRow(2, 1),
		)

	result, err := backend.GetUnits(item)
	if err != nil {
		t.Fatal(err)
	}

	if len(result) != 3 {
		t.Fatalf("expected 3 units got %d", len(result))
	}

	if result[2].Season != 2 || result[2].Episode != 1 {
		t.Fatal("units not scanned in order")
	}
}

func TestBackend_UpdateProgress(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	backend := progress.NewBackend(db)

	mock.ExpectPrepare("^INSERT (.+)").
		ExpectExec().
		WillReturnResult(sqlmock.NewResult(1, 1))

	page := 120
	err = backend.UpdateProgress(1, "f47ac10b-58cc-0372-8567-0e02b2c3d479", progress.ViewerProgress{
		Status: progress.StatusInProgress,
		Page:   &page,
	})

	if err != nil {
		t.Fatal(err)
	}
}
