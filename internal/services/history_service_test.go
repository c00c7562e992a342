package services

import (
	"context"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"sosio/internal/pagination"
	"sosio/internal/testutil"
)

func TestGetHistory(t *testing.T) {
	ctx := context.Background()

	t.Run("capped_and_newest_first", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewHistoryService(db)

		member := testutil.CreateTestMember(t, db)
		testutil.CreateTestTransactions(t, db, member.ID, pagination.HistoryLimit+20)

		rows, err := svc.GetHistory(ctx, member.ID)
		testutil.AssertNoError(t, err)

		if len(rows) != pagination.HistoryLimit {
			t.Fatalf("expected %d rows, got %d", pagination.HistoryLimit, len(rows))
		}
		dates := make([]time.Time, len(rows))
		for i, r := range rows {
			dates[i] = r.Date
		}
		testutil.AssertNewestFirst(t, dates)
		if rows[0].Amount != float64(pagination.HistoryLimit+20) {
			t.Errorf("expected newest row first, got amount %f", rows[0].Amount)
		}
	})

	t.Run("same_date_ties_by_id", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewHistoryService(db)

		member := testutil.CreateTestMember(t, db)
		day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
		first := testutil.CreateTestTransaction(t, db, member.ID, 1, day)
		second := testutil.CreateTestTransaction(t, db, member.ID, 2, day)

		rows, err := svc.GetHistory(ctx, member.ID)
		testutil.AssertNoError(t, err)
		if len(rows) != 2 || rows[0].ID != second.ID || rows[1].ID != first.ID {
			t.Errorf("expected later insert first on equal dates, got %+v", rows)
		}
	})
}

func TestExportHistory(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewHistoryService(db)

	member := testutil.CreateTestMember(t, db)
	testutil.CreateTestTransactions(t, db, member.ID, 3)

	buf, err := svc.ExportHistory(ctx, member.ID)
	testutil.AssertNoError(t, err)

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("failed to open exported workbook: %v", err)
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(historySheet)
	if err != nil {
		t.Fatalf("failed to read rows: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("expected header plus 3 rows, got %d", len(rows))
	}
	if rows[0][0] != "Date" || rows[0][3] != "Amount" {
		t.Errorf("unexpected header row: %v", rows[0])
	}
	if rows[1][0] != "2024-01-03" {
		t.Errorf("expected newest row first, got %v", rows[1])
	}
}
