package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/saroz96/skyforgee-new-sub011/internal/domain/entity"
	"github.com/shopspring/decimal"
)

func lot(qty string, createdAt time.Time) entity.StockEntry {
	return entity.StockEntry{
		ID:        uuid.New(),
		Quantity:  decimal.RequireFromString(qty),
		CreatedAt: createdAt,
	}
}

func TestDrawFromLots(t *testing.T) {
	base := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	oldest := lot("10", base)
	middle := lot("5", base.AddDate(0, 0, 1))
	newest := lot("20", base.AddDate(0, 0, 2))
	lots := []entity.StockEntry{oldest, middle, newest}

	t.Run("single lot covers request", func(t *testing.T) {
		draws, err := drawFromLots(lots, dec("7"))
		if err != nil {
			t.Fatalf("drawFromLots() error = %v", err)
		}
		if len(draws) != 1 {
			t.Fatalf("expected 1 draw, got %d", len(draws))
		}
		if draws[0].Lot.ID != oldest.ID || !draws[0].Quantity.Equal(dec("7")) {
			t.Errorf("draw = %v from lot %s, want 7 from oldest", draws[0].Quantity, draws[0].Lot.ID)
		}
	})

	t.Run("request spans lots oldest first", func(t *testing.T) {
		draws, err := drawFromLots(lots, dec("18"))
		if err != nil {
			t.Fatalf("drawFromLots() error = %v", err)
		}
		if len(draws) != 3 {
			t.Fatalf("expected 3 draws, got %d", len(draws))
		}
		wantQty := []string{"10", "5", "3"}
		wantLot := []uuid.UUID{oldest.ID, middle.ID, newest.ID}
		for i, d := range draws {
			if d.Lot.ID != wantLot[i] {
				t.Errorf("draw %d from lot %s, want %s", i, d.Lot.ID, wantLot[i])
			}
			if !d.Quantity.Equal(dec(wantQty[i])) {
				t.Errorf("draw %d quantity = %s, want %s", i, d.Quantity, wantQty[i])
			}
		}
	})

	t.Run("exact total drains everything", func(t *testing.T) {
		draws, err := drawFromLots(lots, dec("35"))
		if err != nil {
			t.Fatalf("drawFromLots() error = %v", err)
		}
		total := decimal.Zero
		for _, d := range draws {
			total = total.Add(d.Quantity)
		}
		if !total.Equal(dec("35")) {
			t.Errorf("drawn total = %s, want 35", total)
		}
	})

	t.Run("insufficient stock", func(t *testing.T) {
		if _, err := drawFromLots(lots, dec("35.5")); err == nil {
			t.Fatal("expected error for request exceeding stock")
		}
	})

	t.Run("empty lots cannot cover", func(t *testing.T) {
		if _, err := drawFromLots(nil, dec("1")); err == nil {
			t.Fatal("expected error for empty lots")
		}
	})

	t.Run("zero quantity lots are skipped", func(t *testing.T) {
		drained := []entity.StockEntry{lot("0", base), lot("4", base.AddDate(0, 0, 1))}
		draws, err := drawFromLots(drained, dec("4"))
		if err != nil {
			t.Fatalf("drawFromLots() error = %v", err)
		}
		if len(draws) != 1 || !draws[0].Quantity.Equal(dec("4")) {
			t.Errorf("expected single draw of 4 skipping the drained lot, got %+v", draws)
		}
	})

	t.Run("fractional quantities", func(t *testing.T) {
		fractional := []entity.StockEntry{lot("2.5", base), lot("2.5", base.AddDate(0, 0, 1))}
		draws, err := drawFromLots(fractional, dec("3.75"))
		if err != nil {
			t.Fatalf("drawFromLots() error = %v", err)
		}
		if len(draws) != 2 || !draws[1].Quantity.Equal(dec("1.25")) {
			t.Errorf("expected second draw of 1.25, got %+v", draws)
		}
	})
}
