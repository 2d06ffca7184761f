package service

import (
	"testing"

	"github.com/google/uuid"
)

func TestRoundOffEntry(t *testing.T) {
	accountID := uuid.New()

	t.Run("positive delta credits the round off account", func(t *testing.T) {
		entries := roundOffEntry(accountID, dec("0.30"), "round off")
		if len(entries) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(entries))
		}
		if !entries[0].Credit.Equal(dec("0.30")) || !entries[0].Debit.IsZero() {
			t.Errorf("entry = debit %s credit %s, want credit 0.30", entries[0].Debit, entries[0].Credit)
		}
	})

	t.Run("negative delta debits the round off account", func(t *testing.T) {
		entries := roundOffEntry(accountID, dec("-0.18"), "round off")
		if len(entries) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(entries))
		}
		if !entries[0].Debit.Equal(dec("0.18")) || !entries[0].Credit.IsZero() {
			t.Errorf("entry = debit %s credit %s, want debit 0.18", entries[0].Debit, entries[0].Credit)
		}
	})

	t.Run("zero delta posts nothing", func(t *testing.T) {
		if entries := roundOffEntry(accountID, dec("0"), "round off"); entries != nil {
			t.Errorf("expected no entries, got %+v", entries)
		}
	})
}
