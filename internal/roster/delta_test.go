package roster

import (
	"testing"

	"github.com/sysu-ecnc-dev/duty-roster/backend/internal/domain"
)

func TestDiff(t *testing.T) {
	before := []domain.ShiftRecord{
		rec(1, "2025-01-06", domain.ShiftMorning),
		rec(1, "2025-01-07", domain.ShiftAfternoon),
	}
	after := []domain.ShiftRecord{
		rec(1, "2025-01-07", domain.ShiftAfternoon),
		rec(2, "2025-01-06", domain.ShiftMorning),
	}

	delta := Diff(before, after)

	if len(delta.Deletes) != 1 || delta.Deletes[0].ID != domain.DeriveShiftID(1, "2025-01-06", domain.ShiftMorning) {
		t.Errorf("应删除 1 号的早班记录，实际 Deletes=%v", delta.Deletes)
	}
	if len(delta.Inserts) != 1 || delta.Inserts[0].ID != domain.DeriveShiftID(2, "2025-01-06", domain.ShiftMorning) {
		t.Errorf("应插入 2 号的早班记录，实际 Inserts=%v", delta.Inserts)
	}
}

func TestDiff_NoChange(t *testing.T) {
	records := []domain.ShiftRecord{rec(1, "2025-01-06", domain.ShiftMorning)}

	delta := Diff(records, records)
	if !delta.Empty() {
		t.Errorf("记录集未变化时 Diff 应为空，实际 Inserts=%d Deletes=%d", len(delta.Inserts), len(delta.Deletes))
	}
}

func TestDiff_FromEmpty(t *testing.T) {
	after := []domain.ShiftRecord{
		rec(1, "2025-01-06", domain.ShiftMorning),
		rec(2, "2025-01-07", domain.ShiftAfternoon),
	}

	delta := Diff(nil, after)
	if len(delta.Inserts) != 2 || len(delta.Deletes) != 0 {
		t.Errorf("从空集出发应全部为插入，实际 Inserts=%d Deletes=%d", len(delta.Inserts), len(delta.Deletes))
	}
}
