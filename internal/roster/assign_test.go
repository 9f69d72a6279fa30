package roster

import (
	"testing"

	"github.com/sysu-ecnc-dev/duty-roster/backend/internal/domain"
)

// ── 测试辅助 ──

func rec(staffID int64, date string, t domain.ShiftType) domain.ShiftRecord {
	return domain.NewShiftRecord(staffID, date, t)
}

func hasShift(records []domain.ShiftRecord, staffID int64, date string, t domain.ShiftType) bool {
	_, ok := findRecord(records, staffID, date, t)
	return ok
}

// ── 普通指派 ──

func TestApplyAssignment_Idempotent(t *testing.T) {
	records := []domain.ShiftRecord{rec(1, "2025-01-06", domain.ShiftMorning)}

	once := ApplyAssignment(records, 1, "2025-01-06", domain.ShiftMorning, false, PolicyReplace)
	twice := ApplyAssignment(once, 1, "2025-01-06", domain.ShiftMorning, false, PolicyReplace)

	if len(once) != 1 || len(twice) != 1 {
		t.Fatalf("重复指派同一班次应为空操作，期望记录数=1，实际 once=%d twice=%d", len(once), len(twice))
	}
}

func TestApplyAssignment_OrdinaryDayReplaces(t *testing.T) {
	records := []domain.ShiftRecord{rec(1, "2025-01-06", domain.ShiftMorning)}

	out := ApplyAssignment(records, 1, "2025-01-06", domain.ShiftAfternoon, false, PolicyReplace)

	if len(ShiftsFor(out, 1, "2025-01-06")) != 1 {
		t.Fatalf("平日每人每天至多一条记录，实际=%d", len(ShiftsFor(out, 1, "2025-01-06")))
	}
	if !hasShift(out, 1, "2025-01-06", domain.ShiftAfternoon) {
		t.Error("新班次应替换旧班次，期望保留中班")
	}
	if hasShift(out, 1, "2025-01-06", domain.ShiftMorning) {
		t.Error("旧的早班应被替换掉")
	}
}

func TestApplyAssignment_SpecialDayDoubleShift(t *testing.T) {
	// 2025-01-04 是周六
	var records []domain.ShiftRecord

	out := ApplyAssignment(records, 1, "2025-01-04", domain.ShiftMorning, true, PolicyReplace)
	out = ApplyAssignment(out, 1, "2025-01-04", domain.ShiftAfternoon, true, PolicyReplace)

	if len(ShiftsFor(out, 1, "2025-01-04")) != 2 {
		t.Fatalf("特殊日应允许两条记录共存，实际=%d", len(ShiftsFor(out, 1, "2025-01-04")))
	}

	// 第三个班次应整组替换，而不是追加
	out = ApplyAssignment(out, 1, "2025-01-04", domain.ShiftNight, true, PolicyReplace)

	cell := ShiftsFor(out, 1, "2025-01-04")
	if len(cell) != 1 {
		t.Fatalf("已有两条记录时第三个班次应整组替换，期望记录数=1，实际=%d", len(cell))
	}
	if cell[0].Type != domain.ShiftNight {
		t.Errorf("整组替换后应只剩夜班，实际=%s", cell[0].Type)
	}
}

func TestApplyAssignment_CoexistPolicy(t *testing.T) {
	// 共存策略下夜班不挤占早/中班，平日也允许双班
	records := []domain.ShiftRecord{rec(1, "2025-01-06", domain.ShiftMorning)}

	out := ApplyAssignment(records, 1, "2025-01-06", domain.ShiftNight, false, PolicyCoexist)
	if !hasShift(out, 1, "2025-01-06", domain.ShiftMorning) || !hasShift(out, 1, "2025-01-06", domain.ShiftNight) {
		t.Fatal("共存策略下早班和夜班应同时保留")
	}

	// 请求中班：早班被清掉，夜班保留
	out = ApplyAssignment(out, 1, "2025-01-06", domain.ShiftAfternoon, false, PolicyCoexist)
	if hasShift(out, 1, "2025-01-06", domain.ShiftMorning) {
		t.Error("请求中班时早班应被清掉")
	}
	if !hasShift(out, 1, "2025-01-06", domain.ShiftAfternoon) {
		t.Error("中班应被插入")
	}
	if !hasShift(out, 1, "2025-01-06", domain.ShiftNight) {
		t.Error("夜班不应被中班请求挤占")
	}
}

// ── 清除与级联 ──

func TestClearDay_CascadesLinkedNight(t *testing.T) {
	records := []domain.ShiftRecord{
		rec(1, "2025-01-06", domain.ShiftAfternoon),
		rec(1, "2025-01-07", domain.ShiftNight),
	}

	out := ClearDay(records, 1, "2025-01-06")
	if len(out) != 0 {
		t.Fatalf("清除中班应级联删除次日的联动夜班，剩余记录数=%d", len(out))
	}
}

func TestClearDay_CascadesLinkedAfternoon(t *testing.T) {
	records := []domain.ShiftRecord{
		rec(1, "2025-01-06", domain.ShiftAfternoon),
		rec(1, "2025-01-07", domain.ShiftNight),
	}

	out := ClearDay(records, 1, "2025-01-07")
	if len(out) != 0 {
		t.Fatalf("清除夜班应级联删除前一日的联动中班，剩余记录数=%d", len(out))
	}
}

func TestClearDay_EmptyCellIsNoop(t *testing.T) {
	records := []domain.ShiftRecord{rec(2, "2025-01-06", domain.ShiftMorning)}

	out := ClearDay(records, 1, "2025-01-06")
	if len(out) != 1 {
		t.Fatalf("清除空单元格应为空操作，剩余记录数=%d", len(out))
	}
}

// ── 连班指派 ──

func TestApplyCombo_EvictsGlobalHolders(t *testing.T) {
	// 2 号持有当天的中班和次日的夜班，连班指派给 1 号时应被全局驱逐
	records := []domain.ShiftRecord{
		rec(2, "2025-01-06", domain.ShiftAfternoon),
		rec(2, "2025-01-07", domain.ShiftNight),
	}

	out := ApplyCombo(records, 1, "2025-01-06", false, false, PolicyReplace)

	if hasShift(out, 2, "2025-01-06", domain.ShiftAfternoon) || hasShift(out, 2, "2025-01-07", domain.ShiftNight) {
		t.Error("原持有者的中班和夜班应被全局驱逐")
	}
	if !hasShift(out, 1, "2025-01-06", domain.ShiftAfternoon) || !hasShift(out, 1, "2025-01-07", domain.ShiftNight) {
		t.Error("连班应指派给请求者")
	}
}

func TestApplyCombo_SingleRequestDoesNotEvict(t *testing.T) {
	// 普通的单一班次指派不做全局驱逐，两条路径的不对称是既定行为
	records := []domain.ShiftRecord{rec(2, "2025-01-06", domain.ShiftAfternoon)}

	out := ApplyAssignment(records, 1, "2025-01-06", domain.ShiftAfternoon, false, PolicyReplace)

	if !hasShift(out, 2, "2025-01-06", domain.ShiftAfternoon) {
		t.Error("单一班次指派不应驱逐其他人的同档班次")
	}
	if !hasShift(out, 1, "2025-01-06", domain.ShiftAfternoon) {
		t.Error("请求者的班次应被插入")
	}
}

func TestApplyCombo_ClearRoundTrip(t *testing.T) {
	var records []domain.ShiftRecord

	out := ApplyCombo(records, 1, "2025-01-06", false, false, PolicyReplace)
	if len(out) != 2 {
		t.Fatalf("连班指派应产生两条记录，实际=%d", len(out))
	}

	out = ClearDay(out, 1, "2025-01-06")
	if len(out) != 0 {
		t.Fatalf("连班指派后清除应回到指派前的状态，剩余记录数=%d", len(out))
	}
}

func TestApplyCombo_CrossMonth(t *testing.T) {
	var records []domain.ShiftRecord

	out := ApplyCombo(records, 1, "2025-01-31", false, false, PolicyReplace)

	if !hasShift(out, 1, "2025-01-31", domain.ShiftAfternoon) {
		t.Error("月末连班的中班应落在当月最后一天")
	}
	if !hasShift(out, 1, "2025-02-01", domain.ShiftNight) {
		t.Error("月末连班的夜班应落在次月第一天")
	}
}
