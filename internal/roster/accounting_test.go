package roster

import (
	"testing"

	"github.com/sysu-ecnc-dev/duty-roster/backend/internal/domain"
)

var testRates = Rates{Morning: 750, Half: 375}

func TestUnitFor(t *testing.T) {
	if got := UnitFor(domain.ShiftMorning); got != 1.0 {
		t.Errorf("早班权重期望=1.0，实际=%v", got)
	}
	if got := UnitFor(domain.ShiftAfternoon); got != 0.5 {
		t.Errorf("中班权重期望=0.5，实际=%v", got)
	}
	if got := UnitFor(domain.ShiftNight); got != 0.5 {
		t.Errorf("夜班权重期望=0.5，实际=%v", got)
	}
	if got := UnitFor(domain.ShiftOff); got != 0 {
		t.Errorf("休息权重期望=0，实际=%v", got)
	}
}

func TestComputeMonthlyTotal_PlainRecords(t *testing.T) {
	records := []domain.ShiftRecord{
		rec(1, "2025-01-06", domain.ShiftMorning),
		rec(1, "2025-01-07", domain.ShiftAfternoon),
		rec(1, "2025-01-08", domain.ShiftNight),
	}

	total := ComputeMonthlyTotal(records, 1, "2025-01", testRates)
	if total.ShiftUnits != 2.0 {
		t.Errorf("班数期望=2.0，实际=%v", total.ShiftUnits)
	}
	if total.Amount != 1500 {
		t.Errorf("金额期望=1500，实际=%d", total.Amount)
	}
}

func TestComputeMonthlyTotal_OutgoingCombo(t *testing.T) {
	records := []domain.ShiftRecord{
		rec(1, "2025-01-31", domain.ShiftAfternoon),
		rec(1, "2025-02-01", domain.ShiftNight),
	}

	if !HasOutgoingCombo(records, 1, "2025-01") {
		t.Fatal("月末中班 + 次月首日夜班应判定为出向跨月连班")
	}

	total := ComputeMonthlyTotal(records, 1, "2025-01", testRates)
	// 当月的中班 0.5 + 记给当月的夜班 0.5
	if total.ShiftUnits != 1.0 {
		t.Errorf("一月班数期望=1.0，实际=%v", total.ShiftUnits)
	}
	if total.Amount != 750 {
		t.Errorf("一月金额期望=750，实际=%d", total.Amount)
	}
}

func TestComputeMonthlyTotal_IncomingCombo(t *testing.T) {
	records := []domain.ShiftRecord{
		rec(1, "2025-01-31", domain.ShiftAfternoon),
		rec(1, "2025-02-01", domain.ShiftNight),
	}

	if !HasIncomingCombo(records, 1, "2025-02") {
		t.Fatal("上月末中班 + 当月首日夜班应判定为入向跨月连班")
	}

	total := ComputeMonthlyTotal(records, 1, "2025-02", testRates)
	// 夜班已记给一月，二月必须扣回
	if total.ShiftUnits != 0 {
		t.Errorf("二月班数期望=0，实际=%v", total.ShiftUnits)
	}
	if total.Amount != 0 {
		t.Errorf("二月金额期望=0，实际=%d", total.Amount)
	}
}

func TestComputeMonthlyTotal_NoDoubleCountAcrossMonths(t *testing.T) {
	records := []domain.ShiftRecord{
		rec(1, "2025-01-15", domain.ShiftMorning),
		rec(1, "2025-01-31", domain.ShiftAfternoon),
		rec(1, "2025-02-01", domain.ShiftNight),
		rec(1, "2025-02-10", domain.ShiftMorning),
	}

	jan := ComputeMonthlyTotal(records, 1, "2025-01", testRates)
	feb := ComputeMonthlyTotal(records, 1, "2025-02", testRates)

	// 两个月的合计应等于所有记录的权重之和，跨月夜班不重复计数
	var want float64
	for _, r := range records {
		want += UnitFor(r.Type)
	}
	if got := jan.ShiftUnits + feb.ShiftUnits; got != want {
		t.Errorf("两月班数之和期望=%v，实际=%v", want, got)
	}
}

func TestComputeMonthlyTotal_UnpairedHalvesAreNotCombo(t *testing.T) {
	// 只有月末中班、没有次月夜班时不构成跨月连班
	records := []domain.ShiftRecord{rec(1, "2025-01-31", domain.ShiftAfternoon)}

	if HasOutgoingCombo(records, 1, "2025-01") {
		t.Error("没有次月夜班时不应判定为出向跨月连班")
	}

	total := ComputeMonthlyTotal(records, 1, "2025-01", testRates)
	if total.ShiftUnits != 0.5 {
		t.Errorf("孤立中班仍按半班计，期望=0.5，实际=%v", total.ShiftUnits)
	}
}
