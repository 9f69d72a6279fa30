package roster

import (
	"github.com/sysu-ecnc-dev/duty-roster/backend/internal/domain"
)

// Rates 班次的薪酬标准：早班为整班，中班/夜班各算半班
type Rates struct {
	Morning int64
	Half    int64
}

// UnitFor 班次的工作量权重：早班 1.0，中班/夜班各 0.5。
// 孤立的中班或夜班也按半班计——行政上它本应与另一半配对
func UnitFor(t domain.ShiftType) float64 {
	switch t {
	case domain.ShiftMorning:
		return 1.0
	case domain.ShiftAfternoon, domain.ShiftNight:
		return 0.5
	default:
		return 0
	}
}

func (r Rates) AmountFor(t domain.ShiftType) int64 {
	switch t {
	case domain.ShiftMorning:
		return r.Morning
	case domain.ShiftAfternoon, domain.ShiftNight:
		return r.Half
	default:
		return 0
	}
}

// HasOutgoingCombo 跨月连班（出）：当月最后一天持有中班，且次月第一天持有联动夜班。
// 该夜班在薪酬上记给连班开始的这个月
func HasOutgoingCombo(records []domain.ShiftRecord, staffID int64, monthKey string) bool {
	_, hasAfternoon := findRecord(records, staffID, LastDayOfMonth(monthKey), domain.ShiftAfternoon)
	if !hasAfternoon {
		return false
	}
	_, hasNight := findRecord(records, staffID, FirstDayOfMonth(NextMonthKey(monthKey)), domain.ShiftNight)
	return hasNight
}

// HasIncomingCombo 跨月连班（入）：上月最后一天持有中班，且当月第一天持有联动夜班。
// 该夜班已经通过上月的出向规则记给了上月，当月必须扣回，避免重复计数
func HasIncomingCombo(records []domain.ShiftRecord, staffID int64, monthKey string) bool {
	_, hasAfternoon := findRecord(records, staffID, LastDayOfMonth(PrevMonthKey(monthKey)), domain.ShiftAfternoon)
	if !hasAfternoon {
		return false
	}
	_, hasNight := findRecord(records, staffID, FirstDayOfMonth(monthKey), domain.ShiftNight)
	return hasNight
}

type MonthlyTotal struct {
	ShiftUnits float64 `json:"shiftUnits"`
	Amount     int64   `json:"amount"`
}

// ComputeMonthlyTotal 计算某人某个月的班次工作量与薪酬总额。
// 网格合计列、统计图和正式报表都必须经由这里，保证三处口径一致
func ComputeMonthlyTotal(records []domain.ShiftRecord, staffID int64, monthKey string, rates Rates) MonthlyTotal {
	total := MonthlyTotal{}

	for _, rec := range records {
		if rec.StaffID != staffID || MonthKeyOf(rec.Date) != monthKey {
			continue
		}
		total.ShiftUnits += UnitFor(rec.Type)
		total.Amount += rates.AmountFor(rec.Type)
	}

	if HasOutgoingCombo(records, staffID, monthKey) {
		total.ShiftUnits += 0.5
		total.Amount += rates.Half
	}
	if HasIncomingCombo(records, staffID, monthKey) {
		total.ShiftUnits -= 0.5
		total.Amount -= rates.Half
	}

	return total
}
