package roster

import (
	"github.com/sysu-ecnc-dev/duty-roster/backend/internal/domain"
)

// ApplyAssignment 对某人某天施加一个班次请求，返回新的记录集。
// 请求已持有的班次是幂等的空操作；其余行为由策略决定：
//
//   - PolicyReplace：平日新班次替换该人当天的全部记录；
//     特殊日（周末/节假日）允许两条记录共存，已有两条时整组替换
//   - PolicyCoexist：不论是否特殊日，夜班永不挤占早/中班；
//     请求早班或中班时清掉早/中里的另一个但保留夜班
//
// requested 只能是 M/A/N，休息请用 ClearDay
func ApplyAssignment(records []domain.ShiftRecord, staffID int64, date string, requested domain.ShiftType, isSpecial bool, policy Policy) []domain.ShiftRecord {
	existing := ShiftsFor(records, staffID, date)
	for _, rec := range existing {
		if rec.Type == requested {
			return records
		}
	}

	newRec := domain.NewShiftRecord(staffID, date, requested)

	if policy == PolicyCoexist {
		if requested == domain.ShiftNight {
			out := append([]domain.ShiftRecord{}, records...)
			return append(out, newRec)
		}
		// 请求早班或中班：清掉对方，保留夜班
		out := keepIf(records, func(rec domain.ShiftRecord) bool {
			if rec.StaffID != staffID || rec.Date != date {
				return true
			}
			return rec.Type == domain.ShiftNight
		})
		return append(out, newRec)
	}

	others := keepIf(records, func(rec domain.ShiftRecord) bool {
		return rec.StaffID != staffID || rec.Date != date
	})

	if isSpecial && len(existing) < 2 {
		others = append(others, existing...)
	}
	return append(others, newRec)
}

// ClearDay 清除某人某天的全部班次（显式的"休息"操作），并级联删除联动班次：
// 删掉的记录中含中班时，同时删掉次日的联动夜班；
// 含夜班时，同时删掉前一日的联动中班
func ClearDay(records []domain.ShiftRecord, staffID int64, date string) []domain.ShiftRecord {
	existing := ShiftsFor(records, staffID, date)
	if len(existing) == 0 {
		return records
	}

	out := keepIf(records, func(rec domain.ShiftRecord) bool {
		return rec.StaffID != staffID || rec.Date != date
	})

	for _, rec := range existing {
		switch rec.Type {
		case domain.ShiftAfternoon:
			next := NextDay(date)
			out = keepIf(out, func(r domain.ShiftRecord) bool {
				return !(r.StaffID == staffID && r.Date == next && r.Type == domain.ShiftNight)
			})
		case domain.ShiftNight:
			prev := PrevDay(date)
			out = keepIf(out, func(r domain.ShiftRecord) bool {
				return !(r.StaffID == staffID && r.Date == prev && r.Type == domain.ShiftAfternoon)
			})
		}
	}
	return out
}

// ReassignSlot 把某天某个班次从所有持有者处摘除（全局驱逐）。
// 前置约定：中班/夜班的指派路径上每个 (日期, 班次) 至多一人持有。
// 注意单一班次的普通指派不会走这里——只有连班指派才做全局驱逐，
// 两条路径的不对称是旧系统的既定行为，这里保持原样
func ReassignSlot(records []domain.ShiftRecord, date string, t domain.ShiftType) []domain.ShiftRecord {
	return keepIf(records, func(rec domain.ShiftRecord) bool {
		return !(rec.Date == date && rec.Type == t)
	})
}

// ApplyCombo 中夜连班指派：date 当天的中班 + 次日的夜班作为一个整体指派给 staffID。
// 先全局驱逐这两个 (日期, 班次) 档位的现有持有者（可能静默地改掉别人的班），
// 再按指派规则插入两条记录
func ApplyCombo(records []domain.ShiftRecord, staffID int64, date string, isSpecial, isNextSpecial bool, policy Policy) []domain.ShiftRecord {
	next := NextDay(date)

	out := ReassignSlot(records, date, domain.ShiftAfternoon)
	out = ReassignSlot(out, next, domain.ShiftNight)

	out = ApplyAssignment(out, staffID, date, domain.ShiftAfternoon, isSpecial, policy)
	out = ApplyAssignment(out, staffID, next, domain.ShiftNight, isNextSpecial, policy)
	return out
}
