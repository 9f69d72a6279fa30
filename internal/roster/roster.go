// Package roster 实现排班引擎的核心规则：
// 单日班次指派、中夜连班、清除级联、换班撮合与跨月结算。
// 包内所有操作都是纯函数，只读写传入的记录切片，不触碰任何外部存储。
package roster

import (
	"github.com/sysu-ecnc-dev/duty-roster/backend/internal/domain"
)

// Policy 指派策略
type Policy string

const (
	// PolicyReplace 严格替换：平日每人每天至多一条记录，特殊日至多两条
	PolicyReplace Policy = "replace"
	// PolicyCoexist 共存策略：夜班不挤占早/中班，允许 早+夜、中+夜 的双班组合
	PolicyCoexist Policy = "coexist"
)

func ParsePolicy(s string) Policy {
	if s == string(PolicyReplace) {
		return PolicyReplace
	}
	return PolicyCoexist
}

// Coordinate 换班操作中的一个单元格：某个值班人员的某一天
type Coordinate struct {
	StaffID int64  `json:"staffID"`
	Date    string `json:"date"`
}

// ShiftsFor 返回某人某天的全部记录
func ShiftsFor(records []domain.ShiftRecord, staffID int64, date string) []domain.ShiftRecord {
	var out []domain.ShiftRecord
	for _, rec := range records {
		if rec.StaffID == staffID && rec.Date == date {
			out = append(out, rec)
		}
	}
	return out
}

func findRecord(records []domain.ShiftRecord, staffID int64, date string, t domain.ShiftType) (domain.ShiftRecord, bool) {
	for _, rec := range records {
		if rec.StaffID == staffID && rec.Date == date && rec.Type == t {
			return rec, true
		}
	}
	return domain.ShiftRecord{}, false
}

func containsID(records []domain.ShiftRecord, id string) bool {
	for _, rec := range records {
		if rec.ID == id {
			return true
		}
	}
	return false
}

// keepIf 返回仅保留满足条件的记录的新切片，不修改入参
func keepIf(records []domain.ShiftRecord, keep func(domain.ShiftRecord) bool) []domain.ShiftRecord {
	out := make([]domain.ShiftRecord, 0, len(records))
	for _, rec := range records {
		if keep(rec) {
			out = append(out, rec)
		}
	}
	return out
}
