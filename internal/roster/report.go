package roster

import (
	"strconv"
	"strings"

	"github.com/sysu-ecnc-dev/duty-roster/backend/internal/domain"
)

const (
	ReportSourceLive     = "live"
	ReportSourceSnapshot = "snapshot"
)

// RecordsForReport 按发布状态选择报表数据源：
// 已发布的月份使用发布时冻结的快照（即使之后继续换班，正式报表也保持不变），
// 否则使用实时数据
func RecordsForReport(status *domain.PublishStatus, live []domain.ShiftRecord) ([]domain.ShiftRecord, string) {
	if status != nil && status.IsPublished && status.Snapshot != nil {
		return status.Snapshot, ReportSourceSnapshot
	}
	return live, ReportSourceLive
}

// ReportRow 正式报表中的一行：某个值班人员的逐日班次、班数与金额
type ReportRow struct {
	StaffID    int64    `json:"staffID"`
	StaffName  string   `json:"staffName"`
	Codes      []string `json:"codes"` // 下标 0 对应当月 1 号，多个班次按 M/A/N 顺序拼接
	ShiftCount string   `json:"shiftCount"`
	Amount     int64    `json:"amount"`
}

type Report struct {
	MonthKey    string      `json:"monthKey"`
	Days        int         `json:"days"`
	SpecialDays []bool      `json:"specialDays"`
	Rows        []ReportRow `json:"rows"`
	Source      string      `json:"source"`
}

// BuildReport 组装正式报表数据。班数与金额列直接取自 ComputeMonthlyTotal，
// 与网格合计和统计图天然一致
func BuildReport(records []domain.ShiftRecord, staff []*domain.Staff, monthKey string, holidays []string, rates Rates) *Report {
	days := DaysInMonth(monthKey)

	report := &Report{
		MonthKey:    monthKey,
		Days:        days,
		SpecialDays: make([]bool, days),
		Rows:        make([]ReportRow, 0, len(staff)),
	}
	for d := 1; d <= days; d++ {
		date, _ := DateOf(monthKey, d)
		report.SpecialDays[d-1] = IsSpecialDay(date, holidays)
	}

	for _, s := range staff {
		row := ReportRow{
			StaffID:   s.ID,
			StaffName: s.Name,
			Codes:     make([]string, days),
		}
		for d := 1; d <= days; d++ {
			date, _ := DateOf(monthKey, d)
			row.Codes[d-1] = dayCode(records, s.ID, date)
		}
		total := ComputeMonthlyTotal(records, s.ID, monthKey, rates)
		row.ShiftCount = FormatShiftUnits(total.ShiftUnits)
		row.Amount = total.Amount
		report.Rows = append(report.Rows, row)
	}

	return report
}

// dayCode 单元格的班次代码，双班时按 早、中、夜 顺序拼接
func dayCode(records []domain.ShiftRecord, staffID int64, date string) string {
	var sb strings.Builder
	for _, t := range []domain.ShiftType{domain.ShiftMorning, domain.ShiftAfternoon, domain.ShiftNight} {
		if _, ok := findRecord(records, staffID, date, t); ok {
			sb.WriteString(string(t))
		}
	}
	return sb.String()
}

// FormatShiftUnits 班数展示：整数不带小数位，半班保留一位
func FormatShiftUnits(units float64) string {
	return strconv.FormatFloat(units, 'f', -1, 64)
}

// StaffStats 统计视图中一个值班人员的班次分布
type StaffStats struct {
	StaffID       int64   `json:"staffID"`
	StaffName     string  `json:"staffName"`
	Morning       int     `json:"morning"`
	Afternoon     int     `json:"afternoon"`
	Night         int     `json:"night"`
	WeightedTotal float64 `json:"weightedTotal"`
}

// StatsFor 按人统计当月各班次数量与加权工作量，供柱状图使用
func StatsFor(records []domain.ShiftRecord, staff []*domain.Staff, monthKey string, rates Rates) []StaffStats {
	stats := make([]StaffStats, 0, len(staff))
	for _, s := range staff {
		item := StaffStats{StaffID: s.ID, StaffName: s.Name}
		for _, rec := range records {
			if rec.StaffID != s.ID || MonthKeyOf(rec.Date) != monthKey {
				continue
			}
			switch rec.Type {
			case domain.ShiftMorning:
				item.Morning++
			case domain.ShiftAfternoon:
				item.Afternoon++
			case domain.ShiftNight:
				item.Night++
			}
		}
		item.WeightedTotal = ComputeMonthlyTotal(records, s.ID, monthKey, rates).ShiftUnits
		stats = append(stats, item)
	}
	return stats
}
