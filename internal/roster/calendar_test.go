package roster

import "testing"

func TestIsSpecialDay(t *testing.T) {
	holidays := []string{"2025-04-30", "01-01", "05-01"}

	cases := []struct {
		date string
		want bool
		desc string
	}{
		{"2025-01-04", true, "周六应为特殊日"},
		{"2025-01-05", true, "周日应为特殊日"},
		{"2025-01-06", false, "普通周一不应为特殊日"},
		{"2025-04-30", true, "完整日期节假日应为特殊日"},
		{"2025-01-01", true, "每年固定的 MM-DD 节假日应为特殊日"},
		{"2026-05-01", true, "MM-DD 节假日应跨年份生效"},
		{"2025-05-02", false, "未列出的工作日不应为特殊日"},
	}

	for _, c := range cases {
		if got := IsSpecialDay(c.date, holidays); got != c.want {
			t.Errorf("%s：IsSpecialDay(%s) 期望=%v，实际=%v", c.desc, c.date, c.want, got)
		}
	}
}

func TestDayArithmetic(t *testing.T) {
	if got := NextDay("2025-01-31"); got != "2025-02-01" {
		t.Errorf("NextDay 应跨月，期望=2025-02-01，实际=%s", got)
	}
	if got := PrevDay("2025-01-01"); got != "2024-12-31" {
		t.Errorf("PrevDay 应跨年，期望=2024-12-31，实际=%s", got)
	}
	if got := AddDays("2025-01-06", 7); got != "2025-01-13" {
		t.Errorf("AddDays 期望=2025-01-13，实际=%s", got)
	}
	if got := DaysBetween("2025-01-06", "2025-01-13"); got != 7 {
		t.Errorf("DaysBetween 期望=7，实际=%d", got)
	}
	if got := DaysBetween("2025-01-13", "2025-01-06"); got != -7 {
		t.Errorf("DaysBetween 反向应为负数，期望=-7，实际=%d", got)
	}
}

func TestMonthArithmetic(t *testing.T) {
	if got := NextMonthKey("2024-12"); got != "2025-01" {
		t.Errorf("NextMonthKey 应跨年，期望=2025-01，实际=%s", got)
	}
	if got := PrevMonthKey("2025-01"); got != "2024-12" {
		t.Errorf("PrevMonthKey 应跨年，期望=2024-12，实际=%s", got)
	}
	if got := LastDayOfMonth("2024-02"); got != "2024-02-29" {
		t.Errorf("闰年二月最后一天期望=2024-02-29，实际=%s", got)
	}
	if got := DaysInMonth("2025-02"); got != 28 {
		t.Errorf("平年二月天数期望=28，实际=%d", got)
	}
	if got := MonthKeyOf("2025-03-15"); got != "2025-03" {
		t.Errorf("MonthKeyOf 期望=2025-03，实际=%s", got)
	}

	from, to := MonthWindow("2025-01")
	if from != "2024-12-01" || to != "2025-02-28" {
		t.Errorf("MonthWindow 期望=[2024-12-01, 2025-02-28]，实际=[%s, %s]", from, to)
	}
}

func TestDateOf(t *testing.T) {
	date, ok := DateOf("2025-01", 15)
	if !ok || date != "2025-01-15" {
		t.Errorf("DateOf 期望=2025-01-15，实际=%s（ok=%v）", date, ok)
	}

	if _, ok := DateOf("2025-02", 29); ok {
		t.Error("平年二月不存在 29 号，DateOf 应返回 false")
	}
	if _, ok := DateOf("2025-01", 0); ok {
		t.Error("day=0 应返回 false")
	}
}
