package roster

import (
	"strings"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
)

// AddDays 对 YYYY-MM-DD 做日期加减；解析失败时原样返回，
// 引擎的所有操作都是全函数，调用方负责传入合法日期
func AddDays(date string, n int) string {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return date
	}
	return t.AddDate(0, 0, n).Format(DateLayout)
}

func NextDay(date string) string {
	return AddDays(date, 1)
}

func PrevDay(date string) string {
	return AddDays(date, -1)
}

// DaysBetween 返回 to - from 的天数差（to 在 from 之后时为正）
func DaysBetween(from, to string) int {
	f, err := time.Parse(DateLayout, from)
	if err != nil {
		return 0
	}
	t, err := time.Parse(DateLayout, to)
	if err != nil {
		return 0
	}
	return int(t.Sub(f).Hours() / 24)
}

func MonthKeyOf(date string) string {
	if len(date) < len(MonthLayout) {
		return date
	}
	return date[:len(MonthLayout)]
}

func FirstDayOfMonth(monthKey string) string {
	return monthKey + "-01"
}

func LastDayOfMonth(monthKey string) string {
	t, err := time.Parse(MonthLayout, monthKey)
	if err != nil {
		return monthKey
	}
	return t.AddDate(0, 1, -1).Format(DateLayout)
}

func DaysInMonth(monthKey string) int {
	t, err := time.Parse(MonthLayout, monthKey)
	if err != nil {
		return 0
	}
	return t.AddDate(0, 1, -1).Day()
}

func PrevMonthKey(monthKey string) string {
	t, err := time.Parse(MonthLayout, monthKey)
	if err != nil {
		return monthKey
	}
	return t.AddDate(0, -1, 0).Format(MonthLayout)
}

func NextMonthKey(monthKey string) string {
	t, err := time.Parse(MonthLayout, monthKey)
	if err != nil {
		return monthKey
	}
	return t.AddDate(0, 1, 0).Format(MonthLayout)
}

// MonthWindow 返回跨月联动所需的可见窗口：当月前后各扩一个月
func MonthWindow(monthKey string) (from string, to string) {
	return FirstDayOfMonth(PrevMonthKey(monthKey)), LastDayOfMonth(NextMonthKey(monthKey))
}

// DateOf 把月份键和当月第几天拼成完整日期，day 越界时返回 false
func DateOf(monthKey string, day int) (string, bool) {
	if day < 1 || day > DaysInMonth(monthKey) {
		return "", false
	}
	t, err := time.Parse(MonthLayout, monthKey)
	if err != nil {
		return "", false
	}
	return t.AddDate(0, 0, day-1).Format(DateLayout), true
}

// IsSpecialDay 判断是否为周末或节假日（适用两班制补贴的"特殊日"）
// 节假日列表支持完整日期 YYYY-MM-DD，也支持按 MM-DD 匹配的每年固定假日
func IsSpecialDay(date string, holidays []string) bool {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return false
	}
	if t.Weekday() == time.Saturday || t.Weekday() == time.Sunday {
		return true
	}
	for _, h := range holidays {
		if h == date {
			return true
		}
		if len(h) == len("01-02") && strings.HasSuffix(date, h) {
			return true
		}
	}
	return false
}
