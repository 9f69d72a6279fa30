package domain

import "fmt"

type ShiftType string

const (
	ShiftMorning   ShiftType = "M" // 早班 08:00 - 16:00
	ShiftAfternoon ShiftType = "A" // 中班 16:00 - 24:00
	ShiftNight     ShiftType = "N" // 夜班 24:00 - 08:00
	ShiftOff       ShiftType = "O" // 休息，仅用于表示空档，不会落库
)

// Label 返回班次的中文名称，主要用于变更日志和邮件
func (t ShiftType) Label() string {
	switch t {
	case ShiftMorning:
		return "早班"
	case ShiftAfternoon:
		return "中班"
	case ShiftNight:
		return "夜班"
	default:
		return "休息"
	}
}

type ShiftRecord struct {
	ID      string    `json:"id"`
	StaffID int64     `json:"staffID"`
	Date    string    `json:"date"` // YYYY-MM-DD，本地日历，不带时区
	Type    ShiftType `json:"type"`
}

// DeriveShiftID 由 (staffID, date, type) 三元组推导记录 ID，同一三元组的 ID 唯一
func DeriveShiftID(staffID int64, date string, t ShiftType) string {
	return fmt.Sprintf("%d-%s-%s", staffID, date, t)
}

func NewShiftRecord(staffID int64, date string, t ShiftType) ShiftRecord {
	return ShiftRecord{
		ID:      DeriveShiftID(staffID, date, t),
		StaffID: staffID,
		Date:    date,
		Type:    t,
	}
}
