package domain

import "time"

// PublishStatus 某个月份的发布状态
// 发布时会冻结一份当月（含前后各一个月）的排班快照，
// 用于在后续继续换班时仍能输出不变的正式报表
type PublishStatus struct {
	MonthKey    string        `json:"monthKey"` // YYYY-MM
	IsPublished bool          `json:"isPublished"`
	PublishedBy string        `json:"publishedBy"`
	PublishedAt time.Time     `json:"publishedAt"`
	Snapshot    []ShiftRecord `json:"-"`
	Version     int32         `json:"-"`
}
