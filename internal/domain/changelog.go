package domain

import "time"

type ActionType string

const (
	ActionAdd    ActionType = "新增"
	ActionChange ActionType = "变更"
	ActionRemove ActionType = "删除"
	ActionSwap   ActionType = "对调"
)

// ChangeLogEntry 排班变更日志，只追加不修改；
// 只有当所属月份已发布时才会写入（草稿期的编辑不留痕）
type ChangeLogEntry struct {
	ID         int64      `json:"id"`
	MonthKey   string     `json:"monthKey"`
	TargetDate string     `json:"targetDate"`
	Message    string     `json:"message"`
	ActionType ActionType `json:"actionType"`
	CreatedAt  time.Time  `json:"createdAt"`
}
