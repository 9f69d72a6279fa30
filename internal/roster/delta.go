package roster

import (
	"github.com/sysu-ecnc-dev/duty-roster/backend/internal/domain"
)

// Delta 引擎计算出的最小落库变更：记录不原地修改，变更总是删除+插入
type Delta struct {
	Inserts []domain.ShiftRecord
	Deletes []domain.ShiftRecord
}

func (d Delta) Empty() bool {
	return len(d.Inserts) == 0 && len(d.Deletes) == 0
}

// Diff 按记录 ID 对比前后两个记录集，供调用方在引擎算完后显式落库
func Diff(before, after []domain.ShiftRecord) Delta {
	beforeIDs := make(map[string]bool, len(before))
	for _, rec := range before {
		beforeIDs[rec.ID] = true
	}
	afterIDs := make(map[string]bool, len(after))
	for _, rec := range after {
		afterIDs[rec.ID] = true
	}

	delta := Delta{}
	for _, rec := range before {
		if !afterIDs[rec.ID] {
			delta.Deletes = append(delta.Deletes, rec)
		}
	}
	for _, rec := range after {
		if !beforeIDs[rec.ID] {
			delta.Inserts = append(delta.Inserts, rec)
		}
	}
	return delta
}
