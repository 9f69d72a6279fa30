package roster

import (
	"github.com/sysu-ecnc-dev/duty-roster/backend/internal/domain"
)

// SwapResult 换班的结果：新的记录集，以及双方移动的块（用于日志）。
// MovedOut 是从源格移出的块，MovedIn 是从目标格移入源格的块，
// 两者都为 nil 表示这次换班是空操作
type SwapResult struct {
	Records  []domain.ShiftRecord
	MovedOut *Block
	MovedIn  *Block
}

// ResolveSwap 在两个单元格之间交换班次归属。
//
// 撮合顺序：
//  1. 取源格的优先块，在目标格找同类型的块（智能匹配），找到则精确交换这两块；
//  2. 没有同类型则自由交换双方的优先块（目标为空时是单向移出）；
//  3. 源格为空时把目标格的优先块拉入源格（单向移入）；
//  4. 双方都为空则是空操作。
//
// 同一人的两个格子之间换班是"移日"：每条被移动的记录按两格的天数差平移，
// 块内相对间隔保持不变（中夜连班移动后仍隔一天）；
// 不同人之间换班是"换人"：日期不动，只交换归属。
// 交换后的记录都按新三元组重新推导 ID，撞上已存在的 ID 时静默跳过插入
func ResolveSwap(records []domain.ShiftRecord, source, target Coordinate) SwapResult {
	srcBlocks := BlocksAt(records, source.StaffID, source.Date)
	tgtBlocks := BlocksAt(records, target.StaffID, target.Date)

	srcBlock := PriorityBlock(srcBlocks)
	var tgtBlock *Block
	if srcBlock != nil {
		if match := blockOfType(tgtBlocks, srcBlock.Type); match != nil {
			tgtBlock = match
		} else {
			tgtBlock = PriorityBlock(tgtBlocks)
		}
	} else {
		tgtBlock = PriorityBlock(tgtBlocks)
	}

	if srcBlock == nil && tgtBlock == nil {
		return SwapResult{Records: records}
	}

	// 同一人的中夜连班占两个格子，源格和目标格可能解析到同一个物理块；
	// 此时按块整体移日一次，而不是双向各插一份
	if srcBlock != nil && tgtBlock != nil && sharesRecord(srcBlock, tgtBlock) {
		out := removeRecords(append([]domain.ShiftRecord{}, records...), srcBlock.Records)
		out = insertMoved(out, srcBlock.Records, source.StaffID, true, DaysBetween(source.Date, target.Date))
		return SwapResult{Records: out, MovedOut: srcBlock}
	}

	out := append([]domain.ShiftRecord{}, records...)
	if srcBlock != nil {
		out = removeRecords(out, srcBlock.Records)
	}
	if tgtBlock != nil {
		out = removeRecords(out, tgtBlock.Records)
	}

	sameStaff := source.StaffID == target.StaffID
	offset := DaysBetween(source.Date, target.Date)

	if srcBlock != nil {
		out = insertMoved(out, srcBlock.Records, target.StaffID, sameStaff, offset)
	}
	if tgtBlock != nil {
		out = insertMoved(out, tgtBlock.Records, source.StaffID, sameStaff, -offset)
	}

	return SwapResult{Records: out, MovedOut: srcBlock, MovedIn: tgtBlock}
}

func sharesRecord(a, b *Block) bool {
	ids := make(map[string]bool, len(a.Records))
	for _, rec := range a.Records {
		ids[rec.ID] = true
	}
	for _, rec := range b.Records {
		if ids[rec.ID] {
			return true
		}
	}
	return false
}

func removeRecords(records []domain.ShiftRecord, toRemove []domain.ShiftRecord) []domain.ShiftRecord {
	ids := make(map[string]bool, len(toRemove))
	for _, rec := range toRemove {
		ids[rec.ID] = true
	}
	return keepIf(records, func(rec domain.ShiftRecord) bool {
		return !ids[rec.ID]
	})
}

// insertMoved 把块成员写入新的归属：换人时改 staffID，移日时按 offset 平移日期
func insertMoved(records []domain.ShiftRecord, members []domain.ShiftRecord, newStaffID int64, sameStaff bool, offset int) []domain.ShiftRecord {
	out := records
	for _, rec := range members {
		date := rec.Date
		staffID := newStaffID
		if sameStaff {
			staffID = rec.StaffID
			date = AddDays(rec.Date, offset)
		}
		moved := domain.NewShiftRecord(staffID, date, rec.Type)
		if containsID(out, moved.ID) {
			continue
		}
		out = append(out, moved)
	}
	return out
}
