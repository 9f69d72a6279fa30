package roster

import (
	"github.com/sysu-ecnc-dev/duty-roster/backend/internal/domain"
)

type BlockType string

const (
	BlockMorning BlockType = "M"  // 单独的早班
	BlockCombo   BlockType = "BD" // 中班 + 次日联动夜班（可能只剩一半）
)

// Block 换班操作的原子单元：一个早班，或一组中夜连班
type Block struct {
	Type    BlockType            `json:"type"`
	Records []domain.ShiftRecord `json:"records"`
}

// Label 块的中文名称，用于变更日志
func (b *Block) Label() string {
	if b == nil {
		return "空档"
	}
	if b.Type == BlockMorning {
		return "早班"
	}
	if len(b.Records) > 1 {
		return "中夜连班"
	}
	return b.Records[0].Type.Label()
}

// BlocksAt 计算某个单元格内的全部换班单元。
// 早班自成一块；中班连同次日的联动夜班成一块；
// 单元格里的夜班通过前一日的联动中班归并到同一块，
// 并按锚点记录去重，保证同一物理配对不会被计入两次。
// 联动关系不落库，每次都通过相邻日期扫描重新推导
func BlocksAt(records []domain.ShiftRecord, staffID int64, date string) []Block {
	var blocks []Block
	seen := make(map[string]bool)

	for _, rec := range ShiftsFor(records, staffID, date) {
		switch rec.Type {
		case domain.ShiftMorning:
			blocks = append(blocks, Block{Type: BlockMorning, Records: []domain.ShiftRecord{rec}})
		case domain.ShiftAfternoon:
			if seen[rec.ID] {
				continue
			}
			seen[rec.ID] = true
			members := []domain.ShiftRecord{rec}
			if night, ok := findRecord(records, staffID, NextDay(date), domain.ShiftNight); ok {
				members = append(members, night)
			}
			blocks = append(blocks, Block{Type: BlockCombo, Records: members})
		case domain.ShiftNight:
			if afternoon, ok := findRecord(records, staffID, PrevDay(date), domain.ShiftAfternoon); ok {
				if seen[afternoon.ID] {
					continue
				}
				seen[afternoon.ID] = true
				blocks = append(blocks, Block{Type: BlockCombo, Records: []domain.ShiftRecord{afternoon, rec}})
				continue
			}
			// 孤立夜班也按连班块处理
			blocks = append(blocks, Block{Type: BlockCombo, Records: []domain.ShiftRecord{rec}})
		}
	}
	return blocks
}

// PriorityBlock 单元格持有多种班次时用于消歧的优先块：早班优先于连班块
func PriorityBlock(blocks []Block) *Block {
	for i := range blocks {
		if blocks[i].Type == BlockMorning {
			return &blocks[i]
		}
	}
	if len(blocks) > 0 {
		return &blocks[0]
	}
	return nil
}

func blockOfType(blocks []Block, t BlockType) *Block {
	for i := range blocks {
		if blocks[i].Type == t {
			return &blocks[i]
		}
	}
	return nil
}
