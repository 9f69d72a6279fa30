package roster

import (
	"testing"

	"github.com/sysu-ecnc-dev/duty-roster/backend/internal/domain"
)

// ── 块推导 ──

func TestBlocksAt_MorningAndCombo(t *testing.T) {
	records := []domain.ShiftRecord{
		rec(1, "2025-01-06", domain.ShiftMorning),
		rec(1, "2025-01-06", domain.ShiftAfternoon),
		rec(1, "2025-01-07", domain.ShiftNight),
	}

	blocks := BlocksAt(records, 1, "2025-01-06")
	if len(blocks) != 2 {
		t.Fatalf("期望 2 个块（早班 + 中夜连班），实际=%d", len(blocks))
	}

	pb := PriorityBlock(blocks)
	if pb == nil || pb.Type != BlockMorning {
		t.Error("优先块应是早班")
	}
}

func TestBlocksAt_NightResolvesToSameComboBlock(t *testing.T) {
	records := []domain.ShiftRecord{
		rec(1, "2025-01-06", domain.ShiftAfternoon),
		rec(1, "2025-01-07", domain.ShiftNight),
	}

	blocks := BlocksAt(records, 1, "2025-01-07")
	if len(blocks) != 1 {
		t.Fatalf("夜班应通过联动中班归并为 1 个连班块，实际=%d", len(blocks))
	}
	if len(blocks[0].Records) != 2 {
		t.Errorf("连班块应包含两条记录，实际=%d", len(blocks[0].Records))
	}
}

func TestPriorityBlock_Empty(t *testing.T) {
	if pb := PriorityBlock(nil); pb != nil {
		t.Error("空单元格的优先块应为 nil")
	}
}

// ── 换人（不同人之间，日期不动）──

func TestResolveSwap_ResponsibilitySwap(t *testing.T) {
	records := []domain.ShiftRecord{
		rec(1, "2025-01-05", domain.ShiftMorning),
		rec(2, "2025-01-08", domain.ShiftMorning),
	}

	result := ResolveSwap(records, Coordinate{StaffID: 1, Date: "2025-01-05"}, Coordinate{StaffID: 2, Date: "2025-01-08"})

	if len(result.Records) != 2 {
		t.Fatalf("换人后记录总数应守恒，期望=2，实际=%d", len(result.Records))
	}
	if !hasShift(result.Records, 2, "2025-01-05", domain.ShiftMorning) {
		t.Error("源格的班次应换给对方，日期保持不变")
	}
	if !hasShift(result.Records, 1, "2025-01-08", domain.ShiftMorning) {
		t.Error("目标格的班次应换给源方，日期保持不变")
	}
}

// ── 移日（同一人的两个格子之间）──

func TestResolveSwap_SameStaffDateShiftPreservesGap(t *testing.T) {
	records := []domain.ShiftRecord{
		rec(1, "2025-01-06", domain.ShiftAfternoon),
		rec(1, "2025-01-07", domain.ShiftNight),
	}

	result := ResolveSwap(records, Coordinate{StaffID: 1, Date: "2025-01-06"}, Coordinate{StaffID: 1, Date: "2025-01-13"})

	if len(result.Records) != 2 {
		t.Fatalf("移日后记录总数应守恒，期望=2，实际=%d", len(result.Records))
	}
	if !hasShift(result.Records, 1, "2025-01-13", domain.ShiftAfternoon) {
		t.Error("中班应平移到目标日期")
	}
	if !hasShift(result.Records, 1, "2025-01-14", domain.ShiftNight) {
		t.Error("联动夜班应保持一天的内部间隔")
	}
}

func TestResolveSwap_SameComboBlockAdjacentCells(t *testing.T) {
	// 源格和目标格是同一人同一个连班块的两个格子（中班日和次日夜班），
	// 解析到的是同一个物理块，应整体移日一次而不是复制
	records := []domain.ShiftRecord{
		rec(1, "2025-01-06", domain.ShiftAfternoon),
		rec(1, "2025-01-07", domain.ShiftNight),
	}

	result := ResolveSwap(records, Coordinate{StaffID: 1, Date: "2025-01-06"}, Coordinate{StaffID: 1, Date: "2025-01-07"})

	if len(result.Records) != 2 {
		t.Fatalf("同一连班块的两个格子之间对调不应复制块，期望记录数=2，实际=%d", len(result.Records))
	}
	if !hasShift(result.Records, 1, "2025-01-07", domain.ShiftAfternoon) {
		t.Error("中班应整体平移到目标日期")
	}
	if !hasShift(result.Records, 1, "2025-01-08", domain.ShiftNight) {
		t.Error("联动夜班应跟随平移并保持一天的内部间隔")
	}
	if result.MovedIn != nil {
		t.Error("同一个块的整体移日应是单向移出，MovedIn 应为 nil")
	}
}

// ── 智能匹配与自由交换 ──

func TestResolveSwap_SmartMatchPrefersSameType(t *testing.T) {
	// 目标格同时有早班和连班块，源格是连班块时应精确匹配连班块
	records := []domain.ShiftRecord{
		rec(1, "2025-01-06", domain.ShiftAfternoon),
		rec(1, "2025-01-07", domain.ShiftNight),
		rec(2, "2025-01-08", domain.ShiftMorning),
		rec(2, "2025-01-08", domain.ShiftAfternoon),
		rec(2, "2025-01-09", domain.ShiftNight),
	}

	result := ResolveSwap(records, Coordinate{StaffID: 1, Date: "2025-01-06"}, Coordinate{StaffID: 2, Date: "2025-01-08"})

	if !hasShift(result.Records, 2, "2025-01-08", domain.ShiftMorning) {
		t.Error("目标格的早班不应被动到，智能匹配应选中连班块")
	}
	if !hasShift(result.Records, 1, "2025-01-08", domain.ShiftAfternoon) || !hasShift(result.Records, 1, "2025-01-09", domain.ShiftNight) {
		t.Error("目标格的连班块应整体换给源方")
	}
	if !hasShift(result.Records, 2, "2025-01-06", domain.ShiftAfternoon) || !hasShift(result.Records, 2, "2025-01-07", domain.ShiftNight) {
		t.Error("源格的连班块应整体换给对方")
	}
}

func TestResolveSwap_MoveIntoEmptyTarget(t *testing.T) {
	records := []domain.ShiftRecord{rec(1, "2025-01-05", domain.ShiftMorning)}

	result := ResolveSwap(records, Coordinate{StaffID: 1, Date: "2025-01-05"}, Coordinate{StaffID: 2, Date: "2025-01-08"})

	if result.MovedOut == nil || result.MovedIn != nil {
		t.Fatal("目标为空时应是单向移出")
	}
	if !hasShift(result.Records, 2, "2025-01-05", domain.ShiftMorning) {
		t.Error("源格的班次应移交给对方")
	}
	if len(result.Records) != 1 {
		t.Errorf("单向移出后记录数应为 1，实际=%d", len(result.Records))
	}
}

func TestResolveSwap_PullFromTargetWhenSourceEmpty(t *testing.T) {
	records := []domain.ShiftRecord{rec(2, "2025-01-08", domain.ShiftMorning)}

	result := ResolveSwap(records, Coordinate{StaffID: 1, Date: "2025-01-05"}, Coordinate{StaffID: 2, Date: "2025-01-08"})

	if result.MovedOut != nil || result.MovedIn == nil {
		t.Fatal("源格为空时应是单向移入")
	}
	if !hasShift(result.Records, 1, "2025-01-08", domain.ShiftMorning) {
		t.Error("目标格的班次应移入源方")
	}
}

func TestResolveSwap_BothEmptyIsNoop(t *testing.T) {
	records := []domain.ShiftRecord{rec(3, "2025-01-20", domain.ShiftMorning)}

	result := ResolveSwap(records, Coordinate{StaffID: 1, Date: "2025-01-05"}, Coordinate{StaffID: 2, Date: "2025-01-08"})

	if result.MovedOut != nil || result.MovedIn != nil {
		t.Error("两个空格之间的对调应为空操作")
	}
	if len(result.Records) != 1 {
		t.Errorf("空操作不应改变记录集，实际记录数=%d", len(result.Records))
	}
}

func TestResolveSwap_SkipsDuplicateIDs(t *testing.T) {
	// 对方已持有即将生成的同一三元组时，插入被静默跳过而不是报错
	records := []domain.ShiftRecord{
		rec(1, "2025-01-05", domain.ShiftMorning),
		rec(2, "2025-01-08", domain.ShiftMorning),
		rec(2, "2025-01-05", domain.ShiftMorning),
	}

	result := ResolveSwap(records, Coordinate{StaffID: 1, Date: "2025-01-05"}, Coordinate{StaffID: 2, Date: "2025-01-08"})

	seen := make(map[string]bool)
	for _, r := range result.Records {
		if seen[r.ID] {
			t.Fatalf("结果中出现重复 ID：%s", r.ID)
		}
		seen[r.ID] = true
	}
	if len(result.Records) != 2 {
		t.Errorf("撞 ID 的插入应被跳过，期望记录数=2，实际=%d", len(result.Records))
	}
}
