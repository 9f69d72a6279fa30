package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/sysu-ecnc-dev/duty-roster/backend/internal/domain"
	"github.com/sysu-ecnc-dev/duty-roster/backend/internal/roster"
)

// loadWindow 加载当月前后各扩一个月的排班记录，跨月连班的判定依赖这个窗口
func (h *Handler) loadWindow(monthKey string) ([]domain.ShiftRecord, error) {
	from, to := roster.MonthWindow(monthKey)
	return h.repository.GetShiftsInRange(from, to)
}

// staffNames 值班人员 ID 到姓名的映射，仅用于拼接日志文案
func (h *Handler) staffNames() (map[int64]string, error) {
	staff, err := h.repository.GetAllStaff()
	if err != nil {
		return nil, err
	}
	names := make(map[int64]string, len(staff))
	for _, s := range staff {
		names[s.ID] = s.Name
	}
	return names, nil
}

func staffNameOf(names map[int64]string, id int64) string {
	if name, ok := names[id]; ok {
		return name
	}
	return "未知"
}

func joinLabels(records []domain.ShiftRecord) string {
	labels := make([]string, 0, len(records))
	for _, rec := range records {
		labels = append(labels, rec.Type.Label())
	}
	return strings.Join(labels, "+")
}

// commitChange 落库引擎计算出的变更并按需写日志。
// 日志只在月份已发布时保留；排班本身已经落库，
// 日志写入失败时只记录错误，不回滚也不使请求失败（日志是旁路，不是控制流）
func (h *Handler) commitChange(status *domain.PublishStatus, before, after []domain.ShiftRecord, entries []*domain.ChangeLogEntry) (bool, error) {
	delta := roster.Diff(before, after)
	if delta.Empty() {
		return false, nil
	}

	if err := h.repository.ApplyShiftDelta(delta); err != nil {
		return false, err
	}

	if status.IsPublished {
		for _, entry := range entries {
			if err := h.repository.InsertChangeLog(entry); err != nil {
				slog.Error("写入变更日志失败", "monthKey", entry.MonthKey, "message", entry.Message, "error", err)
			}
		}
	}

	return true, nil
}

func (h *Handler) GetRoster(w http.ResponseWriter, r *http.Request) {
	status := r.Context().Value(PublishStatusCtx).(*domain.PublishStatus)

	records, err := h.loadWindow(status.MonthKey)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取排班成功", struct {
		Status  *domain.PublishStatus `json:"status"`
		Records []domain.ShiftRecord  `json:"records"`
	}{
		Status:  status,
		Records: records,
	})
}

func (h *Handler) ApplyAssignment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		StaffID int64  `json:"staffID" validate:"required"`
		Day     int    `json:"day" validate:"required,min=1,max=31"`
		Type    string `json:"type" validate:"required,oneof=M A N"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	status := r.Context().Value(PublishStatusCtx).(*domain.PublishStatus)
	date, ok := roster.DateOf(status.MonthKey, req.Day)
	if !ok {
		h.errorResponse(w, r, "无效的日期")
		return
	}

	records, err := h.loadWindow(status.MonthKey)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	names, err := h.staffNames()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	requested := domain.ShiftType(req.Type)
	existing := roster.ShiftsFor(records, req.StaffID, date)
	isSpecial := roster.IsSpecialDay(date, h.config.Roster.Holidays)

	after := roster.ApplyAssignment(records, req.StaffID, date, requested, isSpecial, h.policy)

	staffName := staffNameOf(names, req.StaffID)
	entry := &domain.ChangeLogEntry{
		MonthKey:   status.MonthKey,
		TargetDate: date,
	}
	if len(existing) > 0 {
		entry.Message = fmt.Sprintf("%s：%s 由 %s 调整为 %s", requested.Label(), staffName, joinLabels(existing), requested.Label())
		entry.ActionType = domain.ActionChange
	} else {
		entry.Message = fmt.Sprintf("%s：新增 %s", requested.Label(), staffName)
		entry.ActionType = domain.ActionAdd
	}

	changed, err := h.commitChange(status, records, after, []*domain.ChangeLogEntry{entry})
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if !changed {
		h.successResponse(w, r, "班次已是目标状态", records)
		return
	}

	h.successResponse(w, r, "排班成功", after)
}

func (h *Handler) ClearDay(w http.ResponseWriter, r *http.Request) {
	var req struct {
		StaffID int64 `json:"staffID" validate:"required"`
		Day     int   `json:"day" validate:"required,min=1,max=31"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	status := r.Context().Value(PublishStatusCtx).(*domain.PublishStatus)
	date, ok := roster.DateOf(status.MonthKey, req.Day)
	if !ok {
		h.errorResponse(w, r, "无效的日期")
		return
	}

	records, err := h.loadWindow(status.MonthKey)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	names, err := h.staffNames()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	existing := roster.ShiftsFor(records, req.StaffID, date)
	after := roster.ClearDay(records, req.StaffID, date)

	entry := &domain.ChangeLogEntry{
		MonthKey:   status.MonthKey,
		TargetDate: date,
		Message:    fmt.Sprintf("删除 %s 的 %s", staffNameOf(names, req.StaffID), joinLabels(existing)),
		ActionType: domain.ActionRemove,
	}

	changed, err := h.commitChange(status, records, after, []*domain.ChangeLogEntry{entry})
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if !changed {
		h.successResponse(w, r, "该日没有需要清除的班次", records)
		return
	}

	h.successResponse(w, r, "清除成功", after)
}

func (h *Handler) ApplyCombo(w http.ResponseWriter, r *http.Request) {
	var req struct {
		StaffID int64 `json:"staffID" validate:"required"`
		Day     int   `json:"day" validate:"required,min=1,max=31"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	status := r.Context().Value(PublishStatusCtx).(*domain.PublishStatus)
	date, ok := roster.DateOf(status.MonthKey, req.Day)
	if !ok {
		h.errorResponse(w, r, "无效的日期")
		return
	}

	records, err := h.loadWindow(status.MonthKey)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	names, err := h.staffNames()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	next := roster.NextDay(date)
	isSpecial := roster.IsSpecialDay(date, h.config.Roster.Holidays)
	isNextSpecial := roster.IsSpecialDay(next, h.config.Roster.Holidays)

	// 用于日志：连班指派会全局驱逐当前的中班持有者
	var prevOwner int64
	var hasPrevOwner bool
	for _, rec := range records {
		if rec.Date == date && rec.Type == domain.ShiftAfternoon {
			prevOwner = rec.StaffID
			hasPrevOwner = true
			break
		}
	}

	after := roster.ApplyCombo(records, req.StaffID, date, isSpecial, isNextSpecial, h.policy)

	staffName := staffNameOf(names, req.StaffID)
	entry := &domain.ChangeLogEntry{
		MonthKey:   status.MonthKey,
		TargetDate: date,
		ActionType: domain.ActionChange,
	}
	if hasPrevOwner && prevOwner != req.StaffID {
		entry.Message = fmt.Sprintf("中夜连班：由 %s 变更为 %s", staffNameOf(names, prevOwner), staffName)
	} else {
		entry.Message = fmt.Sprintf("中夜连班：新增 %s", staffName)
	}

	changed, err := h.commitChange(status, records, after, []*domain.ChangeLogEntry{entry})
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if !changed {
		h.successResponse(w, r, "班次已是目标状态", records)
		return
	}

	h.successResponse(w, r, "连班指派成功", after)
}

func (h *Handler) Swap(w http.ResponseWriter, r *http.Request) {
	type cell struct {
		StaffID int64 `json:"staffID" validate:"required"`
		Day     int   `json:"day" validate:"required,min=1,max=31"`
	}
	var req struct {
		Source cell `json:"source" validate:"required"`
		Target cell `json:"target" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	status := r.Context().Value(PublishStatusCtx).(*domain.PublishStatus)
	sourceDate, ok := roster.DateOf(status.MonthKey, req.Source.Day)
	if !ok {
		h.errorResponse(w, r, "无效的日期")
		return
	}
	targetDate, ok := roster.DateOf(status.MonthKey, req.Target.Day)
	if !ok {
		h.errorResponse(w, r, "无效的日期")
		return
	}

	records, err := h.loadWindow(status.MonthKey)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	names, err := h.staffNames()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	source := roster.Coordinate{StaffID: req.Source.StaffID, Date: sourceDate}
	target := roster.Coordinate{StaffID: req.Target.StaffID, Date: targetDate}

	result := roster.ResolveSwap(records, source, target)
	if result.MovedOut == nil && result.MovedIn == nil {
		h.successResponse(w, r, "两个位置都没有可对调的班次", records)
		return
	}

	sName := staffNameOf(names, source.StaffID)
	tName := staffNameOf(names, target.StaffID)

	entries := []*domain.ChangeLogEntry{
		{
			MonthKey:   status.MonthKey,
			TargetDate: sourceDate,
			Message:    fmt.Sprintf("%s（%s）与 %s（%s）对调", sName, result.MovedOut.Label(), tName, result.MovedIn.Label()),
			ActionType: domain.ActionSwap,
		},
	}

	// 连班块里带了联动夜班时额外记一条，说明次日的夜班跟着动了
	if (result.MovedOut != nil && len(result.MovedOut.Records) > 1) ||
		(result.MovedIn != nil && len(result.MovedIn.Records) > 1) {
		entries = append(entries, &domain.ChangeLogEntry{
			MonthKey:   status.MonthKey,
			TargetDate: roster.NextDay(sourceDate),
			Message:    fmt.Sprintf("夜班（随中班联动）：%s 与 %s 对调", sName, tName),
			ActionType: domain.ActionSwap,
		})
	}

	changed, err := h.commitChange(status, records, result.Records, entries)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if !changed {
		h.successResponse(w, r, "对调前后没有变化", records)
		return
	}

	h.successResponse(w, r, "对调成功", result.Records)
}

func (h *Handler) GetChangeLogs(w http.ResponseWriter, r *http.Request) {
	status := r.Context().Value(PublishStatusCtx).(*domain.PublishStatus)

	entries, err := h.repository.GetChangeLogsForMonth(status.MonthKey)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取变更日志成功", entries)
}
