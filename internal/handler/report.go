package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sysu-ecnc-dev/duty-roster/backend/internal/domain"
	"github.com/sysu-ecnc-dev/duty-roster/backend/internal/roster"
)

// GetReport 正式报表数据。已发布的月份使用发布时冻结的快照，
// 保证发布后继续换班也不会改变正式报表
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	status := r.Context().Value(PublishStatusCtx).(*domain.PublishStatus)

	live, err := h.loadWindow(status.MonthKey)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	staff, err := h.repository.GetAllStaff()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	records, source := roster.RecordsForReport(status, live)
	report := roster.BuildReport(records, staff, status.MonthKey, h.config.Roster.Holidays, h.rates)
	report.Source = source

	h.successResponse(w, r, "获取报表成功", report)
}

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	status := r.Context().Value(PublishStatusCtx).(*domain.PublishStatus)

	records, err := h.loadWindow(status.MonthKey)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	staff, err := h.repository.GetAllStaff()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	stats := roster.StatsFor(records, staff, status.MonthKey, h.rates)

	h.successResponse(w, r, "获取统计成功", stats)
}

// PublishRoster 发布某个月的排班：冻结当前窗口内的记录作为快照，并邮件通知所有在职用户
func (h *Handler) PublishRoster(w http.ResponseWriter, r *http.Request) {
	status := r.Context().Value(PublishStatusCtx).(*domain.PublishStatus)
	if status.IsPublished {
		h.errorResponse(w, r, "该月份已发布")
		return
	}

	records, err := h.loadWindow(status.MonthKey)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	publishedBy := r.Context().Value(FullNameCtxKey).(string)

	if err := h.repository.PublishMonth(status.MonthKey, publishedBy, records); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	// 发布已落库，通知邮件失败不回滚
	h.notifyPublished(status.MonthKey, publishedBy)

	h.successResponse(w, r, "发布成功", nil)
}

func (h *Handler) notifyPublished(monthKey, publishedBy string) {
	users, err := h.repository.GetAllUsers()
	if err != nil {
		slog.Error("获取用户列表失败，发布通知未发送", "monthKey", monthKey, "error", err)
		return
	}

	for _, user := range users {
		if !user.IsActive || user.Email == "" {
			continue
		}

		mailMessage := domain.MailMessage{
			Type: "roster_published",
			To:   user.Email,
			Data: domain.RosterPublishedMailData{
				FullName:    user.FullName,
				MonthKey:    monthKey,
				PublishedBy: publishedBy,
			},
		}

		mailData, err := json.Marshal(mailMessage)
		if err != nil {
			slog.Error("序列化发布通知失败", "monthKey", monthKey, "to", user.Email, "error", err)
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
		if err := h.mailChannel.PublishWithContext(
			ctx,
			"",
			"email_queue",
			true,
			false,
			amqp.Publishing{
				ContentType: "application/json",
				Body:        mailData,
			},
		); err != nil {
			slog.Error("发送发布通知失败", "monthKey", monthKey, "to", user.Email, "error", err)
		}
		cancel()
	}
}

// ResetRoster 把某个月重置回草稿：删除该月的排班记录、变更日志和发布快照
func (h *Handler) ResetRoster(w http.ResponseWriter, r *http.Request) {
	status := r.Context().Value(PublishStatusCtx).(*domain.PublishStatus)

	from := roster.FirstDayOfMonth(status.MonthKey)
	to := roster.LastDayOfMonth(status.MonthKey)

	if err := h.repository.ResetMonth(status.MonthKey, from, to); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "已重置为草稿", nil)
}
