package seed

import (
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sysu-ecnc-dev/duty-roster/backend/internal/config"
	"github.com/sysu-ecnc-dev/duty-roster/backend/internal/domain"
	"github.com/sysu-ecnc-dev/duty-roster/backend/internal/repository"
	"github.com/sysu-ecnc-dev/duty-roster/backend/internal/roster"
	"github.com/sysu-ecnc-dev/duty-roster/backend/internal/utils"
)

// 固定的六人值班池，用户名与登录的演示账号约定一致（密码与用户名相同）
var demoStaff = []struct {
	Name     string
	Username string
}{
	{Name: "陈志强", Username: "chen"},
	{Name: "林雅婷", Username: "lin"},
	{Name: "王俊杰", Username: "wang"},
	{Name: "刘思琪", Username: "liu"},
	{Name: "张家豪", Username: "zhang"},
	{Name: "黄晓梅", Username: "huang"},
}

// SeedDemoData 插入演示用的值班人员与对应的登录账号，重复执行时跳过已存在的账号
func SeedDemoData(r *repository.Repository, cfg *config.Config) {
	for _, ds := range demoStaff {
		staff := &domain.Staff{
			Name:  ds.Name,
			Phone: utils.GenerateRandomPhone(),
		}
		if err := r.CreateStaff(staff); err != nil {
			slog.Error("插入值班人员失败", "name", ds.Name, "error", err)
			continue
		}

		user := &domain.User{
			Username: ds.Username,
			Password: ds.Username, // 演示账号约定：密码与用户名相同
			FullName: ds.Name,
			Email:    ds.Username + "@" + cfg.Email.UserDomain,
			Role:     domain.RoleDutyStaff,
		}
		if err := r.CreateUser(user); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.ConstraintName == "users_username_key" {
				slog.Info("账号已存在，跳过", "username", ds.Username)
				continue
			}
			slog.Error("插入账号失败", "username", ds.Username, "error", err)
			continue
		}
	}

	slog.Info("插入演示数据完成")
}

// SeedDemoMonth 为指定月份生成一份演示排班。
// 排班经由规则引擎生成，月末的连班会自然跨到次月第一天
func SeedDemoMonth(r *repository.Repository, cfg *config.Config, monthKey string) {
	staff, err := r.GetAllStaff()
	if err != nil {
		slog.Error("获取值班人员失败", "error", err)
		return
	}
	if len(staff) == 0 {
		slog.Error("数据库中没有值班人员，请先执行演示数据插入")
		return
	}

	policy := roster.ParsePolicy(cfg.Roster.Policy)
	days := roster.DaysInMonth(monthKey)
	if days == 0 {
		slog.Error("无效的月份", "monthKey", monthKey)
		return
	}

	records := []domain.ShiftRecord{}
	for d := 1; d <= days; d++ {
		date, _ := roster.DateOf(monthKey, d)
		isSpecial := roster.IsSpecialDay(date, cfg.Roster.Holidays)

		morning := staff[(d-1)%len(staff)]
		records = roster.ApplyAssignment(records, morning.ID, date, domain.ShiftMorning, isSpecial, policy)

		// 隔天安排一组中夜连班
		if d%2 == 1 {
			combo := staff[d%len(staff)]
			next := roster.NextDay(date)
			records = roster.ApplyCombo(records, combo.ID, date, isSpecial, roster.IsSpecialDay(next, cfg.Roster.Holidays), policy)
		}
	}

	delta := roster.Diff(nil, records)
	if err := r.ApplyShiftDelta(delta); err != nil {
		slog.Error("写入演示排班失败", "monthKey", monthKey, "error", err)
		return
	}

	slog.Info("生成演示排班完成", "monthKey", monthKey, "records", len(records))
}
