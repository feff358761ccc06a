// Package jobs 负责注册与实现业务定时任务（基于 scheduler）.
package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/yeisme/filedrive/pkg/configs"
	ctxPkg "github.com/yeisme/filedrive/pkg/context"
	"github.com/yeisme/filedrive/pkg/internal/service"
	"github.com/yeisme/filedrive/pkg/internal/storage"
	"github.com/yeisme/filedrive/pkg/log"
	"github.com/yeisme/filedrive/pkg/scheduler"
)

// RegisterCronJobs 注册业务定时任务. 目前只有回收站过期清扫：
// 按 lifecycle.sweep_cron 定期永久清除在回收站停留超过 retention_days 的文件.
func RegisterCronJobs(sched *scheduler.Scheduler, mgr *storage.Manager) error {
	if sched == nil {
		return fmt.Errorf("scheduler is nil")
	}

	if mgr == nil {
		return fmt.Errorf("storage manager is nil")
	}

	cfg := configs.GetConfig().Lifecycle
	if !cfg.SweepEnabled {
		log.Logger().Info().Msg("trash purge sweep disabled")
		return nil
	}

	// 将 storage manager 注入到 context，便于 service 使用
	baseCtx := ctxPkg.WithStorageManager(context.Background(), mgr)

	return sched.AddCron(JobTrashPurgeSweep, cfg.SweepCron, func(ctx context.Context) {
		runPurgeSweep(ctx, cfg.RetentionDays)
	}, baseCtx)
}

// runPurgeSweep 执行一轮过期清扫，跨所有归属.
func runPurgeSweep(ctx context.Context, retentionDays int) {
	l := log.Logger().With().Str("job", JobTrashPurgeSweep).Logger()

	retention := time.Duration(retentionDays) * 24 * time.Hour

	svc := service.NewTrashService(ctx)

	n, err := svc.SweepExpired(ctx, retention)
	if err != nil {
		l.Error().Err(err).Int("purged", n).Msg("purge sweep finished with errors")
		return
	}

	if n > 0 {
		l.Info().Int("purged", n).Int("retention_days", retentionDays).Msg("purge sweep done")
	}
}
