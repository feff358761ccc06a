package configs

import "github.com/spf13/viper"

const (
	// DefaultTrashRetentionDays 软删除文件在回收站保留的天数，超过后由清扫任务永久清除.
	DefaultTrashRetentionDays = 30
	// DefaultPurgeSweepCron 清扫任务的默认 cron 表达式（每天 03:30）.
	DefaultPurgeSweepCron = "30 3 * * *"
)

// LifecycleConfig 文件生命周期配置：两阶段删除中第二阶段（永久清除）的策略.
// 软删除与恢复始终可用；该配置只影响后台清扫.
type LifecycleConfig struct {
	SweepEnabled  bool   `mapstructure:"sweep_enabled"`  // 是否启用定时清扫
	RetentionDays int    `mapstructure:"retention_days"` // 回收站保留天数
	SweepCron     string `mapstructure:"sweep_cron"`     // 清扫任务 cron 表达式
}

func (c *LifecycleConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("lifecycle.sweep_enabled", true)
	v.SetDefault("lifecycle.retention_days", DefaultTrashRetentionDays)
	v.SetDefault("lifecycle.sweep_cron", DefaultPurgeSweepCron)
}
