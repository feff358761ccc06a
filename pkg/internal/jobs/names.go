package jobs

// 任务名称常量，scheduler 以名称索引任务.
const (
	// JobTrashPurgeSweep 回收站过期清扫任务.
	JobTrashPurgeSweep = "trash.purge_sweep"
)
