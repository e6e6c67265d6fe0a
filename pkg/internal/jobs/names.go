package jobs

// 任务名称常量，便于统一管理与引用.
const (
	JobStorageReconcile = "storage.reconcile"
	JobListCacheWarm    = "cache.warm.list"
)

// Cron 表达式常量（可选，但推荐一并集中管理）.
const (
	CronStorageReconcile = "20 3 * * *"
	CronListCacheWarm    = "0 * * * *"
)
