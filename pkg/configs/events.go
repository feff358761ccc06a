package configs

import "github.com/spf13/viper"

// EventsConfig 控制事件发布的开关（全局与分主题）。
type EventsConfig struct {
	Enabled  bool                 `mapstructure:"enabled"` // 总开关
	File     FileEventsConfig     `mapstructure:"file"`
	Favorite FavoriteEventsConfig `mapstructure:"favorite"`
}

// FileEventsConfig 文件生命周期事件开关。
type FileEventsConfig struct {
	Created  bool `mapstructure:"created"`
	Trashed  bool `mapstructure:"trashed"`
	Restored bool `mapstructure:"restored"`
	Purged   bool `mapstructure:"purged"`
}

// FavoriteEventsConfig 收藏事件开关。
type FavoriteEventsConfig struct {
	Toggled bool `mapstructure:"toggled"`
}

func (c *EventsConfig) setDefaults(v *viper.Viper) {
	// 总开关：默认启用事件系统
	v.SetDefault("events.enabled", true)

	// 生命周期事件默认全部开启，便于下游审计或清理消费
	v.SetDefault("events.file.created", true)
	v.SetDefault("events.file.trashed", true)
	v.SetDefault("events.file.restored", true)
	v.SetDefault("events.file.purged", true)

	// 收藏切换事件量可能较大，默认关闭
	v.SetDefault("events.favorite.toggled", false)
}
