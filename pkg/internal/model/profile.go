package model

// UserProfile 用户展示信息，由身份服务同步写入，注册表只读.
// 查询缺失时列表照常返回，展示字段留空.
type UserProfile struct {
	UserID string `gorm:"primaryKey;size:255" json:"user_id"`
	Name   string `gorm:"size:255"            json:"name"`
	Image  string `gorm:"size:1024"           json:"image"`
}

// TableName 固定表名.
func (UserProfile) TableName() string {
	return "user_profiles"
}
