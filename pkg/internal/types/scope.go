// Package types 定义 HTTP 层的请求/响应结构与通用领域类型.
package types

// Role 调用者在 scope 内的角色.
type Role string

const (
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

// Scope 描述一次请求的归属空间与调用者.
// ID 为组织标识，或在个人空间下等于 UserID；下游存储层不再区分两者.
type Scope struct {
	// ID 空间标识，所有文件查询都以它过滤
	ID string `json:"id"`
	// UserID 调用者用户标识，收藏按它记账
	UserID string `json:"user_id"`
	// Role 调用者角色，restore/purge 仅限 admin
	Role Role `json:"role"`
}

// IsAdmin 返回调用者是否为空间管理员.
func (s Scope) IsAdmin() bool {
	return s.Role == RoleAdmin
}

// Personal 返回该 scope 是否为个人空间.
func (s Scope) Personal() bool {
	return s.ID == s.UserID
}
