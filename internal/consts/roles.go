package consts

const (
	// RoleUser 普通用户，注册时的默认角色
	RoleUser = "User"

	// RoleAdmin 管理员，可管理用户角色与删除用户
	RoleAdmin = "Admin"
)
