package handler

type ContextKey string

var (
	RoleCtxKey       ContextKey = "role"
	SubCtxKey        ContextKey = "sub"
	FullNameCtxKey   ContextKey = "fullName"
	UserInfoCtx      ContextKey = "userInfo"
	PublishStatusCtx ContextKey = "publishStatus"
)
