package consts

const (
	AdminPostPathPrefix  = "/posts/admin/"
	PublicPostPathPrefix = "/posts/"
)

// Context 中的 Key
const (
	UserIDKey = "user_id"
	RolesKey  = "roles"
)
