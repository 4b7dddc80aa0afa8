package entities

// Actor - аутентифицированный вызывающий. Аутентификацию выполняет
// внешний провайдер, сюда приходит уже проверенная личность.
type Actor struct {
	ID   string
	Role ActorRoleType
}

type ActorRoleType string

const (
	RoleClient  ActorRoleType = "client"
	RoleCourier ActorRoleType = "courier"
	RoleAdmin   ActorRoleType = "admin"
)

func (r ActorRoleType) String() string {
	return string(r)
}

func IsValidActorRole(s string) bool {
	switch ActorRoleType(s) {
	case RoleClient, RoleCourier, RoleAdmin:
		return true
	default:
		return false
	}
}
