package entity

import (
	"time"

	"github.com/google/uuid"
)

type AdminRole string

const (
	AdminRoleSupport    AdminRole = "support"
	AdminRoleAdmin      AdminRole = "admin"
	AdminRoleSuperAdmin AdminRole = "super_admin"
)

// roleRanks is the fixed privilege ordering used by the access guard.
var roleRanks = map[AdminRole]int{
	AdminRoleSupport:    0,
	AdminRoleAdmin:      1,
	AdminRoleSuperAdmin: 2,
}

// RoleRank returns the ordinal rank of a role, or -1 for unknown roles
// so that an unrecognized role never passes a guard.
func RoleRank(r AdminRole) int {
	rank, ok := roleRanks[r]
	if !ok {
		return -1
	}
	return rank
}

// AtLeast reports whether the role satisfies the required role.
func (r AdminRole) AtLeast(required AdminRole) bool {
	return RoleRank(r) >= RoleRank(required) && RoleRank(r) >= 0
}

type Admin struct {
	Id           uuid.UUID
	UserId       uuid.UUID
	Name         string
	Email        string
	PasswordHash *string
	Role         AdminRole
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AdminActionLog records a privileged mutation for auditing.
type AdminActionLog struct {
	Id         uuid.UUID
	AdminId    uuid.UUID
	Action     string
	EntityType string
	EntityId   *string
	Details    map[string]interface{}
	IpAddress  string
	UserAgent  string
	CreatedAt  time.Time
}

type AdminLoginAttempt struct {
	Id        uuid.UUID
	Email     string
	IpAddress string
	Success   bool
	CreatedAt time.Time
}
