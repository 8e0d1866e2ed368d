package rbac

import (
	"gorm.io/gorm"
)

type UserRoleRow struct {
	UserID   string
	RoleName string
}

type RolePermissionRow struct {
	RoleName string
	Resource string
	Action   string
}

//go:generate mockgen -source=rbac_repo.go -destination=mock/rbac_repo_mock.go -package=mock
type Repository interface {
	GetUserRoles() ([]UserRoleRow, error)
	GetRolePermissions() ([]RolePermissionRow, error)
	AssignRole(userID, roleID string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetUserRoles() ([]UserRoleRow, error) {
	var rows []UserRoleRow
	err := r.db.
		Table("user_roles").
		Select("user_roles.user_id::text AS user_id, roles.name AS role_name").
		Joins("JOIN roles ON roles.id = user_roles.role_id").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) GetRolePermissions() ([]RolePermissionRow, error) {
	var rows []RolePermissionRow
	err := r.db.
		Table("role_permissions").
		Select("roles.name AS role_name, role_permissions.resource, role_permissions.action").
		Joins("JOIN roles ON roles.id = role_permissions.role_id").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) AssignRole(userID, roleID string) error {
	return r.db.Exec(
		"INSERT INTO user_roles (id, user_id, role_id) VALUES (gen_random_uuid(), ?, ?) ON CONFLICT DO NOTHING",
		userID, roleID,
	).Error
}
