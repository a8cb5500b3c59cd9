package user

type Permission string

const (
	// Self Management
	PermissionViewOwnProfile Permission = "profile.view_own"
	PermissionEditOwnProfile Permission = "profile.edit_own"

	// Attendance
	PermissionAttendanceViewOwn Permission = "attendance.view_own"
	PermissionAttendanceCreate  Permission = "attendance.create"
	PermissionAttendanceViewAll Permission = "attendance.view_all"

	// Overtime
	PermissionOTViewOwn       Permission = "ot.view_own"
	PermissionOTCreate        Permission = "ot.create"
	PermissionOTViewAll       Permission = "ot.view_all"
	PermissionOTApproveSenior Permission = "ot.approve_senior"
	PermissionOTApproveAdmin  Permission = "ot.approve_admin"

	// Employees & reports
	PermissionEmployeeViewAll Permission = "employee.view_all"
	PermissionReportsView     Permission = "reports.view"

	// User Management
	PermissionUserManage Permission = "user.manage"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleUser: {
		PermissionViewOwnProfile,
		PermissionEditOwnProfile,
		PermissionAttendanceViewOwn,
		PermissionAttendanceCreate,
		PermissionOTViewOwn,
		PermissionOTCreate,
		PermissionReportsView,
	},
	RoleSenior: {
		PermissionViewOwnProfile,
		PermissionEditOwnProfile,
		PermissionAttendanceViewOwn,
		PermissionAttendanceCreate,
		PermissionOTViewOwn,
		PermissionOTCreate,
		PermissionOTViewAll,
		PermissionOTApproveSenior,
		PermissionReportsView,
	},
	RoleAdmin: {
		PermissionViewOwnProfile,
		PermissionEditOwnProfile,
		PermissionAttendanceViewOwn,
		PermissionAttendanceCreate,
		PermissionAttendanceViewAll,
		PermissionOTViewOwn,
		PermissionOTCreate,
		PermissionOTViewAll,
		PermissionOTApproveSenior,
		PermissionOTApproveAdmin,
		PermissionEmployeeViewAll,
		PermissionReportsView,
	},
	RoleSuperadmin: {
		PermissionViewOwnProfile,
		PermissionEditOwnProfile,
		PermissionAttendanceViewOwn,
		PermissionAttendanceCreate,
		PermissionAttendanceViewAll,
		PermissionOTViewOwn,
		PermissionOTCreate,
		PermissionOTViewAll,
		PermissionOTApproveSenior,
		PermissionOTApproveAdmin,
		PermissionEmployeeViewAll,
		PermissionReportsView,
		PermissionUserManage,
	},
}

// HasPermission reports whether a role carries the given permission.
func HasPermission(role Role, permission Permission) bool {
	for _, p := range RolePermissions[role] {
		if p == permission {
			return true
		}
	}
	return false
}
