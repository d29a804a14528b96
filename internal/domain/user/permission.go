package user

type Permission string

const (
	// Employee Management
	PermissionEmployeeViewAll Permission = "employee.view_all"
	PermissionEmployeeManage  Permission = "employee.manage"

	// Attendance Management
	PermissionAttendanceViewOwn Permission = "attendance.view_own"
	PermissionAttendanceViewAll Permission = "attendance.view_all"
	PermissionAttendanceManage  Permission = "attendance.manage"

	// Leave Management
	PermissionLeaveViewOwn Permission = "leave.view_own"
	PermissionLeaveCreate  Permission = "leave.create"
	PermissionLeaveViewAll Permission = "leave.view_all"
	PermissionLeaveApprove Permission = "leave.approve"

	// Reports
	PermissionStatsView Permission = "stats.view"

	// User Management
	PermissionUserViewAll Permission = "user.view_all"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionEmployeeViewAll,
		PermissionEmployeeManage,
		PermissionAttendanceViewOwn,
		PermissionAttendanceViewAll,
		PermissionAttendanceManage,
		PermissionLeaveViewOwn,
		PermissionLeaveViewAll,
		PermissionLeaveApprove,
		PermissionStatsView,
		PermissionUserViewAll,
	},
	RoleEmployee: {
		PermissionAttendanceViewOwn,
		PermissionLeaveViewOwn,
		PermissionLeaveCreate,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	for _, p := range RolePermissions[role] {
		if p == permission {
			return true
		}
	}
	return false
}
