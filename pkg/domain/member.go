// Package domain declares the member-record schema shared by the generator,
// the cleaning pipeline, the health metrics engine and the exporters.
package domain

// Recognized member dataset columns. Datasets may carry any subset; pipeline
// steps and metrics targeting an absent column degrade to no-ops or vacuous
// results rather than failing.
const (
	ColumnID               = "ID"
	ColumnName             = "Name"
	ColumnEmail            = "Email"
	ColumnJoinDate         = "Join_Date"
	ColumnLastLogin        = "Last_Login"
	ColumnAttendance       = "Event_Attendance"
	ColumnRole             = "Role"
	ColumnEventRegistered  = "Event_Registered"
	ColumnRegistrationDate = "Registration_Date"
)

// MemberColumns returns the full generated-member column set in export order.
func MemberColumns() []string {
	return []string{
		ColumnID,
		ColumnName,
		ColumnEmail,
		ColumnJoinDate,
		ColumnLastLogin,
		ColumnAttendance,
		ColumnRole,
		ColumnEventRegistered,
		ColumnRegistrationDate,
	}
}

// Member roles observed in generated data. The set is not enforced anywhere;
// Role stays a free-text categorical column.
const (
	RoleMember = "Member"
	RoleAdmin  = "Admin"
	RoleGuest  = "Guest"
)
