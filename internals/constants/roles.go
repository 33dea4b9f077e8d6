package constants

// Role tokens carried in the JWT roles claim.
const (
	RoleOwner     = "owner"     // platform owner, cross-temple
	RoleAdmin     = "admin"     // temple administrator
	RolePriest    = "priest"    // officiant; may update occurrence status
	RoleVolunteer = "volunteer" // volunteer coordinator access
	RoleUser      = "user"      // regular community member
)

// AdminAndAbove are the roles allowed on /api/a routes.
var AdminAndAbove = []string{RoleOwner, RoleAdmin}

// StaffAndAbove may operate the schedule (status updates, exceptions).
var StaffAndAbove = []string{RoleOwner, RoleAdmin, RolePriest}
