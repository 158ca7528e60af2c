package user

import "github.com/google/uuid"

// CanManage is the single ownership check for promoter-scoped resources:
// admins manage everything, promoters manage only what they own.
// Authorization is decided before any state is touched.
func CanManage(role Role, actorID, ownerID uuid.UUID) bool {
	if role == RoleAdmin {
		return true
	}
	return actorID != uuid.Nil && actorID == ownerID
}
