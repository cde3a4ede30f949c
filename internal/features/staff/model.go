// ================== internal/features/staff/model.go ==================
package staff

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Member is a maintenance staff user. Staff documents live in the shared
// "users" collection with role "staff" and are owned by the user-management
// side; this service only reads them.
type Member struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email       string             `bson:"email" json:"email"`
	DisplayName string             `bson:"displayName,omitempty" json:"displayName,omitempty"`
	Name        string             `bson:"name,omitempty" json:"name,omitempty"`
	Department  string             `bson:"department,omitempty" json:"department,omitempty"`
	Role        string             `bson:"role" json:"role"`
}

// FullName resolves the display name: displayName, then name, then email.
func (m *Member) FullName() string {
	if m.DisplayName != "" {
		return m.DisplayName
	}
	if m.Name != "" {
		return m.Name
	}
	return m.Email
}

// DepartmentLabel returns the department, or "N/A" when unset.
func (m *Member) DepartmentLabel() string {
	if m.Department != "" {
		return m.Department
	}
	return "N/A"
}
