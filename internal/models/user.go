// Package models defines the record types held by the mock entity stores
// and the request shapes used to create and update them.
package models

// Gender classifies a user record.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Role classifies a user's access level.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleUser       Role = "user"
	RoleSupervisor Role = "supervisor"
)

// User is a full user profile. UserName and Email are unique within the
// user collection. DisplayName is derived from FirstName and LastName.
type User struct {
	ID          string `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	UserName    string `json:"userName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Gender      Gender `json:"gender"`
	DateOfBirth string `json:"dob"`
	Role        Role   `json:"role"`
	DisplayName string `json:"name,omitempty"`
}

// CreateUserRequest carries the fields a caller supplies when creating a
// user. ID and DisplayName are assigned by the store.
type CreateUserRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	UserName    string `json:"userName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Gender      Gender `json:"gender"`
	DateOfBirth string `json:"dob"`
	Role        Role   `json:"role"`
}

// UpdateUserRequest is a partial update: nil fields are left untouched.
// DisplayName is recomputed only when FirstName and LastName are both set
// in the same request; otherwise the stored value stands.
type UpdateUserRequest struct {
	FirstName   *string `json:"firstName,omitempty"`
	LastName    *string `json:"lastName,omitempty"`
	UserName    *string `json:"userName,omitempty"`
	Email       *string `json:"email,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Gender      *Gender `json:"gender,omitempty"`
	DateOfBirth *string `json:"dob,omitempty"`
	Role        *Role   `json:"role,omitempty"`
}

// FullName combines first and last name the way the display name is built.
func FullName(firstName, lastName string) string {
	return firstName + " " + lastName
}
