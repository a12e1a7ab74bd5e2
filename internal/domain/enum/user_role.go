package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// UserRole represents what a staff account may do
type UserRole int

const (
	UserRoleStaff UserRole = 0
	UserRoleAdmin UserRole = 1
)

func (r UserRole) String() string {
	switch r {
	case UserRoleAdmin:
		return "admin"
	default:
		return "staff"
	}
}

// ParseUserRole converts a role name to a UserRole
func ParseUserRole(s string) (UserRole, error) {
	switch s {
	case "admin":
		return UserRoleAdmin, nil
	case "staff", "":
		return UserRoleStaff, nil
	}
	return UserRoleStaff, fmt.Errorf("unknown role %q", s)
}

func (r UserRole) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

func (r *UserRole) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*r = UserRole(i)
		return nil
	}
	role, err := ParseUserRole(str)
	if err != nil {
		return err
	}
	*r = role
	return nil
}

func (r UserRole) Value() (driver.Value, error) {
	return int64(r), nil
}

func (r *UserRole) Scan(value interface{}) error {
	if value == nil {
		*r = UserRoleStaff
		return nil
	}
	switch v := value.(type) {
	case int64:
		*r = UserRole(v)
	case int:
		*r = UserRole(v)
	}
	return nil
}
