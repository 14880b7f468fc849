package types

import "time"

type Role string

const (
	RoleCitizen Role = "citizen"
	RoleAdmin   Role = "admin"
)

func (r Role) Valid() bool {
	return r == RoleCitizen || r == RoleAdmin
}

type User struct {
	ID        int       `db:"id" json:"id"`
	FullName  string    `db:"full_name" json:"fullName"`
	CIN       string    `db:"cin" json:"cin"`
	Password  string    `db:"password" json:"-"`
	Role      Role      `db:"role" json:"role"`
	IsBanned  bool      `db:"is_banned" json:"isBanned"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
