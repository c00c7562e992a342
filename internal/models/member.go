package models

// Role values for members.
const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

// Member is a stored user record. Password holds a bcrypt hash (or, for
// rows imported from the legacy store, the plaintext value until the
// first successful login upgrades it). Fullname and Codename may be empty;
// they are derived at login time and never written back.
type Member struct {
	Base
	Email    string   `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password string   `gorm:"size:255;not null" json:"-"`
	Fullname string   `gorm:"size:255" json:"fullname"`
	Codename string   `gorm:"size:16" json:"codename"`
	Role     string   `gorm:"size:32;not null;default:member" json:"role"`
	Balance  *float64 `gorm:"type:decimal(15,2)" json:"balance"`
}
