package models

// User is an account that owns analyses. Email is stored lowercase and
// Password holds a bcrypt hash, never the plain text.
type User struct {
	ID       uint       `json:"id" gorm:"primaryKey"`
	Username string     `json:"username" gorm:"not null"`
	Email    string     `json:"email" gorm:"uniqueIndex;not null"`
	Password string     `json:"-" gorm:"not null"`
	Analyses []Analysis `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}
