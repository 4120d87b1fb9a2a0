package domain

// User Model
type User struct {
	ID       uint   `gorm:"primaryKey"`      // Primary key
	Username string `gorm:"unique;not null"` // Unique username, exact-match uniqueness
	Password string `gorm:"not null"`        // Salted bcrypt hash, never plaintext
}
