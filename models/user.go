// models/user.go
package models

import "time"

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

type Language string

const (
	LanguageEnglish Language = "en"
	LanguageSinhala Language = "si"
	LanguageTamil   Language = "ta"
)

func (l Language) Valid() bool {
	switch l {
	case LanguageEnglish, LanguageSinhala, LanguageTamil:
		return true
	}
	return false
}

// User represents a registered customer or admin.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	Phone        string    `bson:"phone" json:"phone"`
	District     string    `bson:"district" json:"district"`
	Language     Language  `bson:"language" json:"language"`
	Role         Role      `bson:"role" json:"role"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}

// PublicUser is the user as returned by the auth endpoints.
type PublicUser struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Phone    string   `json:"phone"`
	District string   `json:"district"`
	Language Language `json:"language"`
	Role     Role     `json:"role"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Phone:    u.Phone,
		District: u.District,
		Language: u.Language,
		Role:     u.Role,
	}
}

// UserRegistrationData is the body of POST /api/auth/register.
type UserRegistrationData struct {
	Name     string   `json:"name" binding:"required"`
	Email    string   `json:"email" binding:"required"`
	Password string   `json:"password" binding:"required"`
	Phone    string   `json:"phone" binding:"required"`
	District string   `json:"district" binding:"required"`
	Language Language `json:"language"`
}
