package domain

import "time"

type UserRole string

const (
	RoleClient UserRole = "client"
	RoleJovem  UserRole = "jovem"
	RoleOng    UserRole = "ong"
	RoleAdmin  UserRole = "admin"
)

type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email" validate:"required,email"`
	PasswordHash string    `json:"-"`
	Role         UserRole  `json:"role"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone,omitempty"`
	AvatarURL    string    `json:"avatar_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Jovem is the provider profile. Every jovem belongs to exactly one ONG,
// which is why assigning a jovem to a booking also fixes the booking's ONG.
type Jovem struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	OngID     int64     `json:"ong_id"`
	Bio       string    `json:"bio,omitempty"`
	Skills    []string  `json:"skills,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

type Ong struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"user_id"`
	Name          string    `json:"name"`
	CNPJ          string    `json:"cnpj,omitempty"`
	ContactPerson string    `json:"contact_person,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
