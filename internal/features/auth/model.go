// ================== internal/features/auth/model.go ==================
package auth

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Admin is a dashboard operator account. Admins live in the same users
// collection as staff, distinguished by role.
type Admin struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"passwordHash,omitempty" json:"-"`
	DisplayName  string             `bson:"displayName" json:"displayName"`
	Role         string             `bson:"role" json:"role"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	LastLoginAt  *time.Time         `bson:"lastLoginAt" json:"lastLoginAt"`
}

// LoginRequest is the payload for email/password login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// FirebaseLoginRequest carries a Firebase ID token minted by the web client.
type FirebaseLoginRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

// AuthResponse is returned after successful authentication.
type AuthResponse struct {
	User        *Admin `json:"user"`
	AccessToken string `json:"accessToken"`
}
