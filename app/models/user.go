package models

import (
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const UserCollection = "users"

var (
	nameRegex  = regexp.MustCompile(`^[a-zA-Z ]{2,}$`)
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// User is an account document. Passwords are stored hashed; accounts are
// never hard-deleted.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Phone     string             `bson:"phone" json:"phone"`
	Password  string             `bson:"password" json:"-"` // bcrypt hash, never serialised
	Addresses []string           `bson:"addresses,omitempty" json:"addresses"`

	IsVerified bool `bson:"isVerified" json:"isVerified"`
	IsAdmin    bool `bson:"isAdmin" json:"isAdmin"`

	ForgotPasswordToken       string    `bson:"forgotPasswordToken,omitempty" json:"-"`
	ForgotPasswordTokenExpiry time.Time `bson:"forgotPasswordTokenExpiry,omitempty" json:"-"`
	VerifyToken               string    `bson:"verifyToken,omitempty" json:"-"`
	VerifyTokenExpiry         time.Time `bson:"verifyTokenExpiry,omitempty" json:"-"`
	OTP                       string    `bson:"otp,omitempty" json:"-"`
	OTPExpires                time.Time `bson:"otpExpires,omitempty" json:"-"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ValidName reports whether name is alphabetic and at least two characters.
func ValidName(name string) bool { return nameRegex.MatchString(name) }

// ValidEmail reports whether email matches the account email format.
func ValidEmail(email string) bool { return emailRegex.MatchString(email) }

// Role maps the IsAdmin flag onto the role string carried in JWT claims.
func (u User) Role() string {
	if u.IsAdmin {
		return "admin"
	}
	return "user"
}
