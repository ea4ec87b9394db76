package domain

import "errors"

// Role is the closed set of principal roles known to the portal.
type Role string

const (
	RoleUser          Role = "user"
	RoleFacilityOwner Role = "facility_owner"
	RoleAdmin         Role = "admin"
)

var ErrUnknownRole = errors.New("unknown role")
var ErrInvalidIdentity = errors.New("invalid identity payload")
var ErrNotAuthenticated = errors.New("not authenticated")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrAccessKeyRejected = errors.New("admin access key rejected")

// ParseRole converts a wire string into a Role. Unknown strings are rejected
// rather than carried through, so role checks downstream stay exhaustive.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser, RoleFacilityOwner, RoleAdmin:
		return Role(s), nil
	default:
		return "", ErrUnknownRole
	}
}

// HomePath returns the single landing route for a role. Every role has exactly
// one home; the guard redirects wrong-role navigation there.
func (r Role) HomePath() string {
	switch r {
	case RoleFacilityOwner:
		return "/dashboard"
	case RoleAdmin:
		return "/admin/dashboard"
	default:
		return "/profile"
	}
}

// Identity models the signed-in principal. Absence of an Identity means
// unauthenticated.
type Identity struct {
	ID         int64  `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Phone      string `json:"phone,omitempty"`
	Role       Role   `json:"role"`
	Avatar     string `json:"avatar,omitempty"`
	IsVerified bool   `json:"is_verified"`
	FacilityID int64  `json:"facility_id,omitempty"`
}

// Validate checks that a payload read back from storage still matches the
// Identity schema. Persisted state is never trusted on shape alone.
func (i *Identity) Validate() error {
	if i == nil {
		return ErrInvalidIdentity
	}
	if i.ID <= 0 || i.Email == "" {
		return ErrInvalidIdentity
	}
	if _, err := ParseRole(string(i.Role)); err != nil {
		return ErrInvalidIdentity
	}
	if i.Role == RoleFacilityOwner && i.FacilityID < 0 {
		return ErrInvalidIdentity
	}
	return nil
}

// IdentityPatch carries the fields a caller may merge into the current
// Identity. Nil fields are left untouched.
type IdentityPatch struct {
	Email  *string `json:"email,omitempty"`
	Name   *string `json:"name,omitempty"`
	Phone  *string `json:"phone,omitempty"`
	Avatar *string `json:"avatar,omitempty"`
}

// Apply returns a copy of id with the non-nil patch fields merged in.
func (p IdentityPatch) Apply(id Identity) Identity {
	if p.Email != nil {
		id.Email = *p.Email
	}
	if p.Name != nil {
		id.Name = *p.Name
	}
	if p.Phone != nil {
		id.Phone = *p.Phone
	}
	if p.Avatar != nil {
		id.Avatar = *p.Avatar
	}
	return id
}
