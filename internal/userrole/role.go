package userrole

import (
	"fmt"
	"strings"
)

// Role is the coarse privilege tier of a device identity.
// Higher values take precedence.
type Role int

const (
	RoleEntrant Role = iota
	RoleOrganizer
	RoleAdmin
)

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleOrganizer:
		return "organizer"
	default:
		return "entrant"
	}
}

// MarshalText keeps roles lower-case on the wire.
func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Role) UnmarshalText(text []byte) error {
	parsed, ok := ParseRole(string(text))
	if !ok {
		return fmt.Errorf("unknown role %q", string(text))
	}
	*r = parsed
	return nil
}

// ParseRole matches role names case-insensitively. Surrounding whitespace
// makes a name unknown.
func ParseRole(s string) (Role, bool) {
	switch strings.ToLower(s) {
	case "admin":
		return RoleAdmin, true
	case "organizer":
		return RoleOrganizer, true
	case "entrant":
		return RoleEntrant, true
	default:
		return RoleEntrant, false
	}
}

// RoleFromFlags applies admin > organizer > entrant.
func RoleFromFlags(isAdmin, isOrganizer bool) Role {
	if isAdmin {
		return RoleAdmin
	}
	if isOrganizer {
		return RoleOrganizer
	}
	return RoleEntrant
}

// Destination is the profile screen a client should open for a role.
type Destination string

const (
	DestinationAdminProfile     Destination = "admin_profile"
	DestinationOrganizerProfile Destination = "organizer_profile"
	DestinationEditProfile      Destination = "edit_profile"
)

// Path is the client route for the destination.
func (d Destination) Path() string {
	switch d {
	case DestinationAdminProfile:
		return "/admin/profile"
	case DestinationOrganizerProfile:
		return "/organizer/profile"
	default:
		return "/profile/edit"
	}
}

// DestinationFor maps a role to its profile screen.
func DestinationFor(r Role) Destination {
	switch r {
	case RoleAdmin:
		return DestinationAdminProfile
	case RoleOrganizer:
		return DestinationOrganizerProfile
	default:
		return DestinationEditProfile
	}
}

// Route maps a role name to a destination. Unknown names land on the
// entrant screen.
func Route(role string) Destination {
	r, _ := ParseRole(role)
	return DestinationFor(r)
}
