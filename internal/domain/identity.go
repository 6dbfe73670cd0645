package domain

import "fmt"

// IdentityKind discriminates the two user populations. They live in separate
// tables and are never unified into a single user record.
type IdentityKind string

const (
	// IdentityRegistered is a directory-backed user (se_user table).
	IdentityRegistered IdentityKind = "se"
	// IdentityAnonymous is a self-signed-up user (anonymous_user table).
	IdentityAnonymous IdentityKind = "anonymous"
)

// Identity is a tagged variant naming exactly one user of exactly one kind.
// Authored content (posts, comments) must carry exactly one creator; building
// an Identity up front makes the "both set" and "neither set" states
// unrepresentable in the write path.
type Identity struct {
	Kind IdentityKind
	ID   string
}

// NewIdentity builds an Identity from the two nullable creator fields used on
// the wire. Exactly one of registeredID/anonymousID must be a non-empty value.
func NewIdentity(registeredID, anonymousID *string) (Identity, error) {
	sSet := registeredID != nil && *registeredID != ""
	aSet := anonymousID != nil && *anonymousID != ""

	switch {
	case sSet && aSet:
		return Identity{}, fmt.Errorf("both registered and anonymous creator set")
	case sSet:
		return Identity{Kind: IdentityRegistered, ID: *registeredID}, nil
	case aSet:
		return Identity{Kind: IdentityAnonymous, ID: *anonymousID}, nil
	default:
		return Identity{}, fmt.Errorf("no creator set")
	}
}

// IdentityFromKind builds an Identity from an explicit kind discriminator,
// as used by the bookmark and file endpoints ("se" selects the registered
// population, anything else the anonymous one, matching the wire contract).
func IdentityFromKind(kind, id string) (Identity, error) {
	if id == "" {
		return Identity{}, fmt.Errorf("empty user id")
	}
	if kind == string(IdentityRegistered) {
		return Identity{Kind: IdentityRegistered, ID: id}, nil
	}
	return Identity{Kind: IdentityAnonymous, ID: id}, nil
}

// IsRegistered reports whether the identity belongs to the registered population.
func (i Identity) IsRegistered() bool {
	return i.Kind == IdentityRegistered
}

// Columns splits the identity back into the (registered, anonymous) nullable
// column pair used by the storage schema. Exactly one return value is non-nil.
func (i Identity) Columns() (*string, *string) {
	id := i.ID
	if i.IsRegistered() {
		return &id, nil
	}
	return nil, &id
}

func (i Identity) String() string {
	return string(i.Kind) + ":" + i.ID
}
