package pkg

import (
	"strings"

	"github.com/storalia/bodega/internal/domain"
)

// ActorSystem is the terminal fallback recorded when no identity field is
// usable. deactivated_by is never left unset.
const ActorSystem = "System"

// ActorResolver extracts an actor string from an identity; ok is false when
// this source has nothing usable.
type ActorResolver func(id domain.Identity) (actor string, ok bool)

// DefaultActorChain is the ordered list of identity sources consulted when
// stamping a deactivation: display name, then email, then a role-qualified
// placeholder. ResolveActor appends the ActorSystem fallback after these.
func DefaultActorChain() []ActorResolver {
	return []ActorResolver{
		func(id domain.Identity) (string, bool) {
			name := strings.TrimSpace(id.Name)
			return name, name != ""
		},
		func(id domain.Identity) (string, bool) {
			email := strings.TrimSpace(id.Email)
			return email, email != ""
		},
		func(id domain.Identity) (string, bool) {
			role := strings.TrimSpace(id.Role)
			if role == "" {
				return "", false
			}
			return "role:" + role, true
		},
	}
}

// ResolveActor walks the chain in order and returns the first usable actor,
// falling back to ActorSystem when every source is empty. A nil or empty
// chain means the default chain.
func ResolveActor(id domain.Identity, chain ...ActorResolver) string {
	if len(chain) == 0 {
		chain = DefaultActorChain()
	}
	for _, resolve := range chain {
		if actor, ok := resolve(id); ok {
			return actor
		}
	}
	return ActorSystem
}
