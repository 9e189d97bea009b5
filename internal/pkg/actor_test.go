package pkg

import (
	"testing"

	"github.com/storalia/bodega/internal/domain"
)

func TestResolveActor(t *testing.T) {
	tests := []struct {
		name string
		id   domain.Identity
		want string
	}{
		{"name wins", domain.Identity{Name: "Alice", Email: "a@example.com", Role: "Administrator"}, "Alice"},
		{"email when name empty", domain.Identity{Email: "a@example.com", Role: "Administrator"}, "a@example.com"},
		{"role qualified when only role", domain.Identity{Role: "Employee"}, "role:Employee"},
		{"system fallback", domain.Identity{}, ActorSystem},
		{"whitespace treated as empty", domain.Identity{Name: "  ", Email: " ", Role: "  "}, ActorSystem},
		{"name trimmed", domain.Identity{Name: "  Bob  "}, "Bob"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveActor(tt.id); got != tt.want {
				t.Errorf("ResolveActor(%+v) = %q; want %q", tt.id, got, tt.want)
			}
		})
	}
}

func TestResolveActor_CustomChain(t *testing.T) {
	chain := []ActorResolver{
		func(id domain.Identity) (string, bool) { return "", false },
		func(id domain.Identity) (string, bool) { return "audit-bot", true },
	}
	if got := ResolveActor(domain.Identity{Name: "ignored"}, chain...); got != "audit-bot" {
		t.Errorf("ResolveActor with custom chain = %q; want audit-bot", got)
	}
}

func TestResolveActor_EmptyChainUsesDefault(t *testing.T) {
	if got := ResolveActor(domain.Identity{Name: "Carol"}); got != "Carol" {
		t.Errorf("got %q; want Carol", got)
	}
}
