package domain

import "context"

// Client represents a tenant renting warehouses.
type Client struct {
	BaseModel
	SoftDelete
	Name                string `gorm:"size:100;not null" json:"name"`
	Identification      string `gorm:"size:50;not null" json:"identification"`
	Phone               string `gorm:"size:30" json:"phone"`
	SecondaryPhone      string `gorm:"size:30" json:"secondary_phone"`
	Email               string `gorm:"size:255" json:"email"`
	LegalRepresentative string `gorm:"size:100" json:"legal_representative"`
	Activity            string `gorm:"size:100" json:"activity"`
}

// ClientListConfig drives the listing engine for clients. The free-text term
// is OR-ed across every text field the client screens search on, so a term
// matching only a secondary field (e.g. email) still returns the client.
var ClientListConfig = ListConfig{
	SortFields: map[string]string{
		"name":           "name",
		"identification": "identification",
		"email":          "email",
	},
	DefaultSortKey: "name",
	TieBreakColumn: "name",
	SearchColumns: []string{
		"name",
		"identification",
		"email",
		"legal_representative",
		"phone",
		"secondary_phone",
	},
	LikeFilterColumns: []string{"name", "identification", "legal_representative", "activity"},
}

// ClientRepository defines the data access interface for clients.
type ClientRepository interface {
	Create(ctx context.Context, c *Client) error
	GetByID(ctx context.Context, id uint, ignoreActiveFilter bool) (*Client, error)
	List(ctx context.Context, spec QuerySpec, sel ActiveSelector) (*PagedResult[Client], error)
	Update(ctx context.Context, c *Client) error
	Deactivate(ctx context.Context, id uint, stamp AuditStamp) error
	Reactivate(ctx context.Context, id uint) error
}

// ClientService defines the business logic interface for clients.
type ClientService interface {
	CreateClient(ctx context.Context, c *Client) (*Client, error)
	GetClient(ctx context.Context, id uint) (*Client, error)
	ListClients(ctx context.Context, spec QuerySpec, sel ActiveSelector) (*PagedResult[Client], error)
	UpdateClient(ctx context.Context, id uint, c *Client) (*Client, error)
	DeactivateClient(ctx context.Context, id uint, actor Identity) error
	ReactivateClient(ctx context.Context, id uint) error
}
