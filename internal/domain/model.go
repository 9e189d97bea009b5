package domain

import "time"

// BaseModel is the common base struct for all domain models.
// It replaces gorm.Model to avoid the implicit soft delete behavior of
// DeletedAt; deactivation is modeled explicitly via SoftDelete instead.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AuditStamp records who deactivated an entity and when. The pair is always
// written and cleared together; a timestamp without an actor (or vice versa)
// is never a valid persisted state.
type AuditStamp struct {
	At time.Time
	By string
}

// SoftDelete is the embedded soft-delete state shared by all entities.
// Rows are never physically deleted; they are marked inactive and keep an
// audit stamp of the transition. Services call MarkActive before Create, so
// the column carries no default: a false value must reach the database as
// written, never be swallowed as an omitted zero value.
type SoftDelete struct {
	IsActive      bool       `gorm:"not null;index" json:"is_active"`
	DeactivatedAt *time.Time `json:"deactivated_at,omitempty"`
	DeactivatedBy *string    `gorm:"size:150" json:"deactivated_by,omitempty"`
}

// Active reports whether the entity is currently active.
func (s *SoftDelete) Active() bool { return s.IsActive }

// MarkInactive transitions the entity to inactive, writing the full audit
// stamp. It is the only way to set DeactivatedAt/DeactivatedBy.
func (s *SoftDelete) MarkInactive(stamp AuditStamp) {
	at := stamp.At
	by := stamp.By
	s.IsActive = false
	s.DeactivatedAt = &at
	s.DeactivatedBy = &by
}

// MarkActive transitions the entity back to active and clears the audit
// stamp. Calling it on an already-active entity re-clears the (already nil)
// stamp fields and is a no-op.
func (s *SoftDelete) MarkActive() {
	s.IsActive = true
	s.DeactivatedAt = nil
	s.DeactivatedBy = nil
}

// SoftDeletable is the capability contract implemented by every entity that
// participates in the deactivate/reactivate lifecycle.
type SoftDeletable interface {
	Active() bool
	MarkInactive(stamp AuditStamp)
	MarkActive()
}

// Identity is the caller-supplied identity attached to lifecycle transitions.
// Any field may be empty; actor resolution falls back through them in order.
type Identity struct {
	Name  string
	Email string
	Role  string
}
