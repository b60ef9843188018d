// internal/app/system/assignedit/editor.go

// Package assignedit holds the mentor-team editor: an in-memory, editable
// copy of a student's per-service role assignments plus the diff engine
// that decides which services actually changed when the editor saves.
//
// All edits are modeled as commands applied by pure transition functions:
// a command takes the current snapshot, deep-clones only the role slice of
// the service it touches, and returns a new snapshot. The snapshot taken
// when the editor opened is therefore never mutated and stays valid as the
// diff baseline. The input modality (drag-drop, click, keyboard) is the
// caller's business; the editor only ever sees commands.
package assignedit

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lumenadvising/lumenhub/internal/domain/models"
)

// Validation errors. These are rejected locally and never reach a store.
var (
	ErrEmptyRoleName   = errors.New("role name must not be empty")
	ErrNoTargetService = errors.New("no target service selected")
	ErrNoTargetRole    = errors.New("no target role selected")
	ErrUnknownService  = errors.New("service not present in editor")
	ErrUnknownRole     = errors.New("role not present on service")
	ErrDuplicateRole   = errors.New("role key already exists on service")
)

// Snapshot maps service id to that service's role structure.
type Snapshot map[string][]models.MentorRole

// Clone deep-copies the snapshot.
func (s Snapshot) Clone() Snapshot {
	out := make(Snapshot, len(s))
	for id, roles := range s {
		out[id] = models.CloneRoles(roles)
	}
	return out
}

// Command is one editor mutation. Apply must not modify its input.
type Command interface {
	Apply(Snapshot) (Snapshot, error)
}

// Editor tracks the initial and working snapshots for one student's
// team-editing session. It lives for the lifetime of an open editor and
// is discarded on close; only the diff output ever reaches persistence.
type Editor struct {
	initial Snapshot
	working Snapshot
}

// Open starts an editing session over the given per-service roles. The
// input is cloned twice so later edits never touch the caller's data.
func Open(serviceRoles Snapshot) *Editor {
	return &Editor{
		initial: serviceRoles.Clone(),
		working: serviceRoles.Clone(),
	}
}

// Apply runs one command against the working snapshot. On validation
// failure the working snapshot is left exactly as it was.
func (e *Editor) Apply(cmd Command) error {
	next, err := cmd.Apply(e.working)
	if err != nil {
		return err
	}
	e.working = next
	return nil
}

// Roles returns the working role structure for one service.
func (e *Editor) Roles(serviceID string) []models.MentorRole {
	return e.working[serviceID]
}

// Changed returns the ids of services whose normalized working form
// differs from the normalized initial form.
func (e *Editor) Changed() []string {
	return ChangedServices(e.initial, e.working)
}

// Updates returns the full current role list for every changed service,
// ready to hand to the persistence gateway. The payload is the whole
// list, not a field-level delta: the diff decides which services to
// write, not what inside them changed.
func (e *Editor) Updates() map[string][]models.MentorRole {
	out := make(map[string][]models.MentorRole)
	for _, id := range e.Changed() {
		out[id] = models.CloneRoles(e.working[id])
	}
	return out
}

// replaceService returns a copy of s where only serviceID's role slice is
// freshly cloned, ready for mutation. Other services share the old slices.
func replaceService(s Snapshot, serviceID string) (Snapshot, []models.MentorRole, error) {
	roles, ok := s[serviceID]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s", ErrUnknownService, serviceID)
	}
	next := make(Snapshot, len(s))
	for id, r := range s {
		next[id] = r
	}
	cloned := models.CloneRoles(roles)
	next[serviceID] = cloned
	return next, cloned, nil
}

// NewRoleKey generates a key for a user-defined role.
func NewRoleKey() string {
	return "custom-" + uuid.NewString()
}

// AddRole appends a new role with the given name to a service. The role
// key is generated unless supplied (presets pass their fixed keys).
type AddRole struct {
	ServiceID string
	RoleKey   string
	RoleName  string
}

func (c AddRole) Apply(s Snapshot) (Snapshot, error) {
	if strings.TrimSpace(c.ServiceID) == "" {
		return nil, ErrNoTargetService
	}
	name := strings.TrimSpace(c.RoleName)
	if name == "" {
		return nil, ErrEmptyRoleName
	}
	next, roles, err := replaceService(s, c.ServiceID)
	if err != nil {
		return nil, err
	}
	key := strings.TrimSpace(c.RoleKey)
	if key == "" {
		key = NewRoleKey()
	}
	for _, r := range roles {
		if r.RoleKey == key {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateRole, key)
		}
	}
	next[c.ServiceID] = append(roles, models.MentorRole{
		RoleKey:  key,
		RoleName: name,
		Members:  []models.MentorTeamMember{},
	})
	return next, nil
}

// RemoveRole deletes a role and all of its members from a service.
type RemoveRole struct {
	ServiceID string
	RoleKey   string
}

func (c RemoveRole) Apply(s Snapshot) (Snapshot, error) {
	next, roles, err := replaceService(s, c.ServiceID)
	if err != nil {
		return nil, err
	}
	for i, r := range roles {
		if r.RoleKey == c.RoleKey {
			next[c.ServiceID] = append(roles[:i], roles[i+1:]...)
			return next, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownRole, c.RoleKey)
}

// RenameRole updates a role's display name, mirrored onto its members.
type RenameRole struct {
	ServiceID string
	RoleKey   string
	RoleName  string
}

func (c RenameRole) Apply(s Snapshot) (Snapshot, error) {
	name := strings.TrimSpace(c.RoleName)
	if name == "" {
		return nil, ErrEmptyRoleName
	}
	return updateRole(s, c.ServiceID, c.RoleKey, func(r *models.MentorRole) {
		r.RoleName = name
		for i := range r.Members {
			r.Members[i].RoleName = name
		}
	})
}

// SetResponsibilities updates a role's duty text, mirrored onto members.
type SetResponsibilities struct {
	ServiceID        string
	RoleKey          string
	Responsibilities string
}

func (c SetResponsibilities) Apply(s Snapshot) (Snapshot, error) {
	text := strings.TrimSpace(c.Responsibilities)
	return updateRole(s, c.ServiceID, c.RoleKey, func(r *models.MentorRole) {
		r.Responsibilities = text
		for i := range r.Members {
			r.Members[i].Responsibilities = text
		}
	})
}

// AddMember places a mentor under a role. Dropping a mentor onto a role
// card and clicking "add" both reduce to this command, and it is
// idempotent: adding a mentor already in the role is a no-op.
type AddMember struct {
	ServiceID string
	RoleKey   string
	MentorID  int64
	Name      string
}

func (c AddMember) Apply(s Snapshot) (Snapshot, error) {
	if strings.TrimSpace(c.ServiceID) == "" {
		return nil, ErrNoTargetService
	}
	if strings.TrimSpace(c.RoleKey) == "" {
		return nil, ErrNoTargetRole
	}
	return updateRole(s, c.ServiceID, c.RoleKey, func(r *models.MentorRole) {
		if r.HasMember(c.MentorID) {
			return
		}
		r.Members = append(r.Members, models.MentorTeamMember{
			ID:               c.MentorID,
			Name:             c.Name,
			RoleKey:          r.RoleKey,
			RoleName:         r.RoleName,
			Responsibilities: r.Responsibilities,
		})
	})
}

// RemoveMember takes a mentor out of a role.
type RemoveMember struct {
	ServiceID string
	RoleKey   string
	MentorID  int64
}

func (c RemoveMember) Apply(s Snapshot) (Snapshot, error) {
	return updateRole(s, c.ServiceID, c.RoleKey, func(r *models.MentorRole) {
		for i, m := range r.Members {
			if m.ID == c.MentorID {
				r.Members = append(r.Members[:i], r.Members[i+1:]...)
				return
			}
		}
	})
}

// TogglePrimary flips a member's primary flag.
type TogglePrimary struct {
	ServiceID string
	RoleKey   string
	MentorID  int64
}

func (c TogglePrimary) Apply(s Snapshot) (Snapshot, error) {
	return updateRole(s, c.ServiceID, c.RoleKey, func(r *models.MentorRole) {
		for i, m := range r.Members {
			if m.ID == c.MentorID {
				r.Members[i].IsPrimary = !m.IsPrimary
				return
			}
		}
	})
}

func updateRole(s Snapshot, serviceID, roleKey string, fn func(*models.MentorRole)) (Snapshot, error) {
	next, roles, err := replaceService(s, serviceID)
	if err != nil {
		return nil, err
	}
	for i := range roles {
		if roles[i].RoleKey == roleKey {
			fn(&roles[i])
			next[serviceID] = roles
			return next, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownRole, roleKey)
}
