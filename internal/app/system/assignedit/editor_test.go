package assignedit

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lumenadvising/lumenhub/internal/domain/models"
)

func baseSnapshot() Snapshot {
	return Snapshot{
		"svc-1": {
			{
				RoleKey:  "primary",
				RoleName: "主导师",
				Members: []models.MentorTeamMember{
					{ID: 1, Name: "A", RoleKey: "primary", RoleName: "主导师", IsPrimary: true},
				},
			},
			{RoleKey: "essay", RoleName: "文书导师", Members: []models.MentorTeamMember{}},
		},
		"svc-2": {
			{RoleKey: "primary", RoleName: "主导师", Members: []models.MentorTeamMember{}},
		},
	}
}

func TestEditor_OpenIsolatesCallerData(t *testing.T) {
	src := baseSnapshot()
	ed := Open(src)

	if err := ed.Apply(AddMember{ServiceID: "svc-1", RoleKey: "essay", MentorID: 9, Name: "Z"}); err != nil {
		t.Fatalf("AddMember: %v", err)
	}

	if len(src["svc-1"][1].Members) != 0 {
		t.Error("edit leaked into the caller's snapshot")
	}
}

func TestEditor_FailedCommandLeavesWorkingUntouched(t *testing.T) {
	ed := Open(baseSnapshot())
	before := models.CloneRoles(ed.Roles("svc-1"))

	tests := []struct {
		name    string
		cmd     Command
		wantErr error
	}{
		{"empty role name", AddRole{ServiceID: "svc-1", RoleName: "   "}, ErrEmptyRoleName},
		{"no target service", AddRole{ServiceID: "", RoleName: "顾问"}, ErrNoTargetService},
		{"no target role", AddMember{ServiceID: "svc-1", RoleKey: "", MentorID: 2}, ErrNoTargetRole},
		{"unknown service", AddMember{ServiceID: "svc-9", RoleKey: "primary", MentorID: 2}, ErrUnknownService},
		{"unknown role", RemoveRole{ServiceID: "svc-1", RoleKey: "nope"}, ErrUnknownRole},
		{"duplicate role key", AddRole{ServiceID: "svc-1", RoleKey: "essay", RoleName: "文书导师"}, ErrDuplicateRole},
		{"empty rename", RenameRole{ServiceID: "svc-1", RoleKey: "primary", RoleName: ""}, ErrEmptyRoleName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ed.Apply(tt.cmd)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if diff := cmp.Diff(before, ed.Roles("svc-1")); diff != "" {
				t.Errorf("working state changed on rejected command:\n%s", diff)
			}
			if got := ed.Changed(); len(got) != 0 {
				t.Errorf("Changed() = %v after rejected command, want none", got)
			}
		})
	}
}

func TestEditor_AddMemberIdempotent(t *testing.T) {
	ed := Open(baseSnapshot())
	cmd := AddMember{ServiceID: "svc-1", RoleKey: "essay", MentorID: 9, Name: "Z"}

	if err := ed.Apply(cmd); err != nil {
		t.Fatalf("first apply: %v", err)
	}
	if err := ed.Apply(cmd); err != nil {
		t.Fatalf("second apply: %v", err)
	}

	roles := ed.Roles("svc-1")
	if n := len(roles[1].Members); n != 1 {
		t.Errorf("got %d members, want 1 (idempotent add)", n)
	}
}

func TestEditor_AddMemberInheritsRoleMetadata(t *testing.T) {
	ed := Open(Snapshot{
		"svc-1": {
			{RoleKey: "essay", RoleName: "文书导师", Responsibilities: "PS 打磨", Members: []models.MentorTeamMember{}},
		},
	})
	if err := ed.Apply(AddMember{ServiceID: "svc-1", RoleKey: "essay", MentorID: 9, Name: "Z"}); err != nil {
		t.Fatalf("AddMember: %v", err)
	}
	m := ed.Roles("svc-1")[0].Members[0]
	if m.RoleKey != "essay" || m.RoleName != "文书导师" || m.Responsibilities != "PS 打磨" {
		t.Errorf("member = %+v, want role metadata mirrored", m)
	}
}

func TestEditor_AddThenRemoveRoundTripIsNoChange(t *testing.T) {
	ed := Open(baseSnapshot())

	steps := []Command{
		AddMember{ServiceID: "svc-1", RoleKey: "essay", MentorID: 9, Name: "Z"},
		TogglePrimary{ServiceID: "svc-1", RoleKey: "essay", MentorID: 9},
		TogglePrimary{ServiceID: "svc-1", RoleKey: "essay", MentorID: 9},
		RemoveMember{ServiceID: "svc-1", RoleKey: "essay", MentorID: 9},
	}
	for i, cmd := range steps {
		if err := ed.Apply(cmd); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}

	if got := ed.Changed(); len(got) != 0 {
		t.Errorf("Changed() = %v, want empty after round trip", got)
	}
	if got := ed.Updates(); len(got) != 0 {
		t.Errorf("Updates() = %v, want empty after round trip", got)
	}
}

func TestEditor_RenameAndResponsibilitiesMirrorOntoMembers(t *testing.T) {
	ed := Open(baseSnapshot())

	if err := ed.Apply(RenameRole{ServiceID: "svc-1", RoleKey: "primary", RoleName: "首席导师"}); err != nil {
		t.Fatalf("RenameRole: %v", err)
	}
	if err := ed.Apply(SetResponsibilities{ServiceID: "svc-1", RoleKey: "primary", Responsibilities: " 全程规划 "}); err != nil {
		t.Fatalf("SetResponsibilities: %v", err)
	}

	r := ed.Roles("svc-1")[0]
	if r.RoleName != "首席导师" || r.Responsibilities != "全程规划" {
		t.Errorf("role = %+v, want renamed and trimmed duty text", r)
	}
	m := r.Members[0]
	if m.RoleName != "首席导师" || m.Responsibilities != "全程规划" {
		t.Errorf("member = %+v, want role changes mirrored", m)
	}
}

func TestEditor_TogglePrimary(t *testing.T) {
	ed := Open(baseSnapshot())
	cmd := TogglePrimary{ServiceID: "svc-1", RoleKey: "primary", MentorID: 1}

	if err := ed.Apply(cmd); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if ed.Roles("svc-1")[0].Members[0].IsPrimary {
		t.Error("IsPrimary still true after toggle off")
	}
	if err := ed.Apply(cmd); err != nil {
		t.Fatalf("toggle back: %v", err)
	}
	if !ed.Roles("svc-1")[0].Members[0].IsPrimary {
		t.Error("IsPrimary not restored after second toggle")
	}
}

func TestEditor_AddRoleGeneratesKey(t *testing.T) {
	ed := Open(baseSnapshot())
	if err := ed.Apply(AddRole{ServiceID: "svc-2", RoleName: "面试导师"}); err != nil {
		t.Fatalf("AddRole: %v", err)
	}
	roles := ed.Roles("svc-2")
	added := roles[len(roles)-1]
	if added.RoleKey == "" || added.RoleKey == added.RoleName {
		t.Errorf("RoleKey = %q, want a generated key", added.RoleKey)
	}
	if len(added.Members) != 0 {
		t.Errorf("new role has members: %+v", added.Members)
	}
}

func TestEditor_UpdatesCoversOnlyChangedServices(t *testing.T) {
	ed := Open(baseSnapshot())
	if err := ed.Apply(AddMember{ServiceID: "svc-2", RoleKey: "primary", MentorID: 4, Name: "D"}); err != nil {
		t.Fatalf("AddMember: %v", err)
	}

	updates := ed.Updates()
	if len(updates) != 1 {
		t.Fatalf("got %d updated services, want 1", len(updates))
	}
	roles, ok := updates["svc-2"]
	if !ok {
		t.Fatal("svc-2 missing from updates")
	}
	if len(roles[0].Members) != 1 || roles[0].Members[0].ID != 4 {
		t.Errorf("payload = %+v, want the full edited role list", roles)
	}
}
