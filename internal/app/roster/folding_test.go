package roster

import (
	"testing"

	"github.com/lumenadvising/lumenhub/internal/domain/models"
)

func TestFoldServices(t *testing.T) {
	svcs := []models.Service{
		{ID: "pkg", Name: "美本申请套餐", Status: models.ServiceInProgress},
		{ID: "c1", ParentID: "pkg", Name: "美本申请套餐 - 选校规划", Status: models.ServiceInProgress},
		{ID: "c2", ParentID: "pkg", Name: "文书辅导", Status: models.ServicePreparing},
		{ID: "solo", Name: "雅思培训", Status: models.ServiceInProgress},
	}

	out := FoldServices(svcs)
	if len(out) != 3 {
		t.Fatalf("got %d services, want 3 (parent row suppressed)", len(out))
	}

	byID := make(map[string]models.Service)
	for _, svc := range out {
		byID[svc.ID] = svc
	}
	if _, ok := byID["pkg"]; ok {
		t.Error("parent with present children not suppressed")
	}
	if got := byID["c1"].Name; got != "美本申请套餐 · 选校规划" {
		t.Errorf("c1 name = %q, want shared prefix stripped to a suffix", got)
	}
	if got := byID["c2"].Name; got != "美本申请套餐 · 文书辅导" {
		t.Errorf("c2 name = %q, want child name kept as suffix", got)
	}
	if got := byID["solo"].Name; got != "雅思培训" {
		t.Errorf("solo name = %q, want untouched", got)
	}
}

func TestFoldServices_OrphanParentIDPassesThrough(t *testing.T) {
	svcs := []models.Service{
		{ID: "c1", ParentID: "gone", Name: "选校规划", Status: models.ServiceInProgress},
	}
	out := FoldServices(svcs)
	if len(out) != 1 || out[0].Name != "选校规划" {
		t.Errorf("out = %+v, want orphan child untouched", out)
	}
}

func TestFoldServices_ParentWithoutChildrenStays(t *testing.T) {
	svcs := []models.Service{
		{ID: "pkg", Name: "套餐", Status: models.ServiceInProgress},
	}
	out := FoldServices(svcs)
	if len(out) != 1 || out[0].ID != "pkg" {
		t.Errorf("out = %+v, want childless service kept", out)
	}
}

func TestChildSuffix(t *testing.T) {
	tests := []struct {
		name   string
		parent string
		child  string
		want   string
	}{
		{"shared prefix with dash", "美本申请", "美本申请 - 选校", "选校"},
		{"shared prefix with dot", "美本申请", "美本申请 · 文书", "文书"},
		{"dash delimiter only", "套餐", "别名 - 选校", "选校"},
		{"unrelated names", "套餐", "文书辅导", "文书辅导"},
		{"child equals parent", "套餐", "套餐", "套餐"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := childSuffix(tt.parent, tt.child); got != tt.want {
				t.Errorf("childSuffix(%q, %q) = %q, want %q", tt.parent, tt.child, got, tt.want)
			}
		})
	}
}
