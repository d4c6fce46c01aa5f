package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"estimator/internal"
)

func sampleEstimate() internal.Estimate {
	return internal.Estimate{
		Items: []internal.Intervention{
			{ID: "i1", Name: "Speed Breaker", Quantity: 10, Clause: "IRC: SP: 84"},
			{ID: "i2", Name: "Unknown Widget", Quantity: 2},
		},
		Costs: map[string]internal.ItemCost{
			"i1": {UnitPrice: 5000, Total: 50000, Source: "CPWD SOR 2025"},
		},
		Overall: 50000,
	}
}

func TestBuildText(t *testing.T) {
	out := BuildText(sampleEstimate())

	for _, want := range []string{
		"Speed Breaker: Quantity 10, Clause IRC: SP: 84",
		"Unit Price: ₹5,000",
		"Total Cost: ₹50,000",
		"Price Source: CPWD SOR 2025",
		"Price Source: -",
		"Overall Total: ₹50,000",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}

func TestBuildRows(t *testing.T) {
	rows := BuildRows(sampleEstimate())
	if len(rows) != 2 {
		t.Fatalf("len=%d", len(rows))
	}
	if rows[0].UnitPrice == nil || *rows[0].UnitPrice != 5000 {
		t.Fatalf("first row=%+v", rows[0])
	}
	if rows[1].UnitPrice != nil || rows[1].Total != nil || rows[1].Source != nil {
		t.Fatalf("unpriced row must stay nil: %+v", rows[1])
	}
}

func TestWriteText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "estimate.txt")
	if err := WriteText(sampleEstimate(), path); err != nil {
		t.Fatal(err)
	}
	blob, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(blob), "Overall Total") {
		t.Fatalf("content=%q", string(blob))
	}
}
