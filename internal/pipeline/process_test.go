package pipeline

import (
	"testing"

	"estimator/internal"
)

func testCatalog() []internal.PriceEntry {
	return []internal.PriceEntry{
		{Key: "speed breaker", UnitPrice: 5000, Source: "CPWD SOR 2025"},
		{Key: "road signage", UnitPrice: 2000, Source: "GeM portal 2025"},
		{Key: "guard rail", UnitPrice: 1200, Source: "CPWD SOR 2025"},
	}
}

func TestEstimateText(t *testing.T) {
	svc := NewEstimateServiceWithIDs(testCatalog(), seqIDs())
	est := svc.EstimateText("Speed Breaker - 10\nRoad Signage: 15 - IRC 67")

	if len(est.Items) != 2 {
		t.Fatalf("items=%d", len(est.Items))
	}
	first := est.Costs[est.Items[0].ID]
	if first.UnitPrice != 5000 || first.Total != 50000 {
		t.Fatalf("first cost=%+v", first)
	}
	if est.Overall != 80000 {
		t.Fatalf("overall=%v", est.Overall)
	}
}

func TestEstimateFileCSVPath(t *testing.T) {
	svc := NewEstimateServiceWithIDs(testCatalog(), seqIDs())
	est := svc.EstimateFile("items.csv", []byte("name,quantity,clause\nGuard Rail,25,IRC 119"))

	if len(est.Items) != 1 {
		t.Fatalf("items=%d", len(est.Items))
	}
	cost, ok := est.Costs[est.Items[0].ID]
	if !ok {
		t.Fatal("guard rail unpriced")
	}
	if cost.Total != 30000 {
		t.Fatalf("total=%v", cost.Total)
	}
}

func TestEstimatePartsMergeAcrossParts(t *testing.T) {
	svc := NewEstimateServiceWithIDs(testCatalog(), seqIDs())
	est := svc.EstimateParts([]NamedContent{
		{Name: "body.txt", Content: []byte("Speed Breaker - 4")},
		{Name: "annex.txt", Content: []byte("speed breaker - 6")},
		{Name: "items.csv", Content: []byte("name,quantity\nGuard Rail,2")},
	})

	if len(est.Items) != 2 {
		t.Fatalf("items=%+v", est.Items)
	}
	if est.Items[0].Quantity != 10 {
		t.Fatalf("merged quantity=%d", est.Items[0].Quantity)
	}
	if est.Overall != 50000+2400 {
		t.Fatalf("overall=%v", est.Overall)
	}
}

func TestEstimateUnmatchedOmitted(t *testing.T) {
	svc := NewEstimateServiceWithIDs(testCatalog(), seqIDs())
	est := svc.EstimateText("Unknown Widget - 3")
	if len(est.Items) != 1 {
		t.Fatalf("items=%d", len(est.Items))
	}
	if _, ok := est.Costs[est.Items[0].ID]; ok {
		t.Fatal("unmatched item must be absent from costs")
	}
	if est.Overall != 0 {
		t.Fatalf("overall=%v", est.Overall)
	}
}

func TestEstimateEmptyInput(t *testing.T) {
	svc := NewEstimateServiceWithIDs(testCatalog(), seqIDs())
	est := svc.EstimateText("")
	if len(est.Items) != 0 || len(est.Costs) != 0 || est.Overall != 0 {
		t.Fatalf("estimate=%+v", est)
	}
}
