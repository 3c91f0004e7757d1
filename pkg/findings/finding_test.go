package findings

import "testing"

// TestSortByPriority_Stable tests descending order with stable ties
func TestSortByPriority_Stable(t *testing.T) {
	fs := []Finding{
		{ID: "b", Priority: 80},
		{ID: "a", Priority: 95},
		{ID: "c", Priority: 80},
		{ID: "d", Priority: 100},
	}

	SortByPriority(fs)

	wantOrder := []string{"d", "a", "b", "c"}
	for i, id := range wantOrder {
		if fs[i].ID != id {
			t.Fatalf("Expected order %v, got position %d = %s", wantOrder, i, fs[i].ID)
		}
	}
}

// TestCounts tests the severity and category tallies
func TestCounts(t *testing.T) {
	fs := []Finding{
		{Severity: Critical, Category: Broken},
		{Severity: High, Category: Broken},
		{Severity: High, Category: Structural},
		{Severity: Low, Category: Opportunity},
	}

	bySev := CountBySeverity(fs)
	if bySev[Critical] != 1 || bySev[High] != 2 || bySev[Medium] != 0 || bySev[Low] != 1 {
		t.Errorf("Unexpected severity counts: %v", bySev)
	}

	byCat := CountByCategory(fs)
	if byCat[Broken] != 2 || byCat[Structural] != 1 || byCat[Opportunity] != 1 {
		t.Errorf("Unexpected category counts: %v", byCat)
	}
}
