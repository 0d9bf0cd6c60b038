package courtdir

import "testing"

func fixtureRecords() []Record {
	return []Record{
		{ID: "scotus", FullName: "Supreme Court of the United States", Category: CategoryFederal},
		{ID: "ca9", FullName: "Court of Appeals for the Ninth Circuit", Category: CategoryFederal},
		{ID: "cand", FullName: "N.D. California", Category: CategoryFederal},
		{ID: "canb", FullName: "Bankruptcy, N.D. California", Category: CategoryFederalBankruptcy},
		{ID: "cal", FullName: "Supreme Court of California", Category: CategoryState},
		{ID: "ny", FullName: "New York Court of Appeals", Category: CategoryState},
		{ID: "armfor", FullName: "Court of Appeals for the Armed Forces", Category: CategoryMilitary},
		{ID: "uscfc", FullName: "Court of Federal Claims", Category: CategorySpecial},
		{ID: "mystery", FullName: "Mystery Tribunal", Category: Category("made-up")},
	}
}

func TestBuild_PartitionsEveryRecord(t *testing.T) {
	t.Parallel()

	d := Build(fixtureRecords())
	if d.Len() != 9 {
		t.Fatalf("Len = %d, want 9", d.Len())
	}

	total := 0
	for _, c := range Categories() {
		total += len(d.ByCategory[c])
	}
	if total != d.Len() {
		t.Fatalf("category partition covers %d records, want %d", total, d.Len())
	}

	// unknown category buckets into special, never dropped
	found := false
	for _, r := range d.ByCategory[CategorySpecial] {
		if r.ID == "mystery" {
			found = true
		}
	}
	if !found {
		t.Fatalf("record with unknown category missing from special bucket")
	}
}

func TestBuild_CategoryOrderFollowsAcquisition(t *testing.T) {
	t.Parallel()

	d := Build(fixtureRecords())
	got := d.CategoryIDs(CategoryFederal)
	want := []string{"scotus", "ca9", "cand"}
	if len(got) != len(want) {
		t.Fatalf("federal ids = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("federal ids = %v, want %v", got, want)
		}
	}
}

func TestBuild_StateIndexIsPrefixSyntactic(t *testing.T) {
	t.Parallel()

	d := Build(fixtureRecords())

	ca := d.StateIndex["california"]
	// prefix "ca" claims ca9, cand, canb and cal: the circuit and bankruptcy
	// courts over-match, that is the documented tradeoff of a syntactic index
	want := map[string]bool{"ca9": true, "cand": true, "canb": true, "cal": true}
	if len(ca) != len(want) {
		t.Fatalf("california index = %v, want keys %v", ca, want)
	}
	for _, id := range ca {
		if !want[id] {
			t.Fatalf("california index holds unexpected id %q", id)
		}
	}

	ny := d.StateIndex["new-york"]
	if len(ny) != 1 || ny[0] != "ny" {
		t.Fatalf("new-york index = %v, want [ny]", ny)
	}

	if _, ok := d.StateIndex["wyoming"]; ok {
		t.Fatalf("state with no matching courts must be absent from the index")
	}
}

func TestHasCourt(t *testing.T) {
	t.Parallel()

	d := Build(fixtureRecords())
	if !d.HasCourt("scotus") {
		t.Fatalf("HasCourt(scotus) = false")
	}
	if d.HasCourt("SCOTUS") {
		t.Fatalf("HasCourt is exact, caller normalizes first")
	}
	if d.HasCourt("nope") {
		t.Fatalf("HasCourt(nope) = true")
	}
}
