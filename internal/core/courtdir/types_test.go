package courtdir

import "testing"

func TestCategoryFromJurisdiction(t *testing.T) {
	t.Parallel()

	cases := []struct {
		code string
		want Category
	}{
		{"F", CategoryFederal},
		{"FD", CategoryFederal},
		{"f", CategoryFederal},
		{" fd ", CategoryFederal},
		{"FB", CategoryFederalBankruptcy},
		{"FBP", CategoryFederalBankruptcy},
		{"S", CategoryState},
		{"SA", CategoryState},
		{"ST", CategoryState},
		{"SS", CategoryState},
		{"MA", CategoryMilitary},
		{"MT", CategoryMilitary},
		{"C", CategorySpecial},
		{"I", CategorySpecial},
		{"", CategorySpecial},
		{"ZZZ", CategorySpecial}, // unseen codes never drop records
	}
	for _, tc := range cases {
		if got := CategoryFromJurisdiction(tc.code); got != tc.want {
			t.Fatalf("CategoryFromJurisdiction(%q) = %q, want %q", tc.code, got, tc.want)
		}
	}
}

func TestParseCategory(t *testing.T) {
	t.Parallel()

	if got := ParseCategory("Federal-Bankruptcy"); got != CategoryFederalBankruptcy {
		t.Fatalf("ParseCategory case fold: got %q", got)
	}
	if got := ParseCategory("nonsense"); got != CategorySpecial {
		t.Fatalf("ParseCategory fallback: got %q", got)
	}
}

func TestCategoriesOrderIsFixed(t *testing.T) {
	t.Parallel()

	want := []Category{CategoryFederal, CategoryState, CategoryFederalBankruptcy, CategoryMilitary, CategorySpecial}
	got := Categories()
	if len(got) != len(want) {
		t.Fatalf("Categories() len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Categories()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDisplayName(t *testing.T) {
	t.Parallel()

	r := Record{ID: "ca9", ShortName: "9th Cir.", FullName: "Court of Appeals for the Ninth Circuit"}
	if r.DisplayName() != r.FullName {
		t.Fatalf("want full name, got %q", r.DisplayName())
	}
	r.FullName = ""
	if r.DisplayName() != "9th Cir." {
		t.Fatalf("want short name, got %q", r.DisplayName())
	}
	r.ShortName = ""
	if r.DisplayName() != "ca9" {
		t.Fatalf("want id, got %q", r.DisplayName())
	}
}
