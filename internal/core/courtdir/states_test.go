package courtdir

import "testing"

func TestStateKey(t *testing.T) {
	t.Parallel()

	cases := []struct {
		token string
		want  string
		ok    bool
	}{
		{"california", "california", true},
		{"calif", "california", true},
		{"ca", "california", true},
		{"new-york", "new-york", true},
		{"new york", "new-york", true},
		{"newyork", "new-york", true},
		{"ny", "new-york", true},
		{"tex", "texas", true},
		{" texas ", "texas", true},
		{"narnia", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := StateKey(tc.token)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("StateKey(%q) = (%q, %v), want (%q, %v)", tc.token, got, ok, tc.want, tc.ok)
		}
	}
}

func TestStateTableCoversFiftyStates(t *testing.T) {
	t.Parallel()

	if got := len(States()); got != 50 {
		t.Fatalf("state table has %d rows, want 50", got)
	}
	seen := map[string]bool{}
	for _, st := range States() {
		if st.Key == "" || len(st.Prefixes) == 0 {
			t.Fatalf("state row %+v missing key or prefixes", st)
		}
		if seen[st.Key] {
			t.Fatalf("duplicate state key %q", st.Key)
		}
		seen[st.Key] = true
	}
}
