package courtdir

import (
	"strings"
	"sync"
)

// State is one row of the static state table: the canonical key, the accepted
// name synonyms, and the court-id prefix codes that claim a court for the state.
// Prefix membership is a syntactic test, it over-matches ids from another state
// sharing a prefix and under-matches ids that break the naming convention
type State struct {
	Key      string
	Names    []string
	Prefixes []string
}

// States returns the static table. The slice is shared, callers must not mutate it
func States() []State { return stateTable }

var stateTable = []State{
	{Key: "alabama", Names: []string{"al"}, Prefixes: []string{"ala", "alm", "aln", "als"}},
	{Key: "alaska", Names: []string{"ak"}, Prefixes: []string{"alaska", "akd", "akb"}},
	{Key: "arizona", Names: []string{"az", "ariz"}, Prefixes: []string{"ariz", "azd", "azb"}},
	{Key: "arkansas", Names: []string{"ar", "ark"}, Prefixes: []string{"ark", "are", "arw"}},
	{Key: "california", Names: []string{"ca", "cal", "calif"}, Prefixes: []string{"ca", "cal"}},
	{Key: "colorado", Names: []string{"co", "colo"}, Prefixes: []string{"colo", "cod", "cob"}},
	{Key: "connecticut", Names: []string{"ct", "conn"}, Prefixes: []string{"conn", "ctd", "ctb"}},
	{Key: "delaware", Names: []string{"de", "del"}, Prefixes: []string{"del", "ded", "deb"}},
	{Key: "florida", Names: []string{"fl", "fla"}, Prefixes: []string{"fla", "flm", "fln", "fls"}},
	{Key: "georgia", Names: []string{"ga"}, Prefixes: []string{"ga"}},
	{Key: "hawaii", Names: []string{"hi", "haw"}, Prefixes: []string{"haw", "hid", "hib"}},
	{Key: "idaho", Names: []string{"id"}, Prefixes: []string{"idaho", "idd", "idb"}},
	{Key: "illinois", Names: []string{"il", "ill"}, Prefixes: []string{"ill", "ilc", "iln", "ils"}},
	{Key: "indiana", Names: []string{"in", "ind"}, Prefixes: []string{"ind", "inn", "ins"}},
	{Key: "iowa", Names: []string{"ia"}, Prefixes: []string{"iowa", "ian", "ias"}},
	{Key: "kansas", Names: []string{"ks", "kan"}, Prefixes: []string{"kan", "ksd", "ksb"}},
	{Key: "kentucky", Names: []string{"ky"}, Prefixes: []string{"ky"}},
	{Key: "louisiana", Names: []string{"la"}, Prefixes: []string{"la"}},
	{Key: "maine", Names: []string{"me"}, Prefixes: []string{"me"}},
	{Key: "maryland", Names: []string{"md"}, Prefixes: []string{"md"}},
	{Key: "massachusetts", Names: []string{"ma", "mass"}, Prefixes: []string{"mass", "mad", "mab"}},
	{Key: "michigan", Names: []string{"mi", "mich"}, Prefixes: []string{"mich", "mie", "miw"}},
	{Key: "minnesota", Names: []string{"mn", "minn"}, Prefixes: []string{"minn", "mnd", "mnb"}},
	{Key: "mississippi", Names: []string{"ms", "miss"}, Prefixes: []string{"miss", "msn", "mss"}},
	{Key: "missouri", Names: []string{"mo"}, Prefixes: []string{"mo"}},
	{Key: "montana", Names: []string{"mt", "mont"}, Prefixes: []string{"mont", "mtd", "mtb"}},
	{Key: "nebraska", Names: []string{"ne", "neb"}, Prefixes: []string{"neb", "ned"}},
	{Key: "nevada", Names: []string{"nv", "nev"}, Prefixes: []string{"nev", "nvd", "nvb"}},
	{Key: "new-hampshire", Names: []string{"nh"}, Prefixes: []string{"nh"}},
	{Key: "new-jersey", Names: []string{"nj"}, Prefixes: []string{"nj"}},
	{Key: "new-mexico", Names: []string{"nm"}, Prefixes: []string{"nm"}},
	{Key: "new-york", Names: []string{"ny"}, Prefixes: []string{"ny"}},
	{Key: "north-carolina", Names: []string{"nc"}, Prefixes: []string{"nc"}},
	{Key: "north-dakota", Names: []string{"nd"}, Prefixes: []string{"nd"}},
	{Key: "ohio", Names: []string{"oh"}, Prefixes: []string{"ohio", "ohn", "ohs"}},
	{Key: "oklahoma", Names: []string{"ok", "okla"}, Prefixes: []string{"okla", "oke", "okn", "okw"}},
	{Key: "oregon", Names: []string{"or", "ore"}, Prefixes: []string{"or"}},
	{Key: "pennsylvania", Names: []string{"pa", "penn"}, Prefixes: []string{"pa"}},
	{Key: "rhode-island", Names: []string{"ri"}, Prefixes: []string{"ri"}},
	{Key: "south-carolina", Names: []string{"sc"}, Prefixes: []string{"sc"}},
	{Key: "south-dakota", Names: []string{"sd"}, Prefixes: []string{"sd"}},
	{Key: "tennessee", Names: []string{"tn", "tenn"}, Prefixes: []string{"tenn", "tne", "tnm", "tnw"}},
	{Key: "texas", Names: []string{"tx", "tex"}, Prefixes: []string{"tex", "txe", "txn", "txs", "txw"}},
	{Key: "utah", Names: []string{"ut"}, Prefixes: []string{"utah", "utd", "utb"}},
	{Key: "vermont", Names: []string{"vt"}, Prefixes: []string{"vt"}},
	{Key: "virginia", Names: []string{"va"}, Prefixes: []string{"va"}},
	{Key: "washington", Names: []string{"wa", "wash"}, Prefixes: []string{"wash", "wae", "waw"}},
	{Key: "west-virginia", Names: []string{"wv", "wva"}, Prefixes: []string{"wva", "wvn", "wvs"}},
	{Key: "wisconsin", Names: []string{"wi", "wis", "wisc"}, Prefixes: []string{"wis", "wie", "wiw"}},
	{Key: "wyoming", Names: []string{"wy", "wyo"}, Prefixes: []string{"wyo", "wyd", "wyb"}},
}

// stateLookup maps every accepted spelling, hyphenated or collapsed, to the key
var stateLookup = sync.OnceValue(func() map[string]string {
	m := make(map[string]string, len(stateTable)*4)
	for _, st := range stateTable {
		m[st.Key] = st.Key
		m[strings.ReplaceAll(st.Key, "-", "")] = st.Key
		m[strings.ReplaceAll(st.Key, "-", " ")] = st.Key
		for _, n := range st.Names {
			m[n] = st.Key
		}
	}
	return m
})

// StateKey resolves a lower-cased token to a canonical state key.
// Accepts the key itself, the no-hyphen and spaced variants, and synonyms
func StateKey(token string) (string, bool) {
	k, ok := stateLookup()[strings.TrimSpace(token)]
	return k, ok
}
