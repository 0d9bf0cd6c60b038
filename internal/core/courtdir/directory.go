package courtdir

import (
	"strings"
	"time"
)

// Directory is an immutable-once-built snapshot of the court universe.
// All preserves acquisition order; the category slices are stable filters of
// All and partition it; StateIndex maps state keys to court ids claimed by
// the state's prefix codes. Replaced wholesale on cache refresh, never
// mutated in place
type Directory struct {
	All        []Record
	ByCategory map[Category][]Record
	StateIndex map[string][]string
	BuiltAt    time.Time

	ids map[string]struct{}
}

// Build runs the categorizer over a raw record sequence: one pass to bucket
// every record into exactly one category slice, one pass to build the state
// index from the static prefix table
func Build(records []Record) *Directory {
	d := &Directory{
		All:        records,
		ByCategory: make(map[Category][]Record, 5),
		StateIndex: make(map[string][]string, len(stateTable)),
		BuiltAt:    time.Now().UTC(),
		ids:        make(map[string]struct{}, len(records)),
	}

	for i := range records {
		r := &records[i]
		cat := r.Category
		switch cat {
		case CategoryFederal, CategoryState, CategoryFederalBankruptcy, CategoryMilitary, CategorySpecial:
		default:
			cat = CategorySpecial
		}
		d.ByCategory[cat] = append(d.ByCategory[cat], *r)
		d.ids[r.ID] = struct{}{}
	}

	for _, st := range stateTable {
		var ids []string
		for i := range records {
			id := strings.ToLower(records[i].ID)
			for _, code := range st.Prefixes {
				if strings.HasPrefix(id, code) {
					ids = append(ids, records[i].ID)
					break
				}
			}
		}
		if len(ids) > 0 {
			d.StateIndex[st.Key] = ids
		}
	}

	return d
}

// HasCourt reports whether id exactly matches a known court id
func (d *Directory) HasCourt(id string) bool {
	_, ok := d.ids[id]
	return ok
}

// CategoryIDs returns the ids of one category subsequence in insertion order
func (d *Directory) CategoryIDs(c Category) []string {
	recs := d.ByCategory[c]
	out := make([]string, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.ID)
	}
	return out
}

// Len returns the total number of records
func (d *Directory) Len() int { return len(d.All) }
