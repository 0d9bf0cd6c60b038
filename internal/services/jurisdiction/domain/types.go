// Package domain defines the types and interfaces for the jurisdiction service
package domain

// Resolution is the outcome of resolving a jurisdiction token.
// All set with no CourtIDs means "no filter, search every court", it is the
// one case where an empty id list is success rather than failure
type Resolution struct {
	CourtIDs []string
	All      bool
}

// None reports whether the resolution carries neither ids nor the all sentinel
func (r Resolution) None() bool { return !r.All && len(r.CourtIDs) == 0 }
