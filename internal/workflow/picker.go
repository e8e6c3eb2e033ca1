package workflow

import "cabadmin/internal/domain"

// CabPicker is the cab selection dialog shown after a successful search.
// The candidate already assigned to the booking is pinned on top and the
// others stay hidden until Expanded.
type CabPicker struct {
	Pinned   *domain.CabCandidate  `json:"pinned,omitempty"`
	Others   []domain.CabCandidate `json:"-"`
	Expanded bool                  `json:"expanded"`
	Loading  bool                  `json:"loading"`
}

// NewCabPicker builds a picker from raw search results, dropping nil entries.
func NewCabPicker(candidates []*domain.CabCandidate, currentCabRegistrationID string) CabPicker {
	var p CabPicker
	for _, c := range candidates {
		if c == nil {
			continue
		}
		if p.Pinned == nil && currentCabRegistrationID != "" && c.CabRegistrationID == currentCabRegistrationID {
			pinned := *c
			p.Pinned = &pinned
			continue
		}
		p.Others = append(p.Others, *c)
	}
	return p
}

// Visible returns the candidates currently shown.
func (p CabPicker) Visible() []domain.CabCandidate {
	if p.Pinned == nil {
		return append([]domain.CabCandidate(nil), p.Others...)
	}
	out := []domain.CabCandidate{*p.Pinned}
	if p.Expanded {
		out = append(out, p.Others...)
	}
	return out
}

// CanLoadMore reports whether hidden candidates remain.
func (p CabPicker) CanLoadMore() bool {
	return p.Pinned != nil && !p.Expanded && len(p.Others) > 0
}

// Find returns the candidate with the given registration id.
func (p CabPicker) Find(cabRegistrationID string) (domain.CabCandidate, bool) {
	if p.Pinned != nil && p.Pinned.CabRegistrationID == cabRegistrationID {
		return *p.Pinned, true
	}
	for _, c := range p.Others {
		if c.CabRegistrationID == cabRegistrationID {
			return c, true
		}
	}
	return domain.CabCandidate{}, false
}

// Len returns the number of candidates, shown or hidden.
func (p CabPicker) Len() int {
	n := len(p.Others)
	if p.Pinned != nil {
		n++
	}
	return n
}
