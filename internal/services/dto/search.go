package dto

// SearchCriteria - the full set of directory filters. Every field is
// optional; an unset field skips its narrowing stage entirely.
type SearchCriteria struct {
	Name        string `json:"name" form:"name"`
	SpecialtyID string `json:"specialty_id" form:"specialty_id" binding:"omitempty,uuid"`
	Gender      string `json:"gender" form:"gender"`
	ProfileType string `json:"profile_type" form:"profile_type" binding:"omitempty,oneof=basic premium"`
	Available   *bool  `json:"available" form:"available"`
}

// IsZero reports whether no filter is set, i.e. the search returns the
// whole directory.
func (c SearchCriteria) IsZero() bool {
	return c.Name == "" && c.SpecialtyID == "" && c.Gender == "" &&
		c.ProfileType == "" && c.Available == nil
}

// SearchResult - outcome of one directory search. Seq echoes the client
// sequence number so a client can tell which request produced the
// result it is looking at.
type SearchResult struct {
	Seq      uint64           `json:"seq"`
	Criteria SearchCriteria   `json:"criteria"`
	Profiles []ProfileSummary `json:"profiles"`
	Total    int              `json:"total"`
}
