package identity

// Organization as embedded in a membership
type Organization struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Membership of a user in an organization
type Membership struct {
	ID           string       `json:"id"`
	Role         string       `json:"role"`
	Organization Organization `json:"organization"`
}

// MembershipList is the paginated membership envelope
type MembershipList struct {
	Data       []Membership `json:"data"`
	TotalCount int          `json:"total_count"`
}
