package request

// CreateGameRequest is the request body for creating a game. Strategies maps
// seat numbers ("1", "2") to bot strategy names; seats omitted are played
// externally.
type CreateGameRequest struct {
	Strategies map[string]string `json:"strategies,omitempty"`
}

// Placement is one tile placement within a move
type Placement struct {
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	Letter string `json:"letter"`
}

// MoveRequest is the request body for submitting a move
type MoveRequest struct {
	Seat       int         `json:"seat"`
	Placements []Placement `json:"placements,omitempty"`
	Pass       bool        `json:"pass,omitempty"`
}
