package model

type NameRequestBody struct {
	Notes   Notes    `json:"notes"`
	Pitches []string `json:"pitches"`
}

type NameResponse struct {
	RequestId string           `json:"request_id"`
	Pitches   []string         `json:"pitches"`
	Chords    []Interpretation `json:"chords"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
