package model

type CreateSequenceRequest struct {
	Notes []RawNote `json:"notes"`
}

type SequenceResponse struct {
	Id    string `json:"id"`
	Notes []Note `json:"notes"`
}

type SequenceListResponse struct {
	Ids []string `json:"ids"`
}

type ActiveResponse struct {
	Time  float64 `json:"time"`
	Notes []Note  `json:"notes"`
}

type RollFrame struct {
	Time  float64 `json:"time"`
	Notes []Note  `json:"notes"`
}

type RollResponse struct {
	Step   float64     `json:"step"`
	Frames []RollFrame `json:"frames"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
