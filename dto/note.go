package dto

type CreateNoteRequest struct {
	Text string   `json:"text"`
	Tags []string `json:"tags"`
}

// UpdateNoteRequest distinguishes an absent field from an empty one.
// A nil Tags leaves the note's tag set unchanged; a present Tags, empty
// included, replaces it wholesale.
type UpdateNoteRequest struct {
	Text *string   `json:"text"`
	Tags *[]string `json:"tags"`
}
