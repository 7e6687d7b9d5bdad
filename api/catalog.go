package api

type CreateGenreRequest struct {
	Name string `json:"name" validate:"required,max=50"`
}

type GenreResponse struct {
	Id    int      `json:"id"`
	Name  string   `json:"name"`
	Plays []string `json:"plays,omitempty"`
}

type GenreListResponse struct {
	Genres   []GenreResponse `json:"genres"`
	Metadata Metadata        `json:"metadata"`
}

type CreateActorRequest struct {
	FirstName string `json:"firstName" validate:"required,max=50"`
	LastName  string `json:"lastName" validate:"required,max=50"`
}

type ActorResponse struct {
	Id        int      `json:"id"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Plays     []string `json:"plays,omitempty"`
}

type ActorListResponse struct {
	Actors   []ActorResponse `json:"actors"`
	Metadata Metadata        `json:"metadata"`
}

type CreatePlayRequest struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description"`
	GenreIds    []int  `json:"genres" validate:"omitempty,dive,min=1"`
	ActorIds    []int  `json:"actors" validate:"omitempty,dive,min=1"`
}

type PlaySummary struct {
	Id          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Genres      []string `json:"genres"`
	Actors      []string `json:"actors"`
}

type PlayDetailResponse struct {
	Id          int             `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Genres      []GenreResponse `json:"genres"`
	Actors      []ActorResponse `json:"actors"`
}

type PlayListResponse struct {
	Plays    []PlaySummary `json:"plays"`
	Metadata Metadata      `json:"metadata"`
}

type GetPlaysParams struct {
	ListParams
	// Comma-separated integer id lists, e.g. "1,3,5".
	Genres *string `validate:"omitempty,idlist"`
	Actors *string `validate:"omitempty,idlist"`
}
