package api

type CreateTheatreHallRequest struct {
	Name       string `json:"name" validate:"required,max=100"`
	Rows       int    `json:"rows" validate:"required,min=1"`
	SeatsInRow int    `json:"seatsInRow" validate:"required,min=1"`
}

type TheatreHallResponse struct {
	Id         int    `json:"id"`
	Name       string `json:"name"`
	Rows       int    `json:"rows"`
	SeatsInRow int    `json:"seatsInRow"`
	Capacity   int    `json:"capacity"`
}

type TheatreHallListResponse struct {
	TheatreHalls []TheatreHallResponse `json:"theatreHalls"`
	Metadata     Metadata              `json:"metadata"`
}
