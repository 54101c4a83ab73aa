package dto

type CreateBookingRequest struct {
	GuestEmail string   `json:"guest_email" binding:"required,email"`
	GuestName  string   `json:"guest_name"`
	Club       string   `json:"club"`
	Dates      []string `json:"dates" binding:"required,min=1"`
	Players    int      `json:"players" binding:"required,gt=0"`
	Note       string   `json:"note"`
}

type RequestSlotRequest struct {
	Date    string `json:"date" binding:"required"`
	TeeTime string `json:"tee_time" binding:"required"`
	Actor   string `json:"actor" binding:"required"`
}

type ConfirmRequest struct {
	Actor string `json:"actor" binding:"required"`
}

type ReleaseRequest struct {
	Actor  string `json:"actor" binding:"required"`
	Status string `json:"status" binding:"required"`
}

type ChangeStatusRequest struct {
	Actor  string `json:"actor" binding:"required"`
	Status string `json:"status" binding:"required"`
}
