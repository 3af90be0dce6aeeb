package dto

// CreateGameRequest: payload for adding a game to the caller's library
type CreateGameRequest struct {
	Title       string   `json:"title" binding:"required"`
	Genres      []string `json:"genres"`
	Platforms   []string `json:"platforms"`
	Year        int      `json:"year" binding:"required"`
	Developer   string   `json:"developer" binding:"required"`
	CoverURL    string   `json:"coverUrl"`
	Description string   `json:"description"`
	Status      string   `json:"status"`
	HoursPlayed *float64 `json:"hoursPlayed"`
	Note        string   `json:"note"`
	Rating      *float64 `json:"rating"`
}

// UpdateGameRequest: partial update; nil fields are left untouched
type UpdateGameRequest struct {
	Title       *string   `json:"title"`
	Genres      *[]string `json:"genres"`
	Platforms   *[]string `json:"platforms"`
	Year        *int      `json:"year"`
	Developer   *string   `json:"developer"`
	CoverURL    *string   `json:"coverUrl"`
	Description *string   `json:"description"`
	Status      *string   `json:"status"`
	HoursPlayed *float64  `json:"hoursPlayed"`
	Note        *string   `json:"note"`
	Rating      *float64  `json:"rating"`
}

// GameFilterQuery: optional equality filters combined with AND
type GameFilterQuery struct {
	Genre     string `form:"genre"`
	Platform  string `form:"platform"`
	Completed string `form:"completed"`
}
