// Package models defines the records stored in the cinegoose database and
// the payloads used to create them.
package models

// User is a registered user.
type User struct {
	ID        int64  `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	Email     string `db:"email" json:"email"`
	CreatedAt string `db:"created_at" json:"createdAt"`
	UpdatedAt string `db:"updated_at" json:"updatedAt"`
}

type NewUser struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

// Movie is a film featuring at least one goose.
type Movie struct {
	ID          int64  `db:"id" json:"id"`
	Title       string `db:"title" json:"title"`
	Director    string `db:"director" json:"director"`
	ReleaseDate string `db:"release_date" json:"releaseDate"`
	CreatedAt   string `db:"created_at" json:"createdAt"`
	UpdatedAt   string `db:"updated_at" json:"updatedAt"`
}

type NewMovie struct {
	Title       string `json:"title" binding:"required"`
	Director    string `json:"director" binding:"required"`
	ReleaseDate string `json:"releaseDate" binding:"required"`
}

// FamousGoose is a goose character appearing in a movie.
type FamousGoose struct {
	ID          int64   `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	MovieID     int64   `db:"movie_id" json:"movieId"`
	Character   string  `db:"character" json:"character"`
	Description *string `db:"description" json:"description"`
	CreatedAt   string  `db:"created_at" json:"createdAt"`
	UpdatedAt   string  `db:"updated_at" json:"updatedAt"`
}

type NewFamousGoose struct {
	Name        string  `json:"name" binding:"required"`
	MovieID     int64   `json:"movieId" binding:"required"`
	Character   string  `json:"character" binding:"required"`
	Description *string `json:"description"`
}

// GooseQuote is a line spoken by a famous goose. Timestamp is the position
// in the movie, such as "00:45:30".
type GooseQuote struct {
	ID        int64   `db:"id" json:"id"`
	GooseID   int64   `db:"goose_id" json:"gooseId"`
	Quote     string  `db:"quote" json:"quote"`
	Context   *string `db:"context" json:"context"`
	Timestamp *string `db:"timestamp" json:"timestamp"`
	CreatedAt string  `db:"created_at" json:"createdAt"`
	UpdatedAt string  `db:"updated_at" json:"updatedAt"`
}

type NewGooseQuote struct {
	GooseID   int64   `json:"gooseId" binding:"required"`
	Quote     string  `json:"quote" binding:"required"`
	Context   *string `json:"context"`
	Timestamp *string `json:"timestamp"`
}
