package seed

import "github.com/mies/cinegoose/internal/models"

func text(s string) *string {
	return &s
}

var users = []models.User{
	{ID: 1, Name: "Lucy Honkfield", Email: "lucy@cinegoose.example"},
	{ID: 2, Name: "Gus Featherstone", Email: "gus@cinegoose.example"},
	{ID: 3, Name: "Marta Wingate", Email: "marta@cinegoose.example"},
	{ID: 4, Name: "Ollie Pondsworth", Email: "ollie@cinegoose.example"},
}

var movies = []models.Movie{
	{ID: 1, Title: "The Goosefather", Director: "Goose Coppola", ReleaseDate: "1972-03-24"},
	{ID: 2, Title: "Top Goose", Director: "Tony Scott", ReleaseDate: "1986-05-16"},
	{ID: 3, Title: "Honk Side of the Moon", Director: "Greta Gandergig", ReleaseDate: "2019-11-08"},
	{ID: 4, Title: "Gooseblade Runner", Director: "Ridley Scoot", ReleaseDate: "1982-06-25"},
	{ID: 5, Title: "Pulp Feathers", Director: "Quentin Tarangoose", ReleaseDate: "1994-10-14"},
	{ID: 6, Title: "The Silence of the Ganders", Director: "Jonathan Demme", ReleaseDate: "1991-02-14"},
}

var famousGeese = []models.FamousGoose{
	{ID: 1, Name: "Honkleone", MovieID: 1, Character: "Don Vito Honkleone", Description: text("The patriarch of the Honkleone crime family")},
	{ID: 2, Name: "Michael Honkleone", MovieID: 1, Character: "Michael Honkleone", Description: text("The reluctant heir")},
	{ID: 3, Name: "Maverick", MovieID: 2, Character: "Pete Mitchell", Description: text("Feels the need for speed")},
	{ID: 4, Name: "Goose", MovieID: 2, Character: "Nick Bradshaw"},
	{ID: 5, Name: "Luna", MovieID: 3, Character: "Commander Luna Quill", Description: text("First goose on the moon")},
	{ID: 6, Name: "Roy Gander", MovieID: 4, Character: "Roy Batty", Description: text("A replicant who has seen things")},
	{ID: 7, Name: "Jules", MovieID: 5, Character: "Jules Winnfeather"},
	{ID: 8, Name: "Dr. Lecter", MovieID: 6, Character: "Hannibal Lecter", Description: text("Prefers his fava beans without goose")},
}

var gooseQuotes = []models.GooseQuote{
	{ID: 1, GooseID: 1, Quote: "I'm gonna make him a honk he can't refuse.", Context: text("Speaking to Tom Hagen about resolving a dispute"), Timestamp: text("00:45:30")},
	{ID: 2, GooseID: 2, Quote: "Keep your friends close, but your breadcrumbs closer.", Timestamp: text("02:10:05")},
	{ID: 3, GooseID: 3, Quote: "I feel the need, the need for speed!", Context: text("Before the first flight"), Timestamp: text("00:12:40")},
	{ID: 4, GooseID: 4, Quote: "Talk to me, Goose.", Timestamp: text("00:58:12")},
	{ID: 5, GooseID: 5, Quote: "One small waddle for a goose.", Context: text("Stepping out of the lander")},
	{ID: 6, GooseID: 6, Quote: "All those moments will be lost in time, like feathers in rain.", Timestamp: text("01:46:20")},
	{ID: 7, GooseID: 7, Quote: "Say honk again. I dare you.", Context: text("In the apartment"), Timestamp: text("00:21:15")},
	{ID: 8, GooseID: 8, Quote: "Hello, Clarice. Have the ganders stopped honking?"},
}
