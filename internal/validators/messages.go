package validators

// messages overrides the generic wording for specific struct fields.
// Keys are "<StructNamespace>:<tag>".
var messages = map[string]string{
	"User.Username:required":     "Please provide a username",
	"User.Username:max":          "Username cannot be more than 20 characters",
	"User.PasswordHash:required": "Please provide a password",

	"Appointment.Name:required": "Please provide a name",
	"Appointment.Name:max":      "Name cannot be more than 60 characters",
	"Appointment.Date:required": "Please provide a date for the appointment",
	"Appointment.Status:oneof":  "Status must be one of: pending, approved, rejected",

	"Game.Name:required": "Please provide a game name",
	"Game.Key:required":  "Please provide a unique key for the game",

	"HallOfShameEntry.Game.Key:required":    "Please select a game",
	"HallOfShameEntry.Game.Name:required":   "Please select a game",
	"HallOfShameEntry.Winner.Name:required": "Please provide the winner's name",
	"HallOfShameEntry.Loser.Name:required":  "Please provide the loser's name",
	"HallOfShameEntry.Result.Type:oneof":    "Result type must be one of: Score, KO, Submission, Pinfall, TimeOut, Other",
	"HallOfShameEntry.Roast:max":            "Roast cannot be more than 280 characters",
}
