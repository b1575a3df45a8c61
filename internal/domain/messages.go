package domain

// Affirmation lists shown by the notification dispatcher. Selection is
// uniform over the list for the triggering event type.

// CreatedMessages are shown when a new star is lifted into the sky.
var CreatedMessages = []string{
	"Your new resolution has risen as a star.",
	"This small star will quietly watch over your night.",
	"You planted a new light in the universe. Starting is half the battle.",
	"The heart that begins something is the most beautiful of all.",
	"Today's small effort will become tomorrow's shining galaxy.",
}

// CompletedMessages are shown when a star is lit.
var CompletedMessages = []string{
	"You worked hard today. Your universe just got a little brighter.",
	"May the starlight you kindled comfort you at the end of a tiring day.",
	"Your diligence left a beautiful trail across the night sky.",
	"It's okay to rest a while. Your stars will keep shining right here.",
	"The light you made today will never fade. Have a peaceful night.",
}
