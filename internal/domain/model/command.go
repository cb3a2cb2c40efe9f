package model

// SlashCommand is a guild-scoped application command definition.
type SlashCommand struct {
	Name        string
	Description string
}

// DefaultCommands is the command list registered for the guild.
func DefaultCommands() []SlashCommand {
	return []SlashCommand{
		{Name: "dude", Description: "de lo mio!"},
	}
}
