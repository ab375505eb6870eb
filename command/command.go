// Package command parses chat messages into bot commands.
package command

import (
	"strings"
)

// Canonical command names.
const (
	Distribute       = "distribute"
	DistributeServer = "distributeserver"
	Help             = "podhelp"
)

// Command describes a bot command for help output.
type Command struct {
	// Name is the canonical command name.
	Name string
	// Aliases are alternative names resolving to Name.
	Aliases []string
	// Usage is the argument synopsis.
	Usage string
	// Description is a one-paragraph explanation.
	Description string
	// AdminOnly marks commands that need the administrator capability.
	AdminOnly bool
}

var commands = []Command{
	{
		Name:        Distribute,
		Aliases:     []string{"distributepods"},
		Usage:       "<ChannelName>",
		Description: "Randomly distributes members currently in a voice channel into pods.",
		AdminOnly:   true,
	},
	{
		Name:        DistributeServer,
		Usage:       "",
		Description: "Randomly distributes every member of the server into pods. No channels are created.",
		AdminOnly:   true,
	},
	{
		Name:        Help,
		Usage:       "",
		Description: "Shows this help.",
	},
}

// Commands returns the command registry in display order.
func Commands() []Command {
	out := make([]Command, len(commands))
	copy(out, commands)

	return out
}

// Lookup resolves a name or alias to its command.
func Lookup(name string) (Command, bool) {
	for _, c := range commands {
		if c.Name == name {
			return c, true
		}
		for _, a := range c.Aliases {
			if a == name {
				return c, true
			}
		}
	}

	return Command{}, false
}

// CheckPrefixFactory creates a prefix checking function.
//
// The returned function strips the first matching prefix and reports whether
// any prefix matched.
func CheckPrefixFactory(prefixes ...string) func(string) (string, bool) {
	return func(content string) (string, bool) {
		for _, prefix := range prefixes {
			if prefix != "" && strings.HasPrefix(content, prefix) {
				return strings.TrimPrefix(content, prefix), true
			}
		}

		return "", false
	}
}

// Parse splits a prefix-stripped message into a command and its argument.
//
// The command is the first word; it must match a registered name or alias
// exactly. Help takes no argument and must be the whole message. The argument
// of every other command is the rest of the message, trimmed, so channel
// names may contain spaces.
func Parse(body string) (name, argument string, ok bool) {
	word, rest, _ := strings.Cut(body, " ")
	cmd, found := Lookup(word)
	if !found {
		return "", "", false
	}
	if cmd.Name == Help && strings.TrimSpace(rest) != "" {
		return "", "", false
	}

	return cmd.Name, strings.TrimSpace(rest), true
}

// Parser matches messages against a set of prefixes and parses commands.
type Parser struct {
	match func(string) (string, bool)
}

// NewParser returns a parser accepting any of the given prefixes.
//
// Example:
//
//	p := command.NewParser("!", "<@123> ")
//	name, arg, ok := p.Parse("!distribute Lounge")
func NewParser(prefixes ...string) *Parser {
	return &Parser{match: CheckPrefixFactory(prefixes...)}
}

// Parse parses content if it starts with one of the parser prefixes.
func (p *Parser) Parse(content string) (name, argument string, ok bool) {
	body, matched := p.match(content)
	if !matched {
		return "", "", false
	}

	return Parse(body)
}
