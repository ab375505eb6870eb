// Package discord adapts a discordgo session to the podbot platform interfaces.
//
// A Session implements types.Platform and types.Authorizer:
//
//	session, err := discord.New(token, discord.WithPrefix("!"))
//	bot, err := podbot.NewBot(&cfg, session, session, strategy.NewBalancedShuffle())
//
// Commands are recognised when a guild message starts with the configured
// prefix or mentions the bot. Voice rosters and occupancy come from the
// discordgo state cache, which the gateway keeps current for the guild voice
// states intent; everything else goes through the REST API with the caller's
// context attached.
package discord
