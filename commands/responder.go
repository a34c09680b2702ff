package commands

import (
	"github.com/bwmarrin/discordgo"
)

// Responder is the one capability surface game and economy handlers
// need from their entry point, implemented once for prefix messages and
// once for slash interactions. Handlers never care which one they got.
type Responder interface {
	User() *discordgo.User
	ChannelID() string

	// Reply answers immediately. ReplyEmbed returns the sent message so
	// callers can edit it later.
	Reply(content string) error
	ReplyEmbed(embed *discordgo.MessageEmbed, components []discordgo.MessageComponent) (*discordgo.Message, error)

	// Defer acknowledges the invocation before slow work.
	Defer() error

	// FollowUp variants are used after Defer. FollowUpError is
	// ephemeral where the entry point supports it.
	FollowUp(content string) (*discordgo.Message, error)
	FollowUpEmbed(embed *discordgo.MessageEmbed) (*discordgo.Message, error)
	FollowUpError(content string) error

	// Edit rewrites a message previously sent through this responder.
	Edit(messageID, content string) error
}

// MessageResponder adapts a prefix-command invocation.
type MessageResponder struct {
	S *discordgo.Session
	M *discordgo.MessageCreate
}

func (r *MessageResponder) User() *discordgo.User { return r.M.Author }

func (r *MessageResponder) ChannelID() string { return r.M.ChannelID }

func (r *MessageResponder) Reply(content string) error {
	_, err := r.S.ChannelMessageSend(r.M.ChannelID, content)
	return err
}

func (r *MessageResponder) ReplyEmbed(embed *discordgo.MessageEmbed, components []discordgo.MessageComponent) (*discordgo.Message, error) {
	return r.S.ChannelMessageSendComplex(r.M.ChannelID, &discordgo.MessageSend{
		Embed:      embed,
		Components: components,
	})
}

func (r *MessageResponder) Defer() error {
	return r.S.ChannelTyping(r.M.ChannelID)
}

func (r *MessageResponder) FollowUp(content string) (*discordgo.Message, error) {
	return r.S.ChannelMessageSend(r.M.ChannelID, content)
}

func (r *MessageResponder) FollowUpEmbed(embed *discordgo.MessageEmbed) (*discordgo.Message, error) {
	return r.S.ChannelMessageSendEmbed(r.M.ChannelID, embed)
}

func (r *MessageResponder) FollowUpError(content string) error {
	_, err := r.S.ChannelMessageSend(r.M.ChannelID, content)
	return err
}

func (r *MessageResponder) Edit(messageID, content string) error {
	_, err := r.S.ChannelMessageEdit(r.M.ChannelID, messageID, content)
	return err
}

// InteractionResponder adapts a slash-command invocation.
type InteractionResponder struct {
	S *discordgo.Session
	I *discordgo.InteractionCreate
}

func (r *InteractionResponder) User() *discordgo.User {
	if r.I.Member != nil {
		return r.I.Member.User
	}
	return r.I.User
}

func (r *InteractionResponder) ChannelID() string { return r.I.ChannelID }

func (r *InteractionResponder) Reply(content string) error {
	return r.S.InteractionRespond(r.I.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Content: content},
	})
}

func (r *InteractionResponder) ReplyEmbed(embed *discordgo.MessageEmbed, components []discordgo.MessageComponent) (*discordgo.Message, error) {
	err := r.S.InteractionRespond(r.I.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: components,
		},
	})
	if err != nil {
		return nil, err
	}
	return r.S.InteractionResponse(r.I.Interaction)
}

func (r *InteractionResponder) Defer() error {
	return r.S.InteractionRespond(r.I.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
}

func (r *InteractionResponder) FollowUp(content string) (*discordgo.Message, error) {
	return r.S.FollowupMessageCreate(r.I.Interaction, true, &discordgo.WebhookParams{
		Content: content,
	})
}

func (r *InteractionResponder) FollowUpEmbed(embed *discordgo.MessageEmbed) (*discordgo.Message, error) {
	return r.S.FollowupMessageCreate(r.I.Interaction, true, &discordgo.WebhookParams{
		Embeds: []*discordgo.MessageEmbed{embed},
	})
}

func (r *InteractionResponder) FollowUpError(content string) error {
	_, err := r.S.FollowupMessageCreate(r.I.Interaction, true, &discordgo.WebhookParams{
		Content: content,
		Flags:   discordgo.MessageFlagsEphemeral,
	})
	return err
}

func (r *InteractionResponder) Edit(messageID, content string) error {
	_, err := r.S.FollowupMessageEdit(r.I.Interaction, messageID, &discordgo.WebhookEdit{
		Content: &content,
	})
	return err
}
