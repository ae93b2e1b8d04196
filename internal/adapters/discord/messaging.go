package discord

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/bwmarrin/discordgo"
)

// Defer efímero (para trabajos >3s)
func DeferEphemeral(s *discordgo.Session, ic *discordgo.InteractionCreate) error {
	err := s.InteractionRespond(ic.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		slog.Warn("defer ephemeral", "err", err)
	}
	return err
}

func ReplyEphemeral(s *discordgo.Session, ic *discordgo.InteractionCreate, content string) {
	_, err := s.FollowupMessageCreate(ic.Interaction, true, &discordgo.WebhookParams{
		Content:         content,
		AllowedMentions: &discordgo.MessageAllowedMentions{},
	})
	if err == nil {
		return
	}
	// Fallback sólo si todavía no hay respuesta (webhook desconocido)
	var reqErr *discordgo.RESTError
	if errors.As(err, &reqErr) && reqErr.Message != nil && reqErr.Message.Code == discordgo.ErrCodeUnknownWebhook {
		_ = s.InteractionRespond(ic.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: content,
				Flags:   discordgo.MessageFlagsEphemeral,
			},
		})
		return
	}
	slog.Warn("reply ephemeral", "err", err)
}

// SendText responde a un comando de texto sin pingear a nadie.
func SendText(s *discordgo.Session, channelID, content string) {
	_, err := s.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Content:         content,
		AllowedMentions: &discordgo.MessageAllowedMentions{},
	})
	if err != nil && !isForbidden(err) {
		slog.Warn("send text", "channel", channelID, "err", err)
	}
}

// isForbidden: el bot no puede escribir en el canal. Esto se traga, no es un error del comando.
func isForbidden(err error) bool {
	var reqErr *discordgo.RESTError
	if !errors.As(err, &reqErr) {
		return false
	}
	if reqErr.Response != nil && reqErr.Response.StatusCode == http.StatusForbidden {
		return true
	}
	if reqErr.Message != nil {
		switch reqErr.Message.Code {
		case discordgo.ErrCodeMissingPermissions, discordgo.ErrCodeMissingAccess:
			return true
		}
	}
	return false
}
