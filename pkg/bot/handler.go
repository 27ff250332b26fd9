package bot

import (
	"context"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"wahalabot/pkg/roast"
	"wahalabot/pkg/session"
)

// RestartPrompt is sent when free text arrives before the two-step menu is
// done. No session state changes on that path.
const RestartPrompt = "Abeg, start with /start first, no dey jump step."

// Sender abstracts the discordgo session calls the handler makes, for testing.
type Sender interface {
	ChannelMessageSendReply(channelID string, content string, reference *discordgo.MessageReference, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelTyping(channelID string, options ...discordgo.RequestOption) error
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
}

// DiscordSession adapts discordgo.Session to the Sender interface.
type DiscordSession struct {
	*discordgo.Session
}

type Handler struct {
	svc      *roast.Service
	sessions session.Store
	botID    string
}

func NewHandler(svc *roast.Service, sessions session.Store) *Handler {
	return &Handler{
		svc:      svc,
		sessions: sessions,
	}
}

// SetBotID tells the handler its own user ID so it can ignore itself.
func (h *Handler) SetBotID(id string) {
	h.botID = id
}

// MessageCreate is the discordgo message hook.
func (h *Handler) MessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	h.HandleMessage(&DiscordSession{s}, m)
}

// HandleMessage treats every free-text message from a Ready session as a
// roast request using the stored selections. Sessions never leave Ready, so
// users can keep sending messages without re-selecting.
func (h *Handler) HandleMessage(s Sender, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.ID == h.botID || m.Author.Bot {
		return
	}

	ctx := context.Background()

	sess, err := h.sessions.Get(ctx, m.Author.ID)
	if err != nil {
		log.Printf("Error loading session for user %s: %v", m.Author.ID, err)
		h.reply(s, m, roast.DispatchUserMessage)
		return
	}

	if !sess.Ready() {
		h.reply(s, m, RestartPrompt)
		return
	}

	if err := s.ChannelTyping(m.ChannelID); err != nil {
		log.Printf("Error sending typing indicator: %v", err)
	}

	reply, err := h.svc.Roast(ctx, roast.Request{
		Text:   m.Content,
		Level:  sess.Level,
		Gender: sess.Gender,
	})
	if err != nil {
		h.reply(s, m, err.Error())
		return
	}

	h.reply(s, m, reply)
}

func (h *Handler) reply(s Sender, m *discordgo.MessageCreate, content string) {
	if _, err := s.ChannelMessageSendReply(m.ChannelID, content, m.Reference()); err != nil {
		log.Printf("Error sending reply: %v", err)
	}
}

// userIDFromInteraction extracts the acting user's ID. It handles both guild
// (Member) and DM (User) contexts.
func userIDFromInteraction(i *discordgo.InteractionCreate) (string, error) {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID, nil
	}
	if i.User != nil {
		return i.User.ID, nil
	}
	return "", fmt.Errorf("could not determine user from interaction")
}
