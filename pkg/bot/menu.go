package bot

import (
	"context"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"wahalabot/pkg/roast"
	"wahalabot/pkg/session"
)

const (
	welcomePrompt   = "Oya Welcome! 🔥 Pick ya gender make we start wahala:"
	levelPrompt     = "Oya! Pick your roast level, make wahala start:"
	readyPrompt     = "Oya send your message. Make I disgrace you small. 😂🔥"
	noSessionPrompt = "Abeg, start with /start first!"
)

// SlashCommands defines all available slash commands
var SlashCommands = []*discordgo.ApplicationCommand{
	{
		Name:        "start",
		Description: "Start the roast menu: pick a gender, pick a level, then send your message",
	},
}

// InteractionCreate is the discordgo interaction hook.
func (h *Handler) InteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	h.HandleInteraction(&DiscordSession{s}, i)
}

// HandleInteraction routes slash commands and menu button presses.
func (h *Handler) HandleInteraction(s Sender, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		if i.ApplicationCommandData().Name == "start" {
			h.handleStart(s, i)
		}
	case discordgo.InteractionMessageComponent:
		h.handleMenuSelection(s, i)
	}
}

// handleStart opens (or reopens) the selection flow. Starting always resets
// the menu progress: the session is recreated empty.
func (h *Handler) handleStart(s Sender, i *discordgo.InteractionCreate) {
	userID, err := userIDFromInteraction(i)
	if err != nil {
		log.Printf("Error handling /start: %v", err)
		return
	}

	if err := h.sessions.Put(context.Background(), userID, &session.Session{}); err != nil {
		log.Printf("Error creating session for user %s: %v", userID, err)
		h.respondMessage(s, i, roast.DispatchUserMessage)
		return
	}

	h.respond(s, i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content:    welcomePrompt,
			Components: []discordgo.MessageComponent{genderMenu()},
		},
	})
}

func (h *Handler) handleMenuSelection(s Sender, i *discordgo.InteractionCreate) {
	userID, err := userIDFromInteraction(i)
	if err != nil {
		log.Printf("Error handling menu selection: %v", err)
		return
	}

	ctx := context.Background()
	customID := i.MessageComponentData().CustomID

	switch {
	case strings.HasPrefix(customID, "gender_"):
		gender := roast.Gender(strings.TrimPrefix(customID, "gender_"))
		if _, ok := roast.FlavorsFor(gender); !ok {
			log.Printf("Unknown gender selection: %s", customID)
			return
		}

		// Picking a gender restarts the flow from here: any previously
		// stored level is discarded.
		if err := h.sessions.Put(ctx, userID, &session.Session{Gender: gender}); err != nil {
			log.Printf("Error storing gender for user %s: %v", userID, err)
			h.respondMessage(s, i, roast.DispatchUserMessage)
			return
		}

		h.respond(s, i, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseUpdateMessage,
			Data: &discordgo.InteractionResponseData{
				Content:    levelPrompt,
				Components: []discordgo.MessageComponent{levelMenu()},
			},
		})

	case strings.HasPrefix(customID, "level_"):
		level := roast.Level(strings.TrimPrefix(customID, "level_"))
		if _, ok := roast.FragmentForLevel(level); !ok {
			log.Printf("Unknown level selection: %s", customID)
			return
		}

		sess, err := h.sessions.Get(ctx, userID)
		if err != nil {
			log.Printf("Error loading session for user %s: %v", userID, err)
			h.respondMessage(s, i, roast.DispatchUserMessage)
			return
		}
		if sess == nil || sess.Gender == "" {
			h.respondMessage(s, i, noSessionPrompt)
			return
		}

		sess.Level = level
		if err := h.sessions.Put(ctx, userID, sess); err != nil {
			log.Printf("Error storing level for user %s: %v", userID, err)
			h.respondMessage(s, i, roast.DispatchUserMessage)
			return
		}

		h.respond(s, i, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseUpdateMessage,
			Data: &discordgo.InteractionResponseData{
				Content:    readyPrompt,
				Components: []discordgo.MessageComponent{},
			},
		})

	default:
		log.Printf("Unknown component interaction: %s", customID)
	}
}

func (h *Handler) respond(s Sender, i *discordgo.InteractionCreate, resp *discordgo.InteractionResponse) {
	if err := s.InteractionRespond(i.Interaction, resp); err != nil {
		log.Printf("Error responding to interaction: %v", err)
	}
}

func (h *Handler) respondMessage(s Sender, i *discordgo.InteractionCreate, content string) {
	h.respond(s, i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
		},
	})
}

func genderMenu() discordgo.MessageComponent {
	return discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.Button{Label: "👨 Male", Style: discordgo.PrimaryButton, CustomID: "gender_male"},
			discordgo.Button{Label: "👩 Female", Style: discordgo.PrimaryButton, CustomID: "gender_female"},
		},
	}
}

func levelMenu() discordgo.MessageComponent {
	return discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.Button{Label: "🔥 Mild", Style: discordgo.SecondaryButton, CustomID: "level_mild"},
			discordgo.Button{Label: "😈 Medium", Style: discordgo.PrimaryButton, CustomID: "level_medium"},
			discordgo.Button{Label: "💀 Savage", Style: discordgo.DangerButton, CustomID: "level_savage"},
		},
	}
}

// RegisterSlashCommands registers all slash commands with Discord
func RegisterSlashCommands(s *discordgo.Session, guildID string) ([]*discordgo.ApplicationCommand, error) {
	log.Println("Registering slash commands...")

	registeredCommands := make([]*discordgo.ApplicationCommand, len(SlashCommands))

	for i, cmd := range SlashCommands {
		// Register globally (guildID = "") or for a specific guild
		registeredCmd, err := s.ApplicationCommandCreate(s.State.User.ID, guildID, cmd)
		if err != nil {
			log.Printf("Cannot create '%s' command: %v", cmd.Name, err)
			return nil, err
		}
		registeredCommands[i] = registeredCmd
		log.Printf("Registered command: %s", cmd.Name)
	}

	return registeredCommands, nil
}

// UnregisterSlashCommands removes all registered slash commands
func UnregisterSlashCommands(s *discordgo.Session, guildID string, commands []*discordgo.ApplicationCommand) error {
	log.Println("Unregistering slash commands...")

	for _, cmd := range commands {
		err := s.ApplicationCommandDelete(s.State.User.ID, guildID, cmd.ID)
		if err != nil {
			log.Printf("Cannot delete '%s' command: %v", cmd.Name, err)
			return err
		}
		log.Printf("Unregistered command: %s", cmd.Name)
	}

	return nil
}
