package discord

import (
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/jose-valero/miku-logger/internal/app/service"
)

type Router struct {
	s   *discordgo.Session
	log *slog.Logger

	guildID string // scope de registro de slash commands, "" = global
	prefix  string

	owners   *Owners
	members  *service.MembershipService
	commands *service.CommandService
	limiter  *userLimiter
}

func NewRouter(
	s *discordgo.Session,
	log *slog.Logger,
	guildID string,
	prefix string,
	owners *Owners,
	members *service.MembershipService,
	commands *service.CommandService,
) *Router {
	if log == nil {
		log = slog.Default()
	}
	return &Router{
		s:        s,
		log:      log,
		guildID:  guildID,
		prefix:   prefix,
		owners:   owners,
		members:  members,
		commands: commands,
		limiter:  newUserLimiter(2 * time.Second),
	}
}

func (r *Router) Register() error {
	appID := r.s.State.User.ID
	for _, cmd := range Commands {
		if _, err := r.s.ApplicationCommandCreate(appID, r.guildID, cmd); err != nil {
			return err
		}
	}
	return nil
}

func (r *Router) Handlers() {
	r.s.AddHandler(func(s *discordgo.Session, ic *discordgo.InteractionCreate) {
		if ic.Type != discordgo.InteractionApplicationCommand {
			return
		}
		r.handleSlashCommand(s, ic)
	})
	r.s.AddHandler(r.handlePrefixCommand)
	r.s.AddHandler(r.onMemberAdd)
	r.s.AddHandler(r.onMemberRemove)
}
