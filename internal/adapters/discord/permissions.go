package discord

import (
	"fmt"
	"strings"
	"sync"

	"github.com/bwmarrin/discordgo"
)

// Owners: quiénes cuentan como dueños del bot (owner de la app, su team y los extra de config).
type Owners struct {
	mu  sync.RWMutex
	ids map[string]struct{}
}

func NewOwners(extra ...string) *Owners {
	o := &Owners{ids: map[string]struct{}{}}
	o.Add(extra...)
	return o
}

func (o *Owners) Add(ids ...string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			o.ids[id] = struct{}{}
		}
	}
}

// LoadApplication suma el owner y los miembros del team de la aplicación.
func (o *Owners) LoadApplication(s *discordgo.Session) error {
	app, err := s.Application("@me")
	if err != nil {
		return fmt.Errorf("fetch application: %w", err)
	}
	o.AddApplication(app)
	return nil
}

func (o *Owners) AddApplication(app *discordgo.Application) {
	if app == nil {
		return
	}
	if app.Owner != nil {
		o.Add(app.Owner.ID)
	}
	if app.Team != nil {
		for _, m := range app.Team.Members {
			if m != nil && m.User != nil {
				o.Add(m.User.ID)
			}
		}
	}
}

func (o *Owners) IsOwner(userID string) bool {
	o.mu.RLock()
	defer o.mu.RUnlock()
	_, ok := o.ids[userID]
	return ok
}
