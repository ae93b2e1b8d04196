package allowlist

import (
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/tidwall/gjson"

	"github.com/jose-valero/miku-logger/internal/domain"
)

type Option func(*Cache)

// WithStat reemplaza os.Stat (la fuente del mtime que usamos como token).
func WithStat(fn func(string) (fs.FileInfo, error)) Option {
	return func(c *Cache) { c.stat = fn }
}

func WithReadFile(fn func(string) ([]byte, error)) Option {
	return func(c *Cache) { c.readFile = fn }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Cache) { c.log = l }
}

// Cache guarda el set de guilds permitidos, memoizado por el mtime del archivo.
// Si el archivo no está, nadie pasa.
type Cache struct {
	path     string
	stat     func(string) (fs.FileInfo, error)
	readFile func(string) ([]byte, error)
	log      *slog.Logger

	mu     sync.Mutex
	ids    map[domain.GuildID]struct{}
	mtime  time.Time
	loaded bool // hay un set parseado para mtime
}

func New(path string, opts ...Option) *Cache {
	c := &Cache{
		path:     path,
		stat:     os.Stat,
		readFile: os.ReadFile,
		log:      slog.Default(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Cache) IsAllowed(guildID domain.GuildID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.load(false)
	_, ok := c.ids[guildID]
	return ok
}

// Refresh fuerza releer el archivo aunque el mtime no haya cambiado.
func (c *Cache) Refresh() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.load(true)
	return len(c.ids)
}

// load asume c.mu tomado.
func (c *Cache) load(force bool) {
	info, err := c.stat(c.path)
	if err != nil {
		if !os.IsNotExist(err) {
			c.log.Warn("allowlist stat failed", "path", c.path, "err", err)
		}
		c.ids = nil
		c.mtime = time.Time{}
		c.loaded = false
		return
	}

	mtime := info.ModTime()
	if !force && c.loaded && c.mtime.Equal(mtime) {
		return
	}

	// el token se actualiza aunque el doc esté roto, así no reparseamos en cada evento
	c.mtime = mtime
	c.loaded = true

	raw, err := c.readFile(c.path)
	if err != nil {
		c.log.Warn("allowlist read failed", "path", c.path, "err", err)
		c.ids = nil
		return
	}
	ids, ok := Parse(raw)
	if !ok {
		c.log.Warn("allowlist is malformed, treating as empty", "path", c.path)
	}
	c.ids = ids
	c.log.Debug("allowlist loaded", "path", c.path, "guilds", len(ids))
}

// Parse acepta {"guild_ids": [...]} o una lista pelada. Las entradas que no son
// enteros se saltean. ok=false si el documento no tiene ninguna de las dos formas.
func Parse(raw []byte) (map[domain.GuildID]struct{}, bool) {
	ids := map[domain.GuildID]struct{}{}
	if !gjson.ValidBytes(raw) {
		return ids, false
	}

	doc := gjson.ParseBytes(raw)
	var list gjson.Result
	switch {
	case doc.IsObject():
		list = doc.Get("guild_ids")
		if !list.Exists() {
			return ids, true
		}
	case doc.IsArray():
		list = doc
	default:
		return ids, false
	}
	if !list.IsArray() {
		return ids, false
	}

	list.ForEach(func(_, item gjson.Result) bool {
		if id, ok := entryID(item); ok {
			ids[domain.GuildID(id)] = struct{}{}
		}
		return true
	})
	return ids, true
}

func entryID(item gjson.Result) (int64, bool) {
	switch item.Type {
	case gjson.Number:
		if v, err := strconv.ParseInt(item.Raw, 10, 64); err == nil {
			return v, true
		}
		// 1.0 o 1e3: nos quedamos con la parte entera
		f, err := strconv.ParseFloat(item.Raw, 64)
		if err != nil || f > 9.2e18 || f < -9.2e18 {
			return 0, false
		}
		return int64(f), true
	case gjson.String:
		v, err := strconv.ParseInt(strings.TrimSpace(item.Str), 10, 64)
		if err != nil {
			return 0, false
		}
		return v, true
	}
	return 0, false
}
