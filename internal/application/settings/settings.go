// Package settings defines application-level configuration data.
package settings

import (
	"strings"
	"time"
)

// Source names accepted by Settings.Source.
const (
	SourceNewsAPI = "newsapi"
	SourceRSS     = "rss"
)

// KeyMapConfig defines the configuration for keybindings.
type KeyMapConfig struct {
	Up       string `yaml:"up" kong:"help='Up key',default='k,up'"`
	Down     string `yaml:"down" kong:"help='Down key',default='j,down'"`
	UpPage   string `yaml:"up_page" kong:"help='Page Up key',default='ctrl+u,pgup'"`
	DownPage string `yaml:"down_page" kong:"help='Page Down key',default='ctrl+d,pgdown'"`
	Top      string `yaml:"top" kong:"help='Top key',default='g,home'"`
	Bottom   string `yaml:"bottom" kong:"help='Bottom key',default='G,end'"`
	Open     string `yaml:"open" kong:"help='Open article key',default='enter,l'"`
	Back     string `yaml:"back" kong:"help='Back key',default='esc,h'"`
	Browser  string `yaml:"browser" kong:"help='Open in browser key',default='o'"`
	Quit     string `yaml:"quit" kong:"help='Quit key',default='q'"`
}

// ThemeConfig defines the color theme configuration.
type ThemeConfig struct {
	Accent  string `yaml:"accent" kong:"help='Accent color',default='205'"`
	Muted   string `yaml:"muted" kong:"help='Muted text color',default='240'"`
	Row     string `yaml:"row" kong:"help='Row background color',default='237'"`
	Glamour string `yaml:"glamour" kong:"help='Glamour style for the detail view (dark/light/notty/auto)',default='dark'"`
}

// NewsAPIConfig configures the NewsAPI headline source.
type NewsAPIConfig struct {
	BaseURL  string `yaml:"base_url" kong:"help='NewsAPI base URL',default='https://newsapi.org'"`
	APIKey   string `yaml:"api_key" kong:"help='NewsAPI key (NEWSAPI_KEY overrides)'"`
	Country  string `yaml:"country" kong:"help='Country code',default='us'"`
	Category string `yaml:"category" kong:"help='Category (business/entertainment/general/health/science/sports/technology)'"`
	Query    string `yaml:"query" kong:"help='Keyword query'"`
	PageSize int    `yaml:"page_size" kong:"help='Articles per request',default='50'"`
}

// RSSConfig configures the RSS/Atom headline source.
type RSSConfig struct {
	URL string `yaml:"url" kong:"help='RSS/Atom feed URL',default='https://news.ycombinator.com/rss'"`
}

// LogConfig configures the log sink.
type LogConfig struct {
	File  string `yaml:"file" kong:"help='Log file path'"`
	Level string `yaml:"level" kong:"help='Log level (debug/info/warn/error)',default='info'"`
}

// Settings represents the application configuration.
type Settings struct {
	Source         string        `yaml:"source" kong:"help='Headline source (newsapi/rss)',default='newsapi',enum='newsapi,rss'"`
	NewsAPI        NewsAPIConfig `yaml:"newsapi" kong:"embed,prefix='newsapi.'"`
	RSS            RSSConfig     `yaml:"rss" kong:"embed,prefix='rss.'"`
	TimeoutSeconds int           `yaml:"timeout_seconds" kong:"help='Fetch timeout in seconds',default='15'"`
	KeyMap         KeyMapConfig  `yaml:"keymap" kong:"embed,prefix='keymap.'"`
	Theme          ThemeConfig   `yaml:"theme" kong:"embed,prefix='theme.'"`
	Log            LogConfig     `yaml:"log" kong:"embed,prefix='log.'"`
	HistoryFile    string        `yaml:"history_file" kong:"help='Read history database path'"`
}

// Timeout returns the fetch timeout, or zero for none.
func (s Settings) Timeout() time.Duration {
	if s.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(s.TimeoutSeconds) * time.Second
}

// SourceLabel describes the active source for the header line.
func (s Settings) SourceLabel() string {
	if strings.EqualFold(s.Source, SourceRSS) {
		return s.RSS.URL
	}
	parts := []string{"NewsAPI"}
	if s.NewsAPI.Country != "" {
		parts = append(parts, s.NewsAPI.Country)
	}
	if s.NewsAPI.Category != "" {
		parts = append(parts, s.NewsAPI.Category)
	}
	if s.NewsAPI.Query != "" {
		parts = append(parts, "\""+s.NewsAPI.Query+"\"")
	}
	return strings.Join(parts, " / ")
}
