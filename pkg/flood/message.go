package flood

import (
	"log/syslog"
	"strings"

	"github.com/arthur-debert/sysknife/pkg/sample"
)

// Priorities are the severities messages are drawn from. DEBUG is left out.
var Priorities = []syslog.Priority{
	syslog.LOG_EMERG, syslog.LOG_ALERT, syslog.LOG_CRIT, syslog.LOG_ERR,
	syslog.LOG_WARNING, syslog.LOG_NOTICE, syslog.LOG_INFO,
}

// Facilities are the facilities messages are drawn from.
var Facilities = []syslog.Priority{
	syslog.LOG_AUTH, syslog.LOG_AUTHPRIV, syslog.LOG_CRON, syslog.LOG_DAEMON,
	syslog.LOG_FTP, syslog.LOG_KERN, syslog.LOG_LPR, syslog.LOG_MAIL,
	syslog.LOG_NEWS, syslog.LOG_SYSLOG, syslog.LOG_USER, syslog.LOG_UUCP,
	syslog.LOG_LOCAL0, syslog.LOG_LOCAL1, syslog.LOG_LOCAL2, syslog.LOG_LOCAL3,
	syslog.LOG_LOCAL4, syslog.LOG_LOCAL5, syslog.LOG_LOCAL6, syslog.LOG_LOCAL7,
}

// MaxWords bounds the body length; bodies have 0 to MaxWords-1 words.
const MaxWords = 10

// Message is one syslog record.
type Message struct {
	Tag      string
	Facility syslog.Priority
	Priority syslog.Priority
	Body     string
}

// Generator builds random messages from a word list.
type Generator struct {
	words  []string
	source sample.Source
}

// NewGenerator panics on an empty word list; LoadWords never returns one.
func NewGenerator(words []string, src sample.Source) *Generator {
	if len(words) == 0 {
		panic("flood: empty word list")
	}
	if src == nil {
		src = sample.Default
	}
	return &Generator{words: words, source: src}
}

func (g *Generator) word() string {
	return g.words[g.source.IntN(len(g.words))]
}

func (g *Generator) Next() Message {
	n := g.source.IntN(MaxWords)
	body := make([]string, n)
	for i := range body {
		body[i] = g.word()
	}

	return Message{
		Tag:      g.word(),
		Facility: Facilities[g.source.IntN(len(Facilities))],
		Priority: Priorities[g.source.IntN(len(Priorities))],
		Body:     strings.Join(body, " "),
	}
}
