package export

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"path/filepath"
	"strings"

	"github.com/Masterminds/sprig"
	"github.com/google/uuid"
	"github.com/iksnae/messenger-export/internal"
	"mvdan.cc/xurls/v2"
)

//go:embed templates/conversation.html
var templateFS embed.FS

var urlPattern = xurls.Strict()

var htmlFuncs = template.FuncMap{
	"linkify":  linkify,
	"mediaURL": filepath.ToSlash,
}

// HTMLExporter renders a conversation as a standalone HTML page
type HTMLExporter struct {
	Locale  internal.Locale
	BaseDir string // directory the page is saved in; "" keeps paths as resolved
	tmpl    *template.Template
}

type htmlPage struct {
	Lang         string
	Heading      string
	Labels       labels
	Participants []string
	Messages     []htmlMessage
}

type htmlMessage struct {
	Kind    string
	Mine    bool
	Anchor  string
	Sender  string
	Date    string
	Content []string
	Caption string
	Missing string
}

// NewHTMLExporter parses the embedded page template
func NewHTMLExporter(locale internal.Locale) (*HTMLExporter, error) {
	if err := locale.Validate(); err != nil {
		return nil, err
	}

	t := template.New("conversation.html")
	t = t.Funcs(sprig.FuncMap())
	t = t.Funcs(htmlFuncs)
	t, err := t.ParseFS(templateFS, "templates/conversation.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML template: %w", err)
	}

	return &HTMLExporter{Locale: locale, tmpl: t}, nil
}

// Export writes the page for conv to w
func (e *HTMLExporter) Export(conv *internal.Conversation, w io.Writer) error {
	if e.tmpl == nil {
		return fmt.Errorf("HTML exporter not initialized, use NewHTMLExporter")
	}

	l := labelsFor(e.Locale)
	page := htmlPage{
		Lang:         strings.ToLower(string(e.Locale)),
		Heading:      strings.TrimSpace(l.Heading + " " + conv.Title),
		Labels:       l,
		Participants: conv.Participants,
		Messages:     make([]htmlMessage, 0, len(conv.Messages)),
	}
	for _, msg := range conv.Messages {
		page.Messages = append(page.Messages, htmlMessage{
			Kind:    string(msg.ContentType),
			Mine:    msg.IsFrom(conv.Username),
			Anchor:  messageAnchor(msg),
			Sender:  msg.Sender,
			Date:    msg.Date,
			Content: mediaLinks(msg, e.BaseDir),
			Caption: msg.AdditionalText,
			Missing: l.missing(msg.ContentType),
		})
	}

	return e.tmpl.Execute(w, page)
}

// SetBaseDir makes attachment links relative to dir
func (e *HTMLExporter) SetBaseDir(dir string) {
	e.BaseDir = dir
}

// Extension returns the file extension for this format
func (e *HTMLExporter) Extension() string {
	return "html"
}

// messageAnchor derives a stable element id from sender and timestamp
func messageAnchor(msg internal.Message) string {
	key := fmt.Sprintf("%s/%d", msg.Sender, msg.Timestamp)
	return "msg-" + uuid.NewSHA1(uuid.NameSpaceURL, []byte(key)).String()
}

// linkify escapes text and turns the URLs it contains into anchors
func linkify(text string) template.HTML {
	var b strings.Builder
	last := 0
	for _, loc := range urlPattern.FindAllStringIndex(text, -1) {
		raw := text[loc[0]:loc[1]]
		if !isWebURL(raw) {
			continue
		}
		b.WriteString(escapeText(text[last:loc[0]]))
		u := template.HTMLEscapeString(raw)
		fmt.Fprintf(&b, `<a href="%s">%s</a>`, u, u)
		last = loc[1]
	}
	b.WriteString(escapeText(text[last:]))
	return template.HTML(b.String())
}

// isWebURL keeps links to schemes a browser can follow safely
func isWebURL(u string) bool {
	lower := strings.ToLower(u)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

func escapeText(s string) string {
	return strings.ReplaceAll(template.HTMLEscapeString(s), "\n", "<br>")
}
