package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/iksnae/messenger-export/internal"
)

func renderHTML(t *testing.T, conv *internal.Conversation, locale internal.Locale) string {
	t.Helper()
	exporter, err := NewHTMLExporter(locale)
	if err != nil {
		t.Fatalf("NewHTMLExporter() error = %v", err)
	}
	var buf bytes.Buffer
	if err := exporter.Export(conv, &buf); err != nil {
		t.Fatalf("HTMLExporter.Export() error = %v", err)
	}
	return buf.String()
}

func TestHTMLExporter_Export(t *testing.T) {
	output := renderHTML(t, internal.CreateTestConversation("John Smith"), internal.LocaleEN)

	want := []string{
		`<html lang="en">`,
		"<title>Conversation with Jane Doe</title>",
		"<h1>Conversation with Jane Doe</h1>",
		"Participants: Jane Doe, John Smith",
		"Messages: 3",
		`<a href="https://example.com/page">https://example.com/page</a>`,
		`<img src="/media/photos/beach.jpg" alt="beach.jpg">`,
		`<img src="/media/photos/sunset.jpg" alt="sunset.jpg">`,
		`<video controls src="/media/videos/clip.mp4">`,
		`<p class="caption">Look at this</p>`,
		`class="message photo me"`,
		`<div class="date">On January 01 2019 at 00:00:00</div>`,
	}
	for _, w := range want {
		if !strings.Contains(output, w) {
			t.Errorf("Output should contain %q\nOutput: %s", w, output)
		}
	}

	if strings.Contains(output, `class="message text me"`) {
		t.Error("messages from other participants should not carry the me class")
	}
}

func TestHTMLExporter_French(t *testing.T) {
	output := renderHTML(t, internal.CreateTestConversation(""), internal.LocaleFR)

	for _, w := range []string{`<html lang="fr">`, "<h1>Conversation avec Jane Doe</h1>"} {
		if !strings.Contains(output, w) {
			t.Errorf("Output should contain %q", w)
		}
	}
	if strings.Contains(output, " me\"") {
		t.Error("no message should carry the me class without a username")
	}
}

func TestHTMLExporter_EscapesText(t *testing.T) {
	conv := internal.CreateTestConversationWithMessages("<b>Title</b>", []internal.Message{
		{
			Sender:      "Eve <script>",
			ContentType: internal.ContentText,
			Content:     []string{`<script>alert("x")</script> & more`},
			Date:        "On January 01 2019 at 00:00:00",
		},
	})

	output := renderHTML(t, conv, internal.LocaleEN)

	if strings.Contains(output, "<script>") {
		t.Errorf("Output should not contain raw script tags\nOutput: %s", output)
	}
	for _, w := range []string{"&lt;script&gt;alert(&#34;x&#34;)&lt;/script&gt; &amp; more", "&lt;b&gt;Title&lt;/b&gt;"} {
		if !strings.Contains(output, w) {
			t.Errorf("Output should contain %q\nOutput: %s", w, output)
		}
	}
}

func TestHTMLExporter_MediaKinds(t *testing.T) {
	conv := internal.CreateTestConversationWithMessages("Media", []internal.Message{
		{Sender: "A", ContentType: internal.ContentAudio, Content: []string{"/m/audio/a.mp4"}},
		{Sender: "A", ContentType: internal.ContentGif, Content: []string{"/m/gifs/g.gif"}},
		{Sender: "A", ContentType: internal.ContentSticker, Content: []string{"/stickers/s.png"}, Timestamp: 1},
		{Sender: "A", ContentType: internal.ContentSticker, Content: []string{""}, Timestamp: 2},
		{Sender: "A", ContentType: internal.ContentPhoto, Content: []string{""}, Timestamp: 3},
	})

	output := renderHTML(t, conv, internal.LocaleEN)

	want := []string{
		`<audio controls src="/m/audio/a.mp4">`,
		`<img src="/m/gifs/g.gif" alt="g.gif">`,
		`<img src="/stickers/s.png" alt="s.png">`,
		`<p class="missing">Sticker unavailable</p>`,
		`<p class="missing">Attachment unavailable</p>`,
	}
	for _, w := range want {
		if !strings.Contains(output, w) {
			t.Errorf("Output should contain %q\nOutput: %s", w, output)
		}
	}
	if n := strings.Count(output, "Sticker unavailable"); n != 1 {
		t.Errorf("only the sticker should be labelled as a sticker, found %d", n)
	}
}

func TestHTMLExporter_BaseDir(t *testing.T) {
	conv := internal.CreateTestConversationWithMessages("Media", []internal.Message{
		{Sender: "A", ContentType: internal.ContentPhoto, Content: []string{"data/photos/a.jpg"}, Timestamp: 1},
		{Sender: "A", ContentType: internal.ContentVideo, Content: []string{"/abs/videos/v.mp4"}, Timestamp: 2},
		{Sender: "A", ContentType: internal.ContentText, Content: []string{"data/photos/a.jpg is here"}, Timestamp: 3},
	})

	exporter, err := NewHTMLExporter(internal.LocaleEN)
	if err != nil {
		t.Fatalf("NewHTMLExporter() error = %v", err)
	}
	exporter.SetBaseDir("out")

	var buf bytes.Buffer
	if err := exporter.Export(conv, &buf); err != nil {
		t.Fatalf("HTMLExporter.Export() error = %v", err)
	}
	output := buf.String()

	want := []string{
		`<img src="../data/photos/a.jpg" alt="a.jpg">`,
		`<video controls src="/abs/videos/v.mp4">`,
		"data/photos/a.jpg is here",
	}
	for _, w := range want {
		if !strings.Contains(output, w) {
			t.Errorf("Output should contain %q\nOutput: %s", w, output)
		}
	}
	if conv.Messages[0].Content[0] != "data/photos/a.jpg" {
		t.Error("Export should not modify the conversation")
	}
}

func TestHTMLExporter_Anchors(t *testing.T) {
	msg := internal.Message{Sender: "Jane Doe", Timestamp: 1546300800000}
	a, b := messageAnchor(msg), messageAnchor(msg)
	if a != b {
		t.Errorf("messageAnchor() not stable: %q != %q", a, b)
	}
	if !strings.HasPrefix(a, "msg-") {
		t.Errorf("messageAnchor() = %q, want msg- prefix", a)
	}

	other := messageAnchor(internal.Message{Sender: "Jane Doe", Timestamp: 1546300800001})
	if other == a {
		t.Error("different timestamps should give different anchors")
	}

	output := renderHTML(t, internal.CreateTestConversationWithMessages("x", []internal.Message{msg}), internal.LocaleEN)
	if !strings.Contains(output, `id="`+a+`"`) {
		t.Errorf("Output should contain anchor %q", a)
	}
}

func TestLinkify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text", "hello", "hello"},
		{"escapes", "a < b", "a &lt; b"},
		{"link", "go to https://example.com now", `go to <a href="https://example.com">https://example.com</a> now`},
		{"newline", "one\ntwo", "one<br>two"},
		{"non web scheme stays text", "javascript://x", "javascript://x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(linkify(tt.in)); got != tt.want {
				t.Errorf("linkify(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestHTMLExporter_Uninitialized(t *testing.T) {
	exporter := &HTMLExporter{}
	var buf bytes.Buffer
	if err := exporter.Export(internal.CreateTestConversation(""), &buf); err == nil {
		t.Error("Export() on a zero HTMLExporter should fail")
	}
}
