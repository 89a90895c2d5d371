package export

import "github.com/iksnae/messenger-export/internal"

type labels struct {
	Heading         string
	Participants    string
	Messages        string
	StickerMissing  string
	MediaMissing    string
	MediaUnplayable string
}

var localeLabels = map[internal.Locale]labels{
	internal.LocaleEN: {
		Heading:         "Conversation with",
		Participants:    "Participants",
		Messages:        "Messages",
		StickerMissing:  "Sticker unavailable",
		MediaMissing:    "Attachment unavailable",
		MediaUnplayable: "Your browser cannot play this file",
	},
	internal.LocaleFR: {
		Heading:         "Conversation avec",
		Participants:    "Participants",
		Messages:        "Messages",
		StickerMissing:  "Autocollant indisponible",
		MediaMissing:    "Pièce jointe indisponible",
		MediaUnplayable: "Votre navigateur ne peut pas lire ce fichier",
	},
}

func labelsFor(locale internal.Locale) labels {
	if l, ok := localeLabels[locale]; ok {
		return l
	}
	return localeLabels[internal.LocaleEN]
}

// missing is the placeholder shown for an attachment that has no path
func (l labels) missing(kind internal.ContentType) string {
	if kind == internal.ContentSticker {
		return l.StickerMissing
	}
	return l.MediaMissing
}
