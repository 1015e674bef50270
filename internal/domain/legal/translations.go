package legal

// Domain names in the supported UI languages, keyed by language then domain.
var domainNames = map[string]map[string]string{
	"hi": {
		"employment": "रोजगार",
		"property":   "संपत्ति",
		"consumer":   "उपभोक्ता",
		"family":     "परिवार",
		"traffic":    "यातायात",
		"criminal":   "आपराधिक",
	},
	"ta": {
		"employment": "வேலைவாய்ப்பு",
		"property":   "சொத்து",
		"consumer":   "நுகர்வோர்",
		"family":     "குடும்பம்",
		"traffic":    "போக்குவரத்து",
		"criminal":   "குற்றவியல்",
	},
}

// LocalizedDomainName returns the domain name in lang, or the key itself when
// there is no translation.
func LocalizedDomainName(lang, domainKey string) string {
	if names, ok := domainNames[lang]; ok {
		if n, ok := names[domainKey]; ok {
			return n
		}
	}
	return domainKey
}
