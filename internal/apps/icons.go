package apps

import "strings"

const defaultIcon = "📱"

// iconTable maps well-known application names to a display glyph. Lookup
// is substring-based so "Google Chrome" picks up the "Chrome" entry.
var iconTable = []struct {
	name string
	icon string
}{
	{"Safari", "🌐"},
	{"Firefox", "🦊"},
	{"Chrome", "🌐"},
	{"Microsoft Edge", "🌐"},
	{"Edge", "🌐"},
	{"Arc", "🌍"},

	{"Terminal", "💻"},
	{"iTerm", "💻"},
	{"Warp", "🚀"},
	{"kitty", "🐱"},
	{"Ghostty", "👻"},

	{"Finder", "📁"},
	{"System Settings", "⚙️"},
	{"Activity Monitor", "📊"},
	{"App Store", "🛍️"},
	{"Font Book", "🔤"},
	{"Keychain", "🔑"},

	{"Visual Studio Code", "💻"},
	{"Xcode", "🛠️"},
	{"Cursor", "📝"},
	{"Docker", "🐳"},
	{"Postgres", "🐘"},
	{"pgAdmin", "🐘"},
	{"1Password", "🔐"},

	{"Final Cut Pro", "🎬"},
	{"iMovie", "🎥"},
	{"GarageBand", "🎸"},
	{"Numbers", "🔢"},
	{"Pages", "📄"},
	{"Keynote", "📊"},

	{"Mail", "✉️"},
	{"Messages", "💬"},
	{"Slack", "💬"},
	{"Discord", "💬"},
	{"zoom.us", "🎦"},
	{"Zoom", "🎦"},
	{"FaceTime", "📹"},
	{"Notion", "📝"},

	{"Music", "🎵"},
	{"Spotify", "🎵"},
	{"Photos", "🖼️"},
	{"Preview", "👁️"},
	{"Books", "📚"},

	{"Calendar", "📅"},
	{"Notes", "📝"},
	{"Calculator", "🧮"},
	{"Maps", "🗺️"},
	{"Reminders", "📋"},
	{"TextEdit", "📄"},

	{"VPN", "🔒"},
}

// IconFor returns the display glyph for an application name.
func IconFor(name string) string {
	for _, entry := range iconTable {
		if strings.Contains(name, entry.name) {
			return entry.icon
		}
	}
	return defaultIcon
}
