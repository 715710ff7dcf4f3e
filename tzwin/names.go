package tzwin

// windowsToIANA maps a Windows registry zone key name to its primary IANA
// zone id, for the handful of zones this adapter ships a static table for
// (the full mapping is CLDR's windowsZones.xml, which is data rather than
// logic and out of scope here).
var windowsToIANA = map[string]string{
	"Coordinated Universal Time": "UTC",
	"GMT Standard Time":          "Europe/London",
	"W. Europe Standard Time":    "Europe/Berlin",
	"Central Europe Standard Time": "Europe/Budapest",
	"Romance Standard Time":      "Europe/Paris",
	"Central European Standard Time": "Europe/Warsaw",
	"E. Europe Standard Time":    "Europe/Chisinau",
	"Russian Standard Time":      "Europe/Moscow",
	"Eastern Standard Time":      "America/New_York",
	"Central Standard Time":      "America/Chicago",
	"Mountain Standard Time":     "America/Denver",
	"Pacific Standard Time":      "America/Los_Angeles",
	"Alaskan Standard Time":      "America/Anchorage",
	"Hawaiian Standard Time":     "Pacific/Honolulu",
	"SA Eastern Standard Time":   "America/Cayenne",
	"SA Western Standard Time":   "America/La_Paz",
	"E. South America Standard Time": "America/Sao_Paulo",
	"India Standard Time":        "Asia/Kolkata",
	"China Standard Time":        "Asia/Shanghai",
	"Tokyo Standard Time":        "Asia/Tokyo",
	"Korea Standard Time":        "Asia/Seoul",
	"Singapore Standard Time":    "Asia/Singapore",
	"AUS Eastern Standard Time":  "Australia/Sydney",
	"AUS Central Standard Time":  "Australia/Darwin",
	"New Zealand Standard Time":  "Pacific/Auckland",
	"South Africa Standard Time": "Africa/Johannesburg",
	"Egypt Standard Time":        "Africa/Cairo",
	"Arabic Standard Time":       "Asia/Baghdad",
	"Arabian Standard Time":      "Asia/Dubai",
	"Turkey Standard Time":       "Europe/Istanbul",
	"UTC":                        "UTC",
	"UTC-11":                     "Etc/GMT+11",
	"UTC-02":                     "Etc/GMT+2",
	"UTC+12":                     "Etc/GMT-12",
}

// ianaToWindows is windowsToIANA inverted, built once at package init. Two
// Windows keys ("Coordinated Universal Time" and "UTC") map to "UTC"; since
// map iteration order is random, which of them "UTC" maps back to is not
// defined. Every other entry is 1:1.
var ianaToWindows = func() map[string]string {
	m := make(map[string]string, len(windowsToIANA))
	for win, iana := range windowsToIANA {
		m[iana] = win
	}
	return m
}()

// IANAFromWindowsKey resolves a Windows registry zone key name (e.g.
// "Pacific Standard Time") to its primary IANA id (e.g.
// "America/Los_Angeles"). "Coordinated Universal Time" resolves to "UTC".
func IANAFromWindowsKey(key string) (string, bool) {
	id, ok := windowsToIANA[key]
	return id, ok
}

// WindowsKeyFromIANA resolves an IANA id back to the Windows registry zone
// key name that this table maps to it, if any.
func WindowsKeyFromIANA(id string) (string, bool) {
	key, ok := ianaToWindows[id]
	return key, ok
}
