package domain

// Locale is the closed set of languages the platform serves.
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleFR Locale = "fr"
	LocaleAR Locale = "ar"
)

// ParseLocale maps an arbitrary locale string to a supported Locale.
// Unrecognized or empty values fall back to English.
func ParseLocale(s string) Locale {
	switch Locale(s) {
	case LocaleEN, LocaleFR, LocaleAR:
		return Locale(s)
	}
	return LocaleEN
}

// IsRTL reports whether the locale is rendered right-to-left.
func (l Locale) IsRTL() bool {
	return l == LocaleAR
}
