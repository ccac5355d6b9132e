// Copyright (c) 2026 Relato. All rights reserved.
// Author: dev@relato.app

/*
Package i18n provides localized user-facing messages for API responses.

It is deliberately NOT a process-wide singleton: a [Bundle] is constructed at
startup and injected into handlers, keeping message resolution testable and
free of hidden global state.

Lookup is keyed by (locale, key). Unknown locales fall back to the bundle's
default locale; unknown keys fall back to the key itself so a missing
translation is visible but never fatal.
*/
package i18n

import "strings"

// DefaultLocale is the fallback locale for unknown or missing locales.
const DefaultLocale = "en"

// Bundle resolves message keys to localized strings.
//
// # Concurrency
//
// A Bundle is immutable after construction and safe for concurrent use.
type Bundle struct {
	defaultLocale string
	messages      map[string]map[string]string
}

// NewBundle constructs a bundle from a locale → key → message catalogue.
func NewBundle(defaultLocale string, messages map[string]map[string]string) *Bundle {
	if defaultLocale == "" {
		defaultLocale = DefaultLocale
	}
	return &Bundle{defaultLocale: defaultLocale, messages: messages}
}

// T resolves key for the given locale.
//
// Resolution order: exact locale, base language ("es-MX" → "es"),
// default locale, then the key itself.
func (b *Bundle) T(locale, key string) string {
	if msg, ok := b.lookup(locale, key); ok {
		return msg
	}

	if base, _, found := strings.Cut(locale, "-"); found {
		if msg, ok := b.lookup(base, key); ok {
			return msg
		}
	}

	if msg, ok := b.lookup(b.defaultLocale, key); ok {
		return msg
	}

	return key
}

// Has reports whether the bundle carries the locale at all.
func (b *Bundle) Has(locale string) bool {
	_, ok := b.messages[locale]
	return ok
}

func (b *Bundle) lookup(locale, key string) (string, bool) {
	table, ok := b.messages[locale]
	if !ok {
		return "", false
	}
	msg, ok := table[key]
	return msg, ok
}

// ParseAcceptLanguage extracts the highest-priority language tag from an
// Accept-Language header value. Quality values are ignored; the first tag
// listed wins, which matches how the API's small locale set is negotiated.
func ParseAcceptLanguage(header string) string {
	if header == "" {
		return ""
	}

	first := header
	if idx := strings.IndexByte(first, ','); idx >= 0 {
		first = first[:idx]
	}
	if idx := strings.IndexByte(first, ';'); idx >= 0 {
		first = first[:idx]
	}

	return strings.ToLower(strings.TrimSpace(first))
}

// Negotiate resolves an Accept-Language header value to a locale the bundle
// carries, falling back to the default locale.
func (b *Bundle) Negotiate(header string) string {
	tag := ParseAcceptLanguage(header)
	if tag == "" {
		return b.defaultLocale
	}
	if b.Has(tag) {
		return tag
	}
	if base, _, found := strings.Cut(tag, "-"); found && b.Has(base) {
		return base
	}
	return b.defaultLocale
}

// Default returns the bundle shipped with the API: English and Spanish
// catalogues mirroring the public endpoints' envelope messages.
func Default() *Bundle {
	return NewBundle(DefaultLocale, map[string]map[string]string{
		"en": {
			"menu.items_retrieved":      "Menu items retrieved successfully.",
			"posts.retrieved":           "Posts retrieved successfully.",
			"posts.post_retrieved":      "Post retrieved successfully.",
			"posts.summary_retrieved":   "Summary retrieved successfully.",
			"categories.retrieved":      "Categories retrieved successfully.",
			"categories.one_retrieved":  "Category retrieved successfully.",
			"tags.retrieved":            "Tags retrieved successfully.",
			"tags.one_retrieved":        "Tag retrieved successfully.",
			"auth.registered":           "Registration successful. Check your email for a verification link.",
			"auth.logged_in":            "Logged in successfully.",
			"auth.logged_out":           "Logged out successfully.",
			"auth.session_refreshed":    "Session refreshed successfully.",
			"auth.email_verified":       "Email verified successfully.",
			"auth.reset_link_sent":      "If the email exists, a reset link has been sent.",
			"auth.password_reset":       "Password has been reset successfully.",
			"auth.password_changed":     "Password changed successfully.",
			"auth.user_retrieved":       "User retrieved successfully.",
			"auth.failed":               "These credentials do not match our records.",
			"auth.email_not_verified":   "Your email address is not verified.",
		},
		"es": {
			"menu.items_retrieved":      "Elementos del menú recuperados correctamente.",
			"posts.retrieved":           "Publicaciones recuperadas correctamente.",
			"posts.post_retrieved":      "Publicación recuperada correctamente.",
			"posts.summary_retrieved":   "Resumen recuperado correctamente.",
			"categories.retrieved":      "Categorías recuperadas correctamente.",
			"categories.one_retrieved":  "Categoría recuperada correctamente.",
			"tags.retrieved":            "Etiquetas recuperadas correctamente.",
			"tags.one_retrieved":        "Etiqueta recuperada correctamente.",
			"auth.registered":           "Registro exitoso. Revisa tu correo para el enlace de verificación.",
			"auth.logged_in":            "Sesión iniciada correctamente.",
			"auth.logged_out":           "Sesión cerrada correctamente.",
			"auth.session_refreshed":    "Sesión renovada correctamente.",
			"auth.email_verified":       "Correo verificado correctamente.",
			"auth.reset_link_sent":      "Si el correo existe, se ha enviado un enlace de restablecimiento.",
			"auth.password_reset":       "La contraseña se ha restablecido correctamente.",
			"auth.password_changed":     "Contraseña cambiada correctamente.",
			"auth.user_retrieved":       "Usuario recuperado correctamente.",
			"auth.failed":               "Estas credenciales no coinciden con nuestros registros.",
			"auth.email_not_verified":   "Tu dirección de correo no está verificada.",
		},
	})
}
