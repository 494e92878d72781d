// SPDX-License-Identifier: Apache-2.0

package models

// Settings is the site settings record from /wp/v2/settings.
// The endpoint requires administrator credentials.
type Settings struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Email       string `json:"email"`
	Timezone    string `json:"timezone_string"`
	DateFormat  string `json:"date_format"`
	TimeFormat  string `json:"time_format"`
	Language    string `json:"language"`
}

// SiteInfo is the site information returned by the get site info operation.
type SiteInfo struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url"`
	Email       string `json:"email,omitempty"`
	Timezone    string `json:"timezone,omitempty"`
	DateFormat  string `json:"date_format,omitempty"`
	TimeFormat  string `json:"time_format,omitempty"`
	Language    string `json:"language,omitempty"`
	APIURL      string `json:"api_url,omitempty"`
	Note        string `json:"note,omitempty"`
}

// SiteInfoResult wraps SiteInfo.
type SiteInfoResult struct {
	Site SiteInfo `json:"site"`
}

// User is the authenticated user record from /wp/v2/users/me.
type User struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Slug         string          `json:"slug"`
	Capabilities map[string]bool `json:"capabilities"`
}

// ConnectionResult is the result of the test connection operation.
type ConnectionResult struct {
	Success         bool     `json:"success"`
	Message         string   `json:"message"`
	SiteURL         string   `json:"site_url"`
	AuthenticatedAs string   `json:"authenticated_as,omitempty"`
	UserID          int64    `json:"user_id,omitempty"`
	Capabilities    []string `json:"capabilities,omitempty"`
}
