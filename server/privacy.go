package server

import "net/http"

type privacySection struct {
	Description string `json:"description" yaml:"description"`
	Detail      string `json:"detail,omitempty" yaml:"detail,omitempty"`
}

type PrivacyPolicy struct {
	Title       string                    `json:"title" yaml:"title"`
	LastUpdated string                    `json:"last_updated" yaml:"last_updated"`
	Content     map[string]privacySection `json:"content" yaml:"content"`
}

var privacyPolicy = PrivacyPolicy{
	Title:       "Menu Explainer API Privacy Policy",
	LastUpdated: "2025-01-19",
	Content: map[string]privacySection{
		"introduction": {
			Description: "This privacy policy describes how the Menu Explainer API handles data.",
		},
		"data_collection": {
			Description: "The API is a read-only service that provides restaurant menu information. No personal data is collected, stored, or processed.",
			Detail:      "Basic request metadata may be logged for operational purposes such as error monitoring.",
		},
		"data_storage": {
			Description: "Menu data is served from a pre-populated database.",
			Detail:      "No user data is stored.",
		},
		"data_sharing": {
			Description: "No data is shared with third parties.",
			Detail:      "Restaurant menu data is publicly accessible through the API endpoints.",
		},
		"data_security": {
			Description: "The API accepts no input beyond query parameters and does not modify data.",
		},
		"user_rights": {
			Description: "As no personal data is collected there is no personal data to access, modify or delete.",
		},
		"contact": {
			Description: "Questions about this policy or the API go to the API administrator.",
		},
		"changes": {
			Description: "Changes to this policy are reflected in the last_updated field.",
		},
	},
}

func (s *Server) handlePrivacy(w http.ResponseWriter, r *http.Request) {
	respond(w, r, http.StatusOK, privacyPolicy)
}
