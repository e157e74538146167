package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TargetType identifies what a share link points at.
type TargetType string

const (
	TargetNGOProfile     TargetType = "ngo-profile"
	TargetCompanyProfile TargetType = "company-profile"
	TargetCampaign       TargetType = "campaign"
)

// Valid reports whether t is a known target type.
func (t TargetType) Valid() bool {
	switch t {
	case TargetNGOProfile, TargetCompanyProfile, TargetCampaign:
		return true
	}
	return false
}

// ShareLink is the public, stable identifier through which an organization's
// custom page is reached. Immutable once created; only the design behind it
// changes.
type ShareLink struct {
	ShareID    string
	TargetType TargetType
	TargetID   string
	CreatedAt  time.Time
}

// TemplateDesign is the author-owned raw HTML/CSS pair behind a share link.
// AdditionalData is opaque to the substitution engine: stored and returned
// verbatim, never interpolated.
type TemplateDesign struct {
	HTML           string         `json:"html"`
	CSS            string         `json:"css"`
	AdditionalData map[string]any `json:"additionalData"`
}

// ProfileKind tags the two organization profile shapes.
type ProfileKind string

const (
	KindNGO     ProfileKind = "ngo"
	KindCompany ProfileKind = "company"
)

// NGODetails holds fields specific to NGO profiles.
type NGODetails struct {
	Name               string `json:"name"`
	RegistrationNumber string `json:"registrationNumber"`
	Is80GCertified     bool   `json:"is80GCertified"`
	Is12ACertified     bool   `json:"is12ACertified"`
}

// CompanyDetails holds fields specific to company profiles.
type CompanyDetails struct {
	Name               string `json:"name"`
	RegistrationNumber string `json:"registrationNumber"`
	RegistrationYear   int    `json:"registrationYear"`
	EmployeeCount      int    `json:"employeeCount"`
	CEOName            string `json:"ceoName"`
}

// Profile is the organization profile attached to a user account, tagged by
// kind. Exactly one of NGO/Company is set for a well-formed profile, but the
// resolver tolerates either or both being nil.
type Profile struct {
	Kind        ProfileKind     `json:"kind"`
	Description string          `json:"description"`
	Website     string          `json:"website"`
	Address     string          `json:"address"`
	NGO         *NGODetails     `json:"ngo,omitempty"`
	Company     *CompanyDetails `json:"company,omitempty"`
}

// ProfileUser is the account record a share page renders: the user fields
// plus an optional organization profile.
type ProfileUser struct {
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	AvatarURL string   `json:"avatarUrl"`
	Role      string   `json:"role"`
	Profile   *Profile `json:"profile,omitempty"`
}

// CampaignSummary is the minimal campaign projection needed for fragment
// rendering. Derived from the platform API, never stored here.
type CampaignSummary struct {
	Title     string          `json:"title"`
	Organizer string          `json:"organizer"`
	ImageURL  string          `json:"imageUrl"`
	Raised    decimal.Decimal `json:"raised"`
	Goal      decimal.Decimal `json:"goal"`
}

// EditorData holds data for the editor page template. Seed is the design the
// page starts from before the saved one loads, so editing works even when
// loading fails.
type EditorData struct {
	ShareID      string
	TargetType   TargetType
	TargetID     string
	Seed         TemplateDesign
	Placeholders []PlaceholderDoc
}

// PlaceholderDoc documents one substitution token for the editor help panel.
type PlaceholderDoc struct {
	Token       string `json:"token"`
	Description string `json:"description"`
}

// FallbackPageData holds data for the built-in structured profile layout used
// when no custom design is wanted.
type FallbackPageData struct {
	User      ProfileUser
	Campaigns []CampaignSummary
}
