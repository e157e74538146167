// Package placeholder defines the substitution token vocabulary for share
// page designs and resolves tokens to live profile and campaign data.
package placeholder

import (
	"github.com/givebridge/sharepage/internal/model"
	"github.com/samber/lo"
)

// Token is a literal substitution marker as it appears in authored HTML.
type Token string

const (
	TokenUserName           Token = "{{USER_NAME}}"
	TokenUserEmail          Token = "{{USER_EMAIL}}"
	TokenUserAvatar         Token = "{{USER_AVATAR}}"
	TokenProfileDescription Token = "{{PROFILE_DESCRIPTION}}"
	TokenProfileWebsite     Token = "{{PROFILE_WEBSITE}}"
	TokenProfileAddress     Token = "{{PROFILE_ADDRESS}}"
	TokenProfileNGOName     Token = "{{PROFILE_NGO_NAME}}"
	TokenProfileCompanyName Token = "{{PROFILE_COMPANY_NAME}}"
	TokenProfileRegNumber   Token = "{{PROFILE_REG_NUMBER}}"
	TokenProfileRegYear     Token = "{{PROFILE_REG_YEAR}}"
	TokenProfileEmployees   Token = "{{PROFILE_EMPLOYEES}}"
	TokenProfileCEOName     Token = "{{PROFILE_CEO_NAME}}"
	TokenProfile80G         Token = "{{PROFILE_80G}}"
	TokenProfile12A         Token = "{{PROFILE_12A}}"
	TokenCampaignsHTML      Token = "{{CAMPAIGNS_HTML}}"
)

// tokenDef documents one catalog entry in display order.
type tokenDef struct {
	Token       Token
	Description string
}

// The set is closed and versioned with the template format: adding a token is
// a backward-compatible change, removing one is not.
var catalogDefinitions = []tokenDef{
	{TokenUserName, "Account holder's display name"},
	{TokenUserEmail, "Account holder's email address"},
	{TokenUserAvatar, "URL of the account avatar image"},
	{TokenProfileDescription, "Organization description (may contain HTML)"},
	{TokenProfileWebsite, "Organization website URL"},
	{TokenProfileAddress, "Organization postal address"},
	{TokenProfileNGOName, "Registered NGO name"},
	{TokenProfileCompanyName, "Registered company name"},
	{TokenProfileRegNumber, "Government registration number"},
	{TokenProfileRegYear, "Year of registration"},
	{TokenProfileEmployees, "Number of employees"},
	{TokenProfileCEOName, "Name of the CEO"},
	{TokenProfile80G, "80G tax certification status (Yes/No)"},
	{TokenProfile12A, "12A tax certification status (Yes/No)"},
	{TokenCampaignsHTML, "Ready-made HTML block listing the organization's campaigns"},
}

// Tokens returns every catalog token in display order.
func Tokens() []Token {
	return lo.Map(catalogDefinitions, func(d tokenDef, _ int) Token {
		return d.Token
	})
}

// Catalog returns the documented vocabulary for the editor help panel.
func Catalog() []model.PlaceholderDoc {
	return lo.Map(catalogDefinitions, func(d tokenDef, _ int) model.PlaceholderDoc {
		return model.PlaceholderDoc{
			Token:       string(d.Token),
			Description: d.Description,
		}
	})
}

// Known reports whether t belongs to the catalog.
func Known(t Token) bool {
	return lo.ContainsBy(catalogDefinitions, func(d tokenDef) bool {
		return d.Token == t
	})
}
