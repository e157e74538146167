package placeholder

import (
	"strconv"

	"github.com/givebridge/sharepage/internal/model"
	"github.com/samber/lo"
)

// notAvailable is substituted for absent text fields. URL-typed fields
// resolve to the empty string instead so attributes like href stay usable.
const notAvailable = "N/A"

// textOr returns s, or "N/A" when s is empty.
func textOr(s string) string {
	return lo.Ternary(s != "", s, notAvailable)
}

// yesNo renders a boolean certification flag.
func yesNo(b bool) string {
	return lo.Ternary(b, "Yes", "No")
}

// positiveInt renders n, or "N/A" when it was never set.
func positiveInt(n int) string {
	if n <= 0 {
		return notAvailable
	}
	return strconv.Itoa(n)
}

// Resolve builds the full token value map for one render. It is a pure
// function of its inputs: preview and live render must produce identical
// output for identical data.
//
// Both NGO and company name tokens resolve unconditionally from whichever
// profile fields are present; the template author decides which to use.
// Absent fields become "N/A" (text) or "" (URLs), never "undefined".
func Resolve(user model.ProfileUser, campaigns []model.CampaignSummary) map[Token]string {
	values := map[Token]string{
		TokenUserName:           textOr(user.Name),
		TokenUserEmail:          textOr(user.Email),
		TokenUserAvatar:         user.AvatarURL,
		TokenProfileDescription: notAvailable,
		TokenProfileWebsite:     "",
		TokenProfileAddress:     notAvailable,
		TokenProfileNGOName:     notAvailable,
		TokenProfileCompanyName: notAvailable,
		TokenProfileRegNumber:   notAvailable,
		TokenProfileRegYear:     notAvailable,
		TokenProfileEmployees:   notAvailable,
		TokenProfileCEOName:     notAvailable,
		TokenProfile80G:         yesNo(false),
		TokenProfile12A:         yesNo(false),
		TokenCampaignsHTML:      RenderCampaigns(campaigns),
	}

	p := user.Profile
	if p == nil {
		return values
	}

	values[TokenProfileDescription] = textOr(p.Description)
	values[TokenProfileWebsite] = p.Website
	values[TokenProfileAddress] = textOr(p.Address)

	if ngo := p.NGO; ngo != nil {
		values[TokenProfileNGOName] = textOr(ngo.Name)
		values[TokenProfileRegNumber] = textOr(ngo.RegistrationNumber)
		values[TokenProfile80G] = yesNo(ngo.Is80GCertified)
		values[TokenProfile12A] = yesNo(ngo.Is12ACertified)
	}

	if co := p.Company; co != nil {
		values[TokenProfileCompanyName] = textOr(co.Name)
		if co.RegistrationNumber != "" {
			values[TokenProfileRegNumber] = co.RegistrationNumber
		}
		values[TokenProfileRegYear] = positiveInt(co.RegistrationYear)
		values[TokenProfileEmployees] = positiveInt(co.EmployeeCount)
		values[TokenProfileCEOName] = textOr(co.CEOName)
	}

	return values
}
