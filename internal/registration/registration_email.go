package registration

import (
	"html/template"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	confirmationHeading = "Registration Confirmation"
	adminHeading        = "New Client Registration"
)

type confirmationData struct {
	LogoURL               string
	FromName              string
	FirstName             string
	LastName              string
	InterestType          string
	PreferredDays         string
	PreferredTime         string
	ReferredBy            string
	Phone                 string
	Email                 string
	Profession            string
	ShowEntrepreneurship  bool
	BusinessOpportunities []string
	ShowClient            bool
	WealthSolutions       []string
}

// html/template menangani escaping, jadi input user aman dipakai langsung.
var confirmationTmpl = template.Must(template.New("confirmation").Parse(`<!doctype html>
<html>
  <body style="font-family:Arial,Helvetica,sans-serif; color:#0f172a; line-height:1.2;">
    <div style="max-width:640px;margin:0 auto;padding:22px;">
      <div style="text-align:center;margin-bottom:18px;">
        {{if .LogoURL}}<img src="{{.LogoURL}}" alt="{{.FromName}}" style="max-width:160px;height:auto;margin-bottom:10px;" />{{end}}
        <h2 style="margin:0;">` + confirmationHeading + `</h2>
        <div style="color:#475569;font-size:13px;margin-top:6px;">We're excited to help you achieve your financial goals!</div>
      </div>

      <p>Dear <b>{{.FirstName}} {{.LastName}}</b>,</p>
      <p>Thank you for registering with <b>{{.FromName}}</b>. We received your information and will contact you shortly.</p>

      <div style="background:#f8fafc;border-left:4px solid #14b8a6;padding:12px 14px;border-radius:10px;">
        <div style="font-weight:bold;margin-bottom:6px;">Summary</div>
        <div><b>Interested In:</b> {{.InterestType}}</div>
        <div><b>Preferred Days:</b> {{.PreferredDays}}</div>
        <div><b>Preferred Time:</b> {{.PreferredTime}}</div>
        <div><b>Referred By:</b> {{.ReferredBy}}</div>
      </div>

      <p style="margin-top:16px;"><b>Phone:</b> {{.Phone}}<br/>
      <b>Email:</b> {{.Email}}{{if .Profession}}<br/><b>Profession:</b> {{.Profession}}{{end}}</p>

      {{if .ShowEntrepreneurship}}<div style="margin-top:16px;">
        <div style="font-weight:bold;">Entrepreneurship - Business Opportunity</div>
        <ul style="margin:8px 0 0 18px;">
          {{range .BusinessOpportunities}}<li>{{.}}</li>{{end}}
        </ul>
      </div>{{end}}

      {{if .ShowClient}}<div style="margin-top:16px;">
        <div style="font-weight:bold;">Client - Wealth Building Solutions</div>
        <ul style="margin:8px 0 0 18px;">
          {{range .WealthSolutions}}<li>{{.}}</li>{{end}}
        </ul>
      </div>{{end}}

      <div style="margin-top:20px;padding-top:14px;border-top:1px solid #e2e8f0;color:#475569;">
        Regards,<br/>
        <b>{{.FromName}}</b>
      </div>
    </div>
  </body>
</html>`))

// renderConfirmationHTML builds the submitter's confirmation email from the
// persisted record. Selected option ids are resolved through the label
// tables; unknown ids render as-is.
func renderConfirmationHTML(reg *Registration, fromName, logoURL string) (string, error) {
	caser := cases.Title(language.English)
	data := confirmationData{
		LogoURL:               logoURL,
		FromName:              fromName,
		FirstName:             reg.FirstName,
		LastName:              reg.LastName,
		InterestType:          caser.String(reg.InterestType),
		PreferredDays:         strings.Join(reg.PreferredDays, ", "),
		PreferredTime:         strings.Join(reg.PreferredTime, ", "),
		ReferredBy:            reg.ReferredBy,
		Phone:                 reg.Phone,
		Email:                 reg.Email,
		Profession:            reg.Profession,
		ShowEntrepreneurship:  ShowsEntrepreneurship(reg.InterestType),
		BusinessOpportunities: LabelsFor(reg.BusinessOpportunities, BusinessOpportunityLabels),
		ShowClient:            ShowsClient(reg.InterestType),
		WealthSolutions:       LabelsFor(reg.WealthSolutions, WealthSolutionLabels),
	}

	var sb strings.Builder
	if err := confirmationTmpl.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// retitleForAdmin swaps the confirmation heading for the internal copy.
func retitleForAdmin(html string) string {
	return strings.Replace(html, confirmationHeading, adminHeading, 1)
}
