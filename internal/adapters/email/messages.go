package email

import (
	"fmt"
	"html"
)

// DefaultFrom is the sender address used when no explicit from is configured.
const DefaultFrom = "Waaranders <noreply@waaranders.nl>"

// InviteRequest builds the welcome email for a newly registered volunteer.
// The temporary password is shown once; the recipient must change it on
// first login.
// PRE: to and name are non-empty; tempPassword is the generated password
// POST: Returns a ready-to-send request
func InviteRequest(to, name, tempPassword, baseURL string) SendRequest {
	body := fmt.Sprintf(`<p>Beste %s,</p>
<p>Er is een account voor je aangemaakt bij Waaranders.</p>
<p>Je kunt inloggen op <a href="%s/login">%s/login</a> met dit e-mailadres en het tijdelijke wachtwoord:</p>
<p><strong>%s</strong></p>
<p>Bij je eerste keer inloggen word je gevraagd een eigen wachtwoord te kiezen.</p>
<p>Hartelijke groet,<br>Team Waaranders</p>`,
		html.EscapeString(name),
		html.EscapeString(baseURL), html.EscapeString(baseURL),
		html.EscapeString(tempPassword))

	return SendRequest{
		To:      []string{to},
		Subject: "Welkom bij Waaranders",
		HTML:    body,
	}
}

// ActivityAnnouncement builds the notification sent to volunteers when a new
// activity is published.
// PRE: title and dateLabel are non-empty
// POST: Returns a request with no recipients; callers fill To per volunteer
func ActivityAnnouncement(title, dateLabel, location string) SendRequest {
	where := ""
	if location != "" {
		where = fmt.Sprintf("<p>Locatie: %s</p>", html.EscapeString(location))
	}
	body := fmt.Sprintf(`<p>Er staat een nieuwe activiteit op de agenda:</p>
<p><strong>%s</strong> op %s</p>
%s<p>Bekijk de agenda voor alle details.</p>
<p>Hartelijke groet,<br>Team Waaranders</p>`,
		html.EscapeString(title), html.EscapeString(dateLabel), where)

	return SendRequest{
		Subject: fmt.Sprintf("Nieuwe activiteit: %s", title),
		HTML:    body,
	}
}
