package mail

import (
	"bytes"
	"embed"
	htmltemplate "html/template"
	texttemplate "text/template"
	"time"
)

//go:embed templates/*
var templateFS embed.FS

var (
	otpHTML = htmltemplate.Must(htmltemplate.ParseFS(templateFS, "templates/otp.html"))
	otpText = texttemplate.Must(texttemplate.ParseFS(templateFS, "templates/otp.txt"))
)

type otpData struct {
	Code    string
	Minutes int
}

const otpSubject = "Your Magnolia sign-in code"

// renderOTP returns the plain text and HTML bodies for a code mail.
func renderOTP(code string, ttl time.Duration) (string, string, error) {
	data := otpData{Code: code, Minutes: int(ttl.Round(time.Minute) / time.Minute)}

	var text, html bytes.Buffer
	if err := otpText.Execute(&text, data); err != nil {
		return "", "", err
	}
	if err := otpHTML.Execute(&html, data); err != nil {
		return "", "", err
	}
	return text.String(), html.String(), nil
}
