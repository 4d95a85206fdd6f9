package email

import (
	"bytes"
	_ "embed"
	"html/template"
)

type ApprovedEmailData struct {
	ControllerName string
	Submitter      string
	Position       string
	DashboardLink  string
}

type RejectedEmailData struct {
	SubmitterName string
	Position      string
	Reason        string
}

//go:embed email_feedback_approved.html
var approvedEmailHTML string

//go:embed email_feedback_rejected.html
var rejectedEmailHTML string

var (
	approvedEmailTmpl = template.Must(template.New("approved").Parse(approvedEmailHTML))
	rejectedEmailTmpl = template.Must(template.New("rejected").Parse(rejectedEmailHTML))
)

func RenderApprovedEmailHTML(data ApprovedEmailData) (string, error) {
	var buf bytes.Buffer
	if err := approvedEmailTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func RenderRejectedEmailHTML(data RejectedEmailData) (string, error) {
	var buf bytes.Buffer
	if err := rejectedEmailTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
