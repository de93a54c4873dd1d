package pdf

import (
	"bytes"
	"fmt"
	"html/template"

	"craftdeck/internal/document"
)

// resumeLayout is the print layout for the A4 resume. The page is sized
// at 794x1122px (A4 @ 96 DPI) so the browser's print pipeline maps it
// 1:1 onto the paper format.
const resumeLayout = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body {
            font-family: 'Georgia', 'Times New Roman', serif;
            color: #1a1a1a;
        }
        .page {
            width: 794px;
            min-height: 1122px;
            background: white;
            padding: 56px 64px;
        }
        header { border-bottom: 2px solid #1a1a1a; padding-bottom: 14px; }
        h1 { font-size: 26pt; letter-spacing: 2px; text-transform: uppercase; }
        .contact { margin-top: 8px; font-size: 9pt; color: #444; }
        .contact span + span::before { content: "\2022"; margin: 0 6px; color: #999; }
        section { margin-top: 22px; }
        h2 {
            font-size: 11pt;
            letter-spacing: 1.5px;
            text-transform: uppercase;
            border-bottom: 1px solid #ccc;
            padding-bottom: 4px;
            margin-bottom: 10px;
        }
        .summary { font-size: 10pt; line-height: 1.5; }
        .entry { margin-bottom: 12px; }
        .entry-head { display: flex; justify-content: space-between; }
        .entry-title { font-weight: bold; font-size: 10.5pt; }
        .entry-sub { font-style: italic; font-size: 10pt; color: #333; }
        .entry-when { font-size: 9pt; color: #666; }
        .entry-body { margin-top: 4px; font-size: 9.5pt; line-height: 1.45; }
        .skills { font-size: 10pt; }
        .skills span { display: inline-block; margin-right: 4px; }
        .skills span + span::before { content: "\2022"; margin-right: 4px; color: #999; }
    </style>
</head>
<body>
    <div class="page">
        <header>
            <h1>{{.FullName}}</h1>
            <div class="contact">
                {{if .Location}}<span>{{.Location}}</span>{{end}}
                {{if .Email}}<span>{{.Email}}</span>{{end}}
                {{if .Phone}}<span>{{.Phone}}</span>{{end}}
                {{if .LinkedIn}}<span>{{.LinkedIn}}</span>{{end}}
                {{if .Website}}<span>{{.Website}}</span>{{end}}
            </div>
        </header>
        {{if .Summary}}
        <section>
            <h2>Summary</h2>
            <p class="summary">{{.Summary}}</p>
        </section>
        {{end}}
        {{if .Experience}}
        <section>
            <h2>Experience</h2>
            {{range .Experience}}
            <div class="entry">
                <div class="entry-head">
                    <span class="entry-title">{{.Role}}</span>
                    <span class="entry-when">{{.Duration}}</span>
                </div>
                <div class="entry-sub">{{.Company}}</div>
                {{if .Description}}<p class="entry-body">{{.Description}}</p>{{end}}
            </div>
            {{end}}
        </section>
        {{end}}
        {{if .Education}}
        <section>
            <h2>Education</h2>
            {{range .Education}}
            <div class="entry">
                <div class="entry-head">
                    <span class="entry-title">{{.Degree}}</span>
                    <span class="entry-when">{{.Year}}</span>
                </div>
                <div class="entry-sub">{{.School}}</div>
            </div>
            {{end}}
        </section>
        {{end}}
        {{if .Skills}}
        <section>
            <h2>Skills</h2>
            <div class="skills">{{range .Skills}}<span>{{.}}</span>{{end}}</div>
        </section>
        {{end}}
    </div>
</body>
</html>`

// cardLayout is the print layout for the landscape business card, sized
// at 336x192px (3.5x2 inches @ 96 DPI).
const cardLayout = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body { font-family: 'Helvetica Neue', 'Arial', sans-serif; }
        .card {
            width: 336px;
            height: 192px;
            background: white;
            padding: 22px 26px;
            display: flex;
            flex-direction: column;
            justify-content: space-between;
            border-top: 4px solid #1a1a1a;
        }
        h1 { font-size: 13pt; letter-spacing: 0.5px; }
        .role { font-size: 8pt; color: #555; text-transform: uppercase; letter-spacing: 1px; margin-top: 3px; }
        .company { font-size: 9pt; font-weight: bold; margin-top: 6px; }
        .contact { font-size: 7pt; color: #444; line-height: 1.6; }
    </style>
</head>
<body>
    <div class="card">
        <div>
            <h1>{{.FullName}}</h1>
            {{if .Role}}<div class="role">{{.Role}}</div>{{end}}
            {{if .Company}}<div class="company">{{.Company}}</div>{{end}}
        </div>
        <div class="contact">
            {{if .Email}}<div>{{.Email}}</div>{{end}}
            {{if .Phone}}<div>{{.Phone}}</div>{{end}}
            {{if .Website}}<div>{{.Website}}</div>{{end}}
            {{if .Location}}<div>{{.Location}}</div>{{end}}
        </div>
    </div>
</body>
</html>`

var (
	resumeTmpl = template.Must(template.New("resume").Parse(resumeLayout))
	cardTmpl   = template.Must(template.New("card").Parse(cardLayout))
)

// ResumeHTML renders the resume print layout.
func ResumeHTML(r *document.Resume) (string, error) {
	var buf bytes.Buffer
	if err := resumeTmpl.Execute(&buf, r); err != nil {
		return "", fmt.Errorf("render resume layout: %w", err)
	}
	return buf.String(), nil
}

// CardHTML renders the business-card print layout.
func CardHTML(c *document.BusinessCard) (string, error) {
	var buf bytes.Buffer
	if err := cardTmpl.Execute(&buf, c); err != nil {
		return "", fmt.Errorf("render card layout: %w", err)
	}
	return buf.String(), nil
}
