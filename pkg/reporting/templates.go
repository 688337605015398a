/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: templates.go
Description: HTML and Markdown templates for classification reports.
*/

package reporting

// htmlTemplate is a self-contained page; it loads nothing from the network
const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}} - {{.LevelName}}</title>
    <style>
        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }

        body {
            font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            min-height: 100vh;
            color: #333;
        }

        .container {
            max-width: 1100px;
            margin: 0 auto;
            padding: 20px;
        }

        .card {
            background: rgba(255, 255, 255, 0.95);
            border-radius: 20px;
            padding: 30px;
            margin-bottom: 30px;
            box-shadow: 0 8px 32px rgba(0, 0, 0, 0.1);
        }

        .header {
            text-align: center;
        }

        .header h1 {
            color: #4a5568;
            font-size: 2.2rem;
            margin-bottom: 10px;
        }

        .header p {
            color: #718096;
        }

        .level {
            display: inline-block;
            margin-top: 15px;
            padding: 8px 20px;
            border-radius: 999px;
            background: #667eea;
            color: #fff;
            font-weight: 600;
        }

        h2 {
            color: #4a5568;
            margin-bottom: 15px;
        }

        pre {
            background: #f7fafc;
            border-radius: 10px;
            padding: 15px;
            font-family: 'Fira Code', monospace;
            overflow-x: auto;
        }

        table {
            width: 100%;
            border-collapse: collapse;
        }

        td, th {
            text-align: left;
            padding: 8px;
            border-bottom: 1px solid #e2e8f0;
        }

        .pass { color: #38a169; font-weight: 600; }
        .fail { color: #e53e3e; font-weight: 600; }

        .words span {
            display: inline-block;
            margin: 3px;
            padding: 3px 10px;
            border-radius: 6px;
            background: #edf2f7;
            font-family: 'Fira Code', monospace;
        }

        .footer {
            text-align: center;
            color: #e2e8f0;
            font-size: 0.85rem;
        }
    </style>
</head>
<body>
    <div class="container">
        <div class="card header">
            <h1>{{.Title}}</h1>
            <p>{{.Source}}</p>
            <div class="level">{{.Summary}}</div>
        </div>

        <div class="card">
            <h2>Grammar</h2>
            <pre>{{.Grammar}}</pre>
            <table>
                <tr><th>Start symbol</th><td>{{.Start}}</td></tr>
                <tr><th>Productions</th><td>{{.Productions}}</td></tr>
                <tr><th>Nonterminals</th><td>{{join .Nonterminals " "}}</td></tr>
                <tr><th>Terminals</th><td>{{join .Terminals " "}}</td></tr>
                <tr><th>Fingerprint</th><td>{{.Fingerprint}}</td></tr>
                <tr><th>Recognizer</th><td>{{.Recognizer}}</td></tr>
            </table>
        </div>

        <div class="card">
            <h2>Classification trace</h2>
            <table>
                <tr><th>Result</th><th>Layer</th><th>Rule</th><th>Offending production</th></tr>
                {{range .Steps}}
                <tr>
                    <td>{{if .Passed}}<span class="pass">PASS</span>{{else}}<span class="fail">FAIL</span>{{end}}</td>
                    <td>{{.Layer}}</td>
                    <td>{{.Rule}}</td>
                    <td>{{if not .Passed}}{{.Offending}} ({{.Reason}}){{end}}</td>
                </tr>
                {{end}}
            </table>
        </div>

        {{with .Sample}}
        <div class="card">
            <h2>Sample (length &le; {{.MaxLen}}, {{.Steps}}/{{.MaxSteps}} steps{{if .Truncated}}, truncated{{end}})</h2>
            <div class="words">
                {{range .Words}}<span>{{word .}}</span>{{else}}<em>no words derived</em>{{end}}
            </div>
        </div>
        {{end}}

        <div class="footer">
            Report {{.ID}} &middot; generated {{stamp .GeneratedAt}} &middot; v{{.Version}}
        </div>
    </div>
</body>
</html>
`

// markdownTemplate renders the same report as Markdown
const markdownTemplate = `# {{.Title}}

**{{.Summary}}**

- Source: {{.Source}}
- Report: {{.ID}}
- Generated: {{stamp .GeneratedAt}}
- Recognizer: {{.Recognizer}}

## Grammar

` + "```" + `
{{.Grammar}}` + "```" + `

| Property | Value |
|---|---|
| Start symbol | {{.Start}} |
| Productions | {{.Productions}} |
| Nonterminals | {{join .Nonterminals " "}} |
| Terminals | {{join .Terminals " "}} |
| Fingerprint | {{.Fingerprint}} |

## Classification trace

| Result | Layer | Rule | Offending production |
|---|---|---|---|
{{range .Steps}}| {{if .Passed}}PASS{{else}}FAIL{{end}} | {{.Layer}} | {{.Rule}} | {{if not .Passed}}{{cell .Offending}} ({{.Reason}}){{end}} |
{{end}}{{with .Sample}}
## Sample

Length <= {{.MaxLen}}, {{.Steps}}/{{.MaxSteps}} steps{{if .Truncated}}, truncated{{end}}.

{{range .Words}}- ` + "`" + `{{word .}}` + "`" + `
{{else}}_no words derived_
{{end}}{{end}}`
