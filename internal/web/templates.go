package web

import (
    "bytes"
    "html/template"
    "net/http"

    "github.com/google/uuid"

    "github.com/Thomas-X/Checkers/internal/domain"
    "github.com/Thomas-X/Checkers/internal/input"
    "github.com/Thomas-X/Checkers/internal/tui"
)

type templates struct {
    game  *template.Template
    board *template.Template
    index *template.Template
}

func funcs() template.FuncMap {
    return template.FuncMap{
        "glyph": func(c domain.Cell) string { return tui.Glyph(c) },
        "coord": func(x, y int) string { return input.Format(domain.Point{X: x, Y: y}) },
        "letter": func(x int) string { return string(rune('a' + x)) },
        "dark": func(c domain.Cell) bool {
            return c != domain.EmptyLight && c != domain.FilledLightWhite && c != domain.FilledLightBlack
        },
        "add": func(a, b int) int { return a + b },
    }
}

func loadTemplates() *templates {
    base := template.Must(template.New("base").Funcs(funcs()).Parse(`<!doctype html><html><head>
<meta charset="utf-8"/>
<script src="https://unpkg.com/htmx.org@1.9.12"></script>
<script src="https://unpkg.com/htmx.org/dist/ext/sse.js"></script>
<style>td{width:2em;height:2em;text-align:center}td.dark{background:#6b4226;color:#fff}td.light{background:#d9c39a}</style>
</head><body>{{template "content" .}}</body></html>`))
    index := template.Must(template.Must(base.Clone()).New("content").Parse(`<h1>RETRO Checkers</h1><form action="/game" method="post"><button>Create</button></form>`))
    game := template.Must(template.Must(base.Clone()).New("content").Parse(`
<div hx-ext="sse" hx-sse="connect:/game/{{.ID}}/events">
  <div id="board-stream" hx-sse="swap:board">{{.BoardHTML}}</div>
</div>`))
    // Standalone board template used for fragment rendering
    board := template.Must(template.New("board_only").Funcs(funcs()).Parse(boardTemplate))
    return &templates{game: game, board: board, index: index}
}

func renderTemplate(t *template.Template, name string, data any) []byte {
    var buf bytes.Buffer
    if name == "" {
        _ = t.Execute(&buf, data)
    } else {
        _ = t.ExecuteTemplate(&buf, name, data)
    }
    return buf.Bytes()
}

const boardTemplate = `
<div id="board">
  {{if .Error}}
  <div class="alert">{{.Error}}</div>
  {{end}}
  <p class="title">Welcome to RETRO Checkers!</p>
  {{if .Winner}}
  <p class="winner">{{.Winner}} wins!</p>
  {{else}}
  <p class="turn">It is {{.Turn}}'s turn.</p>
  {{if .HitRequired}}<p class="hit">A hit is required at {{.HitAt}}!</p>{{end}}
  {{end}}
  <table>
    <tr><th></th>{{range $x, $_ := index .Rows 0}}<th>{{letter $x}}</th>{{end}}</tr>
    {{range $y, $row := .Rows}}
    <tr><th>{{add $y 1}}</th>{{range $x, $c := $row}}<td class="{{if dark $c}}dark{{else}}light{{end}}" title="{{coord $x $y}}">{{glyph $c}}</td>{{end}}</tr>
    {{end}}
  </table>
  <form hx-post="/game/{{.ID}}/play" hx-target="#board" hx-swap="outerHTML" method="post">
    <input name="from" placeholder="j4" size="4">
    <input name="to" placeholder="i5" size="4">
    <button type="submit">Move</button>
  </form>
</div>
`

// boardData is what the board template renders.
type boardData struct {
    ID          string
    Rows        [][]domain.Cell
    Turn        string
    HitRequired bool
    HitAt       string
    Winner      string
    Error       string
}

// Helper to set cookie
func ensurePlayerCookie(w http.ResponseWriter, r *http.Request) string {
    if c, err := r.Cookie("player_id"); err == nil && c.Value != "" {
        return c.Value
    }
    // Generate UUIDv4 for player ID
    v := uuid.NewString()
    http.SetCookie(w, &http.Cookie{Name: "player_id", Value: v, Path: "/"})
    return v
}
