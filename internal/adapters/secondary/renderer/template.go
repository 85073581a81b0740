package renderer

// pageTemplate is the single-presentation page. MathJax and highlight.js
// run client-side: the core only packages \(..\)/\[..\] spans and
// language-tagged, line-wrapped code markup for them.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<link rel="stylesheet" href="/assets/themes/{{.Theme}}.css">
<link rel="stylesheet" href="https://cdnjs.cloudflare.com/ajax/libs/highlight.js/11.9.0/styles/github.min.css">
<script src="https://cdnjs.cloudflare.com/ajax/libs/highlight.js/11.9.0/highlight.min.js" defer></script>
<script src="https://cdn.jsdelivr.net/npm/mathjax@3/es5/tex-chtml.js" defer></script>
</head>
<body class="theme-{{.Theme}}">
<main class="deck">
{{- range .Slides}}
<section class="slide{{if .Autoscale}} autoscale{{end}}{{if .Degraded}} degraded{{end}}"
         id="slide-{{.Index}}"{{with .Transition}} data-transition="{{.}}"{{end}}
         {{- with .Background}} style="background-image: url('/{{.WebPath}}')" data-background-scaling="{{.Modifiers.Scaling}}"{{end}}>
  {{- if .Columns}}
  <div class="columns">
    {{- range .Columns}}
    <div class="column" style="width: {{.Width}}">{{.Content}}</div>
    {{- end}}
  </div>
  {{- else}}
  {{.Content}}
  {{- end}}
  {{- if .Grid.Images}}
  <div class="image-grid" data-columns="{{.Grid.Columns}}">
    {{- range .Grid.Images}}
    <figure class="grid-cell" data-row="{{.Row}}" data-col="{{.Col}}">
      <img src="/{{.WebPath}}" data-scaling="{{.Modifiers.Scaling}}"
           {{- if .Modifiers.Filtered}} class="filtered"{{end}}
           {{- if .Modifiers.CornerRadius}} style="border-radius: {{.Modifiers.CornerRadius}}px"{{end}}>
    </figure>
    {{- end}}
  </div>
  {{- end}}
  {{- range .Videos}}
  {{- if eq .Embed "external"}}
  <div class="video-embed"><iframe src="{{.EmbedURL}}" allowfullscreen></iframe></div>
  {{- else}}
  <video src="/{{.WebPath}}"{{if .Modifiers.Autoplay}} autoplay{{end}}{{if .Modifiers.Loop}} loop{{end}}{{if .Modifiers.Mute}} muted{{end}}{{if .Modifiers.Hidden}} hidden{{end}} controls></video>
  {{- end}}
  {{- end}}
  {{- range .Audio}}
  <audio src="/{{.WebPath}}"{{if .Modifiers.Autoplay}} autoplay{{end}}{{if .Modifiers.Loop}} loop{{end}}{{if .Modifiers.Mute}} muted{{end}}{{if .Modifiers.Hidden}} hidden{{end}} controls></audio>
  {{- end}}
  {{- range .CodeBlocks}}
  {{.}}
  {{- end}}
  {{- if .Notes}}
  <aside class="speaker-notes" hidden>{{.Notes}}</aside>
  {{- end}}
  {{- if .ShowFooter}}
  <footer class="slide-footer">{{$.Footer}}</footer>
  {{- end}}
  {{- if .ShowNumbers}}
  <div class="slide-number">{{.Index}}</div>
  {{- end}}
</section>
{{- end}}
{{- if .Footnotes}}
<section class="footnotes">
  <ol>
  {{- range $id, $def := .Footnotes}}
    <li id="fn-{{$id}}">{{$def}}</li>
  {{- end}}
  </ol>
</section>
{{- end}}
</main>
` + reloadScript + `</body>
</html>
`

// reloadScript connects to the preview server's reload socket. It only
// runs when the page is served from a local host, so the published site
// carries no live behavior.
const reloadScript = `<script>
(function () {
  if (!["localhost", "127.0.0.1", "[::1]"].includes(location.hostname)) return;
  var ws = new WebSocket("ws://" + location.host + "/ws");
  ws.onmessage = function (e) {
    if (JSON.parse(e.data).type === "reload") location.reload();
  };
})();
</script>
`

// indexTemplate is the site index listing every presentation.
const indexTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Presentations</title>
<link rel="stylesheet" href="/assets/themes/default.css">
</head>
<body>
<main class="index">
<h1>Presentations</h1>
<ul class="presentation-list">
{{- range .}}
  <li><a href="/slides/{{.Slug}}/">{{.Title}}</a> <span class="slide-count">{{.Slides}} slides</span></li>
{{- end}}
</ul>
</main>
` + reloadScript + `</body>
</html>
`
