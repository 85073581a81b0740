package renderer

// DefaultThemeCSS is the stylesheet written to assets/themes/default.css
// on every build. Named themes referenced by a theme command resolve to
// assets/themes/<name>.css; authors drop their own files there and this
// default is the fallback the index page always loads.
const DefaultThemeCSS = `:root {
  --slide-bg: #ffffff;
  --slide-fg: #1a1a1a;
  --accent: #0066cc;
  --code-bg: #f5f5f5;
  --highlight-bg: #fff3b0;
}

body {
  margin: 0;
  font-family: -apple-system, "Segoe UI", Helvetica, Arial, sans-serif;
  color: var(--slide-fg);
  background: #2b2b2b;
}

.deck .slide {
  position: relative;
  box-sizing: border-box;
  width: 960px;
  min-height: 540px;
  margin: 2rem auto;
  padding: 3rem 4rem;
  background: var(--slide-bg) center / cover no-repeat;
  overflow: hidden;
}

.slide[style*="background-image"] {
  color: #ffffff;
}

.slide h1,
.slide h2 {
  margin-top: 0;
}

.slide .fit {
  display: inline-block;
  font-size: 2.5em;
  line-height: 1.05;
}

.slide .autoscale {
  font-size: 0.8em;
}

.columns {
  display: flex;
  gap: 2rem;
}

.image-grid {
  display: grid;
  gap: 0.5rem;
}

.image-grid[data-columns="1"] { grid-template-columns: 1fr; }
.image-grid[data-columns="2"] { grid-template-columns: 1fr 1fr; }
.image-grid[data-columns="3"] { grid-template-columns: 1fr 1fr 1fr; }

.image-grid figure {
  margin: 0;
}

.image-grid img {
  width: 100%;
  height: 100%;
  object-fit: contain;
}

.image-grid img[data-scaling="fill"],
.image-grid img[data-scaling="cover"] {
  object-fit: cover;
}

.image-grid img.filtered {
  filter: grayscale(1) brightness(0.7);
}

.video-embed iframe {
  width: 100%;
  aspect-ratio: 16 / 9;
  border: 0;
}

.code-block {
  padding: 1rem;
  background: var(--code-bg);
  overflow-x: auto;
}

.code-line {
  display: block;
}

.code-line.highlighted {
  background: var(--highlight-bg);
}

.slide-footer {
  position: absolute;
  bottom: 1rem;
  left: 4rem;
  font-size: 0.7em;
  opacity: 0.7;
}

.slide-number {
  position: absolute;
  bottom: 1rem;
  right: 4rem;
  font-size: 0.7em;
  opacity: 0.7;
}

.footnotes {
  width: 960px;
  margin: 2rem auto;
  padding: 1rem 4rem;
  background: var(--slide-bg);
  font-size: 0.85em;
}

.index {
  width: 960px;
  margin: 2rem auto;
  padding: 2rem 4rem;
  background: var(--slide-bg);
}

.slide-count {
  opacity: 0.6;
  font-size: 0.85em;
}
`
