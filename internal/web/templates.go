package web

const templates = `
{{define "gallery"}}<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
body { margin: 0; font-family: system-ui, sans-serif; background: #111; color: #eee; }
header, footer { padding: 1rem 2rem; }
header a { color: inherit; margin-right: 1rem; }
.grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(220px, 1fr)); gap: .5rem; padding: 0 2rem; opacity: 0; transition: opacity .3s; }
.grid.ready { opacity: 1; }
.tile { position: relative; margin: 0; aspect-ratio: 1; overflow: hidden; background: #222; }
.tile.is-loading { animation: pulse 1.2s infinite; }
.tile img, .tile video { width: 100%; height: 100%; object-fit: cover; opacity: 0; transition: opacity .4s; }
.tile.is-ready img, .tile.is-ready video { opacity: 1; }
.tile-link { display: block; width: 100%; height: 100%; }
.badge { position: absolute; top: .5rem; left: .5rem; padding: .1rem .5rem; background: rgba(0,0,0,.6); border-radius: .25rem; font-size: .8rem; }
.lightbox { position: fixed; inset: 0; display: none; align-items: center; justify-content: center; background: rgba(0,0,0,.9); }
.lightbox.is-open { display: flex; }
.lightbox img, .lightbox video { max-width: 90vw; max-height: 90vh; }
.lightbox button { position: absolute; background: none; border: 0; color: #fff; font-size: 2rem; cursor: pointer; }
.lightbox-close { top: 1rem; right: 1rem; }
.lightbox-prev { left: 1rem; }
.lightbox-next { right: 1rem; }
@keyframes pulse { 50% { background: #333; } }
</style>
</head>
<body>
<header>
<h1>{{.Title}}</h1>
<nav><a href="#gallery">Gallery</a><a href="#contact">Contact</a></nav>
</header>
<main id="gallery">
<div id="gallery-grid" class="grid" data-build="{{.Build}}">
{{- range .Tiles}}
<figure class="tile is-loading" id="tile-{{.Index}}" data-index="{{.Index}}" data-kind="{{.Media.Kind}}" data-src="{{mediaURL .Media.Path}}" data-label="{{.Media.Label}}">
{{- if .Media.IsVideo}}
<a class="tile-link" href="/view/{{$.Build}}/{{.Index}}" aria-label="Open in viewer"><video muted loop playsinline preload="none" data-src="{{mediaURL .Media.Path}}"></video></a>
<span class="badge">Video</span>
{{- else}}
<a class="tile-link" href="/view/{{$.Build}}/{{.Index}}" aria-label="Open in viewer"><img loading="lazy" decoding="async" fetchpriority="{{if .Eager}}high{{else}}low{{end}}" data-src="{{mediaURL .Media.Path}}" alt="{{.Media.Label}}"></a>
{{- end}}
</figure>
{{- end}}
</div>
</main>
<div id="lightbox" class="lightbox" aria-hidden="true">
<button class="lightbox-close" aria-label="Close">&times;</button>
<button class="lightbox-prev" aria-label="Previous">&lsaquo;</button>
<div id="lightbox-content"></div>
<button class="lightbox-next" aria-label="Next">&rsaquo;</button>
</div>
<footer id="contact">&copy; <span id="year">{{.Year}}</span></footer>
<script>
(function () {
  var select = function (s, scope) { return (scope || document).querySelector(s); };
  var selectAll = function (s, scope) { return Array.prototype.slice.call((scope || document).querySelectorAll(s)); };

  select('#year').textContent = new Date().getFullYear();

  var grid = select('#gallery-grid');
  var tiles = selectAll('.tile', grid);
  var items = tiles.map(function (t) {
    return { kind: t.dataset.kind, src: t.dataset.src, label: t.dataset.label };
  });

  var markReady = function (tile) {
    tile.classList.remove('is-loading');
    tile.classList.add('is-ready');
  };

  var lazyObserver = new IntersectionObserver(function (entries) {
    entries.forEach(function (entry) {
      if (!entry.isIntersecting) return;
      var tile = entry.target;
      var media = select('img,video', tile);
      lazyObserver.unobserve(tile);
      if (!media) return;
      if (media.tagName === 'VIDEO') {
        media.preload = 'metadata';
        media.addEventListener('loadeddata', function () { markReady(tile); });
      } else {
        media.addEventListener('load', function () { markReady(tile); });
      }
      media.src = media.dataset.src;
    });
  }, { rootMargin: '300px 0px' });

  tiles.forEach(function (t) { lazyObserver.observe(t); });
  setTimeout(function () { grid.classList.add('ready'); }, 150);

  var lightbox = select('#lightbox');
  var content = select('#lightbox-content');
  var currentIndex = -1;

  var openLightbox = function (index) {
    var item = items[index];
    if (!item) return;
    currentIndex = index;
    content.innerHTML = '';
    var el;
    if (item.kind === 'video') {
      el = document.createElement('video');
      el.controls = true;
      el.autoplay = true;
      el.playsInline = true;
    } else {
      el = document.createElement('img');
      el.alt = item.label;
    }
    el.src = item.src;
    content.appendChild(el);
    lightbox.classList.add('is-open');
    lightbox.setAttribute('aria-hidden', 'false');
  };

  var closeLightbox = function () {
    lightbox.classList.remove('is-open');
    lightbox.setAttribute('aria-hidden', 'true');
    content.innerHTML = '';
    currentIndex = -1;
  };

  var showNext = function (delta) {
    if (currentIndex < 0) return;
    var n = items.length;
    openLightbox((currentIndex + delta + n) % n);
  };

  grid.addEventListener('click', function (e) {
    var link = e.target.closest('.tile-link');
    var tile = e.target.closest('.tile');
    if (!link || !tile) return;
    e.preventDefault();
    openLightbox(Number(tile.dataset.index));
  });

  select('.lightbox-close').addEventListener('click', closeLightbox);
  select('.lightbox-prev').addEventListener('click', function () { showNext(-1); });
  select('.lightbox-next').addEventListener('click', function () { showNext(1); });
  lightbox.addEventListener('click', function (e) {
    if (e.target === lightbox) closeLightbox();
  });

  document.addEventListener('keydown', function (e) {
    if (!lightbox.classList.contains('is-open')) return;
    if (e.key === 'Escape') closeLightbox();
    if (e.key === 'ArrowRight') showNext(1);
    if (e.key === 'ArrowLeft') showNext(-1);
  });

  selectAll('a[href^="#"]').forEach(function (a) {
    a.addEventListener('click', function (e) {
      var target = select(a.getAttribute('href'));
      if (!target) return;
      e.preventDefault();
      target.scrollIntoView({ behavior: 'smooth', block: 'start' });
    });
  });
})();
</script>
</body>
</html>
{{end}}

{{define "view"}}<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Item.Label}} - {{.Title}}</title>
<style>
body { margin: 0; background: #000; color: #eee; font-family: system-ui, sans-serif; text-align: center; }
img, video { max-width: 100vw; max-height: 85vh; }
nav a { color: inherit; margin: 0 1rem; }
</style>
</head>
<body>
<main>
{{- if .Item.IsVideo}}
<video src="{{mediaURL .Item.Path}}" controls autoplay playsinline></video>
{{- else}}
<img src="{{mediaURL .Item.Path}}" alt="{{.Item.Label}}">
{{- end}}
<p>{{.Item.Label}} ({{.Position}} / {{.Count}})</p>
</main>
<nav>
<a rel="prev" href="/view/{{.Build}}/{{.Prev}}">Previous</a>
<a href="/?build={{.Build}}#tile-{{.Index}}">Close</a>
<a rel="next" href="/view/{{.Build}}/{{.Next}}">Next</a>
</nav>
</body>
</html>
{{end}}
`
