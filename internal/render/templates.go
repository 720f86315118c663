package render

// pageTemplate is the html/template shared by every view.
const pageTemplate = `<!DOCTYPE html>
<html lang="ar" dir="rtl">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{if .Title}}{{.Title}} | {{end}}{{.SiteTitle}}</title>
  <link rel="stylesheet" href="{{.Base}}assets/style.css">
</head>
<body data-live="{{.Live}}" data-kind="{{.Kind}}">
  <header class="top-bar">
    {{if .BackHref}}<a class="back" href="{{.BackHref}}" aria-label="رجوع">→</a>{{end}}
    <a class="brand" href="{{.HomeHref}}">{{.SiteTitle}}</a>
    {{if .Live}}
    <form class="search" action="{{.SearchHref}}" method="get">
      <input type="search" name="q" value="{{.Query}}" placeholder="ابحث في الأذكار والأدعية" autocomplete="off">
    </form>
    {{end}}
  </header>
  <main class="content">
    {{if eq .Kind "home"}}
      <h1>{{.Title}}</h1>
      <div class="cards">
        {{range .Sections}}
        <a class="card section-card" href="{{.Href}}">
          <h2>{{.Title}}</h2>
          <div class="description">{{.Description}}</div>
          <span class="count">{{.Count}}</span>
        </a>
        {{end}}
      </div>
    {{else if eq .Kind "section"}}
      <h1>{{.Title}}</h1>
      {{if .Description}}<div class="description">{{.Description}}</div>{{end}}
      <div class="cards">
        {{range .Categories}}
        <a class="card category-card" href="{{.Href}}">
          <span class="icon">{{.Icon}}</span>
          <h2>{{.Title}}</h2>
          <span class="count">{{.Count}}</span>
        </a>
        {{end}}
      </div>
    {{else if eq .Kind "notfound"}}
      <div class="not-found">
        <h1>{{.Title}}</h1>
        <p>الصفحة المطلوبة غير موجودة.</p>
        <a href="{{.HomeHref}}">العودة إلى الرئيسية</a>
      </div>
    {{else}}
      <h1>{{if .Icon}}<span class="icon">{{.Icon}}</span> {{end}}{{.Title}}</h1>
      {{if eq .Kind "search"}}
        {{if not .Items}}<p class="empty">لا توجد نتائج{{if .Query}} لـ «{{.Query}}»{{end}}.</p>{{end}}
      {{end}}
      <ul class="items">
        {{range .Items}}
        <li class="item" id="item-{{.ID}}" data-id="{{.ID}}">
          <p class="text">{{.Text}}</p>
          <div class="meta">
            {{if .Repeat}}<span class="repeat">التكرار: {{.Repeat}}</span>{{end}}
            {{if .Source}}<span class="source">{{.Source}}</span>{{end}}
            {{if .Href}}<a class="open" href="{{.Href}}#item-{{.ID}}">عرض في القسم</a>{{end}}
          </div>
          {{if .Note}}<div class="note">{{.Note}}</div>{{end}}
          <div class="actions">
            <button type="button" class="play" data-id="{{.ID}}" data-text="{{.Text}}" aria-pressed="false">
              <span class="label-play">استماع</span><span class="label-stop">إيقاف</span>
            </button>
            <button type="button" class="copy" data-text="{{.Text}}">نسخ</button>
            <a class="share" href="{{.Share}}" target="_blank" rel="noopener">مشاركة</a>
          </div>
        </li>
        {{end}}
      </ul>
    {{end}}
  </main>
  <script src="{{.Base}}assets/app.js"></script>
</body>
</html>`

// cssContent is the stylesheet for every page.
const cssContent = `:root {
  --bg: #f7f5ef;
  --card: #ffffff;
  --text: #1f2a24;
  --muted: #6b756f;
  --accent: #2f7d5b;
  --accent-light: #e4f1ea;
  --border: #e2ded3;
  --shadow: 0 1px 3px rgba(0,0,0,0.08);
}
* { box-sizing: border-box; }
body {
  margin: 0;
  background: var(--bg);
  color: var(--text);
  font-family: "Amiri", "Noto Naskh Arabic", "Segoe UI", Tahoma, sans-serif;
  line-height: 1.8;
}
.top-bar {
  display: flex;
  align-items: center;
  gap: 1rem;
  padding: 0.75rem 1.25rem;
  background: var(--card);
  border-bottom: 1px solid var(--border);
  position: sticky;
  top: 0;
}
.top-bar .brand { font-weight: bold; color: var(--accent); text-decoration: none; font-size: 1.2rem; }
.top-bar .back { text-decoration: none; font-size: 1.4rem; color: var(--text); }
.top-bar .search { margin-inline-start: auto; }
.top-bar .search input {
  padding: 0.4rem 0.8rem;
  border: 1px solid var(--border);
  border-radius: 999px;
  min-width: 16rem;
}
.content { max-width: 860px; margin: 0 auto; padding: 1.5rem 1.25rem 4rem; }
.cards { display: grid; grid-template-columns: repeat(auto-fill, minmax(220px, 1fr)); gap: 1rem; }
.card {
  display: block;
  padding: 1.25rem;
  background: var(--card);
  border: 1px solid var(--border);
  border-radius: 12px;
  box-shadow: var(--shadow);
  color: inherit;
  text-decoration: none;
  position: relative;
}
.card:hover { border-color: var(--accent); }
.card h2 { margin: 0.25rem 0; font-size: 1.25rem; }
.card .icon { font-size: 2rem; }
.card .count {
  position: absolute;
  top: 0.75rem;
  left: 0.75rem;
  background: var(--accent-light);
  color: var(--accent);
  border-radius: 999px;
  padding: 0 0.6rem;
  font-size: 0.85rem;
}
.description { color: var(--muted); }
.items { list-style: none; margin: 0; padding: 0; }
.item {
  background: var(--card);
  border: 1px solid var(--border);
  border-radius: 12px;
  padding: 1.25rem;
  margin-bottom: 1rem;
  box-shadow: var(--shadow);
}
.item.playing { border-color: var(--accent); background: var(--accent-light); }
.item .text { font-size: 1.35rem; margin: 0 0 0.75rem; }
.item .meta { display: flex; flex-wrap: wrap; gap: 1rem; color: var(--muted); font-size: 0.9rem; }
.item .note { margin-top: 0.5rem; color: var(--muted); font-size: 0.95rem; }
.actions { display: flex; gap: 0.5rem; margin-top: 0.75rem; }
.actions button, .actions a {
  border: 1px solid var(--accent);
  background: transparent;
  color: var(--accent);
  border-radius: 8px;
  padding: 0.3rem 0.9rem;
  font: inherit;
  cursor: pointer;
  text-decoration: none;
}
.actions button.done { background: var(--accent); color: #fff; }
.play .label-stop { display: none; }
.play[aria-pressed="true"] .label-play { display: none; }
.play[aria-pressed="true"] .label-stop { display: inline; }
.not-found { text-align: center; padding: 4rem 0; }
.empty { color: var(--muted); }
`

// jsContent wires the copy, share, and play buttons. On the live server,
// playback is coordinated over /ws/playback; static pages coordinate locally.
const jsContent = `(function () {
  "use strict";

  var speech = "speechSynthesis" in window;
  var live = document.body.dataset.live === "true";

  function render(activeId) {
    document.querySelectorAll(".play").forEach(function (btn) {
      var on = btn.dataset.id === activeId;
      btn.setAttribute("aria-pressed", on ? "true" : "false");
      var item = btn.closest(".item");
      if (item) item.classList.toggle("playing", on);
    });
  }

  function flash(btn, label) {
    var old = btn.textContent;
    btn.textContent = label;
    btn.classList.add("done");
    setTimeout(function () { btn.textContent = old; btn.classList.remove("done"); }, 1200);
  }

  document.querySelectorAll(".copy").forEach(function (btn) {
    btn.addEventListener("click", function () {
      if (!navigator.clipboard) return;
      navigator.clipboard.writeText(btn.dataset.text).then(function () { flash(btn, "تم النسخ"); });
    });
  });

  function speak(text, lang, onStart, onEnd, onError) {
    var u = new SpeechSynthesisUtterance(text);
    u.lang = lang || "ar";
    u.onstart = onStart;
    u.onend = onEnd;
    u.onerror = function (e) { onError(e.error || "speech error"); };
    window.speechSynthesis.speak(u);
  }

  function localPlayer() {
    var active = null;
    var pending = null;
    var gen = 0;
    function stop() {
      gen++;
      active = null;
      pending = null;
      if (speech) window.speechSynthesis.cancel();
      render(null);
    }
    return {
      play: function (id, text) {
        if (active === id || pending === id) { stop(); return; }
        if (!speech) { alert("القراءة الصوتية غير مدعومة في هذا المتصفح"); return; }
        stop();
        pending = id;
        var mine = gen;
        speak(text, document.documentElement.lang,
          function () { if (mine === gen) { pending = null; active = id; render(id); } },
          function () { if (mine === gen) stop(); },
          function () { if (mine === gen) stop(); });
      }
    };
  }

  function livePlayer() {
    var proto = location.protocol === "https:" ? "wss://" : "ws://";
    var ws = new WebSocket(proto + location.host + "/ws/playback");
    var queue = [];
    function send(msg) {
      if (ws.readyState === WebSocket.OPEN) ws.send(JSON.stringify(msg));
      else queue.push(msg);
    }
    ws.onopen = function () {
      ws.send(JSON.stringify({ type: "hello", speech: speech }));
      queue.splice(0).forEach(function (m) { ws.send(JSON.stringify(m)); });
    };
    ws.onmessage = function (ev) {
      var msg = JSON.parse(ev.data);
      switch (msg.type) {
        case "speak":
          speak(msg.text, msg.lang,
            function () { send({ type: "started", token: msg.token }); },
            function () { send({ type: "ended", token: msg.token }); },
            function (err) { send({ type: "error", token: msg.token, message: String(err) }); });
          break;
        case "cancel":
          if (speech) window.speechSynthesis.cancel();
          break;
        case "state":
          render(msg.active || null);
          break;
        case "notice":
          alert(msg.message);
          break;
      }
    };
    return {
      play: function (id) { send({ type: "play", id: id }); }
    };
  }

  var player = live ? livePlayer() : localPlayer();
  document.querySelectorAll(".play").forEach(function (btn) {
    btn.addEventListener("click", function () { player.play(btn.dataset.id, btn.dataset.text); });
  });
})();
`
