package view

const siteCSS = `
@import url('https://fonts.googleapis.com/css2?family=Orbitron:wght@400;600;700;900&family=Rajdhani:wght@300;400;500;600;700&display=swap');
:root{--ai-red:#ff0040;--ai-blue:#00d4ff;--ai-black:#0a0a0f;--ai-dark:#12121a}
html{scroll-behavior:smooth}
.bg-ai-black{background-color:var(--ai-black)}
.bg-ai-dark{background-color:var(--ai-dark)}
.text-ai-red{color:var(--ai-red)}
.text-ai-blue{color:var(--ai-blue)}
.border-ai-red{border-color:var(--ai-red)}
.font-orbitron{font-family:'Orbitron',sans-serif}
.font-rajdhani{font-family:'Rajdhani',sans-serif}
.glass-card{background:rgba(255,255,255,.03);backdrop-filter:blur(12px);border:1px solid rgba(255,255,255,.08)}
.text-gradient{background:linear-gradient(90deg,var(--ai-red),var(--ai-blue));-webkit-background-clip:text;background-clip:text;color:transparent}
.tech-grid{background-image:linear-gradient(rgba(0,212,255,.05) 1px,transparent 1px),linear-gradient(90deg,rgba(0,212,255,.05) 1px,transparent 1px);background-size:50px 50px}
.circuit-pattern{background-image:radial-gradient(circle at 1px 1px,rgba(255,0,64,.15) 1px,transparent 0);background-size:40px 40px}
.cyber-btn{padding:1rem 2rem;font-family:'Orbitron',sans-serif;font-weight:600;font-size:.875rem;text-transform:uppercase;letter-spacing:.05em;background:linear-gradient(90deg,var(--ai-red),#cc0033);color:#fff;transition:box-shadow .3s}
.cyber-btn:hover{box-shadow:0 0 30px rgba(255,0,64,.5)}
.shadow-glow-red{box-shadow:0 0 20px rgba(255,0,64,.6)}
.animate-spin-slow{animation:spin 20s linear infinite}
.reveal{opacity:0;transform:translateY(30px);transition:opacity .8s ease,transform .8s ease}
.reveal-left{transform:translateX(-50px)}
.reveal-right{transform:translateX(50px)}
.is-visible .reveal:not([data-item]),.reveal.is-visible{opacity:1;transform:none}
.skill-card{transition-delay:calc(var(--i,0)*50ms)}
#nav.scrolled{background:rgba(10,10,15,.9);backdrop-filter:blur(12px);padding-top:.75rem;padding-bottom:.75rem;border-bottom:1px solid rgba(255,255,255,.05)}
#loading.done{opacity:0;pointer-events:none}
`

// pageScript reports section visibility and timeline geometry over the
// viewport socket and applies the updates it receives. Without a socket
// everything is shown at once.
const pageScript = `
(function(){
  var $ = function(s, r){ return (r || document).querySelector(s); };
  var $$ = function(s, r){ return Array.prototype.slice.call((r || document).querySelectorAll(s)); };

  function revealAll(){ $$('[data-reveal]').forEach(function(el){ el.classList.add('is-visible'); }); }

  window.addEventListener('load', function(){
    if (window.lucide) { window.lucide.createIcons(); }
    setTimeout(function(){ $('#loading').classList.add('done'); }, 500);
  });

  var nav = $('#nav');
  var timeline = $('#experience');
  var bar = $('#timeline-progress');
  var marker = $('#timeline-marker');

  function applyProgress(p, scrolled){
    nav.classList.toggle('scrolled', scrolled);
    bar.style.height = p + '%';
    marker.style.top = p + '%';
  }

  function target(u){
    if (u.item) { return $('[data-reveal="' + u.section + '"][data-item="' + u.item + '"]'); }
    return $('section[data-reveal="' + u.section + '"]');
  }

  var ws = null;
  function send(ev){ if (ws && ws.readyState === 1) { ws.send(JSON.stringify(ev)); } }

  function geometry(){
    var r = timeline.getBoundingClientRect();
    send({type: 'scroll', scrollY: window.scrollY, top: r.top, height: r.height, viewport: window.innerHeight});
  }

  function connect(){
    if (!('WebSocket' in window) || !('IntersectionObserver' in window)) { revealAll(); return; }
    var proto = location.protocol === 'https:' ? 'wss://' : 'ws://';
    ws = new WebSocket(proto + location.host + '/ws/viewport');
    ws.onmessage = function(m){
      var u = JSON.parse(m.data);
      if (u.type === 'reveal') {
        var el = target(u);
        if (el) { el.classList.add('is-visible'); }
      } else if (u.type === 'progress') {
        applyProgress(u.progress, u.scrolled);
      }
    };
    ws.onerror = revealAll;
    ws.onopen = function(){
      var io = new IntersectionObserver(function(entries){
        entries.forEach(function(e){
          if (!e.isIntersecting) { return; }
          var ev = {type: 'intersect', section: e.target.dataset.reveal, ratio: e.intersectionRatio};
          if (e.target.dataset.item) { ev.item = parseInt(e.target.dataset.item, 10); }
          send(ev);
        });
      }, {threshold: [0, 0.2, 0.3, 0.5, 1]});
      $$('[data-reveal]').forEach(function(el){ io.observe(el); });
      geometry();
    };
  }

  window.addEventListener('scroll', geometry, {passive: true});
  connect();

  var tagline = $('[data-decode-src]');
  if (tagline && 'EventSource' in window) {
    var es = new EventSource(tagline.dataset.decodeSrc);
    es.addEventListener('frame', function(m){ tagline.textContent = m.data; });
    es.addEventListener('done', function(m){ tagline.textContent = m.data; es.close(); });
    es.onerror = function(){ es.close(); };
  }

  $$('[data-category]').forEach(function(link){
    link.addEventListener('click', function(e){
      e.preventDefault();
      var c = link.dataset.category;
      fetch('/api/skills?category=' + encodeURIComponent(c), {headers: {'Accept': 'text/html'}})
        .then(function(r){ return r.ok ? r.text() : Promise.reject(r.status); })
        .then(function(html){
          $('#skills-grid').innerHTML = html;
          $$('[data-category]').forEach(function(l){
            var on = l === link;
            l.toggleAttribute('aria-current', on);
            l.classList.toggle('bg-gradient-to-r', on);
            l.classList.toggle('from-ai-red', on);
            l.classList.toggle('to-ai-blue', on);
            l.classList.toggle('glass-card', !on);
          });
          $$('#skills-grid .reveal').forEach(function(el, i){ el.style.setProperty('--i', i); el.classList.add('is-visible'); });
          if (window.lucide) { window.lucide.createIcons(); }
          history.replaceState(null, '', '?category=' + encodeURIComponent(c) + '#skills');
        })
        .catch(function(){ location.href = link.href; });
    });
  });

  var form = $('#contact-form');
  var dialog = $('#contact-dialog');
  var errorEl = $('#contact-error');
  var button = $('button[type=submit]', form);
  var label = $('span', button);
  form.addEventListener('submit', function(e){
    e.preventDefault();
    var data = {};
    ['name', 'email', 'subject', 'message'].forEach(function(k){ data[k] = form.elements[k].value; });
    button.disabled = true;
    label.textContent = 'Transmitting...';
    errorEl.hidden = true;
    form.dataset.state = 'submitting';
    fetch('/api/contact', {method: 'POST', headers: {'Content-Type': 'application/json'}, body: JSON.stringify(data)})
      .then(function(r){ return r.json().then(function(body){ return {ok: r.ok, body: body}; }); })
      .then(function(res){
        if (!res.ok) { throw res.body; }
        form.reset();
        form.dataset.state = 'submitted';
        if (dialog.showModal) { dialog.showModal(); } else { dialog.setAttribute('open', ''); }
      })
      .catch(function(err){
        form.dataset.state = 'failed';
        errorEl.textContent = (err && err.error) || 'Sorry, there was an error sending your message. Please try again later.';
        errorEl.hidden = false;
      })
      .then(function(){
        button.disabled = false;
        label.textContent = 'Send Message';
      });
  });
})();
`
