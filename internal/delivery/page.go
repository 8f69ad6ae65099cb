package delivery

import "net/http"

// PageHandler serves the embedded front end. Deliberately unstyled beyond
// the minimum; the service is the product, not the page.
func PageHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(pageHTML))
}

const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>BSave</title>
    <style>
        :root { --bg: #121212; --card: #1e1e1e; --text: #e0e0e0; --accent: #1877f2; --err: #ff4444; }
        body { background: var(--bg); color: var(--text); font-family: system-ui, sans-serif; display: grid; place-items: center; min-height: 100vh; margin: 0; }
        .container { background: var(--card); padding: 2rem; border-radius: 12px; width: 90%; max-width: 480px; text-align: center; }
        h1 { margin: 0 0 1rem; font-size: 1.5rem; color: var(--accent); }
        input { width: 100%; padding: 12px; margin: 10px 0; border: 1px solid #333; border-radius: 6px; background: #252525; color: #fff; box-sizing: border-box; outline: none; }
        button { width: 100%; padding: 12px; border: none; border-radius: 6px; background: var(--accent); color: white; font-weight: bold; cursor: pointer; }
        button:disabled { background: #555; cursor: not-allowed; }
        #preview { margin-top: 20px; display: none; text-align: left; }
        #preview video { width: 100%; border-radius: 6px; }
        #error { color: var(--err); margin-top: 12px; display: none; }
        #toast { position: fixed; bottom: 20px; right: 20px; background: #2e7d32; color: #fff; padding: 10px 16px; border-radius: 6px; display: none; }
        .meta { font-size: 0.9rem; color: #aaa; }
    </style>
</head>
<body>
    <div class="container">
        <h1>BSave</h1>
        <input type="url" id="url" placeholder="Paste a Facebook video URL...">
        <button id="btn">Fetch Video</button>
        <div id="error"></div>
        <div id="preview">
            <div id="title" style="font-weight:bold;margin:10px 0"></div>
            <video id="player" controls></video>
            <div class="meta" id="duration"></div>
            <div class="meta" id="quality"></div>
            <button id="dl" style="margin-top:10px">Download</button>
        </div>
    </div>
    <div id="toast"></div>

    <script>
        const room = Math.random().toString(36).slice(2),
              urlInput = document.getElementById('url'),
              btn = document.getElementById('btn'),
              errBox = document.getElementById('error'),
              preview = document.getElementById('preview'),
              toast = document.getElementById('toast');
        let errTimer = null, toastTimer = null;

        const sock = new WebSocket((location.protocol === 'https:' ? 'wss://' : 'ws://') + location.host + '/ws?roomID=' + room);
        sock.onmessage = (e) => {
            const ev = JSON.parse(e.data);
            if (ev.notice) showToast(ev.notice);
        };

        function showError(msg) {
            preview.style.display = 'none';
            errBox.textContent = msg;
            errBox.style.display = 'block';
            clearTimeout(errTimer);
            errTimer = setTimeout(clearAll, 5000);
        }

        function showToast(msg) {
            toast.textContent = msg;
            toast.style.display = 'block';
            clearTimeout(toastTimer);
            toastTimer = setTimeout(() => { toast.style.display = 'none'; }, 3000);
        }

        function clearAll() {
            clearTimeout(errTimer);
            errBox.style.display = 'none';
            preview.style.display = 'none';
        }

        async function post(path, body) {
            const resp = await fetch(path, {
                method: 'POST',
                headers: {'Content-Type': 'application/json'},
                body: JSON.stringify(body)
            });
            return resp.json();
        }

        async function submit() {
            btn.disabled = true;
            try {
                const data = await post('/api/resolve', {room: room, url: urlInput.value});
                if (!data.success) { showError(data.error); return; }
                clearAll();
                document.getElementById('title').textContent = data.video.title;
                document.getElementById('player').src = data.video.media_url;
                if (data.video.thumbnail) document.getElementById('player').poster = data.video.thumbnail;
                document.getElementById('duration').textContent = 'Duration: ' + data.video.duration;
                document.getElementById('quality').textContent = 'Quality: ' + data.video.quality;
                preview.style.display = 'block';
                preview.scrollIntoView({behavior: 'smooth'});
            } catch (err) {
                showError('Service unavailable. Please try again later.');
            } finally {
                btn.disabled = false;
            }
        }

        async function download() {
            const data = await post('/api/download', {room: room});
            if (!data.success) { showError(data.error); return; }
            const a = document.createElement('a');
            a.href = data.media_url;
            a.download = data.filename;
            a.target = '_blank';
            document.body.appendChild(a);
            a.click();
            a.remove();
        }

        function edited() {
            clearAll();
            post('/api/clear', {room: room});
        }

        btn.onclick = submit;
        document.getElementById('dl').onclick = download;
        urlInput.addEventListener('input', edited);
        urlInput.addEventListener('paste', () => setTimeout(edited, 0));
        urlInput.addEventListener('keydown', (e) => { if (e.key === 'Enter') submit(); });
        document.addEventListener('keydown', (e) => {
            if (e.key === 'Enter' && (e.ctrlKey || e.metaKey)) submit();
            if (e.key === 'Escape') { urlInput.value = ''; edited(); }
        });
    </script>
</body>
</html>
`
