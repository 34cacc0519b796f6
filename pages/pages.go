package pages

var Home = `
<!DOCTYPE html>
<html lang="es">
<head>
    <meta charset="utf-8">
    <title>songscout</title>
    <style>
        body {
            font-family: Arial, sans-serif;
            line-height: 1.6;
            max-width: 800px;
            margin: 0 auto;
            padding: 20px;
        }
        #search-form { display: flex; gap: 8px; margin-bottom: 20px; }
        #query { flex: 1; padding: 8px; }
        .result { display: flex; gap: 12px; margin-bottom: 12px; }
        .result img { width: 60px; height: 60px; }
        .meta { color: #666; font-size: 0.9em; }
    </style>
</head>
<body>
    <h1>songscout</h1>
    <p>Describe la canción que buscas: artista, género, época o un pedazo de la letra.</p>
    <form id="search-form">
        <input id="query" type="text" placeholder="una canción triste de los 80" autofocus>
        <button type="submit">Buscar</button>
    </form>
    <div id="results"></div>
    <script>
        const form = document.getElementById('search-form');
        const results = document.getElementById('results');
        form.addEventListener('submit', async (e) => {
            e.preventDefault();
            const query = document.getElementById('query').value;
            results.textContent = 'Buscando...';
            const resp = await fetch('/api/search', {
                method: 'POST',
                headers: {'Content-Type': 'application/json'},
                body: JSON.stringify({query})
            });
            const data = await resp.json();
            if (!data.success) {
                results.textContent = data.error || 'Error en la búsqueda';
                return;
            }
            if (data.results.length === 0) {
                results.textContent = data.metadata.message || 'Sin resultados';
                return;
            }
            results.innerHTML = data.results.map(song => ` + "`" + `
                <div class="result">
                    <img src="${song.image}" alt="">
                    <div>
                        <strong>${song.title}</strong> — ${song.artist}<br>
                        <span class="meta">${song.album} · ${song.genre} · ${song.score} pts</span><br>
                        ${song.preview_url ? ` + "`" + `<audio controls src="${song.preview_url}"></audio>` + "`" + ` : ''}
                    </div>
                </div>` + "`" + `).join('');
        });
    </script>
</body>
</html>`
