package seed

import (
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"
)

// Populate fills the document root with a small browsable site, so the
// server has something to serve right after the first start. It must finish
// before the acceptor begins accepting connections. Re-running it simply
// rewrites the same files.
func Populate(root string) error {
	for _, dir := range []string{root, filepath.Join(root, "api"), filepath.Join(root, "images")} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	data, err := jsoniter.ConfigDefault.MarshalIndent(sampleData{
		Server:      "hearth",
		Version:     "1.0",
		Methods:     []string{"GET", "HEAD"},
		Concurrency: "goroutine per connection",
	}, "", "    ")
	if err != nil {
		return err
	}

	files := map[string][]byte{
		"index.html":      []byte(indexHTML),
		"styles.css":      []byte(stylesCSS),
		"about.html":      []byte(aboutHTML),
		"api/data.json":   data,
		"images/logo.txt": []byte(logoTXT),
	}

	for name, content := range files {
		if err := os.WriteFile(filepath.Join(root, filepath.FromSlash(name)), content, 0o644); err != nil {
			return err
		}
	}

	return nil
}

type sampleData struct {
	Server      string   `json:"server"`
	Version     string   `json:"version"`
	Methods     []string `json:"methods"`
	Concurrency string   `json:"concurrency"`
}

const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>hearth</title>
    <link rel="stylesheet" href="styles.css">
</head>
<body>
    <div class="container">
        <header>
            <h1>hearth</h1>
            <p>a small static file server</p>
        </header>
        <main>
            <section>
                <h2>Try it</h2>
                <ul>
                    <li><a href="/about.html">About page</a></li>
                    <li><a href="/api/data.json">JSON data</a></li>
                    <li><a href="/images/logo.txt">Plain text file</a></li>
                    <li><a href="/nothing-here.html">Missing page (404)</a></li>
                </ul>
            </section>
        </main>
        <footer>
            <p>served by hearth</p>
        </footer>
    </div>
</body>
</html>
`

const aboutHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>About - hearth</title>
    <link rel="stylesheet" href="styles.css">
</head>
<body>
    <div class="container">
        <header>
            <h1>About</h1>
        </header>
        <main>
            <section>
                <p>hearth serves static files over HTTP/1.1, handling each
                connection on its own goroutine. It answers GET and HEAD,
                guards the document root against traversal and closes every
                connection after a single response.</p>
                <p><a href="/">Back home</a></p>
            </section>
        </main>
    </div>
</body>
</html>
`

const stylesCSS = `* {
    margin: 0;
    padding: 0;
    box-sizing: border-box;
}

body {
    font-family: Georgia, serif;
    background: #faf6f0;
    padding: 20px;
}

.container {
    max-width: 720px;
    margin: 0 auto;
    background: white;
    border-radius: 8px;
    overflow: hidden;
    box-shadow: 0 4px 16px rgba(0, 0, 0, 0.1);
}

header {
    background: #7c2d12;
    color: white;
    padding: 28px;
    text-align: center;
}

main {
    padding: 28px;
}

h2 {
    border-bottom: 2px solid #7c2d12;
    padding-bottom: 8px;
    margin-bottom: 16px;
}

ul {
    list-style: none;
}

li {
    padding: 8px 0;
    border-bottom: 1px solid #eee;
}

a {
    color: #7c2d12;
    text-decoration: none;
}

a:hover {
    text-decoration: underline;
}

footer {
    background: #f5f0ea;
    padding: 16px;
    text-align: center;
    color: #666;
}
`

const logoTXT = `This is a sample plain text file.
Served by hearth.
`
