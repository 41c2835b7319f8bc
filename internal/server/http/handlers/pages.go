package handlers

import "fmt"

// Standalone pages served by the download gate. These are reached from a
// clicked email link, so failures render HTML instead of JSON.

const pageStyle = `body { font-family: system-ui; background: #0A0A0B; color: white; display: flex; align-items: center; justify-content: center; height: 100vh; margin: 0; }
.box { text-align: center; padding: 40px; background: rgba(255,255,255,0.05); border-radius: 16px; max-width: 400px; }
a { color: #D4AF37; }`

const invalidLinkPage = `<!DOCTYPE html>
<html>
<head>
  <title>Invalid Link - APEX Theme</title>
  <style>
    ` + pageStyle + `
    h1 { color: #ef4444; }
  </style>
</head>
<body>
  <div class="box">
    <h1>Invalid Download Link</h1>
    <p>This download link is invalid or has expired.</p>
    <p><a href="/">Return to homepage</a></p>
  </div>
</body>
</html>`

const expiredLinkPage = `<!DOCTYPE html>
<html>
<head>
  <title>Link Expired - APEX Theme</title>
  <style>
    ` + pageStyle + `
    h1 { color: #f59e0b; }
  </style>
</head>
<body>
  <div class="box">
    <h1>Link Expired</h1>
    <p>This download link has expired. Please contact support for assistance.</p>
    <p><a href="/">Return to homepage</a></p>
  </div>
</body>
</html>`

const limitReachedPageFormat = `<!DOCTYPE html>
<html>
<head>
  <title>Download Limit Reached - APEX Theme</title>
  <style>
    ` + pageStyle + `
    h1 { color: #f59e0b; }
  </style>
</head>
<body>
  <div class="box">
    <h1>Download Limit Reached</h1>
    <p>You've reached the maximum number of downloads (%d). Please contact support if you need another download.</p>
    <p><a href="/">Return to homepage</a></p>
  </div>
</body>
</html>`

func limitReachedPage(limit int) string {
	return fmt.Sprintf(limitReachedPageFormat, limit)
}
