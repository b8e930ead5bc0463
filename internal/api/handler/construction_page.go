package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const constructionPage = `<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<meta name="robots" content="noindex">
<title>Sitio en construcción</title>
<style>
body{margin:0;min-height:100vh;display:flex;align-items:center;justify-content:center;font-family:system-ui,sans-serif;background:#f7f5f0;color:#2b2b2b;text-align:center}
main{max-width:32rem;padding:2rem}
h1{font-size:1.75rem;margin-bottom:.5rem}
</style>
</head>
<body>
<main>
<h1>Sitio en construcción</h1>
<p>Estamos preparando nuestro nuevo sitio. Vuelve pronto.</p>
</main>
</body>
</html>
`

// ConstructionPage handles GET /en-construccion.
func ConstructionPage(c echo.Context) error {
	c.Response().Header().Set("Cache-Control", "no-store")
	return c.HTML(http.StatusOK, constructionPage)
}
