package web

import "embed"

// StaticFS holds the embedded static assets (CSS, form helper JS).
//
//go:embed static/*
var StaticFS embed.FS
