package web

import "embed"

// StaticFS holds the embedded static assets (stylesheet).
//
//go:embed static/*
var StaticFS embed.FS

// TemplateFS holds the embedded html/template page templates.
//
//go:embed templates/*
var TemplateFS embed.FS
