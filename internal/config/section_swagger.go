package config

import "github.com/hydrogen-project/hydrogen/internal/resolve"

func loadSwagger(root tree, cfg *AppConfig) bool {
	const name = "Swagger"
	resolve.LogSectionHeader(name)
	m := section(root, name)
	warnUnknownKeys(name, m, map[string]bool{
		"Enabled": true, "Prefix": true, "WebRoot": true, "CORSOrigin": true,
		"IndexPage": true, "Metadata": true, "UIOptions": true,
	})

	sw := &cfg.Swagger

	b, p := resolve.Bool(field(m, "Enabled"), sw.Enabled)
	sw.Enabled = b
	resolve.LogField(name, 1, "Enabled", b, p, false)

	s, p := resolve.String(field(m, "Prefix"), sw.Prefix)
	sw.Prefix = s
	resolve.LogField(name, 1, "Prefix", s, p, false)

	s, p = resolve.String(field(m, "WebRoot"), sw.WebRoot)
	sw.WebRoot = s
	resolve.LogField(name, 1, "WebRoot", s, p, false)

	s, p = resolve.String(field(m, "CORSOrigin"), sw.CORSOrigin)
	sw.CORSOrigin = s
	resolve.LogField(name, 1, "CORSOrigin", s, p, false)

	s, p = resolve.String(field(m, "IndexPage"), sw.IndexPage)
	sw.IndexPage = s
	resolve.LogField(name, 1, "IndexPage", s, p, false)

	md := object(m, "Metadata")
	s, p = resolve.String(field(md, "Title"), sw.Metadata.Title)
	sw.Metadata.Title = s
	resolve.LogField(name, 2, "Metadata.Title", s, p, false)

	s, p = resolve.String(field(md, "Description"), sw.Metadata.Description)
	sw.Metadata.Description = s
	resolve.LogField(name, 2, "Metadata.Description", s, p, false)

	s, p = resolve.String(field(md, "Version"), sw.Metadata.Version)
	sw.Metadata.Version = s
	resolve.LogField(name, 2, "Metadata.Version", s, p, false)

	contact := object(md, "Contact")
	sw.Metadata.Contact.Name, _ = resolve.String(field(contact, "Name"), sw.Metadata.Contact.Name)
	sw.Metadata.Contact.Email, _ = resolve.String(field(contact, "Email"), sw.Metadata.Contact.Email)
	sw.Metadata.Contact.URL, _ = resolve.String(field(contact, "URL"), sw.Metadata.Contact.URL)

	license := object(md, "License")
	sw.Metadata.License.Name, _ = resolve.String(field(license, "Name"), sw.Metadata.License.Name)
	sw.Metadata.License.URL, _ = resolve.String(field(license, "URL"), sw.Metadata.License.URL)

	ui := object(m, "UIOptions")
	b, p = resolve.Bool(field(ui, "TryItEnabled"), sw.UIOptions.TryItEnabled)
	sw.UIOptions.TryItEnabled = b
	resolve.LogField(name, 2, "UIOptions.TryItEnabled", b, p, false)

	b, p = resolve.Bool(field(ui, "AlwaysExpanded"), sw.UIOptions.AlwaysExpanded)
	sw.UIOptions.AlwaysExpanded = b
	resolve.LogField(name, 2, "UIOptions.AlwaysExpanded", b, p, false)

	b, p = resolve.Bool(field(ui, "DisplayOperationId"), sw.UIOptions.DisplayOperationId)
	sw.UIOptions.DisplayOperationId = b
	resolve.LogField(name, 2, "UIOptions.DisplayOperationId", b, p, false)

	n, p := resolve.Int(field(ui, "DefaultModelExpandDepth"), sw.UIOptions.DefaultModelExpandDepth, 0, 10)
	sw.UIOptions.DefaultModelExpandDepth = n
	resolve.LogField(name, 2, "UIOptions.DefaultModelExpandDepth", n, p, false)

	b, p = resolve.Bool(field(ui, "ShowExtensions"), sw.UIOptions.ShowExtensions)
	sw.UIOptions.ShowExtensions = b
	resolve.LogField(name, 2, "UIOptions.ShowExtensions", b, p, false)

	b, p = resolve.Bool(field(ui, "ShowCommonExtensions"), sw.UIOptions.ShowCommonExtensions)
	sw.UIOptions.ShowCommonExtensions = b
	resolve.LogField(name, 2, "UIOptions.ShowCommonExtensions", b, p, false)

	s, p = resolve.String(field(ui, "DocExpansion"), sw.UIOptions.DocExpansion)
	sw.UIOptions.DocExpansion = s
	resolve.LogField(name, 2, "UIOptions.DocExpansion", s, p, false)

	s, p = resolve.String(field(ui, "SyntaxHighlightTheme"), sw.UIOptions.SyntaxHighlightTheme)
	sw.UIOptions.SyntaxHighlightTheme = s
	resolve.LogField(name, 2, "UIOptions.SyntaxHighlightTheme", s, p, false)

	return true
}
