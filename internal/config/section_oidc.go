package config

import (
	"time"

	"github.com/hydrogen-project/hydrogen/internal/resolve"
)

func loadOIDC(root tree, cfg *AppConfig) bool {
	const name = "OIDC"
	resolve.LogSectionHeader(name)
	m := section(root, name)
	warnUnknownKeys(name, m, map[string]bool{
		"Enabled": true, "Issuer": true, "ClientId": true, "ClientSecret": true,
		"RedirectUri": true, "Port": true, "AuthMethod": true, "Scope": true,
		"VerifySSL": true, "Endpoints": true, "Keys": true, "Tokens": true,
	})

	o := &cfg.OIDC

	b, p := resolve.Bool(field(m, "Enabled"), o.Enabled)
	o.Enabled = b
	resolve.LogField(name, 1, "Enabled", b, p, false)

	s, p := resolve.String(field(m, "Issuer"), o.Issuer)
	o.Issuer = s
	resolve.LogField(name, 1, "Issuer", s, p, false)

	s, p = resolve.String(field(m, "ClientId"), o.ClientId)
	o.ClientId = s
	resolve.LogField(name, 1, "ClientId", s, p, false)

	s, p = resolve.SensitiveString(field(m, "ClientSecret"), o.ClientSecret)
	o.ClientSecret = s
	resolve.LogField(name, 1, "ClientSecret", s, p, true)

	s, p = resolve.String(field(m, "RedirectUri"), o.RedirectUri)
	o.RedirectUri = s
	resolve.LogField(name, 1, "RedirectUri", s, p, false)

	n, p := resolve.Int(field(m, "Port"), o.Port, 1, 65535)
	o.Port = n
	resolve.LogField(name, 1, "Port", n, p, false)

	s, p = resolve.String(field(m, "AuthMethod"), o.AuthMethod)
	o.AuthMethod = s
	resolve.LogField(name, 1, "AuthMethod", s, p, false)

	s, p = resolve.String(field(m, "Scope"), o.Scope)
	o.Scope = s
	resolve.LogField(name, 1, "Scope", s, p, false)

	b, p = resolve.Bool(field(m, "VerifySSL"), o.VerifySSL)
	o.VerifySSL = b
	resolve.LogField(name, 1, "VerifySSL", b, p, false)

	ep := object(m, "Endpoints")
	o.Endpoints.Authorization, _ = resolve.String(field(ep, "Authorization"), o.Endpoints.Authorization)
	o.Endpoints.Token, _ = resolve.String(field(ep, "Token"), o.Endpoints.Token)
	o.Endpoints.UserInfo, _ = resolve.String(field(ep, "UserInfo"), o.Endpoints.UserInfo)
	o.Endpoints.JWKS, _ = resolve.String(field(ep, "JWKS"), o.Endpoints.JWKS)
	o.Endpoints.EndSession, _ = resolve.String(field(ep, "EndSession"), o.Endpoints.EndSession)
	o.Endpoints.Introspection, _ = resolve.String(field(ep, "Introspection"), o.Endpoints.Introspection)
	o.Endpoints.Revocation, _ = resolve.String(field(ep, "Revocation"), o.Endpoints.Revocation)
	o.Endpoints.Registration, _ = resolve.String(field(ep, "Registration"), o.Endpoints.Registration)

	keys := object(m, "Keys")
	s, p = resolve.SensitiveString(field(keys, "SigningKey"), o.Keys.SigningKey)
	o.Keys.SigningKey = s
	resolve.LogField(name, 2, "Keys.SigningKey", s, p, true)

	s, p = resolve.SensitiveString(field(keys, "EncryptionKey"), o.Keys.EncryptionKey)
	o.Keys.EncryptionKey = s
	resolve.LogField(name, 2, "Keys.EncryptionKey", s, p, true)

	o.Keys.JWKSUri, _ = resolve.String(field(keys, "JWKSUri"), o.Keys.JWKSUri)
	o.Keys.StoragePath, _ = resolve.String(field(keys, "StoragePath"), o.Keys.StoragePath)
	o.Keys.EncryptionEnabled, _ = resolve.Bool(field(keys, "EncryptionEnabled"), o.Keys.EncryptionEnabled)

	n, p = resolve.Int(field(keys, "RotationIntervalDays"), o.Keys.RotationIntervalDays, 1, 3650)
	o.Keys.RotationIntervalDays = n
	resolve.LogField(name, 2, "Keys.RotationIntervalDays", n, p, false)

	tok := object(m, "Tokens")
	secs, p := resolve.Int(field(tok, "AccessTokenLifetime"), int64(o.Tokens.AccessTokenLifetime/time.Second), 60, 86400)
	o.Tokens.AccessTokenLifetime = time.Duration(secs) * time.Second
	resolve.LogField(name, 2, "Tokens.AccessTokenLifetime", secs, p, false)

	secs, p = resolve.Int(field(tok, "RefreshTokenLifetime"), int64(o.Tokens.RefreshTokenLifetime/time.Second), 60, 365*86400)
	o.Tokens.RefreshTokenLifetime = time.Duration(secs) * time.Second
	resolve.LogField(name, 2, "Tokens.RefreshTokenLifetime", secs, p, false)

	secs, p = resolve.Int(field(tok, "IdTokenLifetime"), int64(o.Tokens.IdTokenLifetime/time.Second), 60, 86400)
	o.Tokens.IdTokenLifetime = time.Duration(secs) * time.Second
	resolve.LogField(name, 2, "Tokens.IdTokenLifetime", secs, p, false)

	o.Tokens.SigningAlg, _ = resolve.String(field(tok, "SigningAlg"), o.Tokens.SigningAlg)
	o.Tokens.EncryptionAlg, _ = resolve.String(field(tok, "EncryptionAlg"), o.Tokens.EncryptionAlg)

	return true
}
