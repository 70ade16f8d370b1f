package relay

import (
	"github.com/nhle/deepdetect/internal/model"
)

// PublicKeyCredential is the keyring entry consulted when no public key is
// configured.
const PublicKeyCredential = "emailjs-public-key"

// LookupFunc reads a stored secret by key.
type LookupFunc func(key string) (string, error)

// CredentialsFromConfig assembles the relay identifiers from configuration.
// When the public key is blank, lookup is consulted; a lookup failure
// leaves the key empty so that submission fails with a configuration
// error rather than aborting start-up.
func CredentialsFromConfig(cfg model.RelayConfig, lookup LookupFunc) Credentials {
	creds := Credentials{
		ServiceID:  cfg.ServiceID,
		TemplateID: cfg.TemplateID,
		PublicKey:  cfg.PublicKey,
	}
	if creds.PublicKey == "" && lookup != nil {
		if key, err := lookup(PublicKeyCredential); err == nil {
			creds.PublicKey = key
		}
	}
	return creds
}
