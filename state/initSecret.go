package state

import (
	"fmt"

	"github.com/FRANKLIN09020/Smart-Inventory-Control-System/config"
	"github.com/rs/zerolog/log"
)

const minSecretLen = 32

// InitSecret loads the HS256 signing secret from the configuration.
// The process must not accept requests without it, so an empty secret
// is a startup failure.
func InitSecret() ([]byte, error) {
	secret := config.Conf.AUTH.Secret
	if secret == "" {
		return nil, fmt.Errorf("jwt signing secret is not configured")
	}

	if len(secret) < minSecretLen {
		log.Warn().Msgf("jwt signing secret is shorter than %d bytes", minSecretLen)
	}

	log.Info().Msg("JWT secret initialized successfully")
	return []byte(secret), nil
}
