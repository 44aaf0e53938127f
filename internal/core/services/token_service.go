package services

import (
	"context"
	"time"

	"github.com/Shrey-Singhal/Internet-Banking-App/internal/core/domain"
	portssvc "github.com/Shrey-Singhal/Internet-Banking-App/internal/core/ports/services"
	"github.com/Shrey-Singhal/Internet-Banking-App/internal/platform/config"
	"github.com/Shrey-Singhal/Internet-Banking-App/internal/utils"
)

// tokenService implements the TokenSvcFacade for issuing JWT access
// tokens. It needs the application configuration for the signing secret
// and expiry settings.
type tokenService struct {
	cfg *config.Config
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg}
}

// GenerateAccessToken creates a new JWT access token for the given customer.
func (s *tokenService) GenerateAccessToken(ctx context.Context, customer *domain.Customer) (string, time.Time, error) {
	expiryTime := time.Now().Add(s.cfg.JWTExpiryDuration)

	accessToken, err := utils.GenerateJWT(customer.CustomerID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, err
	}
	return accessToken, expiryTime, nil
}
