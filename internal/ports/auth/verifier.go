package auth

import "context"

// Claims es la identidad de quien opera sobre una mascota.
// UserID es el dueño que se guarda en cada registro.
type Claims struct {
	UserID   string
	Email    string
	TenantID string
}

// AuthVerifier valida un bearer token y devuelve la identidad del usuario.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}
