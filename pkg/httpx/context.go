package httpx

import (
	"context"

	"github.com/Zyad-Eltayabi/ClinicCore-Management-sub000/pkg/jwtx"
)

type ctxKey string

const (
	CtxKeyUserID    ctxKey = "user_id"
	CtxKeyPrincipal ctxKey = "principal"
)

// PrincipalFromContext returns the verified caller set by AuthnMiddleware.
func PrincipalFromContext(ctx context.Context) (jwtx.Principal, bool) {
	p, ok := ctx.Value(CtxKeyPrincipal).(jwtx.Principal)
	return p, ok
}

// UserIDFromContext returns the subject of the verified access token.
func UserIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(CtxKeyUserID).(string)
	return id
}

func contextWithPrincipal(ctx context.Context, p jwtx.Principal) context.Context {
	ctx = context.WithValue(ctx, CtxKeyUserID, p.Subject)
	return context.WithValue(ctx, CtxKeyPrincipal, p)
}
