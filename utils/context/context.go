package context

import (
	"context"

	"github.com/adityapras/wms/constant"
)

func GetUserID(ctx context.Context) (uint64, bool) {
	v := ctx.Value(constant.UserIDKey)
	if v == nil {
		return 0, false
	}
	id, ok := v.(uint64)
	return id, ok
}

// GetCompanyID returns the resolved owning tenant of the request. Every
// stock-visible call must carry it.
func GetCompanyID(ctx context.Context) (uint64, bool) {
	v := ctx.Value(constant.CompanyIDKey)
	if v == nil {
		return 0, false
	}
	id, ok := v.(uint64)
	return id, ok
}
