package log

import "context"

// 日志context key
type facilityKey struct{}

// NewContext 把日志设施放入context
func NewContext(ctx context.Context, f *Facility) context.Context {
	return context.WithValue(ctx, facilityKey{}, f)
}

// FromContext 从context获取日志设施，没有则返回全局实例
func FromContext(ctx context.Context) *Facility {
	if f, ok := ctx.Value(facilityKey{}).(*Facility); ok && f != nil {
		return f
	}
	return Default()
}
