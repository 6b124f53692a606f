package domain

import "time"

// Coupon купон со скидкой, действующий в окне [ValidFrom, ValidUntil)
// Бизнес-логика применения купонов живёт в маркетинговом сервисе,
// здесь только создание с валидацией окна действия
type Coupon struct {
	ID              int64
	TenantID        int64
	Code            string
	DiscountPercent int
	ValidFrom       time.Time
	ValidUntil      time.Time

	CreatedAt time.Time
}

// IsActiveAt returns true if the coupon is valid at the given instant
func (c *Coupon) IsActiveAt(t time.Time) bool {
	return !t.Before(c.ValidFrom) && t.Before(c.ValidUntil)
}

// Campaign маркетинговая кампания с окном действия [StartsAt, EndsAt)
type Campaign struct {
	ID       int64
	TenantID int64
	Name     string
	StartsAt time.Time
	EndsAt   time.Time

	CreatedAt time.Time
}

// IsActiveAt returns true if the campaign is running at the given instant
func (c *Campaign) IsActiveAt(t time.Time) bool {
	return !t.Before(c.StartsAt) && t.Before(c.EndsAt)
}
