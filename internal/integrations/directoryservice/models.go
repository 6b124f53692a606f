package directoryservice

// Customer клиент салона в каталоге DirectoryService
type Customer struct {
	ID          int64  `json:"id"`
	TenantID    int64  `json:"tenantId"`
	DisplayName string `json:"displayName"`
	Phone       string `json:"phone"`
}

// ServiceItem услуга из каталога DirectoryService
type ServiceItem struct {
	ID              int64    `json:"id"`
	TenantID        int64    `json:"tenantId"`
	Name            string   `json:"name"`
	Category        string   `json:"category"`
	DurationMinutes int      `json:"durationMinutes"`
	Price           *float64 `json:"price,omitempty"`
}
