package models

// TopProduct is a best selling product over the reporting window
type TopProduct struct {
	ProductID      string  `json:"product_id"`      // UUID of the product
	ProductTitle   string  `json:"product_title"`   // Title of the product
	OrderCount     int     `json:"order_count"`     // Number of distinct orders containing this product
	SalesCount     int     `json:"sales_count"`     // Total quantity sold
	Revenue        float64 `json:"revenue"`         // Revenue at checkout prices
	RevenuePercent float64 `json:"revenue_percent"` // Share of total revenue in the window
}

type DeviceAnalytics struct {
	DeviceType string  `json:"device_type"` // desktop, mobile, tablet
	LoginCount int     `json:"login_count"` // Logins from this device type
	Percentage float64 `json:"percentage"`  // Share of all logins in the window
}

// AnalyticsWindow is bound from the analytics query string.
type AnalyticsWindow struct {
	Days  int `form:"days" binding:"omitempty,min=1,max=365"`
	Limit int `form:"limit" binding:"omitempty,min=1,max=50"`
}
