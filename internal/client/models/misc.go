package models

// DashboardStats is the aggregate snapshot for the back-office dashboard.
type DashboardStats struct {
	UsersCount         int       `json:"usersCount"`
	OrdersCount        int       `json:"ordersCount"`
	ProductsCount      int       `json:"productsCount"`
	TotalRevenue       string    `json:"totalRevenue"`
	NotificationsCount int       `json:"notificationsCount"`
	RecentOrders       []Order   `json:"recentOrders"`
	RecentProducts     []Product `json:"recentProducts"`
}

// ContactForm is the payload for POST mail/contact.
type ContactForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message"`
}
